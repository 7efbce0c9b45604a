// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package session

import (
	"github.com/ecodeclub/jobboard/internal/session/internal/domain"
	"github.com/ecodeclub/jobboard/internal/session/internal/service"
	"github.com/ecodeclub/jobboard/internal/session/internal/web"
)

type Module struct {
	Svc Service
	Hdl *Hdl
}

type Service = service.Service

type Hdl = web.Handler

type (
	Session     = domain.Session
	Identity    = domain.Identity
	Role        = domain.Role
	Credentials = domain.Credentials
)

const (
	RoleUnknown   = domain.RoleUnknown
	RoleEmployer  = domain.RoleEmployer
	RoleJobseeker = domain.RoleJobseeker
)

func NewSession(identity Identity, token string) (Session, error) {
	return domain.NewSession(identity, token)
}
