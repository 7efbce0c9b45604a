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

package application

import (
	"github.com/ecodeclub/jobboard/internal/application/internal/domain"
	"github.com/ecodeclub/jobboard/internal/application/internal/service"
	"github.com/ecodeclub/jobboard/internal/application/internal/web"
)

type Module struct {
	Svc     Service
	DashSvc DashboardService
	Hdl     *Hdl
}

type Service = service.Service

type DashboardService = service.DashboardService

type Hdl = web.Handler

type (
	Application = domain.Application
	Applicant   = domain.Applicant
	ApplyForm   = domain.ApplyForm
	Status      = domain.Status
)

const (
	StatusPending   = domain.StatusPending
	StatusInterview = domain.StatusInterview
	StatusRejected  = domain.StatusRejected
	StatusAccepted  = domain.StatusAccepted
)
