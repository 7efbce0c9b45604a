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

package notification

import (
	"github.com/ecodeclub/jobboard/internal/notification/internal/event"
	"github.com/ecodeclub/jobboard/internal/notification/internal/service"
	"github.com/ecodeclub/jobboard/internal/notification/internal/web"
)

type Module struct {
	Svc       Service
	Hdl       *Hdl
	Consumers []Consumer
}

type Service = service.Service

type Hdl = web.Handler

type Consumer = event.Consumer
