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

//go:build wireinject

package application

import (
	"time"

	"github.com/ecodeclub/jobboard/internal/application/internal/event"
	"github.com/ecodeclub/jobboard/internal/application/internal/service"
	"github.com/ecodeclub/jobboard/internal/application/internal/web"
	"github.com/ecodeclub/jobboard/internal/job"
	"github.com/ecodeclub/jobboard/internal/jobapi"
	"github.com/ecodeclub/jobboard/internal/pkg/viewx"
	"github.com/ecodeclub/jobboard/internal/session"
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(client jobapi.Client, q mq.MQ,
	sess *session.Module, jm *job.Module,
	nav viewx.Navigator, sched viewx.Scheduler) *Module {
	wire.Build(
		initSubmittedEventProducer,
		initConfig,
		service.NewService,
		service.NewDashboardService,
		web.NewHandler,
		wire.FieldsOf(new(*session.Module), "Svc"),
		wire.FieldsOf(new(*job.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

func initSubmittedEventProducer(q mq.MQ) event.SubmittedEventProducer {
	p, err := event.NewSubmittedEventProducer(q)
	if err != nil {
		panic(err)
	}
	return p
}

func initConfig() service.Config {
	cfg := service.Config{
		RedirectDelay:   2 * time.Second,
		TransferTimeout: 30 * time.Second,
	}
	err := econf.UnmarshalKey("application", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}
