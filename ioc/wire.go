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

package ioc

import (
	"github.com/ecodeclub/jobboard/internal/application"
	"github.com/ecodeclub/jobboard/internal/job"
	"github.com/ecodeclub/jobboard/internal/notification"
	"github.com/ecodeclub/jobboard/internal/pkg/viewx"
	"github.com/ecodeclub/jobboard/internal/review"
	"github.com/ecodeclub/jobboard/internal/session"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ, InitJobAPI)

var viewSet = wire.NewSet(InitRouter, InitScheduler,
	wire.Bind(new(viewx.Navigator), new(*viewx.Router)))

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		viewSet,
		session.InitModule,
		job.InitModule,
		application.InitModule,
		review.InitModule,
		notification.InitModule,
		wire.FieldsOf(new(*session.Module), "Svc"),
		wire.FieldsOf(new(*notification.Module), "Consumers"),
		initCronJobs,
		initGinxServer)
	return new(App), nil
}
