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

package notification

import (
	"github.com/ecodeclub/jobboard/internal/notification/internal/event"
	"github.com/ecodeclub/jobboard/internal/notification/internal/service"
	"github.com/ecodeclub/jobboard/internal/notification/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(q mq.MQ) *Module {
	wire.Build(
		initFeed,
		initConsumers,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

func initFeed() service.Service {
	size := econf.GetInt("notification.feedSize")
	if size <= 0 {
		size = 50
	}
	return service.NewService(size)
}

func initConsumers(q mq.MQ, feed service.Service) []Consumer {
	submitted, err := event.NewSubmittedEventConsumer(q, feed)
	if err != nil {
		panic(err)
	}
	status, err := event.NewStatusEventConsumer(q, feed)
	if err != nil {
		panic(err)
	}
	return []Consumer{submitted, status}
}
