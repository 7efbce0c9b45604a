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

package review

import (
	"time"

	"github.com/ecodeclub/jobboard/internal/jobapi"
	"github.com/ecodeclub/jobboard/internal/review/internal/event"
	"github.com/ecodeclub/jobboard/internal/review/internal/service"
	"github.com/ecodeclub/jobboard/internal/review/internal/web"
	"github.com/ecodeclub/jobboard/internal/session"
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(client jobapi.Client, q mq.MQ, sess *session.Module) *Module {
	wire.Build(
		initStatusEventProducer,
		initTransferTimeout,
		service.NewService,
		web.NewHandler,
		wire.FieldsOf(new(*session.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

func initStatusEventProducer(q mq.MQ) event.StatusEventProducer {
	p, err := event.NewStatusEventProducer(q)
	if err != nil {
		panic(err)
	}
	return p
}

func initTransferTimeout() time.Duration {
	d := econf.GetDuration("review.transferTimeout")
	if d <= 0 {
		return 30 * time.Second
	}
	return d
}
