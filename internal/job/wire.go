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

package job

import (
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/jobboard/internal/job/internal/cronjob"
	"github.com/ecodeclub/jobboard/internal/job/internal/repository"
	"github.com/ecodeclub/jobboard/internal/job/internal/repository/cache"
	"github.com/ecodeclub/jobboard/internal/job/internal/service"
	"github.com/ecodeclub/jobboard/internal/job/internal/web"
	"github.com/ecodeclub/jobboard/internal/jobapi"
	"github.com/ecodeclub/jobboard/internal/session"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(client jobapi.Client, ec ecache.Cache, sess *session.Module) *Module {
	wire.Build(
		initJobCache,
		repository.NewCachedJobRepository,
		service.NewService,
		web.NewHandler,
		cronjob.NewWarmCacheJob,
		wire.FieldsOf(new(*session.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

func initJobCache(ec ecache.Cache) cache.JobCache {
	expiration := econf.GetDuration("job.cacheExpiration")
	if expiration <= 0 {
		expiration = 10 * time.Minute
	}
	return cache.NewJobCache(ec, expiration)
}
