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

package ioc

import (
	"strings"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/jobboard/internal/application"
	"github.com/ecodeclub/jobboard/internal/capability"
	"github.com/ecodeclub/jobboard/internal/job"
	"github.com/ecodeclub/jobboard/internal/notification"
	"github.com/ecodeclub/jobboard/internal/pkg/middleware"
	"github.com/ecodeclub/jobboard/internal/pkg/viewx"
	"github.com/ecodeclub/jobboard/internal/review"
	"github.com/ecodeclub/jobboard/internal/session"
	"github.com/gin-contrib/cors"
	"github.com/gotomicro/ego/server/egin"
)

type LocationVO struct {
	Path string `json:"path"`
}

func initGinxServer(
	sm *session.Module,
	jm *job.Module,
	am *application.Module,
	rm *review.Module,
	nm *notification.Module,
	router *viewx.Router,
) *egin.Component {
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowHeaders:     []string{"Content-Type"},
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowOriginFunc: func(origin string) bool {
			return strings.HasPrefix(origin, "http://localhost") ||
				strings.HasPrefix(origin, "http://127.0.0.1")
		},
	}))
	res.Use(middleware.NewMetricsBuilder("jobboard").Build())

	// 前端轮询当前应该在哪个页面
	res.GET("/location", ginx.W(func(ctx *ginx.Context) (ginx.Result, error) {
		return ginx.Result{Data: LocationVO{Path: router.Location()}}, nil
	}))
	sm.Hdl.PublicRoutes(res.Engine)
	capability.NewHandler(sm.Svc).PublicRoutes(res.Engine)
	jm.Hdl.PublicRoutes(res.Engine)
	am.Hdl.PublicRoutes(res.Engine)
	nm.Hdl.PublicRoutes(res.Engine)

	guard := middleware.NewCheckCapabilityMiddlewareBuilder(sm.Svc)
	jm.Hdl.PrivateRoutes(res.Engine, guard.Build(capability.ActionPostJob))
	am.Hdl.PrivateRoutes(res.Engine, guard.Build(capability.ActionTrackApplications))
	rm.Hdl.PrivateRoutes(res.Engine, guard.Build(capability.ActionReview))
	return res
}
