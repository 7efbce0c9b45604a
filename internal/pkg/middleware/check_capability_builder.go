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

package middleware

import (
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/jobboard/internal/capability"
	"github.com/ecodeclub/jobboard/internal/pkg/bizerr"
	"github.com/ecodeclub/jobboard/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// CapabilityDeniedCode 被拦截时返回的错误码
const CapabilityDeniedCode = 403001

// CheckCapabilityMiddlewareBuilder 按照当前会话的角色拦截请求
type CheckCapabilityMiddlewareBuilder struct {
	sess   session.Service
	logger *elog.Component
}

func NewCheckCapabilityMiddlewareBuilder(sess session.Service) *CheckCapabilityMiddlewareBuilder {
	return &CheckCapabilityMiddlewareBuilder{
		sess:   sess,
		logger: elog.DefaultLogger,
	}
}

func (b *CheckCapabilityMiddlewareBuilder) Build(action capability.Action) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		s, _ := b.sess.Current()
		err := capability.Allowed(s, action)
		if err == nil {
			return
		}
		b.logger.Debug("没有权限",
			elog.String("path", ctx.Request.URL.Path),
			elog.String("role", s.Role().String()))
		ctx.AbortWithStatusJSON(http.StatusForbidden, ginx.Result{
			Code: CapabilityDeniedCode,
			Msg:  bizerr.Message(err, "forbidden"),
		})
	}
}
