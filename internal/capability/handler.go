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

package capability

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/jobboard/internal/pkg/bizerr"
	"github.com/ecodeclub/jobboard/internal/session"
	"github.com/gin-gonic/gin"
)

// MustLogInCode 没有登录时 GET /dashboard 返回的错误码
const MustLogInCode = 402001

type DashboardVO struct {
	Dashboard string `json:"dashboard"`
}

type Handler struct {
	sess session.Service
}

func NewHandler(sess session.Service) *Handler {
	return &Handler{sess: sess}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.GET("/dashboard", ginx.W(h.Dashboard))
}

// Dashboard 告诉前端当前会话应该进入哪个面板
func (h *Handler) Dashboard(ctx *ginx.Context) (ginx.Result, error) {
	s, _ := h.sess.Current()
	d, err := DashboardFor(s)
	if err != nil {
		return ginx.Result{
			Code: MustLogInCode,
			Msg:  bizerr.Message(err, "must log in"),
			Data: DashboardVO{Dashboard: d.String()},
		}, nil
	}
	return ginx.Result{Data: DashboardVO{Dashboard: d.String()}}, nil
}
