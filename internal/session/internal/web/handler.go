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

package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/jobboard/internal/pkg/bizerr"
	"github.com/ecodeclub/jobboard/internal/session/internal/domain"
	"github.com/ecodeclub/jobboard/internal/session/internal/errs"
	"github.com/ecodeclub/jobboard/internal/session/internal/service"
	"github.com/gin-gonic/gin"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/session")
	g.GET("", ginx.W(h.Current))
	g.POST("/login", ginx.B[LoginReq](h.Login))
	g.POST("/logout", ginx.W(h.Logout))
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	sess, err := h.svc.Login(ctx.Request.Context(), domain.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	switch {
	case err == nil:
		return ginx.Result{Msg: "Logged in successfully!", Data: newSession(sess)}, nil
	case errors.Is(err, bizerr.ErrValidation):
		return ginx.Result{
			Code: errs.ValidationError.Code,
			Msg:  bizerr.Message(err, errs.ValidationError.Msg),
		}, nil
	default:
		// 登录失败是用户可以恢复的，不当作系统错误
		return ginx.Result{
			Code: errs.LoginFailed.Code,
			Msg:  bizerr.Message(err, errs.LoginFailed.Msg),
		}, nil
	}
}

func (h *Handler) Logout(ctx *ginx.Context) (ginx.Result, error) {
	if err := h.svc.Logout(ctx.Request.Context()); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Current(ctx *ginx.Context) (ginx.Result, error) {
	sess, _ := h.svc.Current()
	return ginx.Result{Data: newSession(sess)}, nil
}
