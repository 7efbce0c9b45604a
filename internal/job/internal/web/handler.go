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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/jobboard/internal/job/internal/domain"
	"github.com/ecodeclub/jobboard/internal/job/internal/errs"
	"github.com/ecodeclub/jobboard/internal/job/internal/service"
	"github.com/ecodeclub/jobboard/internal/pkg/bizerr"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/jobs")
	g.GET("", ginx.W(h.List))
	g.GET("/:id", ginx.W(h.Detail))
}

// PrivateRoutes 发布职位，调用方负责加上角色拦截
func (h *Handler) PrivateRoutes(server *gin.Engine, guards ...gin.HandlerFunc) {
	handlers := make([]gin.HandlerFunc, 0, len(guards)+1)
	handlers = append(append(handlers, guards...), ginx.B[PostReq](h.Post))
	server.POST("/jobs", handlers...)
}

// List 支持 ?q= 搜索
func (h *Handler) List(ctx *ginx.Context) (ginx.Result, error) {
	res, err := h.svc.Search(ctx.Request.Context(), ctx.Context.Query("q"))
	if err != nil {
		return toResult(err, errs.LoadFailed)
	}
	return ginx.Result{
		Msg: res.Notice,
		Data: ListResp{
			Total:  len(res.Jobs),
			Jobs:   slice.Map(res.Jobs, func(idx int, src domain.Job) Job { return newJob(src) }),
			Notice: res.Notice,
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context) (ginx.Result, error) {
	job, err := h.svc.Detail(ctx.Request.Context(), ctx.Context.Param("id"))
	if err != nil {
		return toResult(err, errs.LoadFailed)
	}
	return ginx.Result{Data: newJob(job)}, nil
}

func (h *Handler) Post(ctx *ginx.Context, req PostReq) (ginx.Result, error) {
	job, err := h.svc.Post(ctx.Request.Context(), req.toDomain())
	if err != nil {
		return toResult(err, errs.PostFailed)
	}
	return ginx.Result{Msg: "Job Posted Successfully!", Data: newJob(job)}, nil
}

// toResult 用户能处理的错误返回 200 和错误码，其余的当作系统错误
func toResult(err error, fallback errs.ErrorCode) (ginx.Result, error) {
	var code errs.ErrorCode
	switch {
	case errors.Is(err, bizerr.ErrNotFound):
		code = errs.JobNotFound
	case errors.Is(err, bizerr.ErrValidation):
		code = errs.ValidationError
	case errors.Is(err, bizerr.ErrAuth):
		code = errs.Unauthorized
	default:
		return ginx.Result{Code: fallback.Code, Msg: bizerr.Message(err, fallback.Msg)}, err
	}
	return ginx.Result{Code: code.Code, Msg: bizerr.Message(err, code.Msg)}, nil
}
