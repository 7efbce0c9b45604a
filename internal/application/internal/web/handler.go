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
	"io"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/jobboard/internal/application/internal/domain"
	"github.com/ecodeclub/jobboard/internal/application/internal/errs"
	"github.com/ecodeclub/jobboard/internal/application/internal/service"
	"github.com/ecodeclub/jobboard/internal/pkg/bizerr"
	"github.com/ecodeclub/jobboard/internal/resume"
	"github.com/gin-gonic/gin"
)

const resumeField = "resume"

type Handler struct {
	svc  service.Service
	dash service.DashboardService
}

func NewHandler(svc service.Service, dash service.DashboardService) *Handler {
	return &Handler{svc: svc, dash: dash}
}

// PublicRoutes 申请页面，未登录也可以打开
func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/apply/:jobId")
	g.GET("", ginx.W(h.Form))
	g.POST("/open", ginx.W(h.Open))
	g.POST("/resume", ginx.W(h.SelectResume))
	g.POST("/submit", ginx.W(h.Submit))
	g.POST("/close", ginx.W(h.Close))
}

// PrivateRoutes 求职者面板
func (h *Handler) PrivateRoutes(server *gin.Engine, guards ...gin.HandlerFunc) {
	g := server.Group("/dashboard/candidate", guards...)
	g.GET("", ginx.W(h.Board))
	g.POST("/open", ginx.W(h.OpenDashboard))
	g.POST("/refresh", ginx.W(h.RefreshDashboard))
	g.POST("/close", ginx.W(h.CloseDashboard))
}

func (h *Handler) Open(ctx *ginx.Context) (ginx.Result, error) {
	view, err := h.svc.Open(ctx.Request.Context(), ctx.Context.Param("jobId"))
	if err != nil {
		return toResult(err, errs.SystemError, nil)
	}
	return ginx.Result{Msg: view.Notice, Data: newApplyView(view)}, nil
}

func (h *Handler) Form(ctx *ginx.Context) (ginx.Result, error) {
	form, ok := h.svc.Form(ctx.Context.Param("jobId"))
	if !ok {
		return ginx.Result{Code: errs.ViewClosed.Code, Msg: errs.ViewClosed.Msg}, nil
	}
	return ginx.Result{Data: newForm(form)}, nil
}

// SelectResume multipart 上传，字段名是 resume
func (h *Handler) SelectResume(ctx *ginx.Context) (ginx.Result, error) {
	fh, err := ctx.FormFile(resumeField)
	if err != nil {
		return ginx.Result{Code: errs.ValidationError.Code, Msg: "Please upload your resume"}, nil
	}
	f, err := fh.Open()
	if err != nil {
		return ginx.Result{Code: errs.SystemError.Code, Msg: errs.SystemError.Msg}, err
	}
	defer f.Close()
	// 多读一个字节，超过上限的文件交给校验器拒绝
	content, err := io.ReadAll(io.LimitReader(f, resume.MaxSize+1))
	if err != nil {
		return ginx.Result{Code: errs.SystemError.Code, Msg: errs.SystemError.Msg}, err
	}
	file := resume.File{
		Name:     fh.Filename,
		MimeType: fh.Header.Get("Content-Type"),
		Size:     fh.Size,
		Content:  content,
	}
	form, err := h.svc.SelectResume(ctx.Context.Param("jobId"), file)
	if err != nil {
		return toResult(err, errs.SystemError, &form)
	}
	return ginx.Result{Data: newForm(form)}, nil
}

func (h *Handler) Submit(ctx *ginx.Context) (ginx.Result, error) {
	form, err := h.svc.Submit(ctx.Request.Context(), ctx.Context.Param("jobId"))
	if err != nil {
		return toResult(err, errs.SubmitFailed, &form)
	}
	return ginx.Result{Msg: form.Message, Data: newForm(form)}, nil
}

func (h *Handler) Close(ctx *ginx.Context) (ginx.Result, error) {
	h.svc.Close(ctx.Context.Param("jobId"))
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) OpenDashboard(ctx *ginx.Context) (ginx.Result, error) {
	apps, err := h.dash.Open(ctx.Request.Context())
	if err != nil {
		return toResult(err, errs.LoadFailed, nil)
	}
	return ginx.Result{Data: newDashboardResp(apps)}, nil
}

func (h *Handler) RefreshDashboard(ctx *ginx.Context) (ginx.Result, error) {
	apps, err := h.dash.Refresh(ctx.Request.Context())
	if err != nil {
		return toResult(err, errs.LoadFailed, nil)
	}
	return ginx.Result{Data: newDashboardResp(apps)}, nil
}

func (h *Handler) Board(ctx *ginx.Context) (ginx.Result, error) {
	apps, ok := h.dash.Board()
	if !ok {
		return ginx.Result{Code: errs.ViewClosed.Code, Msg: errs.ViewClosed.Msg}, nil
	}
	return ginx.Result{Data: newDashboardResp(apps)}, nil
}

func (h *Handler) CloseDashboard(ctx *ginx.Context) (ginx.Result, error) {
	h.dash.Close()
	return ginx.Result{Msg: "OK"}, nil
}

func newDashboardResp(apps []domain.Application) DashboardResp {
	return DashboardResp{
		Total: len(apps),
		Applications: slice.Map(apps, func(idx int, src domain.Application) Application {
			return newApplication(src)
		}),
	}
}

// toResult 用户能处理的错误返回 200 和错误码，其余的当作系统错误
func toResult(err error, fallback errs.ErrorCode, form *domain.ApplyForm) (ginx.Result, error) {
	var data any
	if form != nil && form.JobID != "" {
		data = newForm(*form)
	}
	var code errs.ErrorCode
	switch {
	case errors.Is(err, service.ErrSubmitInProgress):
		code = errs.SubmitInProgress
	case errors.Is(err, service.ErrViewClosed):
		code = errs.ViewClosed
	case errors.Is(err, service.ErrLoginRequired):
		code = errs.NotLoggedIn
	case errors.Is(err, bizerr.ErrAuth):
		code = errs.Unauthorized
	case errors.Is(err, bizerr.ErrValidation):
		code = errs.ValidationError
	case errors.Is(err, bizerr.ErrNotFound):
		code = errs.JobNotFound
	default:
		return ginx.Result{Code: fallback.Code, Msg: bizerr.Message(err, fallback.Msg), Data: data}, err
	}
	return ginx.Result{Code: code.Code, Msg: bizerr.Message(err, code.Msg), Data: data}, nil
}
