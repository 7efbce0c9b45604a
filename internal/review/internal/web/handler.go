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
	"github.com/ecodeclub/jobboard/internal/pkg/bizerr"
	"github.com/ecodeclub/jobboard/internal/review/internal/domain"
	"github.com/ecodeclub/jobboard/internal/review/internal/errs"
	"github.com/ecodeclub/jobboard/internal/review/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

// PrivateRoutes 雇主面板，调用方负责加上角色拦截
func (h *Handler) PrivateRoutes(server *gin.Engine, guards ...gin.HandlerFunc) {
	g := server.Group("/dashboard/employer", guards...)
	g.GET("", ginx.W(h.Board))
	g.POST("/open", ginx.W(h.Open))
	g.POST("/refresh", ginx.W(h.Refresh))
	g.POST("/close", ginx.W(h.Close))
	g.GET("/targets", ginx.W(h.Targets))
	g.PUT("/applications/:id/status", ginx.B[StatusReq](h.Transition))
}

func (h *Handler) Open(ctx *ginx.Context) (ginx.Result, error) {
	postings, err := h.svc.Open(ctx.Request.Context())
	if err != nil {
		return toResult(err, errs.LoadFailed)
	}
	return ginx.Result{Data: newBoardResp(postings)}, nil
}

func (h *Handler) Refresh(ctx *ginx.Context) (ginx.Result, error) {
	postings, err := h.svc.Refresh(ctx.Request.Context())
	if err != nil {
		return toResult(err, errs.LoadFailed)
	}
	return ginx.Result{Data: newBoardResp(postings)}, nil
}

func (h *Handler) Board(ctx *ginx.Context) (ginx.Result, error) {
	postings, ok := h.svc.Board()
	if !ok {
		return ginx.Result{Code: errs.ViewClosed.Code, Msg: errs.ViewClosed.Msg}, nil
	}
	return ginx.Result{Data: newBoardResp(postings)}, nil
}

func (h *Handler) Close(ctx *ginx.Context) (ginx.Result, error) {
	h.svc.Close()
	return ginx.Result{Msg: "OK"}, nil
}

// Targets ?current= 当前状态
func (h *Handler) Targets(ctx *ginx.Context) (ginx.Result, error) {
	return ginx.Result{Data: targets(domain.Status(ctx.Context.Query("current")))}, nil
}

func (h *Handler) Transition(ctx *ginx.Context, req StatusReq) (ginx.Result, error) {
	outcome, err := h.svc.Transition(ctx.Request.Context(), domain.TransitionReq{
		ApplicationID: ctx.Context.Param("id"),
		ApplicantID:   req.ApplicantID,
		Target:        domain.Status(req.Status),
	})
	if err != nil {
		return toResult(err, errs.UpdateFailed)
	}
	msg := outcome.Notice
	if outcome.Warning != "" {
		msg = outcome.Warning
	}
	return ginx.Result{
		Msg: msg,
		Data: OutcomeResp{
			Message: outcome.Message,
			Notice:  outcome.Notice,
			Warning: outcome.Warning,
			Postings: slice.Map(outcome.Board, func(idx int, src domain.Posting) Posting {
				return newPosting(src)
			}),
		},
	}, nil
}

// toResult 用户能处理的错误返回 200 和错误码，其余的当作系统错误
func toResult(err error, fallback errs.ErrorCode) (ginx.Result, error) {
	var code errs.ErrorCode
	switch {
	case errors.Is(err, service.ErrViewClosed):
		code = errs.ViewClosed
	case errors.Is(err, bizerr.ErrAuth):
		code = errs.Unauthorized
	case errors.Is(err, bizerr.ErrValidation):
		code = errs.ValidationError
	case errors.Is(err, bizerr.ErrNotFound):
		code = errs.NotFound
	case errors.Is(err, bizerr.ErrConflict):
		code = errs.Conflict
	default:
		return ginx.Result{Code: fallback.Code, Msg: bizerr.Message(err, fallback.Msg)}, err
	}
	return ginx.Result{Code: code.Code, Msg: bizerr.Message(err, code.Msg)}, nil
}
