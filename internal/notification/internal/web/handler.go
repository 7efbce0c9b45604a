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
	"strconv"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/jobboard/internal/notification/internal/domain"
	"github.com/ecodeclub/jobboard/internal/notification/internal/service"
	"github.com/gin-gonic/gin"
)

type Activity struct {
	Kind          string `json:"kind"`
	Summary       string `json:"summary"`
	JobID         string `json:"jobId"`
	ApplicationID string `json:"applicationId,omitempty"`
	ApplicantID   string `json:"applicantId,omitempty"`
	Message       string `json:"message,omitempty"`
	Ctime         int64  `json:"ctime,omitempty"`
}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.GET("/activity", ginx.W(h.List))
}

// List ?limit= 最多返回多少条
func (h *Handler) List(ctx *ginx.Context) (ginx.Result, error) {
	limit, _ := strconv.Atoi(ctx.Context.Query("limit"))
	items := h.svc.List(ctx.Request.Context(), limit)
	return ginx.Result{Data: slice.Map(items, func(idx int, src domain.Activity) Activity {
		res := Activity{
			Kind:          string(src.Kind),
			Summary:       src.Summary(),
			JobID:         src.JobID,
			ApplicationID: src.ApplicationID,
			ApplicantID:   src.ApplicantID,
			Message:       src.Message,
		}
		if !src.Ctime.IsZero() {
			res.Ctime = src.Ctime.UnixMilli()
		}
		return res
	})}, nil
}
