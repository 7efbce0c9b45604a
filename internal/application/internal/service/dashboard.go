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

package service

import (
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobboard/internal/application/internal/domain"
	"github.com/ecodeclub/jobboard/internal/capability"
	"github.com/ecodeclub/jobboard/internal/jobapi"
	"github.com/ecodeclub/jobboard/internal/pkg/bizerr"
	"github.com/ecodeclub/jobboard/internal/pkg/viewx"
	"github.com/ecodeclub/jobboard/internal/session"
	"github.com/gotomicro/ego/core/elog"
)

const loadFailedMsg = "Failed to load applications"

// DashboardService 求职者查看自己的申请
//
//go:generate mockgen -source=./dashboard.go -destination=../../mocks/dashboard.mock.go -package=appmocks DashboardService
type DashboardService interface {
	Open(ctx context.Context) ([]domain.Application, error)
	Refresh(ctx context.Context) ([]domain.Application, error)
	Close()
	// Board 最近一次加载成功的数据
	Board() ([]domain.Application, bool)
}

type candidateDashboard struct {
	board  viewx.Board[[]domain.Application]
	client jobapi.Client
	sess   session.Service
	logger *elog.Component
}

func NewDashboardService(client jobapi.Client, sess session.Service) DashboardService {
	return &candidateDashboard{
		client: client,
		sess:   sess,
		logger: elog.DefaultLogger.With(elog.FieldComponent("application.dashboard")),
	}
}

func (d *candidateDashboard) Open(ctx context.Context) ([]domain.Application, error) {
	sess, _ := d.sess.Current()
	if err := capability.Allowed(sess, capability.ActionTrackApplications); err != nil {
		return nil, err
	}
	return d.load(ctx, sess, d.board.Open())
}

func (d *candidateDashboard) Refresh(ctx context.Context) ([]domain.Application, error) {
	tk, ok := d.board.Ticket()
	if !ok {
		return nil, ErrViewClosed
	}
	sess, _ := d.sess.Current()
	if err := capability.Allowed(sess, capability.ActionTrackApplications); err != nil {
		return nil, err
	}
	return d.load(ctx, sess, tk)
}

func (d *candidateDashboard) load(ctx context.Context, sess session.Session, tk viewx.Ticket) ([]domain.Application, error) {
	apps, err := d.client.JobseekerDashboard(ctx, sess.Token)
	if err != nil {
		if errors.Is(err, bizerr.ErrAuth) {
			if err1 := d.sess.Invalidate(ctx, sess.Token); err1 != nil {
				d.logger.Error("清理失效会话失败", elog.FieldErr(err1))
			}
		}
		return nil, bizerr.Wrap(err, loadFailedMsg)
	}
	res := slice.Map(apps, func(idx int, src jobapi.Application) domain.Application {
		return toDomain(src)
	})
	if !d.board.Store(tk, res) {
		return nil, ErrViewClosed
	}
	return res, nil
}

func (d *candidateDashboard) Close() {
	d.board.Reset()
}

func (d *candidateDashboard) Board() ([]domain.Application, bool) {
	if !d.board.Mounted() {
		return nil, false
	}
	return d.board.Load()
}

func toDomain(a jobapi.Application) domain.Application {
	res := domain.Application{
		ID:    a.ID,
		JobID: a.JobID,
		Applicant: domain.Applicant{
			ID:    a.Applicant.ID,
			Name:  a.Applicant.Name,
			Email: a.Applicant.Email,
		},
		Resume: a.Resume,
		Status: domain.Status(a.Status),
	}
	if a.AppliedAt > 0 {
		res.AppliedAt = time.UnixMilli(a.AppliedAt)
	}
	if a.Job != nil {
		res.Job = domain.JobSummary{
			ID:       a.Job.ID,
			Title:    a.Job.Title,
			Company:  a.Job.Company,
			Location: a.Job.Location,
		}
		if res.JobID == "" {
			res.JobID = a.Job.ID
		}
	}
	return res
}
