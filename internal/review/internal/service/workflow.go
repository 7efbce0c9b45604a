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
	"github.com/ecodeclub/jobboard/internal/application"
	"github.com/ecodeclub/jobboard/internal/capability"
	"github.com/ecodeclub/jobboard/internal/jobapi"
	"github.com/ecodeclub/jobboard/internal/pkg/bizerr"
	"github.com/ecodeclub/jobboard/internal/pkg/viewx"
	"github.com/ecodeclub/jobboard/internal/review/internal/domain"
	"github.com/ecodeclub/jobboard/internal/review/internal/event"
	"github.com/ecodeclub/jobboard/internal/session"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrViewClosed = errors.New("雇主面板没有打开")

	errApplicationNotFound = bizerr.NotFound("Application not found")
)

const (
	updateFailedMsg = "Failed to update status"
	loadFailedMsg   = "Failed to fetch job data"
	notifiedNotice  = "Notification sent to candidate via e-mail"
	refreshWarning  = "Status updated, but the dashboard could not be refreshed"
)

//go:generate mockgen -source=./workflow.go -destination=../../mocks/workflow.mock.go -package=reviewmocks Service
type Service interface {
	Open(ctx context.Context) ([]domain.Posting, error)
	Refresh(ctx context.Context) ([]domain.Posting, error)
	Close()
	Board() ([]domain.Posting, bool)
	// Transition 成功之后重新拉取整个面板，不在本地修改状态
	Transition(ctx context.Context, req domain.TransitionReq) (domain.Outcome, error)
}

type workflow struct {
	board           viewx.Board[[]domain.Posting]
	client          jobapi.Client
	sess            session.Service
	producer        event.StatusEventProducer
	transferTimeout time.Duration
	logger          *elog.Component
}

func NewService(client jobapi.Client, sess session.Service,
	producer event.StatusEventProducer, transferTimeout time.Duration) Service {
	return &workflow{
		client:          client,
		sess:            sess,
		producer:        producer,
		transferTimeout: transferTimeout,
		logger:          elog.DefaultLogger.With(elog.FieldComponent("review.workflow")),
	}
}

func (w *workflow) Open(ctx context.Context) ([]domain.Posting, error) {
	sess, err := w.employer()
	if err != nil {
		return nil, err
	}
	return w.load(ctx, sess, w.board.Open())
}

func (w *workflow) Refresh(ctx context.Context) ([]domain.Posting, error) {
	tk, ok := w.board.Ticket()
	if !ok {
		return nil, ErrViewClosed
	}
	sess, err := w.employer()
	if err != nil {
		return nil, err
	}
	return w.load(ctx, sess, tk)
}

func (w *workflow) Close() {
	w.board.Reset()
}

func (w *workflow) Board() ([]domain.Posting, bool) {
	if !w.board.Mounted() {
		return nil, false
	}
	return w.board.Load()
}

func (w *workflow) Transition(ctx context.Context, req domain.TransitionReq) (domain.Outcome, error) {
	sess, err := w.employer()
	if err != nil {
		return domain.Outcome{}, err
	}
	if err = req.Validate(); err != nil {
		return domain.Outcome{}, err
	}
	tk, ok := w.board.Ticket()
	if !ok {
		return domain.Outcome{}, ErrViewClosed
	}
	postings, _ := w.board.Load()
	posting, app, ok := domain.Find(postings, req.ApplicationID)
	if !ok {
		return domain.Outcome{}, errApplicationNotFound
	}
	applicantID := req.ApplicantID
	if applicantID == "" {
		applicantID = app.Applicant.ID
	}

	resp, err := w.update(ctx, sess.Token, req.ApplicationID, jobapi.StatusReq{
		ApplicantID: applicantID,
		Status:      string(req.Target),
	})
	if err != nil {
		if errors.Is(err, bizerr.ErrAuth) {
			if err1 := w.sess.Invalidate(context.WithoutCancel(ctx), sess.Token); err1 != nil {
				w.logger.Error("清理失效会话失败", elog.FieldErr(err1))
			}
		}
		return domain.Outcome{}, updateFailed(err)
	}

	err = w.producer.Produce(context.WithoutCancel(ctx), event.StatusEvent{
		ApplicationID: req.ApplicationID,
		ApplicantID:   applicantID,
		JobID:         posting.JobID,
		JobTitle:      posting.Title,
		From:          string(app.Status),
		To:            string(req.Target),
		Message:       resp.Message,
		Ctime:         time.Now().UnixMilli(),
	})
	if err != nil {
		w.logger.Error("发送状态变更事件失败", elog.FieldErr(err),
			elog.String("applicationId", req.ApplicationID))
	}

	res := domain.Outcome{Message: resp.Message, Notice: notifiedNotice}
	board, err := w.load(ctx, sess, tk)
	switch {
	case errors.Is(err, ErrViewClosed):
		// 面板已经关了，没有需要刷新的东西
	case err != nil:
		w.logger.Warn("状态变更之后刷新面板失败", elog.FieldErr(err))
		res.Warning = refreshWarning
	default:
		res.Board = board
	}
	return res, nil
}

func (w *workflow) update(ctx context.Context, token, applicationID string, req jobapi.StatusReq) (jobapi.Message, error) {
	// 变更一旦发出就不随调用方取消
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), w.transferTimeout)
	defer cancel()
	return w.client.UpdateStatus(ctx, token, applicationID, req)
}

func (w *workflow) load(ctx context.Context, sess session.Session, tk viewx.Ticket) ([]domain.Posting, error) {
	jobs, err := w.client.EmployerDashboard(ctx, sess.Token)
	if err != nil {
		if errors.Is(err, bizerr.ErrAuth) {
			if err1 := w.sess.Invalidate(ctx, sess.Token); err1 != nil {
				w.logger.Error("清理失效会话失败", elog.FieldErr(err1))
			}
		}
		return nil, bizerr.Wrap(err, loadFailedMsg)
	}
	res := slice.Map(jobs, func(idx int, src jobapi.Job) domain.Posting {
		return toPosting(src)
	})
	if !w.board.Store(tk, res) {
		return nil, ErrViewClosed
	}
	return res, nil
}

func (w *workflow) employer() (session.Session, error) {
	sess, _ := w.sess.Current()
	if err := capability.Allowed(sess, capability.ActionReview); err != nil {
		return session.Session{}, err
	}
	return sess, nil
}

// updateFailed 保留错误的分类，提示统一用 Failed to update status
func updateFailed(err error) error {
	kind := bizerr.Kind(err)
	if kind == nil {
		kind = bizerr.ErrTransfer
	}
	res := &bizerr.Error{Kind: kind, Msg: updateFailedMsg, Cause: err}
	var be *bizerr.Error
	if errors.As(err, &be) {
		res.Status = be.Status
	}
	return res
}

func toPosting(j jobapi.Job) domain.Posting {
	return domain.Posting{
		JobID:    j.ID,
		Title:    j.Title,
		Company:  j.Company,
		Location: j.Location,
		Applications: slice.Map(j.Applications, func(idx int, src jobapi.Application) domain.Application {
			res := domain.Application{
				ID:    src.ID,
				JobID: j.ID,
				Applicant: application.Applicant{
					ID:    src.Applicant.ID,
					Name:  src.Applicant.Name,
					Email: src.Applicant.Email,
				},
				Resume: src.Resume,
				Status: domain.Status(src.Status),
			}
			if src.AppliedAt > 0 {
				res.AppliedAt = time.UnixMilli(src.AppliedAt)
			}
			return res
		}),
	}
}
