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
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/ecodeclub/jobboard/internal/application"
	"github.com/ecodeclub/jobboard/internal/jobapi"
	jobapimocks "github.com/ecodeclub/jobboard/internal/jobapi/mocks"
	"github.com/ecodeclub/jobboard/internal/pkg/bizerr"
	"github.com/ecodeclub/jobboard/internal/review/internal/domain"
	"github.com/ecodeclub/jobboard/internal/review/internal/event"
	"github.com/ecodeclub/jobboard/internal/session"
	sessmocks "github.com/ecodeclub/jobboard/internal/session/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func dashboardWith(status string) []jobapi.Job {
	return []jobapi.Job{
		{
			ID:    "j1",
			Title: "Go Engineer",
			Applications: []jobapi.Application{
				{ID: "a1", Applicant: jobapi.User{ID: "u9", Name: "Bob"}, Status: status},
			},
		},
	}
}

func boardWith(status application.Status) []domain.Posting {
	return []domain.Posting{
		{
			JobID: "j1",
			Title: "Go Engineer",
			Applications: []domain.Application{
				{ID: "a1", JobID: "j1", Applicant: application.Applicant{ID: "u9", Name: "Bob"}, Status: status},
			},
		},
	}
}

func mustSession(t *testing.T, role session.Role) session.Session {
	s, err := session.NewSession(session.Identity{ID: "e1", Role: role}, "tok-"+role.String())
	require.NoError(t, err)
	return s
}

func TestWorkflow_Open(t *testing.T) {
	testCases := []struct {
		name string
		mock func(t *testing.T, ctrl *gomock.Controller) (jobapi.Client, session.Service)

		wantErr   error
		wantMsg   string
		wantBoard []domain.Posting
	}{
		{
			name: "雇主",
			mock: func(t *testing.T, ctrl *gomock.Controller) (jobapi.Client, session.Service) {
				sess := sessmocks.NewMockService(ctrl)
				sess.EXPECT().Current().Return(mustSession(t, session.RoleEmployer), true)
				client := jobapimocks.NewMockClient(ctrl)
				client.EXPECT().EmployerDashboard(gomock.Any(), "tok-employer").Return(dashboardWith("pending"), nil)
				return client, sess
			},
			wantBoard: boardWith(application.StatusPending),
		},
		{
			name: "求职者",
			mock: func(t *testing.T, ctrl *gomock.Controller) (jobapi.Client, session.Service) {
				sess := sessmocks.NewMockService(ctrl)
				sess.EXPECT().Current().Return(mustSession(t, session.RoleJobseeker), true)
				return jobapimocks.NewMockClient(ctrl), sess
			},
			wantErr: bizerr.ErrAuth,
			wantMsg: "must log in as employer",
		},
		{
			name: "未登录",
			mock: func(t *testing.T, ctrl *gomock.Controller) (jobapi.Client, session.Service) {
				sess := sessmocks.NewMockService(ctrl)
				sess.EXPECT().Current().Return(session.Session{}, false)
				return jobapimocks.NewMockClient(ctrl), sess
			},
			wantErr: bizerr.ErrAuth,
			wantMsg: "must log in as employer",
		},
		{
			name: "服务不可用",
			mock: func(t *testing.T, ctrl *gomock.Controller) (jobapi.Client, session.Service) {
				sess := sessmocks.NewMockService(ctrl)
				sess.EXPECT().Current().Return(mustSession(t, session.RoleEmployer), true)
				client := jobapimocks.NewMockClient(ctrl)
				client.EXPECT().EmployerDashboard(gomock.Any(), gomock.Any()).
					Return(nil, bizerr.Transfer("", errors.New("connection refused")))
				return client, sess
			},
			wantErr: bizerr.ErrTransfer,
			wantMsg: "Failed to fetch job data",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			client, sess := tc.mock(t, ctrl)
			svc := NewService(client, sess, &recordingProducer{}, time.Second)
			board, err := svc.Open(context.Background())
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				assert.Equal(t, tc.wantMsg, bizerr.Message(err, ""))
				return
			}
			assert.Equal(t, tc.wantBoard, board)
			loaded, ok := svc.Board()
			assert.True(t, ok)
			assert.Equal(t, tc.wantBoard, loaded)
		})
	}
}

func TestWorkflow_Transition(t *testing.T) {
	testCases := []struct {
		name string
		mock func(client *jobapimocks.MockClient, sess *sessmocks.MockService)
		req  domain.TransitionReq

		wantErr     error
		wantMsg     string
		wantOutcome domain.Outcome
		// wantBoard 变更之后面板上展示的数据
		wantBoard  []domain.Posting
		wantEvents []event.StatusEvent
	}{
		{
			name: "变更成功_重新拉取面板",
			mock: func(client *jobapimocks.MockClient, sess *sessmocks.MockService) {
				client.EXPECT().UpdateStatus(gomock.Any(), "tok-employer", "a1",
					jobapi.StatusReq{ApplicantID: "u9", Status: "Accepted"}).
					Return(jobapi.Message{Message: "Status updated"}, nil)
				client.EXPECT().EmployerDashboard(gomock.Any(), "tok-employer").Return(dashboardWith("Accepted"), nil)
			},
			req: domain.TransitionReq{ApplicationID: "a1", ApplicantID: "u9", Target: application.StatusAccepted},
			wantOutcome: domain.Outcome{
				Message: "Status updated",
				Notice:  "Notification sent to candidate via e-mail",
				Board:   boardWith(application.StatusAccepted),
			},
			wantBoard: boardWith(application.StatusAccepted),
			wantEvents: []event.StatusEvent{
				{ApplicationID: "a1", ApplicantID: "u9", JobID: "j1", JobTitle: "Go Engineer",
					From: "pending", To: "Accepted", Message: "Status updated"},
			},
		},
		{
			name: "不能改回 pending",
			mock: func(client *jobapimocks.MockClient, sess *sessmocks.MockService) {},
			req:  domain.TransitionReq{ApplicationID: "a1", Target: application.StatusPending},

			wantErr:   bizerr.ErrValidation,
			wantMsg:   "invalid status",
			wantBoard: boardWith(application.StatusPending),
		},
		{
			name: "申请不在列表里",
			mock: func(client *jobapimocks.MockClient, sess *sessmocks.MockService) {},
			req:  domain.TransitionReq{ApplicationID: "a9", Target: application.StatusRejected},

			wantErr:   bizerr.ErrNotFound,
			wantMsg:   "Application not found",
			wantBoard: boardWith(application.StatusPending),
		},
		{
			name: "服务端拒绝",
			mock: func(client *jobapimocks.MockClient, sess *sessmocks.MockService) {
				client.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), "a1", gomock.Any()).
					Return(jobapi.Message{}, bizerr.FromStatus(http.StatusConflict, "Application withdrawn"))
			},
			req: domain.TransitionReq{ApplicationID: "a1", Target: application.StatusRejected},

			wantErr:   bizerr.ErrConflict,
			wantMsg:   "Failed to update status",
			wantBoard: boardWith(application.StatusPending),
		},
		{
			name: "token 失效",
			mock: func(client *jobapimocks.MockClient, sess *sessmocks.MockService) {
				client.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), "a1", gomock.Any()).
					Return(jobapi.Message{}, bizerr.FromStatus(http.StatusUnauthorized, ""))
				sess.EXPECT().Invalidate(gomock.Any(), "tok-employer").Return(nil)
			},
			req: domain.TransitionReq{ApplicationID: "a1", Target: application.StatusRejected},

			wantErr:   bizerr.ErrAuth,
			wantMsg:   "Failed to update status",
			wantBoard: boardWith(application.StatusPending),
		},
		{
			name: "刷新失败_只是警告",
			mock: func(client *jobapimocks.MockClient, sess *sessmocks.MockService) {
				client.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), "a1",
					jobapi.StatusReq{ApplicantID: "u9", Status: "Rejected"}).
					Return(jobapi.Message{Message: "Status updated"}, nil)
				client.EXPECT().EmployerDashboard(gomock.Any(), gomock.Any()).
					Return(nil, bizerr.FromStatus(http.StatusBadGateway, ""))
			},
			// 没有带 applicantId 的时候用列表里的
			req: domain.TransitionReq{ApplicationID: "a1", Target: application.StatusRejected},
			wantOutcome: domain.Outcome{
				Message: "Status updated",
				Notice:  "Notification sent to candidate via e-mail",
				Warning: "Status updated, but the dashboard could not be refreshed",
			},
			wantBoard: boardWith(application.StatusPending),
			wantEvents: []event.StatusEvent{
				{ApplicationID: "a1", ApplicantID: "u9", JobID: "j1", JobTitle: "Go Engineer",
					From: "pending", To: "Rejected", Message: "Status updated"},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			sess := sessmocks.NewMockService(ctrl)
			sess.EXPECT().Current().Return(mustSession(t, session.RoleEmployer), true).AnyTimes()
			client := jobapimocks.NewMockClient(ctrl)
			client.EXPECT().EmployerDashboard(gomock.Any(), gomock.Any()).Return(dashboardWith("pending"), nil)
			producer := &recordingProducer{}
			svc := NewService(client, sess, producer, time.Second)
			_, err := svc.Open(context.Background())
			require.NoError(t, err)
			tc.mock(client, sess)

			outcome, err := svc.Transition(context.Background(), tc.req)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				assert.Equal(t, tc.wantMsg, bizerr.Message(err, ""))
			} else {
				assert.Equal(t, tc.wantOutcome, outcome)
			}
			board, _ := svc.Board()
			assert.Equal(t, tc.wantBoard, board)
			evts := producer.events()
			for i := range evts {
				assert.NotZero(t, evts[i].Ctime)
				evts[i].Ctime = 0
			}
			assert.Equal(t, tc.wantEvents, evts)
		})
	}
}

func TestWorkflow_ClosedView(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sess := sessmocks.NewMockService(ctrl)
	sess.EXPECT().Current().Return(mustSession(t, session.RoleEmployer), true).AnyTimes()
	svc := NewService(jobapimocks.NewMockClient(ctrl), sess, &recordingProducer{}, time.Second)

	_, err := svc.Transition(context.Background(),
		domain.TransitionReq{ApplicationID: "a1", Target: application.StatusAccepted})
	assert.ErrorIs(t, err, ErrViewClosed)
	_, err = svc.Refresh(context.Background())
	assert.ErrorIs(t, err, ErrViewClosed)
	_, ok := svc.Board()
	assert.False(t, ok)
}

func TestWorkflow_TransitionAfterClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sess := sessmocks.NewMockService(ctrl)
	sess.EXPECT().Current().Return(mustSession(t, session.RoleEmployer), true).AnyTimes()
	client := jobapimocks.NewMockClient(ctrl)
	client.EXPECT().EmployerDashboard(gomock.Any(), gomock.Any()).Return(dashboardWith("pending"), nil)
	producer := &recordingProducer{}
	svc := NewService(client, sess, producer, time.Second)
	_, err := svc.Open(context.Background())
	require.NoError(t, err)

	client.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), "a1", gomock.Any()).
		DoAndReturn(func(ctx context.Context, token, id string, req jobapi.StatusReq) (jobapi.Message, error) {
			// 变更在路上的时候面板被关掉
			svc.Close()
			return jobapi.Message{Message: "ok"}, nil
		})
	client.EXPECT().EmployerDashboard(gomock.Any(), gomock.Any()).Return(dashboardWith("Accepted"), nil)

	outcome, err := svc.Transition(context.Background(),
		domain.TransitionReq{ApplicationID: "a1", Target: application.StatusAccepted})
	require.NoError(t, err)
	assert.Nil(t, outcome.Board)
	assert.Empty(t, outcome.Warning)
	_, ok := svc.Board()
	assert.False(t, ok)
	assert.Len(t, producer.events(), 1)
}

type recordingProducer struct {
	mu   sync.Mutex
	evts []event.StatusEvent
}

func (p *recordingProducer) Produce(ctx context.Context, evt event.StatusEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.evts = append(p.evts, evt)
	return nil
}

func (p *recordingProducer) events() []event.StatusEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	res := make([]event.StatusEvent, len(p.evts))
	copy(res, p.evts)
	if len(res) == 0 {
		return nil
	}
	return res
}
