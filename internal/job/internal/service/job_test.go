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
	"testing"

	"github.com/ecodeclub/jobboard/internal/job/internal/domain"
	"github.com/ecodeclub/jobboard/internal/pkg/bizerr"
	"github.com/ecodeclub/jobboard/internal/session"
	sessmocks "github.com/ecodeclub/jobboard/internal/session/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var posting = domain.Job{
	Title:        "Go Engineer",
	Company:      "Acme",
	Description:  "Build the board",
	Location:     "Remote",
	Salary:       "100k",
	Requirements: "Go\nSQL",
}

func newSession(t *testing.T, role session.Role, token string) session.Session {
	s, err := session.NewSession(session.Identity{ID: "u1", Role: role}, token)
	require.NoError(t, err)
	return s
}

func TestService_Post(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T, ctrl *gomock.Controller) session.Service
		repo    *stubRepo
		job     domain.Job
		wantErr error
		wantMsg string
		// wantPosted 是否发出了请求
		wantPosted bool
	}{
		{
			name: "雇主发布成功",
			mock: func(t *testing.T, ctrl *gomock.Controller) session.Service {
				svc := sessmocks.NewMockService(ctrl)
				svc.EXPECT().Current().Return(newSession(t, session.RoleEmployer, "tok-e"), true)
				return svc
			},
			repo:       &stubRepo{},
			job:        posting,
			wantPosted: true,
		},
		{
			name: "求职者不能发布",
			mock: func(t *testing.T, ctrl *gomock.Controller) session.Service {
				svc := sessmocks.NewMockService(ctrl)
				svc.EXPECT().Current().Return(newSession(t, session.RoleJobseeker, "tok-s"), true)
				return svc
			},
			repo:    &stubRepo{},
			job:     posting,
			wantErr: bizerr.ErrAuth,
			wantMsg: "Only employers can post jobs",
		},
		{
			name: "未登录",
			mock: func(t *testing.T, ctrl *gomock.Controller) session.Service {
				svc := sessmocks.NewMockService(ctrl)
				svc.EXPECT().Current().Return(session.Session{}, false)
				return svc
			},
			repo:    &stubRepo{},
			job:     posting,
			wantErr: bizerr.ErrAuth,
			wantMsg: "Unauthorized access! Please log in",
		},
		{
			name: "缺少字段",
			mock: func(t *testing.T, ctrl *gomock.Controller) session.Service {
				svc := sessmocks.NewMockService(ctrl)
				svc.EXPECT().Current().Return(newSession(t, session.RoleEmployer, "tok-e"), true)
				return svc
			},
			repo:    &stubRepo{},
			job:     domain.Job{Title: "Go Engineer"},
			wantErr: bizerr.ErrValidation,
			wantMsg: "Company is required",
		},
		{
			name: "token 失效_清理会话",
			mock: func(t *testing.T, ctrl *gomock.Controller) session.Service {
				svc := sessmocks.NewMockService(ctrl)
				svc.EXPECT().Current().Return(newSession(t, session.RoleEmployer, "tok-e"), true)
				svc.EXPECT().Invalidate(gomock.Any(), "tok-e").Return(nil)
				return svc
			},
			repo:       &stubRepo{postErr: bizerr.FromStatus(http.StatusUnauthorized, "Token expired")},
			job:        posting,
			wantErr:    bizerr.ErrAuth,
			wantMsg:    "Token expired",
			wantPosted: true,
		},
		{
			name: "服务端错误_使用默认提示",
			mock: func(t *testing.T, ctrl *gomock.Controller) session.Service {
				svc := sessmocks.NewMockService(ctrl)
				svc.EXPECT().Current().Return(newSession(t, session.RoleEmployer, "tok-e"), true)
				return svc
			},
			repo:       &stubRepo{postErr: bizerr.FromStatus(http.StatusInternalServerError, "")},
			job:        posting,
			wantErr:    bizerr.ErrTransfer,
			wantMsg:    "Job posting failed",
			wantPosted: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.repo, tc.mock(t, ctrl))
			res, err := svc.Post(context.Background(), tc.job)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantPosted, tc.repo.posted)
			if err != nil {
				assert.Equal(t, tc.wantMsg, bizerr.Message(err, ""))
				return
			}
			assert.Equal(t, "j-new", res.ID)
			assert.Equal(t, "tok-e", tc.repo.token)
		})
	}
}

func TestService_Detail(t *testing.T) {
	svc := NewService(&stubRepo{detailErr: bizerr.FromStatus(http.StatusBadGateway, "")}, nil)
	_, err := svc.Detail(context.Background(), "j1")
	assert.ErrorIs(t, err, bizerr.ErrTransfer)
	assert.Equal(t, "Failed to load job details", bizerr.Message(err, ""))

	_, err = svc.Detail(context.Background(), "")
	assert.ErrorIs(t, err, bizerr.ErrNotFound)

	svc = NewService(&stubRepo{detailErr: bizerr.NotFound("Job not found")}, nil)
	_, err = svc.Detail(context.Background(), "gone")
	assert.ErrorIs(t, err, bizerr.ErrNotFound)
}

func TestService_SearchAndWarm(t *testing.T) {
	repo := &stubRepo{jobs: []domain.Job{{ID: "1", Title: "Go Engineer"}, {ID: "2", Title: "Designer"}}}
	svc := NewService(repo, nil)

	res, err := svc.Search(context.Background(), "go")
	require.NoError(t, err)
	assert.Len(t, res.Jobs, 1)

	cnt, err := svc.WarmCache(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, cnt)
	assert.Len(t, repo.warmed, 2)

	_, err = NewService(&stubRepo{listErr: errors.New("down")}, nil).Search(context.Background(), "")
	assert.Error(t, err)
}

type stubRepo struct {
	jobs      []domain.Job
	listErr   error
	detailErr error
	postErr   error

	posted bool
	token  string
	warmed []domain.Job
}

func (s *stubRepo) List(ctx context.Context) ([]domain.Job, error) {
	return s.jobs, s.listErr
}

func (s *stubRepo) Detail(ctx context.Context, id string) (domain.Job, error) {
	if s.detailErr != nil {
		return domain.Job{}, s.detailErr
	}
	return domain.Job{ID: id}, nil
}

func (s *stubRepo) Post(ctx context.Context, token string, job domain.Job) (domain.Job, error) {
	s.posted = true
	s.token = token
	if s.postErr != nil {
		return domain.Job{}, s.postErr
	}
	job.ID = "j-new"
	return job, nil
}

func (s *stubRepo) Warm(ctx context.Context, jobs []domain.Job) error {
	s.warmed = append(s.warmed, jobs...)
	return nil
}
