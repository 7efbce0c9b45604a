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
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/ecodeclub/jobboard/internal/application/internal/domain"
	"github.com/ecodeclub/jobboard/internal/jobapi"
	jobapimocks "github.com/ecodeclub/jobboard/internal/jobapi/mocks"
	"github.com/ecodeclub/jobboard/internal/pkg/bizerr"
	"github.com/ecodeclub/jobboard/internal/session"
	sessmocks "github.com/ecodeclub/jobboard/internal/session/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCandidateDashboard_Open(t *testing.T) {
	seeker, err := session.NewSession(session.Identity{ID: "u1", Role: session.RoleJobseeker}, "tok-s")
	require.NoError(t, err)
	employer, err := session.NewSession(session.Identity{ID: "e1", Role: session.RoleEmployer}, "tok-e")
	require.NoError(t, err)
	appliedAt := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) (jobapi.Client, session.Service)

		wantErr  error
		wantMsg  string
		wantApps []domain.Application
	}{
		{
			name: "加载成功",
			mock: func(ctrl *gomock.Controller) (jobapi.Client, session.Service) {
				sess := sessmocks.NewMockService(ctrl)
				sess.EXPECT().Current().Return(seeker, true)
				client := jobapimocks.NewMockClient(ctrl)
				client.EXPECT().JobseekerDashboard(gomock.Any(), "tok-s").Return([]jobapi.Application{
					{
						ID:        "a1",
						Status:    "Accepted for interview",
						AppliedAt: appliedAt.UnixMilli(),
						Job:       &jobapi.Job{ID: "j1", Title: "Go Engineer", Company: "Acme"},
					},
				}, nil)
				return client, sess
			},
			wantApps: []domain.Application{
				{
					ID:        "a1",
					JobID:     "j1",
					Status:    domain.StatusInterview,
					AppliedAt: time.UnixMilli(appliedAt.UnixMilli()),
					Job:       domain.JobSummary{ID: "j1", Title: "Go Engineer", Company: "Acme"},
				},
			},
		},
		{
			name: "雇主不能查看",
			mock: func(ctrl *gomock.Controller) (jobapi.Client, session.Service) {
				sess := sessmocks.NewMockService(ctrl)
				sess.EXPECT().Current().Return(employer, true)
				return jobapimocks.NewMockClient(ctrl), sess
			},
			wantErr: bizerr.ErrAuth,
			wantMsg: "must log in as job seeker",
		},
		{
			name: "token 失效",
			mock: func(ctrl *gomock.Controller) (jobapi.Client, session.Service) {
				sess := sessmocks.NewMockService(ctrl)
				sess.EXPECT().Current().Return(seeker, true)
				sess.EXPECT().Invalidate(gomock.Any(), "tok-s").Return(nil)
				client := jobapimocks.NewMockClient(ctrl)
				client.EXPECT().JobseekerDashboard(gomock.Any(), "tok-s").
					Return(nil, bizerr.FromStatus(http.StatusUnauthorized, ""))
				return client, sess
			},
			wantErr: bizerr.ErrAuth,
			wantMsg: "Failed to load applications",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			d := NewDashboardService(tc.mock(ctrl))
			apps, err := d.Open(context.Background())
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				assert.Equal(t, tc.wantMsg, bizerr.Message(err, ""))
				_, loaded := d.Board()
				assert.False(t, loaded)
				return
			}
			assert.Equal(t, tc.wantApps, apps)
			board, loaded := d.Board()
			assert.True(t, loaded)
			assert.Equal(t, tc.wantApps, board)
		})
	}
}

func TestCandidateDashboard_DiscardAfterClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	seeker, err := session.NewSession(session.Identity{ID: "u1", Role: session.RoleJobseeker}, "tok-s")
	require.NoError(t, err)
	sess := sessmocks.NewMockService(ctrl)
	sess.EXPECT().Current().Return(seeker, true).AnyTimes()
	client := jobapimocks.NewMockClient(ctrl)

	started := make(chan struct{})
	release := make(chan struct{})
	client.EXPECT().JobseekerDashboard(gomock.Any(), "tok-s").
		DoAndReturn(func(ctx context.Context, token string) ([]jobapi.Application, error) {
			close(started)
			<-release
			return []jobapi.Application{{ID: "a1", Status: "pending"}}, nil
		})

	d := NewDashboardService(client, sess)
	var wg sync.WaitGroup
	wg.Add(1)
	var openErr error
	go func() {
		defer wg.Done()
		_, openErr = d.Open(context.Background())
	}()
	<-started
	d.Close()
	close(release)
	wg.Wait()

	assert.ErrorIs(t, openErr, ErrViewClosed)
	_, loaded := d.Board()
	assert.False(t, loaded)

	_, err = d.Refresh(context.Background())
	assert.ErrorIs(t, err, ErrViewClosed)
}
