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
	"github.com/ecodeclub/jobboard/internal/application/internal/event"
	"github.com/ecodeclub/jobboard/internal/job"
	jobmocks "github.com/ecodeclub/jobboard/internal/job/mocks"
	"github.com/ecodeclub/jobboard/internal/jobapi"
	jobapimocks "github.com/ecodeclub/jobboard/internal/jobapi/mocks"
	"github.com/ecodeclub/jobboard/internal/pkg/bizerr"
	"github.com/ecodeclub/jobboard/internal/pkg/viewx"
	"github.com/ecodeclub/jobboard/internal/resume"
	"github.com/ecodeclub/jobboard/internal/session"
	sessmocks "github.com/ecodeclub/jobboard/internal/session/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const applyPath = "/jobs/j1/apply"

var (
	pdfContent = []byte("%PDF-1.4\n%âãÏÓ\n1 0 obj\n<<>>\nendobj\n")
	cv         = resume.NewFile("cv.pdf", resume.MimePDF, pdfContent)
	goJob      = job.Job{ID: "j1", Title: "Go Engineer", Company: "Acme"}
)

type fixture struct {
	jobs     *jobmocks.MockService
	sess     *sessmocks.MockService
	client   *jobapimocks.MockClient
	producer *recordingProducer
	router   *viewx.Router
	sched    *manualScheduler
	svc      Service
}

// newFixture role 为 RoleUnknown 表示没有登录
func newFixture(t *testing.T, ctrl *gomock.Controller, role session.Role) *fixture {
	f := &fixture{
		jobs:     jobmocks.NewMockService(ctrl),
		sess:     sessmocks.NewMockService(ctrl),
		client:   jobapimocks.NewMockClient(ctrl),
		producer: &recordingProducer{},
		router:   viewx.NewRouter(),
		sched:    &manualScheduler{},
	}
	if role == session.RoleUnknown {
		f.sess.EXPECT().Current().Return(session.Session{}, false).AnyTimes()
	} else {
		s, err := session.NewSession(session.Identity{ID: "u1", Name: "Ann", Role: role}, "tok-"+role.String())
		require.NoError(t, err)
		f.sess.EXPECT().Current().Return(s, true).AnyTimes()
	}
	f.router.Navigate(applyPath)
	f.svc = NewService(f.jobs, f.sess, f.client, f.producer, f.router, f.sched, Config{
		RedirectDelay:   2 * time.Second,
		TransferTimeout: 10 * time.Second,
	})
	return f
}

func (f *fixture) open(t *testing.T) {
	f.jobs.EXPECT().Detail(gomock.Any(), "j1").Return(goJob, nil)
	_, err := f.svc.Open(context.Background(), "j1")
	require.NoError(t, err)
}

func (f *fixture) openWithResume(t *testing.T) {
	f.open(t)
	_, err := f.svc.SelectResume("j1", cv)
	require.NoError(t, err)
}

func TestPipeline_Open(t *testing.T) {
	testCases := []struct {
		name string
		role session.Role
		mock func(f *fixture)

		wantErr  error
		wantView ApplyView
	}{
		{
			name: "求职者",
			role: session.RoleJobseeker,
			mock: func(f *fixture) {
				f.jobs.EXPECT().Detail(gomock.Any(), "j1").Return(goJob, nil)
			},
			wantView: ApplyView{Job: goJob, CanApply: true, Form: domain.ApplyForm{JobID: "j1"}},
		},
		{
			name: "雇主",
			role: session.RoleEmployer,
			mock: func(f *fixture) {
				f.jobs.EXPECT().Detail(gomock.Any(), "j1").Return(goJob, nil)
			},
			wantView: ApplyView{
				Job:    goJob,
				Notice: "Only job seekers can apply",
				Form:   domain.ApplyForm{JobID: "j1"},
			},
		},
		{
			name: "未登录",
			role: session.RoleUnknown,
			mock: func(f *fixture) {
				f.jobs.EXPECT().Detail(gomock.Any(), "j1").Return(goJob, nil)
			},
			wantView: ApplyView{
				Job:     goJob,
				Notice:  "Only job seekers can apply",
				Actions: []string{ActionLogin},
				Form:    domain.ApplyForm{JobID: "j1"},
			},
		},
		{
			name: "职位不存在",
			role: session.RoleJobseeker,
			mock: func(f *fixture) {
				f.jobs.EXPECT().Detail(gomock.Any(), "j1").Return(job.Job{}, bizerr.NotFound("Job not found"))
			},
			wantErr: bizerr.ErrNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			f := newFixture(t, ctrl, tc.role)
			tc.mock(f)
			view, err := f.svc.Open(context.Background(), "j1")
			assert.ErrorIs(t, err, tc.wantErr)
			if err == nil {
				assert.Equal(t, tc.wantView, view)
			}
		})
	}
}

func TestPipeline_SelectResume(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(t, ctrl, session.RoleJobseeker)

	_, err := f.svc.SelectResume("j1", cv)
	assert.ErrorIs(t, err, ErrViewClosed)

	f.open(t)
	form, err := f.svc.SelectResume("j1", cv)
	require.NoError(t, err)
	assert.Equal(t, "cv.pdf", form.ResumeName)
	assert.True(t, form.SubmitEnabled())

	// 不合法的文件不会覆盖已经选好的简历
	form, err = f.svc.SelectResume("j1", resume.NewFile("notes.txt", "text/plain", []byte("hello")))
	assert.ErrorIs(t, err, bizerr.ErrValidation)
	assert.Equal(t, "unsupported file type", form.FileError)
	assert.Equal(t, "cv.pdf", form.ResumeName)

	big := resume.NewFile("big.pdf", resume.MimePDF, make([]byte, resume.MaxSize+1))
	form, err = f.svc.SelectResume("j1", big)
	assert.ErrorIs(t, err, bizerr.ErrValidation)
	assert.Equal(t, "file too large", form.FileError)
	assert.Equal(t, "cv.pdf", form.ResumeName)

	form, err = f.svc.SelectResume("j1", cv)
	require.NoError(t, err)
	assert.Empty(t, form.FileError)
}

func TestPipeline_SubmitPreconditions(t *testing.T) {
	testCases := []struct {
		name   string
		role   session.Role
		before func(t *testing.T, f *fixture)

		wantErr      error
		wantMsg      string
		wantLocation string
	}{
		{
			name:         "未登录_跳转登录页",
			role:         session.RoleUnknown,
			before:       func(t *testing.T, f *fixture) { f.openWithResume(t) },
			wantErr:      bizerr.ErrAuth,
			wantMsg:      "Please log in to apply",
			wantLocation: viewx.PathLogin,
		},
		{
			name:         "雇主不能申请",
			role:         session.RoleEmployer,
			before:       func(t *testing.T, f *fixture) { f.openWithResume(t) },
			wantErr:      bizerr.ErrAuth,
			wantMsg:      "must log in as job seeker",
			wantLocation: applyPath,
		},
		{
			name:         "没有简历",
			role:         session.RoleJobseeker,
			before:       func(t *testing.T, f *fixture) { f.open(t) },
			wantErr:      bizerr.ErrValidation,
			wantMsg:      "Please upload your resume",
			wantLocation: applyPath,
		},
		{
			name: "已经提交成功",
			role: session.RoleJobseeker,
			before: func(t *testing.T, f *fixture) {
				f.openWithResume(t)
				f.client.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(jobapi.Message{Message: "Applied"}, nil)
				_, err := f.svc.Submit(context.Background(), "j1")
				require.NoError(t, err)
			},
			wantErr:      bizerr.ErrValidation,
			wantMsg:      "Application already submitted",
			wantLocation: applyPath,
		},
		{
			name:         "页面没有打开",
			role:         session.RoleJobseeker,
			before:       func(t *testing.T, f *fixture) {},
			wantErr:      ErrViewClosed,
			wantLocation: applyPath,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			f := newFixture(t, ctrl, tc.role)
			tc.before(t, f)
			_, err := f.svc.Submit(context.Background(), "j1")
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantMsg != "" {
				assert.Equal(t, tc.wantMsg, bizerr.Message(err, ""))
			}
			assert.Equal(t, tc.wantLocation, f.router.Location())
		})
	}
}

func TestPipeline_SubmitSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(t, ctrl, session.RoleJobseeker)
	f.openWithResume(t)

	var key string
	f.client.EXPECT().Apply(gomock.Any(), "tok-jobseeker", "j1", jobapi.ResumeFile{
		Name:     "cv.pdf",
		MimeType: resume.MimePDF,
		Content:  pdfContent,
	}, gomock.Any()).DoAndReturn(func(ctx context.Context, token, jobID string,
		file jobapi.ResumeFile, idempotencyKey string) (jobapi.Message, error) {
		// 调用方取消了也不影响上传
		assert.NoError(t, ctx.Err())
		key = idempotencyKey
		return jobapi.Message{Message: "Applied successfully"}, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	form, err := f.svc.Submit(ctx, "j1")
	require.NoError(t, err)
	assert.NotEmpty(t, key)
	assert.Equal(t, domain.FormSucceeded, form.State)
	assert.Equal(t, "Applied successfully", form.Message)
	assert.False(t, form.SubmitEnabled())

	evts := f.producer.events()
	require.Len(t, evts, 1)
	assert.Equal(t, "j1", evts[0].JobID)
	assert.Equal(t, "Go Engineer", evts[0].JobTitle)
	assert.Equal(t, "u1", evts[0].ApplicantID)

	// 延迟之后才跳转
	assert.Equal(t, applyPath, f.router.Location())
	assert.Equal(t, []time.Duration{2 * time.Second}, f.sched.delays())
	f.sched.fire()
	assert.Equal(t, viewx.PathJobs, f.router.Location())
}

func TestPipeline_SubmitFailure(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(f *fixture)
		wantErr error
		wantMsg string
	}{
		{
			name: "服务端给了提示",
			mock: func(f *fixture) {
				f.client.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(jobapi.Message{}, bizerr.FromStatus(http.StatusBadRequest, "You have already applied"))
			},
			wantErr: bizerr.ErrValidation,
			wantMsg: "You have already applied",
		},
		{
			name: "服务端没有提示",
			mock: func(f *fixture) {
				f.client.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(jobapi.Message{}, bizerr.FromStatus(http.StatusInternalServerError, ""))
			},
			wantErr: bizerr.ErrTransfer,
			wantMsg: "Failed to submit application",
		},
		{
			name: "token 失效_清理会话",
			mock: func(f *fixture) {
				f.client.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(jobapi.Message{}, bizerr.FromStatus(http.StatusUnauthorized, ""))
				f.sess.EXPECT().Invalidate(gomock.Any(), "tok-jobseeker").Return(nil)
			},
			wantErr: bizerr.ErrAuth,
			wantMsg: "Failed to submit application",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			f := newFixture(t, ctrl, session.RoleJobseeker)
			f.openWithResume(t)
			tc.mock(f)

			form, err := f.svc.Submit(context.Background(), "j1")
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantMsg, bizerr.Message(err, ""))
			assert.Equal(t, domain.FormFailed, form.State)
			assert.Equal(t, tc.wantMsg, form.Message)
			// 简历保留，可以直接重试
			assert.Equal(t, "cv.pdf", form.ResumeName)
			assert.True(t, form.SubmitEnabled())
			assert.Empty(t, f.producer.events())
			assert.Empty(t, f.sched.delays())
		})
	}
}

func TestPipeline_DoubleSubmit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(t, ctrl, session.RoleJobseeker)
	f.openWithResume(t)

	started := make(chan struct{})
	release := make(chan struct{})
	f.client.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, token, jobID string,
			file jobapi.ResumeFile, idempotencyKey string) (jobapi.Message, error) {
			close(started)
			<-release
			return jobapi.Message{Message: "Applied"}, nil
		}).Times(1)

	var wg sync.WaitGroup
	wg.Add(1)
	var firstErr error
	go func() {
		defer wg.Done()
		_, firstErr = f.svc.Submit(context.Background(), "j1")
	}()
	<-started

	form, err := f.svc.Submit(context.Background(), "j1")
	assert.ErrorIs(t, err, ErrSubmitInProgress)
	assert.Equal(t, domain.FormSubmitting, form.State)
	assert.False(t, form.SubmitEnabled())

	close(release)
	wg.Wait()
	require.NoError(t, firstErr)
	form, ok := f.svc.Form("j1")
	require.True(t, ok)
	assert.Equal(t, domain.FormSucceeded, form.State)
}

func TestPipeline_DiscardAfterClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(t, ctrl, session.RoleJobseeker)
	f.openWithResume(t)

	started := make(chan struct{})
	release := make(chan struct{})
	f.client.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, token, jobID string,
			file jobapi.ResumeFile, idempotencyKey string) (jobapi.Message, error) {
			close(started)
			<-release
			return jobapi.Message{Message: "Applied"}, nil
		})

	var wg sync.WaitGroup
	wg.Add(1)
	var submitErr error
	go func() {
		defer wg.Done()
		_, submitErr = f.svc.Submit(context.Background(), "j1")
	}()
	<-started
	f.svc.Close("j1")
	close(release)
	wg.Wait()

	assert.ErrorIs(t, submitErr, ErrViewClosed)
	_, ok := f.svc.Form("j1")
	assert.False(t, ok)
	assert.Empty(t, f.sched.delays())
	assert.Equal(t, applyPath, f.router.Location())
	// 服务端已经收到了申请，事件照常发出
	assert.Len(t, f.producer.events(), 1)

	// 重新打开是一张新的表单
	f.open(t)
	form, ok := f.svc.Form("j1")
	require.True(t, ok)
	assert.Equal(t, domain.ApplyForm{JobID: "j1"}, form)
}

func TestPipeline_CloseCancelsRedirect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(t, ctrl, session.RoleJobseeker)
	f.openWithResume(t)
	f.client.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(jobapi.Message{}, nil)

	form, err := f.svc.Submit(context.Background(), "j1")
	require.NoError(t, err)
	assert.Equal(t, "Application submitted successfully!", form.Message)

	f.svc.Close("j1")
	f.sched.fire()
	assert.Equal(t, applyPath, f.router.Location())
}

type recordingProducer struct {
	mu   sync.Mutex
	evts []event.SubmittedEvent
}

func (p *recordingProducer) Produce(ctx context.Context, evt event.SubmittedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.evts = append(p.evts, evt)
	return nil
}

func (p *recordingProducer) events() []event.SubmittedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.evts
}

// manualScheduler 只有调用 fire 的时候才执行
type manualScheduler struct {
	mu    sync.Mutex
	tasks []*scheduledTask
}

type scheduledTask struct {
	delay     time.Duration
	fn        func()
	cancelled bool
}

func (s *manualScheduler) After(d time.Duration, fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	task := &scheduledTask{delay: d, fn: fn}
	s.tasks = append(s.tasks, task)
	return func() {
		s.mu.Lock()
		task.cancelled = true
		s.mu.Unlock()
	}
}

func (s *manualScheduler) delays() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	var res []time.Duration
	for _, task := range s.tasks {
		res = append(res, task.delay)
	}
	return res
}

func (s *manualScheduler) fire() {
	s.mu.Lock()
	var fns []func()
	for _, task := range s.tasks {
		if !task.cancelled {
			fns = append(fns, task.fn)
		}
	}
	s.tasks = nil
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
