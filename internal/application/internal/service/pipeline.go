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
	"sync"
	"sync/atomic"
	"time"

	"github.com/ecodeclub/jobboard/internal/application/internal/domain"
	"github.com/ecodeclub/jobboard/internal/application/internal/event"
	"github.com/ecodeclub/jobboard/internal/capability"
	"github.com/ecodeclub/jobboard/internal/job"
	"github.com/ecodeclub/jobboard/internal/jobapi"
	"github.com/ecodeclub/jobboard/internal/pkg/bizerr"
	"github.com/ecodeclub/jobboard/internal/pkg/viewx"
	"github.com/ecodeclub/jobboard/internal/resume"
	"github.com/ecodeclub/jobboard/internal/session"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

var (
	// ErrSubmitInProgress 同一个表单上已经有一次提交没有返回
	ErrSubmitInProgress = errors.New("申请正在提交中")
	// ErrViewClosed 页面没有打开，或者结果回来的时候页面已经关闭
	ErrViewClosed = errors.New("申请页面没有打开")
	// ErrLoginRequired 没有登录就提交，调用方会被带到登录页
	ErrLoginRequired = bizerr.Auth("Please log in to apply")

	errNoResume         = bizerr.Validation("Please upload your resume")
	errAlreadySubmitted = bizerr.Validation("Application already submitted")
)

const (
	ActionLogin = "login"

	onlyJobseekerNotice = "Only job seekers can apply"
	submittedMsg        = "Application submitted successfully!"
	submitFailedMsg     = "Failed to submit application"
)

type Config struct {
	// RedirectDelay 提交成功之后多久跳回职位列表
	RedirectDelay   time.Duration `yaml:"redirectDelay"`
	TransferTimeout time.Duration `yaml:"transferTimeout"`
}

// ApplyView 申请页面打开之后看到的内容
type ApplyView struct {
	Job      job.Job
	CanApply bool
	// Notice 不能申请的原因
	Notice string
	// Actions 页面上额外展示的操作，例如 login
	Actions []string
	Form    domain.ApplyForm
}

//go:generate mockgen -source=./pipeline.go -destination=../../mocks/pipeline.mock.go -package=appmocks Service
type Service interface {
	Open(ctx context.Context, jobID string) (ApplyView, error)
	// SelectResume 校验不通过的文件只在表单上提示，不会发到网络上
	SelectResume(jobID string, f resume.File) (domain.ApplyForm, error)
	Submit(ctx context.Context, jobID string) (domain.ApplyForm, error)
	Form(jobID string) (domain.ApplyForm, bool)
	Close(jobID string)
}

type pipeline struct {
	jobs     job.Service
	sess     session.Service
	client   jobapi.Client
	producer event.SubmittedEventProducer
	nav      viewx.Navigator
	sched    viewx.Scheduler
	cfg      Config
	logger   *elog.Component

	mu    sync.Mutex
	views map[string]*applyView
}

func NewService(jobs job.Service, sess session.Service, client jobapi.Client,
	producer event.SubmittedEventProducer, nav viewx.Navigator, sched viewx.Scheduler, cfg Config) Service {
	return &pipeline{
		jobs:     jobs,
		sess:     sess,
		client:   client,
		producer: producer,
		nav:      nav,
		sched:    sched,
		cfg:      cfg,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("application.pipeline")),
		views:    make(map[string]*applyView),
	}
}

func (p *pipeline) Open(ctx context.Context, jobID string) (ApplyView, error) {
	p.mu.Lock()
	v, ok := p.views[jobID]
	if !ok {
		v = &applyView{}
		p.views[jobID] = v
	}
	p.mu.Unlock()

	tk := v.mount.Open()
	v.reset(jobID)
	j, err := p.jobs.Detail(ctx, jobID)
	if err != nil {
		return ApplyView{}, err
	}
	sess, _ := p.sess.Current()
	res := ApplyView{Job: j, CanApply: capability.CanApply(sess)}
	if !res.CanApply {
		res.Notice = onlyJobseekerNotice
		if !sess.LoggedIn() {
			res.Actions = []string{ActionLogin}
		}
	}
	if !v.mount.Apply(tk, func() {
		v.mu.Lock()
		v.job = j
		res.Form = v.form
		v.mu.Unlock()
	}) {
		return ApplyView{}, ErrViewClosed
	}
	return res, nil
}

func (p *pipeline) SelectResume(jobID string, f resume.File) (domain.ApplyForm, error) {
	v, tk, err := p.mounted(jobID)
	if err != nil {
		return domain.ApplyForm{}, err
	}
	art, err := resume.Validate(f)
	var form domain.ApplyForm
	if !v.mount.Apply(tk, func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		if err != nil {
			// 之前选好的简历保留
			v.form.FileError = bizerr.Message(err, resume.ErrUnsupportedType.Error())
		} else {
			v.resume = &art
			v.form.ResumeName = art.FileName()
			v.form.ResumeSize = art.Size()
			v.form.FileError = ""
		}
		form = v.form
	}) {
		return domain.ApplyForm{}, ErrViewClosed
	}
	return form, err
}

func (p *pipeline) Submit(ctx context.Context, jobID string) (domain.ApplyForm, error) {
	v, tk, err := p.mounted(jobID)
	if err != nil {
		return domain.ApplyForm{}, err
	}
	sess, ok := p.sess.Current()
	if !ok {
		p.nav.Navigate(viewx.PathLogin)
		return v.snapshot(), ErrLoginRequired
	}
	if err = capability.Allowed(sess, capability.ActionApply); err != nil {
		return v.snapshot(), err
	}
	if !v.inFlight.CompareAndSwap(false, true) {
		return v.snapshot(), ErrSubmitInProgress
	}
	defer v.inFlight.Store(false)

	var (
		art   resume.Artifact
		title string
	)
	if !v.mount.Apply(tk, func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		switch {
		case v.resume == nil:
			err = errNoResume
			v.form.Message = bizerr.Message(errNoResume, "")
		case v.form.State == domain.FormSucceeded:
			err = errAlreadySubmitted
		default:
			art = *v.resume
			title = v.job.Title
			v.form.State = domain.FormSubmitting
			v.form.Message = ""
		}
	}) {
		return domain.ApplyForm{}, ErrViewClosed
	}
	if err != nil {
		return v.snapshot(), err
	}

	resp, err := p.transfer(ctx, sess.Token, jobID, art)
	if err != nil {
		return p.fail(ctx, v, tk, sess, err)
	}
	return p.succeed(ctx, v, tk, sess, jobID, title, resp)
}

func (p *pipeline) transfer(ctx context.Context, token, jobID string, art resume.Artifact) (jobapi.Message, error) {
	// 页面关闭或者请求断开都不会中断已经开始的上传
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.cfg.TransferTimeout)
	defer cancel()
	return p.client.Apply(ctx, token, jobID, jobapi.ResumeFile{
		Name:     art.FileName(),
		MimeType: art.MimeType(),
		Content:  art.Content(),
	}, shortuuid.New())
}

func (p *pipeline) succeed(ctx context.Context, v *applyView, tk viewx.Ticket,
	sess session.Session, jobID, title string, resp jobapi.Message) (domain.ApplyForm, error) {
	msg := resp.Message
	if msg == "" {
		msg = submittedMsg
	}
	err := p.producer.Produce(context.WithoutCancel(ctx), event.SubmittedEvent{
		JobID:       jobID,
		JobTitle:    title,
		ApplicantID: sess.Identity.ID,
		Message:     msg,
		Ctime:       time.Now().UnixMilli(),
	})
	if err != nil {
		p.logger.Error("发送申请成功事件失败", elog.FieldErr(err), elog.String("jobId", jobID))
	}

	var form domain.ApplyForm
	if !v.mount.Apply(tk, func() {
		v.mu.Lock()
		v.form.State = domain.FormSucceeded
		v.form.Message = msg
		form = v.form
		v.mu.Unlock()
	}) {
		p.logger.Info("申请已经提交，页面已经关闭", elog.String("jobId", jobID))
		return domain.ApplyForm{}, ErrViewClosed
	}
	cancel := p.sched.After(p.cfg.RedirectDelay, func() {
		if v.mount.Valid(tk) {
			p.nav.Navigate(viewx.PathJobs)
		}
	})
	v.mu.Lock()
	v.cancelRedirect = cancel
	v.mu.Unlock()
	return form, nil
}

func (p *pipeline) fail(ctx context.Context, v *applyView, tk viewx.Ticket,
	sess session.Session, err error) (domain.ApplyForm, error) {
	if errors.Is(err, bizerr.ErrAuth) {
		if err1 := p.sess.Invalidate(context.WithoutCancel(ctx), sess.Token); err1 != nil {
			p.logger.Error("清理失效会话失败", elog.FieldErr(err1))
		}
	}
	res := bizerr.Wrap(err, submitFailedMsg)
	var form domain.ApplyForm
	if !v.mount.Apply(tk, func() {
		v.mu.Lock()
		v.form.State = domain.FormFailed
		v.form.Message = bizerr.Message(res, submitFailedMsg)
		form = v.form
		v.mu.Unlock()
	}) {
		p.logger.Warn("提交申请失败，页面已经关闭", elog.FieldErr(err))
		return domain.ApplyForm{}, ErrViewClosed
	}
	return form, res
}

func (p *pipeline) Form(jobID string) (domain.ApplyForm, bool) {
	p.mu.Lock()
	v, ok := p.views[jobID]
	p.mu.Unlock()
	if !ok || !v.mount.Mounted() {
		return domain.ApplyForm{}, false
	}
	return v.snapshot(), true
}

func (p *pipeline) Close(jobID string) {
	p.mu.Lock()
	v, ok := p.views[jobID]
	delete(p.views, jobID)
	p.mu.Unlock()
	if !ok {
		return
	}
	v.mount.Close()
	v.mu.Lock()
	if v.cancelRedirect != nil {
		v.cancelRedirect()
		v.cancelRedirect = nil
	}
	v.mu.Unlock()
}

func (p *pipeline) mounted(jobID string) (*applyView, viewx.Ticket, error) {
	p.mu.Lock()
	v, ok := p.views[jobID]
	p.mu.Unlock()
	if !ok {
		return nil, viewx.Ticket{}, ErrViewClosed
	}
	tk, ok := v.mount.Ticket()
	if !ok {
		return nil, viewx.Ticket{}, ErrViewClosed
	}
	return v, tk, nil
}

// applyView 一个职位的申请页面
// 锁的顺序是先 mount 再 mu
type applyView struct {
	mount    viewx.Mount
	inFlight atomic.Bool

	mu             sync.Mutex
	job            job.Job
	form           domain.ApplyForm
	resume         *resume.Artifact
	cancelRedirect func()
}

func (v *applyView) reset(jobID string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.cancelRedirect != nil {
		v.cancelRedirect()
		v.cancelRedirect = nil
	}
	v.job = job.Job{}
	v.form = domain.ApplyForm{JobID: jobID}
	v.resume = nil
}

func (v *applyView) snapshot() domain.ApplyForm {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.form
}
