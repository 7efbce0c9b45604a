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

	"github.com/ecodeclub/jobboard/internal/capability"
	"github.com/ecodeclub/jobboard/internal/job/internal/domain"
	"github.com/ecodeclub/jobboard/internal/job/internal/repository"
	"github.com/ecodeclub/jobboard/internal/pkg/bizerr"
	"github.com/ecodeclub/jobboard/internal/session"
	"github.com/gotomicro/ego/core/elog"
)

const (
	postFailedMsg   = "Job posting failed"
	detailFailedMsg = "Failed to load job details"
)

//go:generate mockgen -source=./job.go -destination=../../mocks/job.mock.go -package=jobmocks Service
type Service interface {
	List(ctx context.Context) ([]domain.Job, error)
	// Search 拉取列表之后在本地过滤
	Search(ctx context.Context, term string) (SearchResult, error)
	Detail(ctx context.Context, id string) (domain.Job, error)
	// Post 只有雇主可以发布
	Post(ctx context.Context, job domain.Job) (domain.Job, error)
	// WarmCache 把当前的职位列表写进详情缓存
	WarmCache(ctx context.Context) (int, error)
}

type service struct {
	repo   repository.JobRepository
	sess   session.Service
	logger *elog.Component
}

func NewService(repo repository.JobRepository, sess session.Service) Service {
	return &service{
		repo:   repo,
		sess:   sess,
		logger: elog.DefaultLogger.With(elog.FieldComponent("job.service")),
	}
}

func (s *service) List(ctx context.Context) ([]domain.Job, error) {
	return s.repo.List(ctx)
}

func (s *service) Search(ctx context.Context, term string) (SearchResult, error) {
	jobs, err := s.repo.List(ctx)
	if err != nil {
		return SearchResult{}, err
	}
	return Search(jobs, term), nil
}

func (s *service) Detail(ctx context.Context, id string) (domain.Job, error) {
	if id == "" {
		return domain.Job{}, bizerr.NotFound("Job not found")
	}
	job, err := s.repo.Detail(ctx, id)
	if err != nil {
		if errors.Is(err, bizerr.ErrNotFound) {
			return domain.Job{}, err
		}
		return domain.Job{}, bizerr.Wrap(err, detailFailedMsg)
	}
	return job, nil
}

func (s *service) Post(ctx context.Context, job domain.Job) (domain.Job, error) {
	sess, _ := s.sess.Current()
	if err := capability.Allowed(sess, capability.ActionPostJob); err != nil {
		return domain.Job{}, err
	}
	if err := job.ValidateForPost(); err != nil {
		return domain.Job{}, err
	}
	res, err := s.repo.Post(ctx, sess.Token, job)
	if err != nil {
		if errors.Is(err, bizerr.ErrAuth) {
			if err1 := s.sess.Invalidate(ctx, sess.Token); err1 != nil {
				s.logger.Error("清理失效会话失败", elog.FieldErr(err1))
			}
		}
		return domain.Job{}, bizerr.Wrap(err, postFailedMsg)
	}
	return res, nil
}

func (s *service) WarmCache(ctx context.Context) (int, error) {
	jobs, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(jobs), s.repo.Warm(ctx, jobs)
}
