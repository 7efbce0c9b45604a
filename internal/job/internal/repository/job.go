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

package repository

import (
	"context"
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobboard/internal/job/internal/domain"
	"github.com/ecodeclub/jobboard/internal/job/internal/repository/cache"
	"github.com/ecodeclub/jobboard/internal/jobapi"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/singleflight"
)

type JobRepository interface {
	List(ctx context.Context) ([]domain.Job, error)
	// Detail 先查缓存，同一个职位的并发请求只会回源一次
	Detail(ctx context.Context, id string) (domain.Job, error)
	Post(ctx context.Context, token string, job domain.Job) (domain.Job, error)
	// Warm 把列表里面的职位写进缓存
	Warm(ctx context.Context, jobs []domain.Job) error
}

type CachedJobRepository struct {
	client jobapi.Client
	cache  cache.JobCache
	group  singleflight.Group
	logger *elog.Component
}

func NewCachedJobRepository(client jobapi.Client, c cache.JobCache) JobRepository {
	return &CachedJobRepository{
		client: client,
		cache:  c,
		logger: elog.DefaultLogger.With(elog.FieldComponent("job.repository")),
	}
}

func (r *CachedJobRepository) List(ctx context.Context) ([]domain.Job, error) {
	jobs, err := r.client.ListJobs(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(jobs, func(idx int, src jobapi.Job) domain.Job {
		return toDomain(src)
	}), nil
}

func (r *CachedJobRepository) Detail(ctx context.Context, id string) (domain.Job, error) {
	job, err := r.cache.GetJob(ctx, id)
	if err == nil {
		return job, nil
	}
	if !errors.Is(err, cache.ErrJobNotFound) {
		// 缓存出问题不影响读
		r.logger.Warn("读取职位缓存失败", elog.String("id", id), elog.FieldErr(err))
	}
	val, err, _ := r.group.Do(id, func() (any, error) {
		res, err := r.client.GetJob(ctx, id)
		if err != nil {
			return domain.Job{}, err
		}
		job := toDomain(res)
		if err1 := r.cache.SetJob(ctx, job); err1 != nil {
			r.logger.Warn("回写职位缓存失败", elog.String("id", id), elog.FieldErr(err1))
		}
		return job, nil
	})
	if err != nil {
		return domain.Job{}, err
	}
	return val.(domain.Job), nil
}

func (r *CachedJobRepository) Post(ctx context.Context, token string, job domain.Job) (domain.Job, error) {
	res, err := r.client.PostJob(ctx, token, toAPI(job))
	if err != nil {
		return domain.Job{}, err
	}
	return toDomain(res), nil
}

func (r *CachedJobRepository) Warm(ctx context.Context, jobs []domain.Job) error {
	for _, job := range jobs {
		if err := r.cache.SetJob(ctx, job); err != nil {
			return err
		}
	}
	return nil
}

func toDomain(src jobapi.Job) domain.Job {
	return domain.Job{
		ID:           src.ID,
		Title:        src.Title,
		Company:      src.Company,
		Description:  src.Description,
		Requirements: src.Requirements,
		Location:     src.Location,
		Salary:       src.Salary,
		Skills:       src.Skills,
		EmployerID:   src.EmployerID,
	}
}

func toAPI(src domain.Job) jobapi.Job {
	return jobapi.Job{
		Title:        src.Title,
		Company:      src.Company,
		Description:  src.Description,
		Requirements: src.Requirements,
		Location:     src.Location,
		Salary:       src.Salary,
		Skills:       src.Skills,
	}
}
