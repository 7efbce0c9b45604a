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

package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/jobboard/internal/job/internal/domain"
	"github.com/pkg/errors"
)

var ErrJobNotFound = errors.New("职位没有缓存")

//go:generate mockgen -source=./job.go -destination=./mocks/job.mock.go -package=cachemocks JobCache
type JobCache interface {
	GetJob(ctx context.Context, id string) (domain.Job, error)
	SetJob(ctx context.Context, job domain.Job) error
}

type jobCache struct {
	ec         ecache.Cache
	expiration time.Duration
}

func NewJobCache(ec ecache.Cache, expiration time.Duration) JobCache {
	return &jobCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "job:",
		},
		expiration: expiration,
	}
}

func (c *jobCache) GetJob(ctx context.Context, id string) (domain.Job, error) {
	val := c.ec.Get(ctx, c.key(id))
	if val.KeyNotFound() {
		return domain.Job{}, ErrJobNotFound
	}
	if val.Err != nil {
		return domain.Job{}, errors.Wrap(val.Err, "查询缓存出错")
	}
	str, err := val.String()
	if err != nil {
		return domain.Job{}, errors.Wrap(err, "缓存的职位不是字符串")
	}
	var job domain.Job
	err = json.Unmarshal([]byte(str), &job)
	if err != nil {
		return domain.Job{}, errors.Wrap(err, "反序列化职位失败")
	}
	return job, nil
}

func (c *jobCache) SetJob(ctx context.Context, job domain.Job) error {
	data, err := json.Marshal(job)
	if err != nil {
		return errors.Wrap(err, "序列化职位失败")
	}
	return c.ec.Set(ctx, c.key(job.ID), string(data), c.expiration)
}

func (c *jobCache) key(id string) string {
	return "detail:" + id
}
