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

	"github.com/ecodeclub/ekit/list"
	"github.com/ecodeclub/jobboard/internal/notification/internal/domain"
	"github.com/gotomicro/ego/core/elog"
)

var errInvalidActivity = errors.New("动态缺少职位信息")

type Service interface {
	// Record 超过容量之后丢弃最早的
	Record(ctx context.Context, a domain.Activity) error
	// List 最新的在前面，limit <= 0 表示全部
	List(ctx context.Context, limit int) []domain.Activity
}

type feed struct {
	mu     sync.RWMutex
	items  *list.ArrayList[domain.Activity]
	size   int
	logger *elog.Component
}

func NewService(size int) Service {
	if size <= 0 {
		size = 1
	}
	return &feed{
		items:  list.NewArrayList[domain.Activity](size),
		size:   size,
		logger: elog.DefaultLogger.With(elog.FieldComponent("notification.feed")),
	}
}

func (f *feed) Record(ctx context.Context, a domain.Activity) error {
	if a.JobID == "" {
		return errInvalidActivity
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.items.Len() >= f.size {
		if _, err := f.items.Delete(0); err != nil {
			return err
		}
	}
	f.logger.Debug("记录动态", elog.String("kind", string(a.Kind)), elog.String("jobId", a.JobID))
	return f.items.Append(a)
}

func (f *feed) List(ctx context.Context, limit int) []domain.Activity {
	f.mu.RLock()
	defer f.mu.RUnlock()
	n := f.items.Len()
	if limit > 0 && limit < n {
		n = limit
	}
	res := make([]domain.Activity, 0, n)
	src := f.items.AsSlice()
	for i := len(src) - 1; i >= 0 && len(res) < n; i-- {
		res = append(res, src[i])
	}
	return res
}
