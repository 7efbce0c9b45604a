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

package cronjob

import (
	"context"
	"fmt"

	"github.com/ecodeclub/jobboard/internal/job/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*WarmCacheJob)(nil)

// WarmCacheJob 定时把职位列表写进详情缓存，打开详情页的时候不用再回源
type WarmCacheJob struct {
	svc    service.Service
	logger *elog.Component
}

func NewWarmCacheJob(svc service.Service) *WarmCacheJob {
	return &WarmCacheJob{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (j *WarmCacheJob) Name() string {
	return "WarmJobCacheJob"
}

func (j *WarmCacheJob) Run(ctx context.Context) error {
	cnt, err := j.svc.WarmCache(ctx)
	if err != nil {
		return fmt.Errorf("预热职位缓存失败: %w", err)
	}
	j.logger.Debug("预热职位缓存", elog.Int("count", cnt))
	return nil
}
