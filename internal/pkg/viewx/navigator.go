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

package viewx

import (
	"sync"
	"time"

	"github.com/gotomicro/ego/core/elog"
)

const (
	PathLogin = "/login"
	PathJobs  = "/jobs"
)

// Navigator 页面跳转，前端通过 GET /location 轮询当前位置
type Navigator interface {
	Navigate(path string)
	Location() string
}

// Scheduler 延迟执行，测试里面替换成手动触发的实现
type Scheduler interface {
	After(d time.Duration, fn func()) (cancel func())
}

type Router struct {
	mu       sync.RWMutex
	location string
	logger   *elog.Component
}

func NewRouter() *Router {
	return &Router{
		location: PathJobs,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("viewx.router")),
	}
}

func (r *Router) Navigate(path string) {
	r.mu.Lock()
	r.location = path
	r.mu.Unlock()
	r.logger.Debug("跳转", elog.String("path", path))
}

func (r *Router) Location() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.location
}

type TimerScheduler struct{}

func (TimerScheduler) After(d time.Duration, fn func()) func() {
	timer := time.AfterFunc(d, fn)
	return func() {
		timer.Stop()
	}
}
