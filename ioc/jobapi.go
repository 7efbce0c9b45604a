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

package ioc

import (
	"time"

	"github.com/ecodeclub/jobboard/internal/jobapi"
	"github.com/gotomicro/ego/client/ehttp"
	"github.com/gotomicro/ego/core/econf"
)

// InitJobAPI 地址和超时在 jobapi 下配置，重试参数在 jobapi.retry 下
func InitJobAPI() jobapi.Client {
	cfg := jobapi.RetryConfig{
		Interval:    100 * time.Millisecond,
		MaxInterval: time.Second,
		MaxRetries:  3,
	}
	err := econf.UnmarshalKey("jobapi.retry", &cfg)
	if err != nil {
		panic(err)
	}
	comp := ehttp.Load("jobapi").Build()
	return jobapi.NewRestyClient(comp.Client, cfg)
}
