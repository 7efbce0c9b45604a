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

package errs

var (
	SystemError = ErrorCode{Code: 503001, Msg: "系统错误"}
	// JobNotFound 职位不存在或者已经下线
	JobNotFound     = ErrorCode{Code: 403101, Msg: "Job not found"}
	ValidationError = ErrorCode{Code: 403102, Msg: "参数错误"}
	Unauthorized    = ErrorCode{Code: 403103, Msg: "Unauthorized access! Please log in"}
	// LoadFailed 职位服务暂时不可用，用户可以重试
	LoadFailed = ErrorCode{Code: 503002, Msg: "Failed to load jobs"}
	PostFailed = ErrorCode{Code: 503003, Msg: "Job posting failed"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
