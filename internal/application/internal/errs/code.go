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
	SystemError = ErrorCode{Code: 504001, Msg: "系统错误"}
	// NotLoggedIn 前端收到之后跳转到登录页
	NotLoggedIn     = ErrorCode{Code: 404001, Msg: "Please log in to apply"}
	Unauthorized    = ErrorCode{Code: 404002, Msg: "must log in as job seeker"}
	ValidationError = ErrorCode{Code: 404003, Msg: "参数错误"}
	JobNotFound     = ErrorCode{Code: 404004, Msg: "Job not found"}
	// SubmitInProgress 同一个表单已经有一次提交在路上了
	SubmitInProgress = ErrorCode{Code: 404005, Msg: "submission in progress"}
	ViewClosed       = ErrorCode{Code: 404006, Msg: "view is not open"}
	SubmitFailed     = ErrorCode{Code: 504002, Msg: "Failed to submit application"}
	LoadFailed       = ErrorCode{Code: 504003, Msg: "Failed to load applications"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
