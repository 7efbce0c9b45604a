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
	SystemError     = ErrorCode{Code: 505001, Msg: "系统错误"}
	Unauthorized    = ErrorCode{Code: 405001, Msg: "must log in as employer"}
	ValidationError = ErrorCode{Code: 405002, Msg: "invalid status"}
	// NotFound 申请不在当前展示的列表里
	NotFound   = ErrorCode{Code: 405003, Msg: "Application not found"}
	Conflict   = ErrorCode{Code: 405004, Msg: "Failed to update status"}
	ViewClosed = ErrorCode{Code: 405005, Msg: "view is not open"}
	// UpdateFailed 网络或者服务端故障，可以重试
	UpdateFailed = ErrorCode{Code: 505002, Msg: "Failed to update status"}
	LoadFailed   = ErrorCode{Code: 505003, Msg: "Failed to fetch job data"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
