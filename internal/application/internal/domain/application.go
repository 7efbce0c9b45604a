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

package domain

import "time"

// Status 申请状态，取值就是服务端的原始字符串
type Status string

const (
	StatusPending   Status = "pending"
	StatusInterview Status = "Accepted for interview"
	StatusRejected  Status = "Rejected"
	StatusAccepted  Status = "Accepted"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInterview, StatusRejected, StatusAccepted:
		return true
	default:
		return false
	}
}

// Decided 已经被雇主处理过
func (s Status) Decided() bool {
	return s.Valid() && s != StatusPending
}

type Applicant struct {
	ID    string
	Name  string
	Email string
}

// JobSummary 求职者面板上展示的职位信息
type JobSummary struct {
	ID       string
	Title    string
	Company  string
	Location string
}

type Application struct {
	ID        string
	JobID     string
	Applicant Applicant
	// Resume 服务端保存的简历地址
	Resume    string
	Status    Status
	AppliedAt time.Time
	Job       JobSummary
}

type FormState uint8

const (
	FormIdle FormState = iota
	FormSubmitting
	FormSucceeded
	FormFailed
)

func (s FormState) String() string {
	switch s {
	case FormSubmitting:
		return "submitting"
	case FormSucceeded:
		return "succeeded"
	case FormFailed:
		return "failed"
	default:
		return "idle"
	}
}

// ApplyForm 申请表单的快照
type ApplyForm struct {
	JobID string
	State FormState
	// ResumeName 已经选中的简历，空字符串表示还没有选
	ResumeName string
	ResumeSize int64
	// Message 提交之后服务端返回的信息，或者失败原因
	Message string
	// FileError 最近一次选择的文件没有通过校验
	FileError string
}

func (f ApplyForm) HasResume() bool {
	return f.ResumeName != ""
}

// SubmitEnabled 成功之后表单不能再提交
func (f ApplyForm) SubmitEnabled() bool {
	return f.HasResume() && f.State != FormSubmitting && f.State != FormSucceeded
}
