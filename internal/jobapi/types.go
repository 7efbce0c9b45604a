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

package jobapi

// 以下都是和职位服务交互的报文，不要直接当成 domain 用

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginResp struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type Job struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Description string   `json:"description"`
	// Requirements 一行一条
	Requirements string   `json:"requirements"`
	Location     string   `json:"location"`
	Salary       string   `json:"salary"`
	Skills       []string `json:"skills,omitempty"`
	EmployerID   string   `json:"employerId,omitempty"`
	// Applications 只有雇主面板会返回
	Applications []Application `json:"applications,omitempty"`
}

type Application struct {
	ID        string `json:"id"`
	JobID     string `json:"jobId"`
	Applicant User   `json:"applicant"`
	// Resume 简历在服务端的路径
	Resume    string `json:"resume"`
	Status    string `json:"status"`
	AppliedAt int64  `json:"appliedAt"`
	// Job 只有求职者面板会返回
	Job *Job `json:"job,omitempty"`
}

// ResumeFile 上传用的简历文件
type ResumeFile struct {
	Name     string
	MimeType string
	Content  []byte
}

type StatusReq struct {
	ApplicantID string `json:"applicantId"`
	Status      string `json:"status"`
}

// Message 服务端的确认信息，错误响应也是这个格式
type Message struct {
	Message string `json:"message"`
}
