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

package web

import (
	"github.com/ecodeclub/jobboard/internal/application/internal/domain"
	"github.com/ecodeclub/jobboard/internal/application/internal/service"
)

type Job struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Description  string   `json:"description,omitempty"`
	Requirements []string `json:"requirements,omitempty"`
	Location     string   `json:"location"`
	Salary       string   `json:"salary"`
}

type Form struct {
	JobID         string `json:"jobId"`
	State         string `json:"state"`
	ResumeName    string `json:"resumeName,omitempty"`
	ResumeSize    int64  `json:"resumeSize,omitempty"`
	Message       string `json:"message,omitempty"`
	FileError     string `json:"fileError,omitempty"`
	SubmitEnabled bool   `json:"submitEnabled"`
}

func newForm(f domain.ApplyForm) Form {
	return Form{
		JobID:         f.JobID,
		State:         f.State.String(),
		ResumeName:    f.ResumeName,
		ResumeSize:    f.ResumeSize,
		Message:       f.Message,
		FileError:     f.FileError,
		SubmitEnabled: f.SubmitEnabled(),
	}
}

type ApplyView struct {
	Job      Job      `json:"job"`
	CanApply bool     `json:"canApply"`
	Notice   string   `json:"notice,omitempty"`
	Actions  []string `json:"actions,omitempty"`
	// Form 不能申请的时候不渲染表单
	Form *Form `json:"form,omitempty"`
}

func newApplyView(v service.ApplyView) ApplyView {
	res := ApplyView{
		Job: Job{
			ID:           v.Job.ID,
			Title:        v.Job.Title,
			Company:      v.Job.Company,
			Description:  v.Job.Description,
			Requirements: v.Job.RequirementLines(),
			Location:     v.Job.Location,
			Salary:       v.Job.Salary,
		},
		CanApply: v.CanApply,
		Notice:   v.Notice,
		Actions:  v.Actions,
	}
	if v.CanApply {
		form := newForm(v.Form)
		res.Form = &form
	}
	return res
}

type Application struct {
	ID       string `json:"id"`
	JobID    string `json:"jobId"`
	JobTitle string `json:"jobTitle"`
	Company  string `json:"company"`
	Location string `json:"location,omitempty"`
	Status   string `json:"status"`
	// AppliedAt 毫秒
	AppliedAt int64 `json:"appliedAt,omitempty"`
}

func newApplication(a domain.Application) Application {
	res := Application{
		ID:       a.ID,
		JobID:    a.JobID,
		JobTitle: a.Job.Title,
		Company:  a.Job.Company,
		Location: a.Job.Location,
		Status:   string(a.Status),
	}
	if !a.AppliedAt.IsZero() {
		res.AppliedAt = a.AppliedAt.UnixMilli()
	}
	return res
}

type DashboardResp struct {
	Total        int           `json:"total"`
	Applications []Application `json:"applications"`
}
