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

import (
	"github.com/ecodeclub/jobboard/internal/application"
	"github.com/ecodeclub/jobboard/internal/pkg/bizerr"
)

type Status = application.Status

type Application = application.Application

var targets = []Status{
	application.StatusInterview,
	application.StatusRejected,
	application.StatusAccepted,
}

// Targets 雇主可以把申请改成的状态，和当前状态无关，也不会包含 pending
func Targets(current Status) []Status {
	res := make([]Status, len(targets))
	copy(res, targets)
	return res
}

// Posting 雇主面板上的一个职位和它收到的申请
type Posting struct {
	JobID        string
	Title        string
	Company      string
	Location     string
	Applications []Application
}

// Find 只在当前展示的列表里面找
func Find(postings []Posting, applicationID string) (Posting, Application, bool) {
	for _, p := range postings {
		for _, a := range p.Applications {
			if a.ID == applicationID {
				return p, a, true
			}
		}
	}
	return Posting{}, Application{}, false
}

type TransitionReq struct {
	ApplicationID string
	ApplicantID   string
	Target        Status
}

func (r TransitionReq) Validate() error {
	if r.ApplicationID == "" {
		return bizerr.Validation("application id is required")
	}
	if !r.Target.Decided() {
		return bizerr.Validation("invalid status")
	}
	return nil
}

// Outcome 一次状态变更成功之后给用户的反馈
type Outcome struct {
	// Message 服务端的确认信息
	Message string
	Notice  string
	// Warning 变更成功了，但是刷新面板失败
	Warning string
	Board   []Posting
}
