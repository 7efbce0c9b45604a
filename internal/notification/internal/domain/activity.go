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

type Kind string

const (
	KindSubmitted     Kind = "submitted"
	KindStatusChanged Kind = "status_changed"
)

// Activity 动态流里面的一条记录
type Activity struct {
	Kind          Kind
	JobID         string
	JobTitle      string
	ApplicationID string
	ApplicantID   string
	// From 和 To 只有状态变更才有
	From    string
	To      string
	Message string
	Ctime   time.Time
}

// Summary 给人看的一句话
func (a Activity) Summary() string {
	title := a.JobTitle
	if title == "" {
		title = a.JobID
	}
	switch a.Kind {
	case KindSubmitted:
		return "New application for " + title
	case KindStatusChanged:
		return "Application for " + title + " moved from " + a.From + " to " + a.To
	default:
		return a.Message
	}
}
