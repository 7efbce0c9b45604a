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

package capability

import (
	"github.com/ecodeclub/jobboard/internal/pkg/bizerr"
	"github.com/ecodeclub/jobboard/internal/session"
)

// Action 需要按照角色放行的操作
type Action uint8

const (
	ActionApply Action = iota + 1
	ActionPostJob
	// ActionReview 雇主处理申请
	ActionReview
	// ActionTrackApplications 求职者查看自己的申请
	ActionTrackApplications
)

type Dashboard uint8

const (
	DashboardNone Dashboard = iota
	DashboardEmployer
	DashboardCandidate
)

func (d Dashboard) String() string {
	switch d {
	case DashboardEmployer:
		return "employer"
	case DashboardCandidate:
		return "candidate"
	default:
		return "none"
	}
}

var (
	ErrMustLogIn = bizerr.Auth("must log in")

	errMustBeJobseeker = bizerr.Auth("must log in as job seeker")
	errMustBeEmployer  = bizerr.Auth("Only employers can post jobs")
	errPostJobAnon     = bizerr.Auth("Unauthorized access! Please log in")
	errReviewer        = bizerr.Auth("must log in as employer")
)

func CanApply(s session.Session) bool {
	return s.LoggedIn() && s.Role() == session.RoleJobseeker
}

func CanPostJob(s session.Session) bool {
	return s.LoggedIn() && s.Role() == session.RoleEmployer
}

func DashboardFor(s session.Session) (Dashboard, error) {
	if !s.LoggedIn() {
		return DashboardNone, ErrMustLogIn
	}
	switch s.Role() {
	case session.RoleEmployer:
		return DashboardEmployer, nil
	case session.RoleJobseeker:
		return DashboardCandidate, nil
	default:
		return DashboardNone, ErrMustLogIn
	}
}

// Allowed 放行返回 nil，否则返回带提示的 AuthError
func Allowed(s session.Session, a Action) error {
	switch a {
	case ActionApply, ActionTrackApplications:
		if CanApply(s) {
			return nil
		}
		return errMustBeJobseeker
	case ActionPostJob:
		if CanPostJob(s) {
			return nil
		}
		if !s.LoggedIn() {
			return errPostJobAnon
		}
		return errMustBeEmployer
	case ActionReview:
		if CanPostJob(s) {
			return nil
		}
		return errReviewer
	default:
		return ErrMustLogIn
	}
}
