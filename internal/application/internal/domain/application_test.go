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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	testCases := []struct {
		status      Status
		wantValid   bool
		wantDecided bool
	}{
		{status: StatusPending, wantValid: true},
		{status: StatusInterview, wantValid: true, wantDecided: true},
		{status: StatusRejected, wantValid: true, wantDecided: true},
		{status: StatusAccepted, wantValid: true, wantDecided: true},
		{status: "accepted"},
		{status: ""},
	}
	for _, tc := range testCases {
		t.Run(string(tc.status), func(t *testing.T) {
			assert.Equal(t, tc.wantValid, tc.status.Valid())
			assert.Equal(t, tc.wantDecided, tc.status.Decided())
		})
	}
}

func TestApplyForm_SubmitEnabled(t *testing.T) {
	testCases := []struct {
		name string
		form ApplyForm
		want bool
	}{
		{name: "没有简历", form: ApplyForm{}},
		{name: "选好了简历", form: ApplyForm{ResumeName: "cv.pdf"}, want: true},
		{name: "提交中", form: ApplyForm{ResumeName: "cv.pdf", State: FormSubmitting}},
		{name: "已经成功", form: ApplyForm{ResumeName: "cv.pdf", State: FormSucceeded}},
		{name: "失败之后可以重试", form: ApplyForm{ResumeName: "cv.pdf", State: FormFailed}, want: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.form.SubmitEnabled())
		})
	}
}
