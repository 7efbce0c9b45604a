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
	"strings"

	"github.com/ecodeclub/jobboard/internal/pkg/bizerr"
)

type Job struct {
	ID          string
	Title       string
	Company     string
	Description string
	// Requirements 一行一条
	Requirements string
	Location     string
	Salary       string
	Skills       []string
	EmployerID   string
}

// RequirementLines 去掉空行和首尾空白
func (j Job) RequirementLines() []string {
	lines := strings.Split(j.Requirements, "\n")
	res := make([]string, 0, len(lines))
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l != "" {
			res = append(res, l)
		}
	}
	return res
}

// ValidateForPost 发布职位的表单，除了技能之外都必填
func (j Job) ValidateForPost() error {
	fields := []struct {
		name string
		val  string
	}{
		{"Title", j.Title},
		{"Company", j.Company},
		{"Description", j.Description},
		{"Location", j.Location},
		{"Salary", j.Salary},
		{"Requirements", j.Requirements},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.val) == "" {
			return bizerr.Validation(f.name + " is required")
		}
	}
	return nil
}
