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

import "github.com/ecodeclub/jobboard/internal/job/internal/domain"

type Job struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Description  string   `json:"description,omitempty"`
	Requirements []string `json:"requirements,omitempty"`
	Location     string   `json:"location"`
	Salary       string   `json:"salary"`
	Skills       []string `json:"skills,omitempty"`
}

func newJob(j domain.Job) Job {
	return Job{
		ID:           j.ID,
		Title:        j.Title,
		Company:      j.Company,
		Description:  j.Description,
		Requirements: j.RequirementLines(),
		Location:     j.Location,
		Salary:       j.Salary,
		Skills:       j.Skills,
	}
}

type ListResp struct {
	Total  int    `json:"total"`
	Jobs   []Job  `json:"jobs"`
	Notice string `json:"notice,omitempty"`
}

type PostReq struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Description  string   `json:"description"`
	Location     string   `json:"location"`
	Salary       string   `json:"salary"`
	Requirements string   `json:"requirements"`
	Skills       []string `json:"skills"`
}

func (r PostReq) toDomain() domain.Job {
	return domain.Job{
		Title:        r.Title,
		Company:      r.Company,
		Description:  r.Description,
		Location:     r.Location,
		Salary:       r.Salary,
		Requirements: r.Requirements,
		Skills:       r.Skills,
	}
}
