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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobboard/internal/review/internal/domain"
)

type Applicant struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

type Application struct {
	ID        string    `json:"id"`
	Applicant Applicant `json:"applicant"`
	Resume    string    `json:"resume,omitempty"`
	Status    string    `json:"status"`
	// AppliedAt 毫秒
	AppliedAt int64 `json:"appliedAt,omitempty"`
	// Targets 可以切换到的状态
	Targets []string `json:"targets"`
}

type Posting struct {
	JobID        string        `json:"jobId"`
	Title        string        `json:"title"`
	Company      string        `json:"company,omitempty"`
	Location     string        `json:"location,omitempty"`
	Applications []Application `json:"applications"`
}

type BoardResp struct {
	Postings []Posting `json:"postings"`
}

func newBoardResp(postings []domain.Posting) BoardResp {
	return BoardResp{Postings: slice.Map(postings, func(idx int, src domain.Posting) Posting {
		return newPosting(src)
	})}
}

func newPosting(p domain.Posting) Posting {
	return Posting{
		JobID:    p.JobID,
		Title:    p.Title,
		Company:  p.Company,
		Location: p.Location,
		Applications: slice.Map(p.Applications, func(idx int, src domain.Application) Application {
			res := Application{
				ID: src.ID,
				Applicant: Applicant{
					ID:    src.Applicant.ID,
					Name:  src.Applicant.Name,
					Email: src.Applicant.Email,
				},
				Resume:  src.Resume,
				Status:  string(src.Status),
				Targets: targets(src.Status),
			}
			if !src.AppliedAt.IsZero() {
				res.AppliedAt = src.AppliedAt.UnixMilli()
			}
			return res
		}),
	}
}

func targets(current domain.Status) []string {
	return slice.Map(domain.Targets(current), func(idx int, src domain.Status) string {
		return string(src)
	})
}

type StatusReq struct {
	ApplicantID string `json:"applicantId"`
	Status      string `json:"status"`
}

type OutcomeResp struct {
	Message string `json:"message,omitempty"`
	Notice  string `json:"notice"`
	Warning string `json:"warning,omitempty"`
	// Postings 刷新失败的时候为空
	Postings []Posting `json:"postings,omitempty"`
}
