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

package service

import (
	"testing"

	"github.com/ecodeclub/jobboard/internal/job/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSearch(t *testing.T) {
	jobs := []domain.Job{
		{ID: "1", Title: "Backend Engineer", Company: "Acme", Location: "Montréal", Skills: []string{"Go", "Kafka"}},
		{ID: "2", Title: "Frontend Developer", Company: "Globex", Location: "Berlin", Skills: []string{"React"}},
		{ID: "3", Title: "Data Analyst", Company: "Café Société", Location: "Paris"},
	}
	testCases := []struct {
		name       string
		term       string
		wantIDs    []string
		wantNotice string
	}{
		{name: "空搜索返回全部", term: "   ", wantIDs: []string{"1", "2", "3"}},
		{name: "标题忽略大小写", term: "ENGINEER", wantIDs: []string{"1"}},
		{name: "地点忽略重音", term: "montreal", wantIDs: []string{"1"}},
		{name: "公司带重音的搜索词", term: "société", wantIDs: []string{"3"}},
		{name: "技能", term: "react", wantIDs: []string{"2"}},
		{name: "多个命中", term: "e", wantIDs: []string{"1", "2", "3"}},
		{name: "没有命中", term: "cobol", wantIDs: []string{}, wantNotice: "No jobs found matching your search"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := Search(jobs, tc.term)
			ids := make([]string, 0, len(res.Jobs))
			for _, j := range res.Jobs {
				ids = append(ids, j.ID)
			}
			assert.Equal(t, tc.wantIDs, ids)
			assert.Equal(t, tc.wantNotice, res.Notice)
		})
	}
}
