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
	"strings"
	"unicode"

	"github.com/ecodeclub/jobboard/internal/job/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const noMatchNotice = "No jobs found matching your search"

type SearchResult struct {
	Jobs []domain.Job
	// Notice 没有结果时给用户的提示
	Notice string
}

// Search 在标题、公司、地点和技能里面做子串匹配，忽略大小写和重音
// 空的搜索词返回全部
func Search(jobs []domain.Job, term string) SearchResult {
	term = strings.TrimSpace(term)
	if term == "" {
		return SearchResult{Jobs: jobs}
	}
	needle := fold(term)
	res := make([]domain.Job, 0, len(jobs))
	for _, job := range jobs {
		if matches(job, needle) {
			res = append(res, job)
		}
	}
	if len(res) == 0 {
		return SearchResult{Jobs: res, Notice: noMatchNotice}
	}
	return SearchResult{Jobs: res}
}

func matches(job domain.Job, needle string) bool {
	for _, field := range []string{job.Title, job.Company, job.Location} {
		if strings.Contains(fold(field), needle) {
			return true
		}
	}
	for _, skill := range job.Skills {
		if strings.Contains(fold(skill), needle) {
			return true
		}
	}
	return false
}

// fold 每次都新建 transformer，它们不是并发安全的
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	res, _, err := transform.String(t, s)
	if err != nil {
		res = s
	}
	return cases.Fold().String(res)
}
