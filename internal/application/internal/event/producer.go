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

package event

import (
	"github.com/ecodeclub/jobboard/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

const SubmittedEventName = "application_submitted_events"

// SubmittedEvent 服务端确认收到了一份申请
type SubmittedEvent struct {
	JobID       string `json:"jobId"`
	JobTitle    string `json:"jobTitle"`
	ApplicantID string `json:"applicantId"`
	// Message 服务端的确认信息
	Message string `json:"message"`
	// Ctime 毫秒
	Ctime int64 `json:"ctime"`
}

type SubmittedEventProducer = mqx.Producer[SubmittedEvent]

func NewSubmittedEventProducer(q mq.MQ) (SubmittedEventProducer, error) {
	return mqx.NewJSONProducer[SubmittedEvent](q, SubmittedEventName)
}
