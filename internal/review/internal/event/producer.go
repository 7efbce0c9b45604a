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

const StatusEventName = "application_status_events"

// StatusEvent 雇主修改了申请状态，服务端已经确认
type StatusEvent struct {
	ApplicationID string `json:"applicationId"`
	ApplicantID   string `json:"applicantId"`
	JobID         string `json:"jobId"`
	JobTitle      string `json:"jobTitle"`
	From          string `json:"from"`
	To            string `json:"to"`
	Message       string `json:"message"`
	// Ctime 毫秒
	Ctime int64 `json:"ctime"`
}

type StatusEventProducer = mqx.Producer[StatusEvent]

func NewStatusEventProducer(q mq.MQ) (StatusEventProducer, error) {
	return mqx.NewJSONProducer[StatusEvent](q, StatusEventName)
}
