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
	"context"
	"time"

	"github.com/ecodeclub/jobboard/internal/notification/internal/domain"
	"github.com/ecodeclub/jobboard/internal/notification/internal/service"
	"github.com/ecodeclub/jobboard/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

const (
	SubmittedEventName = "application_submitted_events"
	StatusEventName    = "application_status_events"

	groupID = "notification.activity"
)

type SubmittedEvent struct {
	JobID       string `json:"jobId"`
	JobTitle    string `json:"jobTitle"`
	ApplicantID string `json:"applicantId"`
	Message     string `json:"message"`
	Ctime       int64  `json:"ctime"`
}

type StatusEvent struct {
	ApplicationID string `json:"applicationId"`
	ApplicantID   string `json:"applicantId"`
	JobID         string `json:"jobId"`
	JobTitle      string `json:"jobTitle"`
	From          string `json:"from"`
	To            string `json:"to"`
	Message       string `json:"message"`
	Ctime         int64  `json:"ctime"`
}

type Consumer interface {
	Start(ctx context.Context)
}

func NewSubmittedEventConsumer(q mq.MQ, feed service.Service) (*mqx.JSONConsumer[SubmittedEvent], error) {
	return mqx.NewJSONConsumer[SubmittedEvent](q, SubmittedEventName, groupID,
		func(ctx context.Context, evt SubmittedEvent) error {
			return feed.Record(ctx, domain.Activity{
				Kind:        domain.KindSubmitted,
				JobID:       evt.JobID,
				JobTitle:    evt.JobTitle,
				ApplicantID: evt.ApplicantID,
				Message:     evt.Message,
				Ctime:       toTime(evt.Ctime),
			})
		})
}

func NewStatusEventConsumer(q mq.MQ, feed service.Service) (*mqx.JSONConsumer[StatusEvent], error) {
	return mqx.NewJSONConsumer[StatusEvent](q, StatusEventName, groupID,
		func(ctx context.Context, evt StatusEvent) error {
			return feed.Record(ctx, domain.Activity{
				Kind:          domain.KindStatusChanged,
				JobID:         evt.JobID,
				JobTitle:      evt.JobTitle,
				ApplicationID: evt.ApplicationID,
				ApplicantID:   evt.ApplicantID,
				From:          evt.From,
				To:            evt.To,
				Message:       evt.Message,
				Ctime:         toTime(evt.Ctime),
			})
		})
}

func toTime(ms int64) time.Time {
	if ms <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}
