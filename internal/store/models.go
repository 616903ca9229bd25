// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION. All rights reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"time"

	"github.com/j50301m/notify-server/internal/enums"
)

// NotifyRecord is one delivered (or recorded) notification for one user.
type NotifyRecord struct {
	ID                  int64
	ClientID            int64
	UserID              int64
	UserAccount         string
	ClientNotifyEventID int64
	SenderID            int64
	SenderAccount       string
	SenderIP            *string
	NotifyType          enums.NotifyType
	NotifyLevel         enums.NotifyLevel
	NotifyStatus        enums.NotifyStatus
	Title               string
	Content             string
	CreateAt            time.Time
	UpdateAt            time.Time
}

// ClientNotifyEvent is an event registered for one tenant on one platform.
// Rows with IsSystemEvent keep id and name immutable and cannot be deleted.
type ClientNotifyEvent struct {
	ID            int64
	ClientID      int64
	Platform      enums.Platform
	IsSystemEvent bool
	Name          string
	Memo          string
	NotifyTypes   []enums.NotifyType
	EditorAccount string
	CreateAt      time.Time
	UpdateAt      time.Time
}

// HasNotifyType reports whether the event has t enabled.
func (e *ClientNotifyEvent) HasNotifyType(t enums.NotifyType) bool {
	for _, nt := range e.NotifyTypes {
		if nt == t {
			return true
		}
	}
	return false
}

// ClientNotifyTemplate is the (title, content) payload bound to an event
// for one tenant, channel and language. At most one row exists per
// (client_id, client_notify_event, notify_type, language_id).
type ClientNotifyTemplate struct {
	ID                int64
	ClientID          int64
	ClientNotifyEvent int64
	LanguageID        enums.Language
	KeyList           []string
	NotifyType        enums.NotifyType
	Title             string
	Content           string
	IsSystem          bool
	CreateAt          time.Time
	UpdateAt          time.Time
}

// BackstageSendTask is one admin-initiated broadcast. task_status starts
// Pending and transitions exactly once to Success or Fail.
type BackstageSendTask struct {
	ID              int64
	ClientID        int64
	ClientEventID   int64
	SenderID        int64
	SenderAccount   string
	SenderIP        *string
	ReceiverCount   int32
	ReceiverAccount []string
	ReceiverID      []int64
	TaskName        string
	NotifyLevel     enums.NotifyLevel
	TaskStatus      enums.TaskStatus
	ErrorMessage    *string
	CreateAt        time.Time
	UpdateAt        time.Time
}

// BackstageSendTaskDetail is one template shipped by a task, captured at
// send time.
type BackstageSendTaskDetail struct {
	ID                  int64
	BackstageSendTaskID int64
	NotifyLevel         enums.NotifyLevel
	NotifyType          enums.NotifyType
	Title               string
	Content             string
}

// MqSuccessRecord is an append-only audit row written by the single
// worker after a successful dispatch.
type MqSuccessRecord struct {
	ID         int64
	NotifyID   int64
	ClientID   int64
	UserID     int64
	SenderID   int64
	NotifyType enums.NotifyType
	Title      string
	Content    string
	CreateAt   time.Time
}

// MqFailedRecord is an append-only audit row written when processing a
// dequeued message fails. All model-derived fields are nullable because
// the payload may not have parsed; RawPayload always carries the original
// message bytes.
type MqFailedRecord struct {
	ID           int64
	NotifyID     *int64
	ClientID     *int64
	UserID       *int64
	SenderID     *int64
	NotifyType   *enums.NotifyType
	Title        *string
	Content      *string
	ErrorMessage string
	RawPayload   []byte
	CreateAt     time.Time
}
