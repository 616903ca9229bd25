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

// Package enums holds the stable integer codes shared between the wire
// payloads, the database columns and the RPC messages. The codes are
// wire-visible and must not be renumbered.
package enums

import (
	"fmt"

	"github.com/j50301m/notify-server/internal/errs"
)

// NotifyType is the delivery channel of a notification.
type NotifyType int32

const (
	NotifyTypeInApp NotifyType = 1
	NotifyTypeEmail NotifyType = 2
	NotifyTypeSMS   NotifyType = 3
)

// NotifyTypeFromInt converts a wire integer to a NotifyType.
func NotifyTypeFromInt(v int32) (NotifyType, error) {
	switch NotifyType(v) {
	case NotifyTypeInApp, NotifyTypeEmail, NotifyTypeSMS:
		return NotifyType(v), nil
	}
	return 0, fmt.Errorf("%w: notify type %d", errs.ErrInvalidArgument, v)
}

func (t NotifyType) String() string {
	switch t {
	case NotifyTypeInApp:
		return "InApp"
	case NotifyTypeEmail:
		return "Email"
	case NotifyTypeSMS:
		return "SMS"
	}
	return fmt.Sprintf("NotifyType(%d)", int32(t))
}

// NotifyLevel is the severity shown to the receiving user.
type NotifyLevel int32

const (
	NotifyLevelInfo      NotifyLevel = 1
	NotifyLevelSystem    NotifyLevel = 2
	NotifyLevelImportant NotifyLevel = 3
)

// NotifyLevelFromInt converts a wire integer to a NotifyLevel.
func NotifyLevelFromInt(v int32) (NotifyLevel, error) {
	switch NotifyLevel(v) {
	case NotifyLevelInfo, NotifyLevelSystem, NotifyLevelImportant:
		return NotifyLevel(v), nil
	}
	return 0, fmt.Errorf("%w: notify level %d", errs.ErrInvalidArgument, v)
}

func (l NotifyLevel) String() string {
	switch l {
	case NotifyLevelInfo:
		return "Info"
	case NotifyLevelSystem:
		return "System"
	case NotifyLevelImportant:
		return "Important"
	}
	return fmt.Sprintf("NotifyLevel(%d)", int32(l))
}

// NotifyStatus is the read state of a persisted notification record.
type NotifyStatus int32

const (
	NotifyStatusUnread NotifyStatus = 1
	NotifyStatusRead   NotifyStatus = 2
	NotifyStatusDelete NotifyStatus = 3
)

// NotifyStatusFromInt converts a wire integer to a NotifyStatus.
func NotifyStatusFromInt(v int32) (NotifyStatus, error) {
	switch NotifyStatus(v) {
	case NotifyStatusUnread, NotifyStatusRead, NotifyStatusDelete:
		return NotifyStatus(v), nil
	}
	return 0, fmt.Errorf("%w: notify status %d", errs.ErrInvalidArgument, v)
}

func (s NotifyStatus) String() string {
	switch s {
	case NotifyStatusUnread:
		return "Unread"
	case NotifyStatusRead:
		return "Read"
	case NotifyStatusDelete:
		return "Delete"
	}
	return fmt.Sprintf("NotifyStatus(%d)", int32(s))
}

// TaskStatus is the lifecycle state of a backstage broadcast task.
// It starts Pending and transitions exactly once to Success or Fail.
type TaskStatus int32

const (
	TaskStatusPending TaskStatus = 1
	TaskStatusSuccess TaskStatus = 2
	TaskStatusFail    TaskStatus = 3
)

// TaskStatusFromInt converts a wire integer to a TaskStatus.
func TaskStatusFromInt(v int32) (TaskStatus, error) {
	switch TaskStatus(v) {
	case TaskStatusPending, TaskStatusSuccess, TaskStatusFail:
		return TaskStatus(v), nil
	}
	return 0, fmt.Errorf("%w: task status %d", errs.ErrInvalidArgument, v)
}

func (s TaskStatus) String() string {
	switch s {
	case TaskStatusPending:
		return "Pending"
	case TaskStatusSuccess:
		return "Success"
	case TaskStatusFail:
		return "Fail"
	}
	return fmt.Sprintf("TaskStatus(%d)", int32(s))
}
