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
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/j50301m/notify-server/internal/enums"
	"github.com/j50301m/notify-server/internal/errs"
)

const backstageSendTaskColumns = `id, client_id, client_event_id, sender_id, sender_account,
	sender_ip, receiver_count, receiver_account, receiver_id, task_name, notify_level,
	task_status, error_message, create_at, update_at`

func scanBackstageSendTask(row pgx.Row) (*BackstageSendTask, error) {
	var t BackstageSendTask
	var notifyLevel, taskStatus int32
	err := row.Scan(
		&t.ID, &t.ClientID, &t.ClientEventID, &t.SenderID, &t.SenderAccount,
		&t.SenderIP, &t.ReceiverCount, &t.ReceiverAccount, &t.ReceiverID, &t.TaskName, &notifyLevel,
		&taskStatus, &t.ErrorMessage, &t.CreateAt, &t.UpdateAt,
	)
	if err != nil {
		return nil, err
	}
	t.NotifyLevel = enums.NotifyLevel(notifyLevel)
	t.TaskStatus = enums.TaskStatus(taskStatus)
	return &t, nil
}

// CreateBackstageSendTask inserts a broadcast task and its captured
// template details atomically. The task starts Pending.
func (s *Store) CreateBackstageSendTask(ctx context.Context, db DB, task *BackstageSendTask, details []*BackstageSendTaskDetail) error {
	_, err := db.Exec(ctx, `
		INSERT INTO backstage_send_task (
			id, client_id, client_event_id, sender_id, sender_account, sender_ip,
			receiver_count, receiver_account, receiver_id, task_name, notify_level, task_status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		task.ID, task.ClientID, task.ClientEventID, task.SenderID, task.SenderAccount, task.SenderIP,
		task.ReceiverCount, task.ReceiverAccount, task.ReceiverID, task.TaskName,
		int32(task.NotifyLevel), int32(enums.TaskStatusPending),
	)
	if err != nil {
		return fmt.Errorf("failed to create backstage send task %d: %w", task.ID, err)
	}

	for _, d := range details {
		if _, err := db.Exec(ctx, `
			INSERT INTO backstage_send_task_detail (
				id, backstage_send_task_id, notify_level, notify_type, title, content
			) VALUES ($1, $2, $3, $4, $5, $6)`,
			d.ID, task.ID, int32(d.NotifyLevel), int32(d.NotifyType), d.Title, d.Content,
		); err != nil {
			return fmt.Errorf("failed to create task detail for task %d: %w", task.ID, err)
		}
	}
	return nil
}

// SetTaskStatus finalizes a Pending task. The status predicate makes the
// transition happen at most once, so a retried batch message cannot flip
// a finished task.
func (s *Store) SetTaskStatus(ctx context.Context, db DB, taskID int64, status enums.TaskStatus, errorMessage *string) error {
	tag, err := db.Exec(ctx, `
		UPDATE backstage_send_task
		SET task_status = $2, error_message = $3
		WHERE id = $1 AND task_status = $4`,
		taskID, int32(status), errorMessage, int32(enums.TaskStatusPending),
	)
	if err != nil {
		return fmt.Errorf("failed to set status of task %d: %w", taskID, err)
	}
	if tag.RowsAffected() == 0 {
		s.logger.Warn("task already finalized, status unchanged",
			"task_id", taskID, "requested_status", status.String())
	}
	return nil
}

// GetBackstageSendTask loads one task scoped to its tenant.
func (s *Store) GetBackstageSendTask(ctx context.Context, db DB, clientID, taskID int64) (*BackstageSendTask, error) {
	row := db.QueryRow(ctx, `
		SELECT `+backstageSendTaskColumns+`
		FROM backstage_send_task
		WHERE id = $1 AND client_id = $2`,
		taskID, clientID,
	)
	t, err := scanBackstageSendTask(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: backstage send task %d", errs.ErrDataNotFound, taskID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get backstage send task %d: %w", taskID, err)
	}
	return t, nil
}

// TaskFilter narrows the task listing. Zero values skip the dimension;
// TaskName matches exactly unless IsFuzzy is set, SenderAccount always
// matches exactly.
type TaskFilter struct {
	TaskName      string
	IsFuzzy       bool
	SenderAccount string
	CreateAtStart time.Time
	CreateAtEnd   time.Time
}

// ListBackstageSendTasks returns one page of a tenant's broadcast tasks
// with the total count, newest first.
func (s *Store) ListBackstageSendTasks(ctx context.Context, db DB, clientID int64, filter TaskFilter, pageSize, page int64) ([]*BackstageSendTask, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = NotifyPageSize
	}

	where := `WHERE client_id = $1`
	args := []any{clientID}

	if filter.TaskName != "" {
		if filter.IsFuzzy {
			args = append(args, "%"+filter.TaskName+"%")
			where += fmt.Sprintf(" AND task_name LIKE $%d", len(args))
		} else {
			args = append(args, filter.TaskName)
			where += fmt.Sprintf(" AND task_name = $%d", len(args))
		}
	}
	if filter.SenderAccount != "" {
		args = append(args, filter.SenderAccount)
		where += fmt.Sprintf(" AND sender_account = $%d", len(args))
	}
	if !filter.CreateAtStart.IsZero() {
		args = append(args, filter.CreateAtStart)
		where += fmt.Sprintf(" AND create_at >= $%d", len(args))
	}
	if !filter.CreateAtEnd.IsZero() {
		args = append(args, filter.CreateAtEnd)
		where += fmt.Sprintf(" AND create_at <= $%d", len(args))
	}

	var total int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM backstage_send_task `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count backstage send tasks: %w", err)
	}

	args = append(args, pageSize, (page-1)*pageSize)
	query := fmt.Sprintf(`
		SELECT `+backstageSendTaskColumns+`
		FROM backstage_send_task
		%s
		ORDER BY create_at DESC
		LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list backstage send tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*BackstageSendTask
	for rows.Next() {
		t, err := scanBackstageSendTask(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan backstage send task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read backstage send tasks: %w", err)
	}
	return tasks, total, nil
}

// ListTaskDetails returns the templates captured by one task.
func (s *Store) ListTaskDetails(ctx context.Context, db DB, taskID int64) ([]*BackstageSendTaskDetail, error) {
	rows, err := db.Query(ctx, `
		SELECT id, backstage_send_task_id, notify_level, notify_type, title, content
		FROM backstage_send_task_detail
		WHERE backstage_send_task_id = $1
		ORDER BY notify_type ASC`,
		taskID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list details of task %d: %w", taskID, err)
	}
	defer rows.Close()

	var details []*BackstageSendTaskDetail
	for rows.Next() {
		var d BackstageSendTaskDetail
		var notifyLevel, notifyType int32
		if err := rows.Scan(&d.ID, &d.BackstageSendTaskID, &notifyLevel, &notifyType, &d.Title, &d.Content); err != nil {
			return nil, fmt.Errorf("failed to scan task detail: %w", err)
		}
		d.NotifyLevel = enums.NotifyLevel(notifyLevel)
		d.NotifyType = enums.NotifyType(notifyType)
		details = append(details, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read task details: %w", err)
	}
	return details, nil
}
