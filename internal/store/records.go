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

const notifyRecordColumns = `id, client_id, user_id, user_account, client_notify_event_id,
	sender_id, sender_account, sender_ip, notify_type, notify_level, notify_status,
	title, content, create_at, update_at`

func scanNotifyRecord(row pgx.Row) (*NotifyRecord, error) {
	var r NotifyRecord
	var notifyType, notifyLevel, notifyStatus int32
	err := row.Scan(
		&r.ID, &r.ClientID, &r.UserID, &r.UserAccount, &r.ClientNotifyEventID,
		&r.SenderID, &r.SenderAccount, &r.SenderIP, &notifyType, &notifyLevel, &notifyStatus,
		&r.Title, &r.Content, &r.CreateAt, &r.UpdateAt,
	)
	if err != nil {
		return nil, err
	}
	r.NotifyType = enums.NotifyType(notifyType)
	r.NotifyLevel = enums.NotifyLevel(notifyLevel)
	r.NotifyStatus = enums.NotifyStatus(notifyStatus)
	return &r, nil
}

// InsertNotifyRecord persists a new record. The id must already be
// minted by the caller; status starts Unread.
func (s *Store) InsertNotifyRecord(ctx context.Context, db DB, r *NotifyRecord) error {
	_, err := db.Exec(ctx, `
		INSERT INTO notify_record (
			id, client_id, user_id, user_account, client_notify_event_id,
			sender_id, sender_account, sender_ip, notify_type, notify_level,
			notify_status, title, content
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		r.ID, r.ClientID, r.UserID, r.UserAccount, r.ClientNotifyEventID,
		r.SenderID, r.SenderAccount, r.SenderIP, int32(r.NotifyType), int32(r.NotifyLevel),
		int32(enums.NotifyStatusUnread), r.Title, r.Content,
	)
	if err != nil {
		return fmt.Errorf("failed to insert notify record %d: %w", r.ID, err)
	}
	return nil
}

// GetNotifyByID loads one record scoped to a tenant and user. Soft-deleted
// records are invisible here like everywhere else on the user surface.
func (s *Store) GetNotifyByID(ctx context.Context, db DB, clientID, userID, notifyID int64) (*NotifyRecord, error) {
	row := db.QueryRow(ctx, `
		SELECT `+notifyRecordColumns+`
		FROM notify_record
		WHERE id = $1 AND client_id = $2 AND user_id = $3 AND notify_status != $4`,
		notifyID, clientID, userID, int32(enums.NotifyStatusDelete),
	)
	r, err := scanNotifyRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: notify record %d", errs.ErrDataNotFound, notifyID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get notify record %d: %w", notifyID, err)
	}
	return r, nil
}

// RecordFilter narrows the user-facing record listing. Zero values mean
// no filtering on that dimension.
type RecordFilter struct {
	NotifyLevel  enums.NotifyLevel
	NotifyStatus enums.NotifyStatus
}

// ListUserNotifyRecords returns one page of a user's in-app records,
// newest first, along with the total row count for the filter. Records
// marked Delete never appear.
func (s *Store) ListUserNotifyRecords(ctx context.Context, db DB, clientID, userID int64, filter RecordFilter, page int64) ([]*NotifyRecord, int64, error) {
	if page < 1 {
		page = 1
	}

	where := `WHERE client_id = $1 AND user_id = $2 AND notify_type = $3 AND notify_status != $4`
	args := []any{clientID, userID, int32(enums.NotifyTypeInApp), int32(enums.NotifyStatusDelete)}

	if filter.NotifyLevel != 0 {
		args = append(args, int32(filter.NotifyLevel))
		where += fmt.Sprintf(" AND notify_level = $%d", len(args))
	}
	if filter.NotifyStatus != 0 && filter.NotifyStatus != enums.NotifyStatusDelete {
		args = append(args, int32(filter.NotifyStatus))
		where += fmt.Sprintf(" AND notify_status = $%d", len(args))
	}

	var total int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM notify_record `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count notify records for user %d: %w", userID, err)
	}

	args = append(args, NotifyPageSize, (page-1)*NotifyPageSize)
	query := fmt.Sprintf(`
		SELECT `+notifyRecordColumns+`
		FROM notify_record
		%s
		ORDER BY create_at DESC
		LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notify records for user %d: %w", userID, err)
	}
	defer rows.Close()

	var records []*NotifyRecord
	for rows.Next() {
		r, err := scanNotifyRecord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan notify record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read notify records: %w", err)
	}
	return records, total, nil
}

// UpdateNotifyStatus sets status on a batch of the user's own records and
// returns the rows as updated. Ids belonging to other users or tenants
// are silently skipped by the scoping predicate.
func (s *Store) UpdateNotifyStatus(ctx context.Context, db DB, clientID, userID int64, notifyIDs []int64, status enums.NotifyStatus) ([]*NotifyRecord, error) {
	if len(notifyIDs) == 0 {
		return nil, nil
	}
	rows, err := db.Query(ctx, `
		UPDATE notify_record
		SET notify_status = $1
		WHERE client_id = $2 AND user_id = $3 AND id = ANY($4)
		RETURNING `+notifyRecordColumns,
		int32(status), clientID, userID, notifyIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update notify status for user %d: %w", userID, err)
	}
	defer rows.Close()

	var records []*NotifyRecord
	for rows.Next() {
		r, err := scanNotifyRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan updated notify record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read updated notify records: %w", err)
	}
	return records, nil
}

// CountUnread returns the user's unread in-app record count, optionally
// restricted to one level.
func (s *Store) CountUnread(ctx context.Context, db DB, clientID, userID int64, level enums.NotifyLevel) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM notify_record
		WHERE client_id = $1 AND user_id = $2 AND notify_type = $3 AND notify_status = $4`
	args := []any{clientID, userID, int32(enums.NotifyTypeInApp), int32(enums.NotifyStatusUnread)}
	if level != 0 {
		args = append(args, int32(level))
		query += fmt.Sprintf(" AND notify_level = $%d", len(args))
	}
	var count int64
	if err := db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count unread records for user %d: %w", userID, err)
	}
	return count, nil
}

// MarkAllRead flips every unread in-app record of the user to Read,
// optionally restricted to one level. Soft-deleted rows are untouched
// because only Unread rows match.
func (s *Store) MarkAllRead(ctx context.Context, db DB, clientID, userID int64, level enums.NotifyLevel) error {
	query := `
		UPDATE notify_record
		SET notify_status = $1
		WHERE client_id = $2 AND user_id = $3 AND notify_type = $4 AND notify_status = $5`
	args := []any{
		int32(enums.NotifyStatusRead), clientID, userID,
		int32(enums.NotifyTypeInApp), int32(enums.NotifyStatusUnread),
	}
	if level != 0 {
		args = append(args, int32(level))
		query += fmt.Sprintf(" AND notify_level = $%d", len(args))
	}
	if _, err := db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to mark records read for user %d: %w", userID, err)
	}
	return nil
}

// AdminRecordFilter is the cross-user record search on the backstage
// surface. Empty slices and zero values leave the dimension unfiltered;
// Title matches exactly unless IsFuzzy turns on substring matching.
type AdminRecordFilter struct {
	Title           string
	IsFuzzy         bool
	ReceiverAccount string
	SenderAccount   string
	NotifyStatus    []enums.NotifyStatus
	NotifyType      []enums.NotifyType
	NotifyLevel     []enums.NotifyLevel
	StartAt         time.Time
	EndAt           time.Time
}

// SearchNotifyRecords is the backstage search over a tenant's records
// across users and channels. Soft-deleted rows stay visible to admins.
func (s *Store) SearchNotifyRecords(ctx context.Context, db DB, clientID int64, filter AdminRecordFilter, pageSize, page int64) ([]*NotifyRecord, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = NotifyPageSize
	}

	where := `WHERE client_id = $1`
	args := []any{clientID}

	if filter.Title != "" {
		if filter.IsFuzzy {
			args = append(args, "%"+filter.Title+"%")
			where += fmt.Sprintf(" AND title LIKE $%d", len(args))
		} else {
			args = append(args, filter.Title)
			where += fmt.Sprintf(" AND title = $%d", len(args))
		}
	}
	if filter.ReceiverAccount != "" {
		args = append(args, filter.ReceiverAccount)
		where += fmt.Sprintf(" AND user_account = $%d", len(args))
	}
	if filter.SenderAccount != "" {
		args = append(args, filter.SenderAccount)
		where += fmt.Sprintf(" AND sender_account = $%d", len(args))
	}
	if len(filter.NotifyStatus) > 0 {
		vals := make([]int32, len(filter.NotifyStatus))
		for i, v := range filter.NotifyStatus {
			vals[i] = int32(v)
		}
		args = append(args, vals)
		where += fmt.Sprintf(" AND notify_status = ANY($%d)", len(args))
	}
	if len(filter.NotifyType) > 0 {
		args = append(args, typesToInts(filter.NotifyType))
		where += fmt.Sprintf(" AND notify_type = ANY($%d)", len(args))
	}
	if len(filter.NotifyLevel) > 0 {
		vals := make([]int32, len(filter.NotifyLevel))
		for i, v := range filter.NotifyLevel {
			vals[i] = int32(v)
		}
		args = append(args, vals)
		where += fmt.Sprintf(" AND notify_level = ANY($%d)", len(args))
	}
	if !filter.StartAt.IsZero() {
		args = append(args, filter.StartAt)
		where += fmt.Sprintf(" AND create_at >= $%d", len(args))
	}
	if !filter.EndAt.IsZero() {
		args = append(args, filter.EndAt)
		where += fmt.Sprintf(" AND create_at <= $%d", len(args))
	}

	var total int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM notify_record `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count notify records: %w", err)
	}

	args = append(args, pageSize, (page-1)*pageSize)
	query := fmt.Sprintf(`
		SELECT `+notifyRecordColumns+`
		FROM notify_record
		%s
		ORDER BY create_at DESC
		LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search notify records: %w", err)
	}
	defer rows.Close()

	var records []*NotifyRecord
	for rows.Next() {
		r, err := scanNotifyRecord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan notify record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read notify records: %w", err)
	}
	return records, total, nil
}
