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

const clientNotifyEventColumns = `id, client_id, platform, is_system_event, name, memo,
	notify_types, editor_account, create_at, update_at`

func scanClientNotifyEvent(row pgx.Row) (*ClientNotifyEvent, error) {
	var e ClientNotifyEvent
	var platform int32
	var notifyTypes []int32
	err := row.Scan(
		&e.ID, &e.ClientID, &platform, &e.IsSystemEvent, &e.Name, &e.Memo,
		&notifyTypes, &e.EditorAccount, &e.CreateAt, &e.UpdateAt,
	)
	if err != nil {
		return nil, err
	}
	e.Platform = enums.Platform(platform)
	e.NotifyTypes = intsToTypes(notifyTypes)
	return &e, nil
}

// GetClientNotifyEvent loads one event scoped to its tenant.
func (s *Store) GetClientNotifyEvent(ctx context.Context, db DB, clientID, eventID int64) (*ClientNotifyEvent, error) {
	row := db.QueryRow(ctx, `
		SELECT `+clientNotifyEventColumns+`
		FROM client_notify_event
		WHERE id = $1 AND client_id = $2`,
		eventID, clientID,
	)
	e, err := scanClientNotifyEvent(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: client notify event %d", errs.ErrDataNotFound, eventID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get client notify event %d: %w", eventID, err)
	}
	return e, nil
}

// CreateClientNotifyEvent inserts a custom (non-system) event.
func (s *Store) CreateClientNotifyEvent(ctx context.Context, db DB, e *ClientNotifyEvent) error {
	_, err := db.Exec(ctx, `
		INSERT INTO client_notify_event (
			id, client_id, platform, is_system_event, name, memo, notify_types, editor_account
		) VALUES ($1, $2, $3, false, $4, $5, $6, $7)`,
		e.ID, e.ClientID, int32(e.Platform), e.Name, e.Memo,
		typesToInts(e.NotifyTypes), e.EditorAccount,
	)
	if err != nil {
		return fmt.Errorf("failed to create client notify event %q: %w", e.Name, err)
	}
	return nil
}

// UpdateClientNotifyEvent rewrites an event's mutable fields. The name of
// a system event never changes, so the update keeps the stored name for
// those rows regardless of the argument.
func (s *Store) UpdateClientNotifyEvent(ctx context.Context, db DB, e *ClientNotifyEvent) error {
	tag, err := db.Exec(ctx, `
		UPDATE client_notify_event
		SET name = CASE WHEN is_system_event THEN name ELSE $3 END,
			memo = $4,
			notify_types = $5,
			editor_account = $6
		WHERE id = $1 AND client_id = $2`,
		e.ID, e.ClientID, e.Name, e.Memo, typesToInts(e.NotifyTypes), e.EditorAccount,
	)
	if err != nil {
		return fmt.Errorf("failed to update client notify event %d: %w", e.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: client notify event %d", errs.ErrDataNotFound, e.ID)
	}
	return nil
}

// DeleteClientNotifyEvent removes a custom event and its templates.
// System events are refused before any row is touched.
func (s *Store) DeleteClientNotifyEvent(ctx context.Context, db DB, clientID, eventID int64) error {
	event, err := s.GetClientNotifyEvent(ctx, db, clientID, eventID)
	if err != nil {
		return err
	}
	if event.IsSystemEvent {
		return fmt.Errorf("%w: system event %d cannot be deleted", errs.ErrInvalidArgument, eventID)
	}

	if _, err := db.Exec(ctx, `
		DELETE FROM client_notify_template
		WHERE client_id = $1 AND client_notify_event = $2`,
		clientID, eventID,
	); err != nil {
		return fmt.Errorf("failed to delete templates of event %d: %w", eventID, err)
	}

	if _, err := db.Exec(ctx, `
		DELETE FROM client_notify_event
		WHERE id = $1 AND client_id = $2`,
		eventID, clientID,
	); err != nil {
		return fmt.Errorf("failed to delete client notify event %d: %w", eventID, err)
	}
	return nil
}

// EventFilter narrows the backstage event listing. Zero values mean the
// dimension is not filtered; Name matches exactly unless IsFuzzy is set.
// NotifyTypes uses array containment: an event matches only when it has
// every requested channel enabled.
type EventFilter struct {
	Name          string
	IsFuzzy       bool
	EditorAccount string
	Platform      enums.Platform
	IsSystemEvent *bool
	NotifyTypes   []enums.NotifyType
	UpdateAtStart time.Time
	UpdateAtEnd   time.Time
}

// ListClientNotifyEvents returns one page of a tenant's events with the
// total count for the filter, most recently updated first.
func (s *Store) ListClientNotifyEvents(ctx context.Context, db DB, clientID int64, filter EventFilter, pageSize, page int64) ([]*ClientNotifyEvent, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = NotifyPageSize
	}

	where := `WHERE client_id = $1`
	args := []any{clientID}

	if filter.Name != "" {
		if filter.IsFuzzy {
			args = append(args, "%"+filter.Name+"%")
			where += fmt.Sprintf(" AND name LIKE $%d", len(args))
		} else {
			args = append(args, filter.Name)
			where += fmt.Sprintf(" AND name = $%d", len(args))
		}
	}
	if filter.EditorAccount != "" {
		args = append(args, filter.EditorAccount)
		where += fmt.Sprintf(" AND editor_account = $%d", len(args))
	}
	if filter.Platform != 0 {
		args = append(args, int32(filter.Platform))
		where += fmt.Sprintf(" AND platform = $%d", len(args))
	}
	if filter.IsSystemEvent != nil {
		args = append(args, *filter.IsSystemEvent)
		where += fmt.Sprintf(" AND is_system_event = $%d", len(args))
	}
	if len(filter.NotifyTypes) > 0 {
		args = append(args, typesToInts(filter.NotifyTypes))
		where += fmt.Sprintf(" AND notify_types @> $%d", len(args))
	}
	if !filter.UpdateAtStart.IsZero() {
		args = append(args, filter.UpdateAtStart)
		where += fmt.Sprintf(" AND update_at >= $%d", len(args))
	}
	if !filter.UpdateAtEnd.IsZero() {
		args = append(args, filter.UpdateAtEnd)
		where += fmt.Sprintf(" AND update_at <= $%d", len(args))
	}

	var total int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM client_notify_event `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count client notify events: %w", err)
	}

	args = append(args, pageSize, (page-1)*pageSize)
	query := fmt.Sprintf(`
		SELECT `+clientNotifyEventColumns+`
		FROM client_notify_event
		%s
		ORDER BY update_at DESC
		LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list client notify events: %w", err)
	}
	defer rows.Close()

	var events []*ClientNotifyEvent
	for rows.Next() {
		e, err := scanClientNotifyEvent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan client notify event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read client notify events: %w", err)
	}
	return events, total, nil
}

// EventSummary is the short event form used to populate pickers.
type EventSummary struct {
	ID       int64
	ClientID int64
	Name     string
}

// ListEventSummaries returns id and name of a tenant's events on one
// platform, oldest first so system events stay in their seeded order.
// isSystem narrows to system or custom events when non-nil.
func (s *Store) ListEventSummaries(ctx context.Context, db DB, clientID int64, platform enums.Platform, isSystem *bool) ([]EventSummary, error) {
	query := `
		SELECT id, client_id, name
		FROM client_notify_event
		WHERE client_id = $1 AND platform = $2`
	args := []any{clientID, int32(platform)}
	if isSystem != nil {
		args = append(args, *isSystem)
		query += fmt.Sprintf(" AND is_system_event = $%d", len(args))
	}
	query += " ORDER BY id ASC"

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list event summaries: %w", err)
	}
	defer rows.Close()

	var summaries []EventSummary
	for rows.Next() {
		var sum EventSummary
		if err := rows.Scan(&sum.ID, &sum.ClientID, &sum.Name); err != nil {
			return nil, fmt.Errorf("failed to scan event summary: %w", err)
		}
		summaries = append(summaries, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read event summaries: %w", err)
	}
	return summaries, nil
}
