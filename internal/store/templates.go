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

	"github.com/jackc/pgx/v5"

	"github.com/j50301m/notify-server/internal/enums"
	"github.com/j50301m/notify-server/internal/errs"
)

const clientNotifyTemplateColumns = `id, client_id, client_notify_event, language_id, key_list,
	notify_type, title, content, is_system, create_at, update_at`

func scanClientNotifyTemplate(row pgx.Row) (*ClientNotifyTemplate, error) {
	var t ClientNotifyTemplate
	var languageID, notifyType int32
	err := row.Scan(
		&t.ID, &t.ClientID, &t.ClientNotifyEvent, &languageID, &t.KeyList,
		&notifyType, &t.Title, &t.Content, &t.IsSystem, &t.CreateAt, &t.UpdateAt,
	)
	if err != nil {
		return nil, err
	}
	t.LanguageID = enums.Language(languageID)
	t.NotifyType = enums.NotifyType(notifyType)
	return &t, nil
}

// GetActiveTemplates returns the templates of an event whose channel is
// currently enabled on the event itself, for one language. An event with
// notify_types = {InApp} yields at most the in-app template even when
// email and SMS templates exist.
func (s *Store) GetActiveTemplates(ctx context.Context, db DB, clientID, eventID int64, language enums.Language) ([]*ClientNotifyTemplate, error) {
	rows, err := db.Query(ctx, `
		SELECT cnt.id, cnt.client_id, cnt.client_notify_event, cnt.language_id, cnt.key_list,
			cnt.notify_type, cnt.title, cnt.content, cnt.is_system, cnt.create_at, cnt.update_at
		FROM client_notify_template cnt
		JOIN client_notify_event cne ON cne.id = cnt.client_notify_event AND cne.client_id = cnt.client_id
		WHERE cnt.client_id = $1
			AND cnt.client_notify_event = $2
			AND cnt.language_id = $3
			AND cnt.notify_type = ANY(cne.notify_types)
		ORDER BY cnt.notify_type ASC`,
		clientID, eventID, int32(language),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get active templates for event %d: %w", eventID, err)
	}
	defer rows.Close()

	// One template per channel; keep the first row if the unique
	// constraint was ever relaxed.
	seen := make(map[enums.NotifyType]bool)
	var templates []*ClientNotifyTemplate
	for rows.Next() {
		t, err := scanClientNotifyTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan template: %w", err)
		}
		if seen[t.NotifyType] {
			continue
		}
		seen[t.NotifyType] = true
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read templates: %w", err)
	}
	return templates, nil
}

// GetTemplate loads the single template identified by tenant, event,
// channel and language.
func (s *Store) GetTemplate(ctx context.Context, db DB, clientID, eventID int64, notifyType enums.NotifyType, language enums.Language) (*ClientNotifyTemplate, error) {
	row := db.QueryRow(ctx, `
		SELECT `+clientNotifyTemplateColumns+`
		FROM client_notify_template
		WHERE client_id = $1 AND client_notify_event = $2 AND notify_type = $3 AND language_id = $4`,
		clientID, eventID, int32(notifyType), int32(language),
	)
	t, err := scanClientNotifyTemplate(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: template for event %d type %s language %s",
			errs.ErrDataNotFound, eventID, notifyType, language)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get template for event %d: %w", eventID, err)
	}
	return t, nil
}

// ListTemplatesByEvent returns every template bound to an event across
// channels and languages.
func (s *Store) ListTemplatesByEvent(ctx context.Context, db DB, clientID, eventID int64) ([]*ClientNotifyTemplate, error) {
	rows, err := db.Query(ctx, `
		SELECT `+clientNotifyTemplateColumns+`
		FROM client_notify_template
		WHERE client_id = $1 AND client_notify_event = $2
		ORDER BY language_id ASC, notify_type ASC`,
		clientID, eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates for event %d: %w", eventID, err)
	}
	defer rows.Close()

	var templates []*ClientNotifyTemplate
	for rows.Next() {
		t, err := scanClientNotifyTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan template: %w", err)
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read templates: %w", err)
	}
	return templates, nil
}

// ListEventTemplatesByLanguage returns the templates of one event in one
// language, one row per channel.
func (s *Store) ListEventTemplatesByLanguage(ctx context.Context, db DB, clientID, eventID int64, language enums.Language) ([]*ClientNotifyTemplate, error) {
	rows, err := db.Query(ctx, `
		SELECT `+clientNotifyTemplateColumns+`
		FROM client_notify_template
		WHERE client_id = $1 AND client_notify_event = $2 AND language_id = $3
		ORDER BY notify_type ASC`,
		clientID, eventID, int32(language),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates for event %d: %w", eventID, err)
	}
	defer rows.Close()

	var templates []*ClientNotifyTemplate
	for rows.Next() {
		t, err := scanClientNotifyTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan template: %w", err)
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read templates: %w", err)
	}
	return templates, nil
}

// UpdateEventTemplateBodies overwrites title and content of one event's
// templates for a channel, across every language. A channel with no
// stored template is silently skipped; the event update records the new
// bodies only where rows exist.
func (s *Store) UpdateEventTemplateBodies(ctx context.Context, db DB, clientID, eventID int64, notifyType enums.NotifyType, title, content string) error {
	_, err := db.Exec(ctx, `
		UPDATE client_notify_template
		SET title = $4, content = $5
		WHERE client_id = $1 AND client_notify_event = $2 AND notify_type = $3`,
		clientID, eventID, int32(notifyType), title, content,
	)
	if err != nil {
		return fmt.Errorf("failed to update %s templates of event %d: %w", notifyType, eventID, err)
	}
	return nil
}

// CreateClientNotifyTemplate inserts a new template row and fills in the
// assigned id. The unique index on (client_id, client_notify_event,
// notify_type, language_id) rejects duplicates.
func (s *Store) CreateClientNotifyTemplate(ctx context.Context, db DB, t *ClientNotifyTemplate) error {
	err := db.QueryRow(ctx, `
		INSERT INTO client_notify_template (
			client_id, client_notify_event, language_id, key_list,
			notify_type, title, content, is_system
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		t.ClientID, t.ClientNotifyEvent, int32(t.LanguageID), t.KeyList,
		int32(t.NotifyType), t.Title, t.Content, t.IsSystem,
	).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("failed to create template for event %d: %w", t.ClientNotifyEvent, err)
	}
	return nil
}

// UpdateClientNotifyTemplate overwrites title, content and key list of
// the template addressed by tenant, event, channel and language. Updating
// the template also touches the parent event's update_at via trigger.
func (s *Store) UpdateClientNotifyTemplate(ctx context.Context, db DB, t *ClientNotifyTemplate) error {
	tag, err := db.Exec(ctx, `
		UPDATE client_notify_template
		SET title = $5, content = $6, key_list = $7
		WHERE client_id = $1 AND client_notify_event = $2 AND notify_type = $3 AND language_id = $4`,
		t.ClientID, t.ClientNotifyEvent, int32(t.NotifyType), int32(t.LanguageID),
		t.Title, t.Content, t.KeyList,
	)
	if err != nil {
		return fmt.Errorf("failed to update template for event %d: %w", t.ClientNotifyEvent, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: template for event %d type %s language %s",
			errs.ErrDataNotFound, t.ClientNotifyEvent, t.NotifyType, t.LanguageID)
	}
	return nil
}

// DeleteClientNotifyTemplate removes a non-system template. System
// templates are immutable seed data and are refused.
func (s *Store) DeleteClientNotifyTemplate(ctx context.Context, db DB, clientID, eventID, templateID int64) error {
	row := db.QueryRow(ctx, `
		SELECT is_system FROM client_notify_template
		WHERE id = $1 AND client_id = $2 AND client_notify_event = $3`,
		templateID, clientID, eventID,
	)
	var isSystem bool
	if err := row.Scan(&isSystem); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: template %d", errs.ErrDataNotFound, templateID)
		}
		return fmt.Errorf("failed to load template %d: %w", templateID, err)
	}
	if isSystem {
		return fmt.Errorf("%w: system template %d cannot be deleted", errs.ErrInvalidArgument, templateID)
	}

	if _, err := db.Exec(ctx, `
		DELETE FROM client_notify_template
		WHERE id = $1 AND client_id = $2 AND client_notify_event = $3`,
		templateID, clientID, eventID,
	); err != nil {
		return fmt.Errorf("failed to delete template %d: %w", templateID, err)
	}
	return nil
}
