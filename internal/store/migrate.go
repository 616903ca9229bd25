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
	"embed"
	"fmt"

	"github.com/j50301m/notify-server/internal/enums"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Tenant ids the system events and templates are seeded under.
const (
	SeedFrontendClientID  int64 = 7135148985370546176
	SeedBackstageClientID int64 = 7135149007982039040
)

// Migrate brings the schema up to date and seeds the system events and
// templates. Every step is idempotent, so concurrent pods can all run it
// at startup.
func (s *Store) Migrate(ctx context.Context) error {
	schema, err := migrationFS.ReadFile("migrations/001_schema.sql")
	if err != nil {
		return fmt.Errorf("failed to read schema migration: %w", err)
	}
	if _, err := s.client.Pool().Exec(ctx, string(schema)); err != nil {
		return fmt.Errorf("failed to apply schema migration: %w", err)
	}

	if err := s.seedSystemEvents(ctx); err != nil {
		return err
	}
	if err := s.seedSystemTemplates(ctx); err != nil {
		return err
	}

	s.logger.Info("database schema up to date")
	return nil
}

// seedSystemEvents inserts one row per defined event under the seed
// tenant of its platform. Frontend events ship with every channel
// enabled; backstage events are in-app only.
func (s *Store) seedSystemEvents(ctx context.Context) error {
	for _, event := range enums.AllNotifyEvents() {
		clientID := SeedFrontendClientID
		notifyTypes := []int32{
			int32(enums.NotifyTypeInApp),
			int32(enums.NotifyTypeEmail),
			int32(enums.NotifyTypeSMS),
		}
		if event.Platform() == enums.PlatformBackstage {
			clientID = SeedBackstageClientID
			notifyTypes = []int32{int32(enums.NotifyTypeInApp)}
		}

		_, err := s.client.Pool().Exec(ctx, `
			INSERT INTO client_notify_event (
				id, client_id, platform, is_system_event, name, memo, notify_types, editor_account
			) VALUES ($1, $2, $3, true, $4, $5, $6, 'System')
			ON CONFLICT (id, client_id) DO NOTHING`,
			int64(event), clientID, int32(event.Platform()),
			event.String(), event.Memo(), notifyTypes,
		)
		if err != nil {
			return fmt.Errorf("failed to seed system event %s: %w", event, err)
		}
	}
	return nil
}

// seedSystemTemplates loads the default template bodies once, on the
// first startup against an empty table.
func (s *Store) seedSystemTemplates(ctx context.Context) error {
	var count int64
	if err := s.client.Pool().QueryRow(ctx, `SELECT COUNT(*) FROM client_notify_template`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count templates: %w", err)
	}
	if count > 0 {
		return nil
	}

	seed, err := migrationFS.ReadFile("migrations/002_seed_templates.sql")
	if err != nil {
		return fmt.Errorf("failed to read template seed: %w", err)
	}
	if _, err := s.client.Pool().Exec(ctx, string(seed)); err != nil {
		return fmt.Errorf("failed to seed templates: %w", err)
	}
	return nil
}
