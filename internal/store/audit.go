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
	"fmt"
)

// InsertMqSuccessRecord appends a success audit row after a dequeued
// message was fully processed.
func (s *Store) InsertMqSuccessRecord(ctx context.Context, db DB, r *MqSuccessRecord) error {
	_, err := db.Exec(ctx, `
		INSERT INTO mq_success_record (
			notify_id, client_id, user_id, sender_id, notify_type, title, content
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		r.NotifyID, r.ClientID, r.UserID, r.SenderID, int32(r.NotifyType), r.Title, r.Content,
	)
	if err != nil {
		return fmt.Errorf("failed to insert mq success record for notify %d: %w", r.NotifyID, err)
	}
	return nil
}

// InsertMqFailedRecord appends a failure audit row. It always runs on a
// fresh connection rather than the failed transaction so the audit
// survives the rollback.
func (s *Store) InsertMqFailedRecord(ctx context.Context, db DB, r *MqFailedRecord) error {
	var notifyType *int32
	if r.NotifyType != nil {
		v := int32(*r.NotifyType)
		notifyType = &v
	}
	_, err := db.Exec(ctx, `
		INSERT INTO mq_failed_record (
			notify_id, client_id, user_id, sender_id, notify_type,
			title, content, error_message, raw_payload
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		r.NotifyID, r.ClientID, r.UserID, r.SenderID, notifyType,
		r.Title, r.Content, r.ErrorMessage, r.RawPayload,
	)
	if err != nil {
		return fmt.Errorf("failed to insert mq failed record: %w", err)
	}
	return nil
}
