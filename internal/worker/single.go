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

package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/j50301m/notify-server/internal/broker"
	"github.com/j50301m/notify-server/internal/enums"
	"github.com/j50301m/notify-server/internal/errs"
	"github.com/j50301m/notify-server/internal/store"
	"github.com/j50301m/notify-server/internal/template"
	frontendnotify "github.com/j50301m/notify-server/proto/frontendnotify"
)

// handleSingle delivers one notification to one recipient over one
// channel and persists the record with its success audit row in one
// transaction. An offline in-app recipient is not an error: the record
// is the delivery. Everything past the dispatch is a permanent failure:
// a retry would hand the provider the same message twice.
func (p *Pool) handleSingle(ctx context.Context, payload []byte) error {
	var model broker.SingleNotifyModel
	if err := json.Unmarshal(payload, &model); err != nil {
		return fmt.Errorf("%w: failed to parse single notify payload: %v", errs.ErrInvalidArgument, err)
	}

	profile, err := p.identity.GetUserProfile(ctx, model.ClientID, model.UserID)
	if err != nil {
		return err
	}
	title, content := template.Materialize(model.Title, model.Content, profile, model.KeyMap)

	switch model.NotifyType {
	case enums.NotifyTypeInApp:
		if err := p.deliverInApp(ctx, &model, title, content); err != nil {
			return err
		}
	case enums.NotifyTypeEmail:
		addr := model.ReceiveAddress
		if addr == "" {
			addr = profile.Email
		}
		if addr == "" {
			return fmt.Errorf("%w: user %d has no email address", errs.ErrInvalidArgument, model.UserID)
		}
		// A failed send may still have left the provider's side; never
		// run it again.
		if err := p.email.Send(ctx, addr, title, content); err != nil {
			return permanent(err)
		}
	case enums.NotifyTypeSMS:
		addr := model.ReceiveAddress
		if addr == "" {
			addr = profile.Phone
		}
		if addr == "" {
			return fmt.Errorf("%w: user %d has no phone number", errs.ErrInvalidArgument, model.UserID)
		}
		if err := p.sms.Send(ctx, addr, content); err != nil {
			return permanent(err)
		}
	default:
		return fmt.Errorf("%w: notify type %d", errs.ErrInvalidArgument, int32(model.NotifyType))
	}

	// The message is out. From here every failure is permanent: a retry
	// would dispatch it a second time.
	tx, err := p.store.Begin(ctx)
	if err != nil {
		return permanent(err)
	}
	defer tx.Rollback(ctx)

	record := &store.NotifyRecord{
		ID:                  model.NotifyID,
		ClientID:            model.ClientID,
		UserID:              model.UserID,
		UserAccount:         profile.Account,
		ClientNotifyEventID: model.ClientEventID,
		SenderID:            model.SenderID,
		SenderAccount:       model.SenderAccount,
		SenderIP:            model.SenderIP,
		NotifyType:          model.NotifyType,
		NotifyLevel:         model.NotifyLevel,
		Title:               title,
		Content:             content,
	}
	if err := p.store.InsertNotifyRecord(ctx, tx, record); err != nil {
		return permanent(err)
	}
	if err := p.store.InsertMqSuccessRecord(ctx, tx, &store.MqSuccessRecord{
		NotifyID:   model.NotifyID,
		ClientID:   model.ClientID,
		UserID:     model.UserID,
		SenderID:   model.SenderID,
		NotifyType: model.NotifyType,
		Title:      title,
		Content:    content,
	}); err != nil {
		return permanent(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return permanent(fmt.Errorf("%w: failed to commit notify record %d: %v", errs.ErrInternal, model.NotifyID, err))
	}
	return nil
}

// deliverInApp routes an in-app notification to the pod holding the
// user's stream. A stale directory entry is cleaned up and treated as
// offline.
func (p *Pool) deliverInApp(ctx context.Context, model *broker.SingleNotifyModel, title, content string) error {
	notify := &frontendnotify.Notify{
		NotifyId:     model.NotifyID,
		NotifyLevel:  int32(model.NotifyLevel),
		Title:        title,
		Content:      content,
		CreateAt:     time.Now().UnixMilli(),
		NotifyStatus: int32(enums.NotifyStatusUnread),
	}

	addr, found, err := p.directory.Get(ctx, model.UserID)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	if addr == p.peers.OwnAddr() {
		if !p.registry.Push(model.UserID, notify) {
			if err := p.directory.Delete(ctx, model.UserID); err != nil {
				p.logger.Warn("failed to drop stale directory entry",
					slog.Int64("user_id", model.UserID), slog.Any("error", err))
			}
		}
		return nil
	}

	err = p.peers.ForwardFrontend(ctx, addr, &frontendnotify.ForwardNotifyRequest{
		ClientId: model.ClientID,
		UserId:   model.UserID,
		Notify:   notify,
	})
	if status.Code(err) == codes.NotFound {
		// The peer no longer holds the stream; its entry is stale.
		if derr := p.directory.Delete(ctx, model.UserID); derr != nil {
			p.logger.Warn("failed to drop stale directory entry",
				slog.Int64("user_id", model.UserID), slog.Any("error", derr))
		}
		return nil
	}
	return err
}

// recordSingleFailure audits a single message that exhausted its retries.
// Fields from the payload are filled in when it parsed; the raw bytes are
// always kept.
func (p *Pool) recordSingleFailure(ctx context.Context, payload []byte, cause error) {
	failed := &store.MqFailedRecord{
		ErrorMessage: cause.Error(),
		RawPayload:   payload,
	}
	var model broker.SingleNotifyModel
	if err := json.Unmarshal(payload, &model); err == nil {
		failed.NotifyID = &model.NotifyID
		failed.ClientID = &model.ClientID
		failed.UserID = &model.UserID
		failed.SenderID = &model.SenderID
		failed.NotifyType = &model.NotifyType
		failed.Title = &model.Title
		failed.Content = &model.Content
	}
	if err := p.store.InsertMqFailedRecord(ctx, p.store.DB(), failed); err != nil {
		p.logger.Error("failed to audit dropped single message", slog.Any("error", err))
	}
	p.logger.Error("single message dropped after retries", slog.Any("error", cause))
}
