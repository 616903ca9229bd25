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

	"github.com/j50301m/notify-server/internal/broker"
	"github.com/j50301m/notify-server/internal/enums"
	"github.com/j50301m/notify-server/internal/errs"
	"github.com/j50301m/notify-server/internal/identity"
	"github.com/j50301m/notify-server/internal/store"
)

// handleBatch expands an admin broadcast into one single message per
// recipient and template, then finalizes the task. Receive addresses are
// resolved here in one contact lookup so the single workers don't fan out
// per-recipient identity calls for email and SMS. Once the first single
// message is out, failures are permanent: a rerun would publish the
// earlier ones again.
func (p *Pool) handleBatch(ctx context.Context, payload []byte) error {
	var model broker.BatchNotifyModel
	if err := json.Unmarshal(payload, &model); err != nil {
		return fmt.Errorf("%w: failed to parse batch notify payload: %v", errs.ErrInvalidArgument, err)
	}

	contacts, err := p.identity.GetEmailAndPhoneByUserIDs(ctx, model.FrontendClientID, model.ReceiverIDs)
	if err != nil {
		return err
	}

	published := 0
	for _, single := range p.expandBatch(&model, contacts) {
		if err := p.broker.PublishSingle(ctx, single); err != nil {
			err = fmt.Errorf("failed to expand task %d: %w", model.TaskID, err)
			if published > 0 {
				return permanent(err)
			}
			return err
		}
		published++
	}

	if err := p.store.SetTaskStatus(ctx, p.store.DB(), model.TaskID, enums.TaskStatusSuccess, nil); err != nil {
		return permanent(err)
	}
	p.logger.Info("batch task expanded",
		slog.Int64("task_id", model.TaskID), slog.Int("messages", published))
	return nil
}

// expandBatch builds the per-recipient single messages of one broadcast,
// each with a fresh notify id and the receive address of its channel.
func (p *Pool) expandBatch(model *broker.BatchNotifyModel, contacts map[int64]identity.Contact) []*broker.SingleNotifyModel {
	singles := make([]*broker.SingleNotifyModel, 0, len(model.ReceiverIDs)*len(model.Templates))
	for _, userID := range model.ReceiverIDs {
		contact := contacts[userID]
		for _, t := range model.Templates {
			var receiveAddress string
			switch t.NotifyType {
			case enums.NotifyTypeEmail:
				receiveAddress = contact.Email
			case enums.NotifyTypeSMS:
				receiveAddress = contact.Phone
			}

			singles = append(singles, &broker.SingleNotifyModel{
				ClientID:       model.FrontendClientID,
				UserID:         userID,
				NotifyID:       p.node.Generate().Int64(),
				SenderID:       model.SenderID,
				SenderAccount:  model.SenderAccount,
				SenderIP:       model.SenderIP,
				NotifyType:     t.NotifyType,
				NotifyLevel:    t.NotifyLevel,
				Title:          t.Title,
				Content:        t.Content,
				ReceiveAddress: receiveAddress,
				ClientEventID:  model.ClientEventID,
			})
		}
	}
	return singles
}

// recordBatchFailure finalizes the task as failed and audits the dropped
// message.
func (p *Pool) recordBatchFailure(ctx context.Context, payload []byte, cause error) {
	failed := &store.MqFailedRecord{
		ErrorMessage: cause.Error(),
		RawPayload:   payload,
	}

	var model broker.BatchNotifyModel
	if err := json.Unmarshal(payload, &model); err == nil {
		failed.ClientID = &model.ClientID
		failed.SenderID = &model.SenderID
		message := cause.Error()
		if err := p.store.SetTaskStatus(ctx, p.store.DB(), model.TaskID, enums.TaskStatusFail, &message); err != nil {
			p.logger.Error("failed to finalize failed task",
				slog.Int64("task_id", model.TaskID), slog.Any("error", err))
		}
	}

	if err := p.store.InsertMqFailedRecord(ctx, p.store.DB(), failed); err != nil {
		p.logger.Error("failed to audit dropped batch message", slog.Any("error", err))
	}
	p.logger.Error("batch message dropped after retries", slog.Any("error", cause))
}
