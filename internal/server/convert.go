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

package server

import (
	"fmt"
	"time"

	"github.com/j50301m/notify-server/internal/enums"
	"github.com/j50301m/notify-server/internal/errs"
	"github.com/j50301m/notify-server/internal/store"
	backstagenotify "github.com/j50301m/notify-server/proto/backstagenotify"
	frontendnotify "github.com/j50301m/notify-server/proto/frontendnotify"
)

// eventFromFrontendProto maps the frontend RPC enum to the internal event
// code. Wire values 1-16 map directly; 17-30 sit after the four backstage
// events, so they shift by four.
func eventFromFrontendProto(e frontendnotify.SystemNotifyEvent) (enums.NotifyEvent, error) {
	v := int64(e)
	switch {
	case v >= 1 && v <= 16:
		return enums.NotifyEvent(v), nil
	case v >= 17 && v <= 30:
		return enums.NotifyEvent(v + 4), nil
	}
	return 0, fmt.Errorf("%w: frontend notify event %d", errs.ErrInvalidArgument, v)
}

// eventFromBackstageProto maps the backstage RPC enum to the internal
// event code.
func eventFromBackstageProto(e backstagenotify.BackStageNotifyEvent) (enums.NotifyEvent, error) {
	switch e {
	case backstagenotify.BackStageNotifyEvent_KYC_VERIFY:
		return enums.EventBackstageVerifyKyc, nil
	case backstagenotify.BackStageNotifyEvent_WITHDRAW_VERIFY:
		return enums.EventBackstageVerifyWithdraw, nil
	case backstagenotify.BackStageNotifyEvent_DEPOSIT_VERIFY:
		return enums.EventBackstageVerifyDeposit, nil
	case backstagenotify.BackStageNotifyEvent_CREDIT_CARD_VERIFY:
		return enums.EventBackstageVerifyCreditCard, nil
	}
	return 0, fmt.Errorf("%w: backstage notify event %d", errs.ErrInvalidArgument, int32(e))
}

func frontendNotifyFromRecord(r *store.NotifyRecord) *frontendnotify.Notify {
	return &frontendnotify.Notify{
		NotifyId:     r.ID,
		NotifyLevel:  int32(r.NotifyLevel),
		Title:        r.Title,
		Content:      r.Content,
		CreateAt:     r.CreateAt.UnixMilli(),
		NotifyStatus: int32(r.NotifyStatus),
	}
}

func backstageNotifyFromRecord(r *store.NotifyRecord) *backstagenotify.Notify {
	return &backstagenotify.Notify{
		NotifyId:     r.ID,
		NotifyLevel:  int32(r.NotifyLevel),
		Title:        r.Title,
		Content:      r.Content,
		CreateAt:     r.CreateAt.UnixMilli(),
		NotifyStatus: int32(r.NotifyStatus),
	}
}

func userNotifyRecordFromRecord(r *store.NotifyRecord) *backstagenotify.UserNotifyRecord {
	var senderIP string
	if r.SenderIP != nil {
		senderIP = *r.SenderIP
	}
	return &backstagenotify.UserNotifyRecord{
		NotifyId:        r.ID,
		Title:           r.Title,
		ReceiverAccount: r.UserAccount,
		NotifyStatus:    int32(r.NotifyStatus),
		NotifyType:      int32(r.NotifyType),
		NotifyLevel:     int32(r.NotifyLevel),
		SenderIp:        senderIP,
		CreateAt:        r.CreateAt.UnixMilli(),
		SenderAccount:   r.SenderAccount,
		Content:         r.Content,
	}
}

func clientEventFromStore(e *store.ClientNotifyEvent) *backstagenotify.ClientEvent {
	notifyTypes := make([]int32, 0, len(e.NotifyTypes))
	for _, t := range e.NotifyTypes {
		notifyTypes = append(notifyTypes, int32(t))
	}
	return &backstagenotify.ClientEvent{
		ClientEventId: e.ID,
		ClientId:      e.ClientID,
		EventName:     e.Name,
		EventMemo:     e.Memo,
		NotifyTypes:   notifyTypes,
		EditorAccount: e.EditorAccount,
		Platform:      int32(e.Platform),
		IsSystem:      e.IsSystemEvent,
		CreateAt:      e.CreateAt.UnixMilli(),
		UpdateAt:      e.UpdateAt.UnixMilli(),
	}
}

func notifyTaskFromStore(t *store.BackstageSendTask) *backstagenotify.NotifyTask {
	var senderIP, errorMessage string
	if t.SenderIP != nil {
		senderIP = *t.SenderIP
	}
	if t.ErrorMessage != nil {
		errorMessage = *t.ErrorMessage
	}
	return &backstagenotify.NotifyTask{
		TaskId:          t.ID,
		TaskName:        t.TaskName,
		SenderAccount:   t.SenderAccount,
		SenderIp:        senderIP,
		ReceiverCount:   t.ReceiverCount,
		ReceiverAccount: t.ReceiverAccount,
		NotifyLevel:     int32(t.NotifyLevel),
		TaskStatus:      int32(t.TaskStatus),
		ErrorMessage:    errorMessage,
		CreateAt:        t.CreateAt.UnixMilli(),
		UpdateAt:        t.UpdateAt.UnixMilli(),
	}
}

// notifyTypesFromInts validates a wire channel list.
func notifyTypesFromInts(vals []int32) ([]enums.NotifyType, error) {
	types := make([]enums.NotifyType, 0, len(vals))
	for _, v := range vals {
		t, err := enums.NotifyTypeFromInt(v)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}

func notifyStatusesFromInts(vals []int32) ([]enums.NotifyStatus, error) {
	statuses := make([]enums.NotifyStatus, 0, len(vals))
	for _, v := range vals {
		s, err := enums.NotifyStatusFromInt(v)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, s)
	}
	return statuses, nil
}

func notifyLevelsFromInts(vals []int32) ([]enums.NotifyLevel, error) {
	levels := make([]enums.NotifyLevel, 0, len(vals))
	for _, v := range vals {
		l, err := enums.NotifyLevelFromInt(v)
		if err != nil {
			return nil, err
		}
		levels = append(levels, l)
	}
	return levels, nil
}

// timeFromMillis converts a unix-millisecond filter bound; zero stays the
// zero time, meaning unfiltered.
func timeFromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}

// normalizePage maps the wire "0 means first page" convention onto
// 1-based pages.
func normalizePage(page int64) int64 {
	if page < 1 {
		return 1
	}
	return page
}

// totalPages is the page count for a row total. Zero rows still report
// one page so clients always land on a valid page.
func totalPages(total, pageSize int64) int64 {
	if pageSize < 1 {
		pageSize = store.NotifyPageSize
	}
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}
