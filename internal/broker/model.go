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

package broker

import "github.com/j50301m/notify-server/internal/enums"

// SingleNotifyModel is the queue payload for one notification to one
// recipient over one channel. The JSON field names are the wire contract
// shared with every producer of single_notify_queue.
type SingleNotifyModel struct {
	ClientID       int64             `json:"client_id"`
	UserID         int64             `json:"user_id"`
	NotifyID       int64             `json:"notify_id"`
	SenderID       int64             `json:"sender_id"`
	SenderAccount  string            `json:"sender_account"`
	SenderIP       *string           `json:"sender_ip"`
	NotifyType     enums.NotifyType  `json:"notify_type"`
	NotifyLevel    enums.NotifyLevel `json:"notify_level"`
	Title          string            `json:"title"`
	Content        string            `json:"content"`
	ReceiveAddress string            `json:"receive_address"`
	KeyMap         map[string]string `json:"key_map"`
	ClientEventID  int64             `json:"client_event_id"`
}

// BatchNotifyModel is the queue payload for an admin broadcast task. The
// batch worker expands it into one SingleNotifyModel per recipient and
// template.
type BatchNotifyModel struct {
	TaskID           int64           `json:"task_id"`
	FrontendClientID int64           `json:"frontend_client_id"`
	ClientID         int64           `json:"client_id"`
	ClientEventID    int64           `json:"client_event_id"`
	SenderID         int64           `json:"sender_id"`
	SenderAccount    string          `json:"sender_account"`
	SenderIP         *string         `json:"sender_ip"`
	NotifyLevel      int32           `json:"notify_level"`
	ReceiverIDs      []int64         `json:"receiver_ids"`
	Templates        []TemplateModel `json:"templates"`
}

// TemplateModel is one channel-specific body carried by a batch task.
// Title and content still contain unexpanded {{...}} placeholders.
type TemplateModel struct {
	NotifyType  enums.NotifyType  `json:"notify_type"`
	NotifyLevel enums.NotifyLevel `json:"notify_level"`
	Title       string            `json:"title"`
	Content     string            `json:"content"`
}
