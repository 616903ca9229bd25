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

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/j50301m/notify-server/internal/enums"
)

// TestToBrokerConfig verifies conversion from flag pointers to BrokerConfig
func TestToBrokerConfig(t *testing.T) {
	host := "mq.local"
	port := 5673
	user := "notify"
	password := "secret"
	maxConnection := 32
	connTimeoutSec := 15

	flagPtrs := &BrokerFlagPointers{
		host:           &host,
		port:           &port,
		user:           &user,
		password:       &password,
		maxConnection:  &maxConnection,
		connTimeoutSec: &connTimeoutSec,
	}

	config := flagPtrs.ToBrokerConfig()

	if config.Host != host {
		t.Errorf("Expected host %s, got %s", host, config.Host)
	}
	if config.Port != port {
		t.Errorf("Expected port %d, got %d", port, config.Port)
	}
	if config.User != user {
		t.Errorf("Expected user %s, got %s", user, config.User)
	}
	if config.Password != password {
		t.Errorf("Expected password %s, got %s", password, config.Password)
	}
	if config.MaxChannels != maxConnection {
		t.Errorf("Expected MaxChannels %d, got %d", maxConnection, config.MaxChannels)
	}
	if config.DialTimeout != 15*time.Second {
		t.Errorf("Expected DialTimeout 15s, got %v", config.DialTimeout)
	}
}

// TestChannelBudget verifies consumers cannot exceed the configured
// channel limit, and that closing one frees its slot.
func TestChannelBudget(t *testing.T) {
	c := &Client{config: BrokerConfig{MaxChannels: 2}, channels: 1}

	if err := c.reserveChannel(); err != nil {
		t.Fatalf("expected a free slot, got %v", err)
	}
	if err := c.reserveChannel(); err == nil {
		t.Fatal("expected the channel limit to be enforced")
	}

	c.releaseChannel()
	if err := c.reserveChannel(); err != nil {
		t.Errorf("expected a released slot to be reusable, got %v", err)
	}
}

// TestSingleNotifyModelOptionalFields verifies the wire shape keeps
// optional fields absent rather than null-ish zero values, so audit rows
// can tell "not set" apart from empty.
func TestSingleNotifyModelOptionalFields(t *testing.T) {
	model := SingleNotifyModel{
		ClientID:      1,
		UserID:        2,
		NotifyID:      3,
		SenderAccount: "System",
		NotifyType:    enums.NotifyTypeInApp,
		NotifyLevel:   enums.NotifyLevelSystem,
		Title:         "t",
		Content:       "c",
	}

	data, err := json.Marshal(model)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded SingleNotifyModel
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded.SenderIP != nil {
		t.Errorf("expected absent sender ip to stay nil, got %v", *decoded.SenderIP)
	}
	if decoded.NotifyType != enums.NotifyTypeInApp {
		t.Errorf("expected notify type preserved, got %v", decoded.NotifyType)
	}
}
