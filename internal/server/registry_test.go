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
	"io"
	"log/slog"
	"testing"

	backstagenotify "github.com/j50301m/notify-server/proto/backstagenotify"
	frontendnotify "github.com/j50301m/notify-server/proto/frontendnotify"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFrontendRegistryPush(t *testing.T) {
	r := NewFrontendRegistry(testLogger())
	ch := r.Connect(7)

	if !r.Push(7, &frontendnotify.Notify{NotifyId: 1}) {
		t.Fatal("expected push to a connected user to succeed")
	}
	got := <-ch
	if got.GetNotify().GetNotifyId() != 1 {
		t.Errorf("expected notify id 1, got %d", got.GetNotify().GetNotifyId())
	}

	if r.Push(99, &frontendnotify.Notify{NotifyId: 2}) {
		t.Error("expected push to an unknown user to fail")
	}
}

// TestFrontendRegistryReplace verifies a reconnect closes the previous
// channel so the older stream handler exits.
func TestFrontendRegistryReplace(t *testing.T) {
	r := NewFrontendRegistry(testLogger())
	first := r.Connect(7)
	second := r.Connect(7)

	if _, open := <-first; open {
		t.Error("expected first channel to be closed after replace")
	}

	if !r.Push(7, &frontendnotify.Notify{NotifyId: 3}) {
		t.Fatal("expected push after replace to succeed")
	}
	got := <-second
	if got.GetNotify().GetNotifyId() != 3 {
		t.Errorf("expected notify id 3 on second channel, got %d", got.GetNotify().GetNotifyId())
	}
}

// TestFrontendRegistryDisconnectOwnership verifies a stale handler cannot
// release the slot a newer stream took over.
func TestFrontendRegistryDisconnectOwnership(t *testing.T) {
	r := NewFrontendRegistry(testLogger())
	first := r.Connect(7)
	second := r.Connect(7)

	if r.Disconnect(7, first) {
		t.Error("expected stale channel not to own the slot")
	}
	if !r.Push(7, &frontendnotify.Notify{NotifyId: 1}) {
		t.Fatal("expected the newer stream to still be connected")
	}
	<-second

	if !r.Disconnect(7, second) {
		t.Error("expected owning channel to release the slot")
	}
	if r.Push(7, &frontendnotify.Notify{NotifyId: 2}) {
		t.Error("expected push after disconnect to fail")
	}
}

func TestFrontendRegistryDisconnectUser(t *testing.T) {
	r := NewFrontendRegistry(testLogger())
	ch := r.Connect(7)

	if !r.DisconnectUser(7) {
		t.Fatal("expected disconnect of a connected user to succeed")
	}
	if _, open := <-ch; open {
		t.Error("expected channel to be closed")
	}
	if r.DisconnectUser(7) {
		t.Error("expected disconnect of an absent user to fail")
	}
}

// TestFrontendRegistryStalledStream verifies a full buffer drops the
// stream instead of blocking the sender.
func TestFrontendRegistryStalledStream(t *testing.T) {
	r := NewFrontendRegistry(testLogger())
	ch := r.Connect(7)

	for i := 0; i < streamBuffer; i++ {
		if !r.Push(7, &frontendnotify.Notify{NotifyId: int64(i)}) {
			t.Fatalf("push %d: expected buffered push to succeed", i)
		}
	}
	if r.Push(7, &frontendnotify.Notify{NotifyId: 999}) {
		t.Error("expected push to a full stream to fail")
	}

	// The stalled stream is gone; its channel drained and closed.
	drained := 0
	for range ch {
		drained++
	}
	if drained != streamBuffer {
		t.Errorf("expected %d buffered frames, got %d", streamBuffer, drained)
	}
	if r.Push(7, &frontendnotify.Notify{NotifyId: 1}) {
		t.Error("expected user to be disconnected after stall")
	}
}

func TestBackstageBroadcastRoleFiltering(t *testing.T) {
	r := NewBackstageRegistry(testLogger())
	r.Connect(100, 1, "alice", []int64{10, 11})
	r.Connect(100, 2, "bob", []int64{12})
	r.Connect(200, 3, "carol", []int64{10})

	mint := func(userID int64) *backstagenotify.Notify {
		return &backstagenotify.Notify{NotifyId: userID * 1000}
	}

	delivered := r.Broadcast(100, []int64{10}, mint)
	if len(delivered) != 1 {
		t.Fatalf("expected 1 delivery, got %d", len(delivered))
	}
	if delivered[0].UserID != 1 {
		t.Errorf("expected delivery to user 1, got %d", delivered[0].UserID)
	}
	if delivered[0].UserAccount != "alice" {
		t.Errorf("expected account carried on delivery, got %q", delivered[0].UserAccount)
	}
	if delivered[0].Notify.GetNotifyId() != 1000 {
		t.Errorf("expected per-user minted notify, got id %d", delivered[0].Notify.GetNotifyId())
	}
}

// TestBackstageBroadcastEmptyRoles verifies an empty role list reaches
// every admin of the tenant but never crosses tenants.
func TestBackstageBroadcastEmptyRoles(t *testing.T) {
	r := NewBackstageRegistry(testLogger())
	r.Connect(100, 1, "alice", []int64{10})
	r.Connect(100, 2, "bob", nil)
	r.Connect(200, 3, "carol", []int64{10})

	delivered := r.Broadcast(100, nil, func(userID int64) *backstagenotify.Notify {
		return &backstagenotify.Notify{NotifyId: userID}
	})
	if len(delivered) != 2 {
		t.Fatalf("expected 2 deliveries, got %d", len(delivered))
	}
	seen := map[int64]bool{}
	for _, d := range delivered {
		seen[d.UserID] = true
	}
	if !seen[1] || !seen[2] || seen[3] {
		t.Errorf("unexpected delivery set: %v", seen)
	}
}

func TestBackstageRegistryReplace(t *testing.T) {
	r := NewBackstageRegistry(testLogger())
	first := r.Connect(100, 1, "alice", []int64{10})
	r.Connect(100, 1, "alice", []int64{10})

	if _, open := <-first; open {
		t.Error("expected first channel to be closed after replace")
	}
}

func TestHasCommonRole(t *testing.T) {
	testCases := []struct {
		name     string
		required []int64
		held     []int64
		expected bool
	}{
		{name: "empty required matches everyone", required: nil, held: nil, expected: true},
		{name: "shared role", required: []int64{1, 2}, held: []int64{2, 3}, expected: true},
		{name: "no shared role", required: []int64{1, 2}, held: []int64{3, 4}, expected: false},
		{name: "required but none held", required: []int64{1}, held: nil, expected: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := hasCommonRole(tc.required, tc.held); got != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}
