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
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/j50301m/notify-server/internal/broker"
	"github.com/j50301m/notify-server/internal/enums"
	"github.com/j50301m/notify-server/internal/identity"
	"github.com/j50301m/notify-server/internal/server"
	frontendnotify "github.com/j50301m/notify-server/proto/frontendnotify"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testPool(t *testing.T) *Pool {
	t.Helper()
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("failed to build snowflake node: %v", err)
	}
	return &Pool{
		node:    node,
		logger:  testLogger(),
		backoff: func(int) time.Duration { return 0 },
	}
}

func TestProcessRetriesTransientFailure(t *testing.T) {
	p := testPool(t)

	attempts := 0
	handle := func(context.Context, []byte) error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return nil
	}
	failed := false
	p.process(context.Background(), []byte("payload"), handle, func(context.Context, []byte, error) {
		failed = true
	})

	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
	if failed {
		t.Error("expected no failure audit after eventual success")
	}
}

func TestProcessAuditsAfterRetryBudget(t *testing.T) {
	p := testPool(t)

	attempts := 0
	handle := func(context.Context, []byte) error {
		attempts++
		return errors.New("still broken")
	}
	var audited error
	p.process(context.Background(), []byte("payload"), handle, func(_ context.Context, _ []byte, err error) {
		audited = err
	})

	if attempts != maxAttempts {
		t.Errorf("expected %d attempts, got %d", maxAttempts, attempts)
	}
	if audited == nil || audited.Error() != "still broken" {
		t.Errorf("expected terminal error audited, got %v", audited)
	}
}

// TestProcessStopsOnPermanentFailure verifies a failure past the side
// effect boundary is audited without rerunning the handler: a second run
// would dispatch the message again.
func TestProcessStopsOnPermanentFailure(t *testing.T) {
	p := testPool(t)

	attempts := 0
	cause := errors.New("commit failed after send")
	handle := func(context.Context, []byte) error {
		attempts++
		return permanent(cause)
	}
	var audited error
	p.process(context.Background(), []byte("payload"), handle, func(_ context.Context, _ []byte, err error) {
		audited = err
	})

	if attempts != 1 {
		t.Errorf("expected a single attempt, got %d", attempts)
	}
	if !errors.Is(audited, cause) {
		t.Errorf("expected the permanent cause audited, got %v", audited)
	}
}

func TestExpandBatch(t *testing.T) {
	p := testPool(t)

	model := &broker.BatchNotifyModel{
		TaskID:           9000,
		FrontendClientID: 200,
		ClientID:         100,
		ClientEventID:    42,
		SenderID:         5,
		SenderAccount:    "admin01",
		NotifyLevel:      int32(enums.NotifyLevelInfo),
		ReceiverIDs:      []int64{1, 2, 3},
		Templates: []broker.TemplateModel{
			{NotifyType: enums.NotifyTypeInApp, NotifyLevel: enums.NotifyLevelInfo, Title: "hi", Content: "in-app body"},
			{NotifyType: enums.NotifyTypeEmail, NotifyLevel: enums.NotifyLevelInfo, Title: "hi", Content: "email body"},
		},
	}
	contacts := map[int64]identity.Contact{
		1: {UserID: 1, Email: "u1@example.com", Phone: "88609111111111"},
		2: {UserID: 2, Email: "u2@example.com", Phone: "88609222222222"},
		3: {UserID: 3, Email: "u3@example.com", Phone: "88609333333333"},
	}

	singles := p.expandBatch(model, contacts)
	if len(singles) != 6 {
		t.Fatalf("expected 6 singles from 3 receivers x 2 templates, got %d", len(singles))
	}

	ids := make(map[int64]bool, len(singles))
	for _, s := range singles {
		if ids[s.NotifyID] {
			t.Errorf("duplicate notify id %d", s.NotifyID)
		}
		ids[s.NotifyID] = true

		if s.ClientID != 200 {
			t.Errorf("expected frontend tenant 200, got %d", s.ClientID)
		}
		if s.ClientEventID != 42 || s.SenderAccount != "admin01" {
			t.Errorf("broadcast fields not carried: %+v", s)
		}
		switch s.NotifyType {
		case enums.NotifyTypeEmail:
			want := contacts[s.UserID].Email
			if s.ReceiveAddress != want {
				t.Errorf("user %d: expected email %q, got %q", s.UserID, want, s.ReceiveAddress)
			}
		case enums.NotifyTypeInApp:
			if s.ReceiveAddress != "" {
				t.Errorf("user %d: in-app routes by user id, got address %q", s.UserID, s.ReceiveAddress)
			}
		}
	}
}

type fakeDirectory struct {
	addr    string
	found   bool
	deleted []int64
}

func (f *fakeDirectory) Get(context.Context, int64) (string, bool, error) {
	return f.addr, f.found, nil
}

func (f *fakeDirectory) Delete(_ context.Context, userID int64) error {
	f.deleted = append(f.deleted, userID)
	return nil
}

type fakeForwarder struct {
	own       string
	err       error
	forwarded []*frontendnotify.ForwardNotifyRequest
}

func (f *fakeForwarder) OwnAddr() string { return f.own }

func (f *fakeForwarder) ForwardFrontend(_ context.Context, _ string, req *frontendnotify.ForwardNotifyRequest) error {
	f.forwarded = append(f.forwarded, req)
	return f.err
}

func inAppModel(userID int64) *broker.SingleNotifyModel {
	return &broker.SingleNotifyModel{
		ClientID:    200,
		UserID:      userID,
		NotifyID:    777,
		NotifyType:  enums.NotifyTypeInApp,
		NotifyLevel: enums.NotifyLevelInfo,
	}
}

func TestDeliverInAppLocalStream(t *testing.T) {
	p := testPool(t)
	p.registry = server.NewFrontendRegistry(testLogger())
	p.directory = &fakeDirectory{addr: "10.0.0.1:9100", found: true}
	forwarder := &fakeForwarder{own: "10.0.0.1:9100"}
	p.peers = forwarder

	ch := p.registry.Connect(7)
	if err := p.deliverInApp(context.Background(), inAppModel(7), "title", "content"); err != nil {
		t.Fatalf("expected local delivery to succeed, got %v", err)
	}

	got := <-ch
	if got.GetNotify().GetNotifyId() != 777 {
		t.Errorf("expected notify 777 on the stream, got %d", got.GetNotify().GetNotifyId())
	}
	if len(forwarder.forwarded) != 0 {
		t.Error("expected no forwarding for a local stream")
	}
}

func TestDeliverInAppOffline(t *testing.T) {
	p := testPool(t)
	p.registry = server.NewFrontendRegistry(testLogger())
	p.directory = &fakeDirectory{found: false}
	forwarder := &fakeForwarder{own: "10.0.0.1:9100"}
	p.peers = forwarder

	if err := p.deliverInApp(context.Background(), inAppModel(7), "title", "content"); err != nil {
		t.Fatalf("expected offline recipient to be a no-op, got %v", err)
	}
	if len(forwarder.forwarded) != 0 {
		t.Error("expected no forwarding for an offline recipient")
	}
}

func TestDeliverInAppStaleLocalEntry(t *testing.T) {
	p := testPool(t)
	p.registry = server.NewFrontendRegistry(testLogger())
	directory := &fakeDirectory{addr: "10.0.0.1:9100", found: true}
	p.directory = directory
	p.peers = &fakeForwarder{own: "10.0.0.1:9100"}

	// Directory says this pod, but no stream is connected here.
	if err := p.deliverInApp(context.Background(), inAppModel(7), "title", "content"); err != nil {
		t.Fatalf("expected stale entry to be treated as offline, got %v", err)
	}
	if len(directory.deleted) != 1 || directory.deleted[0] != 7 {
		t.Errorf("expected stale directory entry dropped, got %v", directory.deleted)
	}
}

func TestDeliverInAppCrossPod(t *testing.T) {
	p := testPool(t)
	p.registry = server.NewFrontendRegistry(testLogger())
	p.directory = &fakeDirectory{addr: "10.0.0.9:9100", found: true}
	forwarder := &fakeForwarder{own: "10.0.0.1:9100"}
	p.peers = forwarder

	if err := p.deliverInApp(context.Background(), inAppModel(7), "title", "content"); err != nil {
		t.Fatalf("expected cross-pod delivery to succeed, got %v", err)
	}
	if len(forwarder.forwarded) != 1 {
		t.Fatalf("expected one forward, got %d", len(forwarder.forwarded))
	}
	req := forwarder.forwarded[0]
	if req.GetUserId() != 7 || req.GetNotify().GetNotifyId() != 777 {
		t.Errorf("unexpected forward request: %+v", req)
	}
}

func TestDeliverInAppPeerLostStream(t *testing.T) {
	p := testPool(t)
	p.registry = server.NewFrontendRegistry(testLogger())
	directory := &fakeDirectory{addr: "10.0.0.9:9100", found: true}
	p.directory = directory
	p.peers = &fakeForwarder{
		own: "10.0.0.1:9100",
		err: status.Error(codes.NotFound, "user is not connected"),
	}

	if err := p.deliverInApp(context.Background(), inAppModel(7), "title", "content"); err != nil {
		t.Fatalf("expected a lost peer stream to be treated as offline, got %v", err)
	}
	if len(directory.deleted) != 1 || directory.deleted[0] != 7 {
		t.Errorf("expected stale directory entry dropped, got %v", directory.deleted)
	}
}
