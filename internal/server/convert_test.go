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
	"errors"
	"testing"

	"github.com/j50301m/notify-server/internal/enums"
	"github.com/j50301m/notify-server/internal/errs"
	backstagenotify "github.com/j50301m/notify-server/proto/backstagenotify"
	frontendnotify "github.com/j50301m/notify-server/proto/frontendnotify"
)

func TestEventFromFrontendProto(t *testing.T) {
	testCases := []struct {
		name     string
		input    frontendnotify.SystemNotifyEvent
		expected enums.NotifyEvent
		wantErr  bool
	}{
		{name: "first direct code", input: frontendnotify.SystemNotifyEvent_NORMAL_INFO, expected: enums.EventNormalInfo},
		{name: "last direct code", input: frontendnotify.SystemNotifyEvent(16), expected: enums.EventVerifyPhone},
		{name: "first shifted code", input: frontendnotify.SystemNotifyEvent(17), expected: enums.EventNewEventOnline},
		{name: "last shifted code", input: frontendnotify.SystemNotifyEvent(30), expected: enums.NotifyEvent(34)},
		{name: "none", input: frontendnotify.SystemNotifyEvent_NONE, wantErr: true},
		{name: "out of range", input: frontendnotify.SystemNotifyEvent(31), wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := eventFromFrontendProto(tc.input)
			if tc.wantErr {
				if !errors.Is(err, errs.ErrInvalidArgument) {
					t.Fatalf("expected ErrInvalidArgument, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

// TestEventFromFrontendProtoNeverBackstage verifies the +4 shift can
// never land a frontend wire value on a backstage event code.
func TestEventFromFrontendProtoNeverBackstage(t *testing.T) {
	for v := int32(1); v <= 30; v++ {
		got, err := eventFromFrontendProto(frontendnotify.SystemNotifyEvent(v))
		if err != nil {
			t.Fatalf("wire value %d: unexpected error: %v", v, err)
		}
		if got.Platform() != enums.PlatformFrontend {
			t.Errorf("wire value %d mapped to backstage event %v", v, got)
		}
	}
}

func TestEventFromBackstageProto(t *testing.T) {
	testCases := []struct {
		input    backstagenotify.BackStageNotifyEvent
		expected enums.NotifyEvent
	}{
		{input: backstagenotify.BackStageNotifyEvent_KYC_VERIFY, expected: enums.EventBackstageVerifyKyc},
		{input: backstagenotify.BackStageNotifyEvent_WITHDRAW_VERIFY, expected: enums.EventBackstageVerifyWithdraw},
		{input: backstagenotify.BackStageNotifyEvent_DEPOSIT_VERIFY, expected: enums.EventBackstageVerifyDeposit},
		{input: backstagenotify.BackStageNotifyEvent_CREDIT_CARD_VERIFY, expected: enums.EventBackstageVerifyCreditCard},
	}
	for _, tc := range testCases {
		got, err := eventFromBackstageProto(tc.input)
		if err != nil {
			t.Errorf("event %v: unexpected error: %v", tc.input, err)
			continue
		}
		if got != tc.expected {
			t.Errorf("event %v: expected %v, got %v", tc.input, tc.expected, got)
		}
	}

	if _, err := eventFromBackstageProto(backstagenotify.BackStageNotifyEvent_NONE); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for NONE, got %v", err)
	}
}

func TestNotifyTypesFromInts(t *testing.T) {
	types, err := notifyTypesFromInts([]int32{1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(types) != 3 || types[0] != enums.NotifyTypeInApp || types[2] != enums.NotifyTypeSMS {
		t.Errorf("unexpected types: %v", types)
	}

	if _, err := notifyTypesFromInts([]int32{1, 9}); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}

	empty, err := notifyTypesFromInts(nil)
	if err != nil {
		t.Fatalf("unexpected error for empty input: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected empty slice, got %v", empty)
	}
}

func TestTimeFromMillis(t *testing.T) {
	if !timeFromMillis(0).IsZero() {
		t.Error("expected zero millis to map to zero time")
	}
	got := timeFromMillis(1700000000000)
	if got.UnixMilli() != 1700000000000 {
		t.Errorf("expected round trip, got %d", got.UnixMilli())
	}
}

func TestNormalizePage(t *testing.T) {
	testCases := []struct {
		input    int64
		expected int64
	}{
		{input: 0, expected: 1},
		{input: -3, expected: 1},
		{input: 1, expected: 1},
		{input: 42, expected: 42},
	}
	for _, tc := range testCases {
		if got := normalizePage(tc.input); got != tc.expected {
			t.Errorf("normalizePage(%d): expected %d, got %d", tc.input, tc.expected, got)
		}
	}
}

func TestTotalPages(t *testing.T) {
	testCases := []struct {
		name     string
		total    int64
		pageSize int64
		expected int64
	}{
		{name: "zero rows still one page", total: 0, pageSize: 10, expected: 1},
		{name: "exact fit", total: 20, pageSize: 10, expected: 2},
		{name: "partial last page", total: 21, pageSize: 10, expected: 3},
		{name: "single row", total: 1, pageSize: 10, expected: 1},
		{name: "invalid page size falls back to default", total: 25, pageSize: 0, expected: 3},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := totalPages(tc.total, tc.pageSize); got != tc.expected {
				t.Errorf("expected %d, got %d", tc.expected, got)
			}
		})
	}
}

func TestDedupeTemplates(t *testing.T) {
	in := []*backstagenotify.Template{
		{NotifyType: 1, Title: "first in-app", Content: "a"},
		{NotifyType: 2, Title: "email", Content: "b"},
		{NotifyType: 1, Title: "second in-app", Content: "c"},
	}
	out, err := dedupeTemplates(in, enums.NotifyLevelInfo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 templates, got %d", len(out))
	}
	// First template per channel wins.
	if out[0].NotifyType != enums.NotifyTypeInApp || out[0].Title != "first in-app" {
		t.Errorf("unexpected first template: %+v", out[0])
	}
	if out[1].NotifyType != enums.NotifyTypeEmail {
		t.Errorf("unexpected second template: %+v", out[1])
	}
	for _, tm := range out {
		if tm.NotifyLevel != enums.NotifyLevelInfo {
			t.Errorf("expected level carried onto template, got %v", tm.NotifyLevel)
		}
	}

	if _, err := dedupeTemplates([]*backstagenotify.Template{{NotifyType: 9}}, enums.NotifyLevelInfo); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for unknown channel, got %v", err)
	}
}

func TestTaskName(t *testing.T) {
	in := []*backstagenotify.Template{
		{NotifyType: 1, Title: "Hello"},
		{NotifyType: 2, Title: "World"},
	}
	templates, err := dedupeTemplates(in, enums.NotifyLevelInfo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := taskName(templates); got != "Hello World " {
		t.Errorf("expected %q, got %q", "Hello World ", got)
	}
	if got := taskName(nil); got != "" {
		t.Errorf("expected empty name, got %q", got)
	}
}
