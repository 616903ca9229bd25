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

package sender

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/j50301m/notify-server/internal/errs"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestEmailSend(t *testing.T) {
	var gotPath string
	var gotForm url.Values
	var gotUser, gotPass string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()
		if err := r.ParseForm(); err != nil {
			t.Errorf("failed to parse form: %v", err)
		}
		gotForm = r.PostForm
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sender := NewEmailSender(EmailConfig{
		BaseURL: srv.URL,
		Domain:  "mail.example.com",
		APIKey:  "key-123",
		From:    "<noreply@example.com>",
	}, srv.Client(), discardLogger())

	err := sender.Send(context.Background(), "user@example.com", "Welcome", "Hello there")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/v3/mail.example.com/messages" {
		t.Errorf("unexpected path %q", gotPath)
	}
	if gotUser != "api" || gotPass != "key-123" {
		t.Errorf("unexpected basic auth %q/%q", gotUser, gotPass)
	}
	if gotForm.Get("from") != "<noreply@example.com>" {
		t.Errorf("unexpected from %q", gotForm.Get("from"))
	}
	if gotForm.Get("to") != "user@example.com" {
		t.Errorf("unexpected to %q", gotForm.Get("to"))
	}
	if gotForm.Get("subject") != "Welcome" {
		t.Errorf("unexpected subject %q", gotForm.Get("subject"))
	}
	if gotForm.Get("html") != "Hello there" {
		t.Errorf("unexpected html body %q", gotForm.Get("html"))
	}
}

func TestEmailSendNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	sender := NewEmailSender(EmailConfig{BaseURL: srv.URL, Domain: "d"}, srv.Client(), discardLogger())
	err := sender.Send(context.Background(), "user@example.com", "t", "c")
	if !errors.Is(err, errs.ErrStatus) {
		t.Fatalf("expected ErrStatus, got %v", err)
	}
}

func TestEmailSendConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	sender := NewEmailSender(EmailConfig{BaseURL: srv.URL, Domain: "d"}, nil, discardLogger())
	err := sender.Send(context.Background(), "user@example.com", "t", "c")
	if !errors.Is(err, errs.ErrConnection) {
		t.Fatalf("expected ErrConnection, got %v", err)
	}
}

func TestSplitPhone(t *testing.T) {
	testCases := []struct {
		name            string
		phone           string
		expectedCountry string
		expectedNumber  string
		wantErr         bool
	}{
		{
			name:            "plain number",
			phone:           "886912345678",
			expectedCountry: "886",
			expectedNumber:  "912345678",
		},
		{
			name:            "leading zero stripped",
			phone:           "8860912345678",
			expectedCountry: "886",
			expectedNumber:  "912345678",
		},
		{
			name:            "only first zero stripped",
			phone:           "8860012345678",
			expectedCountry: "886",
			expectedNumber:  "012345678",
		},
		{name: "too short", phone: "886123", wantErr: true},
		{name: "empty", phone: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			country, number, err := splitPhone(tc.phone)
			if tc.wantErr {
				if !errors.Is(err, errs.ErrInvalidPhoneNumber) {
					t.Fatalf("expected ErrInvalidPhoneNumber, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if country != tc.expectedCountry {
				t.Errorf("country: expected %q, got %q", tc.expectedCountry, country)
			}
			if number != tc.expectedNumber {
				t.Errorf("number: expected %q, got %q", tc.expectedNumber, number)
			}
		})
	}
}

func TestSmsSend(t *testing.T) {
	var gotPath string
	var gotQuery url.Values

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sender := NewSmsSender(SmsConfig{
		BaseURL:   srv.URL,
		AppKey:    "k",
		AppSecret: "s",
		AppCode:   "c",
	}, srv.Client(), discardLogger())

	err := sender.Send(context.Background(), "8860912345678", "your code is 1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/sms/batch/v2" {
		t.Errorf("unexpected path %q", gotPath)
	}
	if gotQuery.Get("appkey") != "k" || gotQuery.Get("appsecret") != "s" || gotQuery.Get("appcode") != "c" {
		t.Errorf("unexpected credentials in query: %v", gotQuery)
	}
	// Leading zero of the national number is stripped before dialing out.
	if gotQuery.Get("phone") != "886912345678" {
		t.Errorf("unexpected phone %q", gotQuery.Get("phone"))
	}
	if gotQuery.Get("msg") != "your code is 1234" {
		t.Errorf("unexpected msg %q", gotQuery.Get("msg"))
	}
}

func TestSmsSendInvalidPhone(t *testing.T) {
	sender := NewSmsSender(SmsConfig{BaseURL: "http://localhost:0"}, nil, discardLogger())
	err := sender.Send(context.Background(), "123", "hi")
	if !errors.Is(err, errs.ErrInvalidPhoneNumber) {
		t.Fatalf("expected ErrInvalidPhoneNumber, got %v", err)
	}
}

func TestSmsSendNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	sender := NewSmsSender(SmsConfig{BaseURL: srv.URL}, srv.Client(), discardLogger())
	err := sender.Send(context.Background(), "8860912345678", "hi")
	if !errors.Is(err, errs.ErrStatus) {
		t.Fatalf("expected ErrStatus, got %v", err)
	}
}
