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

package template

import (
	"testing"

	"github.com/j50301m/notify-server/internal/enums"
	"github.com/j50301m/notify-server/internal/identity"
)

func TestMaterialize(t *testing.T) {
	profile := &identity.Profile{
		Account:   "alice01",
		LastName:  "Liddell",
		FirstName: "Alice",
		City:      "Taipei",
		Country:   "TW",
	}

	testCases := []struct {
		name            string
		title           string
		content         string
		keyMap          map[string]string
		expectedTitle   string
		expectedContent string
	}{
		{
			name:            "profile placeholders",
			title:           "Hello {{user_first_name}}",
			content:         "Dear {{user_account}} from {{user_city}}, {{user_country}}",
			expectedTitle:   "Hello Alice",
			expectedContent: "Dear alice01 from Taipei, TW",
		},
		{
			name:            "custom keys",
			title:           "Bonus {{bonus_name}}",
			content:         "You won {{amount}}",
			keyMap:          map[string]string{"{{bonus_name}}": "Summer", "{{amount}}": "100"},
			expectedTitle:   "Bonus Summer",
			expectedContent: "You won 100",
		},
		{
			name:            "custom keys beside profile placeholders",
			title:           "Hi {{user_account}}",
			content:         "Hi {{user_account}}, your code is {{verify_code}}",
			keyMap:          map[string]string{"{{verify_code}}": "7788"},
			expectedTitle:   "Hi alice01",
			expectedContent: "Hi alice01, your code is 7788",
		},
		{
			name:            "custom key wins over profile placeholder",
			title:           "Hi {{user_account}}",
			content:         "plain",
			keyMap:          map[string]string{"{{user_account}}": "OVERRIDE"},
			expectedTitle:   "Hi OVERRIDE",
			expectedContent: "plain",
		},
		{
			name:            "unknown placeholder left as is",
			title:           "Hi {{unknown_key}}",
			content:         "",
			expectedTitle:   "Hi {{unknown_key}}",
			expectedContent: "",
		},
		{
			name:            "repeated placeholder",
			title:           "{{user_first_name}} {{user_first_name}}",
			content:         "",
			expectedTitle:   "Alice Alice",
			expectedContent: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			title, content := Materialize(tc.title, tc.content, profile, tc.keyMap)
			if title != tc.expectedTitle {
				t.Errorf("title: expected %q, got %q", tc.expectedTitle, title)
			}
			if content != tc.expectedContent {
				t.Errorf("content: expected %q, got %q", tc.expectedContent, content)
			}
		})
	}
}

func TestMaterializeNilProfile(t *testing.T) {
	title, content := Materialize("Hi {{user_account}}", "{{k}}", nil, map[string]string{"{{k}}": "v"})
	if title != "Hi {{user_account}}" {
		t.Errorf("expected profile placeholder untouched, got %q", title)
	}
	if content != "v" {
		t.Errorf("expected custom key applied, got %q", content)
	}
}

func TestReceiveAddress(t *testing.T) {
	profile := &identity.Profile{Email: "a@example.com", Phone: "88609123456789"}

	testCases := []struct {
		name       string
		notifyType enums.NotifyType
		profile    *identity.Profile
		expected   string
	}{
		{name: "email", notifyType: enums.NotifyTypeEmail, profile: profile, expected: "a@example.com"},
		{name: "sms", notifyType: enums.NotifyTypeSMS, profile: profile, expected: "88609123456789"},
		{name: "in-app routes by user id", notifyType: enums.NotifyTypeInApp, profile: profile, expected: ""},
		{name: "nil profile", notifyType: enums.NotifyTypeEmail, profile: nil, expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ReceiveAddress(tc.notifyType, tc.profile); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}
