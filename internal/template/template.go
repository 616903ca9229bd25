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

// Package template materializes stored notification templates: the
// caller-supplied key map is applied first, then the fixed profile
// placeholders of the receiving user.
package template

import (
	"strings"

	"github.com/j50301m/notify-server/internal/enums"
	"github.com/j50301m/notify-server/internal/identity"
)

// Materialize returns the final title and content of a template body for
// one recipient. Keys in keyMap are matched literally, braces included,
// the way callers store them. Custom keys win over profile placeholders
// when a caller supplies one of the fixed keys: the first pass already
// consumed it.
func Materialize(title, content string, profile *identity.Profile, keyMap map[string]string) (string, string) {
	for k, v := range keyMap {
		title = strings.ReplaceAll(title, k, v)
		content = strings.ReplaceAll(content, k, v)
	}

	if profile != nil {
		replacer := strings.NewReplacer(
			enums.KeyUserAccount, profile.Account,
			enums.KeyUserLastName, profile.LastName,
			enums.KeyUserFirstName, profile.FirstName,
			enums.KeyUserCity, profile.City,
			enums.KeyUserCountry, profile.Country,
		)
		title = replacer.Replace(title)
		content = replacer.Replace(content)
	}
	return title, content
}

// ReceiveAddress picks the delivery address for a channel: email for
// Email, phone for SMS, empty for in-app where routing happens by user
// id.
func ReceiveAddress(notifyType enums.NotifyType, profile *identity.Profile) string {
	if profile == nil {
		return ""
	}
	switch notifyType {
	case enums.NotifyTypeEmail:
		return profile.Email
	case enums.NotifyTypeSMS:
		return profile.Phone
	default:
		return ""
	}
}
