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

package enums

// Profile placeholders recognized in template title and content. They are
// replaced with the matching fields of the receiving user's profile after
// the caller-supplied key map has been applied.
const (
	KeyUserAccount   = "{{user_account}}"
	KeyUserLastName  = "{{user_last_name}}"
	KeyUserFirstName = "{{user_first_name}}"
	KeyUserCity      = "{{user_city}}"
	KeyUserCountry   = "{{user_country}}"
)

// CommonKeys lists every profile placeholder, in substitution order.
func CommonKeys() []string {
	return []string{
		KeyUserAccount,
		KeyUserLastName,
		KeyUserFirstName,
		KeyUserCity,
		KeyUserCountry,
	}
}
