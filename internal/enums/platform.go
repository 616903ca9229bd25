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

import (
	"fmt"

	"github.com/j50301m/notify-server/internal/errs"
)

// Platform distinguishes the end-user surface from the admin surfaces.
type Platform int32

const (
	PlatformFrontend        Platform = 1
	PlatformBackstage       Platform = 2
	PlatformMasterBackstage Platform = 3
)

// PlatformFromInt converts a wire integer to a Platform.
func PlatformFromInt(v int32) (Platform, error) {
	switch Platform(v) {
	case PlatformFrontend, PlatformBackstage, PlatformMasterBackstage:
		return Platform(v), nil
	}
	return 0, fmt.Errorf("%w: platform %d", errs.ErrInvalidArgument, v)
}

func (p Platform) String() string {
	switch p {
	case PlatformFrontend:
		return "Frontend"
	case PlatformBackstage:
		return "Backstage"
	case PlatformMasterBackstage:
		return "MasterBackstage"
	}
	return fmt.Sprintf("Platform(%d)", int32(p))
}

// Language selects the template translation. The zero value (UsEn) is a
// valid code, so callers that want a fallback must check explicitly.
type Language int32

const (
	LanguageUsEn Language = 0
	LanguageJp   Language = 1
	LanguageZhTw Language = 2
	LanguageZhCn Language = 3
)

// LanguageFromInt converts a wire integer to a Language.
func LanguageFromInt(v int32) (Language, error) {
	switch Language(v) {
	case LanguageUsEn, LanguageJp, LanguageZhTw, LanguageZhCn:
		return Language(v), nil
	}
	return 0, fmt.Errorf("%w: language %d", errs.ErrInvalidArgument, v)
}

func (l Language) String() string {
	switch l {
	case LanguageUsEn:
		return "UsEn"
	case LanguageJp:
		return "Jp"
	case LanguageZhTw:
		return "ZhTw"
	case LanguageZhCn:
		return "ZhCn"
	}
	return fmt.Sprintf("Language(%d)", int32(l))
}
