/*
SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION. All rights reserved.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.

SPDX-License-Identifier: Apache-2.0
*/

package utils

import (
	"math/rand"
	"time"
)

// CalculateBackoff returns the delay before retry number retryCount.
// The base doubles from 1s per retry, a random jitter of up to one
// minute is added, and the result never exceeds maxBackoff. Retry 0 is
// the first attempt and waits nothing.
func CalculateBackoff(retryCount int, maxBackoff time.Duration) time.Duration {
	if retryCount <= 0 {
		return 0
	}
	base := time.Second << uint(retryCount-1)
	if base > maxBackoff {
		base = maxBackoff
	}
	d := base + time.Duration(rand.Float64()*float64(time.Minute))
	if d > maxBackoff {
		d = maxBackoff
	}
	return d
}
