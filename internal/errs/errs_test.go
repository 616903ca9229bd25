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

package errs

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestToGRPC(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected codes.Code
	}{
		{name: "invalid argument", err: ErrInvalidArgument, expected: codes.InvalidArgument},
		{name: "invalid phone number", err: ErrInvalidPhoneNumber, expected: codes.InvalidArgument},
		{name: "data not found", err: ErrDataNotFound, expected: codes.NotFound},
		{name: "connection", err: ErrConnection, expected: codes.Unavailable},
		{name: "status", err: ErrStatus, expected: codes.FailedPrecondition},
		{name: "internal", err: ErrInternal, expected: codes.Internal},
		{name: "unknown error", err: errors.New("boom"), expected: codes.Internal},
		{
			name:     "wrapped sentinel",
			err:      fmt.Errorf("%w: event 42", ErrInvalidArgument),
			expected: codes.InvalidArgument,
		},
		{
			name:     "deeply wrapped sentinel",
			err:      fmt.Errorf("outer: %w", fmt.Errorf("%w: row missing", ErrDataNotFound)),
			expected: codes.NotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ToGRPC(tc.err)
			if status.Code(got) != tc.expected {
				t.Errorf("expected code %v, got %v (%v)", tc.expected, status.Code(got), got)
			}
		})
	}
}

func TestToGRPCNil(t *testing.T) {
	if got := ToGRPC(nil); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

// TestToGRPCPassthrough verifies errors already carrying a status keep
// their original code instead of being remapped.
func TestToGRPCPassthrough(t *testing.T) {
	original := status.Error(codes.PermissionDenied, "no access")
	got := ToGRPC(original)
	if status.Code(got) != codes.PermissionDenied {
		t.Errorf("expected PermissionDenied, got %v", status.Code(got))
	}
	if got.Error() != original.Error() {
		t.Errorf("expected message preserved, got %q", got.Error())
	}
}
