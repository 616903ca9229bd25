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

// Package errs defines the error taxonomy shared by the RPC surfaces, the
// workers, and the storage layers. RPC handlers translate these sentinels
// to gRPC status codes with ToGRPC; workers keep them as plain errors and
// record them in the failure audit tables.
package errs

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	// ErrInvalidArgument covers event/platform mismatches, unknown enum
	// integers and missing required fields.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDataNotFound is returned when a row is absent for a key, an event
	// does not exist, or a user is not connected.
	ErrDataNotFound = errors.New("data not found")

	// ErrConnection covers external HTTP transport failures, broker pool
	// exhaustion and peer-pod RPC transport failures.
	ErrConnection = errors.New("connection error")

	// ErrStatus is an external HTTP non-2xx response.
	ErrStatus = errors.New("unexpected status")

	// ErrInvalidPhoneNumber is an SMS address under the minimum length.
	ErrInvalidPhoneNumber = errors.New("invalid phone number")

	// ErrInternal covers DB commit failures, cache errors and unexpected
	// server conditions.
	ErrInternal = errors.New("internal error")
)

// ToGRPC maps a taxonomy error to a gRPC status error. Errors already
// carrying a gRPC status pass through unchanged; anything unrecognized
// maps to codes.Internal.
func ToGRPC(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok && status.Code(err) != codes.Unknown {
		return err
	}

	var code codes.Code
	switch {
	case errors.Is(err, ErrInvalidArgument), errors.Is(err, ErrInvalidPhoneNumber):
		code = codes.InvalidArgument
	case errors.Is(err, ErrDataNotFound):
		code = codes.NotFound
	case errors.Is(err, ErrConnection):
		code = codes.Unavailable
	case errors.Is(err, ErrStatus):
		code = codes.FailedPrecondition
	default:
		code = codes.Internal
	}
	return status.Error(code, err.Error())
}
