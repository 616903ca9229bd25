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

// Package cache holds the shared user-to-pod directory. When a user opens
// an in-app stream the owning pod records its own address here; the
// single-notify worker reads it to decide between local push and
// cross-pod forwarding.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/j50301m/notify-server/internal/errs"
	"github.com/j50301m/notify-server/utils/redis"
)

const (
	keyPrefix = "notify_server:"

	// Directory entries outlive most streams; they are refreshed on every
	// reconnect and evicted on close or on a detected stale forward.
	entryTTL = 604800 * time.Second // 7 days
)

// Directory maps user ids to the address of the pod holding their live
// in-app stream.
type Directory struct {
	client *redis.RedisClient
	logger *slog.Logger
}

// NewDirectory creates a Directory backed by the given redis client.
func NewDirectory(client *redis.RedisClient, logger *slog.Logger) *Directory {
	return &Directory{
		client: client,
		logger: logger,
	}
}

func key(userID int64) string {
	return fmt.Sprintf("%s%d", keyPrefix, userID)
}

// Set records podAddr as the holder of userID's stream with a 7-day TTL.
func (d *Directory) Set(ctx context.Context, userID int64, podAddr string) error {
	if err := d.client.Client().Set(ctx, key(userID), podAddr, entryTTL).Err(); err != nil {
		return fmt.Errorf("%w: failed to set directory entry for user %d: %v", errs.ErrInternal, userID, err)
	}
	return nil
}

// Get returns the pod address holding userID's stream. A missing key
// means the user is offline and returns ("", false, nil).
func (d *Directory) Get(ctx context.Context, userID int64) (string, bool, error) {
	addr, err := d.client.Client().Get(ctx, key(userID)).Result()
	if err == goredis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: failed to get directory entry for user %d: %v", errs.ErrInternal, userID, err)
	}
	return addr, true, nil
}

// Delete evicts userID's directory entry. Deleting an absent key is not
// an error.
func (d *Directory) Delete(ctx context.Context, userID int64) error {
	if err := d.client.Client().Del(ctx, key(userID)).Err(); err != nil {
		return fmt.Errorf("%w: failed to delete directory entry for user %d: %v", errs.ErrInternal, userID, err)
	}
	return nil
}
