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

// Package store is the typed query layer over the notify database:
// delivery records, events, templates, broadcast tasks and the worker
// audit tables.
package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/j50301m/notify-server/internal/enums"
	"github.com/j50301m/notify-server/utils/postgres"
)

// NotifyPageSize is the fixed page size for all paginated listings.
const NotifyPageSize = 10

// DB is the subset of pgx operations the queries need. Both *pgxpool.Pool
// and pgx.Tx satisfy it, so every query can run standalone or inside a
// caller-owned transaction.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store executes typed queries over the notify schema.
type Store struct {
	client *postgres.PostgresClient
	logger *slog.Logger
}

// NewStore wraps an existing postgres client.
func NewStore(client *postgres.PostgresClient, logger *slog.Logger) *Store {
	return &Store{
		client: client,
		logger: logger,
	}
}

// DB returns the pooled connection for queries outside a transaction.
func (s *Store) DB() DB {
	return s.client.Pool()
}

// Begin opens a transaction. Callers must either Commit or let the
// deferred Rollback undo the work.
func (s *Store) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := s.client.Pool().Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// typesToInts converts an enum slice to the int32 array form pgx maps
// onto integer[] columns.
func typesToInts(types []enums.NotifyType) []int32 {
	out := make([]int32, len(types))
	for i, t := range types {
		out[i] = int32(t)
	}
	return out
}

// intsToTypes is the inverse of typesToInts for rows read back from
// integer[] columns. Unknown codes are dropped rather than failing the
// whole row.
func intsToTypes(vals []int32) []enums.NotifyType {
	out := make([]enums.NotifyType, 0, len(vals))
	for _, v := range vals {
		t, err := enums.NotifyTypeFromInt(v)
		if err != nil {
			continue
		}
		out = append(out, t)
	}
	return out
}
