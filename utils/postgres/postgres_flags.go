/*
SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.

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

package postgres

import (
	"flag"
	"time"

	"github.com/j50301m/notify-server/utils"
)

// PostgresFlagPointers holds pointers to flag values for PostgreSQL configuration
type PostgresFlagPointers struct {
	host     *string
	port     *int
	database *string
	user     *string
	password *string
	maxConns *int
	minConns *int
	sslMode  *string
}

// RegisterPostgresFlags registers PostgreSQL-related command-line flags
// Returns a PostgresFlagPointers that should be converted to PostgresConfig
// after flag.Parse() is called
func RegisterPostgresFlags() *PostgresFlagPointers {
	return &PostgresFlagPointers{
		host: flag.String("db-host",
			utils.GetEnv("NOTIFY_DB_HOST", "localhost"),
			"PostgreSQL host"),
		port: flag.Int("db-port",
			utils.GetEnvInt("NOTIFY_DB_PORT", 5432),
			"PostgreSQL port"),
		database: flag.String("db-name",
			utils.GetEnv("NOTIFY_DB_NAME", "notify"),
			"PostgreSQL database name"),
		user: flag.String("db-user",
			utils.GetEnv("NOTIFY_DB_USER", "postgres"),
			"PostgreSQL user"),
		password: flag.String("db-password",
			utils.GetEnvOrConfig("NOTIFY_DB_PASSWORD", "notify_db_password", ""),
			"PostgreSQL password"),
		maxConns: flag.Int("db-max-connection",
			utils.GetEnvInt("NOTIFY_DB_MAX_CONNECTION", 10),
			"Maximum number of pooled PostgreSQL connections"),
		minConns: flag.Int("db-min-connection",
			utils.GetEnvInt("NOTIFY_DB_MIN_CONNECTION", 2),
			"Minimum number of pooled PostgreSQL connections"),
		sslMode: flag.String("db-ssl-mode",
			utils.GetEnv("NOTIFY_DB_SSL_MODE", "disable"),
			"PostgreSQL sslmode (disable, require, verify-full, ...)"),
	}
}

// ToPostgresConfig converts flag pointers to PostgresConfig
// This should be called after flag.Parse()
func (p *PostgresFlagPointers) ToPostgresConfig() PostgresConfig {
	return PostgresConfig{
		Host:            *p.host,
		Port:            *p.port,
		Database:        *p.database,
		User:            *p.user,
		Password:        *p.password,
		MaxConns:        int32(*p.maxConns),
		MinConns:        int32(*p.minConns),
		MaxConnLifetime: time.Hour,
		SSLMode:         *p.sslMode,
	}
}
