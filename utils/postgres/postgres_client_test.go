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
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TestURLEscaping verifies that passwords with special characters are properly escaped
func TestURLEscaping(t *testing.T) {
	testCases := []struct {
		name     string
		password string
	}{
		{
			name:     "password with percent",
			password: "test%2password",
		},
		{
			name:     "password with at sign",
			password: "test@password",
		},
		{
			name:     "password with colon",
			password: "test:password",
		},
		{
			name:     "password with slash",
			password: "test/password",
		},
		{
			name:     "password with multiple special chars",
			password: "p@ss%2:w/rd",
		},
		{
			name:     "complex password like from Vault",
			password: "Ab%2Cd@Ef:Gh/Ij",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			config := PostgresConfig{
				Host:     "localhost",
				Port:     5432,
				Database: "testdb",
				User:     "testuser",
				Password: tc.password,
				SSLMode:  "disable",
			}
			connURL := config.connURL()

			// Try to parse it - should not error
			_, err := pgxpool.ParseConfig(connURL)
			if err != nil {
				t.Errorf("Failed to parse connection URL with password '%s': %v", tc.password, err)
				t.Logf("Generated URL: %s", connURL)
			} else {
				t.Logf("✓ Successfully parsed URL with password: %s", tc.password)
			}
		})
	}
}

// TestURLEscapingWithoutEscape demonstrates the failure case without escaping
func TestURLEscapingWithoutEscape(t *testing.T) {
	password := "test%2password"

	// Build connection URL WITHOUT escaping (the old way)
	connURL := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		"testuser",
		password, // NOT escaped
		"localhost",
		5432,
		"testdb",
		"disable",
	)

	// This should fail to parse
	_, err := pgxpool.ParseConfig(connURL)
	if err == nil {
		t.Errorf("Expected error when parsing unescaped password, but got none")
	} else {
		t.Logf("✓ Expected error occurred without escaping: %v", err)
	}
}

// TestPostgresConfigToPostgresConfig tests the flag to config conversion
func TestPostgresFlagPointersToPostgresConfig(t *testing.T) {
	// Create test values
	host := "testhost"
	port := 5433
	user := "testuser"
	password := "testpass"
	database := "testdb"
	maxConns := 20
	minConns := 5
	sslMode := "require"

	flagPtrs := &PostgresFlagPointers{
		host:     &host,
		port:     &port,
		user:     &user,
		password: &password,
		database: &database,
		maxConns: &maxConns,
		minConns: &minConns,
		sslMode:  &sslMode,
	}

	config := flagPtrs.ToPostgresConfig()

	// Verify all fields
	if config.Host != host {
		t.Errorf("Expected host %s, got %s", host, config.Host)
	}
	if config.Port != port {
		t.Errorf("Expected port %d, got %d", port, config.Port)
	}
	if config.User != user {
		t.Errorf("Expected user %s, got %s", user, config.User)
	}
	if config.Password != password {
		t.Errorf("Expected password %s, got %s", password, config.Password)
	}
	if config.Database != database {
		t.Errorf("Expected database %s, got %s", database, config.Database)
	}
	if config.MaxConns != int32(maxConns) {
		t.Errorf("Expected maxConns %d, got %d", maxConns, config.MaxConns)
	}
	if config.MinConns != int32(minConns) {
		t.Errorf("Expected minConns %d, got %d", minConns, config.MinConns)
	}
	if config.MaxConnLifetime != time.Hour {
		t.Errorf("Expected maxConnLifetime %v, got %v", time.Hour, config.MaxConnLifetime)
	}
	if config.SSLMode != sslMode {
		t.Errorf("Expected sslMode %s, got %s", sslMode, config.SSLMode)
	}
}

// TestConnectionURLGeneration tests the full URL generation with escaping
func TestConnectionURLGeneration(t *testing.T) {
	testCases := []struct {
		name           string
		config         PostgresConfig
		expectedPrefix string
		shouldParse    bool
	}{
		{
			name: "standard config",
			config: PostgresConfig{
				Host:     "localhost",
				Port:     5432,
				Database: "testdb",
				User:     "postgres",
				Password: "simplepass",
				SSLMode:  "disable",
			},
			expectedPrefix: "postgres://postgres:",
			shouldParse:    true,
		},
		{
			name: "config with special chars in password",
			config: PostgresConfig{
				Host:     "db.example.com",
				Port:     5432,
				Database: "mydb",
				User:     "admin",
				Password: "p@ss%2:w/rd",
				SSLMode:  "require",
			},
			expectedPrefix: "postgres://admin:",
			shouldParse:    true,
		},
		{
			name: "config with special chars in username",
			config: PostgresConfig{
				Host:     "localhost",
				Port:     5432,
				Database: "testdb",
				User:     "user@domain.com",
				Password: "password",
				SSLMode:  "prefer",
			},
			expectedPrefix: "postgres://user",
			shouldParse:    true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			connURL := tc.config.connURL()
			if !strings.HasPrefix(connURL, tc.expectedPrefix) {
				t.Errorf("Expected URL prefix %q, got %s", tc.expectedPrefix, connURL)
			}

			_, err := pgxpool.ParseConfig(connURL)
			if tc.shouldParse && err != nil {
				t.Errorf("Failed to parse config: %v", err)
				t.Logf("Generated URL: %s", connURL)
			} else if !tc.shouldParse && err == nil {
				t.Errorf("Expected parse to fail, but it succeeded")
			}
		})
	}
}
