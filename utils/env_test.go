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
	"os"
	"path/filepath"
	"testing"
)

// TestGetEnv tests the GetEnv helper function
func TestGetEnv(t *testing.T) {
	testCases := []struct {
		name         string
		envKey       string
		envValue     string
		defaultValue string
		expected     string
	}{
		{
			name:         "env var set",
			envKey:       "TEST_NOTIFY_HOST",
			envValue:     "db.test.com",
			defaultValue: "localhost",
			expected:     "db.test.com",
		},
		{
			name:         "env var not set",
			envKey:       "TEST_NOTIFY_HOST_NOTSET",
			envValue:     "",
			defaultValue: "localhost",
			expected:     "localhost",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.envKey, tc.envValue)
				defer os.Unsetenv(tc.envKey)
			}

			result := GetEnv(tc.envKey, tc.defaultValue)
			if result != tc.expected {
				t.Errorf("Expected %s, got %s", tc.expected, result)
			}
		})
	}
}

// TestGetEnvInt tests the GetEnvInt helper function
func TestGetEnvInt(t *testing.T) {
	testCases := []struct {
		name         string
		envKey       string
		envValue     string
		defaultValue int
		expected     int
	}{
		{
			name:         "valid int env var",
			envKey:       "TEST_NOTIFY_PORT",
			envValue:     "50052",
			defaultValue: 50051,
			expected:     50052,
		},
		{
			name:         "env var not set",
			envKey:       "TEST_NOTIFY_PORT_NOTSET",
			envValue:     "",
			defaultValue: 50051,
			expected:     50051,
		},
		{
			name:         "invalid int env var",
			envKey:       "TEST_NOTIFY_PORT_INVALID",
			envValue:     "not_a_number",
			defaultValue: 50051,
			expected:     50051,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.envKey, tc.envValue)
				defer os.Unsetenv(tc.envKey)
			}

			result := GetEnvInt(tc.envKey, tc.defaultValue)
			if result != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, result)
			}
		})
	}
}

// TestGetEnvBool tests the GetEnvBool helper function
func TestGetEnvBool(t *testing.T) {
	testCases := []struct {
		name         string
		envKey       string
		envValue     string
		defaultValue bool
		expected     bool
	}{
		{
			name:         "true value",
			envKey:       "TEST_NOTIFY_TLS",
			envValue:     "true",
			defaultValue: false,
			expected:     true,
		},
		{
			name:         "false value",
			envKey:       "TEST_NOTIFY_TLS",
			envValue:     "false",
			defaultValue: true,
			expected:     false,
		},
		{
			name:         "1 as true",
			envKey:       "TEST_NOTIFY_TLS",
			envValue:     "1",
			defaultValue: false,
			expected:     true,
		},
		{
			name:         "0 as false",
			envKey:       "TEST_NOTIFY_TLS",
			envValue:     "0",
			defaultValue: true,
			expected:     false,
		},
		{
			name:         "env var not set",
			envKey:       "TEST_NOTIFY_TLS_NOTSET",
			envValue:     "",
			defaultValue: true,
			expected:     true,
		},
		{
			name:         "invalid bool env var",
			envKey:       "TEST_NOTIFY_TLS_INVALID",
			envValue:     "not_a_bool",
			defaultValue: false,
			expected:     false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.envKey, tc.envValue)
				defer os.Unsetenv(tc.envKey)
			}

			result := GetEnvBool(tc.envKey, tc.defaultValue)
			if result != tc.expected {
				t.Errorf("Expected %v, got %v", tc.expected, result)
			}
		})
	}
}

// TestGetEnvOrConfig tests the GetEnvOrConfig helper function
func TestGetEnvOrConfig(t *testing.T) {
	testCases := []struct {
		name         string
		envKey       string
		envValue     string
		configKey    string
		configValue  string
		defaultValue string
		expected     string
	}{
		{
			name:         "env var takes precedence",
			envKey:       "TEST_NOTIFY_PASSWORD",
			envValue:     "env_password",
			configKey:    "db_password",
			configValue:  "config_password",
			defaultValue: "default",
			expected:     "env_password",
		},
		{
			name:         "config file used when env not set",
			envKey:       "TEST_NOTIFY_PASSWORD_NOTSET",
			envValue:     "",
			configKey:    "db_password",
			configValue:  "config_password",
			defaultValue: "default",
			expected:     "config_password",
		},
		{
			name:         "default used when both not set",
			envKey:       "TEST_NOTIFY_PASSWORD_NOTSET",
			envValue:     "",
			configKey:    "nonexistent_key",
			configValue:  "",
			defaultValue: "default",
			expected:     "default",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Set env var if provided
			if tc.envValue != "" {
				os.Setenv(tc.envKey, tc.envValue)
				defer os.Unsetenv(tc.envKey)
			}

			// Create temp config file if config value provided
			if tc.configValue != "" {
				tmpDir := t.TempDir()
				configPath := filepath.Join(tmpDir, "test_config.yaml")
				configContent := tc.configKey + ": " + tc.configValue + "\n"
				if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
					t.Fatalf("Failed to write config file: %v", err)
				}
				os.Setenv("NOTIFY_CONFIG_FILE", configPath)
				defer os.Unsetenv("NOTIFY_CONFIG_FILE")
			}

			result := GetEnvOrConfig(tc.envKey, tc.configKey, tc.defaultValue)
			if result != tc.expected {
				t.Errorf("Expected %s, got %s", tc.expected, result)
			}
		})
	}
}

// TestGetEnvOrConfigWithInvalidYAML tests handling of malformed YAML
func TestGetEnvOrConfigWithInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")
	invalidContent := `invalid: yaml: content: [[[`

	if err := os.WriteFile(configPath, []byte(invalidContent), 0644); err != nil {
		t.Fatalf("Failed to create invalid config file: %v", err)
	}

	os.Setenv("NOTIFY_CONFIG_FILE", configPath)
	defer os.Unsetenv("NOTIFY_CONFIG_FILE")

	result := GetEnvOrConfig("TEST_KEY", "db_password", "default")
	if result != "default" {
		t.Errorf("Expected default value for invalid YAML, got %s", result)
	}
}

// TestGetEnvOrConfigNoConfigFile tests behavior when NOTIFY_CONFIG_FILE is not set
func TestGetEnvOrConfigNoConfigFile(t *testing.T) {
	os.Unsetenv("NOTIFY_CONFIG_FILE")

	result := GetEnvOrConfig("TEST_KEY", "db_password", "default")
	if result != "default" {
		t.Errorf("Expected 'default', got '%s'", result)
	}
}
