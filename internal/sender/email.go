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

// Package sender implements the out-of-app delivery channels. Email goes
// through the Mailgun messages API, SMS through the ChuanXsms batch
// gateway. Both are driven by the single-notify worker after template
// materialization.
package sender

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/j50301m/notify-server/internal/errs"
	"github.com/j50301m/notify-server/utils"
)

// EmailConfig holds Mailgun delivery configuration.
type EmailConfig struct {
	BaseURL string
	Domain  string
	APIKey  string
	From    string
}

// EmailSender delivers one rendered template per call through Mailgun.
type EmailSender struct {
	config EmailConfig
	client *http.Client
	logger *slog.Logger
}

// NewEmailSender builds an EmailSender. A nil httpClient falls back to a
// default with a 10s timeout.
func NewEmailSender(config EmailConfig, httpClient *http.Client, logger *slog.Logger) *EmailSender {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &EmailSender{
		config: config,
		client: httpClient,
		logger: logger,
	}
}

// Send posts one message to the Mailgun messages endpoint. title becomes
// the subject and content the HTML body.
func (s *EmailSender) Send(ctx context.Context, to, title, content string) error {
	form := url.Values{}
	form.Set("from", s.config.From)
	form.Set("to", to)
	form.Set("subject", title)
	form.Set("html", content)

	endpoint := fmt.Sprintf("%s/v3/%s/messages", s.config.BaseURL, s.config.Domain)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build mailgun request: %w", err)
	}
	req.SetBasicAuth("api", s.config.APIKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: mailgun request failed: %v", errs.ErrConnection, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: mailgun returned %d: %s", errs.ErrStatus, resp.StatusCode, string(body))
	}

	s.logger.Debug("email sent", slog.String("to", to))
	return nil
}

// EmailFlagPointers holds pointers to flag values for Mailgun
// configuration
type EmailFlagPointers struct {
	baseURL *string
	domain  *string
	apiKey  *string
	from    *string
}

// RegisterEmailFlags registers Mailgun-related command-line flags
// Returns an EmailFlagPointers that should be converted to EmailConfig
// after flag.Parse() is called
func RegisterEmailFlags() *EmailFlagPointers {
	return &EmailFlagPointers{
		baseURL: flag.String("mailgun-base-url",
			utils.GetEnv("MAILGUN_BASE_URL", "https://api.mailgun.net"),
			"Mailgun API base URL"),
		domain: flag.String("mailgun-domain",
			utils.GetEnv("MAILGUN_DOMAIN", "kgs.tw"),
			"Mailgun sending domain"),
		apiKey: flag.String("mailgun-api-key",
			utils.GetEnvOrConfig("MAILGUN_API_KEY", "mailgun_api_key", ""),
			"Mailgun API key"),
		from: flag.String("mailgun-from",
			utils.GetEnv("MAILGUN_FROM", "<mailgun@kgs.tw>"),
			"Mailgun sender address"),
	}
}

// ToEmailConfig converts flag pointers to EmailConfig
// This should be called after flag.Parse()
func (p *EmailFlagPointers) ToEmailConfig() EmailConfig {
	return EmailConfig{
		BaseURL: *p.baseURL,
		Domain:  *p.domain,
		APIKey:  *p.apiKey,
		From:    *p.from,
	}
}
