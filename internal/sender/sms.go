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

// Phone numbers carry a 3-digit country prefix ahead of the national
// number; anything shorter cannot be split.
const minPhoneLen = 11

// SmsConfig holds ChuanXsms gateway configuration.
type SmsConfig struct {
	BaseURL   string
	AppKey    string
	AppSecret string
	AppCode   string
}

// SmsSender delivers one rendered template per call through the
// ChuanXsms batch endpoint.
type SmsSender struct {
	config SmsConfig
	client *http.Client
	logger *slog.Logger
}

// NewSmsSender builds an SmsSender. A nil httpClient falls back to a
// default with a 10s timeout.
func NewSmsSender(config SmsConfig, httpClient *http.Client, logger *slog.Logger) *SmsSender {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &SmsSender{
		config: config,
		client: httpClient,
		logger: logger,
	}
}

// splitPhone separates the 3-digit country prefix from the national
// number and strips one leading zero from the national part.
func splitPhone(phone string) (country, number string, err error) {
	if len(phone) < minPhoneLen {
		return "", "", fmt.Errorf("%w: %q", errs.ErrInvalidPhoneNumber, phone)
	}
	country = phone[:3]
	number = phone[3:]
	number = strings.TrimPrefix(number, "0")
	return country, number, nil
}

// Send issues one SMS through the batch endpoint. The gateway takes the
// country code and number as a single phone parameter.
func (s *SmsSender) Send(ctx context.Context, phone, content string) error {
	country, number, err := splitPhone(phone)
	if err != nil {
		return err
	}

	q := url.Values{}
	q.Set("appkey", s.config.AppKey)
	q.Set("appsecret", s.config.AppSecret)
	q.Set("appcode", s.config.AppCode)
	q.Set("phone", country+number)
	q.Set("msg", content)
	q.Set("extend", "")

	endpoint := fmt.Sprintf("%s/sms/batch/v2?%s", s.config.BaseURL, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build sms request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: sms request failed: %v", errs.ErrConnection, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: sms gateway returned %d: %s", errs.ErrStatus, resp.StatusCode, string(body))
	}

	s.logger.Debug("sms sent", slog.String("country", country))
	return nil
}

// SmsFlagPointers holds pointers to flag values for the SMS gateway
// configuration
type SmsFlagPointers struct {
	baseURL   *string
	appKey    *string
	appSecret *string
	appCode   *string
}

// RegisterSmsFlags registers SMS-related command-line flags
// Returns an SmsFlagPointers that should be converted to SmsConfig after
// flag.Parse() is called
func RegisterSmsFlags() *SmsFlagPointers {
	return &SmsFlagPointers{
		baseURL: flag.String("chuanx-base-url",
			utils.GetEnv("CHUANX_BASE_URL", "http://api.chuanxsms.com"),
			"ChuanXsms API base URL"),
		appKey: flag.String("chuanx-appkey",
			utils.GetEnvOrConfig("CHUANX_APPKEY", "chuanx_appkey", ""),
			"ChuanXsms app key"),
		appSecret: flag.String("chuanx-appsecret",
			utils.GetEnvOrConfig("CHUANX_APPSECRET", "chuanx_appsecret", ""),
			"ChuanXsms app secret"),
		appCode: flag.String("chuanx-appcode",
			utils.GetEnv("CHUANX_APPCODE", ""),
			"ChuanXsms app code"),
	}
}

// ToSmsConfig converts flag pointers to SmsConfig
// This should be called after flag.Parse()
func (p *SmsFlagPointers) ToSmsConfig() SmsConfig {
	return SmsConfig{
		BaseURL:   *p.baseURL,
		AppKey:    *p.appKey,
		AppSecret: *p.appSecret,
		AppCode:   *p.appCode,
	}
}
