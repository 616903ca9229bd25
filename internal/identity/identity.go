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

// Package identity wraps the two upstream identity services: the user
// service (profiles, account lookups) and the oauth service (frontend to
// backstage tenant mapping). Every delivery path resolves recipients and
// template placeholders through this package.
package identity

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/j50301m/notify-server/internal/errs"
	clientpb "github.com/j50301m/notify-server/proto/client"
	playerpb "github.com/j50301m/notify-server/proto/player"
	"github.com/j50301m/notify-server/utils"
)

// IdentityConfig holds the addresses of the user and oauth services.
type IdentityConfig struct {
	UserHost  string
	UserPort  int
	OauthHost string
	OauthPort int
}

// Client holds the long-lived connections to both identity services.
type Client struct {
	userConn  *grpc.ClientConn
	oauthConn *grpc.ClientConn

	player playerpb.PlayerClient
	oauth  clientpb.ClientClient
	logger *slog.Logger

	closeOnce sync.Once
}

// NewClient opens connections to the user and oauth services. Connections
// are lazy; a dead upstream surfaces on the first call.
func NewClient(config IdentityConfig, logger *slog.Logger) (*Client, error) {
	userConn, err := grpc.NewClient(
		fmt.Sprintf("%s:%d", config.UserHost, config.UserPort),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to connect user service: %v", errs.ErrConnection, err)
	}

	oauthConn, err := grpc.NewClient(
		fmt.Sprintf("%s:%d", config.OauthHost, config.OauthPort),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		userConn.Close()
		return nil, fmt.Errorf("%w: failed to connect oauth service: %v", errs.ErrConnection, err)
	}

	logger.Info("identity clients created",
		slog.String("user_addr", fmt.Sprintf("%s:%d", config.UserHost, config.UserPort)),
		slog.String("oauth_addr", fmt.Sprintf("%s:%d", config.OauthHost, config.OauthPort)),
	)

	return &Client{
		userConn:  userConn,
		oauthConn: oauthConn,
		player:    playerpb.NewPlayerClient(userConn),
		oauth:     clientpb.NewClientClient(oauthConn),
		logger:    logger,
	}, nil
}

// Profile is the subset of a user profile consumed by template
// materialization and the delivery channels.
type Profile struct {
	Account   string
	LastName  string
	FirstName string
	City      string
	Country   string
	Email     string
	Phone     string
}

// Account is one user id with its display account.
type Account struct {
	UserID  int64
	Account string
}

// Contact carries the per-channel receive addresses of one user.
type Contact struct {
	UserID  int64
	Account string
	Email   string
	Phone   string
}

// GetUserProfile fetches the profile of one user within a tenant.
func (c *Client) GetUserProfile(ctx context.Context, clientID, userID int64) (*Profile, error) {
	resp, err := c.player.GetUserProfile(ctx, &playerpb.GetUserProfileRequest{
		ClientId: clientID,
		UserId:   userID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get profile of user %d: %w", userID, err)
	}
	return &Profile{
		Account:   resp.GetAccount(),
		LastName:  resp.GetLastName(),
		FirstName: resp.GetFirstName(),
		City:      resp.GetCity(),
		Country:   resp.GetCountry(),
		Email:     resp.GetEmail(),
		Phone:     resp.GetPhone(),
	}, nil
}

// GetAccountsByClientID lists every account of a frontend tenant.
func (c *Client) GetAccountsByClientID(ctx context.Context, clientID int64) ([]Account, error) {
	resp, err := c.player.GetAccountByClientId(ctx, &playerpb.GetAccountByClientIdRequest{
		ClientId: clientID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts of client %d: %w", clientID, err)
	}
	return toAccounts(resp), nil
}

// GetAccountsByVipLevel lists the accounts of a tenant holding any of the
// given vip levels.
func (c *Client) GetAccountsByVipLevel(ctx context.Context, clientID int64, vipLevels []int64) ([]Account, error) {
	resp, err := c.player.GetAccountByVipLevel(ctx, &playerpb.GetAccountByVipLevelRequest{
		ClientId:  clientID,
		VipLevels: vipLevels,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts by vip level: %w", err)
	}
	return toAccounts(resp), nil
}

// GetAccountsByUserIDs resolves accounts for an explicit id list.
func (c *Client) GetAccountsByUserIDs(ctx context.Context, clientID int64, userIDs []int64) ([]Account, error) {
	resp, err := c.player.GetAccountByUserIds(ctx, &playerpb.GetAccountByUserIdsRequest{
		ClientId: clientID,
		UserIds:  userIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts by user ids: %w", err)
	}
	return toAccounts(resp), nil
}

// GetAccountByUserID resolves one user's account.
func (c *Client) GetAccountByUserID(ctx context.Context, clientID, userID int64) (string, error) {
	accounts, err := c.GetAccountsByUserIDs(ctx, clientID, []int64{userID})
	if err != nil {
		return "", err
	}
	for _, a := range accounts {
		if a.UserID == userID {
			return a.Account, nil
		}
	}
	return "", fmt.Errorf("%w: account of user %d", errs.ErrDataNotFound, userID)
}

// GetEmailAndPhoneByUserIDs resolves the receive addresses of a recipient
// list, keyed by user id.
func (c *Client) GetEmailAndPhoneByUserIDs(ctx context.Context, clientID int64, userIDs []int64) (map[int64]Contact, error) {
	resp, err := c.player.GetEmailAndPhoneByUserIds(ctx, &playerpb.GetEmailAndPhoneByUserIdsRequest{
		ClientId: clientID,
		UserIds:  userIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts by user ids: %w", err)
	}
	contacts := make(map[int64]Contact, len(resp.GetUserContacts()))
	for _, uc := range resp.GetUserContacts() {
		contacts[uc.GetUserId()] = Contact{
			UserID:  uc.GetUserId(),
			Account: uc.GetAccount(),
			Email:   uc.GetEmail(),
			Phone:   uc.GetPhone(),
		}
	}
	return contacts, nil
}

// GetBackstageClient maps a frontend tenant to its backstage tenant.
func (c *Client) GetBackstageClient(ctx context.Context, frontendClientID int64) (int64, error) {
	resp, err := c.oauth.GetBackstageClient(ctx, &clientpb.FrontendClient{
		FrontendClientId: frontendClientID,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get backstage client of %d: %w", frontendClientID, err)
	}
	return resp.GetBackstageClientId(), nil
}

// GetFrontendClient maps a backstage tenant to its frontend tenant.
func (c *Client) GetFrontendClient(ctx context.Context, backstageClientID int64) (int64, error) {
	resp, err := c.oauth.GetFrontendClient(ctx, &clientpb.BackstageClient{
		BackstageClientId: backstageClientID,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get frontend client of %d: %w", backstageClientID, err)
	}
	return resp.GetFrontendClientId(), nil
}

func toAccounts(list *playerpb.UserAccountList) []Account {
	accounts := make([]Account, 0, len(list.GetUserAccounts()))
	for _, ua := range list.GetUserAccounts() {
		accounts = append(accounts, Account{
			UserID:  ua.GetUserId(),
			Account: ua.GetAccount(),
		})
	}
	return accounts
}

// Close tears down both connections. Safe to call multiple times.
func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.logger.Info("closing identity clients")
		if cerr := c.userConn.Close(); cerr != nil {
			err = cerr
		}
		if cerr := c.oauthConn.Close(); cerr != nil && err == nil {
			err = cerr
		}
	})
	return err
}

// IdentityFlagPointers holds pointers to flag values for the identity
// service addresses
type IdentityFlagPointers struct {
	userHost  *string
	userPort  *int
	oauthHost *string
	oauthPort *int
}

// RegisterIdentityFlags registers identity-related command-line flags
// Returns an IdentityFlagPointers that should be converted to
// IdentityConfig after flag.Parse() is called
func RegisterIdentityFlags() *IdentityFlagPointers {
	return &IdentityFlagPointers{
		userHost: flag.String("user-server-host",
			utils.GetEnv("USER_SERVER_HOST", "localhost"),
			"User service host"),
		userPort: flag.Int("user-server-port",
			utils.GetEnvInt("USER_SERVER_PORT", 50052),
			"User service port"),
		oauthHost: flag.String("oauth-server-host",
			utils.GetEnv("OAUTH_SERVER_HOST", "localhost"),
			"OAuth service host"),
		oauthPort: flag.Int("oauth-server-port",
			utils.GetEnvInt("OAUTH_SERVER_PORT", 50053),
			"OAuth service port"),
	}
}

// ToIdentityConfig converts flag pointers to IdentityConfig
// This should be called after flag.Parse()
func (p *IdentityFlagPointers) ToIdentityConfig() IdentityConfig {
	return IdentityConfig{
		UserHost:  *p.userHost,
		UserPort:  *p.userPort,
		OauthHost: *p.oauthHost,
		OauthPort: *p.oauthPort,
	}
}
