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

package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/snowflake"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/j50301m/notify-server/internal/broker"
	"github.com/j50301m/notify-server/internal/cache"
	"github.com/j50301m/notify-server/internal/enums"
	"github.com/j50301m/notify-server/internal/errs"
	"github.com/j50301m/notify-server/internal/identity"
	"github.com/j50301m/notify-server/internal/store"
	"github.com/j50301m/notify-server/internal/template"
	frontendnotify "github.com/j50301m/notify-server/proto/frontendnotify"
)

// systemSenderAccount is the sender shown on notifications triggered by
// system events rather than an admin.
const systemSenderAccount = "System"

// FrontendServer implements the end-user surface.
type FrontendServer struct {
	frontendnotify.UnimplementedFrontendNotifyServiceServer

	store     *store.Store
	broker    *broker.Client
	directory *cache.Directory
	identity  *identity.Client
	registry  *FrontendRegistry
	peers     *Peers
	node      *snowflake.Node
	logger    *slog.Logger
}

// NewFrontendServer wires the frontend surface.
func NewFrontendServer(
	st *store.Store,
	br *broker.Client,
	directory *cache.Directory,
	id *identity.Client,
	registry *FrontendRegistry,
	peers *Peers,
	node *snowflake.Node,
	logger *slog.Logger,
) *FrontendServer {
	return &FrontendServer{
		store:     st,
		broker:    br,
		directory: directory,
		identity:  id,
		registry:  registry,
		peers:     peers,
		node:      node,
		logger:    logger,
	}
}

// CreateConnection opens the user's in-app stream and records this pod in
// the user directory so workers on other pods can route to it. The stream
// runs until the client goes away, CloseConnection is called, or a newer
// stream replaces it.
func (s *FrontendServer) CreateConnection(req *frontendnotify.ConnectionRequest, stream frontendnotify.FrontendNotifyService_CreateConnectionServer) error {
	if req.GetUserId() == 0 {
		return errs.ToGRPC(fmt.Errorf("%w: user id is required", errs.ErrInvalidArgument))
	}
	ctx := stream.Context()
	userID := req.GetUserId()

	ch := s.registry.Connect(userID)
	if err := s.directory.Set(ctx, userID, s.peers.OwnAddr()); err != nil {
		// Local pushes still work; only cross-pod routing is degraded.
		s.logger.Warn("failed to register stream in directory",
			slog.Int64("user_id", userID), slog.Any("error", err))
	}
	s.logger.Info("frontend stream opened",
		slog.Int64("client_id", req.GetClientId()), slog.Int64("user_id", userID))

	defer func() {
		if s.registry.Disconnect(userID, ch) {
			if err := s.directory.Delete(context.WithoutCancel(ctx), userID); err != nil {
				s.logger.Warn("failed to remove stream from directory",
					slog.Int64("user_id", userID), slog.Any("error", err))
			}
		}
		s.logger.Info("frontend stream closed", slog.Int64("user_id", userID))
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case rcv, ok := <-ch:
			if !ok {
				// Replaced by a newer stream or closed by CloseConnection.
				return nil
			}
			if err := stream.Send(rcv); err != nil {
				return err
			}
		}
	}
}

// CloseConnection drops the user's stream and directory entry.
func (s *FrontendServer) CloseConnection(ctx context.Context, req *frontendnotify.ConnectionRequest) (*frontendnotify.Empty, error) {
	s.registry.DisconnectUser(req.GetUserId())
	if err := s.directory.Delete(ctx, req.GetUserId()); err != nil {
		return nil, errs.ToGRPC(err)
	}
	return &frontendnotify.Empty{}, nil
}

// SystemToFrontendUser enqueues one notification per active template of a
// system event. Delivery happens asynchronously in the single worker.
func (s *FrontendServer) SystemToFrontendUser(ctx context.Context, req *frontendnotify.SendRequest) (*frontendnotify.Empty, error) {
	event, err := eventFromFrontendProto(req.GetNotifyEvent())
	if err != nil {
		return nil, errs.ToGRPC(err)
	}

	eventRow, err := s.store.GetClientNotifyEvent(ctx, s.store.DB(), req.GetClientId(), int64(event))
	if err != nil {
		return nil, errs.ToGRPC(err)
	}
	if eventRow.Platform != enums.PlatformFrontend {
		return nil, errs.ToGRPC(fmt.Errorf("%w: event %s is not a frontend event", errs.ErrInvalidArgument, event))
	}

	profile, err := s.identity.GetUserProfile(ctx, req.GetClientId(), req.GetUserId())
	if err != nil {
		return nil, errs.ToGRPC(err)
	}

	templates, err := s.store.GetActiveTemplates(ctx, s.store.DB(), req.GetClientId(), int64(event), enums.LanguageJp)
	if err != nil {
		return nil, errs.ToGRPC(err)
	}
	if len(templates) == 0 {
		return nil, errs.ToGRPC(fmt.Errorf("%w: no active template for event %s", errs.ErrDataNotFound, event))
	}

	for _, t := range templates {
		model := &broker.SingleNotifyModel{
			ClientID:       req.GetClientId(),
			UserID:         req.GetUserId(),
			NotifyID:       s.node.Generate().Int64(),
			SenderID:       0,
			SenderAccount:  systemSenderAccount,
			NotifyType:     t.NotifyType,
			NotifyLevel:    enums.NotifyLevelSystem,
			Title:          t.Title,
			Content:        t.Content,
			ReceiveAddress: template.ReceiveAddress(t.NotifyType, profile),
			KeyMap:         req.GetKeyMap(),
			ClientEventID:  int64(event),
		}
		if err := s.broker.PublishSingle(ctx, model); err != nil {
			return nil, errs.ToGRPC(err)
		}
	}
	return &frontendnotify.Empty{}, nil
}

// SendMessageInApp pushes an already-materialized notification to the
// user's live stream, wherever it is held. An offline user is a no-op;
// the caller owns the record.
func (s *FrontendServer) SendMessageInApp(ctx context.Context, req *frontendnotify.SendMessageInAppRequest) (*frontendnotify.Empty, error) {
	if _, err := enums.NotifyLevelFromInt(req.GetNotifyLevel()); err != nil {
		return nil, errs.ToGRPC(err)
	}
	notify := &frontendnotify.Notify{
		NotifyId:     req.GetNotifyId(),
		NotifyLevel:  req.GetNotifyLevel(),
		Title:        req.GetTitle(),
		Content:      req.GetContent(),
		CreateAt:     time.Now().UnixMilli(),
		NotifyStatus: int32(enums.NotifyStatusUnread),
	}

	addr, found, err := s.directory.Get(ctx, req.GetUserId())
	if err != nil {
		return nil, errs.ToGRPC(err)
	}
	if !found {
		return &frontendnotify.Empty{}, nil
	}

	if addr == s.peers.OwnAddr() {
		if !s.registry.Push(req.GetUserId(), notify) {
			if err := s.directory.Delete(ctx, req.GetUserId()); err != nil {
				s.logger.Warn("failed to drop stale directory entry",
					slog.Int64("user_id", req.GetUserId()), slog.Any("error", err))
			}
		}
		return &frontendnotify.Empty{}, nil
	}

	err = s.peers.ForwardFrontend(ctx, addr, &frontendnotify.ForwardNotifyRequest{
		ClientId: req.GetClientId(),
		UserId:   req.GetUserId(),
		Notify:   notify,
	})
	if status.Code(err) == codes.NotFound {
		// The peer no longer holds the stream; its entry is stale.
		if derr := s.directory.Delete(ctx, req.GetUserId()); derr != nil {
			s.logger.Warn("failed to drop stale directory entry",
				slog.Int64("user_id", req.GetUserId()), slog.Any("error", derr))
		}
		return &frontendnotify.Empty{}, nil
	}
	if err != nil {
		return nil, errs.ToGRPC(err)
	}
	return &frontendnotify.Empty{}, nil
}

// GetNotifyRecords lists one page of the user's in-app records. Filtering
// by Delete is refused; soft-deleted records are invisible on this
// surface.
func (s *FrontendServer) GetNotifyRecords(ctx context.Context, req *frontendnotify.GetNotifyRecordRequest) (*frontendnotify.GetNotifyRecordResponse, error) {
	var filter store.RecordFilter
	if req.GetNotifyStatus() != 0 {
		status, err := enums.NotifyStatusFromInt(req.GetNotifyStatus())
		if err != nil {
			return nil, errs.ToGRPC(err)
		}
		if status == enums.NotifyStatusDelete {
			return nil, errs.ToGRPC(fmt.Errorf("%w: cannot filter by deleted status", errs.ErrInvalidArgument))
		}
		filter.NotifyStatus = status
	}
	if req.GetNotifyLevel() != 0 {
		level, err := enums.NotifyLevelFromInt(req.GetNotifyLevel())
		if err != nil {
			return nil, errs.ToGRPC(err)
		}
		filter.NotifyLevel = level
	}

	page := normalizePage(req.GetNowPage())
	records, total, err := s.store.ListUserNotifyRecords(ctx, s.store.DB(), req.GetClientId(), req.GetUserId(), filter, page)
	if err != nil {
		return nil, errs.ToGRPC(err)
	}
	unread, err := s.store.CountUnread(ctx, s.store.DB(), req.GetClientId(), req.GetUserId(), filter.NotifyLevel)
	if err != nil {
		return nil, errs.ToGRPC(err)
	}

	list := make([]*frontendnotify.Notify, 0, len(records))
	for _, r := range records {
		list = append(list, frontendNotifyFromRecord(r))
	}
	return &frontendnotify.GetNotifyRecordResponse{
		List:        list,
		TotalRows:   total,
		TotalPage:   totalPages(total, store.NotifyPageSize),
		NowPage:     page,
		UnreadCount: unread,
	}, nil
}

// UpdateNotifyRecords sets the read state of a batch of the user's own
// records and returns them as updated.
func (s *FrontendServer) UpdateNotifyRecords(ctx context.Context, req *frontendnotify.UpdateNotifyRecordRequest) (*frontendnotify.UpdateNotifyRecordResponse, error) {
	status, err := enums.NotifyStatusFromInt(req.GetNotifyStatus())
	if err != nil {
		return nil, errs.ToGRPC(err)
	}
	records, err := s.store.UpdateNotifyStatus(ctx, s.store.DB(), req.GetClientId(), req.GetUserId(), req.GetNotifyIds(), status)
	if err != nil {
		return nil, errs.ToGRPC(err)
	}

	list := make([]*frontendnotify.Notify, 0, len(records))
	for _, r := range records {
		list = append(list, frontendNotifyFromRecord(r))
	}
	return &frontendnotify.UpdateNotifyRecordResponse{List: list}, nil
}

// GetUnreadNotifyCount returns the user's unread in-app record count.
func (s *FrontendServer) GetUnreadNotifyCount(ctx context.Context, req *frontendnotify.GetUnreadNotifyCountRequest) (*frontendnotify.GetUnreadNotifyCountResponse, error) {
	count, err := s.store.CountUnread(ctx, s.store.DB(), req.GetClientId(), req.GetUserId(), 0)
	if err != nil {
		return nil, errs.ToGRPC(err)
	}
	return &frontendnotify.GetUnreadNotifyCountResponse{TotalRows: count}, nil
}

// AllRead marks the user's unread records read, optionally for one level.
func (s *FrontendServer) AllRead(ctx context.Context, req *frontendnotify.AllReadRequest) (*frontendnotify.Empty, error) {
	var level enums.NotifyLevel
	if req.GetNotifyLevel() != 0 {
		var err error
		level, err = enums.NotifyLevelFromInt(req.GetNotifyLevel())
		if err != nil {
			return nil, errs.ToGRPC(err)
		}
	}
	if err := s.store.MarkAllRead(ctx, s.store.DB(), req.GetClientId(), req.GetUserId(), level); err != nil {
		return nil, errs.ToGRPC(err)
	}
	return &frontendnotify.Empty{}, nil
}

// GetNotifyById loads one of the user's records.
func (s *FrontendServer) GetNotifyById(ctx context.Context, req *frontendnotify.GetNotifyByIdRequest) (*frontendnotify.Notify, error) {
	record, err := s.store.GetNotifyByID(ctx, s.store.DB(), req.GetClientId(), req.GetUserId(), req.GetNotifyId())
	if err != nil {
		return nil, errs.ToGRPC(err)
	}
	return frontendNotifyFromRecord(record), nil
}

// ForwardNotify pushes a notification onto the user's local stream. The
// worker on another pod calls this when the directory points here.
// NotFound tells the caller the stream is gone and its directory entry is
// stale.
func (s *FrontendServer) ForwardNotify(ctx context.Context, req *frontendnotify.ForwardNotifyRequest) (*frontendnotify.Empty, error) {
	if req.GetNotify() == nil {
		return nil, errs.ToGRPC(fmt.Errorf("%w: notify body is required", errs.ErrInvalidArgument))
	}
	if !s.registry.Push(req.GetUserId(), req.GetNotify()) {
		return nil, errs.ToGRPC(fmt.Errorf("%w: user %d is not connected here", errs.ErrDataNotFound, req.GetUserId()))
	}
	return &frontendnotify.Empty{}, nil
}
