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
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"golang.org/x/sync/errgroup"

	"github.com/j50301m/notify-server/internal/broker"
	"github.com/j50301m/notify-server/internal/enums"
	"github.com/j50301m/notify-server/internal/errs"
	"github.com/j50301m/notify-server/internal/identity"
	"github.com/j50301m/notify-server/internal/store"
	"github.com/j50301m/notify-server/internal/template"
	backstagenotify "github.com/j50301m/notify-server/proto/backstagenotify"
)

// BackstageServer implements the admin surface.
type BackstageServer struct {
	backstagenotify.UnimplementedBackStageNotifyServiceServer

	store    *store.Store
	broker   *broker.Client
	identity *identity.Client
	registry *BackstageRegistry
	peers    *Peers
	node     *snowflake.Node
	logger   *slog.Logger
}

// NewBackstageServer wires the backstage surface.
func NewBackstageServer(
	st *store.Store,
	br *broker.Client,
	id *identity.Client,
	registry *BackstageRegistry,
	peers *Peers,
	node *snowflake.Node,
	logger *slog.Logger,
) *BackstageServer {
	return &BackstageServer{
		store:    st,
		broker:   br,
		identity: id,
		registry: registry,
		peers:    peers,
		node:     node,
		logger:   logger,
	}
}

// CreateConnection opens an admin's in-app stream. Backstage streams are
// not registered in the user directory: broadcasts reach every pod
// through ForwardNotify instead of point-to-point routing.
func (s *BackstageServer) CreateConnection(req *backstagenotify.ConnectionRequest, stream backstagenotify.BackStageNotifyService_CreateConnectionServer) error {
	if req.GetUserId() == 0 {
		return errs.ToGRPC(fmt.Errorf("%w: user id is required", errs.ErrInvalidArgument))
	}
	ctx := stream.Context()
	userID := req.GetUserId()

	ch := s.registry.Connect(req.GetClientId(), userID, req.GetUserAccount(), req.GetRoleIds())
	s.logger.Info("backstage stream opened",
		slog.Int64("client_id", req.GetClientId()), slog.Int64("user_id", userID))
	defer func() {
		s.registry.Disconnect(userID, ch)
		s.logger.Info("backstage stream closed", slog.Int64("user_id", userID))
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case rcv, ok := <-ch:
			if !ok {
				return nil
			}
			if err := stream.Send(rcv); err != nil {
				return err
			}
		}
	}
}

// CloseConnection drops the admin's stream.
func (s *BackstageServer) CloseConnection(ctx context.Context, req *backstagenotify.CloseRequest) (*backstagenotify.Empty, error) {
	s.registry.DisconnectUser(req.GetUserId())
	return &backstagenotify.Empty{}, nil
}

// SystemToBackstageUser broadcasts a backstage system event to the admins
// of the tenant paired with the initiating frontend tenant. The local
// streams and every sibling pod are handled concurrently.
func (s *BackstageServer) SystemToBackstageUser(ctx context.Context, req *backstagenotify.SendRequest) (*backstagenotify.Empty, error) {
	event, err := eventFromBackstageProto(req.GetNotifyEvent())
	if err != nil {
		return nil, errs.ToGRPC(err)
	}

	backstageClientID, err := s.identity.GetBackstageClient(ctx, req.GetInitiatorClientId())
	if err != nil {
		return nil, errs.ToGRPC(err)
	}

	eventRow, err := s.store.GetClientNotifyEvent(ctx, s.store.DB(), backstageClientID, int64(event))
	if err != nil {
		return nil, errs.ToGRPC(err)
	}
	if eventRow.Platform != enums.PlatformBackstage {
		return nil, errs.ToGRPC(fmt.Errorf("%w: event %s is not a backstage event", errs.ErrInvalidArgument, event))
	}

	// The initiator is the frontend user whose action the admins review;
	// their profile fills the template placeholders.
	profile, err := s.identity.GetUserProfile(ctx, req.GetInitiatorClientId(), req.GetInitiatorUserId())
	if err != nil {
		return nil, errs.ToGRPC(err)
	}

	tpl, err := s.store.GetTemplate(ctx, s.store.DB(), backstageClientID, int64(event), enums.NotifyTypeInApp, enums.LanguageJp)
	if err != nil {
		return nil, errs.ToGRPC(err)
	}
	title, content := template.Materialize(tpl.Title, tpl.Content, profile, req.GetKeyMap())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.handleBroadcast(gctx, backstageClientID, req.GetRoleIds(), int64(event), title, content)
	})
	g.Go(func() error {
		return s.peers.ForwardBackstage(gctx, &backstagenotify.ForwardNotifyRequest{
			ClientId:            backstageClientID,
			RoleIds:             req.GetRoleIds(),
			ClientNotifyEventId: int64(event),
			Title:               title,
			Content:             content,
		})
	})
	if err := g.Wait(); err != nil {
		return nil, errs.ToGRPC(err)
	}
	return &backstagenotify.Empty{}, nil
}

// handleBroadcast pushes a broadcast onto the local streams and persists
// one record per delivered admin. Sends happen first; the records commit
// in one transaction after the loop.
func (s *BackstageServer) handleBroadcast(ctx context.Context, clientID int64, roleIDs []int64, eventID int64, title, content string) error {
	delivered := s.registry.Broadcast(clientID, roleIDs, func(userID int64) *backstagenotify.Notify {
		return &backstagenotify.Notify{
			NotifyId:     s.node.Generate().Int64(),
			NotifyLevel:  int32(enums.NotifyLevelSystem),
			Title:        title,
			Content:      content,
			CreateAt:     time.Now().UnixMilli(),
			NotifyStatus: int32(enums.NotifyStatusUnread),
		}
	})
	if len(delivered) == 0 {
		return nil
	}

	tx, err := s.store.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, d := range delivered {
		record := &store.NotifyRecord{
			ID:                  d.Notify.GetNotifyId(),
			ClientID:            clientID,
			UserID:              d.UserID,
			UserAccount:         d.UserAccount,
			ClientNotifyEventID: eventID,
			SenderID:            0,
			SenderAccount:       systemSenderAccount,
			NotifyType:          enums.NotifyTypeInApp,
			NotifyLevel:         enums.NotifyLevelSystem,
			Title:               title,
			Content:             content,
		}
		if err := s.store.InsertNotifyRecord(ctx, tx, record); err != nil {
			return err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: failed to commit broadcast records: %v", errs.ErrInternal, err)
	}
	s.logger.Info("backstage broadcast delivered",
		slog.Int64("client_id", clientID), slog.Int("receivers", len(delivered)))
	return nil
}

// ForwardNotify repeats a broadcast on this pod's local streams. No
// re-forwarding happens here; the originating pod already fanned out.
func (s *BackstageServer) ForwardNotify(ctx context.Context, req *backstagenotify.ForwardNotifyRequest) (*backstagenotify.Empty, error) {
	if req.GetTitle() == "" && req.GetContent() == "" {
		return nil, errs.ToGRPC(fmt.Errorf("%w: notify body is required", errs.ErrInvalidArgument))
	}
	if err := s.handleBroadcast(ctx, req.GetClientId(), req.GetRoleIds(), req.GetClientNotifyEventId(), req.GetTitle(), req.GetContent()); err != nil {
		return nil, errs.ToGRPC(err)
	}
	return &backstagenotify.Empty{}, nil
}

// GetNotifyRecords lists one page of the admin's own in-app records.
func (s *BackstageServer) GetNotifyRecords(ctx context.Context, req *backstagenotify.GetNotifyRecordRequest) (*backstagenotify.GetNotifyRecordResponse, error) {
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

	list := make([]*backstagenotify.Notify, 0, len(records))
	for _, r := range records {
		list = append(list, backstageNotifyFromRecord(r))
	}
	return &backstagenotify.GetNotifyRecordResponse{
		List:        list,
		TotalRows:   total,
		TotalPage:   totalPages(total, store.NotifyPageSize),
		NowPage:     page,
		UnreadCount: unread,
	}, nil
}

// UpdateNotifyRecords sets the read state of a batch of the admin's own
// records.
func (s *BackstageServer) UpdateNotifyRecords(ctx context.Context, req *backstagenotify.UpdateNotifyRecordRequest) (*backstagenotify.UpdateNotifyRecordResponse, error) {
	status, err := enums.NotifyStatusFromInt(req.GetNotifyStatus())
	if err != nil {
		return nil, errs.ToGRPC(err)
	}
	records, err := s.store.UpdateNotifyStatus(ctx, s.store.DB(), req.GetClientId(), req.GetUserId(), req.GetNotifyIds(), status)
	if err != nil {
		return nil, errs.ToGRPC(err)
	}

	list := make([]*backstagenotify.Notify, 0, len(records))
	for _, r := range records {
		list = append(list, backstageNotifyFromRecord(r))
	}
	return &backstagenotify.UpdateNotifyRecordResponse{List: list}, nil
}

// GetUnreadNotifyCount returns the admin's unread record count.
func (s *BackstageServer) GetUnreadNotifyCount(ctx context.Context, req *backstagenotify.GetUnreadNotifyCountRequest) (*backstagenotify.GetUnreadNotifyCountResponse, error) {
	count, err := s.store.CountUnread(ctx, s.store.DB(), req.GetClientId(), req.GetUserId(), 0)
	if err != nil {
		return nil, errs.ToGRPC(err)
	}
	return &backstagenotify.GetUnreadNotifyCountResponse{TotalRows: count}, nil
}

// AllRead marks the admin's unread records read.
func (s *BackstageServer) AllRead(ctx context.Context, req *backstagenotify.AllReadRequest) (*backstagenotify.Empty, error) {
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
	return &backstagenotify.Empty{}, nil
}

// GetNotifyById loads one of the admin's own records.
func (s *BackstageServer) GetNotifyById(ctx context.Context, req *backstagenotify.GetNotifyByIdRequest) (*backstagenotify.Notify, error) {
	record, err := s.store.GetNotifyByID(ctx, s.store.DB(), req.GetClientId(), req.GetUserId(), req.GetNotifyId())
	if err != nil {
		return nil, errs.ToGRPC(err)
	}
	return backstageNotifyFromRecord(record), nil
}

// GetUserNotifyRecords searches the record history of the paired frontend
// tenant's users.
func (s *BackstageServer) GetUserNotifyRecords(ctx context.Context, req *backstagenotify.GetUserNotifyRecordRequest) (*backstagenotify.GetUserNotifyRecordResponse, error) {
	frontendClientID, err := s.identity.GetFrontendClient(ctx, req.GetClientId())
	if err != nil {
		return nil, errs.ToGRPC(err)
	}

	statuses, err := notifyStatusesFromInts(req.GetNotifyStatus())
	if err != nil {
		return nil, errs.ToGRPC(err)
	}
	types, err := notifyTypesFromInts(req.GetNotifyType())
	if err != nil {
		return nil, errs.ToGRPC(err)
	}
	levels, err := notifyLevelsFromInts(req.GetNotifyLevel())
	if err != nil {
		return nil, errs.ToGRPC(err)
	}
	filter := store.AdminRecordFilter{
		Title:           req.GetTitle(),
		IsFuzzy:         req.GetIsFuzzy(),
		ReceiverAccount: req.GetReceiverAccount(),
		SenderAccount:   req.GetSenderAccount(),
		NotifyStatus:    statuses,
		NotifyType:      types,
		NotifyLevel:     levels,
		StartAt:         timeFromMillis(req.GetStartAt()),
		EndAt:           timeFromMillis(req.GetEndAt()),
	}

	page := normalizePage(req.GetNowPage())
	pageSize := req.GetPageSize()
	records, total, err := s.store.SearchNotifyRecords(ctx, s.store.DB(), frontendClientID, filter, pageSize, page)
	if err != nil {
		return nil, errs.ToGRPC(err)
	}

	list := make([]*backstagenotify.UserNotifyRecord, 0, len(records))
	for _, r := range records {
		list = append(list, userNotifyRecordFromRecord(r))
	}
	return &backstagenotify.GetUserNotifyRecordResponse{
		List:      list,
		TotalRows: total,
		TotalPage: totalPages(total, pageSize),
		NowPage:   page,
	}, nil
}

// BackstageSendToUser starts a broadcast task to frontend users: it
// resolves the recipients, records the task, optionally saves the
// templates as a reusable event, and enqueues one batch message the batch
// worker expands.
func (s *BackstageServer) BackstageSendToUser(ctx context.Context, req *backstagenotify.BackstageSendToUserRequest) (*backstagenotify.Empty, error) {
	level, err := enums.NotifyLevelFromInt(req.GetNotifyLevel())
	if err != nil {
		return nil, errs.ToGRPC(err)
	}
	templates, err := dedupeTemplates(req.GetTemplates(), level)
	if err != nil {
		return nil, errs.ToGRPC(err)
	}
	if len(templates) == 0 {
		return nil, errs.ToGRPC(fmt.Errorf("%w: at least one template is required", errs.ErrInvalidArgument))
	}

	frontendClientID, err := s.identity.GetFrontendClient(ctx, req.GetClientId())
	if err != nil {
		return nil, errs.ToGRPC(err)
	}
	senderAccount, err := s.identity.GetAccountByUserID(ctx, req.GetClientId(), req.GetSenderId())
	if err != nil {
		return nil, errs.ToGRPC(err)
	}

	var receivers []identity.Account
	switch {
	case req.GetIsAll():
		receivers, err = s.identity.GetAccountsByClientID(ctx, frontendClientID)
	case len(req.GetReceiverIds()) > 0:
		receivers, err = s.identity.GetAccountsByUserIDs(ctx, frontendClientID, req.GetReceiverIds())
	case len(req.GetVipLevels()) > 0:
		receivers, err = s.identity.GetAccountsByVipLevel(ctx, frontendClientID, req.GetVipLevels())
	default:
		return nil, errs.ToGRPC(fmt.Errorf("%w: one of is_all, receiver_ids or vip_levels is required", errs.ErrInvalidArgument))
	}
	if err != nil {
		return nil, errs.ToGRPC(err)
	}

	receiverIDs := make([]int64, 0, len(receivers))
	receiverAccounts := make([]string, 0, len(receivers))
	for _, r := range receivers {
		receiverIDs = append(receiverIDs, r.UserID)
		receiverAccounts = append(receiverAccounts, r.Account)
	}

	var senderIP *string
	if ip := req.GetSenderIp(); ip != "" {
		senderIP = &ip
	}

	tx, err := s.store.Begin(ctx)
	if err != nil {
		return nil, errs.ToGRPC(err)
	}
	defer tx.Rollback(ctx)

	clientEventID := req.GetClientEventId()
	if saveEventRequested(req) {
		clientEventID = s.node.Generate().Int64()
		event := newSavedEvent(req, clientEventID, frontendClientID, senderAccount)
		if err := s.store.CreateClientNotifyEvent(ctx, tx, event); err != nil {
			return nil, errs.ToGRPC(err)
		}
		for _, t := range templates {
			if err := s.store.CreateClientNotifyTemplate(ctx, tx, &store.ClientNotifyTemplate{
				ClientID:          frontendClientID,
				ClientNotifyEvent: clientEventID,
				LanguageID:        enums.LanguageJp,
				NotifyType:        t.NotifyType,
				Title:             t.Title,
				Content:           t.Content,
			}); err != nil {
				return nil, errs.ToGRPC(err)
			}
		}
	}

	task := &store.BackstageSendTask{
		ID:              s.node.Generate().Int64(),
		ClientID:        req.GetClientId(),
		ClientEventID:   clientEventID,
		SenderID:        req.GetSenderId(),
		SenderAccount:   senderAccount,
		SenderIP:        senderIP,
		ReceiverCount:   int32(len(receivers)),
		ReceiverAccount: receiverAccounts,
		ReceiverID:      receiverIDs,
		TaskName:        taskName(templates),
		NotifyLevel:     level,
	}
	details := make([]*store.BackstageSendTaskDetail, 0, len(templates))
	for _, t := range templates {
		// Only fully filled templates are worth a detail row.
		if t.Title == "" || t.Content == "" {
			continue
		}
		details = append(details, &store.BackstageSendTaskDetail{
			ID:          s.node.Generate().Int64(),
			NotifyLevel: level,
			NotifyType:  t.NotifyType,
			Title:       t.Title,
			Content:     t.Content,
		})
	}
	if err := s.store.CreateBackstageSendTask(ctx, tx, task, details); err != nil {
		return nil, errs.ToGRPC(err)
	}

	if err := s.broker.PublishBatch(ctx, &broker.BatchNotifyModel{
		TaskID:           task.ID,
		FrontendClientID: frontendClientID,
		ClientID:         req.GetClientId(),
		ClientEventID:    clientEventID,
		SenderID:         req.GetSenderId(),
		SenderAccount:    senderAccount,
		SenderIP:         senderIP,
		NotifyLevel:      int32(level),
		ReceiverIDs:      receiverIDs,
		Templates:        templates,
	}); err != nil {
		return nil, errs.ToGRPC(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.ToGRPC(fmt.Errorf("%w: failed to commit send task: %v", errs.ErrInternal, err))
	}
	s.logger.Info("backstage send task created",
		slog.Int64("task_id", task.ID), slog.Int("receivers", len(receivers)))
	return &backstagenotify.Empty{}, nil
}

// saveEventRequested reports whether this send also stores a reusable
// event. An unnamed event is not worth saving.
func saveEventRequested(req *backstagenotify.BackstageSendToUserRequest) bool {
	return req.GetIsSaveAsEvent() && req.GetClientEventName() != ""
}

// newSavedEvent builds the event record a broadcast is saved as. The
// event belongs to the frontend tenant the broadcast targets, and is
// reusable over the in-app and email channels regardless of which
// channels this send filled in.
func newSavedEvent(req *backstagenotify.BackstageSendToUserRequest, eventID, frontendClientID int64, editorAccount string) *store.ClientNotifyEvent {
	return &store.ClientNotifyEvent{
		ID:            eventID,
		ClientID:      frontendClientID,
		Platform:      enums.PlatformFrontend,
		Name:          req.GetClientEventName(),
		Memo:          req.GetClientEventMemo(),
		NotifyTypes:   []enums.NotifyType{enums.NotifyTypeInApp, enums.NotifyTypeEmail},
		EditorAccount: editorAccount,
	}
}

// dedupeTemplates validates the wire templates and keeps the first one
// per channel.
func dedupeTemplates(in []*backstagenotify.Template, level enums.NotifyLevel) ([]broker.TemplateModel, error) {
	seen := make(map[enums.NotifyType]bool, len(in))
	out := make([]broker.TemplateModel, 0, len(in))
	for _, t := range in {
		notifyType, err := enums.NotifyTypeFromInt(t.GetNotifyType())
		if err != nil {
			return nil, err
		}
		if seen[notifyType] {
			continue
		}
		seen[notifyType] = true
		out = append(out, broker.TemplateModel{
			NotifyType:  notifyType,
			NotifyLevel: level,
			Title:       t.GetTitle(),
			Content:     t.GetContent(),
		})
	}
	return out, nil
}

// taskName concatenates the template titles; each contributes its title
// plus a trailing space.
func taskName(templates []broker.TemplateModel) string {
	var b strings.Builder
	for _, t := range templates {
		b.WriteString(t.Title)
		b.WriteString(" ")
	}
	return b.String()
}

// GetClientEventSummary lists the frontend-targeted events of the tenant
// for the broadcast picker.
func (s *BackstageServer) GetClientEventSummary(ctx context.Context, req *backstagenotify.GetClientEventSummaryRequest) (*backstagenotify.ClientEventSummaryList, error) {
	var isSystem *bool
	if v := req.GetIsSystem(); v != nil {
		value := v.GetValue()
		isSystem = &value
	}
	summaries, err := s.store.ListEventSummaries(ctx, s.store.DB(), req.GetClientId(), enums.PlatformFrontend, isSystem)
	if err != nil {
		return nil, errs.ToGRPC(err)
	}

	list := make([]*backstagenotify.ClientEventSummary, 0, len(summaries))
	for _, sum := range summaries {
		list = append(list, &backstagenotify.ClientEventSummary{
			ClientEventId: sum.ID,
			ClientId:      sum.ClientID,
			EventName:     sum.Name,
		})
	}
	return &backstagenotify.ClientEventSummaryList{List: list}, nil
}

// GetClientTemplates returns one event's templates with the placeholder
// keys a caller may fill: the fixed profile keys plus the event's own.
func (s *BackstageServer) GetClientTemplates(ctx context.Context, req *backstagenotify.GetClientTemplatesRequest) (*backstagenotify.ClientTemplateList, error) {
	templates, err := s.store.ListEventTemplatesByLanguage(ctx, s.store.DB(), req.GetClientId(), req.GetClientEventId(), enums.LanguageJp)
	if err != nil {
		return nil, errs.ToGRPC(err)
	}

	list := make([]*backstagenotify.TemplateWitKeyList, 0, len(templates))
	for _, t := range templates {
		list = append(list, &backstagenotify.TemplateWitKeyList{
			NotifyType: int32(t.NotifyType),
			Title:      t.Title,
			Content:    t.Content,
			Keys:       append(enums.CommonKeys(), t.KeyList...),
		})
	}
	return &backstagenotify.ClientTemplateList{List: list}, nil
}

// GetNotifyTaskList searches the tenant's broadcast tasks.
func (s *BackstageServer) GetNotifyTaskList(ctx context.Context, req *backstagenotify.GetNotifyTaskListRequest) (*backstagenotify.NotifyTaskList, error) {
	filter := store.TaskFilter{
		TaskName:      req.GetTaskName(),
		IsFuzzy:       req.GetIsFuzzy(),
		SenderAccount: req.GetSenderAccount(),
		CreateAtStart: timeFromMillis(req.GetStartAt()),
		CreateAtEnd:   timeFromMillis(req.GetEndAt()),
	}

	page := normalizePage(req.GetNowPage())
	pageSize := req.GetPageSize()
	tasks, total, err := s.store.ListBackstageSendTasks(ctx, s.store.DB(), req.GetClientId(), filter, pageSize, page)
	if err != nil {
		return nil, errs.ToGRPC(err)
	}

	list := make([]*backstagenotify.NotifyTask, 0, len(tasks))
	for _, t := range tasks {
		list = append(list, notifyTaskFromStore(t))
	}
	return &backstagenotify.NotifyTaskList{
		List:      list,
		TotalRows: total,
		TotalPage: totalPages(total, pageSize),
		NowPage:   page,
	}, nil
}

// GetNotifyTaskDetails returns the templates a task shipped.
func (s *BackstageServer) GetNotifyTaskDetails(ctx context.Context, req *backstagenotify.GetNotifyTaskDetailsRequest) (*backstagenotify.NotifyTaskDetailList, error) {
	details, err := s.store.ListTaskDetails(ctx, s.store.DB(), req.GetTaskId())
	if err != nil {
		return nil, errs.ToGRPC(err)
	}

	list := make([]*backstagenotify.NotifyTaskDetail, 0, len(details))
	for _, d := range details {
		list = append(list, &backstagenotify.NotifyTaskDetail{
			NotifyType: int32(d.NotifyType),
			Title:      d.Title,
			Content:    d.Content,
		})
	}
	return &backstagenotify.NotifyTaskDetailList{List: list}, nil
}

// GetClientEvent searches the tenant's events.
func (s *BackstageServer) GetClientEvent(ctx context.Context, req *backstagenotify.GetClientEventRequest) (*backstagenotify.ClientEventList, error) {
	types, err := notifyTypesFromInts(req.GetNotifyTypes())
	if err != nil {
		return nil, errs.ToGRPC(err)
	}
	var platform enums.Platform
	if req.GetPlatform() != 0 {
		platform, err = enums.PlatformFromInt(req.GetPlatform())
		if err != nil {
			return nil, errs.ToGRPC(err)
		}
	}
	var isSystem *bool
	if v := req.GetIsSystem(); v != nil {
		value := v.GetValue()
		isSystem = &value
	}
	filter := store.EventFilter{
		Name:          req.GetEventName(),
		IsFuzzy:       req.GetIsFuzzy(),
		EditorAccount: req.GetAccount(),
		Platform:      platform,
		IsSystemEvent: isSystem,
		NotifyTypes:   types,
		UpdateAtStart: timeFromMillis(req.GetStartAt()),
		UpdateAtEnd:   timeFromMillis(req.GetEndAt()),
	}

	page := normalizePage(req.GetNowPage())
	pageSize := req.GetPageSize()
	events, total, err := s.store.ListClientNotifyEvents(ctx, s.store.DB(), req.GetClientId(), filter, pageSize, page)
	if err != nil {
		return nil, errs.ToGRPC(err)
	}

	list := make([]*backstagenotify.ClientEvent, 0, len(events))
	for _, e := range events {
		list = append(list, clientEventFromStore(e))
	}
	return &backstagenotify.ClientEventList{
		List:      list,
		TotalRows: total,
		TotalPage: totalPages(total, pageSize),
		NowPage:   page,
	}, nil
}

// UpdateClientEvent rewrites an event's mutable fields and the bodies of
// its templates. System events keep their name.
func (s *BackstageServer) UpdateClientEvent(ctx context.Context, req *backstagenotify.UpdateClientEventRequest) (*backstagenotify.Empty, error) {
	notifyTypes, err := notifyTypesFromInts(req.GetNotifyTypes())
	if err != nil {
		return nil, errs.ToGRPC(err)
	}
	editorAccount, err := s.identity.GetAccountByUserID(ctx, req.GetClientId(), req.GetUserId())
	if err != nil {
		return nil, errs.ToGRPC(err)
	}

	tx, err := s.store.Begin(ctx)
	if err != nil {
		return nil, errs.ToGRPC(err)
	}
	defer tx.Rollback(ctx)

	event, err := s.store.GetClientNotifyEvent(ctx, tx, req.GetClientId(), req.GetClientEventId())
	if err != nil {
		return nil, errs.ToGRPC(err)
	}
	event.Name = req.GetEventName()
	event.Memo = req.GetMemo()
	event.NotifyTypes = notifyTypes
	event.EditorAccount = editorAccount
	if err := s.store.UpdateClientNotifyEvent(ctx, tx, event); err != nil {
		return nil, errs.ToGRPC(err)
	}

	for _, t := range req.GetTemplates() {
		notifyType, err := enums.NotifyTypeFromInt(t.GetNotifyType())
		if err != nil {
			return nil, errs.ToGRPC(err)
		}
		if err := s.store.UpdateEventTemplateBodies(ctx, tx, req.GetClientId(), req.GetClientEventId(), notifyType, t.GetTitle(), t.GetContent()); err != nil {
			return nil, errs.ToGRPC(err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.ToGRPC(fmt.Errorf("%w: failed to commit event update: %v", errs.ErrInternal, err))
	}
	return &backstagenotify.Empty{}, nil
}

// DeleteClientEvent removes a custom event and its templates.
func (s *BackstageServer) DeleteClientEvent(ctx context.Context, req *backstagenotify.DeleteClientEventRequest) (*backstagenotify.Empty, error) {
	tx, err := s.store.Begin(ctx)
	if err != nil {
		return nil, errs.ToGRPC(err)
	}
	defer tx.Rollback(ctx)

	if err := s.store.DeleteClientNotifyEvent(ctx, tx, req.GetClientId(), req.GetClientEventId()); err != nil {
		return nil, errs.ToGRPC(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, errs.ToGRPC(fmt.Errorf("%w: failed to commit event delete: %v", errs.ErrInternal, err))
	}
	return &backstagenotify.Empty{}, nil
}

// CreateClientEvent registers a custom event with its templates.
func (s *BackstageServer) CreateClientEvent(ctx context.Context, req *backstagenotify.CreateClientEventRequest) (*backstagenotify.Empty, error) {
	if req.GetEventName() == "" {
		return nil, errs.ToGRPC(fmt.Errorf("%w: event name is required", errs.ErrInvalidArgument))
	}
	templates, err := dedupeTemplates(req.GetTemplates(), enums.NotifyLevelInfo)
	if err != nil {
		return nil, errs.ToGRPC(err)
	}
	if len(templates) == 0 {
		return nil, errs.ToGRPC(fmt.Errorf("%w: at least one template is required", errs.ErrInvalidArgument))
	}
	editorAccount, err := s.identity.GetAccountByUserID(ctx, req.GetClientId(), req.GetUserId())
	if err != nil {
		return nil, errs.ToGRPC(err)
	}

	tx, err := s.store.Begin(ctx)
	if err != nil {
		return nil, errs.ToGRPC(err)
	}
	defer tx.Rollback(ctx)

	eventID := s.node.Generate().Int64()
	event := &store.ClientNotifyEvent{
		ID:            eventID,
		ClientID:      req.GetClientId(),
		Platform:      enums.PlatformFrontend,
		Name:          req.GetEventName(),
		Memo:          req.GetEventMemo(),
		NotifyTypes:   []enums.NotifyType{enums.NotifyTypeInApp, enums.NotifyTypeEmail},
		EditorAccount: editorAccount,
	}
	if err := s.store.CreateClientNotifyEvent(ctx, tx, event); err != nil {
		return nil, errs.ToGRPC(err)
	}
	for _, t := range templates {
		if err := s.store.CreateClientNotifyTemplate(ctx, tx, &store.ClientNotifyTemplate{
			ClientID:          req.GetClientId(),
			ClientNotifyEvent: eventID,
			LanguageID:        enums.LanguageJp,
			NotifyType:        t.NotifyType,
			Title:             t.Title,
			Content:           t.Content,
		}); err != nil {
			return nil, errs.ToGRPC(err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.ToGRPC(fmt.Errorf("%w: failed to commit event create: %v", errs.ErrInternal, err))
	}
	return &backstagenotify.Empty{}, nil
}
