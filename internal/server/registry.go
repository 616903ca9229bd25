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

// Package server implements the two gRPC surfaces. The frontend surface
// serves end users, the backstage surface serves tenant admins; both hold
// their in-app streams in an in-process registry and reach streams on
// other pods through the peer forwarding RPCs.
package server

import (
	"log/slog"
	"sync"

	backstagenotify "github.com/j50301m/notify-server/proto/backstagenotify"
	frontendnotify "github.com/j50301m/notify-server/proto/frontendnotify"
)

// streamBuffer is the per-stream channel capacity. A consumer that falls
// this far behind is dropped rather than blocking the sender.
const streamBuffer = 16

// FrontendRegistry holds the open frontend streams of this pod, one slot
// per user. Opening a second stream for the same user closes the first:
// the newest device wins.
type FrontendRegistry struct {
	mu      sync.Mutex
	streams map[int64]chan *frontendnotify.Receiver
	logger  *slog.Logger
}

// NewFrontendRegistry builds an empty registry.
func NewFrontendRegistry(logger *slog.Logger) *FrontendRegistry {
	return &FrontendRegistry{
		streams: make(map[int64]chan *frontendnotify.Receiver),
		logger:  logger,
	}
}

// Connect claims the user's stream slot and returns its channel. Any
// previous channel is closed, which ends the older stream handler.
func (r *FrontendRegistry) Connect(userID int64) chan *frontendnotify.Receiver {
	r.mu.Lock()
	defer r.mu.Unlock()
	if old, ok := r.streams[userID]; ok {
		close(old)
		r.logger.Info("frontend stream replaced", slog.Int64("user_id", userID))
	}
	ch := make(chan *frontendnotify.Receiver, streamBuffer)
	r.streams[userID] = ch
	return ch
}

// Disconnect releases the slot, but only when ch still owns it. Returns
// true when the slot was released; false means a newer stream took over
// and nothing was touched.
func (r *FrontendRegistry) Disconnect(userID int64, ch chan *frontendnotify.Receiver) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.streams[userID]
	if !ok || current != ch {
		return false
	}
	delete(r.streams, userID)
	close(current)
	return true
}

// DisconnectUser drops whatever stream the user holds. Returns false when
// the user was not connected.
func (r *FrontendRegistry) DisconnectUser(userID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	ch, ok := r.streams[userID]
	if !ok {
		return false
	}
	delete(r.streams, userID)
	close(ch)
	return true
}

// Push delivers one notification to the user's local stream. Returns
// false when the user is not connected here. A stream whose buffer is
// full is dropped; the record is already persisted, so the client picks
// it up on reconnect.
func (r *FrontendRegistry) Push(userID int64, n *frontendnotify.Notify) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	ch, ok := r.streams[userID]
	if !ok {
		return false
	}
	select {
	case ch <- &frontendnotify.Receiver{Message: &frontendnotify.Receiver_Notify{Notify: n}}:
		return true
	default:
		delete(r.streams, userID)
		close(ch)
		r.logger.Warn("frontend stream stalled, dropped", slog.Int64("user_id", userID))
		return false
	}
}

// backstageStream is one connected admin with the roles that decide
// which broadcasts it receives.
type backstageStream struct {
	clientID int64
	account  string
	roleIDs  []int64
	ch       chan *backstagenotify.Receiver
}

// BackstageRegistry holds the open backstage streams of this pod, one
// slot per admin.
type BackstageRegistry struct {
	mu      sync.Mutex
	streams map[int64]*backstageStream
	logger  *slog.Logger
}

// NewBackstageRegistry builds an empty registry.
func NewBackstageRegistry(logger *slog.Logger) *BackstageRegistry {
	return &BackstageRegistry{
		streams: make(map[int64]*backstageStream),
		logger:  logger,
	}
}

// Connect claims the admin's stream slot, closing any previous stream.
func (r *BackstageRegistry) Connect(clientID, userID int64, account string, roleIDs []int64) chan *backstagenotify.Receiver {
	r.mu.Lock()
	defer r.mu.Unlock()
	if old, ok := r.streams[userID]; ok {
		close(old.ch)
		r.logger.Info("backstage stream replaced", slog.Int64("user_id", userID))
	}
	ch := make(chan *backstagenotify.Receiver, streamBuffer)
	r.streams[userID] = &backstageStream{clientID: clientID, account: account, roleIDs: roleIDs, ch: ch}
	return ch
}

// Disconnect releases the slot when ch still owns it.
func (r *BackstageRegistry) Disconnect(userID int64, ch chan *backstagenotify.Receiver) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.streams[userID]
	if !ok || current.ch != ch {
		return false
	}
	delete(r.streams, userID)
	close(current.ch)
	return true
}

// DisconnectUser drops whatever stream the admin holds.
func (r *BackstageRegistry) DisconnectUser(userID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.streams[userID]
	if !ok {
		return false
	}
	delete(r.streams, userID)
	close(s.ch)
	return true
}

// BroadcastDelivery is one successful local delivery of a broadcast,
// carrying the notification as minted for that admin.
type BroadcastDelivery struct {
	UserID      int64
	UserAccount string
	Notify      *backstagenotify.Notify
}

// Broadcast sends a freshly minted notification to every connected admin
// of the tenant holding at least one of roleIDs. An empty roleIDs list
// matches every admin of the tenant. Streams that cannot accept the
// frame are dropped. The returned deliveries tell the caller which
// records to persist.
func (r *BackstageRegistry) Broadcast(clientID int64, roleIDs []int64, mint func(userID int64) *backstagenotify.Notify) []BroadcastDelivery {
	r.mu.Lock()
	defer r.mu.Unlock()

	var delivered []BroadcastDelivery
	for userID, s := range r.streams {
		if s.clientID != clientID {
			continue
		}
		if !hasCommonRole(roleIDs, s.roleIDs) {
			continue
		}
		n := mint(userID)
		select {
		case s.ch <- &backstagenotify.Receiver{Message: &backstagenotify.Receiver_Notify{Notify: n}}:
			delivered = append(delivered, BroadcastDelivery{UserID: userID, UserAccount: s.account, Notify: n})
		default:
			delete(r.streams, userID)
			close(s.ch)
			r.logger.Warn("backstage stream stalled, dropped", slog.Int64("user_id", userID))
		}
	}
	return delivered
}

// hasCommonRole reports whether required and held share a role. An empty
// required list matches everyone.
func hasCommonRole(required, held []int64) bool {
	if len(required) == 0 {
		return true
	}
	for _, want := range required {
		for _, have := range held {
			if want == have {
				return true
			}
		}
	}
	return false
}
