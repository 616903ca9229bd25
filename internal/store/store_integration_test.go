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

package store

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/j50301m/notify-server/internal/enums"
	"github.com/j50301m/notify-server/internal/errs"
	"github.com/j50301m/notify-server/utils/postgres"
)

// setupStore starts a throwaway postgres container, connects a client and
// runs the migrations. Skipped under -short so the unit suite stays free
// of the docker dependency.
func setupStore(t *testing.T) *Store {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("notify_db"),
		tcpostgres.WithUsername("notify"),
		tcpostgres.WithPassword("notify"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client, err := postgres.NewPostgresClient(ctx, postgres.PostgresConfig{
		Host:     host,
		Port:     port.Int(),
		Database: "notify_db",
		User:     "notify",
		Password: "notify",
		MaxConns: 5,
		MinConns: 1,
		SSLMode:  "disable",
	}, logger)
	require.NoError(t, err)
	t.Cleanup(client.Close)

	st := NewStore(client, logger)
	require.NoError(t, st.Migrate(ctx))
	return st
}

func TestStoreIntegration(t *testing.T) {
	st := setupStore(t)
	ctx := context.Background()

	t.Run("migrate is idempotent", func(t *testing.T) {
		require.NoError(t, st.Migrate(ctx))
	})

	t.Run("system events seeded", func(t *testing.T) {
		for _, e := range enums.AllNotifyEvents() {
			clientID := SeedFrontendClientID
			if e.Platform() == enums.PlatformBackstage {
				clientID = SeedBackstageClientID
			}
			event, err := st.GetClientNotifyEvent(ctx, st.DB(), clientID, int64(e))
			require.NoError(t, err, "event %d", int64(e))
			assert.True(t, event.IsSystemEvent)
			assert.Equal(t, e.String(), event.Name)
			assert.Equal(t, e.Platform(), event.Platform)
			if e.Platform() == enums.PlatformBackstage {
				assert.Equal(t, []enums.NotifyType{enums.NotifyTypeInApp}, event.NotifyTypes)
			}
		}
	})

	t.Run("seeded templates load", func(t *testing.T) {
		tmpl, err := st.GetTemplate(ctx, st.DB(),
			SeedFrontendClientID, int64(enums.EventLoginAnomaly), enums.NotifyTypeEmail, enums.LanguageJp)
		require.NoError(t, err)
		assert.True(t, tmpl.IsSystem)
		assert.NotEmpty(t, tmpl.Title)
		assert.NotEmpty(t, tmpl.KeyList)
	})

	t.Run("notify record lifecycle", func(t *testing.T) {
		const clientID, userID = int64(500), int64(9001)

		for i := int64(1); i <= 3; i++ {
			require.NoError(t, st.InsertNotifyRecord(ctx, st.DB(), &NotifyRecord{
				ID:                  i,
				ClientID:            clientID,
				UserID:              userID,
				UserAccount:         "alice01",
				ClientNotifyEventID: int64(enums.EventNormalInfo),
				SenderID:            1,
				SenderAccount:       "System",
				NotifyType:          enums.NotifyTypeInApp,
				NotifyLevel:         enums.NotifyLevelInfo,
				Title:               "hello",
				Content:             "world",
			}))
		}

		got, err := st.GetNotifyByID(ctx, st.DB(), clientID, userID, 1)
		require.NoError(t, err)
		assert.Equal(t, enums.NotifyStatusUnread, got.NotifyStatus)
		assert.Equal(t, "alice01", got.UserAccount)

		records, total, err := st.ListUserNotifyRecords(ctx, st.DB(), clientID, userID, RecordFilter{}, 1)
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		assert.Len(t, records, 3)

		unread, err := st.CountUnread(ctx, st.DB(), clientID, userID, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 3, unread)

		updated, err := st.UpdateNotifyStatus(ctx, st.DB(), clientID, userID, []int64{1}, enums.NotifyStatusRead)
		require.NoError(t, err)
		require.Len(t, updated, 1)
		assert.Equal(t, enums.NotifyStatusRead, updated[0].NotifyStatus)

		unread, err = st.CountUnread(ctx, st.DB(), clientID, userID, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 2, unread)

		// Soft delete hides the record from the user surface.
		_, err = st.UpdateNotifyStatus(ctx, st.DB(), clientID, userID, []int64{2}, enums.NotifyStatusDelete)
		require.NoError(t, err)
		_, err = st.GetNotifyByID(ctx, st.DB(), clientID, userID, 2)
		assert.ErrorIs(t, err, errs.ErrDataNotFound)
		_, total, err = st.ListUserNotifyRecords(ctx, st.DB(), clientID, userID, RecordFilter{}, 1)
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)

		require.NoError(t, st.MarkAllRead(ctx, st.DB(), clientID, userID, 0))
		unread, err = st.CountUnread(ctx, st.DB(), clientID, userID, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 0, unread)
	})

	t.Run("mark all read filters by level", func(t *testing.T) {
		const clientID, userID = int64(503), int64(9003)
		levels := map[int64]enums.NotifyLevel{
			30: enums.NotifyLevelInfo,
			31: enums.NotifyLevelInfo,
			32: enums.NotifyLevelImportant,
		}
		for id, level := range levels {
			require.NoError(t, st.InsertNotifyRecord(ctx, st.DB(), &NotifyRecord{
				ID: id, ClientID: clientID, UserID: userID, UserAccount: "erin",
				ClientNotifyEventID: int64(enums.EventNormalInfo), SenderAccount: "System",
				NotifyType: enums.NotifyTypeInApp, NotifyLevel: level,
				Title: "t", Content: "c",
			}))
		}

		require.NoError(t, st.MarkAllRead(ctx, st.DB(), clientID, userID, enums.NotifyLevelInfo))

		unread, err := st.CountUnread(ctx, st.DB(), clientID, userID, enums.NotifyLevelInfo)
		require.NoError(t, err)
		assert.EqualValues(t, 0, unread)

		// The other level stays untouched.
		unread, err = st.CountUnread(ctx, st.DB(), clientID, userID, enums.NotifyLevelImportant)
		require.NoError(t, err)
		assert.EqualValues(t, 1, unread)
	})

	t.Run("records scoped to user and tenant", func(t *testing.T) {
		const clientID, userID = int64(501), int64(9002)
		require.NoError(t, st.InsertNotifyRecord(ctx, st.DB(), &NotifyRecord{
			ID: 10, ClientID: clientID, UserID: userID, UserAccount: "bob",
			ClientNotifyEventID: int64(enums.EventNormalInfo), SenderAccount: "System",
			NotifyType: enums.NotifyTypeInApp, NotifyLevel: enums.NotifyLevelInfo,
			Title: "t", Content: "c",
		}))

		_, err := st.GetNotifyByID(ctx, st.DB(), clientID, 9999, 10)
		assert.ErrorIs(t, err, errs.ErrDataNotFound)

		// Updating through another user touches nothing.
		updated, err := st.UpdateNotifyStatus(ctx, st.DB(), clientID, 9999, []int64{10}, enums.NotifyStatusRead)
		require.NoError(t, err)
		assert.Empty(t, updated)
	})

	t.Run("admin record search", func(t *testing.T) {
		const clientID = int64(502)
		seed := []*NotifyRecord{
			{ID: 20, UserID: 1, UserAccount: "carol", SenderAccount: "admin1",
				NotifyType: enums.NotifyTypeInApp, NotifyLevel: enums.NotifyLevelInfo,
				Title: "spring bonus", Content: "x"},
			{ID: 21, UserID: 2, UserAccount: "dave", SenderAccount: "admin2",
				NotifyType: enums.NotifyTypeEmail, NotifyLevel: enums.NotifyLevelImportant,
				Title: "maintenance window", Content: "x"},
		}
		for _, r := range seed {
			r.ClientID = clientID
			r.ClientNotifyEventID = int64(enums.EventNormalInfo)
			require.NoError(t, st.InsertNotifyRecord(ctx, st.DB(), r))
		}

		records, total, err := st.SearchNotifyRecords(ctx, st.DB(), clientID,
			AdminRecordFilter{Title: "bonus", IsFuzzy: true}, 10, 1)
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, records, 1)
		assert.Equal(t, "carol", records[0].UserAccount)

		// Exact title match misses the substring.
		_, total, err = st.SearchNotifyRecords(ctx, st.DB(), clientID,
			AdminRecordFilter{Title: "bonus"}, 10, 1)
		require.NoError(t, err)
		assert.EqualValues(t, 0, total)

		_, total, err = st.SearchNotifyRecords(ctx, st.DB(), clientID,
			AdminRecordFilter{NotifyType: []enums.NotifyType{enums.NotifyTypeEmail}}, 10, 1)
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)

		_, total, err = st.SearchNotifyRecords(ctx, st.DB(), clientID,
			AdminRecordFilter{SenderAccount: "admin1"}, 10, 1)
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
	})

	t.Run("custom event with templates", func(t *testing.T) {
		const clientID = int64(503)
		event := &ClientNotifyEvent{
			ID:            800001,
			ClientID:      clientID,
			Platform:      enums.PlatformFrontend,
			Name:          "weekend promo",
			Memo:          "promo blast",
			NotifyTypes:   []enums.NotifyType{enums.NotifyTypeInApp, enums.NotifyTypeEmail},
			EditorAccount: "admin1",
		}
		require.NoError(t, st.CreateClientNotifyEvent(ctx, st.DB(), event))

		for _, nt := range event.NotifyTypes {
			require.NoError(t, st.CreateClientNotifyTemplate(ctx, st.DB(), &ClientNotifyTemplate{
				ClientID:          clientID,
				ClientNotifyEvent: event.ID,
				LanguageID:        enums.LanguageJp,
				NotifyType:        nt,
				Title:             "promo {{user_account}}",
				Content:           "check it out",
			}))
		}
		// An SMS template exists but the channel is not enabled on the event.
		require.NoError(t, st.CreateClientNotifyTemplate(ctx, st.DB(), &ClientNotifyTemplate{
			ClientID:          clientID,
			ClientNotifyEvent: event.ID,
			LanguageID:        enums.LanguageJp,
			NotifyType:        enums.NotifyTypeSMS,
			Title:             "promo",
			Content:           "check it out",
		}))

		active, err := st.GetActiveTemplates(ctx, st.DB(), clientID, event.ID, enums.LanguageJp)
		require.NoError(t, err)
		require.Len(t, active, 2)
		for _, tmpl := range active {
			assert.NotEqual(t, enums.NotifyTypeSMS, tmpl.NotifyType)
		}

		all, err := st.ListTemplatesByEvent(ctx, st.DB(), clientID, event.ID)
		require.NoError(t, err)
		assert.Len(t, all, 3)

		// Body rewrite reaches every language of the channel.
		require.NoError(t, st.UpdateEventTemplateBodies(ctx, st.DB(), clientID, event.ID,
			enums.NotifyTypeEmail, "new title", "new content"))
		tmpl, err := st.GetTemplate(ctx, st.DB(), clientID, event.ID, enums.NotifyTypeEmail, enums.LanguageJp)
		require.NoError(t, err)
		assert.Equal(t, "new title", tmpl.Title)

		events, total, err := st.ListClientNotifyEvents(ctx, st.DB(), clientID,
			EventFilter{Name: "promo", IsFuzzy: true}, 10, 1)
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, events, 1)
		assert.Equal(t, "weekend promo", events[0].Name)

		// Containment filter: requesting a disabled channel excludes the event.
		_, total, err = st.ListClientNotifyEvents(ctx, st.DB(), clientID,
			EventFilter{NotifyTypes: []enums.NotifyType{enums.NotifyTypeSMS}}, 10, 1)
		require.NoError(t, err)
		assert.EqualValues(t, 0, total)

		require.NoError(t, st.DeleteClientNotifyEvent(ctx, st.DB(), clientID, event.ID))
		_, err = st.GetClientNotifyEvent(ctx, st.DB(), clientID, event.ID)
		assert.ErrorIs(t, err, errs.ErrDataNotFound)
		remaining, err := st.ListTemplatesByEvent(ctx, st.DB(), clientID, event.ID)
		require.NoError(t, err)
		assert.Empty(t, remaining)
	})

	t.Run("system event immutability", func(t *testing.T) {
		err := st.DeleteClientNotifyEvent(ctx, st.DB(), SeedFrontendClientID, int64(enums.EventNormalInfo))
		assert.ErrorIs(t, err, errs.ErrInvalidArgument)

		// The name argument is ignored for system rows; the memo still updates.
		event, err := st.GetClientNotifyEvent(ctx, st.DB(), SeedFrontendClientID, int64(enums.EventNormalInfo))
		require.NoError(t, err)
		event.Name = "renamed"
		event.Memo = "new memo"
		require.NoError(t, st.UpdateClientNotifyEvent(ctx, st.DB(), event))

		reloaded, err := st.GetClientNotifyEvent(ctx, st.DB(), SeedFrontendClientID, int64(enums.EventNormalInfo))
		require.NoError(t, err)
		assert.Equal(t, enums.EventNormalInfo.String(), reloaded.Name)
		assert.Equal(t, "new memo", reloaded.Memo)
	})

	t.Run("event summaries", func(t *testing.T) {
		summaries, err := st.ListEventSummaries(ctx, st.DB(), SeedBackstageClientID, enums.PlatformBackstage, nil)
		require.NoError(t, err)
		require.Len(t, summaries, 4)
		assert.EqualValues(t, int64(enums.EventBackstageVerifyKyc), summaries[0].ID)
	})

	t.Run("task lifecycle", func(t *testing.T) {
		const clientID = int64(504)
		task := &BackstageSendTask{
			ID:              900001,
			ClientID:        clientID,
			ClientEventID:   int64(enums.EventNormalInfo),
			SenderID:        77,
			SenderAccount:   "admin1",
			ReceiverCount:   2,
			ReceiverAccount: []string{"alice01", "bob"},
			ReceiverID:      []int64{9001, 9002},
			TaskName:        "promo blast ",
			NotifyLevel:     enums.NotifyLevelInfo,
		}
		details := []*BackstageSendTaskDetail{
			{ID: 910001, NotifyLevel: enums.NotifyLevelInfo, NotifyType: enums.NotifyTypeInApp, Title: "promo", Content: "c"},
			{ID: 910002, NotifyLevel: enums.NotifyLevelInfo, NotifyType: enums.NotifyTypeEmail, Title: "promo", Content: "c"},
		}
		require.NoError(t, st.CreateBackstageSendTask(ctx, st.DB(), task, details))

		got, err := st.GetBackstageSendTask(ctx, st.DB(), clientID, task.ID)
		require.NoError(t, err)
		assert.Equal(t, enums.TaskStatusPending, got.TaskStatus)
		assert.Equal(t, []int64{9001, 9002}, got.ReceiverID)

		listed, err := st.ListTaskDetails(ctx, st.DB(), task.ID)
		require.NoError(t, err)
		require.Len(t, listed, 2)
		assert.Equal(t, enums.NotifyTypeInApp, listed[0].NotifyType)

		require.NoError(t, st.SetTaskStatus(ctx, st.DB(), task.ID, enums.TaskStatusSuccess, nil))
		got, err = st.GetBackstageSendTask(ctx, st.DB(), clientID, task.ID)
		require.NoError(t, err)
		assert.Equal(t, enums.TaskStatusSuccess, got.TaskStatus)

		// The transition happens at most once; a late failure cannot flip it.
		message := "boom"
		require.NoError(t, st.SetTaskStatus(ctx, st.DB(), task.ID, enums.TaskStatusFail, &message))
		got, err = st.GetBackstageSendTask(ctx, st.DB(), clientID, task.ID)
		require.NoError(t, err)
		assert.Equal(t, enums.TaskStatusSuccess, got.TaskStatus)
		assert.Nil(t, got.ErrorMessage)

		tasks, total, err := st.ListBackstageSendTasks(ctx, st.DB(), clientID,
			TaskFilter{TaskName: "promo", IsFuzzy: true}, 10, 1)
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, tasks, 1)
	})

	t.Run("audit rows", func(t *testing.T) {
		require.NoError(t, st.InsertMqSuccessRecord(ctx, st.DB(), &MqSuccessRecord{
			NotifyID: 1, ClientID: 500, UserID: 9001, SenderID: 1,
			NotifyType: enums.NotifyTypeInApp, Title: "hello", Content: "world",
		}))

		notifyID := int64(42)
		require.NoError(t, st.InsertMqFailedRecord(ctx, st.DB(), &MqFailedRecord{
			NotifyID:     &notifyID,
			ErrorMessage: "user profile fetch failed",
			RawPayload:   []byte(`{"notify_id":42}`),
		}))

		// A payload that never parsed still leaves an audit trail.
		require.NoError(t, st.InsertMqFailedRecord(ctx, st.DB(), &MqFailedRecord{
			ErrorMessage: "invalid payload",
			RawPayload:   []byte("not json"),
		}))
	})

	t.Run("transaction rollback", func(t *testing.T) {
		tx, err := st.Begin(ctx)
		require.NoError(t, err)
		require.NoError(t, st.InsertNotifyRecord(ctx, tx, &NotifyRecord{
			ID: 30, ClientID: 505, UserID: 1, UserAccount: "x",
			ClientNotifyEventID: int64(enums.EventNormalInfo), SenderAccount: "System",
			NotifyType: enums.NotifyTypeInApp, NotifyLevel: enums.NotifyLevelInfo,
			Title: "t", Content: "c",
		}))
		require.NoError(t, tx.Rollback(ctx))

		_, err = st.GetNotifyByID(ctx, st.DB(), 505, 1, 30)
		assert.ErrorIs(t, err, errs.ErrDataNotFound)
	})
}
