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

// Package worker consumes the notify queues. Single workers deliver one
// notification over one channel and persist its record; batch workers
// expand an admin broadcast into single messages. Messages are acked on
// receipt; transient failures are retried in-process, but never past the
// first side effect. Terminal failures are audited, never requeued.
package worker

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"

	"github.com/j50301m/notify-server/internal/broker"
	"github.com/j50301m/notify-server/internal/identity"
	"github.com/j50301m/notify-server/internal/sender"
	"github.com/j50301m/notify-server/internal/server"
	"github.com/j50301m/notify-server/internal/store"
	frontendnotify "github.com/j50301m/notify-server/proto/frontendnotify"
	"github.com/j50301m/notify-server/utils"
	"github.com/j50301m/notify-server/utils/metrics"
)

const (
	// maxAttempts bounds the in-process retries of one message.
	maxAttempts = 3

	// maxBackoff caps the delay between attempts.
	maxBackoff = time.Minute

	// idlePoll is how long a worker sleeps when its queue is empty.
	idlePoll = 200 * time.Millisecond
)

// WorkerConfig sizes the pool.
type WorkerConfig struct {
	SingleWorkers int
	BatchWorkers  int
}

// Directory is the slice of the user directory the workers use to route
// in-app deliveries.
type Directory interface {
	Get(ctx context.Context, userID int64) (string, bool, error)
	Delete(ctx context.Context, userID int64) error
}

// Forwarder reaches in-app streams held by other pods.
type Forwarder interface {
	OwnAddr() string
	ForwardFrontend(ctx context.Context, podAddr string, req *frontendnotify.ForwardNotifyRequest) error
}

// Pool runs the queue consumers.
type Pool struct {
	config    WorkerConfig
	store     *store.Store
	broker    *broker.Client
	directory Directory
	identity  *identity.Client
	email     *sender.EmailSender
	sms       *sender.SmsSender
	registry  *server.FrontendRegistry
	peers     Forwarder
	node      *snowflake.Node
	logger    *slog.Logger

	backoff   func(attempt int) time.Duration
	consumers []*broker.Consumer
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewPool wires a worker pool. The registry and peers are shared with the
// frontend server so in-app deliveries reach streams on this pod
// directly and other pods over the forward RPC.
func NewPool(
	config WorkerConfig,
	st *store.Store,
	br *broker.Client,
	directory Directory,
	id *identity.Client,
	email *sender.EmailSender,
	sms *sender.SmsSender,
	registry *server.FrontendRegistry,
	peers Forwarder,
	node *snowflake.Node,
	logger *slog.Logger,
) *Pool {
	return &Pool{
		config:    config,
		store:     st,
		broker:    br,
		directory: directory,
		identity:  id,
		email:     email,
		sms:       sms,
		registry:  registry,
		peers:     peers,
		node:      node,
		logger:    logger,
		backoff: func(attempt int) time.Duration {
			return utils.CalculateBackoff(attempt, maxBackoff)
		},
	}
}

// Run opens the consumers and starts the worker goroutines. It returns
// once everything is started; workers stop when ctx is canceled.
func (p *Pool) Run(ctx context.Context) error {
	for i := 0; i < p.config.SingleWorkers; i++ {
		consumer, err := p.broker.ConsumeSingle(fmt.Sprintf("single-worker-%d", i))
		if err != nil {
			return fmt.Errorf("failed to start single worker %d: %w", i, err)
		}
		p.consumers = append(p.consumers, consumer)
		p.wg.Add(1)
		go p.runConsumer(ctx, consumer, p.handleSingle, p.recordSingleFailure)
	}
	for i := 0; i < p.config.BatchWorkers; i++ {
		consumer, err := p.broker.ConsumeBatch(fmt.Sprintf("batch-worker-%d", i))
		if err != nil {
			return fmt.Errorf("failed to start batch worker %d: %w", i, err)
		}
		p.consumers = append(p.consumers, consumer)
		p.wg.Add(1)
		go p.runConsumer(ctx, consumer, p.handleBatch, p.recordBatchFailure)
	}
	p.logger.Info("worker pool started",
		slog.Int("single_workers", p.config.SingleWorkers),
		slog.Int("batch_workers", p.config.BatchWorkers))
	return nil
}

// runConsumer is one worker loop. Messages are acked before processing:
// a crash loses at most the in-flight message, and a poison message can
// never wedge the queue.
func (p *Pool) runConsumer(ctx context.Context, consumer *broker.Consumer, handle func(context.Context, []byte) error, fail func(context.Context, []byte, error)) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		d, ok, err := consumer.Next()
		if err != nil {
			p.logger.Error("consumer closed", slog.Any("error", err))
			return
		}
		if !ok {
			select {
			case <-ctx.Done():
				return
			case <-time.After(idlePoll):
			}
			continue
		}

		if err := consumer.Ack(d); err != nil {
			p.logger.Warn("failed to ack delivery", slog.Any("error", err))
		}
		p.process(ctx, d.Body, handle, fail)
	}
}

// permanentError marks a failure that must not be retried: the attempt
// already had a side effect a rerun would repeat, like a provider send
// or a published message.
type permanentError struct{ err error }

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// permanent wraps err so process audits it immediately instead of
// retrying.
func permanent(err error) error {
	return &permanentError{err: err}
}

// process runs one message with backoff retries; the terminal failure is
// handed to fail for auditing. A permanent error ends the retries early.
func (p *Pool) process(ctx context.Context, payload []byte, handle func(context.Context, []byte) error, fail func(context.Context, []byte, error)) {
	var err error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(p.backoff(attempt)):
			}
		}
		if err = handle(ctx, payload); err == nil {
			p.countMessage(ctx, "success")
			return
		}
		p.logger.Warn("message handling failed",
			slog.Int("attempt", attempt+1), slog.Any("error", err))
		var perm *permanentError
		if errors.As(err, &perm) {
			break
		}
	}
	// The audit write must survive a canceled worker context.
	fail(context.WithoutCancel(ctx), payload, err)
	p.countMessage(context.WithoutCancel(ctx), "failed")
}

// countMessage bumps the processed-messages counter; a disabled metric
// creator degrades to a no-op.
func (p *Pool) countMessage(ctx context.Context, outcome string) {
	if err := metrics.GetMetricCreator().RecordCounter(ctx,
		"notify_worker_messages", 1, "{message}",
		"Messages processed by the worker pool",
		map[string]string{"outcome": outcome}); err != nil {
		p.logger.Warn("failed to record worker metric", slog.Any("error", err))
	}
}

// Close cancels the consumers and waits for the in-flight messages.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.logger.Info("stopping worker pool")
		for _, consumer := range p.consumers {
			if err := consumer.Close(); err != nil {
				p.logger.Warn("failed to close consumer", slog.Any("error", err))
			}
		}
		p.wg.Wait()
	})
}

// WorkerFlagPointers holds pointers to flag values for worker pool
// configuration
type WorkerFlagPointers struct {
	singleWorkers *int
	batchWorkers  *int
}

// RegisterWorkerFlags registers worker-related command-line flags
// Returns a WorkerFlagPointers that should be converted to WorkerConfig
// after flag.Parse() is called
func RegisterWorkerFlags() *WorkerFlagPointers {
	return &WorkerFlagPointers{
		singleWorkers: flag.Int("single-workers",
			utils.GetEnvInt("SINGLE_WORKER_COUNT", 10),
			"Number of single-notify workers"),
		batchWorkers: flag.Int("batch-workers",
			utils.GetEnvInt("BATCH_WORKER_COUNT", 2),
			"Number of batch-notify workers"),
	}
}

// ToWorkerConfig converts flag pointers to WorkerConfig
// This should be called after flag.Parse()
func (p *WorkerFlagPointers) ToWorkerConfig() WorkerConfig {
	return WorkerConfig{
		SingleWorkers: *p.singleWorkers,
		BatchWorkers:  *p.batchWorkers,
	}
}
