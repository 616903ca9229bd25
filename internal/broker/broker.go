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

// Package broker is the RabbitMQ gateway: it owns the exchange/queue
// topology, publishes the single and batch notification payloads, and
// hands out prefetch-1 consumers to the worker pool.
package broker

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/j50301m/notify-server/internal/errs"
	"github.com/j50301m/notify-server/utils"
)

// Topology names. These are shared with every producer and consumer of
// the notify queues and must not change.
const (
	ExchangeName           = "notify_exchange"
	SingleNotifyQueue      = "single_notify_queue"
	SingleNotifyRoutingKey = "single_notify_routing_key"
	BatchNotifyQueue       = "batch_notify_queue"
	BatchNotifyRoutingKey  = "batch_notify_routing_key"
)

// BrokerConfig holds RabbitMQ connection configuration
type BrokerConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	MaxChannels int
	DialTimeout time.Duration
}

// Client wraps one AMQP connection. Publishes share a mutex-guarded
// channel; each consumer gets its own channel so prefetch applies per
// worker. MaxChannels bounds how many channels the connection holds
// open, publisher included.
type Client struct {
	conn   *amqp.Connection
	logger *slog.Logger

	pubMu  sync.Mutex
	pubCh  *amqp.Channel
	config BrokerConfig

	chanMu   sync.Mutex
	channels int

	closeOnce sync.Once
}

// NewClient dials RabbitMQ, declares the notify topology and prepares the
// publisher channel.
func NewClient(ctx context.Context, config BrokerConfig, logger *slog.Logger) (*Client, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s:%d/", config.User, config.Password, config.Host, config.Port)

	conn, err := amqp.DialConfig(url, amqp.Config{
		Dial: amqp.DefaultDial(config.DialTimeout),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to dial rabbitmq: %v", errs.ErrConnection, err)
	}

	c := &Client{
		conn:   conn,
		logger: logger,
		config: config,
	}

	if err := c.declareTopology(); err != nil {
		conn.Close()
		return nil, err
	}

	c.pubCh, err = conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: failed to open publisher channel: %v", errs.ErrConnection, err)
	}
	c.channels = 1

	logger.Info("rabbitmq client connected",
		slog.String("host", config.Host),
		slog.Int("port", config.Port),
	)

	return c, nil
}

// declareTopology declares the durable direct exchange and both queues,
// and binds them by their fixed routing keys. Declarations are idempotent
// on the broker side.
func (c *Client) declareTopology() error {
	ch, err := c.conn.Channel()
	if err != nil {
		return fmt.Errorf("%w: failed to open channel: %v", errs.ErrConnection, err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(
		ExchangeName,
		"direct",
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	); err != nil {
		return fmt.Errorf("%w: failed to declare exchange: %v", errs.ErrConnection, err)
	}

	bindings := []struct {
		queue      string
		routingKey string
	}{
		{SingleNotifyQueue, SingleNotifyRoutingKey},
		{BatchNotifyQueue, BatchNotifyRoutingKey},
	}

	for _, b := range bindings {
		if _, err := ch.QueueDeclare(
			b.queue,
			true,  // durable
			false, // autoDelete
			false, // exclusive
			false, // noWait
			nil,
		); err != nil {
			return fmt.Errorf("%w: failed to declare queue %s: %v", errs.ErrConnection, b.queue, err)
		}
		if err := ch.QueueBind(b.queue, b.routingKey, ExchangeName, false, nil); err != nil {
			return fmt.Errorf("%w: failed to bind queue %s: %v", errs.ErrConnection, b.queue, err)
		}
	}

	return nil
}

// PublishSingle enqueues one SingleNotifyModel on the single queue.
func (c *Client) PublishSingle(ctx context.Context, model *SingleNotifyModel) error {
	return c.publish(ctx, SingleNotifyRoutingKey, model)
}

// PublishBatch enqueues one BatchNotifyModel on the batch queue.
func (c *Client) PublishBatch(ctx context.Context, model *BatchNotifyModel) error {
	return c.publish(ctx, BatchNotifyRoutingKey, model)
}

func (c *Client) publish(ctx context.Context, routingKey string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	c.pubMu.Lock()
	defer c.pubMu.Unlock()

	err = c.pubCh.PublishWithContext(ctx,
		ExchangeName,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("%w: failed to publish to %s: %v", errs.ErrConnection, routingKey, err)
	}

	c.logger.Debug("published message",
		slog.String("routing_key", routingKey),
		slog.Int("bytes", len(body)),
	)
	return nil
}

// reserveChannel claims one slot of the channel budget.
func (c *Client) reserveChannel() error {
	c.chanMu.Lock()
	defer c.chanMu.Unlock()
	if c.channels >= c.config.MaxChannels {
		return fmt.Errorf("%w: channel limit %d reached", errs.ErrConnection, c.config.MaxChannels)
	}
	c.channels++
	return nil
}

func (c *Client) releaseChannel() {
	c.chanMu.Lock()
	defer c.chanMu.Unlock()
	c.channels--
}

// Consumer is a single-channel subscription to one queue with prefetch 1.
// Deliveries are acknowledged explicitly via Ack.
type Consumer struct {
	ch         *amqp.Channel
	deliveries <-chan amqp.Delivery
	queue      string
	tag        string
	release    func()
}

// ConsumeSingle opens a tagged consumer on the single-notify queue.
func (c *Client) ConsumeSingle(tag string) (*Consumer, error) {
	return c.consume(SingleNotifyQueue, tag)
}

// ConsumeBatch opens a tagged consumer on the batch-notify queue.
func (c *Client) ConsumeBatch(tag string) (*Consumer, error) {
	return c.consume(BatchNotifyQueue, tag)
}

func (c *Client) consume(queue, tag string) (*Consumer, error) {
	if err := c.reserveChannel(); err != nil {
		return nil, err
	}

	ch, err := c.conn.Channel()
	if err != nil {
		c.releaseChannel()
		return nil, fmt.Errorf("%w: failed to open consumer channel: %v", errs.ErrConnection, err)
	}

	// One unacked message at a time, shared across the channel, for fair
	// dispatch across the worker pool.
	if err := ch.Qos(1, 0, true); err != nil {
		ch.Close()
		c.releaseChannel()
		return nil, fmt.Errorf("%w: failed to set qos: %v", errs.ErrConnection, err)
	}

	deliveries, err := ch.Consume(
		queue,
		tag,
		false, // autoAck: messages are acked explicitly
		false, // exclusive
		false, // noLocal
		false, // noWait
		nil,
	)
	if err != nil {
		ch.Close()
		c.releaseChannel()
		return nil, fmt.Errorf("%w: failed to consume from %s: %v", errs.ErrConnection, queue, err)
	}

	return &Consumer{
		ch:         ch,
		deliveries: deliveries,
		queue:      queue,
		tag:        tag,
		release:    c.releaseChannel,
	}, nil
}

// Next returns the next pending delivery without blocking. ok is false
// when no message is currently available; err is non-nil when the
// subscription has been closed by the broker.
func (con *Consumer) Next() (amqp.Delivery, bool, error) {
	select {
	case d, open := <-con.deliveries:
		if !open {
			return amqp.Delivery{}, false, fmt.Errorf("%w: consumer %s closed", errs.ErrConnection, con.tag)
		}
		return d, true, nil
	default:
		return amqp.Delivery{}, false, nil
	}
}

// Ack acknowledges a delivery, removing it from the queue.
func (con *Consumer) Ack(d amqp.Delivery) error {
	if err := d.Ack(false); err != nil {
		return fmt.Errorf("%w: failed to ack on %s: %v", errs.ErrConnection, con.queue, err)
	}
	return nil
}

// Close cancels the subscription and releases its channel.
func (con *Consumer) Close() error {
	defer con.release()
	if err := con.ch.Cancel(con.tag, false); err != nil {
		return con.ch.Close()
	}
	return con.ch.Close()
}

// Close shuts down the publisher channel and the connection.
// It is safe to call multiple times.
func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.logger.Info("closing rabbitmq client")
		if c.pubCh != nil {
			_ = c.pubCh.Close()
		}
		err = c.conn.Close()
	})
	return err
}

// BrokerFlagPointers holds pointers to flag values for RabbitMQ configuration
type BrokerFlagPointers struct {
	host           *string
	port           *int
	user           *string
	password       *string
	maxConnection  *int
	connTimeoutSec *int
}

// RegisterBrokerFlags registers RabbitMQ-related command-line flags
// Returns a BrokerFlagPointers that should be converted to BrokerConfig
// after flag.Parse() is called
func RegisterBrokerFlags() *BrokerFlagPointers {
	return &BrokerFlagPointers{
		host: flag.String("rabbitmq-host",
			utils.GetEnv("RABBITMQ_HOST", "localhost"),
			"RabbitMQ host"),
		port: flag.Int("rabbitmq-port",
			utils.GetEnvInt("RABBITMQ_PORT", 5672),
			"RabbitMQ port"),
		user: flag.String("rabbitmq-user",
			utils.GetEnv("RABBITMQ_USER", "guest"),
			"RabbitMQ user"),
		password: flag.String("rabbitmq-password",
			utils.GetEnvOrConfig("RABBITMQ_PASSWORD", "rabbitmq_password", "guest"),
			"RabbitMQ password"),
		maxConnection: flag.Int("rabbitmq-max-connection",
			utils.GetEnvInt("RABBITMQ_MAX_CONNECTION", 16),
			"Maximum number of RabbitMQ channels"),
		connTimeoutSec: flag.Int("rabbitmq-connection-timeout",
			utils.GetEnvInt("RABBITMQ_CONNECTION_TIMEOUT", 10),
			"RabbitMQ dial timeout in seconds"),
	}
}

// ToBrokerConfig converts flag pointers to BrokerConfig
// This should be called after flag.Parse()
func (b *BrokerFlagPointers) ToBrokerConfig() BrokerConfig {
	return BrokerConfig{
		Host:        *b.host,
		Port:        *b.port,
		User:        *b.user,
		Password:    *b.password,
		MaxChannels: *b.maxConnection,
		DialTimeout: time.Duration(*b.connTimeoutSec) * time.Second,
	}
}
