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

// notify_server runs both gRPC surfaces and the queue workers in one
// process. Pods are stateless apart from the in-app streams they hold;
// the redis user directory and the peer forwarding RPCs stitch the
// streams of a deployment together.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/snowflake"
	"google.golang.org/grpc"
	"google.golang.org/grpc/keepalive"
	"k8s.io/client-go/kubernetes"

	"github.com/j50301m/notify-server/internal/broker"
	"github.com/j50301m/notify-server/internal/cache"
	"github.com/j50301m/notify-server/internal/identity"
	"github.com/j50301m/notify-server/internal/sender"
	"github.com/j50301m/notify-server/internal/server"
	"github.com/j50301m/notify-server/internal/store"
	"github.com/j50301m/notify-server/internal/worker"
	backstagenotify "github.com/j50301m/notify-server/proto/backstagenotify"
	frontendnotify "github.com/j50301m/notify-server/proto/frontendnotify"
	"github.com/j50301m/notify-server/utils"
	"github.com/j50301m/notify-server/utils/logging"
	"github.com/j50301m/notify-server/utils/metrics"
	"github.com/j50301m/notify-server/utils/postgres"
	"github.com/j50301m/notify-server/utils/redis"
)

func main() {
	// HOSTNAME wins over SERVICE_NAME so log lines carry the pod name.
	serviceName := utils.GetEnv("SERVICE_NAME", "notify_server")
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		serviceName = hostname
	}

	host := flag.String("host", utils.GetEnv("SERVICE_HOST", ""), "gRPC listen address")
	port := flag.Int("port", utils.GetEnvInt("SERVICE_PORT", 50051), "gRPC server port")
	nodeID := flag.Int64("node-id", int64(utils.GetEnvInt("SNOWFLAKE_NODE_ID", 1)), "Snowflake node id, unique per pod")

	logFlags := logging.RegisterFlags()
	metricsFlags := metrics.RegisterMetricsFlags(serviceName)
	pgFlags := postgres.RegisterPostgresFlags()
	redisFlags := redis.RegisterRedisFlags()
	brokerFlags := broker.RegisterBrokerFlags()
	identityFlags := identity.RegisterIdentityFlags()
	emailFlags := sender.RegisterEmailFlags()
	smsFlags := sender.RegisterSmsFlags()
	peerFlags := server.RegisterPeerFlags()
	workerFlags := worker.RegisterWorkerFlags()
	flag.Parse()

	logger := logging.InitLogger(serviceName, logFlags.ToConfig())
	slog.SetDefault(logger)

	version, err := utils.LoadVersion()
	if err != nil {
		logger.Warn("failed to load version", slog.Any("error", err))
	}
	logger.Info("starting notify server", slog.String("version", version))

	if err := metrics.InitMetricCreator(metricsFlags.ToMetricsConfig()); err != nil {
		logger.Warn("metrics disabled", slog.Any("error", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	node, err := snowflake.NewNode(*nodeID)
	if err != nil {
		log.Fatalf("Failed to create snowflake node: %v", err)
	}

	pgClient, err := postgres.NewPostgresClient(ctx, pgFlags.ToPostgresConfig(), logger)
	if err != nil {
		log.Fatalf("Failed to connect postgres: %v", err)
	}
	defer pgClient.Close()

	st := store.NewStore(pgClient, logger)
	if err := st.Migrate(ctx); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	redisClient, err := redis.NewRedisClient(ctx, redisFlags.ToRedisConfig(), logger)
	if err != nil {
		log.Fatalf("Failed to connect redis: %v", err)
	}
	defer redisClient.Close()
	directory := cache.NewDirectory(redisClient, logger)

	brokerClient, err := broker.NewClient(ctx, brokerFlags.ToBrokerConfig(), logger)
	if err != nil {
		log.Fatalf("Failed to connect rabbitmq: %v", err)
	}
	defer brokerClient.Close()

	identityClient, err := identity.NewClient(identityFlags.ToIdentityConfig(), logger)
	if err != nil {
		log.Fatalf("Failed to connect identity services: %v", err)
	}
	defer identityClient.Close()

	emailSender := sender.NewEmailSender(emailFlags.ToEmailConfig(), nil, logger)
	smsSender := sender.NewSmsSender(smsFlags.ToSmsConfig(), nil, logger)

	// Peer forwarding degrades to single-pod mode when no cluster is
	// reachable, which is the local-dev setup.
	var clientset kubernetes.Interface
	if cs, cerr := server.NewKubernetesClient(); cerr != nil {
		logger.Warn("kubernetes unavailable, peer forwarding disabled", slog.Any("error", cerr))
	} else {
		clientset = cs
	}
	peers := server.NewPeers(clientset, peerFlags.ToPeerConfig(*port), logger)

	frontendRegistry := server.NewFrontendRegistry(logger)
	backstageRegistry := server.NewBackstageRegistry(logger)

	frontendServer := server.NewFrontendServer(
		st, brokerClient, directory, identityClient, frontendRegistry, peers, node, logger)
	backstageServer := server.NewBackstageServer(
		st, brokerClient, identityClient, backstageRegistry, peers, node, logger)

	pool := worker.NewPool(workerFlags.ToWorkerConfig(),
		st, brokerClient, directory, identityClient, emailSender, smsSender,
		frontendRegistry, peers, node, logger)
	if err := pool.Run(ctx); err != nil {
		log.Fatalf("Failed to start workers: %v", err)
	}
	defer pool.Close()

	grpcServer := grpc.NewServer(
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    60 * time.Second,
			Timeout: 20 * time.Second,
		}),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             30 * time.Second,
			PermitWithoutStream: true,
		}),
		grpc.MaxConcurrentStreams(1000),
	)
	frontendnotify.RegisterFrontendNotifyServiceServer(grpcServer, frontendServer)
	backstagenotify.RegisterBackStageNotifyServiceServer(grpcServer, backstageServer)

	lis, err := net.Listen("tcp", fmt.Sprintf("%s:%d", *host, *port))
	if err != nil {
		log.Fatalf("Failed to listen: %v", err)
	}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		grpcServer.GracefulStop()
	}()

	logger.Info("notify server listening", slog.Int("port", *port))
	if err := grpcServer.Serve(lis); err != nil {
		log.Fatalf("Failed to serve: %v", err)
	}
}
