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
	"flag"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/j50301m/notify-server/internal/errs"
	backstagenotify "github.com/j50301m/notify-server/proto/backstagenotify"
	frontendnotify "github.com/j50301m/notify-server/proto/frontendnotify"
	"github.com/j50301m/notify-server/utils"
)

// PeerConfig identifies this pod among its deployment siblings. PodIP is
// the address other pods reach this one at; peers are discovered by the
// app=<DeploymentName> label in PodNamespace.
type PeerConfig struct {
	PodIP          string
	PodNamespace   string
	DeploymentName string
	GRPCPort       int
}

// Peers discovers the sibling pods of this deployment and forwards in-app
// notifications to them. A nil clientset disables discovery, which is the
// single-pod and local-dev mode.
type Peers struct {
	clientset kubernetes.Interface
	config    PeerConfig
	logger    *slog.Logger
}

// NewPeers builds a Peers. clientset may be nil when no cluster is
// reachable.
func NewPeers(clientset kubernetes.Interface, config PeerConfig, logger *slog.Logger) *Peers {
	return &Peers{
		clientset: clientset,
		config:    config,
		logger:    logger,
	}
}

// NewKubernetesClient creates a clientset using in-cluster config, or the
// local kubeconfig when not running in a cluster.
func NewKubernetesClient() (*kubernetes.Clientset, error) {
	config, err := rest.InClusterConfig()
	if err != nil {
		loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
		configOverrides := &clientcmd.ConfigOverrides{}
		kubeConfig := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
			loadingRules, configOverrides,
		)
		config, err = kubeConfig.ClientConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load kubernetes config: %w", err)
		}
	}
	return kubernetes.NewForConfig(config)
}

// OwnAddr is the address peers and the user directory use to reach this
// pod.
func (p *Peers) OwnAddr() string {
	return fmt.Sprintf("%s:%d", p.config.PodIP, p.config.GRPCPort)
}

// List returns the gRPC addresses of the running sibling pods, excluding
// this one. An unreachable API server degrades to an empty list: local
// delivery already happened and must not be failed by discovery.
func (p *Peers) List(ctx context.Context) []string {
	if p.clientset == nil {
		return nil
	}
	pods, err := p.clientset.CoreV1().Pods(p.config.PodNamespace).List(ctx, metav1.ListOptions{
		LabelSelector: "app=" + p.config.DeploymentName,
	})
	if err != nil {
		p.logger.Warn("peer discovery failed", slog.Any("error", err))
		return nil
	}

	var addrs []string
	for _, pod := range pods.Items {
		if pod.Status.Phase != corev1.PodRunning {
			continue
		}
		ip := pod.Status.PodIP
		if ip == "" || ip == p.config.PodIP {
			continue
		}
		addrs = append(addrs, fmt.Sprintf("%s:%d", ip, p.config.GRPCPort))
	}
	return addrs
}

func dialPeer(addr string) (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to dial peer %s: %v", errs.ErrConnection, addr, err)
	}
	return conn, nil
}

// ForwardBackstage repeats a backstage broadcast on every sibling pod so
// their local streams receive it too. Peer failures are logged, not
// returned: a missing peer must not fail the originating broadcast.
func (p *Peers) ForwardBackstage(ctx context.Context, req *backstagenotify.ForwardNotifyRequest) error {
	addrs := p.List(ctx)

	g, gctx := errgroup.WithContext(ctx)
	for _, addr := range addrs {
		g.Go(func() error {
			conn, err := dialPeer(addr)
			if err != nil {
				p.logger.Warn("backstage forward skipped", slog.String("peer", addr), slog.Any("error", err))
				return nil
			}
			defer conn.Close()
			if _, err := backstagenotify.NewBackStageNotifyServiceClient(conn).ForwardNotify(gctx, req); err != nil {
				p.logger.Warn("backstage forward failed", slog.String("peer", addr), slog.Any("error", err))
			}
			return nil
		})
	}
	return g.Wait()
}

// ForwardFrontend delivers one in-app notification to the pod holding the
// user's stream.
func (p *Peers) ForwardFrontend(ctx context.Context, podAddr string, req *frontendnotify.ForwardNotifyRequest) error {
	conn, err := dialPeer(podAddr)
	if err != nil {
		return err
	}
	defer conn.Close()
	if _, err := frontendnotify.NewFrontendNotifyServiceClient(conn).ForwardNotify(ctx, req); err != nil {
		return fmt.Errorf("failed to forward notify to %s: %w", podAddr, err)
	}
	return nil
}

// PeerFlagPointers holds pointers to flag values for peer discovery
// configuration
type PeerFlagPointers struct {
	podIP          *string
	podNamespace   *string
	deploymentName *string
}

// RegisterPeerFlags registers peer-discovery command-line flags
// Returns a PeerFlagPointers that should be converted to PeerConfig after
// flag.Parse() is called
func RegisterPeerFlags() *PeerFlagPointers {
	return &PeerFlagPointers{
		podIP: flag.String("pod-ip",
			utils.GetEnv("POD_IP", "127.0.0.1"),
			"IP other pods reach this pod at"),
		podNamespace: flag.String("pod-namespace",
			utils.GetEnv("POD_NAMESPACE", "default"),
			"Namespace this deployment runs in"),
		deploymentName: flag.String("deployment-name",
			utils.GetEnv("DEPLOYMENT_NAME", "notify-server"),
			"Deployment name used as the app label of peer pods"),
	}
}

// ToPeerConfig converts flag pointers to PeerConfig
// This should be called after flag.Parse()
func (p *PeerFlagPointers) ToPeerConfig(grpcPort int) PeerConfig {
	return PeerConfig{
		PodIP:          *p.podIP,
		PodNamespace:   *p.podNamespace,
		DeploymentName: *p.deploymentName,
		GRPCPort:       grpcPort,
	}
}
