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

package client

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ClientClient is the client API for Client.
type ClientClient interface {
	GetBackstageClient(ctx context.Context, in *FrontendClient, opts ...grpc.CallOption) (*BackstageClient, error)
	GetFrontendClient(ctx context.Context, in *BackstageClient, opts ...grpc.CallOption) (*FrontendClient, error)
}

type clientClient struct {
	cc grpc.ClientConnInterface
}

// NewClientClient returns a client bound to cc.
func NewClientClient(cc grpc.ClientConnInterface) ClientClient {
	return &clientClient{cc}
}

func (c *clientClient) GetBackstageClient(ctx context.Context, in *FrontendClient, opts ...grpc.CallOption) (*BackstageClient, error) {
	out := new(BackstageClient)
	err := c.cc.Invoke(ctx, "/client.Client/GetBackstageClient", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *clientClient) GetFrontendClient(ctx context.Context, in *BackstageClient, opts ...grpc.CallOption) (*FrontendClient, error) {
	out := new(FrontendClient)
	err := c.cc.Invoke(ctx, "/client.Client/GetFrontendClient", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ClientServer is the server API for Client.
// All implementations must embed UnimplementedClientServer.
type ClientServer interface {
	GetBackstageClient(context.Context, *FrontendClient) (*BackstageClient, error)
	GetFrontendClient(context.Context, *BackstageClient) (*FrontendClient, error)
	mustEmbedUnimplementedClientServer()
}

// UnimplementedClientServer must be embedded to have forward compatible
// implementations.
type UnimplementedClientServer struct{}

func (UnimplementedClientServer) GetBackstageClient(context.Context, *FrontendClient) (*BackstageClient, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetBackstageClient not implemented")
}
func (UnimplementedClientServer) GetFrontendClient(context.Context, *BackstageClient) (*FrontendClient, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetFrontendClient not implemented")
}
func (UnimplementedClientServer) mustEmbedUnimplementedClientServer() {}

// RegisterClientServer registers srv on s.
func RegisterClientServer(s grpc.ServiceRegistrar, srv ClientServer) {
	s.RegisterService(&Client_ServiceDesc, srv)
}

func _Client_GetBackstageClient_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(FrontendClient)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClientServer).GetBackstageClient(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/client.Client/GetBackstageClient",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ClientServer).GetBackstageClient(ctx, req.(*FrontendClient))
	}
	return interceptor(ctx, in, info, handler)
}

func _Client_GetFrontendClient_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BackstageClient)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClientServer).GetFrontendClient(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/client.Client/GetFrontendClient",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ClientServer).GetFrontendClient(ctx, req.(*BackstageClient))
	}
	return interceptor(ctx, in, info, handler)
}

// Client_ServiceDesc is the grpc.ServiceDesc for Client. It is only
// intended for use with grpc.RegisterService.
var Client_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "client.Client",
	HandlerType: (*ClientServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetBackstageClient",
			Handler:    _Client_GetBackstageClient_Handler,
		},
		{
			MethodName: "GetFrontendClient",
			Handler:    _Client_GetFrontendClient_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "client.proto",
}
