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

package frontendnotify

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FrontendNotifyServiceClient is the client API for FrontendNotifyService.
type FrontendNotifyServiceClient interface {
	CreateConnection(ctx context.Context, in *ConnectionRequest, opts ...grpc.CallOption) (FrontendNotifyService_CreateConnectionClient, error)
	CloseConnection(ctx context.Context, in *ConnectionRequest, opts ...grpc.CallOption) (*Empty, error)
	SystemToFrontendUser(ctx context.Context, in *SendRequest, opts ...grpc.CallOption) (*Empty, error)
	SendMessageInApp(ctx context.Context, in *SendMessageInAppRequest, opts ...grpc.CallOption) (*Empty, error)
	GetNotifyRecords(ctx context.Context, in *GetNotifyRecordRequest, opts ...grpc.CallOption) (*GetNotifyRecordResponse, error)
	UpdateNotifyRecords(ctx context.Context, in *UpdateNotifyRecordRequest, opts ...grpc.CallOption) (*UpdateNotifyRecordResponse, error)
	GetUnreadNotifyCount(ctx context.Context, in *GetUnreadNotifyCountRequest, opts ...grpc.CallOption) (*GetUnreadNotifyCountResponse, error)
	AllRead(ctx context.Context, in *AllReadRequest, opts ...grpc.CallOption) (*Empty, error)
	GetNotifyById(ctx context.Context, in *GetNotifyByIdRequest, opts ...grpc.CallOption) (*Notify, error)
	ForwardNotify(ctx context.Context, in *ForwardNotifyRequest, opts ...grpc.CallOption) (*Empty, error)
}

type frontendNotifyServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewFrontendNotifyServiceClient returns a client bound to cc.
func NewFrontendNotifyServiceClient(cc grpc.ClientConnInterface) FrontendNotifyServiceClient {
	return &frontendNotifyServiceClient{cc}
}

func (c *frontendNotifyServiceClient) CreateConnection(ctx context.Context, in *ConnectionRequest, opts ...grpc.CallOption) (FrontendNotifyService_CreateConnectionClient, error) {
	stream, err := c.cc.NewStream(ctx, &FrontendNotifyService_ServiceDesc.Streams[0], "/frontend_notify.FrontendNotifyService/CreateConnection", opts...)
	if err != nil {
		return nil, err
	}
	x := &frontendNotifyServiceCreateConnectionClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type FrontendNotifyService_CreateConnectionClient interface {
	Recv() (*Receiver, error)
	grpc.ClientStream
}

type frontendNotifyServiceCreateConnectionClient struct {
	grpc.ClientStream
}

func (x *frontendNotifyServiceCreateConnectionClient) Recv() (*Receiver, error) {
	m := new(Receiver)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *frontendNotifyServiceClient) CloseConnection(ctx context.Context, in *ConnectionRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	err := c.cc.Invoke(ctx, "/frontend_notify.FrontendNotifyService/CloseConnection", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *frontendNotifyServiceClient) SystemToFrontendUser(ctx context.Context, in *SendRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	err := c.cc.Invoke(ctx, "/frontend_notify.FrontendNotifyService/SystemToFrontendUser", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *frontendNotifyServiceClient) SendMessageInApp(ctx context.Context, in *SendMessageInAppRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	err := c.cc.Invoke(ctx, "/frontend_notify.FrontendNotifyService/SendMessageInApp", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *frontendNotifyServiceClient) GetNotifyRecords(ctx context.Context, in *GetNotifyRecordRequest, opts ...grpc.CallOption) (*GetNotifyRecordResponse, error) {
	out := new(GetNotifyRecordResponse)
	err := c.cc.Invoke(ctx, "/frontend_notify.FrontendNotifyService/GetNotifyRecords", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *frontendNotifyServiceClient) UpdateNotifyRecords(ctx context.Context, in *UpdateNotifyRecordRequest, opts ...grpc.CallOption) (*UpdateNotifyRecordResponse, error) {
	out := new(UpdateNotifyRecordResponse)
	err := c.cc.Invoke(ctx, "/frontend_notify.FrontendNotifyService/UpdateNotifyRecords", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *frontendNotifyServiceClient) GetUnreadNotifyCount(ctx context.Context, in *GetUnreadNotifyCountRequest, opts ...grpc.CallOption) (*GetUnreadNotifyCountResponse, error) {
	out := new(GetUnreadNotifyCountResponse)
	err := c.cc.Invoke(ctx, "/frontend_notify.FrontendNotifyService/GetUnreadNotifyCount", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *frontendNotifyServiceClient) AllRead(ctx context.Context, in *AllReadRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	err := c.cc.Invoke(ctx, "/frontend_notify.FrontendNotifyService/AllRead", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *frontendNotifyServiceClient) GetNotifyById(ctx context.Context, in *GetNotifyByIdRequest, opts ...grpc.CallOption) (*Notify, error) {
	out := new(Notify)
	err := c.cc.Invoke(ctx, "/frontend_notify.FrontendNotifyService/GetNotifyById", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *frontendNotifyServiceClient) ForwardNotify(ctx context.Context, in *ForwardNotifyRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	err := c.cc.Invoke(ctx, "/frontend_notify.FrontendNotifyService/ForwardNotify", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FrontendNotifyServiceServer is the server API for FrontendNotifyService.
// All implementations must embed UnimplementedFrontendNotifyServiceServer.
type FrontendNotifyServiceServer interface {
	CreateConnection(*ConnectionRequest, FrontendNotifyService_CreateConnectionServer) error
	CloseConnection(context.Context, *ConnectionRequest) (*Empty, error)
	SystemToFrontendUser(context.Context, *SendRequest) (*Empty, error)
	SendMessageInApp(context.Context, *SendMessageInAppRequest) (*Empty, error)
	GetNotifyRecords(context.Context, *GetNotifyRecordRequest) (*GetNotifyRecordResponse, error)
	UpdateNotifyRecords(context.Context, *UpdateNotifyRecordRequest) (*UpdateNotifyRecordResponse, error)
	GetUnreadNotifyCount(context.Context, *GetUnreadNotifyCountRequest) (*GetUnreadNotifyCountResponse, error)
	AllRead(context.Context, *AllReadRequest) (*Empty, error)
	GetNotifyById(context.Context, *GetNotifyByIdRequest) (*Notify, error)
	ForwardNotify(context.Context, *ForwardNotifyRequest) (*Empty, error)
	mustEmbedUnimplementedFrontendNotifyServiceServer()
}

// UnimplementedFrontendNotifyServiceServer must be embedded to have
// forward compatible implementations.
type UnimplementedFrontendNotifyServiceServer struct{}

func (UnimplementedFrontendNotifyServiceServer) CreateConnection(*ConnectionRequest, FrontendNotifyService_CreateConnectionServer) error {
	return status.Errorf(codes.Unimplemented, "method CreateConnection not implemented")
}
func (UnimplementedFrontendNotifyServiceServer) CloseConnection(context.Context, *ConnectionRequest) (*Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CloseConnection not implemented")
}
func (UnimplementedFrontendNotifyServiceServer) SystemToFrontendUser(context.Context, *SendRequest) (*Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SystemToFrontendUser not implemented")
}
func (UnimplementedFrontendNotifyServiceServer) SendMessageInApp(context.Context, *SendMessageInAppRequest) (*Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SendMessageInApp not implemented")
}
func (UnimplementedFrontendNotifyServiceServer) GetNotifyRecords(context.Context, *GetNotifyRecordRequest) (*GetNotifyRecordResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetNotifyRecords not implemented")
}
func (UnimplementedFrontendNotifyServiceServer) UpdateNotifyRecords(context.Context, *UpdateNotifyRecordRequest) (*UpdateNotifyRecordResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateNotifyRecords not implemented")
}
func (UnimplementedFrontendNotifyServiceServer) GetUnreadNotifyCount(context.Context, *GetUnreadNotifyCountRequest) (*GetUnreadNotifyCountResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetUnreadNotifyCount not implemented")
}
func (UnimplementedFrontendNotifyServiceServer) AllRead(context.Context, *AllReadRequest) (*Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AllRead not implemented")
}
func (UnimplementedFrontendNotifyServiceServer) GetNotifyById(context.Context, *GetNotifyByIdRequest) (*Notify, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetNotifyById not implemented")
}
func (UnimplementedFrontendNotifyServiceServer) ForwardNotify(context.Context, *ForwardNotifyRequest) (*Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ForwardNotify not implemented")
}
func (UnimplementedFrontendNotifyServiceServer) mustEmbedUnimplementedFrontendNotifyServiceServer() {}

// RegisterFrontendNotifyServiceServer registers srv on s.
func RegisterFrontendNotifyServiceServer(s grpc.ServiceRegistrar, srv FrontendNotifyServiceServer) {
	s.RegisterService(&FrontendNotifyService_ServiceDesc, srv)
}

func _FrontendNotifyService_CreateConnection_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(ConnectionRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(FrontendNotifyServiceServer).CreateConnection(m, &frontendNotifyServiceCreateConnectionServer{stream})
}

type FrontendNotifyService_CreateConnectionServer interface {
	Send(*Receiver) error
	grpc.ServerStream
}

type frontendNotifyServiceCreateConnectionServer struct {
	grpc.ServerStream
}

func (x *frontendNotifyServiceCreateConnectionServer) Send(m *Receiver) error {
	return x.ServerStream.SendMsg(m)
}

func _FrontendNotifyService_CloseConnection_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ConnectionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FrontendNotifyServiceServer).CloseConnection(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/frontend_notify.FrontendNotifyService/CloseConnection",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FrontendNotifyServiceServer).CloseConnection(ctx, req.(*ConnectionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FrontendNotifyService_SystemToFrontendUser_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SendRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FrontendNotifyServiceServer).SystemToFrontendUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/frontend_notify.FrontendNotifyService/SystemToFrontendUser",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FrontendNotifyServiceServer).SystemToFrontendUser(ctx, req.(*SendRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FrontendNotifyService_SendMessageInApp_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SendMessageInAppRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FrontendNotifyServiceServer).SendMessageInApp(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/frontend_notify.FrontendNotifyService/SendMessageInApp",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FrontendNotifyServiceServer).SendMessageInApp(ctx, req.(*SendMessageInAppRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FrontendNotifyService_GetNotifyRecords_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetNotifyRecordRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FrontendNotifyServiceServer).GetNotifyRecords(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/frontend_notify.FrontendNotifyService/GetNotifyRecords",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FrontendNotifyServiceServer).GetNotifyRecords(ctx, req.(*GetNotifyRecordRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FrontendNotifyService_UpdateNotifyRecords_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateNotifyRecordRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FrontendNotifyServiceServer).UpdateNotifyRecords(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/frontend_notify.FrontendNotifyService/UpdateNotifyRecords",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FrontendNotifyServiceServer).UpdateNotifyRecords(ctx, req.(*UpdateNotifyRecordRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FrontendNotifyService_GetUnreadNotifyCount_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetUnreadNotifyCountRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FrontendNotifyServiceServer).GetUnreadNotifyCount(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/frontend_notify.FrontendNotifyService/GetUnreadNotifyCount",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FrontendNotifyServiceServer).GetUnreadNotifyCount(ctx, req.(*GetUnreadNotifyCountRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FrontendNotifyService_AllRead_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AllReadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FrontendNotifyServiceServer).AllRead(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/frontend_notify.FrontendNotifyService/AllRead",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FrontendNotifyServiceServer).AllRead(ctx, req.(*AllReadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FrontendNotifyService_GetNotifyById_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetNotifyByIdRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FrontendNotifyServiceServer).GetNotifyById(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/frontend_notify.FrontendNotifyService/GetNotifyById",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FrontendNotifyServiceServer).GetNotifyById(ctx, req.(*GetNotifyByIdRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FrontendNotifyService_ForwardNotify_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ForwardNotifyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FrontendNotifyServiceServer).ForwardNotify(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/frontend_notify.FrontendNotifyService/ForwardNotify",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FrontendNotifyServiceServer).ForwardNotify(ctx, req.(*ForwardNotifyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// FrontendNotifyService_ServiceDesc is the grpc.ServiceDesc for
// FrontendNotifyService. It is only intended for use with grpc.RegisterService.
var FrontendNotifyService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "frontend_notify.FrontendNotifyService",
	HandlerType: (*FrontendNotifyServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CloseConnection",
			Handler:    _FrontendNotifyService_CloseConnection_Handler,
		},
		{
			MethodName: "SystemToFrontendUser",
			Handler:    _FrontendNotifyService_SystemToFrontendUser_Handler,
		},
		{
			MethodName: "SendMessageInApp",
			Handler:    _FrontendNotifyService_SendMessageInApp_Handler,
		},
		{
			MethodName: "GetNotifyRecords",
			Handler:    _FrontendNotifyService_GetNotifyRecords_Handler,
		},
		{
			MethodName: "UpdateNotifyRecords",
			Handler:    _FrontendNotifyService_UpdateNotifyRecords_Handler,
		},
		{
			MethodName: "GetUnreadNotifyCount",
			Handler:    _FrontendNotifyService_GetUnreadNotifyCount_Handler,
		},
		{
			MethodName: "AllRead",
			Handler:    _FrontendNotifyService_AllRead_Handler,
		},
		{
			MethodName: "GetNotifyById",
			Handler:    _FrontendNotifyService_GetNotifyById_Handler,
		},
		{
			MethodName: "ForwardNotify",
			Handler:    _FrontendNotifyService_ForwardNotify_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "CreateConnection",
			Handler:       _FrontendNotifyService_CreateConnection_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "frontend_notify.proto",
}
