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

package backstagenotify

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// BackStageNotifyServiceClient is the client API for BackStageNotifyService.
type BackStageNotifyServiceClient interface {
	CreateConnection(ctx context.Context, in *ConnectionRequest, opts ...grpc.CallOption) (BackStageNotifyService_CreateConnectionClient, error)
	CloseConnection(ctx context.Context, in *CloseRequest, opts ...grpc.CallOption) (*Empty, error)
	SystemToBackstageUser(ctx context.Context, in *SendRequest, opts ...grpc.CallOption) (*Empty, error)
	GetNotifyRecords(ctx context.Context, in *GetNotifyRecordRequest, opts ...grpc.CallOption) (*GetNotifyRecordResponse, error)
	UpdateNotifyRecords(ctx context.Context, in *UpdateNotifyRecordRequest, opts ...grpc.CallOption) (*UpdateNotifyRecordResponse, error)
	GetUnreadNotifyCount(ctx context.Context, in *GetUnreadNotifyCountRequest, opts ...grpc.CallOption) (*GetUnreadNotifyCountResponse, error)
	AllRead(ctx context.Context, in *AllReadRequest, opts ...grpc.CallOption) (*Empty, error)
	GetNotifyById(ctx context.Context, in *GetNotifyByIdRequest, opts ...grpc.CallOption) (*Notify, error)
	GetUserNotifyRecords(ctx context.Context, in *GetUserNotifyRecordRequest, opts ...grpc.CallOption) (*GetUserNotifyRecordResponse, error)
	BackstageSendToUser(ctx context.Context, in *BackstageSendToUserRequest, opts ...grpc.CallOption) (*Empty, error)
	GetClientEventSummary(ctx context.Context, in *GetClientEventSummaryRequest, opts ...grpc.CallOption) (*ClientEventSummaryList, error)
	GetClientTemplates(ctx context.Context, in *GetClientTemplatesRequest, opts ...grpc.CallOption) (*ClientTemplateList, error)
	GetNotifyTaskList(ctx context.Context, in *GetNotifyTaskListRequest, opts ...grpc.CallOption) (*NotifyTaskList, error)
	GetNotifyTaskDetails(ctx context.Context, in *GetNotifyTaskDetailsRequest, opts ...grpc.CallOption) (*NotifyTaskDetailList, error)
	GetClientEvent(ctx context.Context, in *GetClientEventRequest, opts ...grpc.CallOption) (*ClientEventList, error)
	UpdateClientEvent(ctx context.Context, in *UpdateClientEventRequest, opts ...grpc.CallOption) (*Empty, error)
	DeleteClientEvent(ctx context.Context, in *DeleteClientEventRequest, opts ...grpc.CallOption) (*Empty, error)
	CreateClientEvent(ctx context.Context, in *CreateClientEventRequest, opts ...grpc.CallOption) (*Empty, error)
	ForwardNotify(ctx context.Context, in *ForwardNotifyRequest, opts ...grpc.CallOption) (*Empty, error)
}

type backStageNotifyServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewBackStageNotifyServiceClient returns a client bound to cc.
func NewBackStageNotifyServiceClient(cc grpc.ClientConnInterface) BackStageNotifyServiceClient {
	return &backStageNotifyServiceClient{cc}
}

func (c *backStageNotifyServiceClient) CreateConnection(ctx context.Context, in *ConnectionRequest, opts ...grpc.CallOption) (BackStageNotifyService_CreateConnectionClient, error) {
	stream, err := c.cc.NewStream(ctx, &BackStageNotifyService_ServiceDesc.Streams[0], "/backstage_notify.BackStageNotifyService/CreateConnection", opts...)
	if err != nil {
		return nil, err
	}
	x := &backStageNotifyServiceCreateConnectionClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type BackStageNotifyService_CreateConnectionClient interface {
	Recv() (*Receiver, error)
	grpc.ClientStream
}

type backStageNotifyServiceCreateConnectionClient struct {
	grpc.ClientStream
}

func (x *backStageNotifyServiceCreateConnectionClient) Recv() (*Receiver, error) {
	m := new(Receiver)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *backStageNotifyServiceClient) CloseConnection(ctx context.Context, in *CloseRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	err := c.cc.Invoke(ctx, "/backstage_notify.BackStageNotifyService/CloseConnection", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *backStageNotifyServiceClient) SystemToBackstageUser(ctx context.Context, in *SendRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	err := c.cc.Invoke(ctx, "/backstage_notify.BackStageNotifyService/SystemToBackstageUser", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *backStageNotifyServiceClient) GetNotifyRecords(ctx context.Context, in *GetNotifyRecordRequest, opts ...grpc.CallOption) (*GetNotifyRecordResponse, error) {
	out := new(GetNotifyRecordResponse)
	err := c.cc.Invoke(ctx, "/backstage_notify.BackStageNotifyService/GetNotifyRecords", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *backStageNotifyServiceClient) UpdateNotifyRecords(ctx context.Context, in *UpdateNotifyRecordRequest, opts ...grpc.CallOption) (*UpdateNotifyRecordResponse, error) {
	out := new(UpdateNotifyRecordResponse)
	err := c.cc.Invoke(ctx, "/backstage_notify.BackStageNotifyService/UpdateNotifyRecords", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *backStageNotifyServiceClient) GetUnreadNotifyCount(ctx context.Context, in *GetUnreadNotifyCountRequest, opts ...grpc.CallOption) (*GetUnreadNotifyCountResponse, error) {
	out := new(GetUnreadNotifyCountResponse)
	err := c.cc.Invoke(ctx, "/backstage_notify.BackStageNotifyService/GetUnreadNotifyCount", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *backStageNotifyServiceClient) AllRead(ctx context.Context, in *AllReadRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	err := c.cc.Invoke(ctx, "/backstage_notify.BackStageNotifyService/AllRead", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *backStageNotifyServiceClient) GetNotifyById(ctx context.Context, in *GetNotifyByIdRequest, opts ...grpc.CallOption) (*Notify, error) {
	out := new(Notify)
	err := c.cc.Invoke(ctx, "/backstage_notify.BackStageNotifyService/GetNotifyById", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *backStageNotifyServiceClient) GetUserNotifyRecords(ctx context.Context, in *GetUserNotifyRecordRequest, opts ...grpc.CallOption) (*GetUserNotifyRecordResponse, error) {
	out := new(GetUserNotifyRecordResponse)
	err := c.cc.Invoke(ctx, "/backstage_notify.BackStageNotifyService/GetUserNotifyRecords", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *backStageNotifyServiceClient) BackstageSendToUser(ctx context.Context, in *BackstageSendToUserRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	err := c.cc.Invoke(ctx, "/backstage_notify.BackStageNotifyService/BackstageSendToUser", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *backStageNotifyServiceClient) GetClientEventSummary(ctx context.Context, in *GetClientEventSummaryRequest, opts ...grpc.CallOption) (*ClientEventSummaryList, error) {
	out := new(ClientEventSummaryList)
	err := c.cc.Invoke(ctx, "/backstage_notify.BackStageNotifyService/GetClientEventSummary", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *backStageNotifyServiceClient) GetClientTemplates(ctx context.Context, in *GetClientTemplatesRequest, opts ...grpc.CallOption) (*ClientTemplateList, error) {
	out := new(ClientTemplateList)
	err := c.cc.Invoke(ctx, "/backstage_notify.BackStageNotifyService/GetClientTemplates", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *backStageNotifyServiceClient) GetNotifyTaskList(ctx context.Context, in *GetNotifyTaskListRequest, opts ...grpc.CallOption) (*NotifyTaskList, error) {
	out := new(NotifyTaskList)
	err := c.cc.Invoke(ctx, "/backstage_notify.BackStageNotifyService/GetNotifyTaskList", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *backStageNotifyServiceClient) GetNotifyTaskDetails(ctx context.Context, in *GetNotifyTaskDetailsRequest, opts ...grpc.CallOption) (*NotifyTaskDetailList, error) {
	out := new(NotifyTaskDetailList)
	err := c.cc.Invoke(ctx, "/backstage_notify.BackStageNotifyService/GetNotifyTaskDetails", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *backStageNotifyServiceClient) GetClientEvent(ctx context.Context, in *GetClientEventRequest, opts ...grpc.CallOption) (*ClientEventList, error) {
	out := new(ClientEventList)
	err := c.cc.Invoke(ctx, "/backstage_notify.BackStageNotifyService/GetClientEvent", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *backStageNotifyServiceClient) UpdateClientEvent(ctx context.Context, in *UpdateClientEventRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	err := c.cc.Invoke(ctx, "/backstage_notify.BackStageNotifyService/UpdateClientEvent", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *backStageNotifyServiceClient) DeleteClientEvent(ctx context.Context, in *DeleteClientEventRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	err := c.cc.Invoke(ctx, "/backstage_notify.BackStageNotifyService/DeleteClientEvent", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *backStageNotifyServiceClient) CreateClientEvent(ctx context.Context, in *CreateClientEventRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	err := c.cc.Invoke(ctx, "/backstage_notify.BackStageNotifyService/CreateClientEvent", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *backStageNotifyServiceClient) ForwardNotify(ctx context.Context, in *ForwardNotifyRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	err := c.cc.Invoke(ctx, "/backstage_notify.BackStageNotifyService/ForwardNotify", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// BackStageNotifyServiceServer is the server API for BackStageNotifyService.
// All implementations must embed UnimplementedBackStageNotifyServiceServer.
type BackStageNotifyServiceServer interface {
	CreateConnection(*ConnectionRequest, BackStageNotifyService_CreateConnectionServer) error
	CloseConnection(context.Context, *CloseRequest) (*Empty, error)
	SystemToBackstageUser(context.Context, *SendRequest) (*Empty, error)
	GetNotifyRecords(context.Context, *GetNotifyRecordRequest) (*GetNotifyRecordResponse, error)
	UpdateNotifyRecords(context.Context, *UpdateNotifyRecordRequest) (*UpdateNotifyRecordResponse, error)
	GetUnreadNotifyCount(context.Context, *GetUnreadNotifyCountRequest) (*GetUnreadNotifyCountResponse, error)
	AllRead(context.Context, *AllReadRequest) (*Empty, error)
	GetNotifyById(context.Context, *GetNotifyByIdRequest) (*Notify, error)
	GetUserNotifyRecords(context.Context, *GetUserNotifyRecordRequest) (*GetUserNotifyRecordResponse, error)
	BackstageSendToUser(context.Context, *BackstageSendToUserRequest) (*Empty, error)
	GetClientEventSummary(context.Context, *GetClientEventSummaryRequest) (*ClientEventSummaryList, error)
	GetClientTemplates(context.Context, *GetClientTemplatesRequest) (*ClientTemplateList, error)
	GetNotifyTaskList(context.Context, *GetNotifyTaskListRequest) (*NotifyTaskList, error)
	GetNotifyTaskDetails(context.Context, *GetNotifyTaskDetailsRequest) (*NotifyTaskDetailList, error)
	GetClientEvent(context.Context, *GetClientEventRequest) (*ClientEventList, error)
	UpdateClientEvent(context.Context, *UpdateClientEventRequest) (*Empty, error)
	DeleteClientEvent(context.Context, *DeleteClientEventRequest) (*Empty, error)
	CreateClientEvent(context.Context, *CreateClientEventRequest) (*Empty, error)
	ForwardNotify(context.Context, *ForwardNotifyRequest) (*Empty, error)
	mustEmbedUnimplementedBackStageNotifyServiceServer()
}

// UnimplementedBackStageNotifyServiceServer must be embedded to have
// forward compatible implementations.
type UnimplementedBackStageNotifyServiceServer struct{}

func (UnimplementedBackStageNotifyServiceServer) CreateConnection(*ConnectionRequest, BackStageNotifyService_CreateConnectionServer) error {
	return status.Errorf(codes.Unimplemented, "method CreateConnection not implemented")
}
func (UnimplementedBackStageNotifyServiceServer) CloseConnection(context.Context, *CloseRequest) (*Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CloseConnection not implemented")
}
func (UnimplementedBackStageNotifyServiceServer) SystemToBackstageUser(context.Context, *SendRequest) (*Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SystemToBackstageUser not implemented")
}
func (UnimplementedBackStageNotifyServiceServer) GetNotifyRecords(context.Context, *GetNotifyRecordRequest) (*GetNotifyRecordResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetNotifyRecords not implemented")
}
func (UnimplementedBackStageNotifyServiceServer) UpdateNotifyRecords(context.Context, *UpdateNotifyRecordRequest) (*UpdateNotifyRecordResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateNotifyRecords not implemented")
}
func (UnimplementedBackStageNotifyServiceServer) GetUnreadNotifyCount(context.Context, *GetUnreadNotifyCountRequest) (*GetUnreadNotifyCountResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetUnreadNotifyCount not implemented")
}
func (UnimplementedBackStageNotifyServiceServer) AllRead(context.Context, *AllReadRequest) (*Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AllRead not implemented")
}
func (UnimplementedBackStageNotifyServiceServer) GetNotifyById(context.Context, *GetNotifyByIdRequest) (*Notify, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetNotifyById not implemented")
}
func (UnimplementedBackStageNotifyServiceServer) GetUserNotifyRecords(context.Context, *GetUserNotifyRecordRequest) (*GetUserNotifyRecordResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetUserNotifyRecords not implemented")
}
func (UnimplementedBackStageNotifyServiceServer) BackstageSendToUser(context.Context, *BackstageSendToUserRequest) (*Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method BackstageSendToUser not implemented")
}
func (UnimplementedBackStageNotifyServiceServer) GetClientEventSummary(context.Context, *GetClientEventSummaryRequest) (*ClientEventSummaryList, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetClientEventSummary not implemented")
}
func (UnimplementedBackStageNotifyServiceServer) GetClientTemplates(context.Context, *GetClientTemplatesRequest) (*ClientTemplateList, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetClientTemplates not implemented")
}
func (UnimplementedBackStageNotifyServiceServer) GetNotifyTaskList(context.Context, *GetNotifyTaskListRequest) (*NotifyTaskList, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetNotifyTaskList not implemented")
}
func (UnimplementedBackStageNotifyServiceServer) GetNotifyTaskDetails(context.Context, *GetNotifyTaskDetailsRequest) (*NotifyTaskDetailList, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetNotifyTaskDetails not implemented")
}
func (UnimplementedBackStageNotifyServiceServer) GetClientEvent(context.Context, *GetClientEventRequest) (*ClientEventList, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetClientEvent not implemented")
}
func (UnimplementedBackStageNotifyServiceServer) UpdateClientEvent(context.Context, *UpdateClientEventRequest) (*Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateClientEvent not implemented")
}
func (UnimplementedBackStageNotifyServiceServer) DeleteClientEvent(context.Context, *DeleteClientEventRequest) (*Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteClientEvent not implemented")
}
func (UnimplementedBackStageNotifyServiceServer) CreateClientEvent(context.Context, *CreateClientEventRequest) (*Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateClientEvent not implemented")
}
func (UnimplementedBackStageNotifyServiceServer) ForwardNotify(context.Context, *ForwardNotifyRequest) (*Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ForwardNotify not implemented")
}
func (UnimplementedBackStageNotifyServiceServer) mustEmbedUnimplementedBackStageNotifyServiceServer() {
}

// RegisterBackStageNotifyServiceServer registers srv on s.
func RegisterBackStageNotifyServiceServer(s grpc.ServiceRegistrar, srv BackStageNotifyServiceServer) {
	s.RegisterService(&BackStageNotifyService_ServiceDesc, srv)
}

func _BackStageNotifyService_CreateConnection_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(ConnectionRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(BackStageNotifyServiceServer).CreateConnection(m, &backStageNotifyServiceCreateConnectionServer{stream})
}

type BackStageNotifyService_CreateConnectionServer interface {
	Send(*Receiver) error
	grpc.ServerStream
}

type backStageNotifyServiceCreateConnectionServer struct {
	grpc.ServerStream
}

func (x *backStageNotifyServiceCreateConnectionServer) Send(m *Receiver) error {
	return x.ServerStream.SendMsg(m)
}

func _BackStageNotifyService_CloseConnection_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CloseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BackStageNotifyServiceServer).CloseConnection(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/backstage_notify.BackStageNotifyService/CloseConnection",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BackStageNotifyServiceServer).CloseConnection(ctx, req.(*CloseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BackStageNotifyService_SystemToBackstageUser_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SendRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BackStageNotifyServiceServer).SystemToBackstageUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/backstage_notify.BackStageNotifyService/SystemToBackstageUser",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BackStageNotifyServiceServer).SystemToBackstageUser(ctx, req.(*SendRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BackStageNotifyService_GetNotifyRecords_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetNotifyRecordRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BackStageNotifyServiceServer).GetNotifyRecords(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/backstage_notify.BackStageNotifyService/GetNotifyRecords",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BackStageNotifyServiceServer).GetNotifyRecords(ctx, req.(*GetNotifyRecordRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BackStageNotifyService_UpdateNotifyRecords_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateNotifyRecordRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BackStageNotifyServiceServer).UpdateNotifyRecords(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/backstage_notify.BackStageNotifyService/UpdateNotifyRecords",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BackStageNotifyServiceServer).UpdateNotifyRecords(ctx, req.(*UpdateNotifyRecordRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BackStageNotifyService_GetUnreadNotifyCount_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetUnreadNotifyCountRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BackStageNotifyServiceServer).GetUnreadNotifyCount(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/backstage_notify.BackStageNotifyService/GetUnreadNotifyCount",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BackStageNotifyServiceServer).GetUnreadNotifyCount(ctx, req.(*GetUnreadNotifyCountRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BackStageNotifyService_AllRead_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AllReadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BackStageNotifyServiceServer).AllRead(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/backstage_notify.BackStageNotifyService/AllRead",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BackStageNotifyServiceServer).AllRead(ctx, req.(*AllReadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BackStageNotifyService_GetNotifyById_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetNotifyByIdRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BackStageNotifyServiceServer).GetNotifyById(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/backstage_notify.BackStageNotifyService/GetNotifyById",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BackStageNotifyServiceServer).GetNotifyById(ctx, req.(*GetNotifyByIdRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BackStageNotifyService_GetUserNotifyRecords_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetUserNotifyRecordRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BackStageNotifyServiceServer).GetUserNotifyRecords(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/backstage_notify.BackStageNotifyService/GetUserNotifyRecords",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BackStageNotifyServiceServer).GetUserNotifyRecords(ctx, req.(*GetUserNotifyRecordRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BackStageNotifyService_BackstageSendToUser_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BackstageSendToUserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BackStageNotifyServiceServer).BackstageSendToUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/backstage_notify.BackStageNotifyService/BackstageSendToUser",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BackStageNotifyServiceServer).BackstageSendToUser(ctx, req.(*BackstageSendToUserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BackStageNotifyService_GetClientEventSummary_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetClientEventSummaryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BackStageNotifyServiceServer).GetClientEventSummary(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/backstage_notify.BackStageNotifyService/GetClientEventSummary",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BackStageNotifyServiceServer).GetClientEventSummary(ctx, req.(*GetClientEventSummaryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BackStageNotifyService_GetClientTemplates_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetClientTemplatesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BackStageNotifyServiceServer).GetClientTemplates(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/backstage_notify.BackStageNotifyService/GetClientTemplates",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BackStageNotifyServiceServer).GetClientTemplates(ctx, req.(*GetClientTemplatesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BackStageNotifyService_GetNotifyTaskList_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetNotifyTaskListRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BackStageNotifyServiceServer).GetNotifyTaskList(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/backstage_notify.BackStageNotifyService/GetNotifyTaskList",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BackStageNotifyServiceServer).GetNotifyTaskList(ctx, req.(*GetNotifyTaskListRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BackStageNotifyService_GetNotifyTaskDetails_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetNotifyTaskDetailsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BackStageNotifyServiceServer).GetNotifyTaskDetails(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/backstage_notify.BackStageNotifyService/GetNotifyTaskDetails",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BackStageNotifyServiceServer).GetNotifyTaskDetails(ctx, req.(*GetNotifyTaskDetailsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BackStageNotifyService_GetClientEvent_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetClientEventRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BackStageNotifyServiceServer).GetClientEvent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/backstage_notify.BackStageNotifyService/GetClientEvent",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BackStageNotifyServiceServer).GetClientEvent(ctx, req.(*GetClientEventRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BackStageNotifyService_UpdateClientEvent_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateClientEventRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BackStageNotifyServiceServer).UpdateClientEvent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/backstage_notify.BackStageNotifyService/UpdateClientEvent",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BackStageNotifyServiceServer).UpdateClientEvent(ctx, req.(*UpdateClientEventRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BackStageNotifyService_DeleteClientEvent_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteClientEventRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BackStageNotifyServiceServer).DeleteClientEvent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/backstage_notify.BackStageNotifyService/DeleteClientEvent",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BackStageNotifyServiceServer).DeleteClientEvent(ctx, req.(*DeleteClientEventRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BackStageNotifyService_CreateClientEvent_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateClientEventRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BackStageNotifyServiceServer).CreateClientEvent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/backstage_notify.BackStageNotifyService/CreateClientEvent",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BackStageNotifyServiceServer).CreateClientEvent(ctx, req.(*CreateClientEventRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BackStageNotifyService_ForwardNotify_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ForwardNotifyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BackStageNotifyServiceServer).ForwardNotify(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/backstage_notify.BackStageNotifyService/ForwardNotify",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BackStageNotifyServiceServer).ForwardNotify(ctx, req.(*ForwardNotifyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// BackStageNotifyService_ServiceDesc is the grpc.ServiceDesc for
// BackStageNotifyService. It is only intended for use with grpc.RegisterService.
var BackStageNotifyService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "backstage_notify.BackStageNotifyService",
	HandlerType: (*BackStageNotifyServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CloseConnection",
			Handler:    _BackStageNotifyService_CloseConnection_Handler,
		},
		{
			MethodName: "SystemToBackstageUser",
			Handler:    _BackStageNotifyService_SystemToBackstageUser_Handler,
		},
		{
			MethodName: "GetNotifyRecords",
			Handler:    _BackStageNotifyService_GetNotifyRecords_Handler,
		},
		{
			MethodName: "UpdateNotifyRecords",
			Handler:    _BackStageNotifyService_UpdateNotifyRecords_Handler,
		},
		{
			MethodName: "GetUnreadNotifyCount",
			Handler:    _BackStageNotifyService_GetUnreadNotifyCount_Handler,
		},
		{
			MethodName: "AllRead",
			Handler:    _BackStageNotifyService_AllRead_Handler,
		},
		{
			MethodName: "GetNotifyById",
			Handler:    _BackStageNotifyService_GetNotifyById_Handler,
		},
		{
			MethodName: "GetUserNotifyRecords",
			Handler:    _BackStageNotifyService_GetUserNotifyRecords_Handler,
		},
		{
			MethodName: "BackstageSendToUser",
			Handler:    _BackStageNotifyService_BackstageSendToUser_Handler,
		},
		{
			MethodName: "GetClientEventSummary",
			Handler:    _BackStageNotifyService_GetClientEventSummary_Handler,
		},
		{
			MethodName: "GetClientTemplates",
			Handler:    _BackStageNotifyService_GetClientTemplates_Handler,
		},
		{
			MethodName: "GetNotifyTaskList",
			Handler:    _BackStageNotifyService_GetNotifyTaskList_Handler,
		},
		{
			MethodName: "GetNotifyTaskDetails",
			Handler:    _BackStageNotifyService_GetNotifyTaskDetails_Handler,
		},
		{
			MethodName: "GetClientEvent",
			Handler:    _BackStageNotifyService_GetClientEvent_Handler,
		},
		{
			MethodName: "UpdateClientEvent",
			Handler:    _BackStageNotifyService_UpdateClientEvent_Handler,
		},
		{
			MethodName: "DeleteClientEvent",
			Handler:    _BackStageNotifyService_DeleteClientEvent_Handler,
		},
		{
			MethodName: "CreateClientEvent",
			Handler:    _BackStageNotifyService_CreateClientEvent_Handler,
		},
		{
			MethodName: "ForwardNotify",
			Handler:    _BackStageNotifyService_ForwardNotify_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "CreateConnection",
			Handler:       _BackStageNotifyService_CreateConnection_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "backstage_notify.proto",
}
