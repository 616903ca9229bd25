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

package player

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// PlayerClient is the client API for Player.
type PlayerClient interface {
	GetUserProfile(ctx context.Context, in *GetUserProfileRequest, opts ...grpc.CallOption) (*UserProfile, error)
	GetAccountByClientId(ctx context.Context, in *GetAccountByClientIdRequest, opts ...grpc.CallOption) (*UserAccountList, error)
	GetAccountByVipLevel(ctx context.Context, in *GetAccountByVipLevelRequest, opts ...grpc.CallOption) (*UserAccountList, error)
	GetAccountByUserIds(ctx context.Context, in *GetAccountByUserIdsRequest, opts ...grpc.CallOption) (*UserAccountList, error)
	GetEmailAndPhoneByUserIds(ctx context.Context, in *GetEmailAndPhoneByUserIdsRequest, opts ...grpc.CallOption) (*UserContactList, error)
}

type playerClient struct {
	cc grpc.ClientConnInterface
}

// NewPlayerClient returns a client bound to cc.
func NewPlayerClient(cc grpc.ClientConnInterface) PlayerClient {
	return &playerClient{cc}
}

func (c *playerClient) GetUserProfile(ctx context.Context, in *GetUserProfileRequest, opts ...grpc.CallOption) (*UserProfile, error) {
	out := new(UserProfile)
	err := c.cc.Invoke(ctx, "/player.Player/GetUserProfile", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *playerClient) GetAccountByClientId(ctx context.Context, in *GetAccountByClientIdRequest, opts ...grpc.CallOption) (*UserAccountList, error) {
	out := new(UserAccountList)
	err := c.cc.Invoke(ctx, "/player.Player/GetAccountByClientId", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *playerClient) GetAccountByVipLevel(ctx context.Context, in *GetAccountByVipLevelRequest, opts ...grpc.CallOption) (*UserAccountList, error) {
	out := new(UserAccountList)
	err := c.cc.Invoke(ctx, "/player.Player/GetAccountByVipLevel", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *playerClient) GetAccountByUserIds(ctx context.Context, in *GetAccountByUserIdsRequest, opts ...grpc.CallOption) (*UserAccountList, error) {
	out := new(UserAccountList)
	err := c.cc.Invoke(ctx, "/player.Player/GetAccountByUserIds", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *playerClient) GetEmailAndPhoneByUserIds(ctx context.Context, in *GetEmailAndPhoneByUserIdsRequest, opts ...grpc.CallOption) (*UserContactList, error) {
	out := new(UserContactList)
	err := c.cc.Invoke(ctx, "/player.Player/GetEmailAndPhoneByUserIds", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PlayerServer is the server API for Player.
// All implementations must embed UnimplementedPlayerServer.
type PlayerServer interface {
	GetUserProfile(context.Context, *GetUserProfileRequest) (*UserProfile, error)
	GetAccountByClientId(context.Context, *GetAccountByClientIdRequest) (*UserAccountList, error)
	GetAccountByVipLevel(context.Context, *GetAccountByVipLevelRequest) (*UserAccountList, error)
	GetAccountByUserIds(context.Context, *GetAccountByUserIdsRequest) (*UserAccountList, error)
	GetEmailAndPhoneByUserIds(context.Context, *GetEmailAndPhoneByUserIdsRequest) (*UserContactList, error)
	mustEmbedUnimplementedPlayerServer()
}

// UnimplementedPlayerServer must be embedded to have forward compatible
// implementations.
type UnimplementedPlayerServer struct{}

func (UnimplementedPlayerServer) GetUserProfile(context.Context, *GetUserProfileRequest) (*UserProfile, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetUserProfile not implemented")
}
func (UnimplementedPlayerServer) GetAccountByClientId(context.Context, *GetAccountByClientIdRequest) (*UserAccountList, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAccountByClientId not implemented")
}
func (UnimplementedPlayerServer) GetAccountByVipLevel(context.Context, *GetAccountByVipLevelRequest) (*UserAccountList, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAccountByVipLevel not implemented")
}
func (UnimplementedPlayerServer) GetAccountByUserIds(context.Context, *GetAccountByUserIdsRequest) (*UserAccountList, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAccountByUserIds not implemented")
}
func (UnimplementedPlayerServer) GetEmailAndPhoneByUserIds(context.Context, *GetEmailAndPhoneByUserIdsRequest) (*UserContactList, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetEmailAndPhoneByUserIds not implemented")
}
func (UnimplementedPlayerServer) mustEmbedUnimplementedPlayerServer() {}

// RegisterPlayerServer registers srv on s.
func RegisterPlayerServer(s grpc.ServiceRegistrar, srv PlayerServer) {
	s.RegisterService(&Player_ServiceDesc, srv)
}

func _Player_GetUserProfile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetUserProfileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlayerServer).GetUserProfile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/player.Player/GetUserProfile",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlayerServer).GetUserProfile(ctx, req.(*GetUserProfileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Player_GetAccountByClientId_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetAccountByClientIdRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlayerServer).GetAccountByClientId(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/player.Player/GetAccountByClientId",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlayerServer).GetAccountByClientId(ctx, req.(*GetAccountByClientIdRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Player_GetAccountByVipLevel_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetAccountByVipLevelRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlayerServer).GetAccountByVipLevel(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/player.Player/GetAccountByVipLevel",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlayerServer).GetAccountByVipLevel(ctx, req.(*GetAccountByVipLevelRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Player_GetAccountByUserIds_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetAccountByUserIdsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlayerServer).GetAccountByUserIds(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/player.Player/GetAccountByUserIds",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlayerServer).GetAccountByUserIds(ctx, req.(*GetAccountByUserIdsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Player_GetEmailAndPhoneByUserIds_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetEmailAndPhoneByUserIdsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlayerServer).GetEmailAndPhoneByUserIds(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/player.Player/GetEmailAndPhoneByUserIds",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlayerServer).GetEmailAndPhoneByUserIds(ctx, req.(*GetEmailAndPhoneByUserIdsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// Player_ServiceDesc is the grpc.ServiceDesc for Player. It is only
// intended for use with grpc.RegisterService.
var Player_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "player.Player",
	HandlerType: (*PlayerServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetUserProfile",
			Handler:    _Player_GetUserProfile_Handler,
		},
		{
			MethodName: "GetAccountByClientId",
			Handler:    _Player_GetAccountByClientId_Handler,
		},
		{
			MethodName: "GetAccountByVipLevel",
			Handler:    _Player_GetAccountByVipLevel_Handler,
		},
		{
			MethodName: "GetAccountByUserIds",
			Handler:    _Player_GetAccountByUserIds_Handler,
		},
		{
			MethodName: "GetEmailAndPhoneByUserIds",
			Handler:    _Player_GetEmailAndPhoneByUserIds_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "player.proto",
}
