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

// Package client holds the wire types of the client proto package, the
// oauth tenant-mapping slice this server consumes. The Go types are
// maintained by hand against client.proto.
package client

import (
	"github.com/golang/protobuf/proto"
)

type FrontendClient struct {
	FrontendClientId int64 `protobuf:"varint,1,opt,name=frontend_client_id,json=frontendClientId,proto3" json:"frontend_client_id,omitempty"`
}

func (m *FrontendClient) Reset()         { *m = FrontendClient{} }
func (m *FrontendClient) String() string { return proto.CompactTextString(m) }
func (*FrontendClient) ProtoMessage()    {}

func (m *FrontendClient) GetFrontendClientId() int64 {
	if m != nil {
		return m.FrontendClientId
	}
	return 0
}

type BackstageClient struct {
	BackstageClientId int64 `protobuf:"varint,1,opt,name=backstage_client_id,json=backstageClientId,proto3" json:"backstage_client_id,omitempty"`
}

func (m *BackstageClient) Reset()         { *m = BackstageClient{} }
func (m *BackstageClient) String() string { return proto.CompactTextString(m) }
func (*BackstageClient) ProtoMessage()    {}

func (m *BackstageClient) GetBackstageClientId() int64 {
	if m != nil {
		return m.BackstageClientId
	}
	return 0
}

func init() {
	proto.RegisterType((*FrontendClient)(nil), "client.FrontendClient")
	proto.RegisterType((*BackstageClient)(nil), "client.BackstageClient")
}
