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

// Package player holds the wire types of the player proto package, the
// slice of the user service this server consumes. The Go types are
// maintained by hand against player.proto.
package player

import (
	"github.com/golang/protobuf/proto"
)

type GetUserProfileRequest struct {
	ClientId int64 `protobuf:"varint,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	UserId   int64 `protobuf:"varint,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
}

func (m *GetUserProfileRequest) Reset()         { *m = GetUserProfileRequest{} }
func (m *GetUserProfileRequest) String() string { return proto.CompactTextString(m) }
func (*GetUserProfileRequest) ProtoMessage()    {}

func (m *GetUserProfileRequest) GetClientId() int64 {
	if m != nil {
		return m.ClientId
	}
	return 0
}

func (m *GetUserProfileRequest) GetUserId() int64 {
	if m != nil {
		return m.UserId
	}
	return 0
}

type UserProfile struct {
	Account   string `protobuf:"bytes,1,opt,name=account,proto3" json:"account,omitempty"`
	LastName  string `protobuf:"bytes,2,opt,name=last_name,json=lastName,proto3" json:"last_name,omitempty"`
	FirstName string `protobuf:"bytes,3,opt,name=first_name,json=firstName,proto3" json:"first_name,omitempty"`
	City      string `protobuf:"bytes,4,opt,name=city,proto3" json:"city,omitempty"`
	Country   string `protobuf:"bytes,5,opt,name=country,proto3" json:"country,omitempty"`
	Email     string `protobuf:"bytes,6,opt,name=email,proto3" json:"email,omitempty"`
	Phone     string `protobuf:"bytes,7,opt,name=phone,proto3" json:"phone,omitempty"`
}

func (m *UserProfile) Reset()         { *m = UserProfile{} }
func (m *UserProfile) String() string { return proto.CompactTextString(m) }
func (*UserProfile) ProtoMessage()    {}

func (m *UserProfile) GetAccount() string {
	if m != nil {
		return m.Account
	}
	return ""
}

func (m *UserProfile) GetLastName() string {
	if m != nil {
		return m.LastName
	}
	return ""
}

func (m *UserProfile) GetFirstName() string {
	if m != nil {
		return m.FirstName
	}
	return ""
}

func (m *UserProfile) GetCity() string {
	if m != nil {
		return m.City
	}
	return ""
}

func (m *UserProfile) GetCountry() string {
	if m != nil {
		return m.Country
	}
	return ""
}

func (m *UserProfile) GetEmail() string {
	if m != nil {
		return m.Email
	}
	return ""
}

func (m *UserProfile) GetPhone() string {
	if m != nil {
		return m.Phone
	}
	return ""
}

type GetAccountByClientIdRequest struct {
	ClientId int64 `protobuf:"varint,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
}

func (m *GetAccountByClientIdRequest) Reset()         { *m = GetAccountByClientIdRequest{} }
func (m *GetAccountByClientIdRequest) String() string { return proto.CompactTextString(m) }
func (*GetAccountByClientIdRequest) ProtoMessage()    {}

func (m *GetAccountByClientIdRequest) GetClientId() int64 {
	if m != nil {
		return m.ClientId
	}
	return 0
}

type GetAccountByVipLevelRequest struct {
	ClientId  int64   `protobuf:"varint,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	VipLevels []int64 `protobuf:"varint,2,rep,packed,name=vip_levels,json=vipLevels,proto3" json:"vip_levels,omitempty"`
}

func (m *GetAccountByVipLevelRequest) Reset()         { *m = GetAccountByVipLevelRequest{} }
func (m *GetAccountByVipLevelRequest) String() string { return proto.CompactTextString(m) }
func (*GetAccountByVipLevelRequest) ProtoMessage()    {}

func (m *GetAccountByVipLevelRequest) GetClientId() int64 {
	if m != nil {
		return m.ClientId
	}
	return 0
}

func (m *GetAccountByVipLevelRequest) GetVipLevels() []int64 {
	if m != nil {
		return m.VipLevels
	}
	return nil
}

type GetAccountByUserIdsRequest struct {
	ClientId int64   `protobuf:"varint,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	UserIds  []int64 `protobuf:"varint,2,rep,packed,name=user_ids,json=userIds,proto3" json:"user_ids,omitempty"`
}

func (m *GetAccountByUserIdsRequest) Reset()         { *m = GetAccountByUserIdsRequest{} }
func (m *GetAccountByUserIdsRequest) String() string { return proto.CompactTextString(m) }
func (*GetAccountByUserIdsRequest) ProtoMessage()    {}

func (m *GetAccountByUserIdsRequest) GetClientId() int64 {
	if m != nil {
		return m.ClientId
	}
	return 0
}

func (m *GetAccountByUserIdsRequest) GetUserIds() []int64 {
	if m != nil {
		return m.UserIds
	}
	return nil
}

type UserAccount struct {
	UserId  int64  `protobuf:"varint,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Account string `protobuf:"bytes,2,opt,name=account,proto3" json:"account,omitempty"`
}

func (m *UserAccount) Reset()         { *m = UserAccount{} }
func (m *UserAccount) String() string { return proto.CompactTextString(m) }
func (*UserAccount) ProtoMessage()    {}

func (m *UserAccount) GetUserId() int64 {
	if m != nil {
		return m.UserId
	}
	return 0
}

func (m *UserAccount) GetAccount() string {
	if m != nil {
		return m.Account
	}
	return ""
}

type UserAccountList struct {
	UserAccounts []*UserAccount `protobuf:"bytes,1,rep,name=user_accounts,json=userAccounts,proto3" json:"user_accounts,omitempty"`
}

func (m *UserAccountList) Reset()         { *m = UserAccountList{} }
func (m *UserAccountList) String() string { return proto.CompactTextString(m) }
func (*UserAccountList) ProtoMessage()    {}

func (m *UserAccountList) GetUserAccounts() []*UserAccount {
	if m != nil {
		return m.UserAccounts
	}
	return nil
}

type GetEmailAndPhoneByUserIdsRequest struct {
	ClientId int64   `protobuf:"varint,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	UserIds  []int64 `protobuf:"varint,2,rep,packed,name=user_ids,json=userIds,proto3" json:"user_ids,omitempty"`
}

func (m *GetEmailAndPhoneByUserIdsRequest) Reset()         { *m = GetEmailAndPhoneByUserIdsRequest{} }
func (m *GetEmailAndPhoneByUserIdsRequest) String() string { return proto.CompactTextString(m) }
func (*GetEmailAndPhoneByUserIdsRequest) ProtoMessage()    {}

func (m *GetEmailAndPhoneByUserIdsRequest) GetClientId() int64 {
	if m != nil {
		return m.ClientId
	}
	return 0
}

func (m *GetEmailAndPhoneByUserIdsRequest) GetUserIds() []int64 {
	if m != nil {
		return m.UserIds
	}
	return nil
}

type UserContact struct {
	UserId  int64  `protobuf:"varint,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Account string `protobuf:"bytes,2,opt,name=account,proto3" json:"account,omitempty"`
	Email   string `protobuf:"bytes,3,opt,name=email,proto3" json:"email,omitempty"`
	Phone   string `protobuf:"bytes,4,opt,name=phone,proto3" json:"phone,omitempty"`
}

func (m *UserContact) Reset()         { *m = UserContact{} }
func (m *UserContact) String() string { return proto.CompactTextString(m) }
func (*UserContact) ProtoMessage()    {}

func (m *UserContact) GetUserId() int64 {
	if m != nil {
		return m.UserId
	}
	return 0
}

func (m *UserContact) GetAccount() string {
	if m != nil {
		return m.Account
	}
	return ""
}

func (m *UserContact) GetEmail() string {
	if m != nil {
		return m.Email
	}
	return ""
}

func (m *UserContact) GetPhone() string {
	if m != nil {
		return m.Phone
	}
	return ""
}

type UserContactList struct {
	UserContacts []*UserContact `protobuf:"bytes,1,rep,name=user_contacts,json=userContacts,proto3" json:"user_contacts,omitempty"`
}

func (m *UserContactList) Reset()         { *m = UserContactList{} }
func (m *UserContactList) String() string { return proto.CompactTextString(m) }
func (*UserContactList) ProtoMessage()    {}

func (m *UserContactList) GetUserContacts() []*UserContact {
	if m != nil {
		return m.UserContacts
	}
	return nil
}

func init() {
	proto.RegisterType((*GetUserProfileRequest)(nil), "player.GetUserProfileRequest")
	proto.RegisterType((*UserProfile)(nil), "player.UserProfile")
	proto.RegisterType((*GetAccountByClientIdRequest)(nil), "player.GetAccountByClientIdRequest")
	proto.RegisterType((*GetAccountByVipLevelRequest)(nil), "player.GetAccountByVipLevelRequest")
	proto.RegisterType((*GetAccountByUserIdsRequest)(nil), "player.GetAccountByUserIdsRequest")
	proto.RegisterType((*UserAccount)(nil), "player.UserAccount")
	proto.RegisterType((*UserAccountList)(nil), "player.UserAccountList")
	proto.RegisterType((*GetEmailAndPhoneByUserIdsRequest)(nil), "player.GetEmailAndPhoneByUserIdsRequest")
	proto.RegisterType((*UserContact)(nil), "player.UserContact")
	proto.RegisterType((*UserContactList)(nil), "player.UserContactList")
}
