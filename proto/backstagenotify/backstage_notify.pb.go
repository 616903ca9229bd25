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

// Package backstagenotify holds the wire types of the backstage_notify
// proto package. The Go types are maintained by hand against
// backstage_notify.proto; the protobuf struct tags are the source of
// truth for field numbers and must stay in sync with the IDL.
package backstagenotify

import (
	"github.com/golang/protobuf/proto"
	wrapperspb "google.golang.org/protobuf/types/known/wrapperspb"
)

// BackStageNotifyEvent enumerates the backstage system events.
type BackStageNotifyEvent int32

const (
	BackStageNotifyEvent_NONE               BackStageNotifyEvent = 0
	BackStageNotifyEvent_KYC_VERIFY         BackStageNotifyEvent = 1
	BackStageNotifyEvent_WITHDRAW_VERIFY    BackStageNotifyEvent = 2
	BackStageNotifyEvent_DEPOSIT_VERIFY     BackStageNotifyEvent = 3
	BackStageNotifyEvent_CREDIT_CARD_VERIFY BackStageNotifyEvent = 4
)

var BackStageNotifyEvent_name = map[int32]string{
	0: "NONE",
	1: "KYC_VERIFY",
	2: "WITHDRAW_VERIFY",
	3: "DEPOSIT_VERIFY",
	4: "CREDIT_CARD_VERIFY",
}

var BackStageNotifyEvent_value = map[string]int32{
	"NONE":               0,
	"KYC_VERIFY":         1,
	"WITHDRAW_VERIFY":    2,
	"DEPOSIT_VERIFY":     3,
	"CREDIT_CARD_VERIFY": 4,
}

func (x BackStageNotifyEvent) String() string {
	return proto.EnumName(BackStageNotifyEvent_name, int32(x))
}

type Empty struct{}

func (m *Empty) Reset()         { *m = Empty{} }
func (m *Empty) String() string { return proto.CompactTextString(m) }
func (*Empty) ProtoMessage()    {}

type ConnectionRequest struct {
	ClientId    int64   `protobuf:"varint,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	UserId      int64   `protobuf:"varint,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	RoleIds     []int64 `protobuf:"varint,3,rep,packed,name=role_ids,json=roleIds,proto3" json:"role_ids,omitempty"`
	UserAccount string  `protobuf:"bytes,4,opt,name=user_account,json=userAccount,proto3" json:"user_account,omitempty"`
}

func (m *ConnectionRequest) Reset()         { *m = ConnectionRequest{} }
func (m *ConnectionRequest) String() string { return proto.CompactTextString(m) }
func (*ConnectionRequest) ProtoMessage()    {}

func (m *ConnectionRequest) GetClientId() int64 {
	if m != nil {
		return m.ClientId
	}
	return 0
}

func (m *ConnectionRequest) GetUserId() int64 {
	if m != nil {
		return m.UserId
	}
	return 0
}

func (m *ConnectionRequest) GetRoleIds() []int64 {
	if m != nil {
		return m.RoleIds
	}
	return nil
}

func (m *ConnectionRequest) GetUserAccount() string {
	if m != nil {
		return m.UserAccount
	}
	return ""
}

type CloseRequest struct {
	ClientId int64 `protobuf:"varint,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	UserId   int64 `protobuf:"varint,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
}

func (m *CloseRequest) Reset()         { *m = CloseRequest{} }
func (m *CloseRequest) String() string { return proto.CompactTextString(m) }
func (*CloseRequest) ProtoMessage()    {}

func (m *CloseRequest) GetClientId() int64 {
	if m != nil {
		return m.ClientId
	}
	return 0
}

func (m *CloseRequest) GetUserId() int64 {
	if m != nil {
		return m.UserId
	}
	return 0
}

type Notify struct {
	NotifyId     int64  `protobuf:"varint,1,opt,name=notify_id,json=notifyId,proto3" json:"notify_id,omitempty"`
	NotifyLevel  int32  `protobuf:"varint,2,opt,name=notify_level,json=notifyLevel,proto3" json:"notify_level,omitempty"`
	Title        string `protobuf:"bytes,3,opt,name=title,proto3" json:"title,omitempty"`
	Content      string `protobuf:"bytes,4,opt,name=content,proto3" json:"content,omitempty"`
	CreateAt     int64  `protobuf:"varint,5,opt,name=create_at,json=createAt,proto3" json:"create_at,omitempty"`
	NotifyStatus int32  `protobuf:"varint,6,opt,name=notify_status,json=notifyStatus,proto3" json:"notify_status,omitempty"`
}

func (m *Notify) Reset()         { *m = Notify{} }
func (m *Notify) String() string { return proto.CompactTextString(m) }
func (*Notify) ProtoMessage()    {}

func (m *Notify) GetNotifyId() int64 {
	if m != nil {
		return m.NotifyId
	}
	return 0
}

func (m *Notify) GetNotifyLevel() int32 {
	if m != nil {
		return m.NotifyLevel
	}
	return 0
}

func (m *Notify) GetTitle() string {
	if m != nil {
		return m.Title
	}
	return ""
}

func (m *Notify) GetContent() string {
	if m != nil {
		return m.Content
	}
	return ""
}

func (m *Notify) GetCreateAt() int64 {
	if m != nil {
		return m.CreateAt
	}
	return 0
}

func (m *Notify) GetNotifyStatus() int32 {
	if m != nil {
		return m.NotifyStatus
	}
	return 0
}

type Receiver struct {
	// Types that are valid to be assigned to Message:
	//	*Receiver_Notify
	//	*Receiver_Empty
	Message isReceiver_Message `protobuf_oneof:"message"`
}

func (m *Receiver) Reset()         { *m = Receiver{} }
func (m *Receiver) String() string { return proto.CompactTextString(m) }
func (*Receiver) ProtoMessage()    {}

type isReceiver_Message interface {
	isReceiver_Message()
}

type Receiver_Notify struct {
	Notify *Notify `protobuf:"bytes,1,opt,name=notify,proto3,oneof"`
}

type Receiver_Empty struct {
	Empty *Empty `protobuf:"bytes,2,opt,name=empty,proto3,oneof"`
}

func (*Receiver_Notify) isReceiver_Message() {}
func (*Receiver_Empty) isReceiver_Message()  {}

func (m *Receiver) GetMessage() isReceiver_Message {
	if m != nil {
		return m.Message
	}
	return nil
}

func (m *Receiver) GetNotify() *Notify {
	if x, ok := m.GetMessage().(*Receiver_Notify); ok {
		return x.Notify
	}
	return nil
}

func (m *Receiver) GetEmpty() *Empty {
	if x, ok := m.GetMessage().(*Receiver_Empty); ok {
		return x.Empty
	}
	return nil
}

// XXX_OneofWrappers is for the internal use of the proto package.
func (*Receiver) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*Receiver_Notify)(nil),
		(*Receiver_Empty)(nil),
	}
}

type SendRequest struct {
	InitiatorClientId int64                `protobuf:"varint,1,opt,name=initiator_client_id,json=initiatorClientId,proto3" json:"initiator_client_id,omitempty"`
	InitiatorUserId   int64                `protobuf:"varint,2,opt,name=initiator_user_id,json=initiatorUserId,proto3" json:"initiator_user_id,omitempty"`
	NotifyEvent       BackStageNotifyEvent `protobuf:"varint,3,opt,name=notify_event,json=notifyEvent,proto3,enum=backstage_notify.BackStageNotifyEvent" json:"notify_event,omitempty"`
	KeyMap            map[string]string    `protobuf:"bytes,4,rep,name=key_map,json=keyMap,proto3" json:"key_map,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"bytes,2,opt,name=value,proto3"`
	RoleIds           []int64              `protobuf:"varint,5,rep,packed,name=role_ids,json=roleIds,proto3" json:"role_ids,omitempty"`
}

func (m *SendRequest) Reset()         { *m = SendRequest{} }
func (m *SendRequest) String() string { return proto.CompactTextString(m) }
func (*SendRequest) ProtoMessage()    {}

func (m *SendRequest) GetInitiatorClientId() int64 {
	if m != nil {
		return m.InitiatorClientId
	}
	return 0
}

func (m *SendRequest) GetInitiatorUserId() int64 {
	if m != nil {
		return m.InitiatorUserId
	}
	return 0
}

func (m *SendRequest) GetNotifyEvent() BackStageNotifyEvent {
	if m != nil {
		return m.NotifyEvent
	}
	return BackStageNotifyEvent_NONE
}

func (m *SendRequest) GetKeyMap() map[string]string {
	if m != nil {
		return m.KeyMap
	}
	return nil
}

func (m *SendRequest) GetRoleIds() []int64 {
	if m != nil {
		return m.RoleIds
	}
	return nil
}

type GetNotifyRecordRequest struct {
	ClientId     int64 `protobuf:"varint,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	UserId       int64 `protobuf:"varint,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	NotifyStatus int32 `protobuf:"varint,3,opt,name=notify_status,json=notifyStatus,proto3" json:"notify_status,omitempty"`
	NotifyLevel  int32 `protobuf:"varint,4,opt,name=notify_level,json=notifyLevel,proto3" json:"notify_level,omitempty"`
	NowPage      int64 `protobuf:"varint,5,opt,name=now_page,json=nowPage,proto3" json:"now_page,omitempty"`
}

func (m *GetNotifyRecordRequest) Reset()         { *m = GetNotifyRecordRequest{} }
func (m *GetNotifyRecordRequest) String() string { return proto.CompactTextString(m) }
func (*GetNotifyRecordRequest) ProtoMessage()    {}

func (m *GetNotifyRecordRequest) GetClientId() int64 {
	if m != nil {
		return m.ClientId
	}
	return 0
}

func (m *GetNotifyRecordRequest) GetUserId() int64 {
	if m != nil {
		return m.UserId
	}
	return 0
}

func (m *GetNotifyRecordRequest) GetNotifyStatus() int32 {
	if m != nil {
		return m.NotifyStatus
	}
	return 0
}

func (m *GetNotifyRecordRequest) GetNotifyLevel() int32 {
	if m != nil {
		return m.NotifyLevel
	}
	return 0
}

func (m *GetNotifyRecordRequest) GetNowPage() int64 {
	if m != nil {
		return m.NowPage
	}
	return 0
}

type GetNotifyRecordResponse struct {
	List        []*Notify `protobuf:"bytes,1,rep,name=list,proto3" json:"list,omitempty"`
	TotalRows   int64     `protobuf:"varint,2,opt,name=total_rows,json=totalRows,proto3" json:"total_rows,omitempty"`
	TotalPage   int64     `protobuf:"varint,3,opt,name=total_page,json=totalPage,proto3" json:"total_page,omitempty"`
	NowPage     int64     `protobuf:"varint,4,opt,name=now_page,json=nowPage,proto3" json:"now_page,omitempty"`
	UnreadCount int64     `protobuf:"varint,5,opt,name=unread_count,json=unreadCount,proto3" json:"unread_count,omitempty"`
}

func (m *GetNotifyRecordResponse) Reset()         { *m = GetNotifyRecordResponse{} }
func (m *GetNotifyRecordResponse) String() string { return proto.CompactTextString(m) }
func (*GetNotifyRecordResponse) ProtoMessage()    {}

func (m *GetNotifyRecordResponse) GetList() []*Notify {
	if m != nil {
		return m.List
	}
	return nil
}

func (m *GetNotifyRecordResponse) GetTotalRows() int64 {
	if m != nil {
		return m.TotalRows
	}
	return 0
}

func (m *GetNotifyRecordResponse) GetTotalPage() int64 {
	if m != nil {
		return m.TotalPage
	}
	return 0
}

func (m *GetNotifyRecordResponse) GetNowPage() int64 {
	if m != nil {
		return m.NowPage
	}
	return 0
}

func (m *GetNotifyRecordResponse) GetUnreadCount() int64 {
	if m != nil {
		return m.UnreadCount
	}
	return 0
}

type UpdateNotifyRecordRequest struct {
	ClientId     int64   `protobuf:"varint,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	UserId       int64   `protobuf:"varint,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	NotifyIds    []int64 `protobuf:"varint,3,rep,packed,name=notify_ids,json=notifyIds,proto3" json:"notify_ids,omitempty"`
	NotifyStatus int32   `protobuf:"varint,4,opt,name=notify_status,json=notifyStatus,proto3" json:"notify_status,omitempty"`
}

func (m *UpdateNotifyRecordRequest) Reset()         { *m = UpdateNotifyRecordRequest{} }
func (m *UpdateNotifyRecordRequest) String() string { return proto.CompactTextString(m) }
func (*UpdateNotifyRecordRequest) ProtoMessage()    {}

func (m *UpdateNotifyRecordRequest) GetClientId() int64 {
	if m != nil {
		return m.ClientId
	}
	return 0
}

func (m *UpdateNotifyRecordRequest) GetUserId() int64 {
	if m != nil {
		return m.UserId
	}
	return 0
}

func (m *UpdateNotifyRecordRequest) GetNotifyIds() []int64 {
	if m != nil {
		return m.NotifyIds
	}
	return nil
}

func (m *UpdateNotifyRecordRequest) GetNotifyStatus() int32 {
	if m != nil {
		return m.NotifyStatus
	}
	return 0
}

type UpdateNotifyRecordResponse struct {
	List []*Notify `protobuf:"bytes,1,rep,name=list,proto3" json:"list,omitempty"`
}

func (m *UpdateNotifyRecordResponse) Reset()         { *m = UpdateNotifyRecordResponse{} }
func (m *UpdateNotifyRecordResponse) String() string { return proto.CompactTextString(m) }
func (*UpdateNotifyRecordResponse) ProtoMessage()    {}

func (m *UpdateNotifyRecordResponse) GetList() []*Notify {
	if m != nil {
		return m.List
	}
	return nil
}

type GetUnreadNotifyCountRequest struct {
	ClientId int64 `protobuf:"varint,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	UserId   int64 `protobuf:"varint,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
}

func (m *GetUnreadNotifyCountRequest) Reset()         { *m = GetUnreadNotifyCountRequest{} }
func (m *GetUnreadNotifyCountRequest) String() string { return proto.CompactTextString(m) }
func (*GetUnreadNotifyCountRequest) ProtoMessage()    {}

func (m *GetUnreadNotifyCountRequest) GetClientId() int64 {
	if m != nil {
		return m.ClientId
	}
	return 0
}

func (m *GetUnreadNotifyCountRequest) GetUserId() int64 {
	if m != nil {
		return m.UserId
	}
	return 0
}

type GetUnreadNotifyCountResponse struct {
	TotalRows int64 `protobuf:"varint,1,opt,name=total_rows,json=totalRows,proto3" json:"total_rows,omitempty"`
}

func (m *GetUnreadNotifyCountResponse) Reset()         { *m = GetUnreadNotifyCountResponse{} }
func (m *GetUnreadNotifyCountResponse) String() string { return proto.CompactTextString(m) }
func (*GetUnreadNotifyCountResponse) ProtoMessage()    {}

func (m *GetUnreadNotifyCountResponse) GetTotalRows() int64 {
	if m != nil {
		return m.TotalRows
	}
	return 0
}

type AllReadRequest struct {
	ClientId    int64 `protobuf:"varint,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	UserId      int64 `protobuf:"varint,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	NotifyLevel int32 `protobuf:"varint,3,opt,name=notify_level,json=notifyLevel,proto3" json:"notify_level,omitempty"`
}

func (m *AllReadRequest) Reset()         { *m = AllReadRequest{} }
func (m *AllReadRequest) String() string { return proto.CompactTextString(m) }
func (*AllReadRequest) ProtoMessage()    {}

func (m *AllReadRequest) GetClientId() int64 {
	if m != nil {
		return m.ClientId
	}
	return 0
}

func (m *AllReadRequest) GetUserId() int64 {
	if m != nil {
		return m.UserId
	}
	return 0
}

func (m *AllReadRequest) GetNotifyLevel() int32 {
	if m != nil {
		return m.NotifyLevel
	}
	return 0
}

type GetNotifyByIdRequest struct {
	ClientId int64 `protobuf:"varint,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	UserId   int64 `protobuf:"varint,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	NotifyId int64 `protobuf:"varint,3,opt,name=notify_id,json=notifyId,proto3" json:"notify_id,omitempty"`
}

func (m *GetNotifyByIdRequest) Reset()         { *m = GetNotifyByIdRequest{} }
func (m *GetNotifyByIdRequest) String() string { return proto.CompactTextString(m) }
func (*GetNotifyByIdRequest) ProtoMessage()    {}

func (m *GetNotifyByIdRequest) GetClientId() int64 {
	if m != nil {
		return m.ClientId
	}
	return 0
}

func (m *GetNotifyByIdRequest) GetUserId() int64 {
	if m != nil {
		return m.UserId
	}
	return 0
}

func (m *GetNotifyByIdRequest) GetNotifyId() int64 {
	if m != nil {
		return m.NotifyId
	}
	return 0
}

type ForwardNotifyRequest struct {
	ClientId            int64   `protobuf:"varint,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	RoleIds             []int64 `protobuf:"varint,2,rep,packed,name=role_ids,json=roleIds,proto3" json:"role_ids,omitempty"`
	ClientNotifyEventId int64   `protobuf:"varint,3,opt,name=client_notify_event_id,json=clientNotifyEventId,proto3" json:"client_notify_event_id,omitempty"`
	Title               string  `protobuf:"bytes,4,opt,name=title,proto3" json:"title,omitempty"`
	Content             string  `protobuf:"bytes,5,opt,name=content,proto3" json:"content,omitempty"`
}

func (m *ForwardNotifyRequest) Reset()         { *m = ForwardNotifyRequest{} }
func (m *ForwardNotifyRequest) String() string { return proto.CompactTextString(m) }
func (*ForwardNotifyRequest) ProtoMessage()    {}

func (m *ForwardNotifyRequest) GetClientId() int64 {
	if m != nil {
		return m.ClientId
	}
	return 0
}

func (m *ForwardNotifyRequest) GetRoleIds() []int64 {
	if m != nil {
		return m.RoleIds
	}
	return nil
}

func (m *ForwardNotifyRequest) GetClientNotifyEventId() int64 {
	if m != nil {
		return m.ClientNotifyEventId
	}
	return 0
}

func (m *ForwardNotifyRequest) GetTitle() string {
	if m != nil {
		return m.Title
	}
	return ""
}

func (m *ForwardNotifyRequest) GetContent() string {
	if m != nil {
		return m.Content
	}
	return ""
}

// UserNotifyRecord is the admin view of one frontend user's record.
type UserNotifyRecord struct {
	NotifyId        int64  `protobuf:"varint,1,opt,name=notify_id,json=notifyId,proto3" json:"notify_id,omitempty"`
	Title           string `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	ReceiverAccount string `protobuf:"bytes,3,opt,name=receiver_account,json=receiverAccount,proto3" json:"receiver_account,omitempty"`
	NotifyStatus    int32  `protobuf:"varint,4,opt,name=notify_status,json=notifyStatus,proto3" json:"notify_status,omitempty"`
	NotifyType      int32  `protobuf:"varint,5,opt,name=notify_type,json=notifyType,proto3" json:"notify_type,omitempty"`
	NotifyLevel     int32  `protobuf:"varint,6,opt,name=notify_level,json=notifyLevel,proto3" json:"notify_level,omitempty"`
	SenderIp        string `protobuf:"bytes,7,opt,name=sender_ip,json=senderIp,proto3" json:"sender_ip,omitempty"`
	CreateAt        int64  `protobuf:"varint,8,opt,name=create_at,json=createAt,proto3" json:"create_at,omitempty"`
	SenderAccount   string `protobuf:"bytes,9,opt,name=sender_account,json=senderAccount,proto3" json:"sender_account,omitempty"`
	Content         string `protobuf:"bytes,10,opt,name=content,proto3" json:"content,omitempty"`
}

func (m *UserNotifyRecord) Reset()         { *m = UserNotifyRecord{} }
func (m *UserNotifyRecord) String() string { return proto.CompactTextString(m) }
func (*UserNotifyRecord) ProtoMessage()    {}

func (m *UserNotifyRecord) GetNotifyId() int64 {
	if m != nil {
		return m.NotifyId
	}
	return 0
}

func (m *UserNotifyRecord) GetTitle() string {
	if m != nil {
		return m.Title
	}
	return ""
}

func (m *UserNotifyRecord) GetReceiverAccount() string {
	if m != nil {
		return m.ReceiverAccount
	}
	return ""
}

func (m *UserNotifyRecord) GetNotifyStatus() int32 {
	if m != nil {
		return m.NotifyStatus
	}
	return 0
}

func (m *UserNotifyRecord) GetNotifyType() int32 {
	if m != nil {
		return m.NotifyType
	}
	return 0
}

func (m *UserNotifyRecord) GetNotifyLevel() int32 {
	if m != nil {
		return m.NotifyLevel
	}
	return 0
}

func (m *UserNotifyRecord) GetSenderIp() string {
	if m != nil {
		return m.SenderIp
	}
	return ""
}

func (m *UserNotifyRecord) GetCreateAt() int64 {
	if m != nil {
		return m.CreateAt
	}
	return 0
}

func (m *UserNotifyRecord) GetSenderAccount() string {
	if m != nil {
		return m.SenderAccount
	}
	return ""
}

func (m *UserNotifyRecord) GetContent() string {
	if m != nil {
		return m.Content
	}
	return ""
}

// GetUserNotifyRecordRequest string filters are unset when empty,
// timestamps (unix ms) when zero. The repeated enum filters are
// unfiltered when empty.
type GetUserNotifyRecordRequest struct {
	ClientId        int64   `protobuf:"varint,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	Title           string  `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	IsFuzzy         bool    `protobuf:"varint,3,opt,name=is_fuzzy,json=isFuzzy,proto3" json:"is_fuzzy,omitempty"`
	ReceiverAccount string  `protobuf:"bytes,4,opt,name=receiver_account,json=receiverAccount,proto3" json:"receiver_account,omitempty"`
	SenderAccount   string  `protobuf:"bytes,5,opt,name=sender_account,json=senderAccount,proto3" json:"sender_account,omitempty"`
	NotifyStatus    []int32 `protobuf:"varint,6,rep,packed,name=notify_status,json=notifyStatus,proto3" json:"notify_status,omitempty"`
	NotifyType      []int32 `protobuf:"varint,7,rep,packed,name=notify_type,json=notifyType,proto3" json:"notify_type,omitempty"`
	NotifyLevel     []int32 `protobuf:"varint,8,rep,packed,name=notify_level,json=notifyLevel,proto3" json:"notify_level,omitempty"`
	StartAt         int64   `protobuf:"varint,9,opt,name=start_at,json=startAt,proto3" json:"start_at,omitempty"`
	EndAt           int64   `protobuf:"varint,10,opt,name=end_at,json=endAt,proto3" json:"end_at,omitempty"`
	PageSize        int64   `protobuf:"varint,11,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	NowPage         int64   `protobuf:"varint,12,opt,name=now_page,json=nowPage,proto3" json:"now_page,omitempty"`
}

func (m *GetUserNotifyRecordRequest) Reset()         { *m = GetUserNotifyRecordRequest{} }
func (m *GetUserNotifyRecordRequest) String() string { return proto.CompactTextString(m) }
func (*GetUserNotifyRecordRequest) ProtoMessage()    {}

func (m *GetUserNotifyRecordRequest) GetClientId() int64 {
	if m != nil {
		return m.ClientId
	}
	return 0
}

func (m *GetUserNotifyRecordRequest) GetTitle() string {
	if m != nil {
		return m.Title
	}
	return ""
}

func (m *GetUserNotifyRecordRequest) GetIsFuzzy() bool {
	if m != nil {
		return m.IsFuzzy
	}
	return false
}

func (m *GetUserNotifyRecordRequest) GetReceiverAccount() string {
	if m != nil {
		return m.ReceiverAccount
	}
	return ""
}

func (m *GetUserNotifyRecordRequest) GetSenderAccount() string {
	if m != nil {
		return m.SenderAccount
	}
	return ""
}

func (m *GetUserNotifyRecordRequest) GetNotifyStatus() []int32 {
	if m != nil {
		return m.NotifyStatus
	}
	return nil
}

func (m *GetUserNotifyRecordRequest) GetNotifyType() []int32 {
	if m != nil {
		return m.NotifyType
	}
	return nil
}

func (m *GetUserNotifyRecordRequest) GetNotifyLevel() []int32 {
	if m != nil {
		return m.NotifyLevel
	}
	return nil
}

func (m *GetUserNotifyRecordRequest) GetStartAt() int64 {
	if m != nil {
		return m.StartAt
	}
	return 0
}

func (m *GetUserNotifyRecordRequest) GetEndAt() int64 {
	if m != nil {
		return m.EndAt
	}
	return 0
}

func (m *GetUserNotifyRecordRequest) GetPageSize() int64 {
	if m != nil {
		return m.PageSize
	}
	return 0
}

func (m *GetUserNotifyRecordRequest) GetNowPage() int64 {
	if m != nil {
		return m.NowPage
	}
	return 0
}

type GetUserNotifyRecordResponse struct {
	List      []*UserNotifyRecord `protobuf:"bytes,1,rep,name=list,proto3" json:"list,omitempty"`
	TotalRows int64               `protobuf:"varint,2,opt,name=total_rows,json=totalRows,proto3" json:"total_rows,omitempty"`
	TotalPage int64               `protobuf:"varint,3,opt,name=total_page,json=totalPage,proto3" json:"total_page,omitempty"`
	NowPage   int64               `protobuf:"varint,4,opt,name=now_page,json=nowPage,proto3" json:"now_page,omitempty"`
}

func (m *GetUserNotifyRecordResponse) Reset()         { *m = GetUserNotifyRecordResponse{} }
func (m *GetUserNotifyRecordResponse) String() string { return proto.CompactTextString(m) }
func (*GetUserNotifyRecordResponse) ProtoMessage()    {}

func (m *GetUserNotifyRecordResponse) GetList() []*UserNotifyRecord {
	if m != nil {
		return m.List
	}
	return nil
}

func (m *GetUserNotifyRecordResponse) GetTotalRows() int64 {
	if m != nil {
		return m.TotalRows
	}
	return 0
}

func (m *GetUserNotifyRecordResponse) GetTotalPage() int64 {
	if m != nil {
		return m.TotalPage
	}
	return 0
}

func (m *GetUserNotifyRecordResponse) GetNowPage() int64 {
	if m != nil {
		return m.NowPage
	}
	return 0
}

// Template is one channel-specific body of a broadcast or a custom
// event.
type Template struct {
	NotifyType int32  `protobuf:"varint,1,opt,name=notify_type,json=notifyType,proto3" json:"notify_type,omitempty"`
	Title      string `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	Content    string `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
}

func (m *Template) Reset()         { *m = Template{} }
func (m *Template) String() string { return proto.CompactTextString(m) }
func (*Template) ProtoMessage()    {}

func (m *Template) GetNotifyType() int32 {
	if m != nil {
		return m.NotifyType
	}
	return 0
}

func (m *Template) GetTitle() string {
	if m != nil {
		return m.Title
	}
	return ""
}

func (m *Template) GetContent() string {
	if m != nil {
		return m.Content
	}
	return ""
}

type TemplateWitKeyList struct {
	NotifyType int32    `protobuf:"varint,1,opt,name=notify_type,json=notifyType,proto3" json:"notify_type,omitempty"`
	Title      string   `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	Content    string   `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
	Keys       []string `protobuf:"bytes,4,rep,name=keys,proto3" json:"keys,omitempty"`
}

func (m *TemplateWitKeyList) Reset()         { *m = TemplateWitKeyList{} }
func (m *TemplateWitKeyList) String() string { return proto.CompactTextString(m) }
func (*TemplateWitKeyList) ProtoMessage()    {}

func (m *TemplateWitKeyList) GetNotifyType() int32 {
	if m != nil {
		return m.NotifyType
	}
	return 0
}

func (m *TemplateWitKeyList) GetTitle() string {
	if m != nil {
		return m.Title
	}
	return ""
}

func (m *TemplateWitKeyList) GetContent() string {
	if m != nil {
		return m.Content
	}
	return ""
}

func (m *TemplateWitKeyList) GetKeys() []string {
	if m != nil {
		return m.Keys
	}
	return nil
}

type BackstageSendToUserRequest struct {
	ClientId    int64  `protobuf:"varint,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	SenderId    int64  `protobuf:"varint,2,opt,name=sender_id,json=senderId,proto3" json:"sender_id,omitempty"`
	SenderIp    string `protobuf:"bytes,3,opt,name=sender_ip,json=senderIp,proto3" json:"sender_ip,omitempty"`
	NotifyLevel int32  `protobuf:"varint,4,opt,name=notify_level,json=notifyLevel,proto3" json:"notify_level,omitempty"`
	// Exactly one receiver selector must be set: IsAll, ReceiverIds or
	// VipLevels.
	IsAll           bool        `protobuf:"varint,5,opt,name=is_all,json=isAll,proto3" json:"is_all,omitempty"`
	ReceiverIds     []int64     `protobuf:"varint,6,rep,packed,name=receiver_ids,json=receiverIds,proto3" json:"receiver_ids,omitempty"`
	VipLevels       []int64     `protobuf:"varint,7,rep,packed,name=vip_levels,json=vipLevels,proto3" json:"vip_levels,omitempty"`
	IsSaveAsEvent   bool        `protobuf:"varint,8,opt,name=is_save_as_event,json=isSaveAsEvent,proto3" json:"is_save_as_event,omitempty"`
	ClientEventName string      `protobuf:"bytes,9,opt,name=client_event_name,json=clientEventName,proto3" json:"client_event_name,omitempty"`
	ClientEventMemo string      `protobuf:"bytes,10,opt,name=client_event_memo,json=clientEventMemo,proto3" json:"client_event_memo,omitempty"`
	ClientEventId   int64       `protobuf:"varint,11,opt,name=client_event_id,json=clientEventId,proto3" json:"client_event_id,omitempty"`
	Templates       []*Template `protobuf:"bytes,12,rep,name=templates,proto3" json:"templates,omitempty"`
}

func (m *BackstageSendToUserRequest) Reset()         { *m = BackstageSendToUserRequest{} }
func (m *BackstageSendToUserRequest) String() string { return proto.CompactTextString(m) }
func (*BackstageSendToUserRequest) ProtoMessage()    {}

func (m *BackstageSendToUserRequest) GetClientId() int64 {
	if m != nil {
		return m.ClientId
	}
	return 0
}

func (m *BackstageSendToUserRequest) GetSenderId() int64 {
	if m != nil {
		return m.SenderId
	}
	return 0
}

func (m *BackstageSendToUserRequest) GetSenderIp() string {
	if m != nil {
		return m.SenderIp
	}
	return ""
}

func (m *BackstageSendToUserRequest) GetNotifyLevel() int32 {
	if m != nil {
		return m.NotifyLevel
	}
	return 0
}

func (m *BackstageSendToUserRequest) GetIsAll() bool {
	if m != nil {
		return m.IsAll
	}
	return false
}

func (m *BackstageSendToUserRequest) GetReceiverIds() []int64 {
	if m != nil {
		return m.ReceiverIds
	}
	return nil
}

func (m *BackstageSendToUserRequest) GetVipLevels() []int64 {
	if m != nil {
		return m.VipLevels
	}
	return nil
}

func (m *BackstageSendToUserRequest) GetIsSaveAsEvent() bool {
	if m != nil {
		return m.IsSaveAsEvent
	}
	return false
}

func (m *BackstageSendToUserRequest) GetClientEventName() string {
	if m != nil {
		return m.ClientEventName
	}
	return ""
}

func (m *BackstageSendToUserRequest) GetClientEventMemo() string {
	if m != nil {
		return m.ClientEventMemo
	}
	return ""
}

func (m *BackstageSendToUserRequest) GetClientEventId() int64 {
	if m != nil {
		return m.ClientEventId
	}
	return 0
}

func (m *BackstageSendToUserRequest) GetTemplates() []*Template {
	if m != nil {
		return m.Templates
	}
	return nil
}

type GetClientEventSummaryRequest struct {
	ClientId int64                 `protobuf:"varint,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	IsSystem *wrapperspb.BoolValue `protobuf:"bytes,2,opt,name=is_system,json=isSystem,proto3" json:"is_system,omitempty"`
}

func (m *GetClientEventSummaryRequest) Reset()         { *m = GetClientEventSummaryRequest{} }
func (m *GetClientEventSummaryRequest) String() string { return proto.CompactTextString(m) }
func (*GetClientEventSummaryRequest) ProtoMessage()    {}

func (m *GetClientEventSummaryRequest) GetClientId() int64 {
	if m != nil {
		return m.ClientId
	}
	return 0
}

func (m *GetClientEventSummaryRequest) GetIsSystem() *wrapperspb.BoolValue {
	if m != nil {
		return m.IsSystem
	}
	return nil
}

type ClientEventSummary struct {
	ClientEventId int64  `protobuf:"varint,1,opt,name=client_event_id,json=clientEventId,proto3" json:"client_event_id,omitempty"`
	ClientId      int64  `protobuf:"varint,2,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	EventName     string `protobuf:"bytes,3,opt,name=event_name,json=eventName,proto3" json:"event_name,omitempty"`
}

func (m *ClientEventSummary) Reset()         { *m = ClientEventSummary{} }
func (m *ClientEventSummary) String() string { return proto.CompactTextString(m) }
func (*ClientEventSummary) ProtoMessage()    {}

func (m *ClientEventSummary) GetClientEventId() int64 {
	if m != nil {
		return m.ClientEventId
	}
	return 0
}

func (m *ClientEventSummary) GetClientId() int64 {
	if m != nil {
		return m.ClientId
	}
	return 0
}

func (m *ClientEventSummary) GetEventName() string {
	if m != nil {
		return m.EventName
	}
	return ""
}

type ClientEventSummaryList struct {
	List []*ClientEventSummary `protobuf:"bytes,1,rep,name=list,proto3" json:"list,omitempty"`
}

func (m *ClientEventSummaryList) Reset()         { *m = ClientEventSummaryList{} }
func (m *ClientEventSummaryList) String() string { return proto.CompactTextString(m) }
func (*ClientEventSummaryList) ProtoMessage()    {}

func (m *ClientEventSummaryList) GetList() []*ClientEventSummary {
	if m != nil {
		return m.List
	}
	return nil
}

type GetClientTemplatesRequest struct {
	ClientId      int64 `protobuf:"varint,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	ClientEventId int64 `protobuf:"varint,2,opt,name=client_event_id,json=clientEventId,proto3" json:"client_event_id,omitempty"`
}

func (m *GetClientTemplatesRequest) Reset()         { *m = GetClientTemplatesRequest{} }
func (m *GetClientTemplatesRequest) String() string { return proto.CompactTextString(m) }
func (*GetClientTemplatesRequest) ProtoMessage()    {}

func (m *GetClientTemplatesRequest) GetClientId() int64 {
	if m != nil {
		return m.ClientId
	}
	return 0
}

func (m *GetClientTemplatesRequest) GetClientEventId() int64 {
	if m != nil {
		return m.ClientEventId
	}
	return 0
}

type ClientTemplateList struct {
	List []*TemplateWitKeyList `protobuf:"bytes,1,rep,name=list,proto3" json:"list,omitempty"`
}

func (m *ClientTemplateList) Reset()         { *m = ClientTemplateList{} }
func (m *ClientTemplateList) String() string { return proto.CompactTextString(m) }
func (*ClientTemplateList) ProtoMessage()    {}

func (m *ClientTemplateList) GetList() []*TemplateWitKeyList {
	if m != nil {
		return m.List
	}
	return nil
}

type GetNotifyTaskListRequest struct {
	ClientId      int64  `protobuf:"varint,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	TaskName      string `protobuf:"bytes,2,opt,name=task_name,json=taskName,proto3" json:"task_name,omitempty"`
	IsFuzzy       bool   `protobuf:"varint,3,opt,name=is_fuzzy,json=isFuzzy,proto3" json:"is_fuzzy,omitempty"`
	SenderAccount string `protobuf:"bytes,4,opt,name=sender_account,json=senderAccount,proto3" json:"sender_account,omitempty"`
	StartAt       int64  `protobuf:"varint,5,opt,name=start_at,json=startAt,proto3" json:"start_at,omitempty"`
	EndAt         int64  `protobuf:"varint,6,opt,name=end_at,json=endAt,proto3" json:"end_at,omitempty"`
	PageSize      int64  `protobuf:"varint,7,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	NowPage       int64  `protobuf:"varint,8,opt,name=now_page,json=nowPage,proto3" json:"now_page,omitempty"`
}

func (m *GetNotifyTaskListRequest) Reset()         { *m = GetNotifyTaskListRequest{} }
func (m *GetNotifyTaskListRequest) String() string { return proto.CompactTextString(m) }
func (*GetNotifyTaskListRequest) ProtoMessage()    {}

func (m *GetNotifyTaskListRequest) GetClientId() int64 {
	if m != nil {
		return m.ClientId
	}
	return 0
}

func (m *GetNotifyTaskListRequest) GetTaskName() string {
	if m != nil {
		return m.TaskName
	}
	return ""
}

func (m *GetNotifyTaskListRequest) GetIsFuzzy() bool {
	if m != nil {
		return m.IsFuzzy
	}
	return false
}

func (m *GetNotifyTaskListRequest) GetSenderAccount() string {
	if m != nil {
		return m.SenderAccount
	}
	return ""
}

func (m *GetNotifyTaskListRequest) GetStartAt() int64 {
	if m != nil {
		return m.StartAt
	}
	return 0
}

func (m *GetNotifyTaskListRequest) GetEndAt() int64 {
	if m != nil {
		return m.EndAt
	}
	return 0
}

func (m *GetNotifyTaskListRequest) GetPageSize() int64 {
	if m != nil {
		return m.PageSize
	}
	return 0
}

func (m *GetNotifyTaskListRequest) GetNowPage() int64 {
	if m != nil {
		return m.NowPage
	}
	return 0
}

type NotifyTask struct {
	TaskId          int64    `protobuf:"varint,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	TaskName        string   `protobuf:"bytes,2,opt,name=task_name,json=taskName,proto3" json:"task_name,omitempty"`
	SenderAccount   string   `protobuf:"bytes,3,opt,name=sender_account,json=senderAccount,proto3" json:"sender_account,omitempty"`
	SenderIp        string   `protobuf:"bytes,4,opt,name=sender_ip,json=senderIp,proto3" json:"sender_ip,omitempty"`
	ReceiverCount   int32    `protobuf:"varint,5,opt,name=receiver_count,json=receiverCount,proto3" json:"receiver_count,omitempty"`
	ReceiverAccount []string `protobuf:"bytes,6,rep,name=receiver_account,json=receiverAccount,proto3" json:"receiver_account,omitempty"`
	NotifyLevel     int32    `protobuf:"varint,7,opt,name=notify_level,json=notifyLevel,proto3" json:"notify_level,omitempty"`
	TaskStatus      int32    `protobuf:"varint,8,opt,name=task_status,json=taskStatus,proto3" json:"task_status,omitempty"`
	ErrorMessage    string   `protobuf:"bytes,9,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	CreateAt        int64    `protobuf:"varint,10,opt,name=create_at,json=createAt,proto3" json:"create_at,omitempty"`
	UpdateAt        int64    `protobuf:"varint,11,opt,name=update_at,json=updateAt,proto3" json:"update_at,omitempty"`
}

func (m *NotifyTask) Reset()         { *m = NotifyTask{} }
func (m *NotifyTask) String() string { return proto.CompactTextString(m) }
func (*NotifyTask) ProtoMessage()    {}

func (m *NotifyTask) GetTaskId() int64 {
	if m != nil {
		return m.TaskId
	}
	return 0
}

func (m *NotifyTask) GetTaskName() string {
	if m != nil {
		return m.TaskName
	}
	return ""
}

func (m *NotifyTask) GetSenderAccount() string {
	if m != nil {
		return m.SenderAccount
	}
	return ""
}

func (m *NotifyTask) GetSenderIp() string {
	if m != nil {
		return m.SenderIp
	}
	return ""
}

func (m *NotifyTask) GetReceiverCount() int32 {
	if m != nil {
		return m.ReceiverCount
	}
	return 0
}

func (m *NotifyTask) GetReceiverAccount() []string {
	if m != nil {
		return m.ReceiverAccount
	}
	return nil
}

func (m *NotifyTask) GetNotifyLevel() int32 {
	if m != nil {
		return m.NotifyLevel
	}
	return 0
}

func (m *NotifyTask) GetTaskStatus() int32 {
	if m != nil {
		return m.TaskStatus
	}
	return 0
}

func (m *NotifyTask) GetErrorMessage() string {
	if m != nil {
		return m.ErrorMessage
	}
	return ""
}

func (m *NotifyTask) GetCreateAt() int64 {
	if m != nil {
		return m.CreateAt
	}
	return 0
}

func (m *NotifyTask) GetUpdateAt() int64 {
	if m != nil {
		return m.UpdateAt
	}
	return 0
}

type NotifyTaskList struct {
	List      []*NotifyTask `protobuf:"bytes,1,rep,name=list,proto3" json:"list,omitempty"`
	TotalRows int64         `protobuf:"varint,2,opt,name=total_rows,json=totalRows,proto3" json:"total_rows,omitempty"`
	TotalPage int64         `protobuf:"varint,3,opt,name=total_page,json=totalPage,proto3" json:"total_page,omitempty"`
	NowPage   int64         `protobuf:"varint,4,opt,name=now_page,json=nowPage,proto3" json:"now_page,omitempty"`
}

func (m *NotifyTaskList) Reset()         { *m = NotifyTaskList{} }
func (m *NotifyTaskList) String() string { return proto.CompactTextString(m) }
func (*NotifyTaskList) ProtoMessage()    {}

func (m *NotifyTaskList) GetList() []*NotifyTask {
	if m != nil {
		return m.List
	}
	return nil
}

func (m *NotifyTaskList) GetTotalRows() int64 {
	if m != nil {
		return m.TotalRows
	}
	return 0
}

func (m *NotifyTaskList) GetTotalPage() int64 {
	if m != nil {
		return m.TotalPage
	}
	return 0
}

func (m *NotifyTaskList) GetNowPage() int64 {
	if m != nil {
		return m.NowPage
	}
	return 0
}

type GetNotifyTaskDetailsRequest struct {
	TaskId int64 `protobuf:"varint,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
}

func (m *GetNotifyTaskDetailsRequest) Reset()         { *m = GetNotifyTaskDetailsRequest{} }
func (m *GetNotifyTaskDetailsRequest) String() string { return proto.CompactTextString(m) }
func (*GetNotifyTaskDetailsRequest) ProtoMessage()    {}

func (m *GetNotifyTaskDetailsRequest) GetTaskId() int64 {
	if m != nil {
		return m.TaskId
	}
	return 0
}

type NotifyTaskDetail struct {
	NotifyType int32  `protobuf:"varint,1,opt,name=notify_type,json=notifyType,proto3" json:"notify_type,omitempty"`
	Title      string `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	Content    string `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
}

func (m *NotifyTaskDetail) Reset()         { *m = NotifyTaskDetail{} }
func (m *NotifyTaskDetail) String() string { return proto.CompactTextString(m) }
func (*NotifyTaskDetail) ProtoMessage()    {}

func (m *NotifyTaskDetail) GetNotifyType() int32 {
	if m != nil {
		return m.NotifyType
	}
	return 0
}

func (m *NotifyTaskDetail) GetTitle() string {
	if m != nil {
		return m.Title
	}
	return ""
}

func (m *NotifyTaskDetail) GetContent() string {
	if m != nil {
		return m.Content
	}
	return ""
}

type NotifyTaskDetailList struct {
	List []*NotifyTaskDetail `protobuf:"bytes,1,rep,name=list,proto3" json:"list,omitempty"`
}

func (m *NotifyTaskDetailList) Reset()         { *m = NotifyTaskDetailList{} }
func (m *NotifyTaskDetailList) String() string { return proto.CompactTextString(m) }
func (*NotifyTaskDetailList) ProtoMessage()    {}

func (m *NotifyTaskDetailList) GetList() []*NotifyTaskDetail {
	if m != nil {
		return m.List
	}
	return nil
}

type GetClientEventRequest struct {
	ClientId  int64                 `protobuf:"varint,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	EventName string                `protobuf:"bytes,2,opt,name=event_name,json=eventName,proto3" json:"event_name,omitempty"`
	IsFuzzy   bool                  `protobuf:"varint,3,opt,name=is_fuzzy,json=isFuzzy,proto3" json:"is_fuzzy,omitempty"`
	Account   string                `protobuf:"bytes,4,opt,name=account,proto3" json:"account,omitempty"`
	Platform  int32                 `protobuf:"varint,5,opt,name=platform,proto3" json:"platform,omitempty"`
	IsSystem  *wrapperspb.BoolValue `protobuf:"bytes,6,opt,name=is_system,json=isSystem,proto3" json:"is_system,omitempty"`
	// An event matches only when it has every listed channel enabled.
	NotifyTypes []int32 `protobuf:"varint,7,rep,packed,name=notify_types,json=notifyTypes,proto3" json:"notify_types,omitempty"`
	StartAt     int64   `protobuf:"varint,8,opt,name=start_at,json=startAt,proto3" json:"start_at,omitempty"`
	EndAt       int64   `protobuf:"varint,9,opt,name=end_at,json=endAt,proto3" json:"end_at,omitempty"`
	PageSize    int64   `protobuf:"varint,10,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	NowPage     int64   `protobuf:"varint,11,opt,name=now_page,json=nowPage,proto3" json:"now_page,omitempty"`
}

func (m *GetClientEventRequest) Reset()         { *m = GetClientEventRequest{} }
func (m *GetClientEventRequest) String() string { return proto.CompactTextString(m) }
func (*GetClientEventRequest) ProtoMessage()    {}

func (m *GetClientEventRequest) GetClientId() int64 {
	if m != nil {
		return m.ClientId
	}
	return 0
}

func (m *GetClientEventRequest) GetEventName() string {
	if m != nil {
		return m.EventName
	}
	return ""
}

func (m *GetClientEventRequest) GetIsFuzzy() bool {
	if m != nil {
		return m.IsFuzzy
	}
	return false
}

func (m *GetClientEventRequest) GetAccount() string {
	if m != nil {
		return m.Account
	}
	return ""
}

func (m *GetClientEventRequest) GetPlatform() int32 {
	if m != nil {
		return m.Platform
	}
	return 0
}

func (m *GetClientEventRequest) GetIsSystem() *wrapperspb.BoolValue {
	if m != nil {
		return m.IsSystem
	}
	return nil
}

func (m *GetClientEventRequest) GetNotifyTypes() []int32 {
	if m != nil {
		return m.NotifyTypes
	}
	return nil
}

func (m *GetClientEventRequest) GetStartAt() int64 {
	if m != nil {
		return m.StartAt
	}
	return 0
}

func (m *GetClientEventRequest) GetEndAt() int64 {
	if m != nil {
		return m.EndAt
	}
	return 0
}

func (m *GetClientEventRequest) GetPageSize() int64 {
	if m != nil {
		return m.PageSize
	}
	return 0
}

func (m *GetClientEventRequest) GetNowPage() int64 {
	if m != nil {
		return m.NowPage
	}
	return 0
}

type ClientEvent struct {
	ClientEventId int64   `protobuf:"varint,1,opt,name=client_event_id,json=clientEventId,proto3" json:"client_event_id,omitempty"`
	ClientId      int64   `protobuf:"varint,2,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	EventName     string  `protobuf:"bytes,3,opt,name=event_name,json=eventName,proto3" json:"event_name,omitempty"`
	EventMemo     string  `protobuf:"bytes,4,opt,name=event_memo,json=eventMemo,proto3" json:"event_memo,omitempty"`
	NotifyTypes   []int32 `protobuf:"varint,5,rep,packed,name=notify_types,json=notifyTypes,proto3" json:"notify_types,omitempty"`
	EditorAccount string  `protobuf:"bytes,6,opt,name=editor_account,json=editorAccount,proto3" json:"editor_account,omitempty"`
	Platform      int32   `protobuf:"varint,7,opt,name=platform,proto3" json:"platform,omitempty"`
	IsSystem      bool    `protobuf:"varint,8,opt,name=is_system,json=isSystem,proto3" json:"is_system,omitempty"`
	CreateAt      int64   `protobuf:"varint,9,opt,name=create_at,json=createAt,proto3" json:"create_at,omitempty"`
	UpdateAt      int64   `protobuf:"varint,10,opt,name=update_at,json=updateAt,proto3" json:"update_at,omitempty"`
}

func (m *ClientEvent) Reset()         { *m = ClientEvent{} }
func (m *ClientEvent) String() string { return proto.CompactTextString(m) }
func (*ClientEvent) ProtoMessage()    {}

func (m *ClientEvent) GetClientEventId() int64 {
	if m != nil {
		return m.ClientEventId
	}
	return 0
}

func (m *ClientEvent) GetClientId() int64 {
	if m != nil {
		return m.ClientId
	}
	return 0
}

func (m *ClientEvent) GetEventName() string {
	if m != nil {
		return m.EventName
	}
	return ""
}

func (m *ClientEvent) GetEventMemo() string {
	if m != nil {
		return m.EventMemo
	}
	return ""
}

func (m *ClientEvent) GetNotifyTypes() []int32 {
	if m != nil {
		return m.NotifyTypes
	}
	return nil
}

func (m *ClientEvent) GetEditorAccount() string {
	if m != nil {
		return m.EditorAccount
	}
	return ""
}

func (m *ClientEvent) GetPlatform() int32 {
	if m != nil {
		return m.Platform
	}
	return 0
}

func (m *ClientEvent) GetIsSystem() bool {
	if m != nil {
		return m.IsSystem
	}
	return false
}

func (m *ClientEvent) GetCreateAt() int64 {
	if m != nil {
		return m.CreateAt
	}
	return 0
}

func (m *ClientEvent) GetUpdateAt() int64 {
	if m != nil {
		return m.UpdateAt
	}
	return 0
}

type ClientEventList struct {
	List      []*ClientEvent `protobuf:"bytes,1,rep,name=list,proto3" json:"list,omitempty"`
	TotalRows int64          `protobuf:"varint,2,opt,name=total_rows,json=totalRows,proto3" json:"total_rows,omitempty"`
	TotalPage int64          `protobuf:"varint,3,opt,name=total_page,json=totalPage,proto3" json:"total_page,omitempty"`
	NowPage   int64          `protobuf:"varint,4,opt,name=now_page,json=nowPage,proto3" json:"now_page,omitempty"`
}

func (m *ClientEventList) Reset()         { *m = ClientEventList{} }
func (m *ClientEventList) String() string { return proto.CompactTextString(m) }
func (*ClientEventList) ProtoMessage()    {}

func (m *ClientEventList) GetList() []*ClientEvent {
	if m != nil {
		return m.List
	}
	return nil
}

func (m *ClientEventList) GetTotalRows() int64 {
	if m != nil {
		return m.TotalRows
	}
	return 0
}

func (m *ClientEventList) GetTotalPage() int64 {
	if m != nil {
		return m.TotalPage
	}
	return 0
}

func (m *ClientEventList) GetNowPage() int64 {
	if m != nil {
		return m.NowPage
	}
	return 0
}

type UpdateClientEventRequest struct {
	ClientId      int64       `protobuf:"varint,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	UserId        int64       `protobuf:"varint,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	ClientEventId int64       `protobuf:"varint,3,opt,name=client_event_id,json=clientEventId,proto3" json:"client_event_id,omitempty"`
	EventName     string      `protobuf:"bytes,4,opt,name=event_name,json=eventName,proto3" json:"event_name,omitempty"`
	NotifyTypes   []int32     `protobuf:"varint,5,rep,packed,name=notify_types,json=notifyTypes,proto3" json:"notify_types,omitempty"`
	Memo          string      `protobuf:"bytes,6,opt,name=memo,proto3" json:"memo,omitempty"`
	Templates     []*Template `protobuf:"bytes,7,rep,name=templates,proto3" json:"templates,omitempty"`
}

func (m *UpdateClientEventRequest) Reset()         { *m = UpdateClientEventRequest{} }
func (m *UpdateClientEventRequest) String() string { return proto.CompactTextString(m) }
func (*UpdateClientEventRequest) ProtoMessage()    {}

func (m *UpdateClientEventRequest) GetClientId() int64 {
	if m != nil {
		return m.ClientId
	}
	return 0
}

func (m *UpdateClientEventRequest) GetUserId() int64 {
	if m != nil {
		return m.UserId
	}
	return 0
}

func (m *UpdateClientEventRequest) GetClientEventId() int64 {
	if m != nil {
		return m.ClientEventId
	}
	return 0
}

func (m *UpdateClientEventRequest) GetEventName() string {
	if m != nil {
		return m.EventName
	}
	return ""
}

func (m *UpdateClientEventRequest) GetNotifyTypes() []int32 {
	if m != nil {
		return m.NotifyTypes
	}
	return nil
}

func (m *UpdateClientEventRequest) GetMemo() string {
	if m != nil {
		return m.Memo
	}
	return ""
}

func (m *UpdateClientEventRequest) GetTemplates() []*Template {
	if m != nil {
		return m.Templates
	}
	return nil
}

type DeleteClientEventRequest struct {
	ClientId      int64 `protobuf:"varint,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	ClientEventId int64 `protobuf:"varint,2,opt,name=client_event_id,json=clientEventId,proto3" json:"client_event_id,omitempty"`
}

func (m *DeleteClientEventRequest) Reset()         { *m = DeleteClientEventRequest{} }
func (m *DeleteClientEventRequest) String() string { return proto.CompactTextString(m) }
func (*DeleteClientEventRequest) ProtoMessage()    {}

func (m *DeleteClientEventRequest) GetClientId() int64 {
	if m != nil {
		return m.ClientId
	}
	return 0
}

func (m *DeleteClientEventRequest) GetClientEventId() int64 {
	if m != nil {
		return m.ClientEventId
	}
	return 0
}

type CreateClientEventRequest struct {
	ClientId  int64       `protobuf:"varint,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	UserId    int64       `protobuf:"varint,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	EventName string      `protobuf:"bytes,3,opt,name=event_name,json=eventName,proto3" json:"event_name,omitempty"`
	EventMemo string      `protobuf:"bytes,4,opt,name=event_memo,json=eventMemo,proto3" json:"event_memo,omitempty"`
	Templates []*Template `protobuf:"bytes,5,rep,name=templates,proto3" json:"templates,omitempty"`
}

func (m *CreateClientEventRequest) Reset()         { *m = CreateClientEventRequest{} }
func (m *CreateClientEventRequest) String() string { return proto.CompactTextString(m) }
func (*CreateClientEventRequest) ProtoMessage()    {}

func (m *CreateClientEventRequest) GetClientId() int64 {
	if m != nil {
		return m.ClientId
	}
	return 0
}

func (m *CreateClientEventRequest) GetUserId() int64 {
	if m != nil {
		return m.UserId
	}
	return 0
}

func (m *CreateClientEventRequest) GetEventName() string {
	if m != nil {
		return m.EventName
	}
	return ""
}

func (m *CreateClientEventRequest) GetEventMemo() string {
	if m != nil {
		return m.EventMemo
	}
	return ""
}

func (m *CreateClientEventRequest) GetTemplates() []*Template {
	if m != nil {
		return m.Templates
	}
	return nil
}

func init() {
	proto.RegisterEnum("backstage_notify.BackStageNotifyEvent", BackStageNotifyEvent_name, BackStageNotifyEvent_value)
	proto.RegisterType((*Empty)(nil), "backstage_notify.Empty")
	proto.RegisterType((*ConnectionRequest)(nil), "backstage_notify.ConnectionRequest")
	proto.RegisterType((*CloseRequest)(nil), "backstage_notify.CloseRequest")
	proto.RegisterType((*Notify)(nil), "backstage_notify.Notify")
	proto.RegisterType((*Receiver)(nil), "backstage_notify.Receiver")
	proto.RegisterType((*SendRequest)(nil), "backstage_notify.SendRequest")
	proto.RegisterMapType((map[string]string)(nil), "backstage_notify.SendRequest.KeyMapEntry")
	proto.RegisterType((*GetNotifyRecordRequest)(nil), "backstage_notify.GetNotifyRecordRequest")
	proto.RegisterType((*GetNotifyRecordResponse)(nil), "backstage_notify.GetNotifyRecordResponse")
	proto.RegisterType((*UpdateNotifyRecordRequest)(nil), "backstage_notify.UpdateNotifyRecordRequest")
	proto.RegisterType((*UpdateNotifyRecordResponse)(nil), "backstage_notify.UpdateNotifyRecordResponse")
	proto.RegisterType((*GetUnreadNotifyCountRequest)(nil), "backstage_notify.GetUnreadNotifyCountRequest")
	proto.RegisterType((*GetUnreadNotifyCountResponse)(nil), "backstage_notify.GetUnreadNotifyCountResponse")
	proto.RegisterType((*AllReadRequest)(nil), "backstage_notify.AllReadRequest")
	proto.RegisterType((*GetNotifyByIdRequest)(nil), "backstage_notify.GetNotifyByIdRequest")
	proto.RegisterType((*ForwardNotifyRequest)(nil), "backstage_notify.ForwardNotifyRequest")
	proto.RegisterType((*UserNotifyRecord)(nil), "backstage_notify.UserNotifyRecord")
	proto.RegisterType((*GetUserNotifyRecordRequest)(nil), "backstage_notify.GetUserNotifyRecordRequest")
	proto.RegisterType((*GetUserNotifyRecordResponse)(nil), "backstage_notify.GetUserNotifyRecordResponse")
	proto.RegisterType((*Template)(nil), "backstage_notify.Template")
	proto.RegisterType((*TemplateWitKeyList)(nil), "backstage_notify.TemplateWitKeyList")
	proto.RegisterType((*BackstageSendToUserRequest)(nil), "backstage_notify.BackstageSendToUserRequest")
	proto.RegisterType((*GetClientEventSummaryRequest)(nil), "backstage_notify.GetClientEventSummaryRequest")
	proto.RegisterType((*ClientEventSummary)(nil), "backstage_notify.ClientEventSummary")
	proto.RegisterType((*ClientEventSummaryList)(nil), "backstage_notify.ClientEventSummaryList")
	proto.RegisterType((*GetClientTemplatesRequest)(nil), "backstage_notify.GetClientTemplatesRequest")
	proto.RegisterType((*ClientTemplateList)(nil), "backstage_notify.ClientTemplateList")
	proto.RegisterType((*GetNotifyTaskListRequest)(nil), "backstage_notify.GetNotifyTaskListRequest")
	proto.RegisterType((*NotifyTask)(nil), "backstage_notify.NotifyTask")
	proto.RegisterType((*NotifyTaskList)(nil), "backstage_notify.NotifyTaskList")
	proto.RegisterType((*GetNotifyTaskDetailsRequest)(nil), "backstage_notify.GetNotifyTaskDetailsRequest")
	proto.RegisterType((*NotifyTaskDetail)(nil), "backstage_notify.NotifyTaskDetail")
	proto.RegisterType((*NotifyTaskDetailList)(nil), "backstage_notify.NotifyTaskDetailList")
	proto.RegisterType((*GetClientEventRequest)(nil), "backstage_notify.GetClientEventRequest")
	proto.RegisterType((*ClientEvent)(nil), "backstage_notify.ClientEvent")
	proto.RegisterType((*ClientEventList)(nil), "backstage_notify.ClientEventList")
	proto.RegisterType((*UpdateClientEventRequest)(nil), "backstage_notify.UpdateClientEventRequest")
	proto.RegisterType((*DeleteClientEventRequest)(nil), "backstage_notify.DeleteClientEventRequest")
	proto.RegisterType((*CreateClientEventRequest)(nil), "backstage_notify.CreateClientEventRequest")
}
