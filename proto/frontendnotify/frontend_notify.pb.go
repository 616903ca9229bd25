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

// Package frontendnotify holds the wire types of the frontend_notify
// proto package. The Go types are maintained by hand against
// frontend_notify.proto; the protobuf struct tags are the source of
// truth for field numbers and must stay in sync with the IDL.
package frontendnotify

import (
	"github.com/golang/protobuf/proto"
)

// SystemNotifyEvent enumerates the frontend system events a caller may
// trigger through SystemToFrontendUser.
type SystemNotifyEvent int32

const (
	SystemNotifyEvent_NONE                       SystemNotifyEvent = 0
	SystemNotifyEvent_NORMAL_INFO                SystemNotifyEvent = 1
	SystemNotifyEvent_LOGIN_ANOMALY              SystemNotifyEvent = 2
	SystemNotifyEvent_REGISTER_SUCCESS           SystemNotifyEvent = 3
	SystemNotifyEvent_DEPOSIT_SUCCESS            SystemNotifyEvent = 4
	SystemNotifyEvent_WITHDRAW_SUCCESS           SystemNotifyEvent = 5
	SystemNotifyEvent_WITHDRAW_FAIL              SystemNotifyEvent = 6
	SystemNotifyEvent_KYC_VERIFY_SUCCESS         SystemNotifyEvent = 7
	SystemNotifyEvent_KYC_VERIFY_FAIL            SystemNotifyEvent = 8
	SystemNotifyEvent_KYC_REVERIFY               SystemNotifyEvent = 9
	SystemNotifyEvent_CREDIT_CARD_VERIFY_SUCCESS SystemNotifyEvent = 10
	SystemNotifyEvent_CREDIT_CARD_VERIFY_FAIL    SystemNotifyEvent = 11
	SystemNotifyEvent_LOGIN_WARNING              SystemNotifyEvent = 12
	SystemNotifyEvent_UPDATE_PROFILE_SUCCESS     SystemNotifyEvent = 13
	SystemNotifyEvent_LOGIN_SUCCESS              SystemNotifyEvent = 14
	SystemNotifyEvent_VERIFY_EMAIL               SystemNotifyEvent = 15
	SystemNotifyEvent_VERIFY_PHONE               SystemNotifyEvent = 16
	SystemNotifyEvent_NEW_EVENT_ONLINE           SystemNotifyEvent = 17
	SystemNotifyEvent_VIP_LEVEL_UP               SystemNotifyEvent = 18
	SystemNotifyEvent_BONUS_EXPIRATION           SystemNotifyEvent = 19
	SystemNotifyEvent_EVENT_COMPLETION           SystemNotifyEvent = 20
	SystemNotifyEvent_RECEIVE_TIPS               SystemNotifyEvent = 21
	SystemNotifyEvent_GIVE_TIPS                  SystemNotifyEvent = 22
	SystemNotifyEvent_RECEIVE_BIRTHDAY_BONUS     SystemNotifyEvent = 23
	SystemNotifyEvent_ACTIVITY_SERIAL_NUMBER     SystemNotifyEvent = 24
	SystemNotifyEvent_RECEIVE_BONUS              SystemNotifyEvent = 25
	SystemNotifyEvent_FORGET_PASSWORD            SystemNotifyEvent = 26
	SystemNotifyEvent_LOGIN_PASSWORD_RESET       SystemNotifyEvent = 27
	SystemNotifyEvent_LOGIN_PASSWORD_CHANGE      SystemNotifyEvent = 28
	SystemNotifyEvent_WITHDRAW_PASSWORD_SET      SystemNotifyEvent = 29
	SystemNotifyEvent_WITHDRAW_PASSWORD_RESET    SystemNotifyEvent = 30
)

var SystemNotifyEvent_name = map[int32]string{
	0:  "NONE",
	1:  "NORMAL_INFO",
	2:  "LOGIN_ANOMALY",
	3:  "REGISTER_SUCCESS",
	4:  "DEPOSIT_SUCCESS",
	5:  "WITHDRAW_SUCCESS",
	6:  "WITHDRAW_FAIL",
	7:  "KYC_VERIFY_SUCCESS",
	8:  "KYC_VERIFY_FAIL",
	9:  "KYC_REVERIFY",
	10: "CREDIT_CARD_VERIFY_SUCCESS",
	11: "CREDIT_CARD_VERIFY_FAIL",
	12: "LOGIN_WARNING",
	13: "UPDATE_PROFILE_SUCCESS",
	14: "LOGIN_SUCCESS",
	15: "VERIFY_EMAIL",
	16: "VERIFY_PHONE",
	17: "NEW_EVENT_ONLINE",
	18: "VIP_LEVEL_UP",
	19: "BONUS_EXPIRATION",
	20: "EVENT_COMPLETION",
	21: "RECEIVE_TIPS",
	22: "GIVE_TIPS",
	23: "RECEIVE_BIRTHDAY_BONUS",
	24: "ACTIVITY_SERIAL_NUMBER",
	25: "RECEIVE_BONUS",
	26: "FORGET_PASSWORD",
	27: "LOGIN_PASSWORD_RESET",
	28: "LOGIN_PASSWORD_CHANGE",
	29: "WITHDRAW_PASSWORD_SET",
	30: "WITHDRAW_PASSWORD_RESET",
}

var SystemNotifyEvent_value = map[string]int32{
	"NONE":                       0,
	"NORMAL_INFO":                1,
	"LOGIN_ANOMALY":              2,
	"REGISTER_SUCCESS":           3,
	"DEPOSIT_SUCCESS":            4,
	"WITHDRAW_SUCCESS":           5,
	"WITHDRAW_FAIL":              6,
	"KYC_VERIFY_SUCCESS":         7,
	"KYC_VERIFY_FAIL":            8,
	"KYC_REVERIFY":               9,
	"CREDIT_CARD_VERIFY_SUCCESS": 10,
	"CREDIT_CARD_VERIFY_FAIL":    11,
	"LOGIN_WARNING":              12,
	"UPDATE_PROFILE_SUCCESS":     13,
	"LOGIN_SUCCESS":              14,
	"VERIFY_EMAIL":               15,
	"VERIFY_PHONE":               16,
	"NEW_EVENT_ONLINE":           17,
	"VIP_LEVEL_UP":               18,
	"BONUS_EXPIRATION":           19,
	"EVENT_COMPLETION":           20,
	"RECEIVE_TIPS":               21,
	"GIVE_TIPS":                  22,
	"RECEIVE_BIRTHDAY_BONUS":     23,
	"ACTIVITY_SERIAL_NUMBER":     24,
	"RECEIVE_BONUS":              25,
	"FORGET_PASSWORD":            26,
	"LOGIN_PASSWORD_RESET":       27,
	"LOGIN_PASSWORD_CHANGE":      28,
	"WITHDRAW_PASSWORD_SET":      29,
	"WITHDRAW_PASSWORD_RESET":    30,
}

func (x SystemNotifyEvent) String() string {
	return proto.EnumName(SystemNotifyEvent_name, int32(x))
}

type Empty struct{}

func (m *Empty) Reset()         { *m = Empty{} }
func (m *Empty) String() string { return proto.CompactTextString(m) }
func (*Empty) ProtoMessage()    {}

type ConnectionRequest struct {
	ClientId int64 `protobuf:"varint,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	UserId   int64 `protobuf:"varint,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
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

// Notify is one in-app notification as shown to the user. CreateAt is
// unix milliseconds.
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

// Receiver is the stream element of CreateConnection.
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
	ClientId    int64             `protobuf:"varint,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	UserId      int64             `protobuf:"varint,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	NotifyEvent SystemNotifyEvent `protobuf:"varint,3,opt,name=notify_event,json=notifyEvent,proto3,enum=frontend_notify.SystemNotifyEvent" json:"notify_event,omitempty"`
	KeyMap      map[string]string `protobuf:"bytes,4,rep,name=key_map,json=keyMap,proto3" json:"key_map,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"bytes,2,opt,name=value,proto3"`
}

func (m *SendRequest) Reset()         { *m = SendRequest{} }
func (m *SendRequest) String() string { return proto.CompactTextString(m) }
func (*SendRequest) ProtoMessage()    {}

func (m *SendRequest) GetClientId() int64 {
	if m != nil {
		return m.ClientId
	}
	return 0
}

func (m *SendRequest) GetUserId() int64 {
	if m != nil {
		return m.UserId
	}
	return 0
}

func (m *SendRequest) GetNotifyEvent() SystemNotifyEvent {
	if m != nil {
		return m.NotifyEvent
	}
	return SystemNotifyEvent_NONE
}

func (m *SendRequest) GetKeyMap() map[string]string {
	if m != nil {
		return m.KeyMap
	}
	return nil
}

type SendMessageInAppRequest struct {
	ClientId    int64  `protobuf:"varint,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	UserId      int64  `protobuf:"varint,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	NotifyId    int64  `protobuf:"varint,3,opt,name=notify_id,json=notifyId,proto3" json:"notify_id,omitempty"`
	NotifyLevel int32  `protobuf:"varint,4,opt,name=notify_level,json=notifyLevel,proto3" json:"notify_level,omitempty"`
	Title       string `protobuf:"bytes,5,opt,name=title,proto3" json:"title,omitempty"`
	Content     string `protobuf:"bytes,6,opt,name=content,proto3" json:"content,omitempty"`
}

func (m *SendMessageInAppRequest) Reset()         { *m = SendMessageInAppRequest{} }
func (m *SendMessageInAppRequest) String() string { return proto.CompactTextString(m) }
func (*SendMessageInAppRequest) ProtoMessage()    {}

func (m *SendMessageInAppRequest) GetClientId() int64 {
	if m != nil {
		return m.ClientId
	}
	return 0
}

func (m *SendMessageInAppRequest) GetUserId() int64 {
	if m != nil {
		return m.UserId
	}
	return 0
}

func (m *SendMessageInAppRequest) GetNotifyId() int64 {
	if m != nil {
		return m.NotifyId
	}
	return 0
}

func (m *SendMessageInAppRequest) GetNotifyLevel() int32 {
	if m != nil {
		return m.NotifyLevel
	}
	return 0
}

func (m *SendMessageInAppRequest) GetTitle() string {
	if m != nil {
		return m.Title
	}
	return ""
}

func (m *SendMessageInAppRequest) GetContent() string {
	if m != nil {
		return m.Content
	}
	return ""
}

// GetNotifyRecordRequest filters are unset when zero: NotifyStatus and
// NotifyLevel 0 mean no filter, NowPage 0 means page 1.
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
	ClientId int64 `protobuf:"varint,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	UserId   int64 `protobuf:"varint,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	// 0 marks every level read.
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
	ClientId int64   `protobuf:"varint,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	UserId   int64   `protobuf:"varint,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Notify   *Notify `protobuf:"bytes,3,opt,name=notify,proto3" json:"notify,omitempty"`
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

func (m *ForwardNotifyRequest) GetUserId() int64 {
	if m != nil {
		return m.UserId
	}
	return 0
}

func (m *ForwardNotifyRequest) GetNotify() *Notify {
	if m != nil {
		return m.Notify
	}
	return nil
}

func init() {
	proto.RegisterEnum("frontend_notify.SystemNotifyEvent", SystemNotifyEvent_name, SystemNotifyEvent_value)
	proto.RegisterType((*Empty)(nil), "frontend_notify.Empty")
	proto.RegisterType((*ConnectionRequest)(nil), "frontend_notify.ConnectionRequest")
	proto.RegisterType((*Notify)(nil), "frontend_notify.Notify")
	proto.RegisterType((*Receiver)(nil), "frontend_notify.Receiver")
	proto.RegisterType((*SendRequest)(nil), "frontend_notify.SendRequest")
	proto.RegisterMapType((map[string]string)(nil), "frontend_notify.SendRequest.KeyMapEntry")
	proto.RegisterType((*SendMessageInAppRequest)(nil), "frontend_notify.SendMessageInAppRequest")
	proto.RegisterType((*GetNotifyRecordRequest)(nil), "frontend_notify.GetNotifyRecordRequest")
	proto.RegisterType((*GetNotifyRecordResponse)(nil), "frontend_notify.GetNotifyRecordResponse")
	proto.RegisterType((*UpdateNotifyRecordRequest)(nil), "frontend_notify.UpdateNotifyRecordRequest")
	proto.RegisterType((*UpdateNotifyRecordResponse)(nil), "frontend_notify.UpdateNotifyRecordResponse")
	proto.RegisterType((*GetUnreadNotifyCountRequest)(nil), "frontend_notify.GetUnreadNotifyCountRequest")
	proto.RegisterType((*GetUnreadNotifyCountResponse)(nil), "frontend_notify.GetUnreadNotifyCountResponse")
	proto.RegisterType((*AllReadRequest)(nil), "frontend_notify.AllReadRequest")
	proto.RegisterType((*GetNotifyByIdRequest)(nil), "frontend_notify.GetNotifyByIdRequest")
	proto.RegisterType((*ForwardNotifyRequest)(nil), "frontend_notify.ForwardNotifyRequest")
}
