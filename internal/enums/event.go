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

package enums

import (
	"fmt"

	"github.com/j50301m/notify-server/internal/errs"
)

// NotifyEvent identifies a system event a tenant may send notifications
// for. Codes 17-20 belong to the backstage platform; the rest are
// frontend events. System event rows are seeded from this table and keep
// id and name immutable.
type NotifyEvent int64

const (
	EventNormalInfo                NotifyEvent = 1
	EventLoginAnomaly              NotifyEvent = 2
	EventRegisterSuccess           NotifyEvent = 3
	EventDepositSuccess            NotifyEvent = 4
	EventWithdrawSuccess           NotifyEvent = 5
	EventWithdrawFail              NotifyEvent = 6
	EventKycVerifySuccess          NotifyEvent = 7
	EventKycVerifyFail             NotifyEvent = 8
	EventKycReverify               NotifyEvent = 9
	EventCreditCardVerifySuccess   NotifyEvent = 10
	EventCreditCardVerifyFail      NotifyEvent = 11
	EventLoginWarning              NotifyEvent = 12
	EventUpdateProfileSuccess      NotifyEvent = 13
	EventLoginSuccess              NotifyEvent = 14
	EventVerifyEmail               NotifyEvent = 15
	EventVerifyPhone               NotifyEvent = 16
	EventBackstageVerifyKyc        NotifyEvent = 17
	EventBackstageVerifyWithdraw   NotifyEvent = 18
	EventBackstageVerifyDeposit    NotifyEvent = 19
	EventBackstageVerifyCreditCard NotifyEvent = 20
	EventNewEventOnline            NotifyEvent = 21
	EventVipLevelUp                NotifyEvent = 22
	EventBonusExpiration           NotifyEvent = 23
	EventEventCompletion           NotifyEvent = 24
	EventReceiveTips               NotifyEvent = 25
	EventGiveTips                  NotifyEvent = 26
	EventReceiveBirthdayBonus      NotifyEvent = 27
	EventActivitySerialNumber      NotifyEvent = 28
	EventReceiveBonus              NotifyEvent = 29
	EventForgetPassword            NotifyEvent = 30
	EventLoginPasswordReset        NotifyEvent = 31
	EventLoginPasswordChange       NotifyEvent = 32
	EventWithdrawPasswordSet       NotifyEvent = 33
	EventWithdrawPasswordReset     NotifyEvent = 34
)

// eventNames is keyed by event code. Names double as the seeded
// client_notify_event.name values.
var eventNames = map[NotifyEvent]string{
	EventNormalInfo:                "NormalInfo",
	EventLoginAnomaly:              "LoginAnomaly",
	EventRegisterSuccess:           "RegisterSuccess",
	EventDepositSuccess:            "DepositSuccess",
	EventWithdrawSuccess:           "WithdrawSuccess",
	EventWithdrawFail:              "WithdrawFail",
	EventKycVerifySuccess:          "KycVerifySuccess",
	EventKycVerifyFail:             "KycVerifyFail",
	EventKycReverify:               "KycReverify",
	EventCreditCardVerifySuccess:   "CreditCardVerifySuccess",
	EventCreditCardVerifyFail:      "CreditCardVerifyFail",
	EventLoginWarning:              "LoginWarning",
	EventUpdateProfileSuccess:      "UpdateProfileSuccess",
	EventLoginSuccess:              "LoginSuccess",
	EventVerifyEmail:               "VerifyEmail",
	EventVerifyPhone:               "VerifyPhone",
	EventBackstageVerifyKyc:        "BackstageVerifyKyc",
	EventBackstageVerifyWithdraw:   "BackStageVerifyWithdraw",
	EventBackstageVerifyDeposit:    "BackStageVerifyDeposit",
	EventBackstageVerifyCreditCard: "BackstageVerifyCreditCard",
	EventNewEventOnline:            "NewEventOnline",
	EventVipLevelUp:                "VipLevelUp",
	EventBonusExpiration:           "BonusExpiration",
	EventEventCompletion:           "EventCompletion",
	EventReceiveTips:               "ReceiveTips",
	EventGiveTips:                  "GiveTips",
	EventReceiveBirthdayBonus:      "ReceiveBirthdayBonus",
	EventActivitySerialNumber:      "ActivitySerialNumber",
	EventReceiveBonus:              "ReceiveBonus",
	EventForgetPassword:            "ForgetPassword",
	EventLoginPasswordReset:        "LoginPasswordReset",
	EventLoginPasswordChange:       "LoginPasswordChange",
	EventWithdrawPasswordSet:       "WithdrawPasswordSet",
	EventWithdrawPasswordReset:     "WithdrawPasswordReset",
}

// eventMemos carries the seeded description of each system event.
var eventMemos = map[NotifyEvent]string{
	EventNormalInfo:                "一般通知",
	EventLoginAnomaly:              "登入異常",
	EventRegisterSuccess:           "註冊成功",
	EventDepositSuccess:            "入金成功",
	EventWithdrawSuccess:           "出金成功",
	EventWithdrawFail:              "出金失敗",
	EventKycVerifySuccess:          "KYC 通過",
	EventKycVerifyFail:             "KYC 失敗",
	EventKycReverify:               "KYC 重新驗證",
	EventCreditCardVerifySuccess:   "信用卡驗證成功",
	EventCreditCardVerifyFail:      "信用卡驗證失敗",
	EventLoginWarning:              "登入警告 (密碼錯誤次數過多)",
	EventUpdateProfileSuccess:      "更新個人資料成功",
	EventLoginSuccess:              "登入成功",
	EventVerifyEmail:               "驗證信箱",
	EventVerifyPhone:               "驗證手機",
	EventBackstageVerifyKyc:        "後台審核 KYC",
	EventBackstageVerifyWithdraw:   "後台審核出金",
	EventBackstageVerifyDeposit:    "後台審核入金",
	EventBackstageVerifyCreditCard: "後台審核信用卡",
	EventNewEventOnline:            "新活動上線",
	EventVipLevelUp:                "VIP等級提升",
	EventBonusExpiration:           "獎金到期",
	EventEventCompletion:           "活動完成",
	EventReceiveTips:               "收到小費",
	EventGiveTips:                  "給予小費",
	EventReceiveBirthdayBonus:      "收到生日獎金",
	EventActivitySerialNumber:      "收到活動序號",
	EventReceiveBonus:              "收到獎金",
	EventForgetPassword:            "忘記密碼",
	EventLoginPasswordReset:        "登入密碼重置",
	EventLoginPasswordChange:       "登入密碼修改",
	EventWithdrawPasswordSet:       "出金密碼設置",
	EventWithdrawPasswordReset:     "出金密碼重置",
}

// Memo returns the seeded description of the event.
func (e NotifyEvent) Memo() string {
	return eventMemos[e]
}

// NotifyEventFromInt converts a wire integer to a NotifyEvent.
func NotifyEventFromInt(v int64) (NotifyEvent, error) {
	if _, ok := eventNames[NotifyEvent(v)]; !ok {
		return 0, fmt.Errorf("%w: notify event %d", errs.ErrInvalidArgument, v)
	}
	return NotifyEvent(v), nil
}

// AllNotifyEvents returns every defined event code in ascending order.
func AllNotifyEvents() []NotifyEvent {
	events := make([]NotifyEvent, 0, len(eventNames))
	for e := EventNormalInfo; e <= EventWithdrawPasswordReset; e++ {
		events = append(events, e)
	}
	return events
}

func (e NotifyEvent) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return fmt.Sprintf("NotifyEvent(%d)", int64(e))
}

// Platform returns which surface the event belongs to. Only the four
// backstage verification events live on the admin surface.
func (e NotifyEvent) Platform() Platform {
	switch e {
	case EventBackstageVerifyKyc,
		EventBackstageVerifyWithdraw,
		EventBackstageVerifyDeposit,
		EventBackstageVerifyCreditCard:
		return PlatformBackstage
	}
	return PlatformFrontend
}
