// Copyright 2023 ecodeclub
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

package domain

import (
	"strconv"
	"time"
)

type OrderType string

const (
	OrderTypeShop     OrderType = "shop"
	OrderTypeDonation OrderType = "donation"
)

func (t OrderType) Valid() bool {
	return t == OrderTypeShop || t == OrderTypeDonation
}

type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "未付款"
	PaymentStatusPaid   PaymentStatus = "已付款"
	PaymentStatusFailed PaymentStatus = "付款失敗"
)

// gatewayTimeLayout 网关回传时间的格式，时区为网关所在地
const gatewayTimeLayout = "2006/01/02 15:04:05"

// Callback 网关以表单形式推送的付款结果
type Callback struct {
	MerchantID      string
	MerchantTradeNo string
	RtnCode         string
	RtnMsg          string
	GatewayTradeNo  string
	TradeAmt        string
	PaymentDate     string
	PaymentType     string
	OrderType       OrderType
	CheckMacValue   string
	// Params 原始表单，验签需要全部字段
	Params map[string]string
}

func NewCallback(params map[string]string) Callback {
	return Callback{
		MerchantID:      params["MerchantID"],
		MerchantTradeNo: params["MerchantTradeNo"],
		RtnCode:         params["RtnCode"],
		RtnMsg:          params["RtnMsg"],
		GatewayTradeNo:  params["TradeNo"],
		TradeAmt:        params["TradeAmt"],
		PaymentDate:     params["PaymentDate"],
		PaymentType:     params["PaymentType"],
		OrderType:       OrderType(params["CustomField1"]),
		CheckMacValue:   params["CheckMacValue"],
		Params:          params,
	}
}

func (c Callback) Succeeded() bool {
	return c.RtnCode == "1"
}

func (c Callback) Amount() (int64, error) {
	return strconv.ParseInt(c.TradeAmt, 10, 64)
}

// PaidAt 解析失败时退回到 fallback
func (c Callback) PaidAt(loc *time.Location, fallback time.Time) int64 {
	t, err := time.ParseInLocation(gatewayTimeLayout, c.PaymentDate, loc)
	if err != nil {
		return fallback.UnixMilli()
	}
	return t.UnixMilli()
}

func FormatGatewayTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(gatewayTimeLayout)
}

type Outcome string

const (
	OutcomeApplied          Outcome = "applied"
	OutcomeDuplicate        Outcome = "duplicate"
	OutcomeNotFound         Outcome = "not_found"
	OutcomeRejected         Outcome = "rejected"
	OutcomeInvalidOrderType Outcome = "invalid_order_type"
	OutcomeConflict         Outcome = "conflict"
)

// Flagged 需要人工复核的结果
func (o Outcome) Flagged() bool {
	return o == OutcomeRejected || o == OutcomeConflict
}

// Acknowledged 网关收到确认后不再重送
func (o Outcome) Acknowledged() bool {
	switch o {
	case OutcomeApplied, OutcomeDuplicate, OutcomeNotFound, OutcomeConflict:
		return true
	default:
		return false
	}
}

func FlaggedOutcomes() []Outcome {
	return []Outcome{OutcomeRejected, OutcomeConflict}
}

// Payable 待支付单据，订单或捐款
type Payable struct {
	OrderType OrderType
	TradeNo   string
	OwnerID   int64
	Amount    int64
	Status    PaymentStatus
	// Open 为 true 时才允许发起付款
	Open        bool
	Recurring   bool
	Description string
}

// CallbackRecord 每次回调的处理记录
type CallbackRecord struct {
	ID              int64
	MerchantTradeNo string
	OrderType       OrderType
	RtnCode         string
	RtnMsg          string
	PaymentType     string
	TradeAmt        string
	GatewayTradeNo  string
	Outcome         Outcome
	Reason          string
	Payload         map[string]string
	Ctime           int64
}

// Form 交给前端自动提交到网关的表单
type Form struct {
	Action string
	Fields map[string]string
}
