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

package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/pawmall/internal/payment/internal/domain"
)

type FormReq struct {
	// OrderType shop 或 donation
	OrderType string `json:"order_type"`
	TradeNo   string `json:"trade_no"`
}

type Form struct {
	Action string            `json:"action"`
	Fields map[string]string `json:"fields"`
}

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

func (p Page) limitOrDefault() int {
	if p.Limit <= 0 || p.Limit > 100 {
		return 20
	}
	return p.Limit
}

type Callback struct {
	ID              int64  `json:"id"`
	MerchantTradeNo string `json:"merchant_trade_no"`
	OrderType       string `json:"order_type"`
	RtnCode         string `json:"rtn_code"`
	RtnMsg          string `json:"rtn_msg"`
	PaymentType     string `json:"payment_type"`
	TradeAmt        string `json:"trade_amt"`
	GatewayTradeNo  string `json:"gateway_trade_no"`
	Outcome         string `json:"outcome"`
	Reason          string `json:"reason,omitempty"`
	Ctime           int64  `json:"ctime"`
}

type CallbackList struct {
	Total     int64      `json:"total"`
	Callbacks []Callback `json:"callbacks"`
}

func newCallbackList(rs []domain.CallbackRecord, total int64) CallbackList {
	return CallbackList{
		Total: total,
		Callbacks: slice.Map(rs, func(_ int, r domain.CallbackRecord) Callback {
			return Callback{
				ID:              r.ID,
				MerchantTradeNo: r.MerchantTradeNo,
				OrderType:       string(r.OrderType),
				RtnCode:         r.RtnCode,
				RtnMsg:          r.RtnMsg,
				PaymentType:     r.PaymentType,
				TradeAmt:        r.TradeAmt,
				GatewayTradeNo:  r.GatewayTradeNo,
				Outcome:         string(r.Outcome),
				Reason:          r.Reason,
				Ctime:           r.Ctime,
			}
		}),
	}
}
