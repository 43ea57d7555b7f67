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
	"github.com/ecodeclub/pawmall/internal/donation/internal/domain"
)

type Donor struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type DonateReq struct {
	Amount       int64  `json:"amount"`
	Mode         string `json:"mode"`
	Donor        Donor  `json:"donor"`
	Message      string `json:"message,omitempty"`
	RetryTradeNo string `json:"retry_trade_no,omitempty"`
}

func (r DonateReq) toDomain(donorID int64) domain.Donation {
	return domain.Donation{
		Donor: domain.Donor{
			ID:    donorID,
			Name:  r.Donor.Name,
			Email: r.Donor.Email,
			Phone: r.Donor.Phone,
		},
		Amount:       r.Amount,
		Mode:         domain.Mode(r.Mode),
		RetryTradeNo: r.RetryTradeNo,
		Message:      r.Message,
	}
}

type DonateResp struct {
	TradeNo string `json:"trade_no"`
	Amount  int64  `json:"amount"`
}

type TradeNoReq struct {
	TradeNo string `json:"trade_no"`
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

type Donation struct {
	TradeNo      string `json:"trade_no"`
	Amount       int64  `json:"amount"`
	Mode         string `json:"mode"`
	Status       string `json:"status"`
	RetryTradeNo string `json:"retry_trade_no,omitempty"`
	Donor        Donor  `json:"donor"`
	Message      string `json:"message,omitempty"`
	PaymentType  string `json:"payment_type,omitempty"`
	PaidAt       int64  `json:"paid_at,omitempty"`
	Ctime        int64  `json:"ctime"`
	// Retryable 前端据此决定是否展示重试按钮
	Retryable bool `json:"retryable"`
}

func newDonation(d domain.Donation) Donation {
	return Donation{
		TradeNo:      d.TradeNo,
		Amount:       d.Amount,
		Mode:         string(d.Mode),
		Status:       d.Status.String(),
		RetryTradeNo: d.RetryTradeNo,
		Donor: Donor{
			Name:  d.Donor.Name,
			Email: d.Donor.Email,
			Phone: d.Donor.Phone,
		},
		Message:     d.Message,
		PaymentType: d.PaymentType,
		PaidAt:      d.PaidAt,
		Ctime:       d.Ctime,
		Retryable:   d.Retryable(),
	}
}

func newDonations(ds []domain.Donation) []Donation {
	return slice.Map(ds, func(idx int, src domain.Donation) Donation {
		return newDonation(src)
	})
}

type DonationList struct {
	Total     int64      `json:"total"`
	Donations []Donation `json:"donations"`
}

type Summary struct {
	Count       int64 `json:"count"`
	PaidCount   int64 `json:"paid_count"`
	PaidAmount  int64 `json:"paid_amount"`
	FailedCount int64 `json:"failed_count"`
}
