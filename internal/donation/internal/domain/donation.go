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
	"errors"
	"strings"
)

type Mode string

const (
	ModeOneTime   Mode = "one-time"
	ModeRecurring Mode = "recurring"
)

func (m Mode) Valid() bool {
	return m == ModeOneTime || m == ModeRecurring
}

type Status string

func (s Status) String() string {
	return string(s)
}

const (
	StatusUnpaid Status = "未付款"
	StatusPaid   Status = "已付款"
	StatusFailed Status = "付款失敗"
)

var ErrInvalidDonation = errors.New("捐款信息非法")

type Donor struct {
	ID    int64
	Name  string
	Email string
	Phone string
}

// Donation 一次捐款尝试，金额单位为新台币元。
// RetryTradeNo 非空时表示本次是对该编号失败尝试的重试。
type Donation struct {
	ID           int64
	TradeNo      string
	Donor        Donor
	Amount       int64
	Mode         Mode
	Status       Status
	RetryTradeNo string
	Message      string
	PaymentType  string
	PaidAt       int64
	Ctime        int64
	Utime        int64
}

func (d Donation) Validate() error {
	if d.Amount <= 0 {
		return errors.Join(ErrInvalidDonation, errors.New("金额必须大于0"))
	}
	if !d.Mode.Valid() {
		return errors.Join(ErrInvalidDonation, errors.New("捐款方式非法"))
	}
	if strings.TrimSpace(d.Donor.Name) == "" {
		return errors.Join(ErrInvalidDonation, errors.New("捐款人姓名不能为空"))
	}
	return nil
}

func (d Donation) Payable() bool {
	return d.Status == StatusUnpaid
}

// Retryable 只有失败的定期定额捐款可以重试
func (d Donation) Retryable() bool {
	return d.Mode == ModeRecurring && d.Status == StatusFailed
}

// RetryOf 以失败的尝试为模板生成新的尝试
func RetryOf(prior Donation) Donation {
	return Donation{
		Donor:        prior.Donor,
		Amount:       prior.Amount,
		Mode:         prior.Mode,
		Status:       StatusUnpaid,
		RetryTradeNo: prior.TradeNo,
		Message:      prior.Message,
	}
}

// Summary 只统计每条重试链上当前有效的那一条
type Summary struct {
	Count       int64
	PaidCount   int64
	PaidAmount  int64
	FailedCount int64
}
