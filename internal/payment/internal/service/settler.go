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

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/pawmall/internal/donation"
	"github.com/ecodeclub/pawmall/internal/order"
	"github.com/ecodeclub/pawmall/internal/payment/internal/domain"
)

var ErrPayableNotFound = errors.New("待支付单据不存在")

// Settler 把一次付款结果落到具体的业务单据上。
// Succeed 与 Fail 都是条件更新，changed 为 false 时返回单据的当前状态。
//
//go:generate mockgen -source=./settler.go -package=svcmocks -destination=./mocks/settler.mock.go Settler
type Settler interface {
	OrderType() domain.OrderType
	Find(ctx context.Context, tradeNo string) (domain.Payable, error)
	Succeed(ctx context.Context, tradeNo, paymentType string, paidAt int64) (domain.Payable, bool, error)
	Fail(ctx context.Context, tradeNo, paymentType string) (domain.Payable, bool, error)
}

// CycleSettler 支持定期定额的单据实现。
// 首期付款之后网关每期仍用首期的编号回调，FailCycle 处理其中扣款失败的那一期。
type CycleSettler interface {
	FailCycle(ctx context.Context, tradeNo, paymentType string) (domain.Payable, bool, error)
}

type shopSettler struct {
	svc order.Service
}

func NewShopSettler(svc order.Service) Settler {
	return &shopSettler{svc: svc}
}

func (s *shopSettler) OrderType() domain.OrderType {
	return domain.OrderTypeShop
}

func (s *shopSettler) Find(ctx context.Context, tradeNo string) (domain.Payable, error) {
	o, err := s.svc.FindOrderByTradeNo(ctx, tradeNo)
	return s.toPayable(o), s.mapErr(err)
}

func (s *shopSettler) Succeed(ctx context.Context, tradeNo, paymentType string, paidAt int64) (domain.Payable, bool, error) {
	o, changed, err := s.svc.SucceedPayment(ctx, tradeNo, paymentType, paidAt)
	return s.toPayable(o), changed, s.mapErr(err)
}

func (s *shopSettler) Fail(ctx context.Context, tradeNo, paymentType string) (domain.Payable, bool, error) {
	o, changed, err := s.svc.FailPayment(ctx, tradeNo, paymentType)
	return s.toPayable(o), changed, s.mapErr(err)
}

func (s *shopSettler) mapErr(err error) error {
	if errors.Is(err, order.ErrOrderNotFound) {
		return fmt.Errorf("%w: %w", ErrPayableNotFound, err)
	}
	return err
}

func (s *shopSettler) toPayable(o order.Order) domain.Payable {
	return domain.Payable{
		OrderType:   domain.OrderTypeShop,
		TradeNo:     o.TradeNo,
		OwnerID:     o.BuyerID,
		Amount:      o.TotalPrice,
		Status:      domain.PaymentStatus(o.PaymentStatus.String()),
		Open:        o.Payable(),
		Description: "寵物商城訂單 " + o.TradeNo,
	}
}

type donationSettler struct {
	svc donation.Service
}

func NewDonationSettler(svc donation.Service) Settler {
	return &donationSettler{svc: svc}
}

func (s *donationSettler) OrderType() domain.OrderType {
	return domain.OrderTypeDonation
}

func (s *donationSettler) Find(ctx context.Context, tradeNo string) (domain.Payable, error) {
	d, err := s.svc.FindDonationByTradeNo(ctx, tradeNo)
	return s.toPayable(d), s.mapErr(err)
}

func (s *donationSettler) Succeed(ctx context.Context, tradeNo, paymentType string, paidAt int64) (domain.Payable, bool, error) {
	d, changed, err := s.svc.SucceedPayment(ctx, tradeNo, paymentType, paidAt)
	return s.toPayable(d), changed, s.mapErr(err)
}

func (s *donationSettler) Fail(ctx context.Context, tradeNo, paymentType string) (domain.Payable, bool, error) {
	d, changed, err := s.svc.FailPayment(ctx, tradeNo, paymentType)
	return s.toPayable(d), changed, s.mapErr(err)
}

func (s *donationSettler) FailCycle(ctx context.Context, tradeNo, paymentType string) (domain.Payable, bool, error) {
	d, changed, err := s.svc.FailCycle(ctx, tradeNo, paymentType)
	return s.toPayable(d), changed, s.mapErr(err)
}

func (s *donationSettler) mapErr(err error) error {
	if errors.Is(err, donation.ErrDonationNotFound) {
		return fmt.Errorf("%w: %w", ErrPayableNotFound, err)
	}
	return err
}

func (s *donationSettler) toPayable(d donation.Donation) domain.Payable {
	return domain.Payable{
		OrderType:   domain.OrderTypeDonation,
		TradeNo:     d.TradeNo,
		OwnerID:     d.Donor.ID,
		Amount:      d.Amount,
		Status:      domain.PaymentStatus(d.Status.String()),
		Open:        d.Payable(),
		Recurring:   d.Mode == donation.ModeRecurring,
		Description: "愛心捐款 " + d.TradeNo,
	}
}
