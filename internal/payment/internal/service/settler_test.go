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
	"testing"

	"github.com/ecodeclub/pawmall/internal/donation"
	donationmocks "github.com/ecodeclub/pawmall/internal/donation/mocks"
	"github.com/ecodeclub/pawmall/internal/order"
	ordermocks "github.com/ecodeclub/pawmall/internal/order/mocks"
	"github.com/ecodeclub/pawmall/internal/payment/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestShopSettler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := ordermocks.NewMockService(ctrl)
	s := NewShopSettler(svc)
	assert.Equal(t, domain.OrderTypeShop, s.OrderType())

	o := order.Order{
		TradeNo:       "ORD202405010001",
		BuyerID:       7,
		TotalPrice:    1200,
		OrderStatus:   order.OrderStatusPendingShip,
		PaymentStatus: order.PaymentStatusUnpaid,
	}
	svc.EXPECT().FindOrderByTradeNo(gomock.Any(), "ORD202405010001").Return(o, nil)
	p, err := s.Find(context.Background(), "ORD202405010001")
	require.NoError(t, err)
	assert.Equal(t, domain.Payable{
		OrderType:   domain.OrderTypeShop,
		TradeNo:     "ORD202405010001",
		OwnerID:     7,
		Amount:      1200,
		Status:      domain.PaymentStatusUnpaid,
		Open:        true,
		Description: "寵物商城訂單 ORD202405010001",
	}, p)

	paid := o
	paid.PaymentStatus = order.PaymentStatusPaid
	svc.EXPECT().SucceedPayment(gomock.Any(), "ORD202405010001", "Credit_CreditCard", int64(1714538096000)).
		Return(paid, true, nil)
	p, changed, err := s.Succeed(context.Background(), "ORD202405010001", "Credit_CreditCard", 1714538096000)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, domain.PaymentStatusPaid, p.Status)
	assert.False(t, p.Open)

	svc.EXPECT().FailPayment(gomock.Any(), "ORD202405010002", "ATM").
		Return(order.Order{}, false, order.ErrOrderNotFound)
	_, _, err = s.Fail(context.Background(), "ORD202405010002", "ATM")
	assert.ErrorIs(t, err, ErrPayableNotFound)
	assert.ErrorIs(t, err, order.ErrOrderNotFound)

	svc.EXPECT().FindOrderByTradeNo(gomock.Any(), gomock.Any()).Return(order.Order{}, errors.New("mock db error"))
	_, err = s.Find(context.Background(), "ORD202405010003")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPayableNotFound)
}

func TestDonationSettler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := donationmocks.NewMockService(ctrl)
	s := NewDonationSettler(svc)
	assert.Equal(t, domain.OrderTypeDonation, s.OrderType())

	d := donation.Donation{
		TradeNo: "DON202405010002",
		Donor:   donation.Donor{ID: 8, Name: "王小明"},
		Amount:  500,
		Mode:    donation.ModeRecurring,
		Status:  donation.StatusUnpaid,
	}
	svc.EXPECT().FindDonationByTradeNo(gomock.Any(), "DON202405010002").Return(d, nil)
	p, err := s.Find(context.Background(), "DON202405010002")
	require.NoError(t, err)
	assert.Equal(t, domain.Payable{
		OrderType:   domain.OrderTypeDonation,
		TradeNo:     "DON202405010002",
		OwnerID:     8,
		Amount:      500,
		Status:      domain.PaymentStatusUnpaid,
		Open:        true,
		Recurring:   true,
		Description: "愛心捐款 DON202405010002",
	}, p)

	failed := d
	failed.Status = donation.StatusFailed
	svc.EXPECT().FailPayment(gomock.Any(), "DON202405010002", "Credit_CreditCard").Return(failed, true, nil)
	p, changed, err := s.Fail(context.Background(), "DON202405010002", "Credit_CreditCard")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, domain.PaymentStatusFailed, p.Status)

	svc.EXPECT().SucceedPayment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(donation.Donation{}, false, donation.ErrDonationNotFound)
	_, _, err = s.Succeed(context.Background(), "DON202405010009", "Credit_CreditCard", 1)
	assert.ErrorIs(t, err, ErrPayableNotFound)

	cs, ok := s.(CycleSettler)
	require.True(t, ok)
	appended := d
	appended.TradeNo = "DON202405010005"
	appended.Status = donation.StatusFailed
	appended.RetryTradeNo = "DON202405010002"
	svc.EXPECT().FailCycle(gomock.Any(), "DON202405010002", "Credit_CreditCard").Return(appended, true, nil)
	p, changed, err = cs.FailCycle(context.Background(), "DON202405010002", "Credit_CreditCard")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "DON202405010005", p.TradeNo)
	assert.Equal(t, domain.PaymentStatusFailed, p.Status)

	_, isCyclic := NewShopSettler(nil).(CycleSettler)
	assert.False(t, isCyclic)
}
