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

package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/pawmall/internal/order/internal/domain"
	"github.com/ecodeclub/pawmall/internal/order/internal/repository/dao"
	daomocks "github.com/ecodeclub/pawmall/internal/order/internal/repository/dao/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOrderRepository_Create(t *testing.T) {
	conflict := errors.Join(dao.ErrTradeNoConflict, errors.New("Duplicate entry"))
	deadlock := errors.Join(dao.ErrDeadlock, errors.New("Deadlock found when trying to get lock"))
	testCases := []struct {
		name        string
		mock        func(ctrl *gomock.Controller) dao.OrderDAO
		wantTradeNo string
		wantErr     error
		after       func(t *testing.T, err error)
	}{
		{
			name: "一次成功",
			mock: func(ctrl *gomock.Controller) dao.OrderDAO {
				d := daomocks.NewMockOrderDAO(ctrl)
				d.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, o dao.Order, items []dao.OrderItem) (dao.Order, error) {
						assert.Equal(t, dao.PaymentStatusUnpaid, o.PaymentStatus)
						assert.Len(t, items, 1)
						o.Id, o.OrderId = 1, "ORD202405010001"
						return o, nil
					})
				return d
			},
			wantTradeNo: "ORD202405010001",
		},
		{
			name: "编号冲突后重试成功",
			mock: func(ctrl *gomock.Controller) dao.OrderDAO {
				d := daomocks.NewMockOrderDAO(ctrl)
				first := d.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(dao.Order{}, conflict)
				d.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(dao.Order{Id: 2, OrderId: "ORD202405010002"}, nil).After(first)
				return d
			},
			wantTradeNo: "ORD202405010002",
		},
		{
			name: "连续两次冲突",
			mock: func(ctrl *gomock.Controller) dao.OrderDAO {
				d := daomocks.NewMockOrderDAO(ctrl)
				d.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(dao.Order{}, conflict).Times(2)
				return d
			},
			wantErr: ErrTradeNoConflict,
		},
		{
			name: "死锁后重试成功",
			mock: func(ctrl *gomock.Controller) dao.OrderDAO {
				d := daomocks.NewMockOrderDAO(ctrl)
				first := d.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(dao.Order{}, deadlock)
				d.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(dao.Order{Id: 3, OrderId: "ORD202405010003"}, nil).After(first)
				return d
			},
			wantTradeNo: "ORD202405010003",
		},
		{
			name: "连续两次死锁",
			mock: func(ctrl *gomock.Controller) dao.OrderDAO {
				d := daomocks.NewMockOrderDAO(ctrl)
				d.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(dao.Order{}, deadlock).Times(2)
				return d
			},
			wantErr: ErrDeadlock,
		},
		{
			name: "库存不足不重试",
			mock: func(ctrl *gomock.Controller) dao.OrderDAO {
				d := daomocks.NewMockOrderDAO(ctrl)
				d.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(dao.Order{}, &dao.StockError{VariantId: 9, Err: dao.ErrInsufficientStock})
				return d
			},
			after: func(t *testing.T, err error) {
				var se *domain.StockError
				require.True(t, errors.As(err, &se))
				assert.Equal(t, domain.StockErrInsufficient, se.Kind)
				assert.Equal(t, int64(9), se.VariantID)
			},
		},
		{
			name: "规格不存在",
			mock: func(ctrl *gomock.Controller) dao.OrderDAO {
				d := daomocks.NewMockOrderDAO(ctrl)
				d.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(dao.Order{}, &dao.StockError{VariantId: 4, Err: dao.ErrVariantNotFound})
				return d
			},
			after: func(t *testing.T, err error) {
				var se *domain.StockError
				require.True(t, errors.As(err, &se))
				assert.Equal(t, domain.StockErrProductNotFound, se.Kind)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := NewOrderRepository(tc.mock(ctrl))
			o, err := repo.Create(context.Background(), domain.Order{
				BuyerID:       1,
				OrderStatus:   domain.OrderStatusPendingShip,
				PaymentStatus: domain.PaymentStatusUnpaid,
				Items:         []domain.OrderItem{{ProductID: 1, VariantID: 9, Quantity: 1, Price: 100}},
			})
			if tc.after != nil {
				require.Error(t, err)
				tc.after(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantTradeNo, o.TradeNo)
		})
	}
}

func TestOrderRepository_ListByBuyer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := daomocks.NewMockOrderDAO(ctrl)
	d.EXPECT().ListByBuyer(gomock.Any(), int64(1), 0, 10).Return([]dao.Order{
		{Id: 2, OrderId: "ORD202405010002", BuyerId: 1},
		{Id: 1, OrderId: "ORD202405010001", BuyerId: 1},
	}, nil)
	d.EXPECT().FindItemsByOrderIDs(gomock.Any(), []int64{2, 1}).Return([]dao.OrderItem{
		{OrderId: 1, VariantId: 3, Quantity: 1, Price: 100},
		{OrderId: 2, VariantId: 4, Quantity: 2, Price: 50},
		{OrderId: 2, VariantId: 5, Quantity: 1, Price: 70},
	}, nil)

	os, err := NewOrderRepository(d).ListByBuyer(context.Background(), 1, 0, 10)
	require.NoError(t, err)
	require.Len(t, os, 2)
	assert.Len(t, os[0].Items, 2)
	assert.Len(t, os[1].Items, 1)
	assert.Equal(t, int64(3), os[1].Items[0].VariantID)
}
