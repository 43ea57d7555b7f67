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
	"testing"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/pawmall/internal/payment/internal/domain"
	"github.com/ecodeclub/pawmall/internal/payment/internal/repository/dao"
	daomocks "github.com/ecodeclub/pawmall/internal/payment/internal/repository/dao/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCallbackRepository_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := daomocks.NewMockCallbackDAO(ctrl)
	d.EXPECT().Insert(gomock.Any(), dao.PaymentCallback{
		MerchantTradeNo: "ORD202405010001",
		OrderType:       "shop",
		RtnCode:         "1",
		TradeAmt:        "1200",
		Outcome:         "rejected",
		Reason:          "金额不一致",
		Payload: sqlx.JsonColumn[map[string]string]{
			Val: map[string]string{
				"MerchantTradeNo": "ORD202405010001",
				"TradeAmt":        "1200",
			},
			Valid: true,
		},
	}).Return(int64(3), nil)

	id, err := NewCallbackRepository(d).Create(context.Background(), domain.CallbackRecord{
		MerchantTradeNo: "ORD202405010001",
		OrderType:       domain.OrderTypeShop,
		RtnCode:         "1",
		TradeAmt:        "1200",
		Outcome:         domain.OutcomeRejected,
		Reason:          "金额不一致",
		Payload: map[string]string{
			"MerchantTradeNo": "ORD202405010001",
			"TradeAmt":        "1200",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
}

func TestCallbackRepository_ListFlagged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := daomocks.NewMockCallbackDAO(ctrl)
	d.EXPECT().ListByOutcomes(gomock.Any(), []string{"rejected", "conflict"}, 0, 10).
		Return([]dao.PaymentCallback{
			{
				Id: 1, MerchantTradeNo: "DON202405010002", Outcome: "conflict",
				Payload: sqlx.JsonColumn[map[string]string]{Val: map[string]string{"RtnCode": "1"}, Valid: true},
			},
			{Id: 2, MerchantTradeNo: "ORD202405010003", Outcome: "rejected"},
		}, nil)

	res, err := NewCallbackRepository(d).ListFlagged(context.Background(), 0, 10)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, domain.OutcomeConflict, res[0].Outcome)
	assert.Equal(t, map[string]string{"RtnCode": "1"}, res[0].Payload)
	assert.Nil(t, res[1].Payload)
}
