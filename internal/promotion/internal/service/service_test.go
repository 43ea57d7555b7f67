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
	"time"

	"github.com/ecodeclub/pawmall/internal/promotion/internal/domain"
	repomocks "github.com/ecodeclub/pawmall/internal/promotion/internal/repository/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_ResolveBatch(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	active := []domain.Promotion{
		{
			ID:             1,
			Name:           "狗狗用品九折",
			Type:           domain.TypePercentage,
			Value:          decimal.NewFromInt(10),
			StartDate:      at.Add(-time.Hour).UnixMilli(),
			TargetProducts: []int64{100},
			Status:         domain.StatusActive,
		},
		{
			ID:        2,
			Name:      "全场折30",
			Type:      domain.TypeFlat,
			Value:     decimal.NewFromInt(30),
			StartDate: at.Add(-2 * time.Hour).UnixMilli(),
			Status:    domain.StatusActive,
		},
	}

	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) *repomocks.MockPromotionRepository
		qs       []domain.Query
		wantIDs  []int64
		wantDisc []int64
		wantErr  bool
	}{
		{
			name: "整单只加载一次有效活动",
			mock: func(ctrl *gomock.Controller) *repomocks.MockPromotionRepository {
				repo := repomocks.NewMockPromotionRepository(ctrl)
				repo.EXPECT().FindActive(gomock.Any(), at.UnixMilli()).Return(active, nil).Times(1)
				return repo
			},
			qs: []domain.Query{
				{ProductID: 100, VariantID: 1, UnitPrice: 1000, Quantity: 1},
				{ProductID: 200, VariantID: 2, UnitPrice: 200, Quantity: 2},
				{ProductID: 100, VariantID: 3, UnitPrice: 200, Quantity: 1},
			},
			wantIDs:  []int64{1, 2, 2},
			wantDisc: []int64{100, 30, 30},
		},
		{
			name: "空购物车不查询",
			mock: func(ctrl *gomock.Controller) *repomocks.MockPromotionRepository {
				return repomocks.NewMockPromotionRepository(ctrl)
			},
		},
		{
			name: "查询失败",
			mock: func(ctrl *gomock.Controller) *repomocks.MockPromotionRepository {
				repo := repomocks.NewMockPromotionRepository(ctrl)
				repo.EXPECT().FindActive(gomock.Any(), gomock.Any()).Return(nil, errors.New("mock db error"))
				return repo
			},
			qs:      []domain.Query{{ProductID: 100, UnitPrice: 1000, Quantity: 1}},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl))
			res, err := svc.ResolveBatch(context.Background(), at, tc.qs)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, res, len(tc.qs))
			for i := range res {
				assert.Equal(t, tc.wantIDs[i], res[i].Promotion.ID)
				assert.Equal(t, tc.wantDisc[i], res[i].UnitDiscount)
			}
		})
	}
}

func TestService_ResolveWithoutMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockPromotionRepository(ctrl)
	repo.EXPECT().FindActive(gomock.Any(), gomock.Any()).Return(nil, nil)

	res, err := NewService(repo).Resolve(context.Background(), time.Now(), domain.Query{
		ProductID: 1, UnitPrice: 450, Quantity: 2,
	})
	require.NoError(t, err)
	assert.False(t, res.Applied())
	assert.Equal(t, int64(450), res.FinalUnitPrice())
}

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockPromotionRepository(ctrl)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p domain.Promotion) (int64, error) {
			assert.Equal(t, domain.StatusActive, p.Status)
			return 11, nil
		})
	svc := NewService(repo)

	p, err := svc.Create(context.Background(), domain.Promotion{
		Name:  "認養週",
		Type:  domain.TypeFlat,
		Value: decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), p.ID)

	_, err = svc.Create(context.Background(), domain.Promotion{Name: "非法", Type: domain.TypeFlat})
	assert.ErrorIs(t, err, ErrInvalidPromotion)
}
