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
	"fmt"
	"testing"

	"github.com/ecodeclub/pawmall/internal/donation/internal/domain"
	"github.com/ecodeclub/pawmall/internal/donation/internal/repository"
	repomocks "github.com/ecodeclub/pawmall/internal/donation/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Donate(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) *repomocks.MockDonationRepository
		donation domain.Donation
		wantErr  error
	}{
		{
			name: "创建成功",
			mock: func(ctrl *gomock.Controller) *repomocks.MockDonationRepository {
				repo := repomocks.NewMockDonationRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, d domain.Donation) (domain.Donation, error) {
						assert.Equal(t, domain.StatusUnpaid, d.Status)
						assert.Empty(t, d.PaymentType)
						d.TradeNo = "DON202405010001"
						return d, nil
					})
				return repo
			},
			donation: domain.Donation{
				Donor:       domain.Donor{ID: 1, Name: "小明"},
				Amount:      300,
				Mode:        domain.ModeOneTime,
				Status:      domain.StatusPaid,
				PaymentType: "Credit_CreditCard",
			},
		},
		{
			name: "金额为0",
			mock: func(ctrl *gomock.Controller) *repomocks.MockDonationRepository {
				return repomocks.NewMockDonationRepository(ctrl)
			},
			donation: domain.Donation{Donor: domain.Donor{ID: 1, Name: "小明"}, Mode: domain.ModeOneTime},
			wantErr:  ErrInvalidDonation,
		},
		{
			name: "捐款方式非法",
			mock: func(ctrl *gomock.Controller) *repomocks.MockDonationRepository {
				return repomocks.NewMockDonationRepository(ctrl)
			},
			donation: domain.Donation{Donor: domain.Donor{ID: 1, Name: "小明"}, Amount: 100, Mode: "weekly"},
			wantErr:  ErrInvalidDonation,
		},
		{
			name: "被重试的捐款不属于本人",
			mock: func(ctrl *gomock.Controller) *repomocks.MockDonationRepository {
				repo := repomocks.NewMockDonationRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.Donation{}, repository.ErrPriorNotFound)
				return repo
			},
			donation: domain.Donation{
				Donor:        domain.Donor{ID: 1, Name: "小明"},
				Amount:       100,
				Mode:         domain.ModeRecurring,
				RetryTradeNo: "DON202404300001",
			},
			wantErr: ErrDonationNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			res, err := NewService(tc.mock(ctrl)).Donate(context.Background(), tc.donation)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "DON202405010001", res.TradeNo)
		})
	}
}

func TestService_Retry(t *testing.T) {
	const prior = "DON202404300007"
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) *repomocks.MockDonationRepository
		wantErr error
	}{
		{
			name: "重试成功",
			mock: func(ctrl *gomock.Controller) *repomocks.MockDonationRepository {
				repo := repomocks.NewMockDonationRepository(ctrl)
				repo.EXPECT().FindByTradeNoAndDonor(gomock.Any(), prior, int64(1)).Return(domain.Donation{
					TradeNo: prior,
					Donor:   domain.Donor{ID: 1, Name: "小明", Email: "a@b.tw"},
					Amount:  500,
					Mode:    domain.ModeRecurring,
					Status:  domain.StatusFailed,
					Message: "給浪浪加菜",
				}, nil)
				repo.EXPECT().Create(gomock.Any(), domain.Donation{
					Donor:        domain.Donor{ID: 1, Name: "小明", Email: "a@b.tw"},
					Amount:       500,
					Mode:         domain.ModeRecurring,
					Status:       domain.StatusUnpaid,
					RetryTradeNo: prior,
					Message:      "給浪浪加菜",
				}).Return(domain.Donation{TradeNo: "DON202405010003", RetryTradeNo: prior}, nil)
				return repo
			},
		},
		{
			name: "单笔捐款不能重试",
			mock: func(ctrl *gomock.Controller) *repomocks.MockDonationRepository {
				repo := repomocks.NewMockDonationRepository(ctrl)
				repo.EXPECT().FindByTradeNoAndDonor(gomock.Any(), prior, int64(1)).Return(domain.Donation{
					TradeNo: prior,
					Mode:    domain.ModeOneTime,
					Status:  domain.StatusFailed,
				}, nil)
				return repo
			},
			wantErr: ErrNotRetryable,
		},
		{
			name: "未付款的不能重试",
			mock: func(ctrl *gomock.Controller) *repomocks.MockDonationRepository {
				repo := repomocks.NewMockDonationRepository(ctrl)
				repo.EXPECT().FindByTradeNoAndDonor(gomock.Any(), prior, int64(1)).Return(domain.Donation{
					TradeNo: prior,
					Mode:    domain.ModeRecurring,
					Status:  domain.StatusUnpaid,
				}, nil)
				return repo
			},
			wantErr: ErrNotRetryable,
		},
		{
			name: "捐款不存在",
			mock: func(ctrl *gomock.Controller) *repomocks.MockDonationRepository {
				repo := repomocks.NewMockDonationRepository(ctrl)
				repo.EXPECT().FindByTradeNoAndDonor(gomock.Any(), prior, int64(1)).
					Return(domain.Donation{}, repository.ErrDonationNotFound)
				return repo
			},
			wantErr: ErrDonationNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			res, err := NewService(tc.mock(ctrl)).Retry(context.Background(), 1, prior)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, prior, res.RetryTradeNo)
		})
	}
}

func TestService_Chain(t *testing.T) {
	first := domain.Donation{TradeNo: "DON202404280001", Mode: domain.ModeRecurring, Status: domain.StatusFailed}
	second := domain.Donation{TradeNo: "DON202404290001", Mode: domain.ModeRecurring, Status: domain.StatusFailed, RetryTradeNo: first.TradeNo}
	third := domain.Donation{TradeNo: "DON202404300001", Mode: domain.ModeRecurring, Status: domain.StatusPaid, RetryTradeNo: second.TradeNo}

	t.Run("从中间一笔展开整条链", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockDonationRepository(ctrl)
		repo.EXPECT().FindByTradeNoAndDonor(gomock.Any(), second.TradeNo, int64(1)).Return(second, nil)
		repo.EXPECT().FindByTradeNo(gomock.Any(), first.TradeNo).Return(first, nil)
		repo.EXPECT().FindByRetryTradeNo(gomock.Any(), second.TradeNo).Return(third, nil)
		repo.EXPECT().FindByRetryTradeNo(gomock.Any(), third.TradeNo).
			Return(domain.Donation{}, repository.ErrDonationNotFound)

		res, err := NewService(repo).Chain(context.Background(), 1, second.TradeNo)
		require.NoError(t, err)
		assert.Equal(t, []domain.Donation{first, second, third}, res)
	})

	t.Run("链过长", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockDonationRepository(ctrl)
		repo.EXPECT().FindByTradeNoAndDonor(gomock.Any(), "DON0", int64(1)).
			Return(domain.Donation{TradeNo: "DON0", RetryTradeNo: "DON1"}, nil)
		repo.EXPECT().FindByTradeNo(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tradeNo string) (domain.Donation, error) {
				var n int
				_, _ = fmt.Sscanf(tradeNo, "DON%d", &n)
				return domain.Donation{TradeNo: tradeNo, RetryTradeNo: fmt.Sprintf("DON%d", n+1)}, nil
			}).AnyTimes()

		_, err := NewService(repo).Chain(context.Background(), 1, "DON0")
		assert.ErrorIs(t, err, ErrChainTooLong)
	})
}

func TestService_FailCycle(t *testing.T) {
	appended := domain.Donation{
		TradeNo:      "DON202405010005",
		Mode:         domain.ModeRecurring,
		Status:       domain.StatusFailed,
		RetryTradeNo: "DON202404010001",
	}
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockDonationRepository(ctrl)
	repo.EXPECT().AppendFailedCycle(gomock.Any(), "DON202404010001", "Credit_CreditCard").
		Return(appended, true, nil)

	res, changed, err := NewService(repo).FailCycle(context.Background(), "DON202404010001", "Credit_CreditCard")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, appended, res)
}
