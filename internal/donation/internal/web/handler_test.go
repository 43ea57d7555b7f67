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
	"errors"
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/pawmall/internal/donation/internal/domain"
	"github.com/ecodeclub/pawmall/internal/donation/internal/errs"
	"github.com/ecodeclub/pawmall/internal/donation/internal/service"
	donationmocks "github.com/ecodeclub/pawmall/internal/donation/mocks"
	"github.com/ecodeclub/pawmall/internal/test"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const uid = 123

func newServer(t *testing.T, svc service.Service) *egin.Component {
	t.Helper()
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(test.InjectSession(uid))
	NewHandler(svc).PrivateRoutes(server.Engine)
	return server
}

func TestHandler_Donate(t *testing.T) {
	testCases := []struct {
		name     string
		req      DonateReq
		mock     func(ctrl *gomock.Controller) service.Service
		wantCode int
		wantRes  test.Result[DonateResp]
	}{
		{
			name: "捐款成功",
			req: DonateReq{
				Amount: 1000,
				Mode:   "recurring",
				Donor:  Donor{Name: "小明", Email: "a@b.tw"},
			},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := donationmocks.NewMockService(ctrl)
				svc.EXPECT().Donate(gomock.Any(), domain.Donation{
					Donor:  domain.Donor{ID: uid, Name: "小明", Email: "a@b.tw"},
					Amount: 1000,
					Mode:   domain.ModeRecurring,
				}).Return(domain.Donation{TradeNo: "DON202405010001", Amount: 1000}, nil)
				return svc
			},
			wantCode: http.StatusOK,
			wantRes: test.Result[DonateResp]{
				Data: DonateResp{TradeNo: "DON202405010001", Amount: 1000},
			},
		},
		{
			name: "重复重试",
			req: DonateReq{
				Amount:       1000,
				Mode:         "recurring",
				Donor:        Donor{Name: "小明"},
				RetryTradeNo: "DON202404300001",
			},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := donationmocks.NewMockService(ctrl)
				svc.EXPECT().Donate(gomock.Any(), gomock.Any()).Return(domain.Donation{}, service.ErrAlreadyRetried)
				return svc
			},
			wantCode: http.StatusOK,
			wantRes: test.Result[DonateResp]{
				Code: errs.AlreadyRetried.Code,
				Msg:  errs.AlreadyRetried.Msg,
			},
		},
		{
			name: "系统错误",
			req:  DonateReq{Amount: 1000, Mode: "one-time", Donor: Donor{Name: "小明"}},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := donationmocks.NewMockService(ctrl)
				svc.EXPECT().Donate(gomock.Any(), gomock.Any()).Return(domain.Donation{}, errors.New("mock db error"))
				return svc
			},
			wantCode: http.StatusInternalServerError,
			wantRes: test.Result[DonateResp]{
				Code: errs.SystemError.Code,
				Msg:  errs.SystemError.Msg,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(t, tc.mock(ctrl))

			req, err := http.NewRequest(http.MethodPost, "/donation/create", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[DonateResp]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantRes, recorder.MustScan())
		})
	}
}

func TestHandler_Retry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := donationmocks.NewMockService(ctrl)
	svc.EXPECT().Retry(gomock.Any(), int64(uid), "DON202404300001").Return(domain.Donation{}, service.ErrNotRetryable)
	server := newServer(t, svc)

	req, err := http.NewRequest(http.MethodPost, "/donation/retry",
		iox.NewJSONReader(TradeNoReq{TradeNo: "DON202404300001"}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[DonateResp]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, test.Result[DonateResp]{
		Code: errs.NotRetryable.Code,
		Msg:  errs.NotRetryable.Msg,
	}, recorder.MustScan())
}

func TestHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := donationmocks.NewMockService(ctrl)
	svc.EXPECT().ListDonations(gomock.Any(), int64(uid), 0, 20).Return([]domain.Donation{
		{
			TradeNo: "DON202405010002",
			Amount:  500,
			Mode:    domain.ModeRecurring,
			Status:  domain.StatusFailed,
			Donor:   domain.Donor{ID: uid, Name: "小明"},
			Ctime:   10,
		},
	}, int64(1), nil)
	server := newServer(t, svc)

	req, err := http.NewRequest(http.MethodPost, "/donation/list", iox.NewJSONReader(Page{}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[DonationList]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, test.Result[DonationList]{
		Data: DonationList{
			Total: 1,
			Donations: []Donation{
				{
					TradeNo:   "DON202405010002",
					Amount:    500,
					Mode:      "recurring",
					Status:    "付款失敗",
					Donor:     Donor{Name: "小明"},
					Ctime:     10,
					Retryable: true,
				},
			},
		},
	}, recorder.MustScan())
}
