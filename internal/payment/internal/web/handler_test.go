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
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/pawmall/internal/payment/internal/domain"
	"github.com/ecodeclub/pawmall/internal/payment/internal/service"
	paymentmocks "github.com/ecodeclub/pawmall/internal/payment/mocks"
	"github.com/ecodeclub/pawmall/internal/test"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_HandleECPayCallback(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) *paymentmocks.MockService
		wantCode int
		wantBody string
	}{
		{
			name: "处理成功",
			mock: func(ctrl *gomock.Controller) *paymentmocks.MockService {
				svc := paymentmocks.NewMockService(ctrl)
				svc.EXPECT().HandleCallback(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, cb domain.Callback) (domain.Outcome, error) {
						assert.Equal(t, "ORD202405010001", cb.MerchantTradeNo)
						assert.Equal(t, domain.OrderTypeShop, cb.OrderType)
						assert.Equal(t, "ABC", cb.CheckMacValue)
						assert.Equal(t, "1", cb.RtnCode)
						return domain.OutcomeApplied, nil
					})
				return svc
			},
			wantCode: http.StatusOK,
			wantBody: "1|OK",
		},
		{
			name: "状态冲突也应答成功",
			mock: func(ctrl *gomock.Controller) *paymentmocks.MockService {
				svc := paymentmocks.NewMockService(ctrl)
				svc.EXPECT().HandleCallback(gomock.Any(), gomock.Any()).Return(domain.OutcomeConflict, nil)
				return svc
			},
			wantCode: http.StatusOK,
			wantBody: "1|OK",
		},
		{
			name: "验签失败",
			mock: func(ctrl *gomock.Controller) *paymentmocks.MockService {
				svc := paymentmocks.NewMockService(ctrl)
				svc.EXPECT().HandleCallback(gomock.Any(), gomock.Any()).Return(domain.OutcomeRejected, nil)
				return svc
			},
			wantCode: http.StatusBadRequest,
			wantBody: "0|rejected",
		},
		{
			name: "临时故障",
			mock: func(ctrl *gomock.Controller) *paymentmocks.MockService {
				svc := paymentmocks.NewMockService(ctrl)
				svc.EXPECT().HandleCallback(gomock.Any(), gomock.Any()).Return(domain.Outcome(""), errors.New("mock db error"))
				return svc
			},
			wantCode: http.StatusInternalServerError,
			wantBody: "0|Error",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			hdl := NewHandler(tc.mock(ctrl))

			form := url.Values{
				"MerchantID":      {"3002607"},
				"MerchantTradeNo": {"ORD202405010001"},
				"RtnCode":         {"1"},
				"TradeAmt":        {"1200"},
				"CustomField1":    {"shop"},
				"CheckMacValue":   {"ABC"},
			}
			req, err := http.NewRequest(http.MethodPost, "/payment/ecpay/callback", strings.NewReader(form.Encode()))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/x-www-form-urlencoded")

			econf.Set("server", map[string]any{"contextTimeout": "1s"})
			server := egin.Load("server").Build()
			hdl.PublicRoutes(server.Engine)
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantBody, recorder.Body.String())
		})
	}
}

func TestHandler_Form(t *testing.T) {
	testCases := []struct {
		name     string
		req      FormReq
		mock     func(ctrl *gomock.Controller) *paymentmocks.MockService
		wantCode int
		wantRes  test.Result[Form]
	}{
		{
			name: "生成表单",
			req:  FormReq{OrderType: "donation", TradeNo: "DON202405010002"},
			mock: func(ctrl *gomock.Controller) *paymentmocks.MockService {
				svc := paymentmocks.NewMockService(ctrl)
				svc.EXPECT().Form(gomock.Any(), int64(8), domain.OrderTypeDonation, "DON202405010002").
					Return(domain.Form{
						Action: "https://payment-stage.ecpay.com.tw/Cashier/AioCheckOut/V5",
						Fields: map[string]string{"MerchantTradeNo": "DON202405010002", "CheckMacValue": "ABC"},
					}, nil)
				return svc
			},
			wantCode: http.StatusOK,
			wantRes: test.Result[Form]{
				Data: Form{
					Action: "https://payment-stage.ecpay.com.tw/Cashier/AioCheckOut/V5",
					Fields: map[string]string{"MerchantTradeNo": "DON202405010002", "CheckMacValue": "ABC"},
				},
			},
		},
		{
			name: "单据不可付款",
			req:  FormReq{OrderType: "shop", TradeNo: "ORD202405010001"},
			mock: func(ctrl *gomock.Controller) *paymentmocks.MockService {
				svc := paymentmocks.NewMockService(ctrl)
				svc.EXPECT().Form(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.Form{}, service.ErrNotPayable)
				return svc
			},
			wantCode: http.StatusOK,
			wantRes: test.Result[Form]{
				Code: notPayableResult.Code,
				Msg:  notPayableResult.Msg,
			},
		},
		{
			name: "不是自己的单据",
			req:  FormReq{OrderType: "shop", TradeNo: "ORD202405010001"},
			mock: func(ctrl *gomock.Controller) *paymentmocks.MockService {
				svc := paymentmocks.NewMockService(ctrl)
				svc.EXPECT().Form(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.Form{}, service.ErrPayableNotFound)
				return svc
			},
			wantCode: http.StatusOK,
			wantRes: test.Result[Form]{
				Code: payableNotFoundResult.Code,
				Msg:  payableNotFoundResult.Msg,
			},
		},
		{
			name: "系统错误",
			req:  FormReq{OrderType: "shop", TradeNo: "ORD202405010001"},
			mock: func(ctrl *gomock.Controller) *paymentmocks.MockService {
				svc := paymentmocks.NewMockService(ctrl)
				svc.EXPECT().Form(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.Form{}, errors.New("mock db error"))
				return svc
			},
			wantCode: http.StatusInternalServerError,
			wantRes: test.Result[Form]{
				Code: systemErrorResult.Code,
				Msg:  systemErrorResult.Msg,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			hdl := NewHandler(tc.mock(ctrl))

			req, err := http.NewRequest(http.MethodPost, "/payment/form", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")

			econf.Set("server", map[string]any{"contextTimeout": "1s"})
			server := egin.Load("server").Build()
			server.Use(test.InjectSession(8))
			hdl.PrivateRoutes(server.Engine)
			recorder := test.NewJSONResponseRecorder[Form]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantRes, recorder.MustScan())
		})
	}
}

func TestAdminHandler_ListFlagged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := paymentmocks.NewMockService(ctrl)
	svc.EXPECT().ListFlaggedCallbacks(gomock.Any(), 0, 20).Return([]domain.CallbackRecord{
		{
			ID:              3,
			MerchantTradeNo: "ORD202405010001",
			OrderType:       domain.OrderTypeShop,
			RtnCode:         "1",
			TradeAmt:        "12",
			Outcome:         domain.OutcomeRejected,
			Reason:          "金额不一致",
			Ctime:           1714538096000,
		},
	}, int64(1), nil)
	hdl := NewAdminHandler(svc)

	req, err := http.NewRequest(http.MethodPost, "/payment/callbacks", iox.NewJSONReader(Page{}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	hdl.PrivateRoutes(server.Engine)
	recorder := test.NewJSONResponseRecorder[CallbackList]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, CallbackList{
		Total: 1,
		Callbacks: []Callback{
			{
				ID:              3,
				MerchantTradeNo: "ORD202405010001",
				OrderType:       "shop",
				RtnCode:         "1",
				TradeAmt:        "12",
				Outcome:         "rejected",
				Reason:          "金额不一致",
				Ctime:           1714538096000,
			},
		},
	}, recorder.MustScan().Data)
}
