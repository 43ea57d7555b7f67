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
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/pawmall/internal/product"
	productmocks "github.com/ecodeclub/pawmall/internal/product/mocks"
	"github.com/ecodeclub/pawmall/internal/promotion/internal/domain"
	promotionmocks "github.com/ecodeclub/pawmall/internal/promotion/mocks"
	"github.com/ecodeclub/pawmall/internal/test"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_Preview(t *testing.T) {
	now := time.Date(2024, 5, 1, 4, 0, 0, 0, time.UTC)
	testCases := []struct {
		name     string
		req      PreviewReq
		mock     func(ctrl *gomock.Controller) (*promotionmocks.MockService, *productmocks.MockService)
		wantCode int
		wantRes  test.Result[PreviewResp]
	}{
		{
			name: "命中活动",
			req:  PreviewReq{VariantID: 7, Quantity: 2},
			mock: func(ctrl *gomock.Controller) (*promotionmocks.MockService, *productmocks.MockService) {
				productSvc := productmocks.NewMockService(ctrl)
				productSvc.EXPECT().FindVariants(gomock.Any(), []int64{7}).
					Return(map[int64]product.Variant{
						7: {ID: 7, ProductID: 3, Price: 500, Status: 2},
					}, nil)
				svc := promotionmocks.NewMockService(ctrl)
				svc.EXPECT().Resolve(gomock.Any(), now, domain.Query{
					ProductID: 3, VariantID: 7, UnitPrice: 500, Quantity: 2,
				}).Return(domain.Resolution{
					Promotion:    domain.Promotion{ID: 9, Name: "貓砂週"},
					UnitPrice:    500,
					UnitDiscount: 50,
				}, nil)
				return svc, productSvc
			},
			wantCode: http.StatusOK,
			wantRes: test.Result[PreviewResp]{
				Data: PreviewResp{
					VariantID:      7,
					OriginalPrice:  500,
					Price:          450,
					PromotionID:    9,
					PromotionName:  "貓砂週",
					SubtotalAmount: 900,
				},
			},
		},
		{
			name: "规格不存在",
			req:  PreviewReq{VariantID: 8, Quantity: 1},
			mock: func(ctrl *gomock.Controller) (*promotionmocks.MockService, *productmocks.MockService) {
				productSvc := productmocks.NewMockService(ctrl)
				productSvc.EXPECT().FindVariants(gomock.Any(), []int64{8}).
					Return(map[int64]product.Variant{}, nil)
				return promotionmocks.NewMockService(ctrl), productSvc
			},
			wantCode: http.StatusOK,
			wantRes: test.Result[PreviewResp]{
				Code: variantNotFoundResult.Code,
				Msg:  variantNotFoundResult.Msg,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, productSvc := tc.mock(ctrl)
			hdl := NewHandler(svc, productSvc)
			hdl.now = func() time.Time { return now }

			req, err := http.NewRequest(http.MethodPost, "/promotion/preview", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")

			econf.Set("server", map[string]any{"contextTimeout": "1s"})
			server := egin.Load("server").Build()
			hdl.PublicRoutes(server.Engine)
			recorder := test.NewJSONResponseRecorder[PreviewResp]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantRes, recorder.MustScan())
		})
	}
}
