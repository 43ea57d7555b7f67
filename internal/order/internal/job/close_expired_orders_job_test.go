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

package job

import (
	"context"
	"errors"
	"testing"
	"time"

	ordermocks "github.com/ecodeclub/pawmall/internal/order/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCloseExpiredOrdersJob_Run(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) *ordermocks.MockService
		wantErr bool
	}{
		{
			name: "分批关闭直到不足一批",
			mock: func(ctrl *gomock.Controller) *ordermocks.MockService {
				svc := ordermocks.NewMockService(ctrl)
				gomock.InOrder(
					svc.EXPECT().CloseExpiredOrders(gomock.Any(), gomock.Any(), 2).Return(2, nil),
					svc.EXPECT().CloseExpiredOrders(gomock.Any(), gomock.Any(), 2).Return(1, nil),
				)
				return svc
			},
		},
		{
			name: "截止时间早于当前时间",
			mock: func(ctrl *gomock.Controller) *ordermocks.MockService {
				svc := ordermocks.NewMockService(ctrl)
				svc.EXPECT().CloseExpiredOrders(gomock.Any(), gomock.Any(), 2).
					DoAndReturn(func(_ context.Context, ctime int64, _ int) (int, error) {
						assert.LessOrEqual(t, ctime, time.Now().Add(-30*time.Minute).UnixMilli())
						return 0, nil
					})
				return svc
			},
		},
		{
			name: "关闭失败",
			mock: func(ctrl *gomock.Controller) *ordermocks.MockService {
				svc := ordermocks.NewMockService(ctrl)
				svc.EXPECT().CloseExpiredOrders(gomock.Any(), gomock.Any(), 2).Return(0, errors.New("mock db error"))
				return svc
			},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			j := NewCloseExpiredOrdersJob(tc.mock(ctrl), 2, 30, time.Second)
			err := j.Run(context.Background())
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
