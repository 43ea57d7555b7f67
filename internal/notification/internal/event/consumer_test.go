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

package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/mq-api/memory"
	"github.com/ecodeclub/pawmall/internal/notification/internal/domain"
	notificationmocks "github.com/ecodeclub/pawmall/internal/notification/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationEventConsumer_Consume(t *testing.T) {
	testCases := []struct {
		name    string
		value   []byte
		mock    func(ctrl *gomock.Controller) *notificationmocks.MockService
		wantErr bool
	}{
		{
			name: "写入站内信",
			value: mustJSON(t, NotificationEvent{
				RecipientID: 7,
				Type:        "payment_succeeded",
				Title:       "訂單付款成功",
				Message:     "您的訂單 ORD202405010001 已付款，金額 NT$1200",
				Link:        "/orders/ORD202405010001",
			}),
			mock: func(ctrl *gomock.Controller) *notificationmocks.MockService {
				svc := notificationmocks.NewMockService(ctrl)
				svc.EXPECT().Notify(gomock.Any(), domain.Notification{
					RecipientID: 7,
					Type:        "payment_succeeded",
					Title:       "訂單付款成功",
					Message:     "您的訂單 ORD202405010001 已付款，金額 NT$1200",
					Link:        "/orders/ORD202405010001",
				}).Return(int64(1), nil)
				return svc
			},
		},
		{
			name:  "非法事件被丢弃",
			value: mustJSON(t, NotificationEvent{Title: "缺少收件人"}),
			mock: func(ctrl *gomock.Controller) *notificationmocks.MockService {
				svc := notificationmocks.NewMockService(ctrl)
				svc.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(int64(0), domain.ErrInvalidNotification)
				return svc
			},
		},
		{
			name:  "写入失败",
			value: mustJSON(t, NotificationEvent{RecipientID: 7, Title: "訂單已出貨"}),
			mock: func(ctrl *gomock.Controller) *notificationmocks.MockService {
				svc := notificationmocks.NewMockService(ctrl)
				svc.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("mock db error"))
				return svc
			},
			wantErr: true,
		},
		{
			name:  "消息体非法",
			value: []byte("{"),
			mock: func(ctrl *gomock.Controller) *notificationmocks.MockService {
				return notificationmocks.NewMockService(ctrl)
			},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			q := memory.NewMQ()
			require.NoError(t, q.CreateTopic(ctx, NotificationEventName, 1))
			c, err := NewNotificationEventConsumer(tc.mock(ctrl), q)
			require.NoError(t, err)
			produce(t, ctx, q, NotificationEventName, tc.value)

			err = c.Consume(ctx)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
