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

	"github.com/ecodeclub/pawmall/internal/notification/internal/domain"
	"github.com/ecodeclub/pawmall/internal/notification/internal/repository/dao"
	daomocks "github.com/ecodeclub/pawmall/internal/notification/internal/repository/dao/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := daomocks.NewMockNotificationDAO(ctrl)
	d.EXPECT().Insert(gomock.Any(), dao.Notification{
		RecipientId: 7,
		Type:        "order_shipped",
		Title:       "訂單已出貨",
		Link:        "/orders/ORD202405010001",
	}).Return(int64(4), nil)
	d.EXPECT().ListByRecipient(gomock.Any(), int64(7), 0, 20).Return([]dao.Notification{
		{Id: 4, RecipientId: 7, Type: "order_shipped", Title: "訂單已出貨", ReadAt: 9, Ctime: 8},
	}, nil)
	repo := NewNotificationRepository(d)

	id, err := repo.Create(context.Background(), domain.Notification{
		RecipientID: 7,
		Type:        "order_shipped",
		Title:       "訂單已出貨",
		Link:        "/orders/ORD202405010001",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), id)

	ns, err := repo.List(context.Background(), 7, 0, 20)
	require.NoError(t, err)
	assert.Equal(t, []domain.Notification{
		{ID: 4, RecipientID: 7, Type: "order_shipped", Title: "訂單已出貨", ReadAt: 9, Ctime: 8},
	}, ns)
	assert.True(t, ns[0].Read())
}
