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

package dao

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestNotificationGORMDAO_Insert(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("INSERT INTO `notifications`").
		WillReturnResult(sqlmock.NewResult(9, 1))

	id, err := NewNotificationGORMDAO(db).Insert(context.Background(), Notification{
		RecipientId: 7,
		Type:        "payment_succeeded",
		Title:       "訂單付款成功",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationGORMDAO_ListByRecipient(t *testing.T) {
	db, mock := newMockDB(t)
	rows := sqlmock.NewRows([]string{"id", "recipient_id", "type", "title", "message", "link", "read_at", "ctime", "utime"}).
		AddRow(2, 7, "order_shipped", "訂單已出貨", "", "/orders/ORD202405010001", 0, 2, 2).
		AddRow(1, 7, "payment_succeeded", "訂單付款成功", "", "/orders/ORD202405010001", 3, 1, 3)
	mock.ExpectQuery("SELECT \\* FROM `notifications` WHERE recipient_id = \\? ORDER BY id DESC LIMIT").
		WillReturnRows(rows)

	res, err := NewNotificationGORMDAO(db).ListByRecipient(context.Background(), 7, 0, 10)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, int64(2), res[0].Id)
	assert.Equal(t, int64(3), res[1].ReadAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationGORMDAO_CountUnread(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `notifications` WHERE recipient_id = \\? AND read_at = 0").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	cnt, err := NewNotificationGORMDAO(db).CountUnread(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(4), cnt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationGORMDAO_MarkRead(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("UPDATE `notifications` SET `read_at`=\\?,`utime`=\\? WHERE recipient_id = \\? AND id IN \\(\\?,\\?\\) AND read_at = 0").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), int64(7), int64(1), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	cnt, err := NewNotificationGORMDAO(db).MarkRead(context.Background(), 7, []int64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, int64(1), cnt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationGORMDAO_MarkAllRead(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("UPDATE `notifications` SET `read_at`=\\?,`utime`=\\? WHERE recipient_id = \\? AND read_at = 0").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	cnt, err := NewNotificationGORMDAO(db).MarkAllRead(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(3), cnt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
