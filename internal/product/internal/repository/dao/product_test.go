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
	"errors"
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
		Conn: mockDB,
		// 如果为 false ，则GORM在初始化时，会先调用 show version
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestProductGORMDAO_IncreaseStock(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "补货成功",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE `product_variants` SET").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "规格不存在",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE `product_variants` SET").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrRecordNotFound,
		},
		{
			name: "数据库错误",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE `product_variants` SET").
					WillReturnError(errors.New("mock db error"))
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tc.mock(mock)
			err := NewProductGORMDAO(db).IncreaseStock(context.Background(), 1, 3)
			assert.Equal(t, tc.wantErr, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProductGORMDAO_CreateVariant(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantID  int64
		wantErr error
	}{
		{
			name: "创建成功",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT `id` FROM `products`").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
				mock.ExpectExec("INSERT INTO `product_variants`").
					WillReturnResult(sqlmock.NewResult(12, 1))
				mock.ExpectCommit()
			},
			wantID: 12,
		},
		{
			name: "商品不存在",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT `id` FROM `products`").
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
				mock.ExpectRollback()
			},
			wantErr: ErrRecordNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tc.mock(mock)
			id, err := NewProductGORMDAO(db).CreateVariant(context.Background(), ProductVariant{
				SN:            "variant-sn",
				ProductId:     7,
				Name:          "中型犬飼料 2kg",
				Price:         680,
				StockQuantity: 10,
				Status:        StatusOnShelf,
			})
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantID, id)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
