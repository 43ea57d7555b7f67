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


package tradeno

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestGORMSequence(t *testing.T) {
	const (
		upsertSQL = "INSERT INTO `trade_no_sequences` .* ON DUPLICATE KEY UPDATE `seq`=seq \\+ 1"
		selectSQL = "SELECT seq FROM `trade_no_sequences` WHERE day_prefix = \\?"
	)
	testCases := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantSeq int64
		wantErr error
	}{
		{
			name: "当天首次分配",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(upsertSQL).
					WithArgs("ORD20240501", 1, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery(selectSQL).
					WithArgs("ORD20240501").
					WillReturnRows(sqlmock.NewRows([]string{"seq"}).AddRow(1))
			},
			wantSeq: 1,
		},
		{
			name: "已有计数行时自增",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(upsertSQL).
					WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectQuery(selectSQL).
					WillReturnRows(sqlmock.NewRows([]string{"seq"}).AddRow(38))
			},
			wantSeq: 38,
		},
		{
			name: "写入失败",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(upsertSQL).
					WillReturnError(errors.New("mock db error"))
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
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
			tc.mock(mock)

			seq, err := GORMSequence(db)("ORD20240501")
			if tc.wantErr != nil {
				assert.ErrorContains(t, err, tc.wantErr.Error())
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.wantSeq, seq)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
