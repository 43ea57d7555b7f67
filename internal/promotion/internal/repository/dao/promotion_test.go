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

func TestPromotionGORMDAO_FindActive(t *testing.T) {
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

	const at = int64(1714521600000)
	rows := sqlmock.NewRows([]string{"id", "name", "type", "value", "min_purchase", "max_discount",
		"start_date", "end_date", "code", "target_products", "status", "ctime", "utime"}).
		AddRow(1, "全场九折", "percentage", "10.00", 0, 0, at-1000, nil, "", nil, StatusActive, 1, 1).
		AddRow(2, "飼料折50", "flat", "50.00", 500, 0, at-1000, at+1000, "FEED50", []byte("[3,5]"), StatusActive, 1, 1)
	mock.ExpectQuery("SELECT \\* FROM `promotions` WHERE status = \\? AND start_date <= \\? AND \\(end_date IS NULL OR end_date > \\?\\) ORDER BY id ASC").
		WithArgs(StatusActive, at, at).
		WillReturnRows(rows)

	res, err := NewPromotionGORMDAO(db).FindActive(context.Background(), at)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.False(t, res[0].EndDate.Valid)
	assert.Empty(t, res[0].TargetProducts)
	assert.Equal(t, "10", res[0].Value.String())
	assert.Equal(t, at+1000, res[1].EndDate.Int64)
	assert.Equal(t, []int64{3, 5}, res[1].TargetProducts)
	assert.Equal(t, "FEED50", res[1].Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
