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
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
)

//go:generate mockgen -source=./callback.go -package=daomocks -destination=./mocks/callback.mock.go CallbackDAO
type CallbackDAO interface {
	Insert(ctx context.Context, c PaymentCallback) (int64, error)
	ListByOutcomes(ctx context.Context, outcomes []string, offset, limit int) ([]PaymentCallback, error)
	CountByOutcomes(ctx context.Context, outcomes []string) (int64, error)
}

type callbackGORMDAO struct {
	db *egorm.Component
}

func NewCallbackGORMDAO(db *egorm.Component) CallbackDAO {
	return &callbackGORMDAO{db: db}
}

func (d *callbackGORMDAO) Insert(ctx context.Context, c PaymentCallback) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	err := d.db.WithContext(ctx).Create(&c).Error
	return c.Id, err
}

func (d *callbackGORMDAO) ListByOutcomes(ctx context.Context, outcomes []string, offset, limit int) ([]PaymentCallback, error) {
	var res []PaymentCallback
	err := d.db.WithContext(ctx).
		Where("outcome IN ?", outcomes).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *callbackGORMDAO) CountByOutcomes(ctx context.Context, outcomes []string) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&PaymentCallback{}).
		Where("outcome IN ?", outcomes).
		Count(&res).Error
	return res, err
}

// PaymentCallback 网关回调的处理记录，只增不改
type PaymentCallback struct {
	Id              int64                              `gorm:"primaryKey;autoIncrement;comment:回调记录自增ID"`
	MerchantTradeNo string                             `gorm:"type:varchar(32);not null;index:idx_merchant_trade_no;comment:订单或捐款编号"`
	OrderType       string                             `gorm:"type:varchar(16);not null;comment:CustomField1 回传的单据类型"`
	RtnCode         string                             `gorm:"type:varchar(16);not null;comment:网关交易状态码"`
	RtnMsg          string                             `gorm:"type:varchar(255);not null;default:'';comment:网关交易信息"`
	PaymentType     string                             `gorm:"type:varchar(64);not null;default:'';comment:付款方式"`
	TradeAmt        string                             `gorm:"type:varchar(16);not null;default:'';comment:网关回传金额"`
	GatewayTradeNo  string                             `gorm:"type:varchar(32);not null;default:'';comment:网关交易编号"`
	Outcome         string                             `gorm:"type:varchar(32);not null;index:idx_outcome;comment:处理结果"`
	Reason          string                             `gorm:"type:varchar(255);not null;default:'';comment:处理结果说明"`
	Payload         sqlx.JsonColumn[map[string]string] `gorm:"type:json;comment:原始回调表单"`
	Ctime           int64
	Utime           int64
}
