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
	"database/sql"
	"time"

	"github.com/ego-component/egorm"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type PromotionDAO interface {
	Create(ctx context.Context, p Promotion) (int64, error)
	// FindActive 返回在 at 时刻处于有效期内的全部活动，按ID升序
	FindActive(ctx context.Context, at int64) ([]Promotion, error)
	List(ctx context.Context, offset, limit int) ([]Promotion, error)
	Count(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status uint8) error
}

type promotionGORMDAO struct {
	db *egorm.Component
}

func NewPromotionGORMDAO(db *egorm.Component) PromotionDAO {
	return &promotionGORMDAO{db: db}
}

func (d *promotionGORMDAO) Create(ctx context.Context, p Promotion) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime, p.Utime = now, now
	err := d.db.WithContext(ctx).Create(&p).Error
	return p.Id, err
}

func (d *promotionGORMDAO) FindActive(ctx context.Context, at int64) ([]Promotion, error) {
	var res []Promotion
	err := d.db.WithContext(ctx).
		Where("status = ? AND start_date <= ? AND (end_date IS NULL OR end_date > ?)", StatusActive, at, at).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

func (d *promotionGORMDAO) List(ctx context.Context, offset, limit int) ([]Promotion, error) {
	var res []Promotion
	err := d.db.WithContext(ctx).Order("id DESC").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *promotionGORMDAO) Count(ctx context.Context) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Promotion{}).Count(&res).Error
	return res, err
}

func (d *promotionGORMDAO) UpdateStatus(ctx context.Context, id int64, status uint8) error {
	res := d.db.WithContext(ctx).Model(&Promotion{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

type Promotion struct {
	Id             int64           `gorm:"primaryKey;autoIncrement;comment:促销活动自增ID"`
	Name           string          `gorm:"type:varchar(255);not null;comment:活动名称"`
	Type           string          `gorm:"type:varchar(32);not null;comment:类型 percentage=百分比折扣 flat=立减"`
	Value          decimal.Decimal `gorm:"type:decimal(10,2);not null;comment:优惠值"`
	MinPurchase    int64           `gorm:"not null;default:0;comment:单行小计门槛,单位为新台币元"`
	MaxDiscount    int64           `gorm:"not null;default:0;comment:单件折扣上限,0表示不限"`
	StartDate      int64           `gorm:"not null;index:idx_active,priority:2;comment:开始时间,UTC毫秒数,包含"`
	EndDate        sql.NullInt64   `gorm:"comment:结束时间,UTC毫秒数,不包含,NULL表示长期有效"`
	Code           string          `gorm:"type:varchar(64);not null;default:'';comment:优惠码,空表示无需优惠码"`
	TargetProducts []int64         `gorm:"type:json;serializer:json;comment:适用商品ID列表,空表示全场"`
	Status         uint8           `gorm:"type:tinyint unsigned;not null;default:1;index:idx_active,priority:1;comment:状态 1=启用 2=停用"`
	Ctime          int64
	Utime          int64
}

const (
	StatusActive   uint8 = 1
	StatusInactive uint8 = 2
)

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Promotion{})
}
