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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type ProductDAO interface {
	CreateProduct(ctx context.Context, p Product) (int64, error)
	CreateVariant(ctx context.Context, v ProductVariant) (int64, error)
	FindProductByID(ctx context.Context, id int64) (Product, error)
	FindProductBySN(ctx context.Context, sn string) (Product, error)
	FindVariantsByProductID(ctx context.Context, pid int64) ([]ProductVariant, error)
	FindVariantsByIDs(ctx context.Context, ids []int64) ([]ProductVariant, error)
	FindProducts(ctx context.Context, offset, limit int) ([]Product, error)
	CountProducts(ctx context.Context) (int64, error)
	IncreaseStock(ctx context.Context, variantID, quantity int64) error
}

type ProductGORMDAO struct {
	db *egorm.Component
}

func NewProductGORMDAO(db *egorm.Component) ProductDAO {
	return &ProductGORMDAO{db: db}
}

func (d *ProductGORMDAO) CreateProduct(ctx context.Context, p Product) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime, p.Utime = now, now
	err := d.db.WithContext(ctx).Create(&p).Error
	return p.Id, err
}

func (d *ProductGORMDAO) CreateVariant(ctx context.Context, v ProductVariant) (int64, error) {
	var id int64
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p Product
		if err := tx.Select("id").Where("id = ?", v.ProductId).First(&p).Error; err != nil {
			return err
		}
		now := time.Now().UnixMilli()
		v.Ctime, v.Utime = now, now
		if err := tx.Create(&v).Error; err != nil {
			return err
		}
		id = v.Id
		return nil
	})
	return id, err
}

func (d *ProductGORMDAO) FindProductByID(ctx context.Context, id int64) (Product, error) {
	var res Product
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *ProductGORMDAO) FindProductBySN(ctx context.Context, sn string) (Product, error) {
	var res Product
	err := d.db.WithContext(ctx).Where("sn = ? AND status = ?", sn, StatusOnShelf).First(&res).Error
	return res, err
}

func (d *ProductGORMDAO) FindVariantsByProductID(ctx context.Context, pid int64) ([]ProductVariant, error) {
	var res []ProductVariant
	err := d.db.WithContext(ctx).Where("product_id = ?", pid).Order("id ASC").Find(&res).Error
	return res, err
}

// FindVariantsByIDs 只返回上架的规格，调用方按缺失判断不存在
func (d *ProductGORMDAO) FindVariantsByIDs(ctx context.Context, ids []int64) ([]ProductVariant, error) {
	var res []ProductVariant
	if len(ids) == 0 {
		return res, nil
	}
	err := d.db.WithContext(ctx).
		Where("id IN ? AND status = ?", ids, StatusOnShelf).
		Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) FindProducts(ctx context.Context, offset, limit int) ([]Product, error) {
	var res []Product
	err := d.db.WithContext(ctx).Order("id DESC").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) CountProducts(ctx context.Context) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Product{}).Count(&res).Error
	return res, err
}

func (d *ProductGORMDAO) IncreaseStock(ctx context.Context, variantID, quantity int64) error {
	res := d.db.WithContext(ctx).Model(&ProductVariant{}).
		Where("id = ?", variantID).
		Updates(map[string]any{
			"stock_quantity": gorm.Expr("stock_quantity + ?", quantity),
			"utime":          time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

type Product struct {
	Id          int64  `gorm:"primaryKey;autoIncrement;comment:商品自增ID"`
	SN          string `gorm:"type:varchar(64);not null;uniqueIndex:uniq_product_sn;comment:商品对外展示编号"`
	Name        string `gorm:"type:varchar(255);not null;comment:商品名称"`
	Description string `gorm:"type:text;comment:商品描述"`
	Status      uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:状态 1=下架 2=上架"`
	Ctime       int64
	Utime       int64
}

// ProductVariant 库存扣减由订单模块在下单事务中以条件更新完成
type ProductVariant struct {
	Id            int64  `gorm:"primaryKey;autoIncrement;comment:规格自增ID"`
	SN            string `gorm:"type:varchar(64);not null;uniqueIndex:uniq_variant_sn;comment:规格对外展示编号"`
	ProductId     int64  `gorm:"not null;index:idx_product_id;comment:所属商品ID"`
	Name          string `gorm:"type:varchar(255);not null;comment:规格名称"`
	Price         int64  `gorm:"not null;comment:单价,单位为新台币元"`
	StockQuantity int64  `gorm:"not null;default:0;comment:库存数量,不可为负"`
	Status        uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:状态 1=下架 2=上架"`
	Ctime         int64
	Utime         int64
}

const (
	StatusOffShelf uint8 = 1
	StatusOnShelf  uint8 = 2
)
