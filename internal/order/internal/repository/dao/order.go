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
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/ecodeclub/pawmall/internal/pkg/tradeno"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound    = gorm.ErrRecordNotFound
	ErrTradeNoConflict   = errors.New("订单编号冲突")
	ErrDeadlock          = errors.New("下单事务死锁")
	ErrInsufficientStock = errors.New("库存不足")
	ErrVariantNotFound   = errors.New("商品规格不存在")
)

const (
	uniqueIndexErrNo uint16 = 1062
	deadlockErrNo    uint16 = 1213
)

// StockError 扣减库存失败时携带出错的规格ID
type StockError struct {
	VariantId int64
	Err       error
}

func (e *StockError) Error() string {
	return fmt.Sprintf("规格 %d: %s", e.VariantId, e.Err.Error())
}

func (e *StockError) Unwrap() error {
	return e.Err
}

//go:generate mockgen -source=./order.go -package=daomocks -destination=./mocks/order.mock.go OrderDAO
type OrderDAO interface {
	// Create 在一个事务内生成订单编号、写入订单及订单项并扣减库存
	Create(ctx context.Context, o Order, items []OrderItem) (Order, error)
	FindByTradeNo(ctx context.Context, tradeNo string) (Order, error)
	FindByTradeNoAndBuyer(ctx context.Context, tradeNo string, buyerID int64) (Order, error)
	FindItemsByOrderIDs(ctx context.Context, orderIDs []int64) ([]OrderItem, error)
	ListByBuyer(ctx context.Context, buyerID int64, offset, limit int) ([]Order, error)
	CountByBuyer(ctx context.Context, buyerID int64) (int64, error)
	List(ctx context.Context, offset, limit int) ([]Order, error)
	Count(ctx context.Context) (int64, error)
	FindExpiredUnpaid(ctx context.Context, ctime int64, limit int) ([]Order, error)

	// 以下状态变更均为条件更新，返回变更后的订单以及本次调用是否真正改变了状态
	MarkPaid(ctx context.Context, tradeNo, paymentType string, paidAt int64) (Order, bool, error)
	MarkFailed(ctx context.Context, tradeNo, paymentType string) (Order, bool, error)
	Cancel(ctx context.Context, tradeNo string) (Order, bool, error)
	Ship(ctx context.Context, tradeNo string) (Order, bool, error)
	Complete(ctx context.Context, tradeNo string) (Order, bool, error)
}

type orderGORMDAO struct {
	db     *egorm.Component
	issuer *tradeno.Issuer
}

func NewOrderGORMDAO(db *egorm.Component, issuer *tradeno.Issuer) OrderDAO {
	return &orderGORMDAO{db: db, issuer: issuer}
}

func (d *orderGORMDAO) Create(ctx context.Context, o Order, items []OrderItem) (Order, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		// 先扣库存再分配流水号，库存不足的事务不会碰到当天的计数行
		if err := decreaseStock(tx, items, now); err != nil {
			return err
		}
		tradeNo, err := d.issuer.Issue(tradeno.PrefixShop, tradeno.GORMSequence(tx))
		if err != nil {
			return err
		}
		o.OrderId = tradeNo
		o.Ctime, o.Utime = now, now
		if err = tx.Create(&o).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderId = o.Id
			items[i].Ctime, items[i].Utime = now, now
		}
		return tx.Create(&items).Error
	})
	switch {
	case isMySQLErr(err, deadlockErrNo):
		return Order{}, fmt.Errorf("%w: %w", ErrDeadlock, err)
	case isMySQLErr(err, uniqueIndexErrNo):
		return Order{}, fmt.Errorf("%w: %w", ErrTradeNoConflict, err)
	}
	return o, err
}

// decreaseStock 按规格ID升序做条件扣减，任一规格失败则整个事务回滚
func decreaseStock(tx *gorm.DB, items []OrderItem, now int64) error {
	sorted := slices.Clone(items)
	slices.SortFunc(sorted, func(a, b OrderItem) int {
		return cmp.Compare(a.VariantId, b.VariantId)
	})
	for _, item := range sorted {
		res := tx.Model(&ProductVariant{}).
			Where("id = ? AND stock_quantity >= ?", item.VariantId, item.Quantity).
			Updates(map[string]any{
				"stock_quantity": gorm.Expr("stock_quantity - ?", item.Quantity),
				"utime":          now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return stockError(tx, item.VariantId)
		}
	}
	return nil
}

func stockError(tx *gorm.DB, variantID int64) error {
	var cnt int64
	err := tx.Model(&ProductVariant{}).Where("id = ?", variantID).Count(&cnt).Error
	if err != nil {
		return err
	}
	if cnt == 0 {
		return &StockError{VariantId: variantID, Err: ErrVariantNotFound}
	}
	return &StockError{VariantId: variantID, Err: ErrInsufficientStock}
}

func restock(tx *gorm.DB, orderID int64, now int64) error {
	var items []OrderItem
	err := tx.Where("order_id = ?", orderID).Order("variant_id ASC").Find(&items).Error
	if err != nil {
		return err
	}
	for _, item := range items {
		err = tx.Model(&ProductVariant{}).
			Where("id = ?", item.VariantId).
			Updates(map[string]any{
				"stock_quantity": gorm.Expr("stock_quantity + ?", item.Quantity),
				"utime":          now,
			}).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func isMySQLErr(err error, number uint16) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == number
}

func (d *orderGORMDAO) FindByTradeNo(ctx context.Context, tradeNo string) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).Where("order_id = ?", tradeNo).First(&res).Error
	return res, err
}

func (d *orderGORMDAO) FindByTradeNoAndBuyer(ctx context.Context, tradeNo string, buyerID int64) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).
		Where("order_id = ? AND buyer_id = ?", tradeNo, buyerID).
		First(&res).Error
	return res, err
}

func (d *orderGORMDAO) FindItemsByOrderIDs(ctx context.Context, orderIDs []int64) ([]OrderItem, error) {
	var res []OrderItem
	if len(orderIDs) == 0 {
		return res, nil
	}
	err := d.db.WithContext(ctx).
		Where("order_id IN ?", orderIDs).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

func (d *orderGORMDAO) ListByBuyer(ctx context.Context, buyerID int64, offset, limit int) ([]Order, error) {
	var res []Order
	err := d.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *orderGORMDAO) CountByBuyer(ctx context.Context, buyerID int64) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Order{}).
		Where("buyer_id = ?", buyerID).
		Count(&res).Error
	return res, err
}

func (d *orderGORMDAO) List(ctx context.Context, offset, limit int) ([]Order, error) {
	var res []Order
	err := d.db.WithContext(ctx).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *orderGORMDAO) Count(ctx context.Context) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Order{}).Count(&res).Error
	return res, err
}

func (d *orderGORMDAO) FindExpiredUnpaid(ctx context.Context, ctime int64, limit int) ([]Order, error) {
	var res []Order
	err := d.db.WithContext(ctx).
		Where("order_status = ? AND payment_status = ? AND ctime < ?",
			OrderStatusPendingShip, PaymentStatusUnpaid, ctime).
		Order("id ASC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

// transition 描述一次条件状态变更
type transition struct {
	fromOrder   string
	fromPayment string
	updates     map[string]any
	restock     bool
}

func (d *orderGORMDAO) transit(ctx context.Context, tradeNo string, t transition) (Order, bool, error) {
	var (
		res     Order
		changed bool
	)
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		t.updates["utime"] = now
		ur := tx.Model(&Order{}).
			Where("order_id = ? AND order_status = ? AND payment_status = ?",
				tradeNo, t.fromOrder, t.fromPayment).
			Updates(t.updates)
		if ur.Error != nil {
			return ur.Error
		}
		if err := tx.Where("order_id = ?", tradeNo).First(&res).Error; err != nil {
			return err
		}
		changed = ur.RowsAffected > 0
		if changed && t.restock {
			return restock(tx, res.Id, now)
		}
		return nil
	})
	return res, changed, err
}

func (d *orderGORMDAO) MarkPaid(ctx context.Context, tradeNo, paymentType string, paidAt int64) (Order, bool, error) {
	return d.transit(ctx, tradeNo, transition{
		fromOrder:   OrderStatusPendingShip,
		fromPayment: PaymentStatusUnpaid,
		updates: map[string]any{
			"payment_status": PaymentStatusPaid,
			"payment_type":   paymentType,
			"paid_at":        paidAt,
		},
	})
}

func (d *orderGORMDAO) MarkFailed(ctx context.Context, tradeNo, paymentType string) (Order, bool, error) {
	return d.transit(ctx, tradeNo, transition{
		fromOrder:   OrderStatusPendingShip,
		fromPayment: PaymentStatusUnpaid,
		updates: map[string]any{
			"payment_status": PaymentStatusFailed,
			"order_status":   OrderStatusCanceled,
			"payment_type":   paymentType,
		},
		restock: true,
	})
}

func (d *orderGORMDAO) Cancel(ctx context.Context, tradeNo string) (Order, bool, error) {
	return d.transit(ctx, tradeNo, transition{
		fromOrder:   OrderStatusPendingShip,
		fromPayment: PaymentStatusUnpaid,
		updates: map[string]any{
			"order_status": OrderStatusCanceled,
		},
		restock: true,
	})
}

func (d *orderGORMDAO) Ship(ctx context.Context, tradeNo string) (Order, bool, error) {
	return d.transit(ctx, tradeNo, transition{
		fromOrder:   OrderStatusPendingShip,
		fromPayment: PaymentStatusPaid,
		updates: map[string]any{
			"order_status": OrderStatusShipped,
		},
	})
}

func (d *orderGORMDAO) Complete(ctx context.Context, tradeNo string) (Order, bool, error) {
	return d.transit(ctx, tradeNo, transition{
		fromOrder:   OrderStatusShipped,
		fromPayment: PaymentStatusPaid,
		updates: map[string]any{
			"order_status": OrderStatusCompleted,
		},
	})
}

const (
	OrderStatusPendingShip = "待出貨"
	OrderStatusShipped     = "已出貨"
	OrderStatusCompleted   = "已完成"
	OrderStatusCanceled    = "已取消"

	PaymentStatusUnpaid = "未付款"
	PaymentStatusPaid   = "已付款"
	PaymentStatusFailed = "付款失敗"
)

type Order struct {
	Id               int64  `gorm:"primaryKey;autoIncrement;comment:订单自增ID"`
	OrderId          string `gorm:"column:order_id;type:varchar(32);not null;uniqueIndex:uniq_order_id;comment:订单编号 ORDyyyyMMdd0001"`
	BuyerId          int64  `gorm:"not null;index:idx_buyer_id;comment:购买者ID"`
	RecipientName    string `gorm:"type:varchar(64);not null;comment:收件人姓名"`
	RecipientPhone   string `gorm:"type:varchar(32);not null;comment:收件人电话"`
	RecipientAddress string `gorm:"type:varchar(512);not null;comment:收件地址"`
	RecipientEmail   string `gorm:"type:varchar(255);not null;default:'';comment:收件人邮箱"`
	Note             string `gorm:"type:varchar(1024);not null;default:'';comment:订单备注"`
	TotalPrice       int64  `gorm:"not null;comment:订单总价,单位为新台币元"`
	OrderStatus      string `gorm:"type:varchar(16);not null;index:idx_status_ctime,priority:1;comment:订单状态 待出貨/已出貨/已完成/已取消"`
	PaymentStatus    string `gorm:"type:varchar(16);not null;index:idx_status_ctime,priority:2;comment:付款状态 未付款/已付款/付款失敗"`
	PaymentType      string `gorm:"type:varchar(64);not null;default:'';comment:网关回传的付款方式"`
	PaidAt           int64  `gorm:"not null;default:0;comment:付款时间,UTC毫秒数"`
	Ctime            int64  `gorm:"index:idx_status_ctime,priority:3"`
	Utime            int64
}

type OrderItem struct {
	Id            int64 `gorm:"primaryKey;autoIncrement;comment:订单项自增ID"`
	OrderId       int64 `gorm:"not null;index:idx_order_id;comment:订单自增ID"`
	ProductId     int64 `gorm:"not null;comment:商品ID"`
	VariantId     int64 `gorm:"not null;index:idx_variant_id;comment:规格ID"`
	Quantity      int64 `gorm:"not null;comment:购买数量"`
	OriginalPrice int64 `gorm:"not null;comment:原始单价,单位为新台币元"`
	Price         int64 `gorm:"not null;comment:优惠后成交单价,单位为新台币元"`
	PromotionId   int64 `gorm:"not null;default:0;comment:命中的促销活动ID,0表示无"`
	Ctime         int64
	Utime         int64
}

// ProductVariant 只映射扣减库存需要的列，表结构由商品模块维护
type ProductVariant struct {
	Id            int64
	StockQuantity int64
	Utime         int64
}
