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

package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

type OrderStatus string

func (s OrderStatus) String() string {
	return string(s)
}

const (
	OrderStatusPendingShip OrderStatus = "待出貨"
	OrderStatusShipped     OrderStatus = "已出貨"
	OrderStatusCompleted   OrderStatus = "已完成"
	OrderStatusCanceled    OrderStatus = "已取消"
)

type PaymentStatus string

func (s PaymentStatus) String() string {
	return string(s)
}

const (
	PaymentStatusUnpaid PaymentStatus = "未付款"
	PaymentStatusPaid   PaymentStatus = "已付款"
	PaymentStatusFailed PaymentStatus = "付款失敗"
)

var (
	ErrInvalidCart      = errors.New("购物车为空或商品数量非法")
	ErrInvalidRecipient = errors.New("收件人信息不完整")
	ErrAmountOverflow   = errors.New("订单金额超出范围")
)

type Recipient struct {
	Name    string
	Phone   string
	Address string
	Email   string
}

func (r Recipient) Valid() bool {
	return strings.TrimSpace(r.Name) != "" &&
		strings.TrimSpace(r.Phone) != "" &&
		strings.TrimSpace(r.Address) != ""
}

// Order 商城订单，金额单位为新台币元
type Order struct {
	ID            int64
	TradeNo       string
	BuyerID       int64
	Recipient     Recipient
	Note          string
	TotalPrice    int64
	OrderStatus   OrderStatus
	PaymentStatus PaymentStatus
	PaymentType   string
	PaidAt        int64
	Items         []OrderItem
	Ctime         int64
	Utime         int64
}

// Payable 只有待出貨且未付款的订单可以发起支付
func (o Order) Payable() bool {
	return o.OrderStatus == OrderStatusPendingShip && o.PaymentStatus == PaymentStatusUnpaid
}

// OrderItem 下单时的价格快照，创建后不再修改
type OrderItem struct {
	ProductID     int64
	VariantID     int64
	Quantity      int64
	OriginalPrice int64
	Price         int64
	PromotionID   int64
}

// Subtotal 单价或数量为负、乘积溢出时 ok 为 false
func (i OrderItem) Subtotal() (int64, bool) {
	if i.Price < 0 || i.Quantity < 0 {
		return 0, false
	}
	if i.Quantity > 0 && i.Price > math.MaxInt64/i.Quantity {
		return 0, false
	}
	return i.Price * i.Quantity, true
}

func TotalPrice(items []OrderItem) (int64, error) {
	var total int64
	for _, item := range items {
		sub, ok := item.Subtotal()
		if !ok || total > math.MaxInt64-sub {
			return 0, fmt.Errorf("%w: variant_id=%d", ErrAmountOverflow, item.VariantID)
		}
		total += sub
	}
	return total, nil
}

type Line struct {
	ProductID int64
	VariantID int64
	Quantity  int64
}

type Checkout struct {
	BuyerID   int64
	Lines     []Line
	Recipient Recipient
	Code      string
	Note      string
}

// MergedLines 校验购物车并合并同一规格的多行，保持首次出现的顺序
func (c Checkout) MergedLines() ([]Line, error) {
	if len(c.Lines) == 0 {
		return nil, ErrInvalidCart
	}
	res := make([]Line, 0, len(c.Lines))
	idx := make(map[int64]int, len(c.Lines))
	for _, l := range c.Lines {
		if l.Quantity <= 0 || l.VariantID <= 0 {
			return nil, ErrInvalidCart
		}
		if i, ok := idx[l.VariantID]; ok {
			if res[i].ProductID != l.ProductID {
				return nil, ErrInvalidCart
			}
			if l.Quantity > math.MaxInt64-res[i].Quantity {
				return nil, ErrInvalidCart
			}
			res[i].Quantity += l.Quantity
			continue
		}
		idx[l.VariantID] = len(res)
		res = append(res, l)
	}
	return res, nil
}

type StockErrorKind string

const (
	StockErrInsufficient    StockErrorKind = "insufficient_stock"
	StockErrProductNotFound StockErrorKind = "product_not_found"
)

// StockError 指出具体是哪个规格导致下单失败
type StockError struct {
	Kind      StockErrorKind
	VariantID int64
}

func (e *StockError) Error() string {
	return fmt.Sprintf("%s: variant_id=%d", e.Kind, e.VariantID)
}
