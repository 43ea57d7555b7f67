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
	"slices"

	"github.com/shopspring/decimal"
)

var ErrInvalidPromotion = errors.New("促销活动参数非法")

type Type string

const (
	TypePercentage Type = "percentage" // Value 为折扣百分比
	TypeFlat       Type = "flat"       // Value 为每件立减金额
)

func (t Type) Valid() bool {
	return t == TypePercentage || t == TypeFlat
}

type Status uint8

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusActive   Status = 1
	StatusInactive Status = 2
)

var hundred = decimal.NewFromInt(100)

// Promotion 的有效期为 [StartDate, EndDate)，EndDate 为 0 表示长期有效。
// 时间均为 UTC 毫秒数，金额单位为新台币元。
type Promotion struct {
	ID          int64
	Name        string
	Type        Type
	Value       decimal.Decimal
	MinPurchase int64
	// MaxDiscount 单件折扣上限，0 表示不限
	MaxDiscount int64
	StartDate   int64
	EndDate     int64
	// Code 非空时，只有下单时填写了相同的优惠码才生效
	Code string
	// TargetProducts 为空表示全场商品
	TargetProducts []int64
	Status         Status
	Ctime          int64
	Utime          int64
}

func (p Promotion) Validate() error {
	switch {
	case p.Name == "":
		return fmt.Errorf("%w: 名称为空", ErrInvalidPromotion)
	case !p.Type.Valid():
		return fmt.Errorf("%w: 类型 %q", ErrInvalidPromotion, p.Type)
	case !p.Value.IsPositive():
		return fmt.Errorf("%w: 优惠值 %s", ErrInvalidPromotion, p.Value)
	case p.Type == TypePercentage && p.Value.GreaterThan(hundred):
		return fmt.Errorf("%w: 折扣百分比 %s", ErrInvalidPromotion, p.Value)
	case p.MinPurchase < 0 || p.MaxDiscount < 0:
		return fmt.Errorf("%w: 门槛或上限为负", ErrInvalidPromotion)
	case p.EndDate != 0 && p.EndDate <= p.StartDate:
		return fmt.Errorf("%w: 结束时间早于开始时间", ErrInvalidPromotion)
	}
	return nil
}

func (p Promotion) ActiveAt(at int64) bool {
	return p.Status == StatusActive &&
		p.StartDate <= at &&
		(p.EndDate == 0 || at < p.EndDate)
}

func (p Promotion) Covers(productID int64) bool {
	return len(p.TargetProducts) == 0 || slices.Contains(p.TargetProducts, productID)
}

func (p Promotion) Accepts(code string) bool {
	return p.Code == "" || p.Code == code
}

// UnitDiscount 计算单件折扣，结果不会超过单价
func (p Promotion) UnitDiscount(unitPrice int64) int64 {
	var d int64
	switch p.Type {
	case TypePercentage:
		d = decimal.NewFromInt(unitPrice).Mul(p.Value).Div(hundred).Floor().IntPart()
	case TypeFlat:
		d = p.Value.Floor().IntPart()
	}
	if p.MaxDiscount > 0 && d > p.MaxDiscount {
		d = p.MaxDiscount
	}
	return max(0, min(d, unitPrice))
}

// Query 描述购物车中的一行
type Query struct {
	ProductID int64
	VariantID int64
	UnitPrice int64
	Quantity  int64
	Code      string
}

type Resolution struct {
	// Promotion 未命中任何活动时为零值
	Promotion    Promotion
	UnitPrice    int64
	UnitDiscount int64
}

func (r Resolution) Applied() bool {
	return r.Promotion.ID != 0
}

func (r Resolution) FinalUnitPrice() int64 {
	return r.UnitPrice - r.UnitDiscount
}

// Best 从候选活动中选出对 q 折扣最大的一个。
// 折扣相同取开始时间最晚的，仍相同取ID最小的，保证结果确定。
func Best(candidates []Promotion, at int64, q Query) Resolution {
	res := Resolution{UnitPrice: q.UnitPrice}
	for _, p := range candidates {
		if !p.ActiveAt(at) || !p.Covers(q.ProductID) || !p.Accepts(q.Code) {
			continue
		}
		if q.UnitPrice*q.Quantity < p.MinPurchase {
			continue
		}
		d := p.UnitDiscount(q.UnitPrice)
		if d <= 0 {
			continue
		}
		if !res.Applied() || better(p, d, res.Promotion, res.UnitDiscount) {
			res.Promotion, res.UnitDiscount = p, d
		}
	}
	return res
}

func better(p Promotion, d int64, cur Promotion, curD int64) bool {
	if d != curD {
		return d > curD
	}
	if p.StartDate != cur.StartDate {
		return p.StartDate > cur.StartDate
	}
	return p.ID < cur.ID
}
