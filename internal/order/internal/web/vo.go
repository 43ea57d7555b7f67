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

package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/pawmall/internal/order/internal/domain"
)

type Line struct {
	ProductID int64 `json:"product_id"`
	VariantID int64 `json:"variant_id"`
	Quantity  int64 `json:"quantity"`
}

type Recipient struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Email   string `json:"email,omitempty"`
}

type CheckoutReq struct {
	// RequestID 由前端生成，用于防止重复提交
	RequestID string    `json:"request_id"`
	Items     []Line    `json:"items"`
	Recipient Recipient `json:"recipient"`
	Code      string    `json:"code,omitempty"`
	Note      string    `json:"note,omitempty"`
}

func (r CheckoutReq) toDomain(buyerID int64) domain.Checkout {
	return domain.Checkout{
		BuyerID: buyerID,
		Lines: slice.Map(r.Items, func(idx int, src Line) domain.Line {
			return domain.Line{
				ProductID: src.ProductID,
				VariantID: src.VariantID,
				Quantity:  src.Quantity,
			}
		}),
		Recipient: domain.Recipient(r.Recipient),
		Code:      r.Code,
		Note:      r.Note,
	}
}

type CheckoutResp struct {
	OrderID    string `json:"order_id"`
	TotalPrice int64  `json:"total_price"`
}

// CheckoutError 下单失败时返回给调用方的结构化错误
type CheckoutError struct {
	Error     string `json:"error"`
	VariantID int64  `json:"variant_id,omitempty"`
}

type OrderIDReq struct {
	OrderID string `json:"order_id"`
}

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type OrderItem struct {
	ProductID     int64 `json:"product_id"`
	VariantID     int64 `json:"variant_id"`
	Quantity      int64 `json:"quantity"`
	OriginalPrice int64 `json:"original_price"`
	Price         int64 `json:"price"`
	PromotionID   int64 `json:"promotion_id,omitempty"`
}

type Order struct {
	OrderID       string      `json:"order_id"`
	BuyerID       int64       `json:"buyer_id,omitempty"`
	Recipient     Recipient   `json:"recipient"`
	Note          string      `json:"note,omitempty"`
	TotalPrice    int64       `json:"total_price"`
	OrderStatus   string      `json:"order_status"`
	PaymentStatus string      `json:"payment_status"`
	PaymentType   string      `json:"payment_type,omitempty"`
	PaidAt        int64       `json:"paid_at,omitempty"`
	Items         []OrderItem `json:"items,omitempty"`
	Ctime         int64       `json:"ctime"`
	Utime         int64       `json:"utime"`
}

type OrderList struct {
	Total  int64   `json:"total"`
	Orders []Order `json:"orders"`
}

func newOrder(o domain.Order) Order {
	return Order{
		OrderID:       o.TradeNo,
		BuyerID:       o.BuyerID,
		Recipient:     Recipient(o.Recipient),
		Note:          o.Note,
		TotalPrice:    o.TotalPrice,
		OrderStatus:   o.OrderStatus.String(),
		PaymentStatus: o.PaymentStatus.String(),
		PaymentType:   o.PaymentType,
		PaidAt:        o.PaidAt,
		Items: slice.Map(o.Items, func(idx int, src domain.OrderItem) OrderItem {
			return OrderItem{
				ProductID:     src.ProductID,
				VariantID:     src.VariantID,
				Quantity:      src.Quantity,
				OriginalPrice: src.OriginalPrice,
				Price:         src.Price,
				PromotionID:   src.PromotionID,
			}
		}),
		Ctime: o.Ctime,
		Utime: o.Utime,
	}
}

func newOrderList(os []domain.Order, total int64) OrderList {
	return OrderList{
		Total: total,
		Orders: slice.Map(os, func(idx int, src domain.Order) Order {
			return newOrder(src)
		}),
	}
}

func limitOrDefault(limit int) int {
	if limit <= 0 || limit > 100 {
		return 20
	}
	return limit
}
