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
	"github.com/ecodeclub/pawmall/internal/promotion/internal/domain"
	"github.com/shopspring/decimal"
)

type Promotion struct {
	ID             int64           `json:"id,omitempty"`
	Name           string          `json:"name"`
	Type           string          `json:"type"`
	Value          decimal.Decimal `json:"value"`
	MinPurchase    int64           `json:"minPurchase"`
	MaxDiscount    int64           `json:"maxDiscount"`
	StartDate      int64           `json:"startDate"`
	EndDate        int64           `json:"endDate,omitempty"`
	Code           string          `json:"code,omitempty"`
	TargetProducts []int64         `json:"targetProducts,omitempty"`
	Status         uint8           `json:"status,omitempty"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type PromotionList struct {
	Total      int64       `json:"total"`
	Promotions []Promotion `json:"promotions"`
}

type PreviewReq struct {
	VariantID int64  `json:"variantId"`
	Quantity  int64  `json:"quantity"`
	Code      string `json:"code,omitempty"`
}

type PreviewResp struct {
	VariantID      int64  `json:"variantId"`
	OriginalPrice  int64  `json:"originalPrice"`
	Price          int64  `json:"price"`
	PromotionID    int64  `json:"promotionId,omitempty"`
	PromotionName  string `json:"promotionName,omitempty"`
	SubtotalAmount int64  `json:"subtotalAmount"`
}

func newPromotion(p domain.Promotion) Promotion {
	return Promotion{
		ID:             p.ID,
		Name:           p.Name,
		Type:           string(p.Type),
		Value:          p.Value,
		MinPurchase:    p.MinPurchase,
		MaxDiscount:    p.MaxDiscount,
		StartDate:      p.StartDate,
		EndDate:        p.EndDate,
		Code:           p.Code,
		TargetProducts: p.TargetProducts,
		Status:         p.Status.ToUint8(),
	}
}

func (p Promotion) toDomain() domain.Promotion {
	return domain.Promotion{
		Name:           p.Name,
		Type:           domain.Type(p.Type),
		Value:          p.Value,
		MinPurchase:    p.MinPurchase,
		MaxDiscount:    p.MaxDiscount,
		StartDate:      p.StartDate,
		EndDate:        p.EndDate,
		Code:           p.Code,
		TargetProducts: p.TargetProducts,
	}
}
