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
	"github.com/ecodeclub/pawmall/internal/product/internal/domain"
)

type SNReq struct {
	SN string `json:"sn"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type Product struct {
	ID       int64     `json:"id,omitempty"`
	SN       string    `json:"sn,omitempty"`
	Name     string    `json:"name"`
	Desc     string    `json:"desc"`
	Status   uint8     `json:"status,omitempty"`
	Variants []Variant `json:"variants,omitempty"`
	Ctime    int64     `json:"ctime,omitempty"`
}

type Variant struct {
	ID            int64  `json:"id,omitempty"`
	SN            string `json:"sn,omitempty"`
	ProductID     int64  `json:"productId,omitempty"`
	Name          string `json:"name"`
	Price         int64  `json:"price"`
	StockQuantity int64  `json:"stockQuantity"`
	Status        uint8  `json:"status,omitempty"`
}

type ProductList struct {
	Total    int64     `json:"total"`
	Products []Product `json:"products"`
}

type RestockReq struct {
	VariantID int64 `json:"variantId"`
	Quantity  int64 `json:"quantity"`
}

func newProduct(p domain.Product) Product {
	return Product{
		ID:     p.ID,
		SN:     p.SN,
		Name:   p.Name,
		Desc:   p.Desc,
		Status: p.Status.ToUint8(),
		Variants: slice.Map(p.Variants, func(idx int, src domain.Variant) Variant {
			return newVariant(src)
		}),
		Ctime: p.Ctime,
	}
}

func newVariant(v domain.Variant) Variant {
	return Variant{
		ID:            v.ID,
		SN:            v.SN,
		ProductID:     v.ProductID,
		Name:          v.Name,
		Price:         v.Price,
		StockQuantity: v.StockQuantity,
		Status:        v.Status.ToUint8(),
	}
}

func (p Product) toDomain() domain.Product {
	return domain.Product{
		ID:     p.ID,
		SN:     p.SN,
		Name:   p.Name,
		Desc:   p.Desc,
		Status: domain.Status(p.Status),
	}
}

func (v Variant) toDomain() domain.Variant {
	return domain.Variant{
		ID:            v.ID,
		SN:            v.SN,
		ProductID:     v.ProductID,
		Name:          v.Name,
		Price:         v.Price,
		StockQuantity: v.StockQuantity,
		Status:        domain.Status(v.Status),
	}
}
