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
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

const (
	day  = int64(24 * 60 * 60 * 1000)
	now  = 100 * day
	dogs = int64(1)
	cats = int64(2)
)

func percentage(id int64, v int64) Promotion {
	return Promotion{
		ID:        id,
		Name:      "折扣",
		Type:      TypePercentage,
		Value:     decimal.NewFromInt(v),
		StartDate: now - day,
		Status:    StatusActive,
	}
}

func flat(id int64, v int64) Promotion {
	return Promotion{
		ID:        id,
		Name:      "立减",
		Type:      TypeFlat,
		Value:     decimal.NewFromInt(v),
		StartDate: now - day,
		Status:    StatusActive,
	}
}

func TestPromotion_ActiveAt(t *testing.T) {
	p := percentage(1, 10)
	p.StartDate = now
	p.EndDate = now + day

	assert.False(t, p.ActiveAt(now-1))
	assert.True(t, p.ActiveAt(now))
	assert.True(t, p.ActiveAt(now+day-1))
	// 结束时间不包含在有效期内
	assert.False(t, p.ActiveAt(now+day))

	p.EndDate = 0
	assert.True(t, p.ActiveAt(now+1000*day))

	p.Status = StatusInactive
	assert.False(t, p.ActiveAt(now))
}

func TestPromotion_UnitDiscount(t *testing.T) {
	testCases := []struct {
		name  string
		p     Promotion
		price int64
		want  int64
	}{
		{name: "百分比向下取整", p: percentage(1, 15), price: 999, want: 149},
		{name: "小数百分比", p: func() Promotion {
			p := percentage(1, 0)
			p.Value = decimal.RequireFromString("12.5")
			return p
		}(), price: 800, want: 100},
		{name: "上限", p: func() Promotion {
			p := percentage(1, 50)
			p.MaxDiscount = 120
			return p
		}(), price: 1000, want: 120},
		{name: "立减", p: flat(1, 50), price: 300, want: 50},
		{name: "立减不超过单价", p: flat(1, 500), price: 300, want: 300},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.p.UnitDiscount(tc.price))
		})
	}
}

func TestPromotion_Validate(t *testing.T) {
	assert.NoError(t, percentage(1, 10).Validate())
	assert.ErrorIs(t, percentage(1, 101).Validate(), ErrInvalidPromotion)
	assert.ErrorIs(t, flat(1, 0).Validate(), ErrInvalidPromotion)

	p := flat(1, 10)
	p.EndDate = p.StartDate
	assert.ErrorIs(t, p.Validate(), ErrInvalidPromotion)

	p = flat(1, 10)
	p.Type = "bogo"
	assert.ErrorIs(t, p.Validate(), ErrInvalidPromotion)
}

func TestBest(t *testing.T) {
	scoped := func(p Promotion, products ...int64) Promotion {
		p.TargetProducts = products
		return p
	}
	testCases := []struct {
		name       string
		candidates []Promotion
		q          Query
		wantID     int64
		wantDisc   int64
	}{
		{
			name:       "没有活动",
			candidates: nil,
			q:          Query{ProductID: dogs, UnitPrice: 500, Quantity: 1},
		},
		{
			name:       "折扣最大者胜出",
			candidates: []Promotion{percentage(1, 10), flat(2, 80), percentage(3, 20)},
			q:          Query{ProductID: dogs, UnitPrice: 500, Quantity: 1},
			wantID:     3,
			wantDisc:   100,
		},
		{
			name: "折扣相同取开始时间最晚者",
			candidates: func() []Promotion {
				older, newer := flat(1, 50), flat(2, 50)
				older.StartDate = now - 3*day
				newer.StartDate = now - day
				return []Promotion{older, newer}
			}(),
			q:        Query{ProductID: dogs, UnitPrice: 500, Quantity: 1},
			wantID:   2,
			wantDisc: 50,
		},
		{
			name:       "折扣和开始时间都相同取ID最小者",
			candidates: []Promotion{flat(9, 50), flat(4, 50)},
			q:          Query{ProductID: dogs, UnitPrice: 500, Quantity: 1},
			wantID:     4,
			wantDisc:   50,
		},
		{
			name:       "不在适用商品范围内",
			candidates: []Promotion{scoped(percentage(1, 50), cats), scoped(flat(2, 10), cats, dogs)},
			q:          Query{ProductID: dogs, UnitPrice: 500, Quantity: 1},
			wantID:     2,
			wantDisc:   10,
		},
		{
			name: "已过期或未开始",
			candidates: func() []Promotion {
				expired, future := percentage(1, 50), percentage(2, 40)
				expired.EndDate = now
				future.StartDate = now + 1
				return []Promotion{expired, future, flat(3, 1)}
			}(),
			q:        Query{ProductID: dogs, UnitPrice: 500, Quantity: 1},
			wantID:   3,
			wantDisc: 1,
		},
		{
			name: "优惠码不匹配",
			candidates: func() []Promotion {
				p := percentage(1, 50)
				p.Code = "ADOPT2024"
				return []Promotion{p}
			}(),
			q: Query{ProductID: dogs, UnitPrice: 500, Quantity: 1, Code: "WRONG"},
		},
		{
			name: "优惠码匹配",
			candidates: func() []Promotion {
				p := percentage(1, 50)
				p.Code = "ADOPT2024"
				return []Promotion{p}
			}(),
			q:        Query{ProductID: dogs, UnitPrice: 500, Quantity: 1, Code: "ADOPT2024"},
			wantID:   1,
			wantDisc: 250,
		},
		{
			name: "未达消费门槛",
			candidates: func() []Promotion {
				p := flat(1, 100)
				p.MinPurchase = 1000
				return []Promotion{p}
			}(),
			q: Query{ProductID: dogs, UnitPrice: 300, Quantity: 3},
		},
		{
			name: "按行小计达到消费门槛",
			candidates: func() []Promotion {
				p := flat(1, 100)
				p.MinPurchase = 1000
				return []Promotion{p}
			}(),
			q:        Query{ProductID: dogs, UnitPrice: 300, Quantity: 4},
			wantID:   1,
			wantDisc: 100,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := Best(tc.candidates, now, tc.q)
			assert.Equal(t, tc.wantID, res.Promotion.ID)
			assert.Equal(t, tc.wantID != 0, res.Applied())
			assert.Equal(t, tc.wantDisc, res.UnitDiscount)
			assert.Equal(t, tc.q.UnitPrice-tc.wantDisc, res.FinalUnitPrice())
		})
	}
}

func TestBest_Deterministic(t *testing.T) {
	a, b, c := flat(5, 30), flat(2, 30), flat(8, 30)
	q := Query{ProductID: dogs, UnitPrice: 100, Quantity: 1}
	first := Best([]Promotion{a, b, c}, now, q)
	second := Best([]Promotion{c, b, a}, now, q)
	assert.Equal(t, first, second)
	assert.Equal(t, int64(2), first.Promotion.ID)
}
