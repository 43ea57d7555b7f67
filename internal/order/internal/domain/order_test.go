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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckout_MergedLines(t *testing.T) {
	testCases := []struct {
		name    string
		lines   []Line
		want    []Line
		wantErr error
	}{
		{
			name: "合并同规格并保持顺序",
			lines: []Line{
				{ProductID: 1, VariantID: 7, Quantity: 1},
				{ProductID: 2, VariantID: 9, Quantity: 1},
				{ProductID: 1, VariantID: 7, Quantity: 3},
			},
			want: []Line{
				{ProductID: 1, VariantID: 7, Quantity: 4},
				{ProductID: 2, VariantID: 9, Quantity: 1},
			},
		},
		{
			name:    "空购物车",
			wantErr: ErrInvalidCart,
		},
		{
			name:    "数量为负",
			lines:   []Line{{ProductID: 1, VariantID: 7, Quantity: -1}},
			wantErr: ErrInvalidCart,
		},
		{
			name: "同规格对应不同商品",
			lines: []Line{
				{ProductID: 1, VariantID: 7, Quantity: 1},
				{ProductID: 2, VariantID: 7, Quantity: 1},
			},
			wantErr: ErrInvalidCart,
		},
		{
			name: "合并后数量溢出",
			lines: []Line{
				{ProductID: 1, VariantID: 7, Quantity: math.MaxInt64},
				{ProductID: 1, VariantID: 7, Quantity: math.MaxInt64},
			},
			wantErr: ErrInvalidCart,
		},
		{
			name: "合并后恰好等于上限",
			lines: []Line{
				{ProductID: 1, VariantID: 7, Quantity: math.MaxInt64 - 1},
				{ProductID: 1, VariantID: 7, Quantity: 1},
			},
			want: []Line{{ProductID: 1, VariantID: 7, Quantity: math.MaxInt64}},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Checkout{Lines: tc.lines}.MergedLines()
			assert.ErrorIs(t, err, tc.wantErr)
			if err == nil {
				assert.Equal(t, tc.want, res)
			}
		})
	}
}

func TestTotalPrice(t *testing.T) {
	testCases := []struct {
		name    string
		items   []OrderItem
		want    int64
		wantErr error
	}{
		{
			name: "正常累加",
			items: []OrderItem{
				{VariantID: 7, Price: 450, Quantity: 3},
				{VariantID: 9, Price: 120, Quantity: 1},
			},
			want: 1470,
		},
		{
			name:  "空订单",
			items: nil,
		},
		{
			name:    "小计溢出",
			items:   []OrderItem{{VariantID: 7, Price: 100, Quantity: math.MaxInt64}},
			wantErr: ErrAmountOverflow,
		},
		{
			name: "累加溢出",
			items: []OrderItem{
				{VariantID: 7, Price: 1, Quantity: math.MaxInt64},
				{VariantID: 9, Price: 1, Quantity: 1},
			},
			wantErr: ErrAmountOverflow,
		},
		{
			name:    "单价为负",
			items:   []OrderItem{{VariantID: 7, Price: -1, Quantity: 2}},
			wantErr: ErrAmountOverflow,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			total, err := TotalPrice(tc.items)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, total)
		})
	}
}
