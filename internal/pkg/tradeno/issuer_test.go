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


package tradeno

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuer_Issue(t *testing.T) {
	loc, err := LoadLocation("")
	require.NoError(t, err)
	// UTC 2024-04-30 17:30 在台北已经是 5 月 1 日
	now := time.Date(2024, 4, 30, 17, 30, 0, 0, time.UTC)
	issuer := NewIssuerWith(loc, func() time.Time { return now })

	testCases := []struct {
		name    string
		prefix  string
		next    SequenceFunc
		wantNo  string
		wantErr error
	}{
		{
			name:   "当日首单",
			prefix: PrefixShop,
			next: func(dayPrefix string) (int64, error) {
				assert.Equal(t, "ORD20240501", dayPrefix)
				return 1, nil
			},
			wantNo: "ORD202405010001",
		},
		{
			name:   "递增",
			prefix: PrefixDonation,
			next: func(dayPrefix string) (int64, error) {
				return 42, nil
			},
			wantNo: "DON202405010042",
		},
		{
			name:   "测试前缀",
			prefix: PrefixTest,
			next: func(dayPrefix string) (int64, error) {
				return 10, nil
			},
			wantNo: "TST202405010010",
		},
		{
			name:   "最后一个流水号",
			prefix: PrefixShop,
			next: func(dayPrefix string) (int64, error) {
				return 9999, nil
			},
			wantNo: "ORD202405019999",
		},
		{
			name:   "流水号用尽",
			prefix: PrefixShop,
			next: func(dayPrefix string) (int64, error) {
				return 10000, nil
			},
			wantErr: ErrSequenceExhausted,
		},
		{
			name:   "未知前缀",
			prefix: "XYZ",
			next: func(dayPrefix string) (int64, error) {
				t.Fatal("不应该分配流水号")
				return 0, nil
			},
			wantErr: ErrUnknownPrefix,
		},
		{
			name:   "流水号非法",
			prefix: PrefixShop,
			next: func(dayPrefix string) (int64, error) {
				return 0, nil
			},
			wantErr: ErrInvalidSequence,
		},
		{
			name:   "分配失败",
			prefix: PrefixShop,
			next: func(dayPrefix string) (int64, error) {
				return 0, errors.New("mock db error")
			},
			wantErr: errors.New("mock db error"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			no, err := issuer.Issue(tc.prefix, tc.next)
			if tc.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tc.wantErr, ErrSequenceExhausted) ||
					errors.Is(tc.wantErr, ErrUnknownPrefix) ||
					errors.Is(tc.wantErr, ErrInvalidSequence) {
					assert.ErrorIs(t, err, tc.wantErr)
				} else {
					assert.ErrorContains(t, err, tc.wantErr.Error())
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantNo, no)
			assert.Len(t, no, 15)
		})
	}
}

func TestIssuer_DayBoundary(t *testing.T) {
	loc, err := LoadLocation("Asia/Taipei")
	require.NoError(t, err)

	before := NewIssuerWith(loc, func() time.Time {
		return time.Date(2024, 5, 1, 23, 59, 59, 0, loc)
	})
	after := NewIssuerWith(loc, func() time.Time {
		return time.Date(2024, 5, 2, 0, 0, 0, 0, loc)
	})
	assert.Equal(t, "ORD20240501", before.DayPrefix(PrefixShop))
	assert.Equal(t, "ORD20240502", after.DayPrefix(PrefixShop))

	// 跨天之后换了一行计数，从 0001 重新开始
	no, err := after.Issue(PrefixShop, func(dayPrefix string) (int64, error) {
		assert.Equal(t, "ORD20240502", dayPrefix)
		return 1, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ORD202405020001", no)
}

func TestFormat(t *testing.T) {
	no, err := Format("DON20240501", 999)
	require.NoError(t, err)
	assert.Equal(t, "DON202405010999", no)

	_, err = Format("DON20240501", -3)
	assert.ErrorIs(t, err, ErrInvalidSequence)
}
