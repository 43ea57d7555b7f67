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
	"fmt"
	"time"
)

const (
	PrefixShop     = "ORD"
	PrefixDonation = "DON"
	PrefixTest     = "TST"

	dateLayout = "20060102"
	seqWidth   = 4
	maxSeq     = 9999

	DefaultTimezone = "Asia/Taipei"
)

var (
	ErrSequenceExhausted = errors.New("当日交易流水号已用尽")
	ErrUnknownPrefix     = errors.New("未知的交易编号前缀")
	ErrInvalidSequence   = errors.New("交易流水号非法")
)

// SequenceFunc 为 dayPrefix 分配下一个流水号，从 1 开始。
// 实现方必须在调用方的事务内完成分配，事务回滚时流水号一并回滚。
type SequenceFunc func(dayPrefix string) (int64, error)

type NowFunc func() time.Time

// Issuer 生成 <PREFIX><YYYYMMDD><4位流水号> 格式的交易编号。
// Issuer 本身无状态，流水号由 SequenceFunc 在存储层分配。
type Issuer struct {
	loc *time.Location
	now NowFunc
}

func NewIssuerWith(loc *time.Location, now NowFunc) *Issuer {
	return &Issuer{loc: loc, now: now}
}

func NewIssuer(loc *time.Location) *Issuer {
	return NewIssuerWith(loc, time.Now)
}

// LoadLocation 加载时区，name 为空时使用 Asia/Taipei
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		name = DefaultTimezone
	}
	return time.LoadLocation(name)
}

// DayPrefix 返回 prefix 与当天日期拼接后的前缀
func (i *Issuer) DayPrefix(prefix string) string {
	return prefix + i.now().In(i.loc).Format(dateLayout)
}

// Issue 分配当天的下一个流水号并拼成交易编号
func (i *Issuer) Issue(prefix string, next SequenceFunc) (string, error) {
	if !isKnownPrefix(prefix) {
		return "", fmt.Errorf("%w: %s", ErrUnknownPrefix, prefix)
	}
	day := i.DayPrefix(prefix)
	seq, err := next(day)
	if err != nil {
		return "", fmt.Errorf("分配当日交易流水号失败: %w", err)
	}
	return Format(day, seq)
}

// Format 拼接交易编号，流水号超过 9999 时返回 ErrSequenceExhausted
func Format(dayPrefix string, seq int64) (string, error) {
	if seq <= 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidSequence, seq)
	}
	if seq > maxSeq {
		return "", fmt.Errorf("%w: %s", ErrSequenceExhausted, dayPrefix)
	}
	return fmt.Sprintf("%s%0*d", dayPrefix, seqWidth, seq), nil
}

func isKnownPrefix(prefix string) bool {
	switch prefix {
	case PrefixShop, PrefixDonation, PrefixTest:
		return true
	default:
		return false
	}
}
