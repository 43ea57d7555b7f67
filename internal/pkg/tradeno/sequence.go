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
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Sequence 每个 前缀+日期 一行，Seq 为当天已分配的最大流水号
type Sequence struct {
	DayPrefix string `gorm:"primaryKey;type:varchar(16);comment:交易编号前缀加日期，如 ORD20240501"`
	Seq       int64  `gorm:"not null;comment:当天已分配的最大流水号"`
	Ctime     int64
	Utime     int64
}

func (Sequence) TableName() string {
	return "trade_no_sequences"
}

// GORMSequence 在 tx 内用 upsert 为 dayPrefix 分配流水号。
// 计数行的行锁持有到 tx 结束，同一天同一前缀的分配在这一行上排队。
func GORMSequence(tx *gorm.DB) SequenceFunc {
	return func(dayPrefix string) (int64, error) {
		now := time.Now().UnixMilli()
		err := tx.Clauses(clause.OnConflict{
			DoUpdates: clause.Assignments(map[string]any{
				"seq":   gorm.Expr("seq + 1"),
				"utime": now,
			}),
		}).Create(&Sequence{DayPrefix: dayPrefix, Seq: 1, Ctime: now, Utime: now}).Error
		if err != nil {
			return 0, err
		}
		var seq int64
		err = tx.Model(&Sequence{}).
			Select("seq").
			Where("day_prefix = ?", dayPrefix).
			Scan(&seq).Error
		return seq, err
	}
}
