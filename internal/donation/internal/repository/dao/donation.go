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

package dao

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ecodeclub/pawmall/internal/pkg/tradeno"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRecordNotFound  = gorm.ErrRecordNotFound
	ErrTradeNoConflict = errors.New("捐款编号冲突")
	ErrDeadlock        = errors.New("捐款事务死锁")
	ErrPriorNotFound   = errors.New("被重试的捐款不存在")
	ErrNotRetryable    = errors.New("只有失败的定期定额捐款可以重试")
	ErrAlreadyRetried  = errors.New("该笔捐款已被重试")
	ErrChainTooLong    = errors.New("重试链过长")
)

const (
	uniqueIndexErrNo uint16 = 1062
	deadlockErrNo    uint16 = 1213

	retryIndexName = "uniq_retry_trade_no"

	// MaxChainLength 重试链遍历的上限，超过即认为数据异常
	MaxChainLength = 100
)

//go:generate mockgen -source=./donation.go -package=daomocks -destination=./mocks/donation.mock.go DonationDAO
type DonationDAO interface {
	// Create 在一个事务内生成捐款编号并写入。
	// RetryTradeNo 有效时会锁住被重试的记录并校验它属于同一捐款人且为失败的定期定额捐款。
	Create(ctx context.Context, d Donation) (Donation, error)
	FindByTradeNo(ctx context.Context, tradeNo string) (Donation, error)
	FindByTradeNoAndDonor(ctx context.Context, tradeNo string, donorID int64) (Donation, error)
	// FindByRetryTradeNo 查找重试了 tradeNo 的那一笔
	FindByRetryTradeNo(ctx context.Context, tradeNo string) (Donation, error)
	// ListCurrent 与 CountCurrent 都排除已被后续尝试取代的记录
	ListCurrent(ctx context.Context, donorID int64, offset, limit int) ([]Donation, error)
	CountCurrent(ctx context.Context, donorID int64) (int64, error)
	Summary(ctx context.Context, donorID int64) (Summary, error)

	MarkPaid(ctx context.Context, tradeNo, paymentType string, paidAt int64) (Donation, bool, error)
	MarkFailed(ctx context.Context, tradeNo, paymentType string) (Donation, bool, error)
	// AppendFailedCycle 定期定额的后续某期扣款失败时，在重试链尾部追加一笔失败记录。
	// 链尾不是已付款状态时不追加，返回链尾本身且 changed 为 false。
	AppendFailedCycle(ctx context.Context, originTradeNo, paymentType string) (Donation, bool, error)
}

type donationGORMDAO struct {
	db     *egorm.Component
	issuer *tradeno.Issuer
}

func NewDonationGORMDAO(db *egorm.Component, issuer *tradeno.Issuer) DonationDAO {
	return &donationGORMDAO{db: db, issuer: issuer}
}

func (d *donationGORMDAO) Create(ctx context.Context, don Donation) (Donation, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if don.RetryTradeNo.Valid {
			if err := d.checkRetryable(tx, don); err != nil {
				return err
			}
		}
		tradeNo, err := d.issuer.Issue(tradeno.PrefixDonation, tradeno.GORMSequence(tx))
		if err != nil {
			return err
		}
		now := time.Now().UnixMilli()
		don.TradeNo = tradeNo
		don.Ctime, don.Utime = now, now
		return tx.Create(&don).Error
	})
	if err != nil {
		return Donation{}, insertErr(err)
	}
	return don, nil
}

func insertErr(err error) error {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		switch {
		case me.Number == uniqueIndexErrNo && strings.Contains(me.Message, retryIndexName):
			return ErrAlreadyRetried
		case me.Number == uniqueIndexErrNo:
			return fmt.Errorf("%w: %w", ErrTradeNoConflict, err)
		case me.Number == deadlockErrNo:
			return fmt.Errorf("%w: %w", ErrDeadlock, err)
		}
	}
	return err
}

func (d *donationGORMDAO) AppendFailedCycle(ctx context.Context, originTradeNo, paymentType string) (Donation, bool, error) {
	var (
		res     Donation
		changed bool
	)
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 锁住链头，同一笔定期定额的各期回调在此串行
		var origin Donation
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("trade_no = ?", originTradeNo).
			First(&origin).Error
		if err != nil {
			return err
		}
		tail, err := chainTail(tx, origin)
		if err != nil {
			return err
		}
		if origin.DonationMode != ModeRecurring || tail.TransactionStatus != StatusPaid {
			res = tail
			return nil
		}
		tradeNo, err := d.issuer.Issue(tradeno.PrefixDonation, tradeno.GORMSequence(tx))
		if err != nil {
			return err
		}
		now := time.Now().UnixMilli()
		res = Donation{
			TradeNo:           tradeNo,
			DonorId:           tail.DonorId,
			DonorName:         tail.DonorName,
			DonorEmail:        tail.DonorEmail,
			DonorPhone:        tail.DonorPhone,
			Amount:            tail.Amount,
			DonationMode:      ModeRecurring,
			TransactionStatus: StatusFailed,
			RetryTradeNo:      sql.NullString{String: tail.TradeNo, Valid: true},
			Message:           tail.Message,
			PaymentType:       paymentType,
			Ctime:             now,
			Utime:             now,
		}
		changed = true
		return tx.Create(&res).Error
	})
	if err != nil {
		return Donation{}, false, insertErr(err)
	}
	return res, changed, nil
}

// chainTail 从 head 沿 retry_trade_no 向后找到链上最新的一笔
func chainTail(tx *gorm.DB, head Donation) (Donation, error) {
	cur := head
	for i := 0; i < MaxChainLength; i++ {
		var next Donation
		err := tx.Where("retry_trade_no = ?", cur.TradeNo).First(&next).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return cur, nil
		}
		if err != nil {
			return Donation{}, err
		}
		cur = next
	}
	return Donation{}, ErrChainTooLong
}

// checkRetryable 持有被重试记录的行锁直到事务结束，同一笔失败捐款的并发重试在此串行
func (d *donationGORMDAO) checkRetryable(tx *gorm.DB, don Donation) error {
	var prior Donation
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("trade_no = ?", don.RetryTradeNo.String).
		First(&prior).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPriorNotFound
	}
	if err != nil {
		return err
	}
	if prior.DonorId != don.DonorId {
		return ErrPriorNotFound
	}
	if prior.DonationMode != ModeRecurring || prior.TransactionStatus != StatusFailed {
		return ErrNotRetryable
	}
	var cnt int64
	err = tx.Model(&Donation{}).
		Where("retry_trade_no = ?", prior.TradeNo).
		Count(&cnt).Error
	if err != nil {
		return err
	}
	if cnt > 0 {
		return ErrAlreadyRetried
	}
	return nil
}

func (d *donationGORMDAO) FindByTradeNo(ctx context.Context, tradeNo string) (Donation, error) {
	var res Donation
	err := d.db.WithContext(ctx).Where("trade_no = ?", tradeNo).First(&res).Error
	return res, err
}

func (d *donationGORMDAO) FindByTradeNoAndDonor(ctx context.Context, tradeNo string, donorID int64) (Donation, error) {
	var res Donation
	err := d.db.WithContext(ctx).
		Where("trade_no = ? AND donor_id = ?", tradeNo, donorID).
		First(&res).Error
	return res, err
}

func (d *donationGORMDAO) FindByRetryTradeNo(ctx context.Context, tradeNo string) (Donation, error) {
	var res Donation
	err := d.db.WithContext(ctx).Where("retry_trade_no = ?", tradeNo).First(&res).Error
	return res, err
}

// current 当前有效的捐款，即没有被任何一笔重试指向的记录
func (d *donationGORMDAO) current(ctx context.Context, donorID int64) *gorm.DB {
	return d.db.WithContext(ctx).Model(&Donation{}).
		Where("donor_id = ?", donorID).
		Where("NOT EXISTS (SELECT 1 FROM `donations` r WHERE r.retry_trade_no = `donations`.trade_no)")
}

func (d *donationGORMDAO) ListCurrent(ctx context.Context, donorID int64, offset, limit int) ([]Donation, error) {
	var res []Donation
	err := d.current(ctx, donorID).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *donationGORMDAO) CountCurrent(ctx context.Context, donorID int64) (int64, error) {
	var res int64
	err := d.current(ctx, donorID).Count(&res).Error
	return res, err
}

func (d *donationGORMDAO) Summary(ctx context.Context, donorID int64) (Summary, error) {
	var res Summary
	err := d.current(ctx, donorID).
		Select("COUNT(*) AS cnt, "+
			"COALESCE(SUM(CASE WHEN transaction_status = ? THEN 1 ELSE 0 END), 0) AS paid_cnt, "+
			"COALESCE(SUM(CASE WHEN transaction_status = ? THEN amount ELSE 0 END), 0) AS paid_amount, "+
			"COALESCE(SUM(CASE WHEN transaction_status = ? THEN 1 ELSE 0 END), 0) AS failed_cnt",
			StatusPaid, StatusPaid, StatusFailed).
		Scan(&res).Error
	return res, err
}

func (d *donationGORMDAO) transit(ctx context.Context, tradeNo string, updates map[string]any) (Donation, bool, error) {
	var (
		res     Donation
		changed bool
	)
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates["utime"] = time.Now().UnixMilli()
		ur := tx.Model(&Donation{}).
			Where("trade_no = ? AND transaction_status = ?", tradeNo, StatusUnpaid).
			Updates(updates)
		if ur.Error != nil {
			return ur.Error
		}
		changed = ur.RowsAffected > 0
		return tx.Where("trade_no = ?", tradeNo).First(&res).Error
	})
	return res, changed, err
}

func (d *donationGORMDAO) MarkPaid(ctx context.Context, tradeNo, paymentType string, paidAt int64) (Donation, bool, error) {
	return d.transit(ctx, tradeNo, map[string]any{
		"transaction_status": StatusPaid,
		"payment_type":       paymentType,
		"paid_at":            paidAt,
	})
}

func (d *donationGORMDAO) MarkFailed(ctx context.Context, tradeNo, paymentType string) (Donation, bool, error) {
	return d.transit(ctx, tradeNo, map[string]any{
		"transaction_status": StatusFailed,
		"payment_type":       paymentType,
	})
}

const (
	ModeOneTime   = "one-time"
	ModeRecurring = "recurring"

	StatusUnpaid = "未付款"
	StatusPaid   = "已付款"
	StatusFailed = "付款失敗"
)

type Donation struct {
	Id                int64          `gorm:"primaryKey;autoIncrement;comment:捐款自增ID"`
	TradeNo           string         `gorm:"type:varchar(32);not null;uniqueIndex:uniq_trade_no;comment:捐款编号 DONyyyyMMdd0001"`
	DonorId           int64          `gorm:"not null;index:idx_donor_id;comment:捐款人ID"`
	DonorName         string         `gorm:"type:varchar(64);not null;comment:捐款人姓名"`
	DonorEmail        string         `gorm:"type:varchar(255);not null;default:'';comment:捐款人邮箱"`
	DonorPhone        string         `gorm:"type:varchar(32);not null;default:'';comment:捐款人电话"`
	Amount            int64          `gorm:"not null;comment:捐款金额,单位为新台币元"`
	DonationMode      string         `gorm:"type:varchar(16);not null;comment:捐款方式 one-time/recurring"`
	TransactionStatus string         `gorm:"type:varchar(16);not null;comment:交易状态 未付款/已付款/付款失敗"`
	RetryTradeNo      sql.NullString `gorm:"type:varchar(32);uniqueIndex:uniq_retry_trade_no;comment:被本次重试的捐款编号"`
	Message           string         `gorm:"type:varchar(1024);not null;default:'';comment:捐款留言"`
	PaymentType       string         `gorm:"type:varchar(64);not null;default:'';comment:网关回传的付款方式"`
	PaidAt            int64          `gorm:"not null;default:0;comment:付款时间,UTC毫秒数"`
	Ctime             int64
	Utime             int64
}

type Summary struct {
	Cnt        int64
	PaidCnt    int64
	PaidAmount int64
	FailedCnt  int64
}
