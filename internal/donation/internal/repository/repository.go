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

package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/pawmall/internal/donation/internal/domain"
	"github.com/ecodeclub/pawmall/internal/donation/internal/repository/dao"
)

var (
	ErrDonationNotFound = dao.ErrRecordNotFound
	ErrTradeNoConflict  = dao.ErrTradeNoConflict
	ErrDeadlock         = dao.ErrDeadlock
	ErrPriorNotFound    = dao.ErrPriorNotFound
	ErrNotRetryable     = dao.ErrNotRetryable
	ErrAlreadyRetried   = dao.ErrAlreadyRetried
	ErrChainTooLong     = dao.ErrChainTooLong
)

const MaxChainLength = dao.MaxChainLength

//go:generate mockgen -source=./repository.go -package=repomocks -destination=./mocks/donation.mock.go DonationRepository
type DonationRepository interface {
	// Create 捐款编号冲突或事务死锁时重试一次
	Create(ctx context.Context, d domain.Donation) (domain.Donation, error)
	FindByTradeNo(ctx context.Context, tradeNo string) (domain.Donation, error)
	FindByTradeNoAndDonor(ctx context.Context, tradeNo string, donorID int64) (domain.Donation, error)
	FindByRetryTradeNo(ctx context.Context, tradeNo string) (domain.Donation, error)
	ListCurrent(ctx context.Context, donorID int64, offset, limit int) ([]domain.Donation, error)
	CountCurrent(ctx context.Context, donorID int64) (int64, error)
	Summary(ctx context.Context, donorID int64) (domain.Summary, error)
	MarkPaid(ctx context.Context, tradeNo, paymentType string, paidAt int64) (domain.Donation, bool, error)
	MarkFailed(ctx context.Context, tradeNo, paymentType string) (domain.Donation, bool, error)
	// AppendFailedCycle 编号冲突或事务死锁时重试一次
	AppendFailedCycle(ctx context.Context, originTradeNo, paymentType string) (domain.Donation, bool, error)
}

type donationRepository struct {
	dao dao.DonationDAO
}

func NewDonationRepository(d dao.DonationDAO) DonationRepository {
	return &donationRepository{dao: d}
}

func (r *donationRepository) Create(ctx context.Context, d domain.Donation) (domain.Donation, error) {
	res, err := r.dao.Create(ctx, r.toEntity(d))
	if retriable(err) {
		res, err = r.dao.Create(ctx, r.toEntity(d))
	}
	if err != nil {
		return domain.Donation{}, err
	}
	return r.toDomain(res), nil
}

func (r *donationRepository) FindByTradeNo(ctx context.Context, tradeNo string) (domain.Donation, error) {
	res, err := r.dao.FindByTradeNo(ctx, tradeNo)
	return r.toDomain(res), err
}

func (r *donationRepository) FindByTradeNoAndDonor(ctx context.Context, tradeNo string, donorID int64) (domain.Donation, error) {
	res, err := r.dao.FindByTradeNoAndDonor(ctx, tradeNo, donorID)
	return r.toDomain(res), err
}

func (r *donationRepository) FindByRetryTradeNo(ctx context.Context, tradeNo string) (domain.Donation, error) {
	res, err := r.dao.FindByRetryTradeNo(ctx, tradeNo)
	return r.toDomain(res), err
}

func (r *donationRepository) ListCurrent(ctx context.Context, donorID int64, offset, limit int) ([]domain.Donation, error) {
	res, err := r.dao.ListCurrent(ctx, donorID, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Donation) domain.Donation {
		return r.toDomain(src)
	}), nil
}

func (r *donationRepository) CountCurrent(ctx context.Context, donorID int64) (int64, error) {
	return r.dao.CountCurrent(ctx, donorID)
}

func (r *donationRepository) Summary(ctx context.Context, donorID int64) (domain.Summary, error) {
	res, err := r.dao.Summary(ctx, donorID)
	return domain.Summary{
		Count:       res.Cnt,
		PaidCount:   res.PaidCnt,
		PaidAmount:  res.PaidAmount,
		FailedCount: res.FailedCnt,
	}, err
}

func (r *donationRepository) MarkPaid(ctx context.Context, tradeNo, paymentType string, paidAt int64) (domain.Donation, bool, error) {
	res, changed, err := r.dao.MarkPaid(ctx, tradeNo, paymentType, paidAt)
	return r.toDomain(res), changed, err
}

func (r *donationRepository) MarkFailed(ctx context.Context, tradeNo, paymentType string) (domain.Donation, bool, error) {
	res, changed, err := r.dao.MarkFailed(ctx, tradeNo, paymentType)
	return r.toDomain(res), changed, err
}

func (r *donationRepository) AppendFailedCycle(ctx context.Context, originTradeNo, paymentType string) (domain.Donation, bool, error) {
	res, changed, err := r.dao.AppendFailedCycle(ctx, originTradeNo, paymentType)
	if retriable(err) {
		res, changed, err = r.dao.AppendFailedCycle(ctx, originTradeNo, paymentType)
	}
	if err != nil {
		return domain.Donation{}, false, err
	}
	return r.toDomain(res), changed, nil
}

func retriable(err error) bool {
	return errors.Is(err, dao.ErrTradeNoConflict) || errors.Is(err, dao.ErrDeadlock)
}

func (r *donationRepository) toEntity(d domain.Donation) dao.Donation {
	return dao.Donation{
		Id:                d.ID,
		TradeNo:           d.TradeNo,
		DonorId:           d.Donor.ID,
		DonorName:         d.Donor.Name,
		DonorEmail:        d.Donor.Email,
		DonorPhone:        d.Donor.Phone,
		Amount:            d.Amount,
		DonationMode:      string(d.Mode),
		TransactionStatus: d.Status.String(),
		RetryTradeNo: sql.NullString{
			String: d.RetryTradeNo,
			Valid:  d.RetryTradeNo != "",
		},
		Message:     d.Message,
		PaymentType: d.PaymentType,
		PaidAt:      d.PaidAt,
		Ctime:       d.Ctime,
		Utime:       d.Utime,
	}
}

func (r *donationRepository) toDomain(d dao.Donation) domain.Donation {
	return domain.Donation{
		ID:      d.Id,
		TradeNo: d.TradeNo,
		Donor: domain.Donor{
			ID:    d.DonorId,
			Name:  d.DonorName,
			Email: d.DonorEmail,
			Phone: d.DonorPhone,
		},
		Amount:       d.Amount,
		Mode:         domain.Mode(d.DonationMode),
		Status:       domain.Status(d.TransactionStatus),
		RetryTradeNo: d.RetryTradeNo.String,
		Message:      d.Message,
		PaymentType:  d.PaymentType,
		PaidAt:       d.PaidAt,
		Ctime:        d.Ctime,
		Utime:        d.Utime,
	}
}
