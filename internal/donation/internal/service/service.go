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

package service

import (
	"context"
	"errors"
	"slices"

	"github.com/ecodeclub/pawmall/internal/donation/internal/domain"
	"github.com/ecodeclub/pawmall/internal/donation/internal/repository"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidDonation  = domain.ErrInvalidDonation
	ErrDonationNotFound = repository.ErrDonationNotFound
	ErrTradeNoConflict  = repository.ErrTradeNoConflict
	ErrNotRetryable     = repository.ErrNotRetryable
	ErrAlreadyRetried   = repository.ErrAlreadyRetried
	ErrChainTooLong     = repository.ErrChainTooLong
)

const maxChainLength = repository.MaxChainLength

//go:generate mockgen -source=./service.go -package=donationmocks -destination=../../mocks/donation.mock.go Service
type Service interface {
	// Donate 创建一笔未付款的捐款。RetryTradeNo 非空时作为重试处理
	Donate(ctx context.Context, d domain.Donation) (domain.Donation, error)
	// Retry 以捐款人自己的一笔失败定期定额捐款为模板发起新尝试
	Retry(ctx context.Context, donorID int64, tradeNo string) (domain.Donation, error)
	FindDonation(ctx context.Context, donorID int64, tradeNo string) (domain.Donation, error)
	FindDonationByTradeNo(ctx context.Context, tradeNo string) (domain.Donation, error)
	// ListDonations 与 Summary 只包含每条重试链上当前有效的记录
	ListDonations(ctx context.Context, donorID int64, offset, limit int) ([]domain.Donation, int64, error)
	Summary(ctx context.Context, donorID int64) (domain.Summary, error)
	// Chain 返回 tradeNo 所在的整条重试链，按尝试先后排列
	Chain(ctx context.Context, donorID int64, tradeNo string) ([]domain.Donation, error)

	SucceedPayment(ctx context.Context, tradeNo, paymentType string, paidAt int64) (domain.Donation, bool, error)
	FailPayment(ctx context.Context, tradeNo, paymentType string) (domain.Donation, bool, error)
	// FailCycle 定期定额后续某期扣款失败。tradeNo 是首期的编号，
	// 链上当前为已付款时追加一笔失败记录并返回它，否则返回当前那笔且 changed 为 false
	FailCycle(ctx context.Context, tradeNo, paymentType string) (domain.Donation, bool, error)
}

type service struct {
	repo repository.DonationRepository
}

func NewService(repo repository.DonationRepository) Service {
	return &service{repo: repo}
}

func (s *service) Donate(ctx context.Context, d domain.Donation) (domain.Donation, error) {
	if err := d.Validate(); err != nil {
		return domain.Donation{}, err
	}
	d.Status = domain.StatusUnpaid
	d.PaymentType, d.PaidAt = "", 0
	res, err := s.repo.Create(ctx, d)
	if errors.Is(err, repository.ErrPriorNotFound) {
		return domain.Donation{}, ErrDonationNotFound
	}
	return res, err
}

func (s *service) Retry(ctx context.Context, donorID int64, tradeNo string) (domain.Donation, error) {
	prior, err := s.repo.FindByTradeNoAndDonor(ctx, tradeNo, donorID)
	if err != nil {
		return domain.Donation{}, err
	}
	if !prior.Retryable() {
		return domain.Donation{}, ErrNotRetryable
	}
	return s.Donate(ctx, domain.RetryOf(prior))
}

func (s *service) FindDonation(ctx context.Context, donorID int64, tradeNo string) (domain.Donation, error) {
	return s.repo.FindByTradeNoAndDonor(ctx, tradeNo, donorID)
}

func (s *service) FindDonationByTradeNo(ctx context.Context, tradeNo string) (domain.Donation, error) {
	return s.repo.FindByTradeNo(ctx, tradeNo)
}

func (s *service) ListDonations(ctx context.Context, donorID int64, offset, limit int) ([]domain.Donation, int64, error) {
	var (
		eg    errgroup.Group
		ds    []domain.Donation
		total int64
	)
	eg.Go(func() error {
		var err error
		ds, err = s.repo.ListCurrent(ctx, donorID, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountCurrent(ctx, donorID)
		return err
	})
	return ds, total, eg.Wait()
}

func (s *service) Summary(ctx context.Context, donorID int64) (domain.Summary, error) {
	return s.repo.Summary(ctx, donorID)
}

func (s *service) Chain(ctx context.Context, donorID int64, tradeNo string) ([]domain.Donation, error) {
	d, err := s.repo.FindByTradeNoAndDonor(ctx, tradeNo, donorID)
	if err != nil {
		return nil, err
	}
	chain := []domain.Donation{d}
	for cur := d; cur.RetryTradeNo != ""; {
		if len(chain) >= maxChainLength {
			return nil, ErrChainTooLong
		}
		cur, err = s.repo.FindByTradeNo(ctx, cur.RetryTradeNo)
		if err != nil {
			return nil, err
		}
		chain = append(chain, cur)
	}
	slices.Reverse(chain)
	for cur := d; ; {
		cur, err = s.repo.FindByRetryTradeNo(ctx, cur.TradeNo)
		if errors.Is(err, repository.ErrDonationNotFound) {
			return chain, nil
		}
		if err != nil {
			return nil, err
		}
		if len(chain) >= maxChainLength {
			return nil, ErrChainTooLong
		}
		chain = append(chain, cur)
	}
}

func (s *service) SucceedPayment(ctx context.Context, tradeNo, paymentType string, paidAt int64) (domain.Donation, bool, error) {
	return s.repo.MarkPaid(ctx, tradeNo, paymentType, paidAt)
}

func (s *service) FailPayment(ctx context.Context, tradeNo, paymentType string) (domain.Donation, bool, error) {
	return s.repo.MarkFailed(ctx, tradeNo, paymentType)
}

func (s *service) FailCycle(ctx context.Context, tradeNo, paymentType string) (domain.Donation, bool, error) {
	return s.repo.AppendFailedCycle(ctx, tradeNo, paymentType)
}
