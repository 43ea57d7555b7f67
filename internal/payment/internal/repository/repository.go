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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/pawmall/internal/payment/internal/domain"
	"github.com/ecodeclub/pawmall/internal/payment/internal/repository/dao"
)

//go:generate mockgen -source=./repository.go -package=repomocks -destination=./mocks/callback.mock.go CallbackRepository
type CallbackRepository interface {
	Create(ctx context.Context, r domain.CallbackRecord) (int64, error)
	ListFlagged(ctx context.Context, offset, limit int) ([]domain.CallbackRecord, error)
	CountFlagged(ctx context.Context) (int64, error)
}

type callbackRepository struct {
	dao dao.CallbackDAO
}

func NewCallbackRepository(d dao.CallbackDAO) CallbackRepository {
	return &callbackRepository{dao: d}
}

func (r *callbackRepository) Create(ctx context.Context, c domain.CallbackRecord) (int64, error) {
	return r.dao.Insert(ctx, dao.PaymentCallback{
		MerchantTradeNo: c.MerchantTradeNo,
		OrderType:       string(c.OrderType),
		RtnCode:         c.RtnCode,
		RtnMsg:          c.RtnMsg,
		PaymentType:     c.PaymentType,
		TradeAmt:        c.TradeAmt,
		GatewayTradeNo:  c.GatewayTradeNo,
		Outcome:         string(c.Outcome),
		Reason:          c.Reason,
		Payload: sqlx.JsonColumn[map[string]string]{
			Val:   c.Payload,
			Valid: len(c.Payload) > 0,
		},
	})
}

func (r *callbackRepository) ListFlagged(ctx context.Context, offset, limit int) ([]domain.CallbackRecord, error) {
	res, err := r.dao.ListByOutcomes(ctx, r.flagged(), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.PaymentCallback) domain.CallbackRecord {
		return r.toDomain(src)
	}), nil
}

func (r *callbackRepository) CountFlagged(ctx context.Context) (int64, error) {
	return r.dao.CountByOutcomes(ctx, r.flagged())
}

func (r *callbackRepository) flagged() []string {
	return slice.Map(domain.FlaggedOutcomes(), func(idx int, src domain.Outcome) string {
		return string(src)
	})
}

func (r *callbackRepository) toDomain(c dao.PaymentCallback) domain.CallbackRecord {
	return domain.CallbackRecord{
		ID:              c.Id,
		MerchantTradeNo: c.MerchantTradeNo,
		OrderType:       domain.OrderType(c.OrderType),
		RtnCode:         c.RtnCode,
		RtnMsg:          c.RtnMsg,
		PaymentType:     c.PaymentType,
		TradeAmt:        c.TradeAmt,
		GatewayTradeNo:  c.GatewayTradeNo,
		Outcome:         domain.Outcome(c.Outcome),
		Reason:          c.Reason,
		Payload:         c.Payload.Val,
		Ctime:           c.Ctime,
	}
}
