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
	"errors"

	"github.com/ecodeclub/ekit/mapx"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/pawmall/internal/order/internal/domain"
	"github.com/ecodeclub/pawmall/internal/order/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrOrderNotFound   = dao.ErrRecordNotFound
	ErrTradeNoConflict = dao.ErrTradeNoConflict
	ErrDeadlock        = dao.ErrDeadlock
)

//go:generate mockgen -source=./repository.go -package=repomocks -destination=./mocks/order.mock.go OrderRepository
type OrderRepository interface {
	// Create 订单编号冲突或事务死锁时重试一次整个事务，仍失败则返回 ErrTradeNoConflict 或 ErrDeadlock
	Create(ctx context.Context, order domain.Order) (domain.Order, error)
	FindByTradeNo(ctx context.Context, tradeNo string) (domain.Order, error)
	FindByTradeNoAndBuyer(ctx context.Context, tradeNo string, buyerID int64) (domain.Order, error)
	ListByBuyer(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, error)
	CountByBuyer(ctx context.Context, buyerID int64) (int64, error)
	List(ctx context.Context, offset, limit int) ([]domain.Order, error)
	Count(ctx context.Context) (int64, error)
	FindExpiredUnpaid(ctx context.Context, ctime int64, limit int) ([]domain.Order, error)

	MarkPaid(ctx context.Context, tradeNo, paymentType string, paidAt int64) (domain.Order, bool, error)
	MarkFailed(ctx context.Context, tradeNo, paymentType string) (domain.Order, bool, error)
	Cancel(ctx context.Context, tradeNo string) (domain.Order, bool, error)
	Ship(ctx context.Context, tradeNo string) (domain.Order, bool, error)
	Complete(ctx context.Context, tradeNo string) (domain.Order, bool, error)
}

type orderRepository struct {
	dao    dao.OrderDAO
	logger *elog.Component
}

func NewOrderRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{
		dao:    d,
		logger: elog.DefaultLogger.With(elog.FieldComponent("order")),
	}
}

func (r *orderRepository) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	items := r.toItemEntities(order.Items)
	o, err := r.dao.Create(ctx, r.toEntity(order), items)
	switch {
	case errors.Is(err, dao.ErrDeadlock):
		r.logger.Warn("下单事务死锁，重试一次", elog.FieldErr(err), elog.Int64("buyer_id", order.BuyerID))
		o, err = r.dao.Create(ctx, r.toEntity(order), r.toItemEntities(order.Items))
	case errors.Is(err, dao.ErrTradeNoConflict):
		r.logger.Warn("订单编号冲突，重试一次", elog.FieldErr(err))
		o, err = r.dao.Create(ctx, r.toEntity(order), r.toItemEntities(order.Items))
	}
	if err != nil {
		return domain.Order{}, r.toDomainErr(err)
	}
	order.ID = o.Id
	order.TradeNo = o.OrderId
	order.Ctime = o.Ctime
	order.Utime = o.Utime
	return order, nil
}

func (r *orderRepository) toDomainErr(err error) error {
	var se *dao.StockError
	if !errors.As(err, &se) {
		return err
	}
	kind := domain.StockErrInsufficient
	if errors.Is(se.Err, dao.ErrVariantNotFound) {
		kind = domain.StockErrProductNotFound
	}
	return &domain.StockError{Kind: kind, VariantID: se.VariantId}
}

func (r *orderRepository) FindByTradeNo(ctx context.Context, tradeNo string) (domain.Order, error) {
	o, err := r.dao.FindByTradeNo(ctx, tradeNo)
	if err != nil {
		return domain.Order{}, err
	}
	return r.withItems(ctx, o)
}

func (r *orderRepository) FindByTradeNoAndBuyer(ctx context.Context, tradeNo string, buyerID int64) (domain.Order, error) {
	o, err := r.dao.FindByTradeNoAndBuyer(ctx, tradeNo, buyerID)
	if err != nil {
		return domain.Order{}, err
	}
	return r.withItems(ctx, o)
}

func (r *orderRepository) withItems(ctx context.Context, o dao.Order) (domain.Order, error) {
	items, err := r.dao.FindItemsByOrderIDs(ctx, []int64{o.Id})
	if err != nil {
		return domain.Order{}, err
	}
	return r.toDomain(o, items), nil
}

func (r *orderRepository) ListByBuyer(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, error) {
	os, err := r.dao.ListByBuyer(ctx, buyerID, offset, limit)
	if err != nil {
		return nil, err
	}
	return r.withItemsBatch(ctx, os)
}

func (r *orderRepository) CountByBuyer(ctx context.Context, buyerID int64) (int64, error) {
	return r.dao.CountByBuyer(ctx, buyerID)
}

func (r *orderRepository) List(ctx context.Context, offset, limit int) ([]domain.Order, error) {
	os, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return r.withItemsBatch(ctx, os)
}

func (r *orderRepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

// withItemsBatch 一次查询出全部订单的订单项
func (r *orderRepository) withItemsBatch(ctx context.Context, os []dao.Order) ([]domain.Order, error) {
	items, err := r.dao.FindItemsByOrderIDs(ctx, slice.Map(os, func(idx int, src dao.Order) int64 {
		return src.Id
	}))
	if err != nil {
		return nil, err
	}
	grouped := mapx.NewMultiBuiltinMap[int64, dao.OrderItem](len(os))
	for _, item := range items {
		_ = grouped.Put(item.OrderId, item)
	}
	return slice.Map(os, func(idx int, src dao.Order) domain.Order {
		its, _ := grouped.Get(src.Id)
		return r.toDomain(src, its)
	}), nil
}

func (r *orderRepository) FindExpiredUnpaid(ctx context.Context, ctime int64, limit int) ([]domain.Order, error) {
	os, err := r.dao.FindExpiredUnpaid(ctx, ctime, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(os, func(idx int, src dao.Order) domain.Order {
		return r.toDomain(src, nil)
	}), nil
}

func (r *orderRepository) MarkPaid(ctx context.Context, tradeNo, paymentType string, paidAt int64) (domain.Order, bool, error) {
	return r.toTransitResult(r.dao.MarkPaid(ctx, tradeNo, paymentType, paidAt))
}

func (r *orderRepository) MarkFailed(ctx context.Context, tradeNo, paymentType string) (domain.Order, bool, error) {
	return r.toTransitResult(r.dao.MarkFailed(ctx, tradeNo, paymentType))
}

func (r *orderRepository) Cancel(ctx context.Context, tradeNo string) (domain.Order, bool, error) {
	return r.toTransitResult(r.dao.Cancel(ctx, tradeNo))
}

func (r *orderRepository) Ship(ctx context.Context, tradeNo string) (domain.Order, bool, error) {
	return r.toTransitResult(r.dao.Ship(ctx, tradeNo))
}

func (r *orderRepository) Complete(ctx context.Context, tradeNo string) (domain.Order, bool, error) {
	return r.toTransitResult(r.dao.Complete(ctx, tradeNo))
}

func (r *orderRepository) toTransitResult(o dao.Order, changed bool, err error) (domain.Order, bool, error) {
	if err != nil {
		return domain.Order{}, false, err
	}
	return r.toDomain(o, nil), changed, nil
}

func (r *orderRepository) toEntity(o domain.Order) dao.Order {
	return dao.Order{
		Id:               o.ID,
		OrderId:          o.TradeNo,
		BuyerId:          o.BuyerID,
		RecipientName:    o.Recipient.Name,
		RecipientPhone:   o.Recipient.Phone,
		RecipientAddress: o.Recipient.Address,
		RecipientEmail:   o.Recipient.Email,
		Note:             o.Note,
		TotalPrice:       o.TotalPrice,
		OrderStatus:      o.OrderStatus.String(),
		PaymentStatus:    o.PaymentStatus.String(),
		PaymentType:      o.PaymentType,
		PaidAt:           o.PaidAt,
	}
}

func (r *orderRepository) toItemEntities(items []domain.OrderItem) []dao.OrderItem {
	return slice.Map(items, func(idx int, src domain.OrderItem) dao.OrderItem {
		return dao.OrderItem{
			ProductId:     src.ProductID,
			VariantId:     src.VariantID,
			Quantity:      src.Quantity,
			OriginalPrice: src.OriginalPrice,
			Price:         src.Price,
			PromotionId:   src.PromotionID,
		}
	})
}

func (r *orderRepository) toDomain(o dao.Order, items []dao.OrderItem) domain.Order {
	return domain.Order{
		ID:      o.Id,
		TradeNo: o.OrderId,
		BuyerID: o.BuyerId,
		Recipient: domain.Recipient{
			Name:    o.RecipientName,
			Phone:   o.RecipientPhone,
			Address: o.RecipientAddress,
			Email:   o.RecipientEmail,
		},
		Note:          o.Note,
		TotalPrice:    o.TotalPrice,
		OrderStatus:   domain.OrderStatus(o.OrderStatus),
		PaymentStatus: domain.PaymentStatus(o.PaymentStatus),
		PaymentType:   o.PaymentType,
		PaidAt:        o.PaidAt,
		Items: slice.Map(items, func(idx int, src dao.OrderItem) domain.OrderItem {
			return domain.OrderItem{
				ProductID:     src.ProductId,
				VariantID:     src.VariantId,
				Quantity:      src.Quantity,
				OriginalPrice: src.OriginalPrice,
				Price:         src.Price,
				PromotionID:   src.PromotionId,
			}
		}),
		Ctime: o.Ctime,
		Utime: o.Utime,
	}
}
