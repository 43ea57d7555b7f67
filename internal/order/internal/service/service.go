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
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/pawmall/internal/order/internal/domain"
	"github.com/ecodeclub/pawmall/internal/order/internal/event"
	"github.com/ecodeclub/pawmall/internal/order/internal/repository"
	"github.com/ecodeclub/pawmall/internal/product"
	"github.com/ecodeclub/pawmall/internal/promotion"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidCart       = domain.ErrInvalidCart
	ErrInvalidRecipient  = domain.ErrInvalidRecipient
	ErrAmountOverflow    = domain.ErrAmountOverflow
	ErrOrderNotFound     = repository.ErrOrderNotFound
	ErrTradeNoConflict   = repository.ErrTradeNoConflict
	ErrInvalidTransition = errors.New("订单当前状态不允许该操作")
)

//go:generate mockgen -source=./service.go -package=ordermocks -destination=../../mocks/order.mock.go Service
type Service interface {
	// Checkout 校验购物车、计算优惠后价格并在一个事务内落库和扣减库存
	Checkout(ctx context.Context, c domain.Checkout) (domain.Order, error)
	FindOrder(ctx context.Context, buyerID int64, tradeNo string) (domain.Order, error)
	FindOrderByTradeNo(ctx context.Context, tradeNo string) (domain.Order, error)
	ListOrders(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, int64, error)
	ListAllOrders(ctx context.Context, offset, limit int) ([]domain.Order, int64, error)

	CancelOrder(ctx context.Context, buyerID int64, tradeNo string) error
	AdminCancelOrder(ctx context.Context, tradeNo string) error
	ShipOrder(ctx context.Context, tradeNo string) error
	CompleteOrder(ctx context.Context, tradeNo string) error
	// CloseExpiredOrders 取消 ctime 之前创建且仍未付款的订单并回补库存，返回关闭的数量
	CloseExpiredOrders(ctx context.Context, ctime int64, limit int) (int, error)

	// SucceedPayment 与 FailPayment 供支付回调使用，changed 为 false 表示重复通知或状态冲突
	SucceedPayment(ctx context.Context, tradeNo, paymentType string, paidAt int64) (domain.Order, bool, error)
	FailPayment(ctx context.Context, tradeNo, paymentType string) (domain.Order, bool, error)
}

type service struct {
	repo         repository.OrderRepository
	productSvc   product.Service
	promotionSvc promotion.Service
	producer     event.NotificationEventProducer
	timeout      time.Duration
	now          func() time.Time
	logger       *elog.Component
}

func NewService(repo repository.OrderRepository,
	productSvc product.Service,
	promotionSvc promotion.Service,
	producer event.NotificationEventProducer,
	checkoutTimeout time.Duration) Service {
	return &service{
		repo:         repo,
		productSvc:   productSvc,
		promotionSvc: promotionSvc,
		producer:     producer,
		timeout:      checkoutTimeout,
		now:          time.Now,
		logger:       elog.DefaultLogger.With(elog.FieldComponent("order")),
	}
}

func (s *service) Checkout(ctx context.Context, c domain.Checkout) (domain.Order, error) {
	lines, err := c.MergedLines()
	if err != nil {
		return domain.Order{}, err
	}
	if !c.Recipient.Valid() {
		return domain.Order{}, ErrInvalidRecipient
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	variants, err := s.productSvc.FindVariants(ctx, slice.Map(lines, func(idx int, src domain.Line) int64 {
		return src.VariantID
	}))
	if err != nil {
		return domain.Order{}, fmt.Errorf("查询商品规格失败: %w", err)
	}
	qs := make([]promotion.Query, 0, len(lines))
	for _, l := range lines {
		v, ok := variants[l.VariantID]
		if !ok || (l.ProductID != 0 && l.ProductID != v.ProductID) {
			return domain.Order{}, &domain.StockError{Kind: domain.StockErrProductNotFound, VariantID: l.VariantID}
		}
		qs = append(qs, promotion.Query{
			ProductID: v.ProductID,
			VariantID: v.ID,
			UnitPrice: v.Price,
			Quantity:  l.Quantity,
			Code:      c.Code,
		})
	}

	resolutions, err := s.promotionSvc.ResolveBatch(ctx, s.now(), qs)
	if err != nil {
		return domain.Order{}, fmt.Errorf("计算促销价格失败: %w", err)
	}
	items := make([]domain.OrderItem, 0, len(qs))
	for i, q := range qs {
		items = append(items, domain.OrderItem{
			ProductID:     q.ProductID,
			VariantID:     q.VariantID,
			Quantity:      q.Quantity,
			OriginalPrice: q.UnitPrice,
			Price:         q.UnitPrice - resolutions[i].UnitDiscount,
			PromotionID:   resolutions[i].Promotion.ID,
		})
	}

	total, err := domain.TotalPrice(items)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%w: %w", ErrInvalidCart, err)
	}
	return s.repo.Create(ctx, domain.Order{
		BuyerID:       c.BuyerID,
		Recipient:     c.Recipient,
		Note:          c.Note,
		TotalPrice:    total,
		OrderStatus:   domain.OrderStatusPendingShip,
		PaymentStatus: domain.PaymentStatusUnpaid,
		Items:         items,
	})
}

func (s *service) FindOrder(ctx context.Context, buyerID int64, tradeNo string) (domain.Order, error) {
	return s.repo.FindByTradeNoAndBuyer(ctx, tradeNo, buyerID)
}

func (s *service) FindOrderByTradeNo(ctx context.Context, tradeNo string) (domain.Order, error) {
	return s.repo.FindByTradeNo(ctx, tradeNo)
}

func (s *service) ListOrders(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListByBuyer(ctx, buyerID, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByBuyer(ctx, buyerID)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) ListAllOrders(ctx context.Context, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) CancelOrder(ctx context.Context, buyerID int64, tradeNo string) error {
	// 先确认订单属于该用户
	_, err := s.repo.FindByTradeNoAndBuyer(ctx, tradeNo, buyerID)
	if err != nil {
		return err
	}
	_, changed, err := s.repo.Cancel(ctx, tradeNo)
	return s.checkTransition(changed, err)
}

func (s *service) AdminCancelOrder(ctx context.Context, tradeNo string) error {
	o, changed, err := s.repo.Cancel(ctx, tradeNo)
	if err = s.checkTransition(changed, err); err != nil {
		return err
	}
	s.notify(ctx, o, event.NotificationTypeOrderCanceled, "訂單已取消")
	return nil
}

func (s *service) ShipOrder(ctx context.Context, tradeNo string) error {
	o, changed, err := s.repo.Ship(ctx, tradeNo)
	if err = s.checkTransition(changed, err); err != nil {
		return err
	}
	s.notify(ctx, o, event.NotificationTypeOrderShipped, "訂單已出貨")
	return nil
}

func (s *service) CompleteOrder(ctx context.Context, tradeNo string) error {
	o, changed, err := s.repo.Complete(ctx, tradeNo)
	if err = s.checkTransition(changed, err); err != nil {
		return err
	}
	s.notify(ctx, o, event.NotificationTypeOrderCompleted, "訂單已完成")
	return nil
}

func (s *service) checkTransition(changed bool, err error) error {
	if err != nil {
		return err
	}
	if !changed {
		return ErrInvalidTransition
	}
	return nil
}

// notify 通知失败只记录日志，不影响订单状态
func (s *service) notify(ctx context.Context, o domain.Order, typ, title string) {
	err := s.producer.Produce(ctx, event.NotificationEvent{
		RecipientID: o.BuyerID,
		Type:        typ,
		Title:       title,
		Message:     fmt.Sprintf("您的訂單 %s 狀態更新為 %s", o.TradeNo, o.OrderStatus),
		Link:        "/order/detail?order_id=" + o.TradeNo,
	})
	if err != nil {
		s.logger.Error("发送订单通知失败",
			elog.FieldErr(err),
			elog.String("order_id", o.TradeNo),
			elog.String("type", typ))
	}
}

func (s *service) CloseExpiredOrders(ctx context.Context, ctime int64, limit int) (int, error) {
	os, err := s.repo.FindExpiredUnpaid(ctx, ctime, limit)
	if err != nil {
		return 0, err
	}
	closed := 0
	for _, o := range os {
		_, changed, er := s.repo.Cancel(ctx, o.TradeNo)
		if er != nil {
			return closed, fmt.Errorf("关闭超时订单 %s 失败: %w", o.TradeNo, er)
		}
		// 未变更说明订单在此期间已被支付或取消
		if changed {
			closed++
		}
	}
	return closed, nil
}

func (s *service) SucceedPayment(ctx context.Context, tradeNo, paymentType string, paidAt int64) (domain.Order, bool, error) {
	return s.repo.MarkPaid(ctx, tradeNo, paymentType, paidAt)
}

func (s *service) FailPayment(ctx context.Context, tradeNo, paymentType string) (domain.Order, bool, error) {
	return s.repo.MarkFailed(ctx, tradeNo, paymentType)
}
