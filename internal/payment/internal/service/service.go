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
	"strconv"
	"time"

	"github.com/ecodeclub/pawmall/internal/payment/internal/domain"
	"github.com/ecodeclub/pawmall/internal/payment/internal/event"
	"github.com/ecodeclub/pawmall/internal/payment/internal/repository"
	"github.com/ecodeclub/pawmall/internal/payment/internal/service/ecpay"
	"github.com/gotomicro/ego/core/elog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidOrderType = errors.New("未知的单据类型")
	ErrNotPayable       = errors.New("单据当前状态不允许付款")
)

var callbackCounter = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "pawmall_payment_callbacks_total",
		Help: "Total number of payment gateway callbacks by outcome",
	},
	[]string{"order_type", "outcome"},
)

//go:generate mockgen -source=./service.go -package=paymentmocks -destination=../../mocks/payment.mock.go Service
type Service interface {
	// HandleCallback 验签后把付款结果落到对应单据上。
	// 只有数据库等临时故障才返回 error，此时网关应当重送。
	HandleCallback(ctx context.Context, cb domain.Callback) (domain.Outcome, error)
	// Form 为调用者自己的待付款单据生成签名后的网关表单
	Form(ctx context.Context, ownerID int64, orderType domain.OrderType, tradeNo string) (domain.Form, error)
	ListFlaggedCallbacks(ctx context.Context, offset, limit int) ([]domain.CallbackRecord, int64, error)
}

type Config struct {
	ECPay    ecpay.Config
	AdminIDs []int64
	// AlertRobot 运营告警使用的机器人名称
	AlertRobot string
	Location   *time.Location
}

type service struct {
	cfg      Config
	signer   *ecpay.Signer
	settlers map[domain.OrderType]Settler
	repo     repository.CallbackRepository
	notifier event.NotificationEventProducer
	alerter  event.OperatorAlertEventProducer
	now      func() time.Time
	logger   *elog.Component
}

func NewService(cfg Config,
	repo repository.CallbackRepository,
	notifier event.NotificationEventProducer,
	alerter event.OperatorAlertEventProducer,
	settlers ...Settler) Service {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	m := make(map[domain.OrderType]Settler, len(settlers))
	for _, s := range settlers {
		m[s.OrderType()] = s
	}
	return &service{
		cfg:      cfg,
		signer:   ecpay.NewSigner(cfg.ECPay.HashKey, cfg.ECPay.HashIV),
		settlers: m,
		repo:     repo,
		notifier: notifier,
		alerter:  alerter,
		now:      time.Now,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("payment.reconciler")),
	}
}

// reconciliation 一次回调的处理结论
type reconciliation struct {
	outcome domain.Outcome
	reason  string
}

func (s *service) HandleCallback(ctx context.Context, cb domain.Callback) (domain.Outcome, error) {
	label := "unknown"
	if cb.OrderType.Valid() {
		label = string(cb.OrderType)
	}
	res, err := s.reconcile(ctx, cb)
	if err != nil {
		callbackCounter.WithLabelValues(label, "error").Inc()
		s.logger.Error("处理付款回调失败",
			elog.String("merchantTradeNo", cb.MerchantTradeNo),
			elog.FieldErr(err))
		return "", err
	}
	callbackCounter.WithLabelValues(label, string(res.outcome)).Inc()
	s.record(ctx, cb, res)
	return res.outcome, nil
}

func (s *service) reconcile(ctx context.Context, cb domain.Callback) (reconciliation, error) {
	if reason, ok := s.verify(cb); !ok {
		return s.flag(ctx, cb, domain.OutcomeRejected, reason), nil
	}
	settler, ok := s.settlers[cb.OrderType]
	if !ok {
		s.logger.Warn("未知的单据类型",
			elog.String("merchantTradeNo", cb.MerchantTradeNo),
			elog.String("orderType", string(cb.OrderType)))
		return reconciliation{outcome: domain.OutcomeInvalidOrderType, reason: "未知的单据类型"}, nil
	}

	p, err := settler.Find(ctx, cb.MerchantTradeNo)
	if errors.Is(err, ErrPayableNotFound) {
		s.logger.Warn("付款回调对应的单据不存在",
			elog.String("merchantTradeNo", cb.MerchantTradeNo),
			elog.String("orderType", string(cb.OrderType)))
		return reconciliation{outcome: domain.OutcomeNotFound, reason: "单据不存在"}, nil
	}
	if err != nil {
		return reconciliation{}, err
	}
	amount, err := cb.Amount()
	if err != nil || amount != p.Amount {
		reason := fmt.Sprintf("金额不一致: 回调 %s, 应付 %d", cb.TradeAmt, p.Amount)
		return s.flag(ctx, cb, domain.OutcomeRejected, reason), nil
	}

	target := domain.PaymentStatusFailed
	var changed bool
	cs, cyclic := settler.(CycleSettler)
	switch {
	case cb.Succeeded():
		target = domain.PaymentStatusPaid
		p, changed, err = settler.Succeed(ctx, cb.MerchantTradeNo, cb.PaymentType, cb.PaidAt(s.cfg.Location, s.now()))
	case cyclic && p.Recurring && p.Status == domain.PaymentStatusPaid:
		// 首期已付款，这是后续某一期扣款失败
		p, changed, err = cs.FailCycle(ctx, cb.MerchantTradeNo, cb.PaymentType)
	default:
		p, changed, err = settler.Fail(ctx, cb.MerchantTradeNo, cb.PaymentType)
	}
	if errors.Is(err, ErrPayableNotFound) {
		return reconciliation{outcome: domain.OutcomeNotFound, reason: "单据不存在"}, nil
	}
	if err != nil {
		return reconciliation{}, err
	}

	switch {
	case changed:
		s.notify(ctx, p)
		return reconciliation{outcome: domain.OutcomeApplied}, nil
	case p.Status == target:
		return reconciliation{outcome: domain.OutcomeDuplicate}, nil
	default:
		reason := fmt.Sprintf("状态冲突: 回调 RtnCode=%s, 单据付款状态 %s", cb.RtnCode, p.Status)
		return s.flag(ctx, cb, domain.OutcomeConflict, reason), nil
	}
}

func (s *service) verify(cb domain.Callback) (string, bool) {
	if cb.MerchantID != s.cfg.ECPay.MerchantID {
		return "商店代号不符: " + cb.MerchantID, false
	}
	if !s.signer.Verify(cb.Params) {
		return "CheckMacValue 校验失败", false
	}
	return "", true
}

// flag 需要人工复核的结果，记日志并通知运营
func (s *service) flag(ctx context.Context, cb domain.Callback, outcome domain.Outcome, reason string) reconciliation {
	s.logger.Warn("付款回调需要人工复核",
		elog.String("merchantTradeNo", cb.MerchantTradeNo),
		elog.String("outcome", string(outcome)),
		elog.String("reason", reason))
	if s.cfg.AlertRobot != "" {
		err := s.alerter.Produce(ctx, event.OperatorAlertEvent{
			Robot: s.cfg.AlertRobot,
			RawContent: fmt.Sprintf("付款回调需要复核\n编号: %s\n类型: %s\n结果: %s\n原因: %s",
				cb.MerchantTradeNo, cb.OrderType, outcome, reason),
		})
		if err != nil {
			s.logger.Error("发送运营告警失败", elog.FieldErr(err))
		}
	}
	return reconciliation{outcome: outcome, reason: reason}
}

func (s *service) notify(ctx context.Context, p domain.Payable) {
	for _, evt := range s.notificationsOf(p) {
		if err := s.notifier.Produce(ctx, evt); err != nil {
			s.logger.Error("发送付款通知失败",
				elog.String("tradeNo", p.TradeNo),
				elog.Int64("recipientID", evt.RecipientID),
				elog.FieldErr(err))
		}
	}
}

func (s *service) notificationsOf(p domain.Payable) []event.NotificationEvent {
	noun, link := "訂單", "/orders/"+p.TradeNo
	if p.OrderType == domain.OrderTypeDonation {
		noun, link = "捐款", "/donations/"+p.TradeNo
	}
	if p.Status != domain.PaymentStatusPaid {
		return []event.NotificationEvent{{
			RecipientID: p.OwnerID,
			Type:        event.NotificationTypePaymentFailed,
			Title:       noun + "付款失敗",
			Message:     fmt.Sprintf("您的%s %s 付款失敗，金額 NT$%d", noun, p.TradeNo, p.Amount),
			Link:        link,
		}}
	}
	res := []event.NotificationEvent{{
		RecipientID: p.OwnerID,
		Type:        event.NotificationTypePaymentSucceeded,
		Title:       noun + "付款成功",
		Message:     fmt.Sprintf("您的%s %s 已付款，金額 NT$%d", noun, p.TradeNo, p.Amount),
		Link:        link,
	}}
	if p.OrderType != domain.OrderTypeShop {
		return res
	}
	for _, id := range s.cfg.AdminIDs {
		res = append(res, event.NotificationEvent{
			RecipientID: id,
			Type:        event.NotificationTypeNewPaidOrder,
			Title:       "新訂單已付款",
			Message:     fmt.Sprintf("訂單 %s 已付款，金額 NT$%d，請安排出貨", p.TradeNo, p.Amount),
			Link:        "/admin/orders/" + p.TradeNo,
		})
	}
	return res
}

// record 回调记录写入失败不影响处理结果
func (s *service) record(ctx context.Context, cb domain.Callback, res reconciliation) {
	_, err := s.repo.Create(ctx, domain.CallbackRecord{
		MerchantTradeNo: cb.MerchantTradeNo,
		OrderType:       cb.OrderType,
		RtnCode:         cb.RtnCode,
		RtnMsg:          cb.RtnMsg,
		PaymentType:     cb.PaymentType,
		TradeAmt:        cb.TradeAmt,
		GatewayTradeNo:  cb.GatewayTradeNo,
		Outcome:         res.outcome,
		Reason:          res.reason,
		Payload:         cb.Params,
	})
	if err != nil {
		s.logger.Error("保存付款回调记录失败",
			elog.String("merchantTradeNo", cb.MerchantTradeNo),
			elog.FieldErr(err))
	}
}

func (s *service) Form(ctx context.Context, ownerID int64, orderType domain.OrderType, tradeNo string) (domain.Form, error) {
	settler, ok := s.settlers[orderType]
	if !ok {
		return domain.Form{}, ErrInvalidOrderType
	}
	p, err := settler.Find(ctx, tradeNo)
	if err != nil {
		return domain.Form{}, err
	}
	if p.OwnerID != ownerID {
		return domain.Form{}, ErrPayableNotFound
	}
	if !p.Open {
		return domain.Form{}, ErrNotPayable
	}
	amount := strconv.FormatInt(p.Amount, 10)
	fields := map[string]string{
		"MerchantID":        s.cfg.ECPay.MerchantID,
		"MerchantTradeNo":   p.TradeNo,
		"MerchantTradeDate": domain.FormatGatewayTime(s.now(), s.cfg.Location),
		"PaymentType":       "aio",
		"TotalAmount":       amount,
		"TradeDesc":         p.Description,
		"ItemName":          p.Description,
		"ReturnURL":         s.cfg.ECPay.ReturnURL,
		"ChoosePayment":     "ALL",
		"EncryptType":       "1",
		"CustomField1":      string(p.OrderType),
	}
	if s.cfg.ECPay.ClientBackURL != "" {
		fields["ClientBackURL"] = s.cfg.ECPay.ClientBackURL
	}
	if p.Recurring {
		// 定期定额只能刷卡，每月扣款一次
		fields["ChoosePayment"] = "Credit"
		fields["PeriodAmount"] = amount
		fields["PeriodType"] = "M"
		fields["Frequency"] = "1"
		fields["ExecTimes"] = "99"
		fields["PeriodReturnURL"] = s.cfg.ECPay.ReturnURL
	}
	fields[ecpay.CheckMacValueKey] = s.signer.Sign(fields)
	return domain.Form{Action: s.cfg.ECPay.Gateway(), Fields: fields}, nil
}

func (s *service) ListFlaggedCallbacks(ctx context.Context, offset, limit int) ([]domain.CallbackRecord, int64, error) {
	var (
		eg    errgroup.Group
		rs    []domain.CallbackRecord
		total int64
	)
	eg.Go(func() error {
		var err error
		rs, err = s.repo.ListFlagged(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountFlagged(ctx)
		return err
	})
	return rs, total, eg.Wait()
}
