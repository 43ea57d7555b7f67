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

package web

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/pawmall/internal/order/internal/domain"
	"github.com/ecodeclub/pawmall/internal/order/internal/errs"
	"github.com/ecodeclub/pawmall/internal/order/internal/repository/cache"
	"github.com/ecodeclub/pawmall/internal/order/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc    service.Service
	cache  cache.OrderCache
	logger *elog.Component
}

func NewHandler(svc service.Service, cache cache.OrderCache) *Handler {
	return &Handler{
		svc:    svc,
		cache:  cache,
		logger: elog.DefaultLogger.With(elog.FieldComponent("order")),
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/checkout", ginx.BS[CheckoutReq](h.Checkout))
	g.POST("/list", ginx.BS[Page](h.List))
	g.POST("/detail", ginx.BS[OrderIDReq](h.Detail))
	g.POST("/cancel", ginx.BS[OrderIDReq](h.Cancel))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// Checkout 下单，成功返回订单编号与总价，失败时 Data 中给出具体原因
func (h *Handler) Checkout(ctx *ginx.Context, req CheckoutReq, sess session.Session) (ginx.Result, error) {
	if req.RequestID != "" {
		ok, err := h.cache.SetNXRequestID(ctx.Request.Context(), req.RequestID)
		if err != nil {
			return systemErrorResult, fmt.Errorf("缓存请求ID失败: %w", err)
		}
		if !ok {
			return duplicateRequestResult, nil
		}
	}

	o, err := h.svc.Checkout(ctx.Request.Context(), req.toDomain(sess.Claims().Uid))
	if err != nil && req.RequestID != "" {
		h.releaseRequestID(ctx.Request.Context(), req.RequestID)
	}
	var se *domain.StockError
	switch {
	case err == nil:
		return ginx.Result{
			Data: CheckoutResp{
				OrderID:    o.TradeNo,
				TotalPrice: o.TotalPrice,
			},
		}, nil
	case errors.Is(err, service.ErrInvalidCart):
		return ginx.Result{
			Code: invalidCartResult.Code,
			Msg:  invalidCartResult.Msg,
			Data: CheckoutError{Error: "invalid_cart"},
		}, nil
	case errors.Is(err, service.ErrInvalidRecipient):
		return ginx.Result{
			Code: invalidRecipientResult.Code,
			Msg:  invalidRecipientResult.Msg,
			Data: CheckoutError{Error: "invalid_recipient"},
		}, nil
	case errors.As(err, &se):
		code := errs.InsufficientStock
		if se.Kind == domain.StockErrProductNotFound {
			code = errs.ProductNotFound
		}
		return ginx.Result{
			Code: code.Code,
			Msg:  fmt.Sprintf("%s，规格ID: %d", code.Msg, se.VariantID),
			Data: CheckoutError{Error: string(se.Kind), VariantID: se.VariantID},
		}, nil
	default:
		return systemErrorResult, err
	}
}

// releaseRequestID 请求可能已经超时，释放时不跟随请求的取消
func (h *Handler) releaseRequestID(ctx context.Context, requestID string) {
	_, err := h.cache.DelRequestID(context.WithoutCancel(ctx), requestID)
	if err != nil {
		h.logger.Warn("释放下单请求ID失败", elog.FieldErr(err), elog.String("request_id", requestID))
	}
}

func (h *Handler) List(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	os, total, err := h.svc.ListOrders(ctx.Request.Context(), sess.Claims().Uid, req.Offset, limitOrDefault(req.Limit))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newOrderList(os, total)}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req OrderIDReq, sess session.Session) (ginx.Result, error) {
	o, err := h.svc.FindOrder(ctx.Request.Context(), sess.Claims().Uid, req.OrderID)
	if errors.Is(err, service.ErrOrderNotFound) {
		return orderNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newOrder(o)}, nil
}

// Cancel 用户取消未付款的订单，库存会回补
func (h *Handler) Cancel(ctx *ginx.Context, req OrderIDReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.CancelOrder(ctx.Request.Context(), sess.Claims().Uid, req.OrderID)
	return transitionResult(err)
}

func transitionResult(err error) (ginx.Result, error) {
	switch {
	case err == nil:
		return ginx.Result{Msg: "OK"}, nil
	case errors.Is(err, service.ErrOrderNotFound):
		return orderNotFoundResult, nil
	case errors.Is(err, service.ErrInvalidTransition):
		return invalidTransitionResult, nil
	default:
		return systemErrorResult, err
	}
}
