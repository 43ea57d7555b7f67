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
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/pawmall/internal/order/internal/service"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/list", ginx.B[Page](h.List))
	g.POST("/detail", ginx.B[OrderIDReq](h.Detail))
	g.POST("/ship", ginx.B[OrderIDReq](h.Ship))
	g.POST("/complete", ginx.B[OrderIDReq](h.Complete))
	g.POST("/cancel", ginx.B[OrderIDReq](h.Cancel))
}

func (h *AdminHandler) List(ctx *ginx.Context, req Page) (ginx.Result, error) {
	os, total, err := h.svc.ListAllOrders(ctx.Request.Context(), req.Offset, limitOrDefault(req.Limit))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newOrderList(os, total)}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req OrderIDReq) (ginx.Result, error) {
	o, err := h.svc.FindOrderByTradeNo(ctx.Request.Context(), req.OrderID)
	if errors.Is(err, service.ErrOrderNotFound) {
		return orderNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newOrder(o)}, nil
}

// Ship 已付款的订单出货
func (h *AdminHandler) Ship(ctx *ginx.Context, req OrderIDReq) (ginx.Result, error) {
	return transitionResult(h.svc.ShipOrder(ctx.Request.Context(), req.OrderID))
}

func (h *AdminHandler) Complete(ctx *ginx.Context, req OrderIDReq) (ginx.Result, error) {
	return transitionResult(h.svc.CompleteOrder(ctx.Request.Context(), req.OrderID))
}

func (h *AdminHandler) Cancel(ctx *ginx.Context, req OrderIDReq) (ginx.Result, error) {
	return transitionResult(h.svc.AdminCancelOrder(ctx.Request.Context(), req.OrderID))
}
