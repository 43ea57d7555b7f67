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
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/pawmall/internal/payment/internal/domain"
	"github.com/ecodeclub/pawmall/internal/payment/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

// 回调只认纯文本应答，1|OK 以外的应答网关会重送
const (
	ackOK       = "1|OK"
	ackRejected = "0|Rejected"
	ackError    = "0|Error"
)

type Handler struct {
	svc service.Service
	l   *elog.Component
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc: svc,
		l:   elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/payment/form", ginx.BS[FormReq](h.Form))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/payment/ecpay/callback", h.HandleECPayCallback)
}

func (h *Handler) HandleECPayCallback(ctx *gin.Context) {
	if err := ctx.Request.ParseForm(); err != nil {
		h.l.Warn("解析绿界回调失败", elog.FieldErr(err))
		ctx.String(http.StatusBadRequest, ackRejected)
		return
	}
	params := make(map[string]string, len(ctx.Request.PostForm))
	for k := range ctx.Request.PostForm {
		params[k] = ctx.Request.PostForm.Get(k)
	}
	outcome, err := h.svc.HandleCallback(ctx.Request.Context(), domain.NewCallback(params))
	switch {
	case err != nil:
		ctx.String(http.StatusInternalServerError, ackError)
	case outcome.Acknowledged():
		ctx.String(http.StatusOK, ackOK)
	default:
		ctx.String(http.StatusBadRequest, "0|"+string(outcome))
	}
}

// Form 返回浏览器自动提交到绿界的表单
func (h *Handler) Form(ctx *ginx.Context, req FormReq, sess session.Session) (ginx.Result, error) {
	f, err := h.svc.Form(ctx.Request.Context(), sess.Claims().Uid, domain.OrderType(req.OrderType), req.TradeNo)
	switch {
	case err == nil:
		return ginx.Result{Data: Form{Action: f.Action, Fields: f.Fields}}, nil
	case errors.Is(err, service.ErrInvalidOrderType):
		return invalidOrderTypeResult, nil
	case errors.Is(err, service.ErrPayableNotFound):
		return payableNotFoundResult, nil
	case errors.Is(err, service.ErrNotPayable):
		return notPayableResult, nil
	default:
		return systemErrorResult, err
	}
}

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	server.POST("/payment/callbacks", ginx.B[Page](h.ListFlagged))
}

// ListFlagged 需要人工复核的回调
func (h *AdminHandler) ListFlagged(ctx *ginx.Context, req Page) (ginx.Result, error) {
	rs, total, err := h.svc.ListFlaggedCallbacks(ctx.Request.Context(), req.Offset, req.limitOrDefault())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newCallbackList(rs, total)}, nil
}
