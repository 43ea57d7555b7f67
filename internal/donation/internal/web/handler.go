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
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/pawmall/internal/donation/internal/domain"
	"github.com/ecodeclub/pawmall/internal/donation/internal/errs"
	"github.com/ecodeclub/pawmall/internal/donation/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/donation")
	g.POST("/create", ginx.BS[DonateReq](h.Donate))
	g.POST("/retry", ginx.BS[TradeNoReq](h.Retry))
	g.POST("/list", ginx.BS[Page](h.List))
	g.POST("/summary", ginx.S(h.Summary))
	g.POST("/chain", ginx.BS[TradeNoReq](h.Chain))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Donate(ctx *ginx.Context, req DonateReq, sess session.Session) (ginx.Result, error) {
	d, err := h.svc.Donate(ctx.Request.Context(), req.toDomain(sess.Claims().Uid))
	return h.createdResult(d, err)
}

// Retry 以失败的定期定额捐款为模板再发起一次
func (h *Handler) Retry(ctx *ginx.Context, req TradeNoReq, sess session.Session) (ginx.Result, error) {
	d, err := h.svc.Retry(ctx.Request.Context(), sess.Claims().Uid, req.TradeNo)
	return h.createdResult(d, err)
}

func (h *Handler) createdResult(d domain.Donation, err error) (ginx.Result, error) {
	switch {
	case err == nil:
		return ginx.Result{
			Data: DonateResp{
				TradeNo: d.TradeNo,
				Amount:  d.Amount,
			},
		}, nil
	case errors.Is(err, service.ErrInvalidDonation):
		return ginx.Result{
			Code: errs.InvalidDonation.Code,
			Msg:  err.Error(),
		}, nil
	case errors.Is(err, service.ErrDonationNotFound):
		return donationNotFoundResult, nil
	case errors.Is(err, service.ErrNotRetryable):
		return notRetryableResult, nil
	case errors.Is(err, service.ErrAlreadyRetried):
		return alreadyRetriedResult, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) List(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	ds, total, err := h.svc.ListDonations(ctx.Request.Context(), sess.Claims().Uid, req.Offset, req.limitOrDefault())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: DonationList{
			Total:     total,
			Donations: newDonations(ds),
		},
	}, nil
}

func (h *Handler) Summary(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	s, err := h.svc.Summary(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: Summary(s)}, nil
}

func (h *Handler) Chain(ctx *ginx.Context, req TradeNoReq, sess session.Session) (ginx.Result, error) {
	ds, err := h.svc.Chain(ctx.Request.Context(), sess.Claims().Uid, req.TradeNo)
	if errors.Is(err, service.ErrDonationNotFound) {
		return donationNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newDonations(ds)}, nil
}
