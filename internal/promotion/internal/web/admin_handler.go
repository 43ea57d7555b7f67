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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/pawmall/internal/promotion/internal/domain"
	"github.com/ecodeclub/pawmall/internal/promotion/internal/service"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/promotion")
	g.POST("/create", ginx.B[Promotion](h.Create))
	g.POST("/list", ginx.B[Page](h.List))
	g.POST("/deactivate", ginx.B[IDReq](h.Deactivate))
}

func (h *AdminHandler) Create(ctx *ginx.Context, req Promotion) (ginx.Result, error) {
	p, err := h.svc.Create(ctx.Request.Context(), req.toDomain())
	if errors.Is(err, service.ErrInvalidPromotion) {
		return ginx.Result{
			Code: invalidPromotionResult.Code,
			Msg:  err.Error(),
		}, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newPromotion(p)}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req Page) (ginx.Result, error) {
	limit := req.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	ps, total, err := h.svc.List(ctx.Request.Context(), req.Offset, limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: PromotionList{
			Total: total,
			Promotions: slice.Map(ps, func(idx int, src domain.Promotion) Promotion {
				return newPromotion(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) Deactivate(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	err := h.svc.Deactivate(ctx.Request.Context(), req.ID)
	if errors.Is(err, service.ErrPromotionNotFound) {
		return promotionNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
