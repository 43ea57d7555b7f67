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
	"time"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/pawmall/internal/product"
	"github.com/ecodeclub/pawmall/internal/promotion/internal/domain"
	"github.com/ecodeclub/pawmall/internal/promotion/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc        service.Service
	productSvc product.Service
	now        func() time.Time
}

func NewHandler(svc service.Service, productSvc product.Service) *Handler {
	return &Handler{svc: svc, productSvc: productSvc, now: time.Now}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/promotion")
	g.POST("/preview", ginx.B[PreviewReq](h.Preview))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

// Preview 预览单个规格在当前时刻的成交价
func (h *Handler) Preview(ctx *ginx.Context, req PreviewReq) (ginx.Result, error) {
	if req.Quantity <= 0 {
		req.Quantity = 1
	}
	variants, err := h.productSvc.FindVariants(ctx.Request.Context(), []int64{req.VariantID})
	if err != nil {
		return systemErrorResult, err
	}
	v, ok := variants[req.VariantID]
	if !ok {
		return variantNotFoundResult, nil
	}
	res, err := h.svc.Resolve(ctx.Request.Context(), h.now(), domain.Query{
		ProductID: v.ProductID,
		VariantID: v.ID,
		UnitPrice: v.Price,
		Quantity:  req.Quantity,
		Code:      req.Code,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: PreviewResp{
			VariantID:      v.ID,
			OriginalPrice:  v.Price,
			Price:          res.FinalUnitPrice(),
			PromotionID:    res.Promotion.ID,
			PromotionName:  res.Promotion.Name,
			SubtotalAmount: res.FinalUnitPrice() * req.Quantity,
		},
	}, nil
}
