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
	"github.com/ecodeclub/pawmall/internal/product/internal/domain"
	"github.com/ecodeclub/pawmall/internal/product/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/product")
	g.POST("/detail", ginx.B[SNReq](h.Detail))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) Detail(ctx *ginx.Context, req SNReq) (ginx.Result, error) {
	p, err := h.svc.FindProductBySN(ctx.Request.Context(), req.SN)
	if errors.Is(err, service.ErrProductNotFound) {
		return productNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	// 用户侧只展示上架规格
	p.Variants = slice.FilterMap(p.Variants, func(idx int, src domain.Variant) (domain.Variant, bool) {
		return src, src.OnShelf()
	})
	return ginx.Result{Data: newProduct(p)}, nil
}

func limitOrDefault(limit int) int {
	const defaultLimit, maxLimit = 20, 100
	if limit <= 0 {
		return defaultLimit
	}
	return min(limit, maxLimit)
}
