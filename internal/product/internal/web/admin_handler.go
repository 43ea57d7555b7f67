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

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/product")
	g.POST("/save", ginx.B[Product](h.Save))
	g.POST("/detail", ginx.B[IDReq](h.Detail))
	g.POST("/list", ginx.B[Page](h.List))
	g.POST("/variant/save", ginx.B[Variant](h.SaveVariant))
	g.POST("/variant/restock", ginx.B[RestockReq](h.Restock))
}

func (h *AdminHandler) Save(ctx *ginx.Context, req Product) (ginx.Result, error) {
	p, err := h.svc.CreateProduct(ctx.Request.Context(), req.toDomain())
	if errors.Is(err, service.ErrInvalidArgument) {
		return invalidArgumentResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newProduct(p)}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	p, err := h.svc.FindProductByID(ctx.Request.Context(), req.ID)
	if errors.Is(err, service.ErrProductNotFound) {
		return productNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newProduct(p)}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req Page) (ginx.Result, error) {
	products, total, err := h.svc.FindProducts(ctx.Request.Context(), req.Offset, limitOrDefault(req.Limit))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ProductList{
			Total: total,
			Products: slice.Map(products, func(idx int, src domain.Product) Product {
				return newProduct(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) SaveVariant(ctx *ginx.Context, req Variant) (ginx.Result, error) {
	v, err := h.svc.CreateVariant(ctx.Request.Context(), req.toDomain())
	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		return invalidArgumentResult, nil
	case errors.Is(err, service.ErrProductNotFound):
		return productNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: newVariant(v)}, nil
}

func (h *AdminHandler) Restock(ctx *ginx.Context, req RestockReq) (ginx.Result, error) {
	err := h.svc.Restock(ctx.Request.Context(), req.VariantID, req.Quantity)
	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		return invalidArgumentResult, nil
	case errors.Is(err, service.ErrVariantNotFound):
		return productNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
