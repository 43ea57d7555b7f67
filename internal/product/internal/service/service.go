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

	"github.com/ecodeclub/pawmall/internal/product/internal/domain"
	"github.com/ecodeclub/pawmall/internal/product/internal/repository"
)

var (
	ErrProductNotFound = repository.ErrProductNotFound
	ErrVariantNotFound = repository.ErrVariantNotFound
	ErrInvalidArgument = errors.New("商品参数非法")
)

//go:generate mockgen -source=./service.go -package=productmocks -destination=../../mocks/product.mock.go Service
type Service interface {
	CreateProduct(ctx context.Context, p domain.Product) (domain.Product, error)
	CreateVariant(ctx context.Context, v domain.Variant) (domain.Variant, error)
	FindProductByID(ctx context.Context, id int64) (domain.Product, error)
	FindProductBySN(ctx context.Context, sn string) (domain.Product, error)
	// FindVariants 返回上架规格，key 为规格ID，不存在的ID不会出现在结果中
	FindVariants(ctx context.Context, ids []int64) (map[int64]domain.Variant, error)
	FindProducts(ctx context.Context, offset, limit int) ([]domain.Product, int64, error)
	Restock(ctx context.Context, variantID, quantity int64) error
}

func NewService(repo repository.ProductRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.ProductRepository
}

func (s *service) CreateProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	if p.Name == "" {
		return domain.Product{}, fmt.Errorf("%w: 商品名称为空", ErrInvalidArgument)
	}
	if p.Status == 0 {
		p.Status = domain.StatusOffShelf
	}
	return s.repo.CreateProduct(ctx, p)
}

func (s *service) CreateVariant(ctx context.Context, v domain.Variant) (domain.Variant, error) {
	if v.Name == "" || v.Price < 0 || v.StockQuantity < 0 {
		return domain.Variant{}, fmt.Errorf("%w: name=%q price=%d stock=%d", ErrInvalidArgument, v.Name, v.Price, v.StockQuantity)
	}
	if v.Status == 0 {
		v.Status = domain.StatusOffShelf
	}
	return s.repo.CreateVariant(ctx, v)
}

func (s *service) FindProductByID(ctx context.Context, id int64) (domain.Product, error) {
	return s.repo.FindProductByID(ctx, id)
}

func (s *service) FindProductBySN(ctx context.Context, sn string) (domain.Product, error) {
	return s.repo.FindProductBySN(ctx, sn)
}

func (s *service) FindVariants(ctx context.Context, ids []int64) (map[int64]domain.Variant, error) {
	variants, err := s.repo.FindVariantsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]domain.Variant, len(variants))
	for _, v := range variants {
		res[v.ID] = v
	}
	return res, nil
}

func (s *service) FindProducts(ctx context.Context, offset, limit int) ([]domain.Product, int64, error) {
	return s.repo.FindProducts(ctx, offset, limit)
}

func (s *service) Restock(ctx context.Context, variantID, quantity int64) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity=%d", ErrInvalidArgument, quantity)
	}
	return s.repo.IncreaseStock(ctx, variantID, quantity)
}
