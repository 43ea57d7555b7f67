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

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/pawmall/internal/product/internal/domain"
	"github.com/ecodeclub/pawmall/internal/product/internal/repository/dao"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/sync/errgroup"
)

var (
	ErrProductNotFound = errors.New("商品不存在")
	ErrVariantNotFound = errors.New("商品规格不存在")
)

//go:generate mockgen -source=./product.go -package=repomocks -destination=./mocks/product.mock.go ProductRepository
type ProductRepository interface {
	CreateProduct(ctx context.Context, p domain.Product) (domain.Product, error)
	CreateVariant(ctx context.Context, v domain.Variant) (domain.Variant, error)
	FindProductByID(ctx context.Context, id int64) (domain.Product, error)
	FindProductBySN(ctx context.Context, sn string) (domain.Product, error)
	FindVariantsByIDs(ctx context.Context, ids []int64) ([]domain.Variant, error)
	FindProducts(ctx context.Context, offset, limit int) ([]domain.Product, int64, error)
	IncreaseStock(ctx context.Context, variantID, quantity int64) error
}

func NewProductRepository(d dao.ProductDAO) ProductRepository {
	return &productRepository{dao: d, genSN: shortuuid.New}
}

type productRepository struct {
	dao   dao.ProductDAO
	genSN func() string
}

func (p *productRepository) CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	entity := p.toProductEntity(product)
	id, err := p.dao.CreateProduct(ctx, entity)
	if err != nil {
		return domain.Product{}, err
	}
	entity.Id = id
	return p.toDomainProduct(entity, nil), nil
}

func (p *productRepository) CreateVariant(ctx context.Context, v domain.Variant) (domain.Variant, error) {
	entity := p.toVariantEntity(v)
	id, err := p.dao.CreateVariant(ctx, entity)
	if dao.IsNotFound(err) {
		return domain.Variant{}, fmt.Errorf("%w: product_id=%d", ErrProductNotFound, v.ProductID)
	}
	if err != nil {
		return domain.Variant{}, err
	}
	entity.Id = id
	return p.toDomainVariant(entity), nil
}

func (p *productRepository) FindProductByID(ctx context.Context, id int64) (domain.Product, error) {
	product, err := p.dao.FindProductByID(ctx, id)
	if dao.IsNotFound(err) {
		return domain.Product{}, fmt.Errorf("%w: id=%d", ErrProductNotFound, id)
	}
	if err != nil {
		return domain.Product{}, err
	}
	return p.withVariants(ctx, product)
}

func (p *productRepository) FindProductBySN(ctx context.Context, sn string) (domain.Product, error) {
	product, err := p.dao.FindProductBySN(ctx, sn)
	if dao.IsNotFound(err) {
		return domain.Product{}, fmt.Errorf("%w: sn=%s", ErrProductNotFound, sn)
	}
	if err != nil {
		return domain.Product{}, err
	}
	return p.withVariants(ctx, product)
}

func (p *productRepository) withVariants(ctx context.Context, product dao.Product) (domain.Product, error) {
	variants, err := p.dao.FindVariantsByProductID(ctx, product.Id)
	if err != nil {
		return domain.Product{}, err
	}
	return p.toDomainProduct(product, variants), nil
}

func (p *productRepository) FindVariantsByIDs(ctx context.Context, ids []int64) ([]domain.Variant, error) {
	variants, err := p.dao.FindVariantsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(variants, func(idx int, src dao.ProductVariant) domain.Variant {
		return p.toDomainVariant(src)
	}), nil
}

func (p *productRepository) FindProducts(ctx context.Context, offset, limit int) ([]domain.Product, int64, error) {
	var (
		eg       errgroup.Group
		products []dao.Product
		total    int64
	)
	eg.Go(func() error {
		var err error
		products, err = p.dao.FindProducts(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = p.dao.CountProducts(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return slice.Map(products, func(idx int, src dao.Product) domain.Product {
		return p.toDomainProduct(src, nil)
	}), total, nil
}

func (p *productRepository) IncreaseStock(ctx context.Context, variantID, quantity int64) error {
	err := p.dao.IncreaseStock(ctx, variantID, quantity)
	if dao.IsNotFound(err) {
		return fmt.Errorf("%w: id=%d", ErrVariantNotFound, variantID)
	}
	return err
}

func (p *productRepository) toProductEntity(product domain.Product) dao.Product {
	sn := product.SN
	if sn == "" {
		sn = p.genSN()
	}
	return dao.Product{
		Id:          product.ID,
		SN:          sn,
		Name:        product.Name,
		Description: product.Desc,
		Status:      product.Status.ToUint8(),
	}
}

func (p *productRepository) toVariantEntity(v domain.Variant) dao.ProductVariant {
	sn := v.SN
	if sn == "" {
		sn = p.genSN()
	}
	return dao.ProductVariant{
		Id:            v.ID,
		SN:            sn,
		ProductId:     v.ProductID,
		Name:          v.Name,
		Price:         v.Price,
		StockQuantity: v.StockQuantity,
		Status:        v.Status.ToUint8(),
	}
}

func (p *productRepository) toDomainProduct(product dao.Product, variants []dao.ProductVariant) domain.Product {
	return domain.Product{
		ID:     product.Id,
		SN:     product.SN,
		Name:   product.Name,
		Desc:   product.Description,
		Status: domain.Status(product.Status),
		Variants: slice.Map(variants, func(idx int, src dao.ProductVariant) domain.Variant {
			return p.toDomainVariant(src)
		}),
		Ctime: product.Ctime,
		Utime: product.Utime,
	}
}

func (p *productRepository) toDomainVariant(v dao.ProductVariant) domain.Variant {
	return domain.Variant{
		ID:            v.Id,
		SN:            v.SN,
		ProductID:     v.ProductId,
		Name:          v.Name,
		Price:         v.Price,
		StockQuantity: v.StockQuantity,
		Status:        domain.Status(v.Status),
		Ctime:         v.Ctime,
		Utime:         v.Utime,
	}
}
