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
	"database/sql"
	"errors"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/pawmall/internal/promotion/internal/domain"
	"github.com/ecodeclub/pawmall/internal/promotion/internal/repository/dao"
	"golang.org/x/sync/errgroup"
)

var ErrPromotionNotFound = errors.New("促销活动不存在")

//go:generate mockgen -source=./promotion.go -package=repomocks -destination=./mocks/promotion.mock.go PromotionRepository
type PromotionRepository interface {
	Create(ctx context.Context, p domain.Promotion) (int64, error)
	FindActive(ctx context.Context, at int64) ([]domain.Promotion, error)
	List(ctx context.Context, offset, limit int) ([]domain.Promotion, int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
}

func NewPromotionRepository(d dao.PromotionDAO) PromotionRepository {
	return &promotionRepository{dao: d}
}

type promotionRepository struct {
	dao dao.PromotionDAO
}

func (r *promotionRepository) Create(ctx context.Context, p domain.Promotion) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(p))
}

func (r *promotionRepository) FindActive(ctx context.Context, at int64) ([]domain.Promotion, error) {
	ps, err := r.dao.FindActive(ctx, at)
	if err != nil {
		return nil, err
	}
	return slice.Map(ps, func(idx int, src dao.Promotion) domain.Promotion {
		return r.toDomain(src)
	}), nil
}

func (r *promotionRepository) List(ctx context.Context, offset, limit int) ([]domain.Promotion, int64, error) {
	var (
		eg    errgroup.Group
		ps    []dao.Promotion
		total int64
	)
	eg.Go(func() error {
		var err error
		ps, err = r.dao.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = r.dao.Count(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return slice.Map(ps, func(idx int, src dao.Promotion) domain.Promotion {
		return r.toDomain(src)
	}), total, nil
}

func (r *promotionRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	err := r.dao.UpdateStatus(ctx, id, status.ToUint8())
	if errors.Is(err, dao.ErrRecordNotFound) {
		return fmt.Errorf("%w: id=%d", ErrPromotionNotFound, id)
	}
	return err
}

func (r *promotionRepository) toEntity(p domain.Promotion) dao.Promotion {
	return dao.Promotion{
		Id:             p.ID,
		Name:           p.Name,
		Type:           string(p.Type),
		Value:          p.Value,
		MinPurchase:    p.MinPurchase,
		MaxDiscount:    p.MaxDiscount,
		StartDate:      p.StartDate,
		EndDate:        sql.NullInt64{Int64: p.EndDate, Valid: p.EndDate != 0},
		Code:           p.Code,
		TargetProducts: p.TargetProducts,
		Status:         p.Status.ToUint8(),
	}
}

func (r *promotionRepository) toDomain(p dao.Promotion) domain.Promotion {
	return domain.Promotion{
		ID:             p.Id,
		Name:           p.Name,
		Type:           domain.Type(p.Type),
		Value:          p.Value,
		MinPurchase:    p.MinPurchase,
		MaxDiscount:    p.MaxDiscount,
		StartDate:      p.StartDate,
		EndDate:        p.EndDate.Int64,
		Code:           p.Code,
		TargetProducts: p.TargetProducts,
		Status:         domain.Status(p.Status),
		Ctime:          p.Ctime,
		Utime:          p.Utime,
	}
}
