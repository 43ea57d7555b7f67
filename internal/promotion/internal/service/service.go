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
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/pawmall/internal/promotion/internal/domain"
	"github.com/ecodeclub/pawmall/internal/promotion/internal/repository"
)

var (
	ErrPromotionNotFound = repository.ErrPromotionNotFound
	ErrInvalidPromotion  = domain.ErrInvalidPromotion
)

//go:generate mockgen -source=./service.go -package=promotionmocks -destination=../../mocks/promotion.mock.go Service
type Service interface {
	// Resolve 返回 at 时刻对 q 最优惠的活动，没有命中时返回零值 Resolution 而不是错误
	Resolve(ctx context.Context, at time.Time, q domain.Query) (domain.Resolution, error)
	// ResolveBatch 一次加载有效活动，按 qs 的顺序返回结果
	ResolveBatch(ctx context.Context, at time.Time, qs []domain.Query) ([]domain.Resolution, error)

	Create(ctx context.Context, p domain.Promotion) (domain.Promotion, error)
	List(ctx context.Context, offset, limit int) ([]domain.Promotion, int64, error)
	Deactivate(ctx context.Context, id int64) error
}

func NewService(repo repository.PromotionRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.PromotionRepository
}

func (s *service) Resolve(ctx context.Context, at time.Time, q domain.Query) (domain.Resolution, error) {
	res, err := s.ResolveBatch(ctx, at, []domain.Query{q})
	if err != nil {
		return domain.Resolution{}, err
	}
	return res[0], nil
}

func (s *service) ResolveBatch(ctx context.Context, at time.Time, qs []domain.Query) ([]domain.Resolution, error) {
	if len(qs) == 0 {
		return []domain.Resolution{}, nil
	}
	ts := at.UnixMilli()
	candidates, err := s.repo.FindActive(ctx, ts)
	if err != nil {
		return nil, fmt.Errorf("查询有效促销活动失败: %w", err)
	}
	return slice.Map(qs, func(idx int, q domain.Query) domain.Resolution {
		return domain.Best(candidates, ts, q)
	}), nil
}

func (s *service) Create(ctx context.Context, p domain.Promotion) (domain.Promotion, error) {
	p.Status = domain.StatusActive
	if err := p.Validate(); err != nil {
		return domain.Promotion{}, err
	}
	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return domain.Promotion{}, err
	}
	p.ID = id
	return p, nil
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Promotion, int64, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *service) Deactivate(ctx context.Context, id int64) error {
	return s.repo.UpdateStatus(ctx, id, domain.StatusInactive)
}
