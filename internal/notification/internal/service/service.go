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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/pawmall/internal/notification/internal/domain"
	"github.com/ecodeclub/pawmall/internal/notification/internal/repository"
	"golang.org/x/sync/errgroup"
)

var ErrInvalidNotification = domain.ErrInvalidNotification

//go:generate mockgen -source=./service.go -package=notificationmocks -destination=../../mocks/notification.mock.go Service
type Service interface {
	Notify(ctx context.Context, n domain.Notification) (int64, error)
	// List 返回分页后的站内信与未读总数
	List(ctx context.Context, recipientID int64, offset, limit int) ([]domain.Notification, int64, error)
	// MarkRead ids 为空时全部标记为已读
	MarkRead(ctx context.Context, recipientID int64, ids []int64) (int64, error)
}

type service struct {
	repo repository.NotificationRepository
}

func NewService(repo repository.NotificationRepository) Service {
	return &service{repo: repo}
}

func (s *service) Notify(ctx context.Context, n domain.Notification) (int64, error) {
	if err := n.Validate(); err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, n)
}

func (s *service) List(ctx context.Context, recipientID int64, offset, limit int) ([]domain.Notification, int64, error) {
	var (
		eg     errgroup.Group
		ns     []domain.Notification
		unread int64
	)
	eg.Go(func() error {
		var err error
		ns, err = s.repo.List(ctx, recipientID, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		unread, err = s.repo.CountUnread(ctx, recipientID)
		return err
	})
	return ns, unread, eg.Wait()
}

func (s *service) MarkRead(ctx context.Context, recipientID int64, ids []int64) (int64, error) {
	ids = slice.FilterMap(ids, func(_ int, id int64) (int64, bool) {
		return id, id > 0
	})
	if len(ids) == 0 {
		return s.repo.MarkAllRead(ctx, recipientID)
	}
	return s.repo.MarkRead(ctx, recipientID, ids)
}
