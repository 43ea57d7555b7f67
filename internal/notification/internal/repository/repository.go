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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/pawmall/internal/notification/internal/domain"
	"github.com/ecodeclub/pawmall/internal/notification/internal/repository/dao"
)

//go:generate mockgen -source=./repository.go -package=repomocks -destination=./mocks/notification.mock.go NotificationRepository
type NotificationRepository interface {
	Create(ctx context.Context, n domain.Notification) (int64, error)
	List(ctx context.Context, recipientID int64, offset, limit int) ([]domain.Notification, error)
	CountUnread(ctx context.Context, recipientID int64) (int64, error)
	MarkRead(ctx context.Context, recipientID int64, ids []int64) (int64, error)
	MarkAllRead(ctx context.Context, recipientID int64) (int64, error)
}

type notificationRepository struct {
	dao dao.NotificationDAO
}

func NewNotificationRepository(d dao.NotificationDAO) NotificationRepository {
	return &notificationRepository{dao: d}
}

func (r *notificationRepository) Create(ctx context.Context, n domain.Notification) (int64, error) {
	return r.dao.Insert(ctx, dao.Notification{
		RecipientId: n.RecipientID,
		Type:        n.Type,
		Title:       n.Title,
		Message:     n.Message,
		Link:        n.Link,
	})
}

func (r *notificationRepository) List(ctx context.Context, recipientID int64, offset, limit int) ([]domain.Notification, error) {
	ns, err := r.dao.ListByRecipient(ctx, recipientID, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ns, func(_ int, n dao.Notification) domain.Notification {
		return r.toDomain(n)
	}), nil
}

func (r *notificationRepository) CountUnread(ctx context.Context, recipientID int64) (int64, error) {
	return r.dao.CountUnread(ctx, recipientID)
}

func (r *notificationRepository) MarkRead(ctx context.Context, recipientID int64, ids []int64) (int64, error) {
	return r.dao.MarkRead(ctx, recipientID, ids)
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, recipientID int64) (int64, error) {
	return r.dao.MarkAllRead(ctx, recipientID)
}

func (r *notificationRepository) toDomain(n dao.Notification) domain.Notification {
	return domain.Notification{
		ID:          n.Id,
		RecipientID: n.RecipientId,
		Type:        n.Type,
		Title:       n.Title,
		Message:     n.Message,
		Link:        n.Link,
		ReadAt:      n.ReadAt,
		Ctime:       n.Ctime,
	}
}
