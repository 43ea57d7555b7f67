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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
)

//go:generate mockgen -source=./notification.go -package=daomocks -destination=./mocks/notification.mock.go NotificationDAO
type NotificationDAO interface {
	Insert(ctx context.Context, n Notification) (int64, error)
	ListByRecipient(ctx context.Context, recipientID int64, offset, limit int) ([]Notification, error)
	CountUnread(ctx context.Context, recipientID int64) (int64, error)
	// MarkRead 只更新属于 recipientID 且未读的记录，返回实际更新的行数
	MarkRead(ctx context.Context, recipientID int64, ids []int64) (int64, error)
	MarkAllRead(ctx context.Context, recipientID int64) (int64, error)
}

type notificationGORMDAO struct {
	db *egorm.Component
}

func NewNotificationGORMDAO(db *egorm.Component) NotificationDAO {
	return &notificationGORMDAO{db: db}
}

func (d *notificationGORMDAO) Insert(ctx context.Context, n Notification) (int64, error) {
	now := time.Now().UnixMilli()
	n.Ctime, n.Utime = now, now
	err := d.db.WithContext(ctx).Create(&n).Error
	return n.Id, err
}

func (d *notificationGORMDAO) ListByRecipient(ctx context.Context, recipientID int64, offset, limit int) ([]Notification, error) {
	var res []Notification
	err := d.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *notificationGORMDAO) CountUnread(ctx context.Context, recipientID int64) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Notification{}).
		Where("recipient_id = ? AND read_at = 0", recipientID).
		Count(&res).Error
	return res, err
}

func (d *notificationGORMDAO) MarkRead(ctx context.Context, recipientID int64, ids []int64) (int64, error) {
	return d.markRead(d.db.WithContext(ctx).
		Where("recipient_id = ? AND id IN ? AND read_at = 0", recipientID, ids))
}

func (d *notificationGORMDAO) MarkAllRead(ctx context.Context, recipientID int64) (int64, error) {
	return d.markRead(d.db.WithContext(ctx).
		Where("recipient_id = ? AND read_at = 0", recipientID))
}

func (d *notificationGORMDAO) markRead(tx *egorm.Component) (int64, error) {
	now := time.Now().UnixMilli()
	res := tx.Model(&Notification{}).Updates(map[string]any{
		"read_at": now,
		"utime":   now,
	})
	return res.RowsAffected, res.Error
}

type Notification struct {
	Id          int64  `gorm:"primaryKey;autoIncrement;comment:站内信自增ID"`
	RecipientId int64  `gorm:"not null;index:idx_recipient_read,priority:1;comment:收件人ID"`
	Type        string `gorm:"type:varchar(32);not null;comment:通知类型"`
	Title       string `gorm:"type:varchar(255);not null;comment:标题"`
	Message     string `gorm:"type:varchar(1024);not null;default:'';comment:内容"`
	Link        string `gorm:"type:varchar(255);not null;default:'';comment:跳转链接"`
	ReadAt      int64  `gorm:"not null;default:0;index:idx_recipient_read,priority:2;comment:已读时间，0 表示未读"`
	Ctime       int64
	Utime       int64
}
