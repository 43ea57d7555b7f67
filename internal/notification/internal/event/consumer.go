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

package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/pawmall/internal/notification/internal/domain"
	"github.com/ecodeclub/pawmall/internal/notification/internal/service"
	"github.com/ecodeclub/pawmall/internal/pkg/mqx"
	"github.com/gotomicro/ego/core/elog"
)

type NotificationEventConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewNotificationEventConsumer(svc service.Service, q mq.MQ) (*NotificationEventConsumer, error) {
	const groupID = "notification"
	consumer, err := q.Consumer(NotificationEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &NotificationEventConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("notification.consumer")),
	}, nil
}

func (c *NotificationEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				c.logger.Error("消费站内信事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *NotificationEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	evt, err := mqx.Decode[NotificationEvent](msg)
	if err != nil {
		return err
	}
	_, err = c.svc.Notify(ctx, evt.toDomain())
	if errors.Is(err, domain.ErrInvalidNotification) {
		// 非法事件重试也不会成功，丢弃
		c.logger.Warn("丢弃非法的站内信事件", elog.Any("event", evt))
		return nil
	}
	return err
}
