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

package notification

import (
	"net/http"
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/pawmall/internal/notification/internal/domain"
	"github.com/ecodeclub/pawmall/internal/notification/internal/event"
	"github.com/ecodeclub/pawmall/internal/notification/internal/repository/dao"
	"github.com/ecodeclub/pawmall/internal/notification/internal/service"
	"github.com/ecodeclub/pawmall/internal/notification/internal/web"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

type (
	Handler                   = web.Handler
	Service                   = service.Service
	Notification              = domain.Notification
	NotificationEventConsumer = event.NotificationEventConsumer
	WechatRobotEventConsumer  = event.WechatRobotEventConsumer
)

type Module struct {
	Svc                 Service
	Hdl                 *Handler
	EventConsumer       *NotificationEventConsumer
	WechatRobotConsumer *WechatRobotEventConsumer
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.NotificationDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewNotificationGORMDAO(db)
}

func initWechatRobotEventConsumer(q mq.MQ) (*WechatRobotEventConsumer, error) {
	var cfg event.WechatRobotConfig
	err := econf.UnmarshalKey("notification", &cfg)
	if err != nil {
		return nil, err
	}
	return event.NewWechatRobotEventConsumer(q, cfg, http.Post)
}
