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

package payment

import (
	"sync"

	"github.com/ecodeclub/pawmall/internal/donation"
	"github.com/ecodeclub/pawmall/internal/order"
	"github.com/ecodeclub/pawmall/internal/payment/internal/domain"
	"github.com/ecodeclub/pawmall/internal/payment/internal/event"
	"github.com/ecodeclub/pawmall/internal/payment/internal/repository"
	"github.com/ecodeclub/pawmall/internal/payment/internal/repository/dao"
	"github.com/ecodeclub/pawmall/internal/payment/internal/service"
	"github.com/ecodeclub/pawmall/internal/payment/internal/service/ecpay"
	"github.com/ecodeclub/pawmall/internal/payment/internal/web"
	"github.com/ecodeclub/pawmall/internal/pkg/tradeno"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

type (
	Handler        = web.Handler
	AdminHandler   = web.AdminHandler
	Service        = service.Service
	Callback       = domain.Callback
	CallbackRecord = domain.CallbackRecord
	Outcome        = domain.Outcome
	OrderType      = domain.OrderType
)

const (
	OrderTypeShop     = domain.OrderTypeShop
	OrderTypeDonation = domain.OrderTypeDonation
)

type Module struct {
	Svc      Service
	Hdl      *Handler
	AdminHdl *AdminHandler
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.CallbackDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewCallbackGORMDAO(db)
}

type notificationConfig struct {
	AdminIDs   []int64 `yaml:"adminIDs"`
	AlertRobot string  `yaml:"alertRobot"`
}

func initService(repo repository.CallbackRepository,
	notifier event.NotificationEventProducer,
	alerter event.OperatorAlertEventProducer,
	om *order.Module,
	dm *donation.Module) Service {
	var ecpayCfg ecpay.Config
	err := econf.UnmarshalKey("ecpay", &ecpayCfg)
	if err != nil {
		panic(err)
	}
	var notifyCfg notificationConfig
	err = econf.UnmarshalKey("notification", &notifyCfg)
	if err != nil {
		panic(err)
	}
	loc, err := tradeno.LoadLocation(econf.GetString("tradeNo.timezone"))
	if err != nil {
		elog.DefaultLogger.Warn("加载时区失败，使用系统时区", elog.FieldErr(err))
	}
	return service.NewService(service.Config{
		ECPay:      ecpayCfg,
		AdminIDs:   notifyCfg.AdminIDs,
		AlertRobot: notifyCfg.AlertRobot,
		Location:   loc,
	}, repo, notifier, alerter,
		service.NewShopSettler(om.Svc),
		service.NewDonationSettler(dm.Svc))
}
