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

package order

import (
	"sync"
	"time"

	"github.com/ecodeclub/pawmall/internal/order/internal/domain"
	"github.com/ecodeclub/pawmall/internal/order/internal/event"
	"github.com/ecodeclub/pawmall/internal/order/internal/job"
	"github.com/ecodeclub/pawmall/internal/order/internal/repository"
	"github.com/ecodeclub/pawmall/internal/order/internal/repository/dao"
	"github.com/ecodeclub/pawmall/internal/order/internal/service"
	"github.com/ecodeclub/pawmall/internal/order/internal/web"
	"github.com/ecodeclub/pawmall/internal/pkg/tradeno"
	"github.com/ecodeclub/pawmall/internal/product"
	"github.com/ecodeclub/pawmall/internal/promotion"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

type (
	Handler               = web.Handler
	AdminHandler          = web.AdminHandler
	Service               = service.Service
	Order                 = domain.Order
	OrderItem             = domain.OrderItem
	OrderStatus           = domain.OrderStatus
	PaymentStatus         = domain.PaymentStatus
	CloseExpiredOrdersJob = job.CloseExpiredOrdersJob
)

const (
	OrderStatusPendingShip = domain.OrderStatusPendingShip
	OrderStatusShipped     = domain.OrderStatusShipped
	OrderStatusCompleted   = domain.OrderStatusCompleted
	OrderStatusCanceled    = domain.OrderStatusCanceled

	PaymentStatusUnpaid = domain.PaymentStatusUnpaid
	PaymentStatusPaid   = domain.PaymentStatusPaid
	PaymentStatusFailed = domain.PaymentStatusFailed
)

var ErrOrderNotFound = service.ErrOrderNotFound

type Module struct {
	Svc                   Service
	Hdl                   *Handler
	AdminHdl              *AdminHandler
	CloseExpiredOrdersJob *CloseExpiredOrdersJob
}

const (
	defaultCheckoutTimeout = 5 * time.Second
	defaultExpireMinutes   = 30
	closeExpiredBatchSize  = 100
)

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component, issuer *tradeno.Issuer) dao.OrderDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewOrderGORMDAO(db, issuer)
}

type config struct {
	CheckoutTimeout string `yaml:"checkoutTimeout"`
	ExpireMinutes   int64  `yaml:"expireMinutes"`
}

func loadConfig() (time.Duration, int64) {
	var cfg config
	_ = econf.UnmarshalKey("order", &cfg)
	timeout, err := time.ParseDuration(cfg.CheckoutTimeout)
	if err != nil || timeout <= 0 {
		timeout = defaultCheckoutTimeout
	}
	if cfg.ExpireMinutes <= 0 {
		cfg.ExpireMinutes = defaultExpireMinutes
	}
	return timeout, cfg.ExpireMinutes
}

func initService(repo repository.OrderRepository,
	productSvc product.Service,
	promotionSvc promotion.Service,
	producer event.NotificationEventProducer) Service {
	timeout, _ := loadConfig()
	return service.NewService(repo, productSvc, promotionSvc, producer, timeout)
}

func initCloseExpiredOrdersJob(svc Service) *CloseExpiredOrdersJob {
	_, minute := loadConfig()
	return job.NewCloseExpiredOrdersJob(svc, closeExpiredBatchSize, minute, time.Minute)
}
