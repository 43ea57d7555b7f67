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

//go:build wireinject

package order

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/pawmall/internal/order/internal/event"
	"github.com/ecodeclub/pawmall/internal/order/internal/repository"
	"github.com/ecodeclub/pawmall/internal/order/internal/repository/cache"
	"github.com/ecodeclub/pawmall/internal/order/internal/web"
	"github.com/ecodeclub/pawmall/internal/pkg/tradeno"
	"github.com/ecodeclub/pawmall/internal/product"
	"github.com/ecodeclub/pawmall/internal/promotion"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component,
	issuer *tradeno.Issuer,
	q mq.MQ,
	ec ecache.Cache,
	pm *product.Module,
	prm *promotion.Module) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewOrderRepository,
		cache.NewOrderECache,
		event.NewNotificationEventProducer,
		wire.FieldsOf(new(*product.Module), "Svc"),
		wire.FieldsOf(new(*promotion.Module), "Svc"),
		initService,
		initCloseExpiredOrdersJob,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
