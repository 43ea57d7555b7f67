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

package ioc

import (
	"github.com/ecodeclub/pawmall/internal/donation"
	"github.com/ecodeclub/pawmall/internal/notification"
	"github.com/ecodeclub/pawmall/internal/order"
	"github.com/ecodeclub/pawmall/internal/payment"
	"github.com/ecodeclub/pawmall/internal/product"
	"github.com/ecodeclub/pawmall/internal/promotion"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ, InitTradeNoIssuer)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		product.InitModule,
		promotion.InitModule,
		order.InitModule,
		donation.InitModule,
		payment.InitModule,
		notification.InitModule,
		wire.FieldsOf(new(*product.Module), "Svc", "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*promotion.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*order.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*donation.Module), "Hdl"),
		wire.FieldsOf(new(*payment.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*notification.Module), "Hdl"),
		initMetricsBuilder,
		InitSession,
		initGinxServer,
		InitAdminServer,
		initCronJobs,
		initMQConsumers)
	return new(App), nil
}
