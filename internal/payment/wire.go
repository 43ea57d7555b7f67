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

package payment

import (
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/pawmall/internal/donation"
	"github.com/ecodeclub/pawmall/internal/order"
	"github.com/ecodeclub/pawmall/internal/payment/internal/event"
	"github.com/ecodeclub/pawmall/internal/payment/internal/repository"
	"github.com/ecodeclub/pawmall/internal/payment/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component,
	q mq.MQ,
	om *order.Module,
	dm *donation.Module) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewCallbackRepository,
		event.NewNotificationEventProducer,
		event.NewOperatorAlertEventProducer,
		initService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
