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

package donation

import (
	"sync"

	"github.com/ecodeclub/pawmall/internal/donation/internal/domain"
	"github.com/ecodeclub/pawmall/internal/donation/internal/repository/dao"
	"github.com/ecodeclub/pawmall/internal/donation/internal/service"
	"github.com/ecodeclub/pawmall/internal/donation/internal/web"
	"github.com/ecodeclub/pawmall/internal/pkg/tradeno"
	"github.com/ego-component/egorm"
)

type (
	Handler  = web.Handler
	Service  = service.Service
	Donation = domain.Donation
	Donor    = domain.Donor
	Mode     = domain.Mode
	Status   = domain.Status
)

const (
	ModeOneTime   = domain.ModeOneTime
	ModeRecurring = domain.ModeRecurring

	StatusUnpaid = domain.StatusUnpaid
	StatusPaid   = domain.StatusPaid
	StatusFailed = domain.StatusFailed
)

var ErrDonationNotFound = service.ErrDonationNotFound

type Module struct {
	Svc Service
	Hdl *Handler
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component, issuer *tradeno.Issuer) dao.DonationDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewDonationGORMDAO(db, issuer)
}
