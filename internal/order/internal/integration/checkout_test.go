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

//go:build e2e

package integration

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/ecodeclub/pawmall/internal/order"
	"github.com/ecodeclub/pawmall/internal/order/internal/domain"
	"github.com/ecodeclub/pawmall/internal/pkg/tradeno"
	"github.com/ecodeclub/pawmall/internal/product"
	"github.com/ecodeclub/pawmall/internal/promotion"
	testioc "github.com/ecodeclub/pawmall/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const testUID = 234

type CheckoutTestSuite struct {
	suite.Suite
	db         *egorm.Component
	productSvc product.Service
	svc        order.Service
}

func TestCheckout(t *testing.T) {
	suite.Run(t, new(CheckoutTestSuite))
}

func (s *CheckoutTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	loc, err := tradeno.LoadLocation("")
	require.NoError(s.T(), err)
	pm := product.InitModule(s.db)
	prm := promotion.InitModule(s.db, pm.Svc)
	om, err := order.InitModule(s.db, tradeno.NewIssuer(loc), testioc.InitMQ(), testioc.InitCache(), pm, prm)
	require.NoError(s.T(), err)
	s.productSvc = pm.Svc
	s.svc = om.Svc
}

func (s *CheckoutTestSuite) TearDownTest() {
	for _, table := range []string{"orders", "order_items", "products", "product_variants", "promotions", "trade_no_sequences"} {
		require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `"+table+"`").Error)
	}
}

func (s *CheckoutTestSuite) TestLastUnitRace() {
	t := s.T()
	ctx := context.Background()
	p, err := s.productSvc.CreateProduct(ctx, product.Product{
		Name:   "凍乾雞肉",
		Status: product.StatusOnShelf,
	})
	require.NoError(t, err)
	v, err := s.productSvc.CreateVariant(ctx, product.Variant{
		ProductID:     p.ID,
		Name:          "100g",
		Price:         350,
		StockQuantity: 1,
		Status:        product.StatusOnShelf,
	})
	require.NoError(t, err)

	const buyers = 5
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		orders   []domain.Order
		failures []error
	)
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func(buyer int64) {
			defer wg.Done()
			o, er := s.svc.Checkout(ctx, domain.Checkout{
				BuyerID: buyer,
				Lines:   []domain.Line{{ProductID: p.ID, VariantID: v.ID, Quantity: 1}},
				Recipient: domain.Recipient{
					Name:    "王小明",
					Phone:   "0912345678",
					Address: "台北市信義區市府路1號",
				},
			})
			mu.Lock()
			defer mu.Unlock()
			if er != nil {
				failures = append(failures, er)
				return
			}
			orders = append(orders, o)
		}(testUID + int64(i))
	}
	wg.Wait()

	require.Len(t, orders, 1)
	require.Len(t, failures, buyers-1)
	for _, er := range failures {
		var se *domain.StockError
		require.True(t, errors.As(er, &se), er.Error())
		require.Equal(t, domain.StockErrInsufficient, se.Kind)
	}
	require.Equal(t, int64(350), orders[0].TotalPrice)

	variants, err := s.productSvc.FindVariants(ctx, []int64{v.ID})
	require.NoError(t, err)
	require.Equal(t, int64(0), variants[v.ID].StockQuantity)
}
