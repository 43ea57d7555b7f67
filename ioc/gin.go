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

package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/pawmall/internal/donation"
	"github.com/ecodeclub/pawmall/internal/notification"
	"github.com/ecodeclub/pawmall/internal/order"
	"github.com/ecodeclub/pawmall/internal/payment"
	"github.com/ecodeclub/pawmall/internal/pkg/middleware"
	"github.com/ecodeclub/pawmall/internal/product"
	"github.com/ecodeclub/pawmall/internal/promotion"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/prometheus/client_golang/prometheus"
)

// 指标注册到默认 registry，由 governor 的 /metrics 暴露
func initMetricsBuilder() *middleware.MetricsBuilder {
	return middleware.NewMetricsBuilder(prometheus.DefaultRegisterer)
}

func initGinxServer(sp session.Provider,
	metrics *middleware.MetricsBuilder,
	productHdl *product.Handler,
	promotionHdl *promotion.Handler,
	orderHdl *order.Handler,
	donationHdl *donation.Handler,
	paymentHdl *payment.Handler,
	notificationHdl *notification.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("server.web").Build()
	res.Use(metrics.Build("web"))
	res.Use(cors.New(corsConfig(econf.GetStringSlice("server.web.allowedOrigins"),
		"Authorization", "Content-Type")))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	productHdl.PublicRoutes(res.Engine)
	promotionHdl.PublicRoutes(res.Engine)
	// 支付网关回调不带会话
	paymentHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	orderHdl.PrivateRoutes(res.Engine)
	donationHdl.PrivateRoutes(res.Engine)
	paymentHdl.PrivateRoutes(res.Engine)
	notificationHdl.PrivateRoutes(res.Engine)
	return res
}

func corsConfig(domains []string, allowHeaders ...string) cors.Config {
	return cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     allowHeaders,
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			for _, domain := range domains {
				if strings.HasSuffix(origin, domain) {
					return true
				}
			}
			return false
		},
	}
}
