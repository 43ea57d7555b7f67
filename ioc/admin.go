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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/pawmall/internal/order"
	"github.com/ecodeclub/pawmall/internal/payment"
	"github.com/ecodeclub/pawmall/internal/pkg/middleware"
	"github.com/ecodeclub/pawmall/internal/product"
	"github.com/ecodeclub/pawmall/internal/promotion"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egin"
)

type AdminServer *egin.Component

func InitAdminServer(metrics *middleware.MetricsBuilder,
	productHdl *product.AdminHandler,
	promotionHdl *promotion.AdminHandler,
	orderHdl *order.AdminHandler,
	paymentHdl *payment.AdminHandler,
) AdminServer {
	res := egin.Load("server.admin").Build()
	res.Use(metrics.Build("admin"))
	res.Use(cors.New(corsConfig(econf.GetStringSlice("server.admin.allowedOrigins"),
		"X-Timestamp", "Authorization", "Content-Type")))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})

	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	res.Use(AdminPermission())
	productHdl.PrivateRoutes(res.Engine)
	promotionHdl.PrivateRoutes(res.Engine)
	orderHdl.PrivateRoutes(res.Engine)
	paymentHdl.PrivateRoutes(res.Engine)
	return res
}

func AdminPermission() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		xctx := &ginx.Context{Context: ctx}
		sess, err := session.Get(xctx)
		if err != nil {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			elog.Error("非法访问 admin 接口", elog.FieldErr(err))
			return
		}
		if sess.Claims().Get("admin").StringOrDefault("") != "true" {
			ctx.AbortWithStatus(http.StatusForbidden)
			elog.Error("非法访问 admin 接口，未设置权限",
				elog.Int64("uid", sess.Claims().Uid))
			return
		}
	}
}
