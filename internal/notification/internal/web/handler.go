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

package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/pawmall/internal/notification/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/notification")
	g.GET("/list", ginx.S(h.List))
	g.POST("/read", ginx.BS[ReadReq](h.Read))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	p := pageOf(ctx.Request.URL.Query())
	ns, unread, err := h.svc.List(ctx.Request.Context(), sess.Claims().Uid, p.Offset, p.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newNotificationList(ns, unread)}, nil
}

func (h *Handler) Read(ctx *ginx.Context, req ReadReq, sess session.Session) (ginx.Result, error) {
	cnt, err := h.svc.MarkRead(ctx.Request.Context(), sess.Claims().Uid, req.IDs)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: ReadResp{Updated: cnt}}, nil
}
