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

package test

import (
	"github.com/ecodeclub/ginx/gctx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

func init() {
	session.SetDefaultProvider(&SessionProvider{})
}

// SessionProvider 直接从 gin.Context 中读取测试代码预先放入的 session
type SessionProvider struct {
	session.Provider
}

func (s *SessionProvider) NewSession(ctx *gctx.Context, uid int64, jwtData map[string]string, sessData map[string]any) (session.Session, error) {
	return nil, nil
}

func (s *SessionProvider) Get(ctx *gctx.Context) (session.Session, error) {
	val, _ := ctx.Get("_session")
	return val.(session.Session), nil
}

// InjectSession 返回一个中间件，为每个请求放入 uid 对应的内存 session
func InjectSession(uid int64, data ...map[string]string) gin.HandlerFunc {
	claims := session.Claims{Uid: uid}
	if len(data) > 0 {
		claims.Data = data[0]
	}
	return func(ctx *gin.Context) {
		ctx.Set(session.CtxSessionKey, session.NewMemorySession(claims))
	}
}
