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

package cache

import (
	"context"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

const requestIDExpiration = 24 * time.Hour

//go:generate mockgen -source=./cache.go -package=cachemocks -destination=./mocks/order.cache.mock.go OrderCache
type OrderCache interface {
	// SetNXRequestID 请求ID首次出现时返回 true
	SetNXRequestID(ctx context.Context, requestID string) (bool, error)
	// DelRequestID 下单失败后释放请求ID，允许客户端用同一个请求ID重新提交
	DelRequestID(ctx context.Context, requestID string) (int64, error)
}

type orderECache struct {
	ec ecache.Cache
}

func NewOrderECache(ec ecache.Cache) OrderCache {
	return &orderECache{
		ec: &ecache.NamespaceCache{
			Namespace: "order:",
			C:         ec,
		},
	}
}

func (c *orderECache) SetNXRequestID(ctx context.Context, requestID string) (bool, error) {
	ok, err := c.ec.SetNX(ctx, c.requestKey(requestID), 1, requestIDExpiration)
	return ok, errors.Wrap(err, "记录下单请求ID失败")
}

func (c *orderECache) DelRequestID(ctx context.Context, requestID string) (int64, error) {
	n, err := c.ec.Delete(ctx, c.requestKey(requestID))
	return n, errors.Wrap(err, "释放下单请求ID失败")
}

func (c *orderECache) requestKey(requestID string) string {
	return "checkout:" + requestID
}
