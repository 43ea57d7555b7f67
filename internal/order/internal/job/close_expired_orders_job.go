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

package job

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/pawmall/internal/order/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*CloseExpiredOrdersJob)(nil)

// CloseExpiredOrdersJob 关闭超过 minute 分钟仍未付款的订单并回补库存
type CloseExpiredOrdersJob struct {
	svc     service.Service
	limit   int
	minute  int64
	timeout time.Duration
	logger  *elog.Component
}

func NewCloseExpiredOrdersJob(svc service.Service, limit int, minute int64, timeout time.Duration) *CloseExpiredOrdersJob {
	return &CloseExpiredOrdersJob{
		svc:     svc,
		limit:   limit,
		minute:  minute,
		timeout: timeout,
		logger:  elog.DefaultLogger,
	}
}

func (c *CloseExpiredOrdersJob) Name() string {
	return "CloseExpiredOrdersJob"
}

func (c *CloseExpiredOrdersJob) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithTimeout(ctx, c.timeout)
	defer cancelFunc()
	ctime := time.Now().Add(-time.Duration(c.minute) * time.Minute).UnixMilli()

	total := 0
	for {
		n, err := c.svc.CloseExpiredOrders(ctx, ctime, c.limit)
		total += n
		if err != nil {
			return fmt.Errorf("关闭超时订单失败: %w", err)
		}
		if n < c.limit {
			break
		}
	}
	if total > 0 {
		c.logger.Info("关闭超时订单", elog.Int64("count", int64(total)))
	}
	return nil
}
