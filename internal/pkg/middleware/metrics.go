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

package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsBuilder 在 web 与 admin 两个 server 之间共享，用 server 标签区分
type MetricsBuilder struct {
	durationVec *prometheus.HistogramVec
	counterVec  *prometheus.CounterVec
}

func NewMetricsBuilder(reg prometheus.Registerer) *MetricsBuilder {
	factory := promauto.With(reg)
	labels := []string{"server", "method", "path", "status_code"}
	return &MetricsBuilder{
		durationVec: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pawmall",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, labels),
		counterVec: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pawmall",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, labels),
	}
}

func (m *MetricsBuilder) Build(server string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			// 未命中路由时不用原始路径，避免标签爆炸
			path = "unmatched"
		}
		labels := []string{server, ctx.Request.Method, path, strconv.Itoa(ctx.Writer.Status())}
		m.durationVec.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		m.counterVec.WithLabelValues(labels...).Inc()
	}
}
