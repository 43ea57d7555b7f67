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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsBuilder(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	builder := NewMetricsBuilder(reg)

	web := gin.New()
	web.Use(builder.Build("web"))
	web.POST("/order/create", func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})
	admin := gin.New()
	admin.Use(builder.Build("admin"))

	for i := 0; i < 2; i++ {
		web.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/order/create", nil))
	}
	admin.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/no/such/path", nil))

	families, err := reg.Gather()
	require.NoError(t, err)
	counts := make(map[string]float64)
	for _, mf := range families {
		if mf.GetName() != "pawmall_http_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			key := ""
			for _, l := range m.GetLabel() {
				key += l.GetValue() + " "
			}
			counts[key] = m.GetCounter().GetValue()
		}
	}
	assert.Equal(t, map[string]float64{
		"POST /order/create web 200 ": 2,
		"GET unmatched admin 404 ":    1,
	}, counts)
}
