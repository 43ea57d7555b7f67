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
	"context"
	"time"

	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// InitTracer 初始化全局 tracer，未配置 endpoint 时只在进程内生成 span
func InitTracer() *trace.TracerProvider {
	type Config struct {
		ServiceName string  `yaml:"serviceName"`
		Endpoint    string  `yaml:"endpoint"`
		Insecure    bool    `yaml:"insecure"`
		Fraction    float64 `yaml:"fraction"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("trace", &cfg); err != nil {
		elog.Panic("读取 trace 配置失败", elog.FieldErr(err))
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = "pawmall"
	}
	if cfg.Fraction <= 0 {
		cfg.Fraction = 1
	}

	res, err := resource.Merge(resource.Default(),
		resource.NewSchemaless(semconv.ServiceName(cfg.ServiceName)))
	if err != nil {
		elog.Panic("init resource failed", elog.FieldErr(err))
	}
	opts := []trace.TracerProviderOption{
		trace.WithResource(res),
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(cfg.Fraction))),
	}
	if cfg.Endpoint != "" {
		exporter, er := newOTLPExporter(cfg.Endpoint, cfg.Insecure)
		if er != nil {
			elog.Panic("init otlp exporter failed", elog.FieldErr(er))
		}
		opts = append(opts, trace.WithBatcher(exporter, trace.WithBatchTimeout(time.Second)))
	}

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	tp := trace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	return tp
}

func newOTLPExporter(endpoint string, insecure bool) (trace.SpanExporter, error) {
	opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(endpoint)}
	if insecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return otlptracegrpc.New(ctx, opts...)
}
