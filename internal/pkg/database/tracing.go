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

package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const (
	instrumentationName = "github.com/ecodeclub/pawmall/internal/pkg/database"
	spanKey             = "tracing:span"
)

// GormTracingPlugin 为每一次 GORM 操作开启一个 client span
type GormTracingPlugin struct {
	tracer trace.Tracer
	dbName string
}

func NewGormTracingPlugin() *GormTracingPlugin {
	return &GormTracingPlugin{
		tracer: otel.GetTracerProvider().Tracer(instrumentationName),
		dbName: "mysql",
	}
}

func (p *GormTracingPlugin) Name() string {
	return "GormTracingPlugin"
}

type register func(name string, fn func(*gorm.DB)) error

func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	hooks := []struct {
		operation string
		before    register
		after     register
	}{
		{
			operation: "SELECT",
			before:    func(name string, fn func(*gorm.DB)) error { return cb.Query().Before("gorm:query").Register(name, fn) },
			after:     func(name string, fn func(*gorm.DB)) error { return cb.Query().After("gorm:query").Register(name, fn) },
		},
		{
			operation: "INSERT",
			before:    func(name string, fn func(*gorm.DB)) error { return cb.Create().Before("gorm:create").Register(name, fn) },
			after:     func(name string, fn func(*gorm.DB)) error { return cb.Create().After("gorm:create").Register(name, fn) },
		},
		{
			operation: "UPDATE",
			before:    func(name string, fn func(*gorm.DB)) error { return cb.Update().Before("gorm:update").Register(name, fn) },
			after:     func(name string, fn func(*gorm.DB)) error { return cb.Update().After("gorm:update").Register(name, fn) },
		},
		{
			operation: "DELETE",
			before:    func(name string, fn func(*gorm.DB)) error { return cb.Delete().Before("gorm:delete").Register(name, fn) },
			after:     func(name string, fn func(*gorm.DB)) error { return cb.Delete().After("gorm:delete").Register(name, fn) },
		},
		{
			operation: "ROW",
			before:    func(name string, fn func(*gorm.DB)) error { return cb.Row().Before("gorm:row").Register(name, fn) },
			after:     func(name string, fn func(*gorm.DB)) error { return cb.Row().After("gorm:row").Register(name, fn) },
		},
		{
			operation: "RAW",
			before:    func(name string, fn func(*gorm.DB)) error { return cb.Raw().Before("gorm:raw").Register(name, fn) },
			after:     func(name string, fn func(*gorm.DB)) error { return cb.Raw().After("gorm:raw").Register(name, fn) },
		},
	}
	for _, h := range hooks {
		key := strings.ToLower(h.operation)
		if err := h.before("tracing:before_"+key, p.start(h.operation)); err != nil {
			return fmt.Errorf("注册 %s 追踪回调失败: %w", h.operation, err)
		}
		if err := h.after("tracing:after_"+key, p.end); err != nil {
			return fmt.Errorf("注册 %s 追踪回调失败: %w", h.operation, err)
		}
	}
	return nil
}

func (p *GormTracingPlugin) start(operation string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		ctx := context.Background()
		if db.Statement != nil && db.Statement.Context != nil {
			ctx = db.Statement.Context
		}
		ctx, span := p.tracer.Start(ctx, strings.TrimSpace(db.Statement.Table+" "+operation),
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(
				attribute.String("db.system", p.dbName),
				attribute.String("db.operation", operation),
			))
		db.Statement.Context = ctx
		db.InstanceSet(spanKey, span)
	}
}

func (p *GormTracingPlugin) end(db *gorm.DB) {
	val, ok := db.InstanceGet(spanKey)
	if !ok {
		return
	}
	span, ok := val.(trace.Span)
	if !ok {
		return
	}
	defer span.End()

	table := db.Statement.Table
	if db.Statement.Schema != nil {
		table = db.Statement.Schema.Table
	}
	attrs := []attribute.KeyValue{
		attribute.String("db.table", table),
		attribute.Int64("db.rows_affected", db.Statement.RowsAffected),
	}
	if stmt := db.Statement.SQL.String(); stmt != "" {
		attrs = append(attrs, attribute.String("db.statement", stmt))
	}
	span.SetAttributes(attrs...)

	// 查不到数据是业务语义，不算失败
	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		span.RecordError(db.Error)
		span.SetStatus(codes.Error, db.Error.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}
