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

package mqx

import (
	"context"

	"github.com/ecodeclub/mq-api"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/ecodeclub/pawmall/internal/pkg/mqx"

// TraceMQ 为生产与消费各开一个 span
type TraceMQ struct {
	mq.MQ
	tracer trace.Tracer
}

func NewTraceMQ(q mq.MQ) *TraceMQ {
	return &TraceMQ{MQ: q, tracer: otel.GetTracerProvider().Tracer(instrumentationName)}
}

func (t *TraceMQ) Producer(topic string) (mq.Producer, error) {
	p, err := t.MQ.Producer(topic)
	if err != nil {
		return nil, err
	}
	return &traceProducer{Producer: p, topic: topic, tracer: t.tracer}, nil
}

func (t *TraceMQ) Consumer(topic, groupID string) (mq.Consumer, error) {
	c, err := t.MQ.Consumer(topic, groupID)
	if err != nil {
		return nil, err
	}
	return &traceConsumer{Consumer: c, topic: topic, groupID: groupID, tracer: t.tracer}, nil
}

type traceProducer struct {
	mq.Producer
	topic  string
	tracer trace.Tracer
}

func (t *traceProducer) Produce(ctx context.Context, m *mq.Message) (*mq.ProducerResult, error) {
	ctx, span := t.tracer.Start(ctx, "mq.produce "+t.topic, trace.WithSpanKind(trace.SpanKindProducer))
	defer span.End()
	span.SetAttributes(messageAttributes(t.topic, "publish", m)...)
	res, err := t.Producer.Produce(ctx, m)
	end(span, err)
	return res, err
}

func (t *traceProducer) ProduceWithPartition(ctx context.Context, m *mq.Message, partition int) (*mq.ProducerResult, error) {
	ctx, span := t.tracer.Start(ctx, "mq.produce "+t.topic, trace.WithSpanKind(trace.SpanKindProducer))
	defer span.End()
	span.SetAttributes(messageAttributes(t.topic, "publish", m)...)
	span.SetAttributes(attribute.Int("messaging.destination.partition.id", partition))
	res, err := t.Producer.ProduceWithPartition(ctx, m, partition)
	end(span, err)
	return res, err
}

type traceConsumer struct {
	mq.Consumer
	topic   string
	groupID string
	tracer  trace.Tracer
}

func (t *traceConsumer) Consume(ctx context.Context) (*mq.Message, error) {
	_, span := t.tracer.Start(ctx, "mq.consume "+t.topic, trace.WithSpanKind(trace.SpanKindConsumer))
	defer span.End()
	msg, err := t.Consumer.Consume(ctx)
	span.SetAttributes(messageAttributes(t.topic, "receive", msg)...)
	span.SetAttributes(attribute.String("messaging.consumer.group.name", t.groupID))
	end(span, err)
	return msg, err
}

func messageAttributes(topic, operation string, m *mq.Message) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("messaging.system", "kafka"),
		attribute.String("messaging.operation.type", operation),
		attribute.String("messaging.destination.name", topic),
	}
	if m != nil {
		attrs = append(attrs, attribute.Int("messaging.message.body.size", len(m.Value)))
		if len(m.Key) > 0 {
			attrs = append(attrs, attribute.String("messaging.kafka.message.key", string(m.Key)))
		}
	}
	return attrs
}

func end(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}
