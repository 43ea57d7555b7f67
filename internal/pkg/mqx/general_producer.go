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
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
)

type Producer[T any] interface {
	Produce(ctx context.Context, evt T) error
}

// Keyed 事件实现该接口后按 Key 分区，同一个 Key 的消息保持有序
type Keyed interface {
	Key() string
}

type GeneralProducer[T any] struct {
	producer mq.Producer
	topic    string
}

func NewGeneralProducer[T any](q mq.MQ, topic string) (*GeneralProducer[T], error) {
	p, err := q.Producer(topic)
	if err != nil {
		return nil, fmt.Errorf("创建topic=%s的生产者失败: %w", topic, err)
	}
	return &GeneralProducer[T]{
		producer: p,
		topic:    topic,
	}, nil
}

func (p *GeneralProducer[T]) Produce(ctx context.Context, evt T) error {
	data, err := json.Marshal(&evt)
	if err != nil {
		return fmt.Errorf("序列化失败: %w", err)
	}
	msg := &mq.Message{Topic: p.topic, Value: data}
	if k, ok := any(evt).(Keyed); ok {
		msg.Key = []byte(k.Key())
	}
	_, err = p.producer.Produce(ctx, msg)
	if err != nil {
		return fmt.Errorf("向topic=%s发送消息失败: %w", p.topic, err)
	}
	return nil
}

// Decode 把消息体解析为事件
func Decode[T any](msg *mq.Message) (T, error) {
	var evt T
	err := json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return evt, fmt.Errorf("解析topic=%s的消息失败: %w", msg.Topic, err)
	}
	return evt, nil
}
