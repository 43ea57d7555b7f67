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
	"testing"
	"time"

	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type keyedEvent struct {
	RecipientID string `json:"recipientId"`
	Title       string `json:"title"`
}

func (e keyedEvent) Key() string {
	return e.RecipientID
}

type plainEvent struct {
	Title string `json:"title"`
}

func TestGeneralProducer_Produce(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(ctx, "keyed", 1))
	require.NoError(t, q.CreateTopic(ctx, "plain", 1))

	keyedConsumer, err := q.Consumer("keyed", "test")
	require.NoError(t, err)
	plainConsumer, err := q.Consumer("plain", "test")
	require.NoError(t, err)

	kp, err := NewGeneralProducer[keyedEvent](q, "keyed")
	require.NoError(t, err)
	require.NoError(t, kp.Produce(ctx, keyedEvent{RecipientID: "7", Title: "付款成功"}))
	pp, err := NewGeneralProducer[plainEvent](NewTraceMQ(q), "plain")
	require.NoError(t, err)
	require.NoError(t, pp.Produce(ctx, plainEvent{Title: "新訂單"}))

	msg, err := keyedConsumer.Consume(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("7"), msg.Key)
	evt, err := Decode[keyedEvent](msg)
	require.NoError(t, err)
	assert.Equal(t, keyedEvent{RecipientID: "7", Title: "付款成功"}, evt)

	msg, err = plainConsumer.Consume(ctx)
	require.NoError(t, err)
	assert.Empty(t, msg.Key)
	pevt, err := Decode[plainEvent](msg)
	require.NoError(t, err)
	assert.Equal(t, "新訂單", pevt.Title)
}
