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

package event

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/pawmall/internal/pkg/mqx"
	"github.com/gotomicro/ego/core/elog"
)

// 企业微信机器人文本消息最长 2048 字节
const maxRobotContentBytes = 2048

type robotText struct {
	Content string `json:"content"`
}

type robotMessage struct {
	MsgType string    `json:"msgtype"`
	Text    robotText `json:"text"`
}

type HTTPPOSTFunc func(url, contentType string, body io.Reader) (*http.Response, error)

type WechatRobotConfig struct {
	ChatRobots map[string]string `yaml:"chatRobots"`
}

// WechatRobotEventConsumer 把运营告警转发到企业微信群机器人
type WechatRobotEventConsumer struct {
	consumer mq.Consumer
	config   WechatRobotConfig
	post     HTTPPOSTFunc
	logger   *elog.Component
}

func NewWechatRobotEventConsumer(q mq.MQ, config WechatRobotConfig, post HTTPPOSTFunc) (*WechatRobotEventConsumer, error) {
	const groupID = "notification.wechat"
	consumer, err := q.Consumer(OperatorAlertEventName, groupID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		post = http.Post
	}
	return &WechatRobotEventConsumer{
		consumer: consumer,
		config:   config,
		post:     post,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("notification.wechat.consumer")),
	}, nil
}

func (c *WechatRobotEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				c.logger.Error("消费运营告警事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *WechatRobotEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	evt, err := mqx.Decode[OperatorAlertEvent](msg)
	if err != nil {
		return err
	}
	webhookURL, ok := c.config.ChatRobots[evt.Robot]
	if !ok {
		return fmt.Errorf("未知的机器人: %s", evt.Robot)
	}
	data, err := json.Marshal(robotMessage{
		MsgType: "text",
		Text:    robotText{Content: truncate(evt.RawContent, maxRobotContentBytes)},
	})
	if err != nil {
		return fmt.Errorf("序列化机器人消息失败: %w", err)
	}
	resp, err := c.post(webhookURL, "application/json", bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("向企业微信发送请求失败: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("企业微信处理请求失败: %s", http.StatusText(resp.StatusCode))
	}
	return nil
}

// truncate 按字节截断且不切断多字节字符，limit 为负数时 panic
func truncate(content string, limit int) string {
	if limit < 0 {
		panic("limit 不能为负数")
	}
	if len(content) <= limit {
		return content
	}
	end := limit
	for end > 0 && !utf8.RuneStart(content[end]) {
		end--
	}
	return content[:end]
}
