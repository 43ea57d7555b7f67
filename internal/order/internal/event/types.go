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

import "strconv"

const NotificationEventName = "notification_events"

const (
	NotificationTypeOrderShipped   = "order_shipped"
	NotificationTypeOrderCompleted = "order_completed"
	NotificationTypeOrderCanceled  = "order_canceled"
)

// NotificationEvent 由通知模块消费并写入站内信
type NotificationEvent struct {
	RecipientID int64  `json:"recipientId"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Message     string `json:"message"`
	Link        string `json:"link"`
}

func (e NotificationEvent) Key() string {
	return strconv.FormatInt(e.RecipientID, 10)
}
