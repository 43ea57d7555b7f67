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

package web

import (
	"net/url"
	"strconv"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/pawmall/internal/notification/internal/domain"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

type Page struct {
	Offset int
	Limit  int
}

// pageOf 从查询参数中读取分页，非法值使用默认值
func pageOf(q url.Values) Page {
	offset, _ := strconv.Atoi(q.Get("offset"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > maxLimit {
		limit = defaultLimit
	}
	return Page{Offset: offset, Limit: limit}
}

type ReadReq struct {
	// IDs 为空表示全部已读
	IDs []int64 `json:"ids,omitempty"`
}

type ReadResp struct {
	Updated int64 `json:"updated"`
}

type Notification struct {
	ID      int64  `json:"id"`
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message,omitempty"`
	Link    string `json:"link,omitempty"`
	Read    bool   `json:"read"`
	ReadAt  int64  `json:"read_at,omitempty"`
	Ctime   int64  `json:"ctime"`
}

type NotificationList struct {
	Unread        int64          `json:"unread"`
	Notifications []Notification `json:"notifications"`
}

func newNotificationList(ns []domain.Notification, unread int64) NotificationList {
	return NotificationList{
		Unread: unread,
		Notifications: slice.Map(ns, func(_ int, n domain.Notification) Notification {
			return Notification{
				ID:      n.ID,
				Type:    n.Type,
				Title:   n.Title,
				Message: n.Message,
				Link:    n.Link,
				Read:    n.Read(),
				ReadAt:  n.ReadAt,
				Ctime:   n.Ctime,
			}
		}),
	}
}
