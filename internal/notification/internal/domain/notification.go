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

package domain

import (
	"errors"
	"strings"
)

var ErrInvalidNotification = errors.New("站内信缺少收件人或标题")

// Notification 站内信，ReadAt 为 0 表示未读
type Notification struct {
	ID          int64
	RecipientID int64
	Type        string
	Title       string
	Message     string
	Link        string
	ReadAt      int64
	Ctime       int64
}

func (n Notification) Validate() error {
	if n.RecipientID <= 0 || strings.TrimSpace(n.Title) == "" {
		return ErrInvalidNotification
	}
	return nil
}

func (n Notification) Read() bool {
	return n.ReadAt > 0
}
