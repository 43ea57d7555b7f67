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
	"github.com/ecodeclub/pawmall/internal/pkg/tradeno"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

func InitTradeNoIssuer() *tradeno.Issuer {
	name := econf.GetString("tradeNo.timezone")
	loc, err := tradeno.LoadLocation(name)
	if err != nil {
		// 时区决定单号里的日期，加载失败不能带病启动
		elog.Panic("加载交易编号时区失败", elog.String("timezone", name), elog.FieldErr(err))
	}
	return tradeno.NewIssuer(loc)
}
