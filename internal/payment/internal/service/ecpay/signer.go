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

package ecpay

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"net/url"
	"slices"
	"strings"
)

const (
	CheckMacValueKey = "CheckMacValue"

	StageGatewayURL      = "https://payment-stage.ecpay.com.tw/Cashier/AioCheckOut/V5"
	ProductionGatewayURL = "https://payment.ecpay.com.tw/Cashier/AioCheckOut/V5"
)

type Config struct {
	MerchantID    string `yaml:"merchantID"`
	HashKey       string `yaml:"hashKey"`
	HashIV        string `yaml:"hashIV"`
	GatewayURL    string `yaml:"gatewayURL"`
	ReturnURL     string `yaml:"returnURL"`
	ClientBackURL string `yaml:"clientBackURL"`
	Sandbox       bool   `yaml:"sandbox"`
}

// Gateway 未显式配置 gatewayURL 时按 sandbox 选择
func (c Config) Gateway() string {
	switch {
	case c.GatewayURL != "":
		return c.GatewayURL
	case c.Sandbox:
		return StageGatewayURL
	default:
		return ProductionGatewayURL
	}
}

// dotNetEscaper 网关按 .NET UrlEncode 的规则编码，与 url.QueryEscape 有几个字符不同
var dotNetEscaper = strings.NewReplacer(
	"%2d", "-",
	"%5f", "_",
	"%2e", ".",
	"%21", "!",
	"%2a", "*",
	"%28", "(",
	"%29", ")",
	"~", "%7e",
)

// Signer 计算和校验 CheckMacValue（SHA256）
type Signer struct {
	hashKey string
	hashIV  string
}

func NewSigner(hashKey, hashIV string) *Signer {
	return &Signer{hashKey: hashKey, hashIV: hashIV}
}

func (s *Signer) Sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		if k == CheckMacValueKey {
			continue
		}
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	var sb strings.Builder
	sb.WriteString("HashKey=")
	sb.WriteString(s.hashKey)
	for _, k := range keys {
		sb.WriteByte('&')
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(params[k])
	}
	sb.WriteString("&HashIV=")
	sb.WriteString(s.hashIV)

	encoded := dotNetEscaper.Replace(strings.ToLower(url.QueryEscape(sb.String())))
	sum := sha256.Sum256([]byte(encoded))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

func (s *Signer) Verify(params map[string]string) bool {
	got := strings.ToUpper(params[CheckMacValueKey])
	if got == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(s.Sign(params))) == 1
}
