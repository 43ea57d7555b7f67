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
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	testHashKey = "pwFHCqoQZGmho4w6"
	testHashIV  = "EkRm7iFT261dpevs"
)

func TestSigner_Sign(t *testing.T) {
	testCases := []struct {
		name   string
		params map[string]string
		want   string
	}{
		{
			name: "下单表单",
			params: map[string]string{
				"TradeDesc":         "促銷方案",
				"PaymentType":       "aio",
				"MerchantTradeDate": "2023/03/12 15:30:23",
				"MerchantTradeNo":   "ecpay20230312153023",
				"MerchantID":        "3002607",
				"ReturnURL":         "https://www.ecpay.com.tw/receive.php",
				"ItemName":          "Apple iphone 15",
				"TotalAmount":       "30000",
				"ChoosePayment":     "ALL",
				"EncryptType":       "1",
			},
			want: "6C51C9E6888DE861FD62FB1DD17029FC742634498FD813DC43D4243B5685B840",
		},
		{
			name: "付款成功回调",
			params: map[string]string{
				"MerchantID":           "3002607",
				"MerchantTradeNo":      "ORD202405010001",
				"RtnCode":              "1",
				"RtnMsg":               "交易成功",
				"TradeNo":              "2405011234567890",
				"TradeAmt":             "1200",
				"PaymentDate":          "2024/05/01 12:34:56",
				"PaymentType":          "Credit_CreditCard",
				"PaymentTypeChargeFee": "25",
				"TradeDate":            "2024/05/01 12:30:00",
				"SimulatePaid":         "0",
				"CustomField1":         "shop",
				"CustomField2":         "",
				"CustomField3":         "",
				"CustomField4":         "",
				"StoreID":              "",
				"CheckMacValue":        "ignored",
			},
			want: "7D186A3C0C51AA0EDDFB035E49A2CC1FC1A01FB0CCC5A15E194BE597EBC667AE",
		},
	}
	s := NewSigner(testHashKey, testHashIV)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, s.Sign(tc.params))
		})
	}
}

func TestSigner_Verify(t *testing.T) {
	s := NewSigner(testHashKey, testHashIV)
	params := map[string]string{
		"MerchantID":      "3002607",
		"MerchantTradeNo": "DON202405010002",
		"RtnCode":         "1",
		"TradeAmt":        "500",
	}
	params[CheckMacValueKey] = s.Sign(params)
	assert.True(t, s.Verify(params))

	tampered := maps.Clone(params)
	tampered[CheckMacValueKey] = "x" + params[CheckMacValueKey][1:]
	assert.False(t, s.Verify(tampered))

	params["TradeAmt"] = "5000"
	assert.False(t, s.Verify(params))

	delete(params, CheckMacValueKey)
	assert.False(t, s.Verify(params))
}

func TestConfig_Gateway(t *testing.T) {
	assert.Equal(t, ProductionGatewayURL, Config{}.Gateway())
	assert.Equal(t, StageGatewayURL, Config{Sandbox: true}.Gateway())
	assert.Equal(t, "http://localhost:8080/mock", Config{Sandbox: true, GatewayURL: "http://localhost:8080/mock"}.Gateway())
}
