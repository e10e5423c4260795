// Copyright 2024 irantalent
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

package validate

import (
	"regexp"

	regexp2 "github.com/dlclark/regexp2"
)

// 各表单字段的格式校验。校验失败只会让提交被拒绝，
// 具体的波斯语提示文案由各模块的 errs 包负责。
const (
	// 密码规则：至少 8 位，必须包含大写、小写、数字和符号
	passwordRegexPattern = `^(?=.*[a-z])(?=.*[A-Z])(?=.*\d)(?=.*[\W_]).{8,}$`
	emailRegexPattern    = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`
)

var (
	// 伊朗国家身份码：10位数字
	nationalCodeRegexExp = regexp.MustCompile(`^[0-9]{10}$`)
	// 邮政编码：10位数字
	postalCodeRegexExp = regexp.MustCompile(`^[0-9]{10}$`)
	// 固定电话：11位数字
	phoneRegexExp = regexp.MustCompile(`^[0-9]{11}$`)
	// 手机号：09 开头再跟9位数字
	mobileRegexExp = regexp.MustCompile(`^09[0-9]{9}$`)
	emailRegexExp  = regexp.MustCompile(emailRegexPattern)
	// 密码用到了 lookahead，标准库 RE2 不支持
	passwordRegexExp = regexp2.MustCompile(passwordRegexPattern, regexp2.None)
)

func NationalCode(s string) bool {
	return nationalCodeRegexExp.MatchString(s)
}

func PostalCode(s string) bool {
	return postalCodeRegexExp.MatchString(s)
}

func Phone(s string) bool {
	return phoneRegexExp.MatchString(s)
}

func Mobile(s string) bool {
	return mobileRegexExp.MatchString(s)
}

func Email(s string) bool {
	return emailRegexExp.MatchString(s)
}

func Password(s string) bool {
	ok, err := passwordRegexExp.MatchString(s)
	if err != nil {
		return false
	}
	return ok
}

// StarLevel 星级评分必须落在 [1,5]
func StarLevel(level int) bool {
	return level >= 1 && level <= 5
}
