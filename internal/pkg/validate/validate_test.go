package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNationalCode(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "合法的10位数字", input: "0453817591", want: true},
		{name: "少于10位", input: "123456789", want: false},
		{name: "多于10位", input: "12345678901", want: false},
		{name: "含字母", input: "12345a7890", want: false},
		{name: "空字符串", input: "", want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NationalCode(tc.input))
		})
	}
}

func TestMobile(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "合法手机号", input: "09123456789", want: true},
		{name: "不是09开头", input: "08123456789", want: false},
		{name: "位数不足", input: "0912345678", want: false},
		{name: "位数超出", input: "091234567890", want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Mobile(tc.input))
		})
	}
}

func TestPhone(t *testing.T) {
	assert.True(t, Phone("02112345678"))
	assert.False(t, Phone("0211234567"))
	assert.False(t, Phone("021-1234567"))
}

func TestEmail(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "普通邮箱", input: "ali@example.com", want: true},
		{name: "带点号", input: "ali.rezaei@mail.example.ir", want: true},
		{name: "没有@", input: "aliexample.com", want: false},
		{name: "没有域名", input: "ali@", want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Email(tc.input))
		})
	}
}

func TestPassword(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "四类字符齐全", input: "Abcdef1!", want: true},
		{name: "缺大写", input: "abcdef1!", want: false},
		{name: "缺小写", input: "ABCDEF1!", want: false},
		{name: "缺数字", input: "Abcdefg!", want: false},
		{name: "缺符号", input: "Abcdefg1", want: false},
		{name: "长度不足", input: "Abc1!", want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Password(tc.input))
		})
	}
}

func TestStarLevel(t *testing.T) {
	assert.False(t, StarLevel(0))
	assert.True(t, StarLevel(1))
	assert.True(t, StarLevel(5))
	assert.False(t, StarLevel(6))

	// 调用方传的是 VO 里的 int 字段
	level := struct{ Level int }{Level: 3}
	assert.True(t, StarLevel(level.Level))
	assert.False(t, StarLevel(-1))
}
