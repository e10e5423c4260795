package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCanTransitionTo(t *testing.T) {
	testCases := []struct {
		name   string
		from   Status
		to     Status
		wanted bool
	}{
		{name: "待审可以批准", from: StatusPending, to: StatusApproved, wanted: true},
		{name: "待审可以拒绝", from: StatusPending, to: StatusRejected, wanted: true},
		{name: "批准可以改成拒绝", from: StatusApproved, to: StatusRejected, wanted: true},
		{name: "拒绝可以改成批准", from: StatusRejected, to: StatusApproved, wanted: true},
		{name: "批准不能退回待审", from: StatusApproved, to: StatusPending, wanted: false},
		{name: "拒绝不能退回待审", from: StatusRejected, to: StatusPending, wanted: false},
		{name: "待审不能原地踏步", from: StatusPending, to: StatusPending, wanted: false},
		{name: "未知状态哪也去不了", from: Status("whatever"), to: StatusApproved, wanted: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wanted, tc.from.CanTransitionTo(tc.to))
		})
	}
}
