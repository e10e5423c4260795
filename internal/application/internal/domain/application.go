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

package domain

import (
	"github.com/irantalent/estekhdam/internal/education"
	"github.com/irantalent/estekhdam/internal/profile"
	"github.com/irantalent/estekhdam/internal/skill"
	"github.com/irantalent/estekhdam/internal/work"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// CanTransitionTo 待审可以批可以拒，批和拒之间可以改，
// 但决定过的不能再退回待审
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusPending:
		return target == StatusApproved || target == StatusRejected
	case StatusApproved:
		return target == StatusRejected
	case StatusRejected:
		return target == StatusApproved
	default:
		return false
	}
}

// Snapshot 提交那一刻的完整申请材料
type Snapshot struct {
	Profile    profile.Profile       `json:"profile"`
	Educations []education.Education `json:"educations"`
	Works      []work.Work           `json:"works"`
	Skills     skill.SkillSet        `json:"skills"`
}

type Application struct {
	Id  int64
	Uid int64
	// SN 对外展示的流水号
	SN     string
	Status Status
	// Message 审核留言，批准或拒绝时管理员填写
	Message string
	// FirstName LastName 提交时落库，管理端按姓氏搜索
	FirstName string
	LastName  string
	Snapshot  Snapshot
	// DecidedAt 审核时间，没审核过是 0
	DecidedAt int64
	Ctime     int64
	Utime     int64
}

// Summary 申请人自己看到的状态摘要
type Summary struct {
	// Submitted 还没提交过申请时是 false，其余字段都是零值
	Submitted bool
	SN        string
	Status    Status
	Message   string
	CreatedAt int64
	DecidedAt int64
}
