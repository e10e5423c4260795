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

type Step string

const (
	StepPersonalInfo Step = "personal-info"
	StepEducation    Step = "education"
	StepWork         Step = "work"
	StepSkill        Step = "skill"
	StepSummary      Step = "summary"
)

// 向导严格线性，顺序固定
var order = []Step{
	StepPersonalInfo,
	StepEducation,
	StepWork,
	StepSkill,
	StepSummary,
}

func (s Step) Valid() bool {
	return s.index() >= 0
}

// Next 返回下一步，最后一步返回空
func (s Step) Next() Step {
	idx := s.index()
	if idx < 0 || idx == len(order)-1 {
		return ""
	}
	return order[idx+1]
}

// Prev 返回上一步，第一步返回空
func (s Step) Prev() Step {
	idx := s.index()
	if idx <= 0 {
		return ""
	}
	return order[idx-1]
}

func (s Step) index() int {
	for i, step := range order {
		if step == s {
			return i
		}
	}
	return -1
}

// StepView 某一步的初始状态
type StepView struct {
	Step Step
	Prev Step
	Next Step
	// FromDraft payload 是不是来自草稿
	FromDraft bool
	Payload   string
}
