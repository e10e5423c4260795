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
)

// Steps 向导里有草稿的几步，summary 没有草稿
var Steps = []Step{StepPersonalInfo, StepEducation, StepWork, StepSkill}

func (s Step) Valid() bool {
	for _, step := range Steps {
		if s == step {
			return true
		}
	}
	return false
}

// Draft 某一步还没有正式提交的内容，payload 原样存储
type Draft struct {
	Uid     int64
	Step    Step
	Payload string
}
