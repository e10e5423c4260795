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

package service

import (
	"github.com/irantalent/estekhdam/internal/pkg/validate"
	"github.com/irantalent/estekhdam/internal/profile"
	"github.com/irantalent/estekhdam/internal/skill"
)

// 提交步骤前的整体校验。规则和各模块的独立接口一致，
// 这里只挡掉不合法的提交，逐字段的波斯语提示走独立接口。

func (p personalInfoPayload) valid() bool {
	switch {
	case p.FirstName == "", p.LastName == "":
		return false
	case !validate.NationalCode(p.NationalCode):
		return false
	case p.BirthDate == "":
		return false
	case !profile.Gender(p.Gender).Valid():
		return false
	case p.Religion != "" && !profile.Religion(p.Religion).Valid():
		return false
	case !profile.MaritalStatus(p.MaritalStatus).Valid():
		return false
	case p.SiblingCount < 0, p.ChildrenCount < 0:
		return false
	case !validate.PostalCode(p.PostalCode):
		return false
	case p.Phone != "" && !validate.Phone(p.Phone):
		return false
	case !validate.Mobile(p.Mobile):
		return false
	case !validate.Email(p.Email):
		return false
	case p.EmergencyPhone != "" && !validate.Phone(p.EmergencyPhone) && !validate.Mobile(p.EmergencyPhone):
		return false
	}
	return true
}

func (p educationPayload) valid() bool {
	for _, entry := range p.Entries {
		if entry.Degree == "" || entry.InstitutionName == "" || entry.StartDate == "" {
			return false
		}
		if entry.EndDate == "" && !entry.StillStudying {
			return false
		}
	}
	return true
}

func (p workPayload) valid() bool {
	for _, entry := range p.Entries {
		if entry.Company == "" || entry.Position == "" || entry.StartDate == "" {
			return false
		}
		if entry.EndDate == "" && !entry.StillWorking {
			return false
		}
		if entry.InsuranceMonths < 0 || entry.LastSalary < 0 {
			return false
		}
		if entry.WorkPhone != "" && !validate.Phone(entry.WorkPhone) {
			return false
		}
	}
	return true
}

func (p skillPayload) valid() bool {
	for _, t := range p.Technical {
		if t.Name == "" || !validate.StarLevel(t.Level) {
			return false
		}
	}
	for _, l := range p.Languages {
		if l.Language == "" {
			return false
		}
		for _, prof := range []string{l.Reading, l.Writing, l.Speaking, l.Comprehension} {
			if !skill.Proficiency(prof).Valid() {
				return false
			}
		}
	}
	seen := make(map[string]struct{}, len(p.Management))
	for _, m := range p.Management {
		if !skill.InManagementCatalog(m.Name) || !validate.StarLevel(m.Level) {
			return false
		}
		if _, ok := seen[m.Name]; ok {
			return false
		}
		seen[m.Name] = struct{}{}
	}
	if p.Resume != nil && p.Resume.Filename == "" {
		return false
	}
	return true
}
