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

// MaxManagementSkills 管理技能最多选三个
const MaxManagementSkills = 3

type Proficiency string

const (
	ProficiencyWeak      Proficiency = "weak"
	ProficiencyMedium    Proficiency = "medium"
	ProficiencyExcellent Proficiency = "excellent"
)

func (p Proficiency) Valid() bool {
	return p == ProficiencyWeak || p == ProficiencyMedium || p == ProficiencyExcellent
}

// ManagementCatalog 管理技能只能从这个目录里选
var ManagementCatalog = []string{
	"رهبری",
	"مدیریت پروژه",
	"مدیریت زمان",
	"برنامه‌ریزی",
	"مذاکره",
	"کار تیمی",
	"حل مسئله",
	"تصمیم‌گیری",
}

func InManagementCatalog(name string) bool {
	for _, c := range ManagementCatalog {
		if c == name {
			return true
		}
	}
	return false
}

type TechnicalSkill struct {
	Name string
	// Level 1 到 5 星
	Level int
}

type LanguageSkill struct {
	Language      string
	Reading       Proficiency
	Writing       Proficiency
	Speaking      Proficiency
	Comprehension Proficiency
}

type ManagementSkill struct {
	Name  string
	Level int
}

// ResumeFile 简历附件，data URL 形式存储
type ResumeFile struct {
	Filename string
	Data     string
}

// SkillSet 技能步骤的全部内容，保存时整体替换
type SkillSet struct {
	Uid        int64
	Technical  []TechnicalSkill
	Languages  []LanguageSkill
	Management []ManagementSkill
	// Resume 可选
	Resume *ResumeFile
}
