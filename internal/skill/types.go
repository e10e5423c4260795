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

package skill

import (
	"github.com/irantalent/estekhdam/internal/skill/internal/domain"
	"github.com/irantalent/estekhdam/internal/skill/internal/service"
	"github.com/irantalent/estekhdam/internal/skill/internal/web"
)

// ErrTooManyManagementSkills 管理技能超过上限
var ErrTooManyManagementSkills = service.ErrTooManyManagementSkills

// InManagementCatalog 名称是否在管理技能清单里
var InManagementCatalog = domain.InManagementCatalog

type Handler = web.Handler
type SkillSet = domain.SkillSet
type TechnicalSkill = domain.TechnicalSkill
type LanguageSkill = domain.LanguageSkill
type ManagementSkill = domain.ManagementSkill
type ResumeFile = domain.ResumeFile
type Proficiency = domain.Proficiency
type SkillService = service.SkillService

type Module struct {
	Hdl *Handler
	Svc SkillService
}
