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

package repository

import (
	"context"

	"github.com/irantalent/estekhdam/internal/skill/internal/domain"
	"github.com/irantalent/estekhdam/internal/skill/internal/repository/dao"
)

type SkillRepository interface {
	Save(ctx context.Context, set domain.SkillSet) error
	FindByUid(ctx context.Context, uid int64) (domain.SkillSet, error)
}

type skillRepository struct {
	dao dao.SkillDAO
}

func NewSkillRepository(d dao.SkillDAO) SkillRepository {
	return &skillRepository{dao: d}
}

func (r *skillRepository) Save(ctx context.Context, set domain.SkillSet) error {
	rows := make([]dao.Skill, 0,
		len(set.Technical)+len(set.Languages)+len(set.Management)+1)
	for _, t := range set.Technical {
		rows = append(rows, dao.Skill{
			Kind:  dao.KindTechnical,
			Name:  t.Name,
			Level: t.Level,
		})
	}
	for _, l := range set.Languages {
		rows = append(rows, dao.Skill{
			Kind:          dao.KindLanguage,
			Language:      l.Language,
			Reading:       string(l.Reading),
			Writing:       string(l.Writing),
			Speaking:      string(l.Speaking),
			Comprehension: string(l.Comprehension),
		})
	}
	for _, m := range set.Management {
		rows = append(rows, dao.Skill{
			Kind:  dao.KindManagement,
			Name:  m.Name,
			Level: m.Level,
		})
	}
	if set.Resume != nil {
		rows = append(rows, dao.Skill{
			Kind:         dao.KindResume,
			ResumeName:   set.Resume.Filename,
			ResumeBase64: set.Resume.Data,
		})
	}
	return r.dao.ReplaceAll(ctx, set.Uid, rows)
}

func (r *skillRepository) FindByUid(ctx context.Context, uid int64) (domain.SkillSet, error) {
	rows, err := r.dao.FindByUid(ctx, uid)
	if err != nil {
		return domain.SkillSet{}, err
	}
	set := domain.SkillSet{Uid: uid}
	for _, row := range rows {
		switch row.Kind {
		case dao.KindTechnical:
			set.Technical = append(set.Technical, domain.TechnicalSkill{
				Name:  row.Name,
				Level: row.Level,
			})
		case dao.KindLanguage:
			set.Languages = append(set.Languages, domain.LanguageSkill{
				Language:      row.Language,
				Reading:       domain.Proficiency(row.Reading),
				Writing:       domain.Proficiency(row.Writing),
				Speaking:      domain.Proficiency(row.Speaking),
				Comprehension: domain.Proficiency(row.Comprehension),
			})
		case dao.KindManagement:
			set.Management = append(set.Management, domain.ManagementSkill{
				Name:  row.Name,
				Level: row.Level,
			})
		case dao.KindResume:
			set.Resume = &domain.ResumeFile{
				Filename: row.ResumeName,
				Data:     row.ResumeBase64,
			}
		}
	}
	return set, nil
}
