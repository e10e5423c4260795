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
	"context"
	"errors"

	"github.com/irantalent/estekhdam/internal/skill/internal/domain"
	"github.com/irantalent/estekhdam/internal/skill/internal/repository"
)

// ErrTooManyManagementSkills 管理技能超过上限
var ErrTooManyManagementSkills = errors.New("最多只能选三个管理技能")

type SkillService interface {
	// SaveAll 技能步骤整体保存，全量替换
	SaveAll(ctx context.Context, set domain.SkillSet) error
	Detail(ctx context.Context, uid int64) (domain.SkillSet, error)
}

type skillService struct {
	repo repository.SkillRepository
}

func NewSkillService(repo repository.SkillRepository) SkillService {
	return &skillService{repo: repo}
}

func (s *skillService) SaveAll(ctx context.Context, set domain.SkillSet) error {
	if len(set.Management) > domain.MaxManagementSkills {
		return ErrTooManyManagementSkills
	}
	return s.repo.Save(ctx, set)
}

func (s *skillService) Detail(ctx context.Context, uid int64) (domain.SkillSet, error) {
	return s.repo.FindByUid(ctx, uid)
}
