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

	"github.com/ecodeclub/ekit/slice"
	"github.com/irantalent/estekhdam/internal/education/internal/domain"
	"github.com/irantalent/estekhdam/internal/education/internal/repository/dao"
)

type EducationRepository interface {
	ReplaceAll(ctx context.Context, uid int64, entries []domain.Education) error
	FindByUid(ctx context.Context, uid int64) ([]domain.Education, error)
}

type educationRepository struct {
	dao dao.EducationDAO
}

func NewEducationRepository(d dao.EducationDAO) EducationRepository {
	return &educationRepository{dao: d}
}

func (r *educationRepository) ReplaceAll(ctx context.Context, uid int64, entries []domain.Education) error {
	return r.dao.ReplaceAll(ctx, uid, slice.Map(entries, func(idx int, src domain.Education) dao.Education {
		return dao.Education{
			Degree:          src.Degree,
			FieldOfStudy:    src.FieldOfStudy,
			Specialization:  src.Specialization,
			InstitutionType: src.InstitutionType,
			InstitutionName: src.InstitutionName,
			Grade:           src.Grade,
			StartDate:       src.StartDate,
			EndDate:         src.EndDate,
			StillStudying:   src.StillStudying,
			Description:     src.Description,
		}
	}))
}

func (r *educationRepository) FindByUid(ctx context.Context, uid int64) ([]domain.Education, error) {
	entries, err := r.dao.FindByUid(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(entries, func(idx int, src dao.Education) domain.Education {
		return domain.Education{
			Id:              src.Id,
			Uid:             src.Uid,
			Degree:          src.Degree,
			FieldOfStudy:    src.FieldOfStudy,
			Specialization:  src.Specialization,
			InstitutionType: src.InstitutionType,
			InstitutionName: src.InstitutionName,
			Grade:           src.Grade,
			StartDate:       src.StartDate,
			EndDate:         src.EndDate,
			StillStudying:   src.StillStudying,
			Description:     src.Description,
		}
	}), nil
}
