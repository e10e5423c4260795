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
	"github.com/irantalent/estekhdam/internal/work/internal/domain"
	"github.com/irantalent/estekhdam/internal/work/internal/repository/dao"
)

type WorkRepository interface {
	ReplaceAll(ctx context.Context, uid int64, entries []domain.Work) error
	FindByUid(ctx context.Context, uid int64) ([]domain.Work, error)
}

type workRepository struct {
	dao dao.WorkDAO
}

func NewWorkRepository(d dao.WorkDAO) WorkRepository {
	return &workRepository{dao: d}
}

func (r *workRepository) ReplaceAll(ctx context.Context, uid int64, entries []domain.Work) error {
	return r.dao.ReplaceAll(ctx, uid, slice.Map(entries, func(idx int, src domain.Work) dao.Work {
		return dao.Work{
			Company:           src.Company,
			JobTitle:          src.Position,
			Field:             src.Field,
			OrgLevel:          src.OrgLevel,
			CooperationType:   src.CooperationType,
			InsuranceMonths:   src.InsuranceMonths,
			StartDate:         src.StartDate,
			EndDate:           src.EndDate,
			StillWorking:      src.StillWorking,
			WorkPhone:         src.WorkPhone,
			LastSalary:        src.LastSalary,
			TerminationReason: src.TerminationReason,
			Description:       src.Description,
		}
	}))
}

func (r *workRepository) FindByUid(ctx context.Context, uid int64) ([]domain.Work, error) {
	entries, err := r.dao.FindByUid(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(entries, func(idx int, src dao.Work) domain.Work {
		return domain.Work{
			Id:                src.Id,
			Uid:               src.Uid,
			Company:           src.Company,
			Position:          src.JobTitle,
			Field:             src.Field,
			OrgLevel:          src.OrgLevel,
			CooperationType:   src.CooperationType,
			InsuranceMonths:   src.InsuranceMonths,
			StartDate:         src.StartDate,
			EndDate:           src.EndDate,
			StillWorking:      src.StillWorking,
			WorkPhone:         src.WorkPhone,
			LastSalary:        src.LastSalary,
			TerminationReason: src.TerminationReason,
			Description:       src.Description,
		}
	}), nil
}
