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
	"github.com/irantalent/estekhdam/internal/profile/internal/domain"
	"github.com/irantalent/estekhdam/internal/profile/internal/repository/dao"
)

var ErrProfileNotFound = dao.ErrRecordNotFound

type ProfileRepository interface {
	Save(ctx context.Context, p domain.Profile) (int64, error)
	FindByUid(ctx context.Context, uid int64) (domain.Profile, error)
	FindByUids(ctx context.Context, uids []int64) ([]domain.Profile, error)
}

type profileRepository struct {
	dao dao.ProfileDAO
}

func NewProfileRepository(d dao.ProfileDAO) ProfileRepository {
	return &profileRepository{dao: d}
}

func (r *profileRepository) Save(ctx context.Context, p domain.Profile) (int64, error) {
	return r.dao.Upsert(ctx, r.toEntity(p))
}

func (r *profileRepository) FindByUid(ctx context.Context, uid int64) (domain.Profile, error) {
	p, err := r.dao.FindByUid(ctx, uid)
	if err != nil {
		return domain.Profile{}, err
	}
	return r.toDomain(p), nil
}

func (r *profileRepository) FindByUids(ctx context.Context, uids []int64) ([]domain.Profile, error) {
	ps, err := r.dao.FindByUids(ctx, uids)
	if err != nil {
		return nil, err
	}
	return slice.Map(ps, func(idx int, src dao.Profile) domain.Profile {
		return r.toDomain(src)
	}), nil
}

func (r *profileRepository) toEntity(p domain.Profile) dao.Profile {
	return dao.Profile{
		Id:                p.Id,
		Uid:               p.Uid,
		FirstName:         p.FirstName,
		LastName:          p.LastName,
		NationalCode:      p.NationalCode,
		BirthDate:         p.BirthDate,
		BirthPlace:        p.BirthPlace,
		IssuingPlace:      p.IssuingPlace,
		Gender:            string(p.Gender),
		Religion:          string(p.Religion),
		MaritalStatus:     string(p.MaritalStatus),
		FatherName:        p.FatherName,
		FatherJob:         p.FatherJob,
		FatherEducation:   p.FatherEducation,
		MotherName:        p.MotherName,
		MotherJob:         p.MotherJob,
		MotherEducation:   p.MotherEducation,
		SiblingCount:      p.SiblingCount,
		ChildrenCount:     p.ChildrenCount,
		Province:          p.Province,
		City:              p.City,
		Address:           p.Address,
		PostalCode:        p.PostalCode,
		Phone:             p.Phone,
		Mobile:            p.Mobile,
		Email:             p.Email,
		EmergencyName:     p.EmergencyName,
		EmergencyRelation: p.EmergencyRelation,
		EmergencyPhone:    p.EmergencyPhone,
		Avatar:            p.Avatar,
	}
}

func (r *profileRepository) toDomain(p dao.Profile) domain.Profile {
	return domain.Profile{
		Id:                p.Id,
		Uid:               p.Uid,
		FirstName:         p.FirstName,
		LastName:          p.LastName,
		NationalCode:      p.NationalCode,
		BirthDate:         p.BirthDate,
		BirthPlace:        p.BirthPlace,
		IssuingPlace:      p.IssuingPlace,
		Gender:            domain.Gender(p.Gender),
		Religion:          domain.Religion(p.Religion),
		MaritalStatus:     domain.MaritalStatus(p.MaritalStatus),
		FatherName:        p.FatherName,
		FatherJob:         p.FatherJob,
		FatherEducation:   p.FatherEducation,
		MotherName:        p.MotherName,
		MotherJob:         p.MotherJob,
		MotherEducation:   p.MotherEducation,
		SiblingCount:      p.SiblingCount,
		ChildrenCount:     p.ChildrenCount,
		Province:          p.Province,
		City:              p.City,
		Address:           p.Address,
		PostalCode:        p.PostalCode,
		Phone:             p.Phone,
		Mobile:            p.Mobile,
		Email:             p.Email,
		EmergencyName:     p.EmergencyName,
		EmergencyRelation: p.EmergencyRelation,
		EmergencyPhone:    p.EmergencyPhone,
		Avatar:            p.Avatar,
		Utime:             p.Utime,
	}
}
