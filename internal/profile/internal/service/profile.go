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

	"github.com/irantalent/estekhdam/internal/profile/internal/domain"
	"github.com/irantalent/estekhdam/internal/profile/internal/repository"
)

type ProfileService interface {
	// Save 幂等，重复保存只有一行
	Save(ctx context.Context, p domain.Profile) (int64, error)
	// Profile 没有资料时返回空的默认值，不报错
	Profile(ctx context.Context, uid int64) (domain.Profile, error)
	Profiles(ctx context.Context, uids []int64) (map[int64]domain.Profile, error)
}

type profileService struct {
	repo repository.ProfileRepository
}

func NewProfileService(repo repository.ProfileRepository) ProfileService {
	return &profileService{repo: repo}
}

func (s *profileService) Save(ctx context.Context, p domain.Profile) (int64, error) {
	return s.repo.Save(ctx, p)
}

func (s *profileService) Profile(ctx context.Context, uid int64) (domain.Profile, error) {
	p, err := s.repo.FindByUid(ctx, uid)
	if errors.Is(err, repository.ErrProfileNotFound) {
		// 还没填过，空状态
		return domain.Profile{Uid: uid}, nil
	}
	return p, err
}

func (s *profileService) Profiles(ctx context.Context, uids []int64) (map[int64]domain.Profile, error) {
	ps, err := s.repo.FindByUids(ctx, uids)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]domain.Profile, len(ps))
	for _, p := range ps {
		res[p.Uid] = p
	}
	return res, nil
}
