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

	"github.com/irantalent/estekhdam/internal/education/internal/domain"
	"github.com/irantalent/estekhdam/internal/education/internal/repository"
)

type EducationService interface {
	// Save 整个列表全量替换
	Save(ctx context.Context, uid int64, entries []domain.Education) error
	List(ctx context.Context, uid int64) ([]domain.Education, error)
	// Delete 删掉指定位置，其余保持相对顺序重新落库
	Delete(ctx context.Context, uid int64, index int) ([]domain.Education, error)
}

type educationService struct {
	repo repository.EducationRepository
}

func NewEducationService(repo repository.EducationRepository) EducationService {
	return &educationService{repo: repo}
}

func (s *educationService) Save(ctx context.Context, uid int64, entries []domain.Education) error {
	return s.repo.ReplaceAll(ctx, uid, entries)
}

func (s *educationService) List(ctx context.Context, uid int64) ([]domain.Education, error) {
	return s.repo.FindByUid(ctx, uid)
}

func (s *educationService) Delete(ctx context.Context, uid int64, index int) ([]domain.Education, error) {
	entries, err := s.repo.FindByUid(ctx, uid)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(entries) {
		// 位置不存在就当什么都没发生
		return entries, nil
	}
	entries = append(entries[:index], entries[index+1:]...)
	err = s.repo.ReplaceAll(ctx, uid, entries)
	if err != nil {
		return nil, err
	}
	return entries, nil
}
