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

	"github.com/irantalent/estekhdam/internal/work/internal/domain"
	"github.com/irantalent/estekhdam/internal/work/internal/repository"
)

type WorkService interface {
	Save(ctx context.Context, uid int64, entries []domain.Work) error
	List(ctx context.Context, uid int64) ([]domain.Work, error)
	Delete(ctx context.Context, uid int64, index int) ([]domain.Work, error)
}

type workService struct {
	repo repository.WorkRepository
}

func NewWorkService(repo repository.WorkRepository) WorkService {
	return &workService{repo: repo}
}

func (s *workService) Save(ctx context.Context, uid int64, entries []domain.Work) error {
	return s.repo.ReplaceAll(ctx, uid, entries)
}

func (s *workService) List(ctx context.Context, uid int64) ([]domain.Work, error) {
	return s.repo.FindByUid(ctx, uid)
}

func (s *workService) Delete(ctx context.Context, uid int64, index int) ([]domain.Work, error) {
	entries, err := s.repo.FindByUid(ctx, uid)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(entries) {
		return entries, nil
	}
	entries = append(entries[:index], entries[index+1:]...)
	err = s.repo.ReplaceAll(ctx, uid, entries)
	if err != nil {
		return nil, err
	}
	return entries, nil
}
