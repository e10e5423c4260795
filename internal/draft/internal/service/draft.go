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

	"github.com/irantalent/estekhdam/internal/draft/internal/domain"
	"github.com/irantalent/estekhdam/internal/draft/internal/repository/cache"
)

type DraftService interface {
	Save(ctx context.Context, d domain.Draft) error
	Load(ctx context.Context, uid int64, step domain.Step) (string, error)
	// Clear 不传 step 时清掉这个用户所有步骤的草稿
	Clear(ctx context.Context, uid int64, step domain.Step) error
}

type draftService struct {
	cache cache.DraftCache
}

func NewDraftService(c cache.DraftCache) DraftService {
	return &draftService{cache: c}
}

func (s *draftService) Save(ctx context.Context, d domain.Draft) error {
	return s.cache.Set(ctx, d)
}

func (s *draftService) Load(ctx context.Context, uid int64, step domain.Step) (string, error) {
	return s.cache.Get(ctx, uid, step)
}

func (s *draftService) Clear(ctx context.Context, uid int64, step domain.Step) error {
	if step == "" {
		return s.cache.Delete(ctx, uid, domain.Steps)
	}
	return s.cache.Delete(ctx, uid, []domain.Step{step})
}
