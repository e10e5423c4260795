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
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/irantalent/estekhdam/internal/application/internal/domain"
	"github.com/irantalent/estekhdam/internal/application/internal/repository/cache"
	"github.com/irantalent/estekhdam/internal/application/internal/repository/dao"
)

var (
	ErrApplicationNotFound = dao.ErrRecordNotFound
	ErrApplicationExists   = dao.ErrApplicationExists
)

type ApplicationRepository interface {
	Create(ctx context.Context, app domain.Application) (int64, error)
	FindByUid(ctx context.Context, uid int64) (domain.Application, error)
	FindById(ctx context.Context, id int64) (domain.Application, error)
	UpdateDecision(ctx context.Context, id int64, status domain.Status, message string, decidedAt int64) error
	List(ctx context.Context, offset, limit int, status domain.Status, lastName string) ([]domain.Application, error)
	Count(ctx context.Context, status domain.Status, lastName string) (int64, error)
	// Summary 读缓存，未命中落库再回填。没提交过申请也缓存空摘要
	Summary(ctx context.Context, uid int64) (domain.Summary, error)
	EvictSummary(ctx context.Context, uid int64) error
}

type CachedApplicationRepository struct {
	dao   dao.ApplicationDAO
	cache cache.SummaryCache
}

func NewCachedApplicationRepository(d dao.ApplicationDAO, c cache.SummaryCache) ApplicationRepository {
	return &CachedApplicationRepository{
		dao:   d,
		cache: c,
	}
}

func (r *CachedApplicationRepository) Create(ctx context.Context, app domain.Application) (int64, error) {
	id, err := r.dao.Insert(ctx, r.toEntity(app))
	if err != nil {
		return 0, err
	}
	// 提交后的第一次摘要查询要看到 pending
	_ = r.cache.Delete(ctx, app.Uid)
	return id, nil
}

func (r *CachedApplicationRepository) FindByUid(ctx context.Context, uid int64) (domain.Application, error) {
	app, err := r.dao.FindByUid(ctx, uid)
	return r.toDomain(app), err
}

func (r *CachedApplicationRepository) FindById(ctx context.Context, id int64) (domain.Application, error) {
	app, err := r.dao.FindById(ctx, id)
	return r.toDomain(app), err
}

func (r *CachedApplicationRepository) UpdateDecision(ctx context.Context,
	id int64, status domain.Status, message string, decidedAt int64) error {
	return r.dao.UpdateDecision(ctx, id, string(status), message, decidedAt)
}

func (r *CachedApplicationRepository) List(ctx context.Context,
	offset, limit int, status domain.Status, lastName string) ([]domain.Application, error) {
	apps, err := r.dao.List(ctx, offset, limit, string(status), lastName)
	if err != nil {
		return nil, err
	}
	return slice.Map(apps, func(idx int, src dao.Application) domain.Application {
		return r.toDomain(src)
	}), nil
}

func (r *CachedApplicationRepository) Count(ctx context.Context, status domain.Status, lastName string) (int64, error) {
	return r.dao.Count(ctx, string(status), lastName)
}

func (r *CachedApplicationRepository) Summary(ctx context.Context, uid int64) (domain.Summary, error) {
	summary, err := r.cache.Get(ctx, uid)
	if err == nil {
		return summary, nil
	}
	app, err := r.dao.FindByUid(ctx, uid)
	switch {
	case err == nil:
		summary = domain.Summary{
			Submitted: true,
			SN:        app.SN,
			Status:    domain.Status(app.Status),
			Message:   app.Message,
			CreatedAt: app.Ctime,
			DecidedAt: app.DecidedAt,
		}
	case errors.Is(err, dao.ErrRecordNotFound):
		summary = domain.Summary{}
	default:
		return domain.Summary{}, err
	}
	_ = r.cache.Set(ctx, uid, summary)
	return summary, nil
}

func (r *CachedApplicationRepository) EvictSummary(ctx context.Context, uid int64) error {
	return r.cache.Delete(ctx, uid)
}

func (r *CachedApplicationRepository) toEntity(app domain.Application) dao.Application {
	return dao.Application{
		Id:        app.Id,
		Uid:       app.Uid,
		SN:        app.SN,
		Status:    string(app.Status),
		Message:   app.Message,
		FirstName: app.FirstName,
		LastName:  app.LastName,
		Snapshot: sqlx.JsonColumn[domain.Snapshot]{
			Val:   app.Snapshot,
			Valid: true,
		},
		DecidedAt: app.DecidedAt,
	}
}

func (r *CachedApplicationRepository) toDomain(app dao.Application) domain.Application {
	return domain.Application{
		Id:        app.Id,
		Uid:       app.Uid,
		SN:        app.SN,
		Status:    domain.Status(app.Status),
		Message:   app.Message,
		FirstName: app.FirstName,
		LastName:  app.LastName,
		Snapshot:  app.Snapshot.Val,
		DecidedAt: app.DecidedAt,
		Ctime:     app.Ctime,
		Utime:     app.Utime,
	}
}
