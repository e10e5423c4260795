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

//go:build wireinject

package application

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/irantalent/estekhdam/internal/application/internal/event"
	"github.com/irantalent/estekhdam/internal/application/internal/repository"
	"github.com/irantalent/estekhdam/internal/application/internal/repository/cache"
	"github.com/irantalent/estekhdam/internal/application/internal/repository/dao"
	"github.com/irantalent/estekhdam/internal/application/internal/service"
	"github.com/irantalent/estekhdam/internal/application/internal/web"
	"github.com/irantalent/estekhdam/internal/education"
	"github.com/irantalent/estekhdam/internal/pkg/pdf"
	"github.com/irantalent/estekhdam/internal/pkg/sngenerator"
	"github.com/irantalent/estekhdam/internal/profile"
	"github.com/irantalent/estekhdam/internal/skill"
	"github.com/irantalent/estekhdam/internal/work"
	"gorm.io/gorm"
)

func InitModule(db *egorm.Component,
	ec ecache.Cache,
	q mq.MQ,
	converter pdf.Converter,
	profileModule *profile.Module,
	educationModule *education.Module,
	workModule *work.Module,
	skillModule *skill.Module) (*Module, error) {
	wire.Build(
		InitApplicationDAO,
		cache.NewSummaryECache,
		repository.NewCachedApplicationRepository,
		sngenerator.NewSequenceNumberGenerator,
		event.NewDecisionEventProducer,
		event.NewDecisionEventConsumer,
		service.NewSnapshotComposer,
		service.NewApplicationService,
		service.NewResumeService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.FieldsOf(new(*profile.Module), "Svc"),
		wire.FieldsOf(new(*education.Module), "Svc"),
		wire.FieldsOf(new(*work.Module), "Svc"),
		wire.FieldsOf(new(*skill.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return nil, nil
}

var daoOnce = sync.Once{}

func InitTableOnce(db *gorm.DB) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func InitApplicationDAO(db *egorm.Component) dao.ApplicationDAO {
	InitTableOnce(db)
	return dao.NewGORMApplicationDAO(db)
}
