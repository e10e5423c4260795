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

package skill

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/irantalent/estekhdam/internal/skill/internal/repository"
	"github.com/irantalent/estekhdam/internal/skill/internal/repository/dao"
	"github.com/irantalent/estekhdam/internal/skill/internal/service"
	"github.com/irantalent/estekhdam/internal/skill/internal/web"
	"gorm.io/gorm"
)

func InitModule(db *egorm.Component) (*Module, error) {
	wire.Build(
		InitSkillDAO,
		repository.NewSkillRepository,
		service.NewSkillService,
		web.NewHandler,
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

func InitSkillDAO(db *egorm.Component) dao.SkillDAO {
	InitTableOnce(db)
	return dao.NewGORMSkillDAO(db)
}
