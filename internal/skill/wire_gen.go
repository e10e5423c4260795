// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package skill

import (
	"github.com/ego-component/egorm"
	"github.com/irantalent/estekhdam/internal/skill/internal/repository"
	"github.com/irantalent/estekhdam/internal/skill/internal/repository/dao"
	"github.com/irantalent/estekhdam/internal/skill/internal/service"
	"github.com/irantalent/estekhdam/internal/skill/internal/web"
	"gorm.io/gorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *egorm.Component) (*Module, error) {
	skillDAO := InitSkillDAO(db)
	skillRepository := repository.NewSkillRepository(skillDAO)
	skillService := service.NewSkillService(skillRepository)
	v := web.NewHandler(skillService)
	module := &Module{
		Hdl: v,
		Svc: skillService,
	}
	return module, nil
}

// wire.go:

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
