// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package work

import (
	"github.com/ego-component/egorm"
	"github.com/irantalent/estekhdam/internal/work/internal/repository"
	"github.com/irantalent/estekhdam/internal/work/internal/repository/dao"
	"github.com/irantalent/estekhdam/internal/work/internal/service"
	"github.com/irantalent/estekhdam/internal/work/internal/web"
	"gorm.io/gorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *egorm.Component) (*Module, error) {
	workDAO := InitWorkDAO(db)
	workRepository := repository.NewWorkRepository(workDAO)
	workService := service.NewWorkService(workRepository)
	v := web.NewHandler(workService)
	module := &Module{
		Hdl: v,
		Svc: workService,
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

func InitWorkDAO(db *egorm.Component) dao.WorkDAO {
	InitTableOnce(db)
	return dao.NewGORMWorkDAO(db)
}
