// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package education

import (
	"github.com/ego-component/egorm"
	"github.com/irantalent/estekhdam/internal/education/internal/repository"
	"github.com/irantalent/estekhdam/internal/education/internal/repository/dao"
	"github.com/irantalent/estekhdam/internal/education/internal/service"
	"github.com/irantalent/estekhdam/internal/education/internal/web"
	"gorm.io/gorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *egorm.Component) (*Module, error) {
	educationDAO := InitEducationDAO(db)
	educationRepository := repository.NewEducationRepository(educationDAO)
	educationService := service.NewEducationService(educationRepository)
	v := web.NewHandler(educationService)
	module := &Module{
		Hdl: v,
		Svc: educationService,
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

func InitEducationDAO(db *egorm.Component) dao.EducationDAO {
	InitTableOnce(db)
	return dao.NewGORMEducationDAO(db)
}
