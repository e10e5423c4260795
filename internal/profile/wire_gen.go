// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package profile

import (
	"github.com/ego-component/egorm"
	"github.com/irantalent/estekhdam/internal/profile/internal/repository"
	"github.com/irantalent/estekhdam/internal/profile/internal/repository/dao"
	"github.com/irantalent/estekhdam/internal/profile/internal/service"
	"github.com/irantalent/estekhdam/internal/profile/internal/web"
	"gorm.io/gorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *egorm.Component) (*Module, error) {
	profileDAO := InitProfileDAO(db)
	profileRepository := repository.NewProfileRepository(profileDAO)
	profileService := service.NewProfileService(profileRepository)
	v := web.NewHandler(profileService)
	module := &Module{
		Hdl: v,
		Svc: profileService,
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

func InitProfileDAO(db *egorm.Component) dao.ProfileDAO {
	InitTableOnce(db)
	return dao.NewGORMProfileDAO(db)
}
