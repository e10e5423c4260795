// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package user

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/irantalent/estekhdam/internal/user/internal/event"
	"github.com/irantalent/estekhdam/internal/user/internal/repository"
	"github.com/irantalent/estekhdam/internal/user/internal/repository/cache"
	"github.com/irantalent/estekhdam/internal/user/internal/repository/dao"
	"github.com/irantalent/estekhdam/internal/user/internal/service"
	"github.com/irantalent/estekhdam/internal/user/internal/web"
	"gorm.io/gorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ) (*Module, error) {
	userDAO := InitUserDAO(db)
	userCache := cache.NewUserECache(ec)
	userRepository := repository.NewCachedUserRepository(userDAO, userCache)
	registrationEventProducer, err := initRegistrationEventProducer(q)
	if err != nil {
		return nil, err
	}
	userService := service.NewUserService(userRepository, registrationEventProducer)
	v := web.NewHandler(userService)
	module := &Module{
		Hdl: v,
		Svc: userService,
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

func InitUserDAO(db *egorm.Component) dao.UserDAO {
	InitTableOnce(db)
	return dao.NewGORMUserDAO(db)
}

func initRegistrationEventProducer(q mq.MQ) (event.RegistrationEventProducer, error) {
	return event.NewRegistrationEventProducer(q)
}
