// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package startup

import (
	"github.com/ecodeclub/mq-api"
	"github.com/irantalent/estekhdam/internal/test/ioc"
	"github.com/irantalent/estekhdam/internal/user"
	"github.com/irantalent/estekhdam/internal/user/internal/event"
	"github.com/irantalent/estekhdam/internal/user/internal/repository"
	"github.com/irantalent/estekhdam/internal/user/internal/repository/cache"
	"github.com/irantalent/estekhdam/internal/user/internal/service"
	"github.com/irantalent/estekhdam/internal/user/internal/web"
)

// Injectors from wire.go:

func InitModule() (*user.Module, error) {
	v := testioc.InitDB()
	userDAO := user.InitUserDAO(v)
	ecacheCache := testioc.InitCache()
	userCache := cache.NewUserECache(ecacheCache)
	userRepository := repository.NewCachedUserRepository(userDAO, userCache)
	mq := testioc.InitMQ()
	registrationEventProducer, err := initProducer(mq)
	if err != nil {
		return nil, err
	}
	userService := service.NewUserService(userRepository, registrationEventProducer)
	v2 := web.NewHandler(userService)
	module := &user.Module{
		Hdl: v2,
		Svc: userService,
	}
	return module, nil
}

// wire.go:

func initProducer(q mq.MQ) (event.RegistrationEventProducer, error) {
	return event.NewRegistrationEventProducer(q)
}
