//go:build wireinject

package startup

import (
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
	testioc "github.com/irantalent/estekhdam/internal/test/ioc"
	"github.com/irantalent/estekhdam/internal/user"
	"github.com/irantalent/estekhdam/internal/user/internal/event"
	"github.com/irantalent/estekhdam/internal/user/internal/repository"
	"github.com/irantalent/estekhdam/internal/user/internal/repository/cache"
	"github.com/irantalent/estekhdam/internal/user/internal/service"
	"github.com/irantalent/estekhdam/internal/user/internal/web"
)

func InitModule() (*user.Module, error) {
	wire.Build(
		testioc.BaseSet,
		user.InitUserDAO,
		cache.NewUserECache,
		repository.NewCachedUserRepository,
		initProducer,
		service.NewUserService,
		web.NewHandler,
		wire.Struct(new(user.Module), "*"),
	)
	return nil, nil
}

func initProducer(q mq.MQ) (event.RegistrationEventProducer, error) {
	return event.NewRegistrationEventProducer(q)
}
