//go:build wireinject

package startup

import (
	"github.com/google/wire"
	"github.com/irantalent/estekhdam/internal/profile"
	"github.com/irantalent/estekhdam/internal/profile/internal/repository"
	"github.com/irantalent/estekhdam/internal/profile/internal/service"
	"github.com/irantalent/estekhdam/internal/profile/internal/web"
	testioc "github.com/irantalent/estekhdam/internal/test/ioc"
)

func InitModule() (*profile.Module, error) {
	wire.Build(
		testioc.BaseSet,
		profile.InitProfileDAO,
		repository.NewProfileRepository,
		service.NewProfileService,
		web.NewHandler,
		wire.Struct(new(profile.Module), "*"),
	)
	return nil, nil
}
