//go:build wireinject

package startup

import (
	"github.com/google/wire"
	"github.com/irantalent/estekhdam/internal/education"
	"github.com/irantalent/estekhdam/internal/education/internal/repository"
	"github.com/irantalent/estekhdam/internal/education/internal/service"
	"github.com/irantalent/estekhdam/internal/education/internal/web"
	testioc "github.com/irantalent/estekhdam/internal/test/ioc"
)

func InitModule() (*education.Module, error) {
	wire.Build(
		testioc.BaseSet,
		education.InitEducationDAO,
		repository.NewEducationRepository,
		service.NewEducationService,
		web.NewHandler,
		wire.Struct(new(education.Module), "*"),
	)
	return nil, nil
}
