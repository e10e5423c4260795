//go:build wireinject

package startup

import (
	"github.com/google/wire"
	testioc "github.com/irantalent/estekhdam/internal/test/ioc"
	"github.com/irantalent/estekhdam/internal/work"
	"github.com/irantalent/estekhdam/internal/work/internal/repository"
	"github.com/irantalent/estekhdam/internal/work/internal/service"
	"github.com/irantalent/estekhdam/internal/work/internal/web"
)

func InitModule() (*work.Module, error) {
	wire.Build(
		testioc.BaseSet,
		work.InitWorkDAO,
		repository.NewWorkRepository,
		service.NewWorkService,
		web.NewHandler,
		wire.Struct(new(work.Module), "*"),
	)
	return nil, nil
}
