//go:build wireinject

package startup

import (
	"github.com/google/wire"
	"github.com/irantalent/estekhdam/internal/draft"
	"github.com/irantalent/estekhdam/internal/draft/internal/repository/cache"
	"github.com/irantalent/estekhdam/internal/draft/internal/service"
	"github.com/irantalent/estekhdam/internal/draft/internal/web"
	testioc "github.com/irantalent/estekhdam/internal/test/ioc"
)

func InitModule() (*draft.Module, error) {
	wire.Build(
		testioc.BaseSet,
		cache.NewDraftECache,
		service.NewDraftService,
		web.NewHandler,
		wire.Struct(new(draft.Module), "*"),
	)
	return nil, nil
}
