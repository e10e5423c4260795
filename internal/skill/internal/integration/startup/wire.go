//go:build wireinject

package startup

import (
	"github.com/google/wire"
	"github.com/irantalent/estekhdam/internal/skill"
	"github.com/irantalent/estekhdam/internal/skill/internal/repository"
	"github.com/irantalent/estekhdam/internal/skill/internal/service"
	"github.com/irantalent/estekhdam/internal/skill/internal/web"
	testioc "github.com/irantalent/estekhdam/internal/test/ioc"
)

func InitModule() (*skill.Module, error) {
	wire.Build(
		testioc.BaseSet,
		skill.InitSkillDAO,
		repository.NewSkillRepository,
		service.NewSkillService,
		web.NewHandler,
		wire.Struct(new(skill.Module), "*"),
	)
	return nil, nil
}
