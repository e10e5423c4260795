// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package startup

import (
	"github.com/irantalent/estekhdam/internal/skill"
	"github.com/irantalent/estekhdam/internal/skill/internal/repository"
	"github.com/irantalent/estekhdam/internal/skill/internal/service"
	"github.com/irantalent/estekhdam/internal/skill/internal/web"
	"github.com/irantalent/estekhdam/internal/test/ioc"
)

// Injectors from wire.go:

func InitModule() (*skill.Module, error) {
	v := testioc.InitDB()
	skillDAO := skill.InitSkillDAO(v)
	skillRepository := repository.NewSkillRepository(skillDAO)
	skillService := service.NewSkillService(skillRepository)
	v2 := web.NewHandler(skillService)
	module := &skill.Module{
		Hdl: v2,
		Svc: skillService,
	}
	return module, nil
}
