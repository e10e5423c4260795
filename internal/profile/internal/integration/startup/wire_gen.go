// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package startup

import (
	"github.com/irantalent/estekhdam/internal/profile"
	"github.com/irantalent/estekhdam/internal/profile/internal/repository"
	"github.com/irantalent/estekhdam/internal/profile/internal/service"
	"github.com/irantalent/estekhdam/internal/profile/internal/web"
	"github.com/irantalent/estekhdam/internal/test/ioc"
)

// Injectors from wire.go:

func InitModule() (*profile.Module, error) {
	v := testioc.InitDB()
	profileDAO := profile.InitProfileDAO(v)
	profileRepository := repository.NewProfileRepository(profileDAO)
	profileService := service.NewProfileService(profileRepository)
	v2 := web.NewHandler(profileService)
	module := &profile.Module{
		Hdl: v2,
		Svc: profileService,
	}
	return module, nil
}
