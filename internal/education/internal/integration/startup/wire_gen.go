// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package startup

import (
	"github.com/irantalent/estekhdam/internal/education"
	"github.com/irantalent/estekhdam/internal/education/internal/repository"
	"github.com/irantalent/estekhdam/internal/education/internal/service"
	"github.com/irantalent/estekhdam/internal/education/internal/web"
	"github.com/irantalent/estekhdam/internal/test/ioc"
)

// Injectors from wire.go:

func InitModule() (*education.Module, error) {
	v := testioc.InitDB()
	educationDAO := education.InitEducationDAO(v)
	educationRepository := repository.NewEducationRepository(educationDAO)
	educationService := service.NewEducationService(educationRepository)
	v2 := web.NewHandler(educationService)
	module := &education.Module{
		Hdl: v2,
		Svc: educationService,
	}
	return module, nil
}
