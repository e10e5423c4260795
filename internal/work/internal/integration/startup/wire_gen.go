// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package startup

import (
	"github.com/irantalent/estekhdam/internal/test/ioc"
	"github.com/irantalent/estekhdam/internal/work"
	"github.com/irantalent/estekhdam/internal/work/internal/repository"
	"github.com/irantalent/estekhdam/internal/work/internal/service"
	"github.com/irantalent/estekhdam/internal/work/internal/web"
)

// Injectors from wire.go:

func InitModule() (*work.Module, error) {
	v := testioc.InitDB()
	workDAO := work.InitWorkDAO(v)
	workRepository := repository.NewWorkRepository(workDAO)
	workService := service.NewWorkService(workRepository)
	v2 := web.NewHandler(workService)
	module := &work.Module{
		Hdl: v2,
		Svc: workService,
	}
	return module, nil
}
