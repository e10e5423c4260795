// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package startup

import (
	"github.com/irantalent/estekhdam/internal/draft"
	"github.com/irantalent/estekhdam/internal/draft/internal/repository/cache"
	"github.com/irantalent/estekhdam/internal/draft/internal/service"
	"github.com/irantalent/estekhdam/internal/draft/internal/web"
	"github.com/irantalent/estekhdam/internal/test/ioc"
)

// Injectors from wire.go:

func InitModule() (*draft.Module, error) {
	ecacheCache := testioc.InitCache()
	draftCache := cache.NewDraftECache(ecacheCache)
	draftService := service.NewDraftService(draftCache)
	v := web.NewHandler(draftService)
	module := &draft.Module{
		Hdl: v,
		Svc: draftService,
	}
	return module, nil
}
