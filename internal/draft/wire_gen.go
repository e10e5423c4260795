// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package draft

import (
	"github.com/ecodeclub/ecache"
	"github.com/irantalent/estekhdam/internal/draft/internal/repository/cache"
	"github.com/irantalent/estekhdam/internal/draft/internal/service"
	"github.com/irantalent/estekhdam/internal/draft/internal/web"
)

// Injectors from wire.go:

func InitModule(ec ecache.Cache) (*Module, error) {
	draftCache := cache.NewDraftECache(ec)
	draftService := service.NewDraftService(draftCache)
	v := web.NewHandler(draftService)
	module := &Module{
		Hdl: v,
		Svc: draftService,
	}
	return module, nil
}
