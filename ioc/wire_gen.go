// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package ioc

import (
	"github.com/google/wire"
	"github.com/irantalent/estekhdam/internal/admin"
	"github.com/irantalent/estekhdam/internal/application"
	"github.com/irantalent/estekhdam/internal/draft"
	"github.com/irantalent/estekhdam/internal/education"
	"github.com/irantalent/estekhdam/internal/profile"
	"github.com/irantalent/estekhdam/internal/skill"
	"github.com/irantalent/estekhdam/internal/user"
	"github.com/irantalent/estekhdam/internal/wizard"
	"github.com/irantalent/estekhdam/internal/work"
)

// Injectors from wire.go:

func InitApp() (*App, error) {
	cmdable := InitRedis()
	provider := InitSession(cmdable)
	v := InitDB()
	cache := InitCache(cmdable)
	mq := InitMQ()
	module, err := user.InitModule(v, cache, mq)
	if err != nil {
		return nil, err
	}
	v2 := module.Hdl
	profileModule, err := profile.InitModule(v)
	if err != nil {
		return nil, err
	}
	v3 := profileModule.Hdl
	educationModule, err := education.InitModule(v)
	if err != nil {
		return nil, err
	}
	v4 := educationModule.Hdl
	workModule, err := work.InitModule(v)
	if err != nil {
		return nil, err
	}
	v5 := workModule.Hdl
	skillModule, err := skill.InitModule(v)
	if err != nil {
		return nil, err
	}
	v6 := skillModule.Hdl
	draftModule, err := draft.InitModule(cache)
	if err != nil {
		return nil, err
	}
	v7 := draftModule.Hdl
	wizardModule := wizard.InitModule(profileModule, educationModule, workModule, skillModule, draftModule)
	v8 := wizardModule.Hdl
	converter := InitPDFConverter()
	applicationModule, err := application.InitModule(v, cache, mq, converter, profileModule, educationModule, workModule, skillModule)
	if err != nil {
		return nil, err
	}
	v9 := applicationModule.Hdl
	component := initGinxServer(provider, v2, v3, v4, v5, v6, v7, v8, v9)
	adminModule, err := admin.InitModule()
	if err != nil {
		return nil, err
	}
	v10 := adminModule.Hdl
	v11 := applicationModule.AdminHdl
	adminServer := InitAdminServer(v10, v11)
	v12 := initMQConsumers(applicationModule)
	app := &App{
		Web:       component,
		Admin:     adminServer,
		Consumers: v12,
	}
	return app, nil
}

// wire.go:

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ)
