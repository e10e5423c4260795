// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package admin

import (
	"github.com/gotomicro/ego/core/econf"
	"github.com/irantalent/estekhdam/internal/admin/internal/service"
	"github.com/irantalent/estekhdam/internal/admin/internal/web"
)

// Injectors from wire.go:

func InitModule() (*Module, error) {
	adminService := initService()
	v := web.NewHandler(adminService)
	module := &Module{
		Hdl: v,
		Svc: adminService,
	}
	return module, nil
}

// wire.go:

func initService() service.AdminService {
	type Config struct {
		Username     string `yaml:"username"`
		PasswordHash string `yaml:"passwordHash"`
	}
	var cfg Config
	err := econf.UnmarshalKey("admin.account", &cfg)
	if err != nil {
		panic(err)
	}
	return service.NewAdminService(cfg.Username, cfg.PasswordHash)
}
