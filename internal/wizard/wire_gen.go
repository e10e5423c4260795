// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package wizard

import (
	"github.com/irantalent/estekhdam/internal/draft"
	"github.com/irantalent/estekhdam/internal/education"
	"github.com/irantalent/estekhdam/internal/profile"
	"github.com/irantalent/estekhdam/internal/skill"
	"github.com/irantalent/estekhdam/internal/wizard/internal/service"
	"github.com/irantalent/estekhdam/internal/wizard/internal/web"
	"github.com/irantalent/estekhdam/internal/work"
)

// Injectors from wire.go:

func InitModule(profileModule *profile.Module, educationModule *education.Module, workModule *work.Module, skillModule *skill.Module, draftModule *draft.Module) *Module {
	v := profileModule.Svc
	v2 := educationModule.Svc
	v3 := workModule.Svc
	v4 := skillModule.Svc
	v5 := draftModule.Svc
	wizardService := service.NewWizardService(v, v2, v3, v4, v5)
	v6 := web.NewHandler(wizardService)
	module := &Module{
		Hdl: v6,
		Svc: wizardService,
	}
	return module
}
