//go:build wireinject

package startup

import (
	"github.com/google/wire"
	"github.com/irantalent/estekhdam/internal/draft"
	"github.com/irantalent/estekhdam/internal/education"
	"github.com/irantalent/estekhdam/internal/profile"
	"github.com/irantalent/estekhdam/internal/skill"
	"github.com/irantalent/estekhdam/internal/wizard"
	"github.com/irantalent/estekhdam/internal/wizard/internal/service"
	"github.com/irantalent/estekhdam/internal/wizard/internal/web"
	"github.com/irantalent/estekhdam/internal/work"
)

func InitModule(
	profileModule *profile.Module,
	educationModule *education.Module,
	workModule *work.Module,
	skillModule *skill.Module,
	draftModule *draft.Module) (*wizard.Module, error) {
	wire.Build(
		service.NewWizardService,
		web.NewHandler,
		wire.FieldsOf(new(*profile.Module), "Svc"),
		wire.FieldsOf(new(*education.Module), "Svc"),
		wire.FieldsOf(new(*work.Module), "Svc"),
		wire.FieldsOf(new(*skill.Module), "Svc"),
		wire.FieldsOf(new(*draft.Module), "Svc"),
		wire.Struct(new(wizard.Module), "*"),
	)
	return nil, nil
}
