//go:build wireinject

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

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitSession,
		InitPDFConverter,
		user.InitModule,
		wire.FieldsOf(new(*user.Module), "Hdl"),
		profile.InitModule,
		wire.FieldsOf(new(*profile.Module), "Hdl"),
		education.InitModule,
		wire.FieldsOf(new(*education.Module), "Hdl"),
		work.InitModule,
		wire.FieldsOf(new(*work.Module), "Hdl"),
		skill.InitModule,
		wire.FieldsOf(new(*skill.Module), "Hdl"),
		draft.InitModule,
		wire.FieldsOf(new(*draft.Module), "Hdl"),
		wizard.InitModule,
		wire.FieldsOf(new(*wizard.Module), "Hdl"),
		application.InitModule,
		wire.FieldsOf(new(*application.Module), "Hdl", "AdminHdl"),
		admin.InitModule,
		wire.FieldsOf(new(*admin.Module), "Hdl"),
		initGinxServer,
		InitAdminServer,
		initMQConsumers,
	)
	return new(App), nil
}
