//go:build wireinject

package startup

import (
	"github.com/google/wire"
	"github.com/irantalent/estekhdam/internal/application"
	"github.com/irantalent/estekhdam/internal/application/internal/event"
	"github.com/irantalent/estekhdam/internal/application/internal/repository"
	"github.com/irantalent/estekhdam/internal/application/internal/repository/cache"
	"github.com/irantalent/estekhdam/internal/application/internal/service"
	"github.com/irantalent/estekhdam/internal/application/internal/web"
	"github.com/irantalent/estekhdam/internal/education"
	"github.com/irantalent/estekhdam/internal/pkg/pdf"
	"github.com/irantalent/estekhdam/internal/pkg/sngenerator"
	"github.com/irantalent/estekhdam/internal/profile"
	"github.com/irantalent/estekhdam/internal/skill"
	testioc "github.com/irantalent/estekhdam/internal/test/ioc"
	"github.com/irantalent/estekhdam/internal/work"
)

func InitModule(converter pdf.Converter,
	profileModule *profile.Module,
	educationModule *education.Module,
	workModule *work.Module,
	skillModule *skill.Module) (*application.Module, error) {
	wire.Build(
		testioc.BaseSet,
		application.InitApplicationDAO,
		cache.NewSummaryECache,
		repository.NewCachedApplicationRepository,
		sngenerator.NewSequenceNumberGenerator,
		event.NewDecisionEventProducer,
		event.NewDecisionEventConsumer,
		service.NewSnapshotComposer,
		service.NewApplicationService,
		service.NewResumeService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.FieldsOf(new(*profile.Module), "Svc"),
		wire.FieldsOf(new(*education.Module), "Svc"),
		wire.FieldsOf(new(*work.Module), "Svc"),
		wire.FieldsOf(new(*skill.Module), "Svc"),
		wire.Struct(new(application.Module), "*"),
	)
	return nil, nil
}
