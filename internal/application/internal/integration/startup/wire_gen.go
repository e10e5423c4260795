// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package startup

import (
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
	"github.com/irantalent/estekhdam/internal/test/ioc"
	"github.com/irantalent/estekhdam/internal/work"
)

// Injectors from wire.go:

func InitModule(converter pdf.Converter, profileModule *profile.Module, educationModule *education.Module, workModule *work.Module, skillModule *skill.Module) (*application.Module, error) {
	v := testioc.InitDB()
	applicationDAO := application.InitApplicationDAO(v)
	ecacheCache := testioc.InitCache()
	summaryCache := cache.NewSummaryECache(ecacheCache)
	applicationRepository := repository.NewCachedApplicationRepository(applicationDAO, summaryCache)
	v2 := profileModule.Svc
	v3 := educationModule.Svc
	v4 := workModule.Svc
	v5 := skillModule.Svc
	snapshotComposer := service.NewSnapshotComposer(v2, v3, v4, v5)
	sequenceNumberGenerator := sngenerator.NewSequenceNumberGenerator()
	mq := testioc.InitMQ()
	decisionEventProducer, err := event.NewDecisionEventProducer(mq)
	if err != nil {
		return nil, err
	}
	applicationService := service.NewApplicationService(applicationRepository, snapshotComposer, sequenceNumberGenerator, decisionEventProducer)
	v6 := web.NewHandler(applicationService)
	resumeService := service.NewResumeService(snapshotComposer, converter)
	v7 := web.NewAdminHandler(applicationService, resumeService)
	v8, err := event.NewDecisionEventConsumer(applicationRepository, mq)
	if err != nil {
		return nil, err
	}
	module := &application.Module{
		Hdl:       v6,
		AdminHdl:  v7,
		Svc:       applicationService,
		ResumeSvc: resumeService,
		Consumer:  v8,
	}
	return module, nil
}
