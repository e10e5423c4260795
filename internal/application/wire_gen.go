// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package application

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/irantalent/estekhdam/internal/application/internal/event"
	"github.com/irantalent/estekhdam/internal/application/internal/repository"
	"github.com/irantalent/estekhdam/internal/application/internal/repository/cache"
	"github.com/irantalent/estekhdam/internal/application/internal/repository/dao"
	"github.com/irantalent/estekhdam/internal/application/internal/service"
	"github.com/irantalent/estekhdam/internal/application/internal/web"
	"github.com/irantalent/estekhdam/internal/education"
	"github.com/irantalent/estekhdam/internal/pkg/pdf"
	"github.com/irantalent/estekhdam/internal/pkg/sngenerator"
	"github.com/irantalent/estekhdam/internal/profile"
	"github.com/irantalent/estekhdam/internal/skill"
	"github.com/irantalent/estekhdam/internal/work"
	"gorm.io/gorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ, converter pdf.Converter, profileModule *profile.Module, educationModule *education.Module, workModule *work.Module, skillModule *skill.Module) (*Module, error) {
	applicationDAO := InitApplicationDAO(db)
	summaryCache := cache.NewSummaryECache(ec)
	applicationRepository := repository.NewCachedApplicationRepository(applicationDAO, summaryCache)
	v := profileModule.Svc
	v2 := educationModule.Svc
	v3 := workModule.Svc
	v4 := skillModule.Svc
	snapshotComposer := service.NewSnapshotComposer(v, v2, v3, v4)
	sequenceNumberGenerator := sngenerator.NewSequenceNumberGenerator()
	decisionEventProducer, err := event.NewDecisionEventProducer(q)
	if err != nil {
		return nil, err
	}
	applicationService := service.NewApplicationService(applicationRepository, snapshotComposer, sequenceNumberGenerator, decisionEventProducer)
	v5 := web.NewHandler(applicationService)
	resumeService := service.NewResumeService(snapshotComposer, converter)
	v6 := web.NewAdminHandler(applicationService, resumeService)
	v7, err := event.NewDecisionEventConsumer(applicationRepository, q)
	if err != nil {
		return nil, err
	}
	module := &Module{
		Hdl:       v5,
		AdminHdl:  v6,
		Svc:       applicationService,
		ResumeSvc: resumeService,
		Consumer:  v7,
	}
	return module, nil
}

// wire.go:

var daoOnce = sync.Once{}

func InitTableOnce(db *gorm.DB) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func InitApplicationDAO(db *egorm.Component) dao.ApplicationDAO {
	InitTableOnce(db)
	return dao.NewGORMApplicationDAO(db)
}
