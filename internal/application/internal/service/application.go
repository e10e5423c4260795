// Copyright 2024 irantalent
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"errors"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/irantalent/estekhdam/internal/application/internal/domain"
	"github.com/irantalent/estekhdam/internal/application/internal/event"
	"github.com/irantalent/estekhdam/internal/application/internal/repository"
	"github.com/irantalent/estekhdam/internal/pkg/sngenerator"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrAlreadySubmitted 一个人只能提交一份申请
	ErrAlreadySubmitted = repository.ErrApplicationExists
	// ErrApplicationNotFound 审核的申请不存在
	ErrApplicationNotFound = repository.ErrApplicationNotFound
	// ErrInvalidTransition 不允许的状态流转，比如退回待审
	ErrInvalidTransition = errors.New("不允许的状态流转")
)

// maxMessageRunes 审核留言最长 500 个字符，超出部分直接截断
const maxMessageRunes = 500

var decisionCounter = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "application_decisions_total",
		Help: "Total number of application review decisions",
	},
	[]string{"status"},
)

type ApplicationService interface {
	// Submit 用快照落库，重复提交返回 ErrAlreadySubmitted
	Submit(ctx context.Context, uid int64) (domain.Application, error)
	Summary(ctx context.Context, uid int64) (domain.Summary, error)
	// List status 为空表示全部状态，lastName 为空表示不搜索
	List(ctx context.Context, offset, limit int, status domain.Status, lastName string) ([]domain.Application, int64, error)
	Detail(ctx context.Context, id int64) (domain.Application, error)
	Decide(ctx context.Context, id int64, status domain.Status, message string) error
}

type applicationService struct {
	repo     repository.ApplicationRepository
	composer *SnapshotComposer
	sngen    *sngenerator.SequenceNumberGenerator
	producer event.DecisionEventProducer
	logger   *elog.Component
}

func NewApplicationService(
	repo repository.ApplicationRepository,
	composer *SnapshotComposer,
	sngen *sngenerator.SequenceNumberGenerator,
	producer event.DecisionEventProducer) ApplicationService {
	return &applicationService{
		repo:     repo,
		composer: composer,
		sngen:    sngen,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (s *applicationService) Submit(ctx context.Context, uid int64) (domain.Application, error) {
	snapshot, err := s.composer.Compose(ctx, uid)
	if err != nil {
		return domain.Application{}, err
	}
	sn, err := s.sngen.Generate(uid)
	if err != nil {
		return domain.Application{}, err
	}
	app := domain.Application{
		Uid:       uid,
		SN:        sn,
		Status:    domain.StatusPending,
		FirstName: snapshot.Profile.FirstName,
		LastName:  snapshot.Profile.LastName,
		Snapshot:  snapshot,
	}
	id, err := s.repo.Create(ctx, app)
	if err != nil {
		return domain.Application{}, err
	}
	app.Id = id
	return app, nil
}

func (s *applicationService) Summary(ctx context.Context, uid int64) (domain.Summary, error) {
	return s.repo.Summary(ctx, uid)
}

func (s *applicationService) List(ctx context.Context,
	offset, limit int, status domain.Status, lastName string) ([]domain.Application, int64, error) {
	var (
		eg    errgroup.Group
		apps  []domain.Application
		total int64
	)
	eg.Go(func() error {
		var err error
		apps, err = s.repo.List(ctx, offset, limit, status, lastName)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, status, lastName)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return apps, total, nil
}

func (s *applicationService) Detail(ctx context.Context, id int64) (domain.Application, error) {
	return s.repo.FindById(ctx, id)
}

func (s *applicationService) Decide(ctx context.Context, id int64, status domain.Status, message string) error {
	app, err := s.repo.FindById(ctx, id)
	if err != nil {
		return err
	}
	if !app.Status.CanTransitionTo(status) {
		return ErrInvalidTransition
	}
	if runes := []rune(message); len(runes) > maxMessageRunes {
		message = string(runes[:maxMessageRunes])
	}
	decidedAt := time.Now().UnixMilli()
	err = s.repo.UpdateDecision(ctx, id, status, message, decidedAt)
	if err != nil {
		return err
	}
	decisionCounter.WithLabelValues(string(status)).Inc()
	evt := event.DecisionEvent{
		Uid:           app.Uid,
		ApplicationId: app.Id,
		SN:            app.SN,
		Status:        string(status),
		DecidedAt:     decidedAt,
	}
	err = s.producer.Produce(ctx, evt)
	if err != nil {
		// 事件丢了缓存最多滞后半小时，不影响审核结果本身
		s.logger.Error("发送审核事件失败",
			elog.FieldErr(err),
			elog.Int64("uid", app.Uid),
			elog.String("sn", app.SN))
		// 兜底直接清缓存
		_ = s.repo.EvictSummary(ctx, app.Uid)
	}
	return nil
}
