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

package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
	"github.com/irantalent/estekhdam/internal/application/internal/repository"
)

// DecisionEventConsumer 审核之后把申请人的摘要缓存清掉，
// 下一次查询拿到的就是最新状态
type DecisionEventConsumer struct {
	repo     repository.ApplicationRepository
	consumer mq.Consumer
	logger   *elog.Component
}

func NewDecisionEventConsumer(repo repository.ApplicationRepository, q mq.MQ) (*DecisionEventConsumer, error) {
	const groupID = "application"
	consumer, err := q.Consumer(decisionEvents, groupID)
	if err != nil {
		return nil, err
	}
	return &DecisionEventConsumer{
		repo:     repo,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *DecisionEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			er := c.Consume(ctx)
			if er != nil {
				c.logger.Error("消费审核事件失败", elog.FieldErr(er))
			}
		}
	}()
}

func (c *DecisionEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt DecisionEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	err = c.repo.EvictSummary(ctx, evt.Uid)
	if err != nil {
		c.logger.Error("清理摘要缓存失败",
			elog.FieldErr(err),
			elog.Int64("uid", evt.Uid),
			elog.String("sn", evt.SN))
	}
	return err
}
