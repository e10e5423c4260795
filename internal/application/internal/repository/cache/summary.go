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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/irantalent/estekhdam/internal/application/internal/domain"
)

type SummaryCache interface {
	Set(ctx context.Context, uid int64, summary domain.Summary) error
	// Get 缓存未命中返回 ErrSummaryNotFound
	Get(ctx context.Context, uid int64) (domain.Summary, error)
	Delete(ctx context.Context, uid int64) error
}

var ErrSummaryNotFound = fmt.Errorf("摘要缓存未命中")

type SummaryECache struct {
	cache      ecache.Cache
	expiration time.Duration
}

func NewSummaryECache(c ecache.Cache) SummaryCache {
	return &SummaryECache{
		cache: &ecache.NamespaceCache{
			Namespace: "application:",
			C:         c,
		},
		expiration: time.Minute * 30,
	}
}

func (c *SummaryECache) Set(ctx context.Context, uid int64, summary domain.Summary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return c.cache.Set(ctx, c.key(uid), string(data), c.expiration)
}

func (c *SummaryECache) Get(ctx context.Context, uid int64) (domain.Summary, error) {
	val := c.cache.Get(ctx, c.key(uid))
	if val.KeyNotFound() {
		return domain.Summary{}, ErrSummaryNotFound
	}
	if val.Err != nil {
		return domain.Summary{}, val.Err
	}
	var summary domain.Summary
	err := val.JSONScan(&summary)
	return summary, err
}

func (c *SummaryECache) Delete(ctx context.Context, uid int64) error {
	_, err := c.cache.Delete(ctx, c.key(uid))
	return err
}

func (c *SummaryECache) key(uid int64) string {
	return fmt.Sprintf("summary:%d", uid)
}
