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
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/irantalent/estekhdam/internal/draft/internal/domain"
)

type DraftCache interface {
	Set(ctx context.Context, d domain.Draft) error
	// Get 没有草稿时返回空字符串，不算错误
	Get(ctx context.Context, uid int64, step domain.Step) (string, error)
	Delete(ctx context.Context, uid int64, steps []domain.Step) error
}

type DraftECache struct {
	cache      ecache.Cache
	expiration time.Duration
}

func NewDraftECache(c ecache.Cache) DraftCache {
	return &DraftECache{
		cache: &ecache.NamespaceCache{
			Namespace: "draft:",
			C:         c,
		},
		// 草稿留一个月，足够填完整个向导
		expiration: time.Hour * 24 * 30,
	}
}

func (c *DraftECache) Set(ctx context.Context, d domain.Draft) error {
	return c.cache.Set(ctx, c.key(d.Uid, d.Step), d.Payload, c.expiration)
}

func (c *DraftECache) Get(ctx context.Context, uid int64, step domain.Step) (string, error) {
	val := c.cache.Get(ctx, c.key(uid, step))
	if val.KeyNotFound() {
		return "", nil
	}
	if val.Err != nil {
		return "", val.Err
	}
	return val.String()
}

func (c *DraftECache) Delete(ctx context.Context, uid int64, steps []domain.Step) error {
	keys := make([]string, 0, len(steps))
	for _, step := range steps {
		keys = append(keys, c.key(uid, step))
	}
	_, err := c.cache.Delete(ctx, keys...)
	return err
}

func (c *DraftECache) key(uid int64, step domain.Step) string {
	return fmt.Sprintf("step:%d:%s", uid, step)
}
