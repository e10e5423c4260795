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

	"github.com/irantalent/estekhdam/internal/application/internal/domain"
	"github.com/irantalent/estekhdam/internal/education"
	"github.com/irantalent/estekhdam/internal/profile"
	"github.com/irantalent/estekhdam/internal/skill"
	"github.com/irantalent/estekhdam/internal/work"
	"golang.org/x/sync/errgroup"
)

// SnapshotComposer 并发拉齐四个模块的数据，拼出完整申请材料。
// 提交落库和简历渲染共用
type SnapshotComposer struct {
	profileSvc   profile.ProfileService
	educationSvc education.EducationService
	workSvc      work.WorkService
	skillSvc     skill.SkillService
}

func NewSnapshotComposer(
	profileSvc profile.ProfileService,
	educationSvc education.EducationService,
	workSvc work.WorkService,
	skillSvc skill.SkillService) *SnapshotComposer {
	return &SnapshotComposer{
		profileSvc:   profileSvc,
		educationSvc: educationSvc,
		workSvc:      workSvc,
		skillSvc:     skillSvc,
	}
}

func (c *SnapshotComposer) Compose(ctx context.Context, uid int64) (domain.Snapshot, error) {
	var (
		eg       errgroup.Group
		snapshot domain.Snapshot
	)
	eg.Go(func() error {
		var err error
		snapshot.Profile, err = c.profileSvc.Profile(ctx, uid)
		return err
	})
	eg.Go(func() error {
		var err error
		snapshot.Educations, err = c.educationSvc.List(ctx, uid)
		return err
	})
	eg.Go(func() error {
		var err error
		snapshot.Works, err = c.workSvc.List(ctx, uid)
		return err
	})
	eg.Go(func() error {
		var err error
		snapshot.Skills, err = c.skillSvc.Detail(ctx, uid)
		return err
	})
	return snapshot, eg.Wait()
}
