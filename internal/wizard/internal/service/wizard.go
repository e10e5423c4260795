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
	"encoding/json"
	"errors"

	"github.com/irantalent/estekhdam/internal/draft"
	"github.com/irantalent/estekhdam/internal/education"
	"github.com/irantalent/estekhdam/internal/profile"
	"github.com/irantalent/estekhdam/internal/skill"
	"github.com/irantalent/estekhdam/internal/wizard/internal/domain"
	"github.com/irantalent/estekhdam/internal/work"
)

var (
	// ErrUnknownStep 步骤不存在
	ErrUnknownStep = errors.New("向导里没有这个步骤")
	// ErrInvalidPayload payload 解析不出来或者不合法
	ErrInvalidPayload = errors.New("步骤数据不合法")
)

type WizardService interface {
	// LoadStep 草稿优先，没有草稿读正式记录
	LoadStep(ctx context.Context, uid int64, step domain.Step) (domain.StepView, error)
	// SubmitStep 校验并同步这一步，成功返回下一步
	SubmitStep(ctx context.Context, uid int64, step domain.Step, payload string) (domain.Step, error)
}

type wizardService struct {
	profileSvc   profile.ProfileService
	educationSvc education.EducationService
	workSvc      work.WorkService
	skillSvc     skill.SkillService
	draftSvc     draft.DraftService
}

func NewWizardService(
	profileSvc profile.ProfileService,
	educationSvc education.EducationService,
	workSvc work.WorkService,
	skillSvc skill.SkillService,
	draftSvc draft.DraftService) WizardService {
	return &wizardService{
		profileSvc:   profileSvc,
		educationSvc: educationSvc,
		workSvc:      workSvc,
		skillSvc:     skillSvc,
		draftSvc:     draftSvc,
	}
}

func (s *wizardService) LoadStep(ctx context.Context, uid int64, step domain.Step) (domain.StepView, error) {
	if !step.Valid() {
		return domain.StepView{}, ErrUnknownStep
	}
	view := domain.StepView{
		Step: step,
		Prev: step.Prev(),
		Next: step.Next(),
	}
	if step == domain.StepSummary {
		// 摘要没有草稿也没有表单数据
		return view, nil
	}
	payload, err := s.draftSvc.Load(ctx, uid, draft.Step(step))
	if err != nil {
		return domain.StepView{}, err
	}
	if payload != "" {
		view.FromDraft = true
		view.Payload = payload
		return view, nil
	}
	payload, err = s.canonical(ctx, uid, step)
	if err != nil {
		return domain.StepView{}, err
	}
	view.Payload = payload
	return view, nil
}

// canonical 这一步的正式记录，序列化成和草稿一样的形状
func (s *wizardService) canonical(ctx context.Context, uid int64, step domain.Step) (string, error) {
	var (
		val any
		err error
	)
	switch step {
	case domain.StepPersonalInfo:
		var p profile.Profile
		p, err = s.profileSvc.Profile(ctx, uid)
		val = personalInfoFromDomain(p)
	case domain.StepEducation:
		var entries []education.Education
		entries, err = s.educationSvc.List(ctx, uid)
		val = educationFromDomain(entries)
	case domain.StepWork:
		var entries []work.Work
		entries, err = s.workSvc.List(ctx, uid)
		val = workFromDomain(entries)
	case domain.StepSkill:
		var set skill.SkillSet
		set, err = s.skillSvc.Detail(ctx, uid)
		val = skillFromDomain(set)
	}
	if err != nil {
		return "", err
	}
	data, err := json.Marshal(val)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (s *wizardService) SubmitStep(ctx context.Context, uid int64, step domain.Step, payload string) (domain.Step, error) {
	if !step.Valid() || step == domain.StepSummary {
		return "", ErrUnknownStep
	}
	err := s.sync(ctx, uid, step, payload)
	if err != nil {
		// 同步失败不推进，也不动草稿
		return "", err
	}
	// 同步成功后把草稿更新成刚提交的内容，刷新页面不丢数据
	err = s.draftSvc.Save(ctx, draft.Draft{
		Uid:     uid,
		Step:    draft.Step(step),
		Payload: payload,
	})
	if err != nil {
		return "", err
	}
	return step.Next(), nil
}

func (s *wizardService) sync(ctx context.Context, uid int64, step domain.Step, payload string) error {
	switch step {
	case domain.StepPersonalInfo:
		var p personalInfoPayload
		if err := json.Unmarshal([]byte(payload), &p); err != nil || !p.valid() {
			return ErrInvalidPayload
		}
		_, err := s.profileSvc.Save(ctx, p.toDomain(uid))
		return err
	case domain.StepEducation:
		var p educationPayload
		if err := json.Unmarshal([]byte(payload), &p); err != nil || !p.valid() {
			return ErrInvalidPayload
		}
		return s.educationSvc.Save(ctx, uid, p.toDomain())
	case domain.StepWork:
		var p workPayload
		if err := json.Unmarshal([]byte(payload), &p); err != nil || !p.valid() {
			return ErrInvalidPayload
		}
		return s.workSvc.Save(ctx, uid, p.toDomain())
	case domain.StepSkill:
		var p skillPayload
		if err := json.Unmarshal([]byte(payload), &p); err != nil || !p.valid() {
			return ErrInvalidPayload
		}
		return s.skillSvc.SaveAll(ctx, p.toDomain(uid))
	default:
		return ErrUnknownStep
	}
}
