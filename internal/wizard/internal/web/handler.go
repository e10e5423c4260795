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

package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/irantalent/estekhdam/internal/skill"
	"github.com/irantalent/estekhdam/internal/wizard/internal/domain"
	"github.com/irantalent/estekhdam/internal/wizard/internal/service"
)

type Handler struct {
	svc service.WizardService
}

func NewHandler(svc service.WizardService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/wizard")
	g.POST("/load", ginx.BS[LoadReq](h.Load))
	g.POST("/submit", ginx.BS[SubmitReq](h.Submit))
}

func (h *Handler) Load(ctx *ginx.Context, req LoadReq, sess session.Session) (ginx.Result, error) {
	view, err := h.svc.LoadStep(ctx, sess.Claims().Uid, domain.Step(req.Step))
	if errors.Is(err, service.ErrUnknownStep) {
		return invalidStepResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: StepVO{
			Step:      string(view.Step),
			Prev:      string(view.Prev),
			Next:      string(view.Next),
			FromDraft: view.FromDraft,
			Payload:   view.Payload,
		},
	}, nil
}

func (h *Handler) Submit(ctx *ginx.Context, req SubmitReq, sess session.Session) (ginx.Result, error) {
	next, err := h.svc.SubmitStep(ctx, sess.Claims().Uid, domain.Step(req.Step), req.Payload)
	switch {
	case errors.Is(err, service.ErrUnknownStep):
		return invalidStepResult, nil
	case errors.Is(err, service.ErrInvalidPayload):
		return invalidPayloadResult, nil
	case errors.Is(err, skill.ErrTooManyManagementSkills):
		return tooManyManagementResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: SubmitResp{Next: string(next)},
	}, nil
}
