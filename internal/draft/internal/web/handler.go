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
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/irantalent/estekhdam/internal/draft/internal/domain"
	"github.com/irantalent/estekhdam/internal/draft/internal/errs"
	"github.com/irantalent/estekhdam/internal/draft/internal/service"
)

type Handler struct {
	svc service.DraftService
}

func NewHandler(svc service.DraftService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/draft")
	g.POST("/save", ginx.BS[SaveReq](h.Save))
	g.POST("/load", ginx.BS[LoadReq](h.Load))
	g.POST("/clear", ginx.BS[ClearReq](h.Clear))
}

func (h *Handler) Save(ctx *ginx.Context, req SaveReq, sess session.Session) (ginx.Result, error) {
	step := domain.Step(req.Step)
	if !step.Valid() {
		return invalidStepResult, nil
	}
	err := h.svc.Save(ctx, domain.Draft{
		Uid:     sess.Claims().Uid,
		Step:    step,
		Payload: req.Payload,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

func (h *Handler) Load(ctx *ginx.Context, req LoadReq, sess session.Session) (ginx.Result, error) {
	step := domain.Step(req.Step)
	if !step.Valid() {
		return invalidStepResult, nil
	}
	payload, err := h.svc.Load(ctx, sess.Claims().Uid, step)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: DraftVO{
			Step:    req.Step,
			Payload: payload,
		},
	}, nil
}

func (h *Handler) Clear(ctx *ginx.Context, req ClearReq, sess session.Session) (ginx.Result, error) {
	step := domain.Step(req.Step)
	if req.Step != "" && !step.Valid() {
		return invalidStepResult, nil
	}
	err := h.svc.Clear(ctx, sess.Claims().Uid, step)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

type SaveReq struct {
	Step string `json:"step"`
	// Payload 前端整步的 JSON，原样存取
	Payload string `json:"payload"`
}

type LoadReq struct {
	Step string `json:"step"`
}

// ClearReq step 为空表示清空全部草稿
type ClearReq struct {
	Step string `json:"step"`
}

type DraftVO struct {
	Step    string `json:"step"`
	Payload string `json:"payload"`
}

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

var invalidStepResult = ginx.Result{
	Code: errs.InvalidStep.Code,
	Msg:  errs.InvalidStep.Msg,
}
