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
	"github.com/irantalent/estekhdam/internal/application/internal/service"
)

// Handler 申请人自己用的接口
type Handler struct {
	svc service.ApplicationService
}

func NewHandler(svc service.ApplicationService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/application")
	g.POST("/submit", ginx.S(h.Submit))
	g.GET("/summary", ginx.S(h.Summary))
}

func (h *Handler) Submit(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	app, err := h.svc.Submit(ctx, sess.Claims().Uid)
	if errors.Is(err, service.ErrAlreadySubmitted) {
		return alreadySubmittedResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: SubmitResp{SN: app.SN},
	}, nil
}

func (h *Handler) Summary(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	summary, err := h.svc.Summary(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: SummaryVO{
			Submitted: summary.Submitted,
			SN:        summary.SN,
			Status:    string(summary.Status),
			Message:   summary.Message,
			CreatedAt: summary.CreatedAt,
			DecidedAt: summary.DecidedAt,
		},
	}, nil
}
