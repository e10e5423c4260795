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
	"github.com/irantalent/estekhdam/internal/pkg/validate"
	"github.com/irantalent/estekhdam/internal/skill/internal/domain"
	"github.com/irantalent/estekhdam/internal/skill/internal/errs"
	"github.com/irantalent/estekhdam/internal/skill/internal/service"
)

type Handler struct {
	svc service.SkillService
}

func NewHandler(svc service.SkillService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/skill")
	g.POST("/save-all", ginx.BS[SaveAllReq](h.SaveAll))
	g.POST("/list", ginx.S(h.List))
}

func (h *Handler) SaveAll(ctx *ginx.Context, req SaveAllReq, sess session.Session) (ginx.Result, error) {
	if msg := checkSkills(req); msg != "" {
		return ginx.Result{
			Code: errs.InvalidInput.Code,
			Msg:  msg,
		}, nil
	}
	err := h.svc.SaveAll(ctx, req.toDomain(sess.Claims().Uid))
	if errors.Is(err, service.ErrTooManyManagementSkills) {
		return ginx.Result{
			Code: errs.TooManyManage.Code,
			Msg:  errs.TooManyManage.Msg,
		}, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	set, err := h.svc.Detail(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newSkillSetVO(set),
	}, nil
}

func checkSkills(req SaveAllReq) string {
	if len(req.Management) > domain.MaxManagementSkills {
		return errs.TooManyManage.Msg
	}
	for _, t := range req.Technical {
		if t.Name == "" {
			return "نام مهارت فنی الزامی است"
		}
		if !validate.StarLevel(t.Level) {
			return "امتیاز مهارت باید بین ۱ تا ۵ باشد"
		}
	}
	for _, l := range req.Languages {
		if l.Language == "" {
			return "نام زبان الزامی است"
		}
		for _, p := range []string{l.Reading, l.Writing, l.Speaking, l.Comprehension} {
			if !domain.Proficiency(p).Valid() {
				return "سطح مهارت زبان نامعتبر است"
			}
		}
	}
	seen := make(map[string]struct{}, len(req.Management))
	for _, m := range req.Management {
		if !domain.InManagementCatalog(m.Name) {
			return "مهارت مدیریتی باید از فهرست انتخاب شود"
		}
		if !validate.StarLevel(m.Level) {
			return "امتیاز مهارت باید بین ۱ تا ۵ باشد"
		}
		if _, ok := seen[m.Name]; ok {
			return "مهارت مدیریتی تکراری است"
		}
		seen[m.Name] = struct{}{}
	}
	if req.Resume != nil && req.Resume.Filename == "" {
		return "نام فایل رزومه الزامی است"
	}
	return ""
}
