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
	"github.com/irantalent/estekhdam/internal/education/internal/errs"
	"github.com/irantalent/estekhdam/internal/education/internal/service"
)

type Handler struct {
	svc service.EducationService
}

func NewHandler(svc service.EducationService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/education")
	g.POST("/save", ginx.BS[SaveReq](h.Save))
	g.POST("/list", ginx.S(h.List))
	g.POST("/delete", ginx.BS[DeleteReq](h.Delete))
}

func (h *Handler) Save(ctx *ginx.Context, req SaveReq, sess session.Session) (ginx.Result, error) {
	for _, entry := range req.Entries {
		if msg := checkEntry(entry); msg != "" {
			return ginx.Result{
				Code: errs.InvalidInput.Code,
				Msg:  msg,
			}, nil
		}
	}
	err := h.svc.Save(ctx, sess.Claims().Uid, toDomain(req.Entries))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	entries, err := h.svc.List(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListResp{Entries: toVO(entries)},
	}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req DeleteReq, sess session.Session) (ginx.Result, error) {
	entries, err := h.svc.Delete(ctx, sess.Claims().Uid, req.Index)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListResp{Entries: toVO(entries)},
	}, nil
}

func checkEntry(entry Education) string {
	if entry.Degree == "" {
		return "مقطع تحصیلی الزامی است"
	}
	if entry.InstitutionName == "" {
		return "نام مؤسسه آموزشی الزامی است"
	}
	if entry.StartDate == "" {
		return "تاریخ شروع الزامی است"
	}
	if entry.EndDate == "" && !entry.StillStudying {
		return "تاریخ پایان الزامی است مگر اینکه هنوز مشغول تحصیل باشید"
	}
	return ""
}
