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
	"github.com/irantalent/estekhdam/internal/pkg/validate"
	"github.com/irantalent/estekhdam/internal/work/internal/errs"
	"github.com/irantalent/estekhdam/internal/work/internal/service"
)

type Handler struct {
	svc service.WorkService
}

func NewHandler(svc service.WorkService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/work")
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

func checkEntry(entry Work) string {
	if entry.Company == "" {
		return "نام شرکت الزامی است"
	}
	if entry.Position == "" {
		return "عنوان شغلی الزامی است"
	}
	if entry.StartDate == "" {
		return "تاریخ شروع الزامی است"
	}
	if entry.EndDate == "" && !entry.StillWorking {
		return "تاریخ پایان الزامی است مگر اینکه هنوز مشغول به کار باشید"
	}
	if entry.InsuranceMonths < 0 {
		return "سابقه بیمه نمی‌تواند منفی باشد"
	}
	if entry.LastSalary < 0 {
		return "حقوق نمی‌تواند منفی باشد"
	}
	if entry.WorkPhone != "" && !validate.Phone(entry.WorkPhone) {
		return "شماره تلفن محل کار باید ۱۱ رقم باشد"
	}
	return ""
}
