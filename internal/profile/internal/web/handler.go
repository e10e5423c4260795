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
	"github.com/irantalent/estekhdam/internal/profile/internal/errs"
	"github.com/irantalent/estekhdam/internal/profile/internal/service"
)

type Handler struct {
	svc service.ProfileService
}

func NewHandler(svc service.ProfileService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/profile")
	g.POST("/save", ginx.BS[SaveProfileReq](h.Save))
	g.GET("", ginx.S(h.Detail))
}

func (h *Handler) Save(ctx *ginx.Context, req SaveProfileReq, sess session.Session) (ginx.Result, error) {
	if fields := checkProfile(req); fields != nil {
		return ginx.Result{
			Code: errs.InvalidInput.Code,
			Msg:  errs.InvalidInput.Msg,
			Data: fields,
		}, nil
	}
	uid := sess.Claims().Uid
	_, err := h.svc.Save(ctx, req.toDomain(uid))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	p, err := h.svc.Profile(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfileVO(p),
	}, nil
}
