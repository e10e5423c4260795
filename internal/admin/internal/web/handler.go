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
	"github.com/irantalent/estekhdam/internal/admin/internal/errs"
	"github.com/irantalent/estekhdam/internal/admin/internal/service"
)

type Handler struct {
	svc service.AdminService
}

func NewHandler(svc service.AdminService) *Handler {
	return &Handler{svc: svc}
}

// PublicRoutes 登录本身不需要权限
func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/admin/login", ginx.B[LoginReq](h.Login))
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	uid, err := h.svc.Login(ctx, req.Username, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		return ginx.Result{
			Code: errs.InvalidAdminCredentials.Code,
			Msg:  errs.InvalidAdminCredentials.Msg,
		}, nil
	}
	if err != nil {
		return ginx.Result{
			Code: errs.SystemError.Code,
			Msg:  errs.SystemError.Msg,
		}, err
	}
	_, err = session.NewSessionBuilder(ctx, uid).
		SetJwtData(map[string]string{
			"admin": "true",
		}).Build()
	if err != nil {
		return ginx.Result{
			Code: errs.SystemError.Code,
			Msg:  errs.SystemError.Msg,
		}, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

type LoginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
