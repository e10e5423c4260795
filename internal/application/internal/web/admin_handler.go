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
	"fmt"
	"net/http"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/irantalent/estekhdam/internal/application/internal/domain"
	"github.com/irantalent/estekhdam/internal/application/internal/service"
)

// AdminHandler 审核端接口，挂在管理服务上
type AdminHandler struct {
	svc       service.ApplicationService
	resumeSvc service.ResumeService
	logger    *elog.Component
}

func NewAdminHandler(svc service.ApplicationService, resumeSvc service.ResumeService) *AdminHandler {
	return &AdminHandler{
		svc:       svc,
		resumeSvc: resumeSvc,
		logger:    elog.DefaultLogger,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/applications")
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/decide", ginx.B[DecideReq](h.Decide))
	g.POST("/resume", ginx.B[ResumeReq](h.Resume))
	g.POST("/resume/pdf", h.ResumePdf)
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	status := domain.Status(req.Status)
	if req.Status == "all" {
		status = ""
	}
	if status != "" && !status.Valid() {
		return invalidStatusResult, nil
	}
	apps, total, err := h.svc.List(ctx, req.Offset, req.Limit, status, req.Keyword)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListResp{
			Total: total,
			Applications: slice.Map(apps, func(idx int, src domain.Application) ApplicationVO {
				return ApplicationVO{
					Id:        src.Id,
					SN:        src.SN,
					FirstName: src.FirstName,
					LastName:  src.LastName,
					Status:    string(src.Status),
					Message:   src.Message,
					CreatedAt: src.Ctime,
					DecidedAt: src.DecidedAt,
				}
			}),
		},
	}, nil
}

func (h *AdminHandler) Decide(ctx *ginx.Context, req DecideReq) (ginx.Result, error) {
	status := domain.Status(req.Status)
	// 审核结果只能是批准或拒绝
	if status != domain.StatusApproved && status != domain.StatusRejected {
		return invalidStatusResult, nil
	}
	err := h.svc.Decide(ctx, req.Id, status, req.Message)
	switch {
	case errors.Is(err, service.ErrApplicationNotFound):
		return notFoundResult, nil
	case errors.Is(err, service.ErrInvalidTransition):
		return invalidTransitionResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

func (h *AdminHandler) Resume(ctx *ginx.Context, req ResumeReq) (ginx.Result, error) {
	html, err := h.resumeSvc.Html(ctx, req.Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ResumeVO{Html: html},
	}, nil
}

// ResumePdf 直接回写 PDF 字节流，不走统一的 Result 包装
func (h *AdminHandler) ResumePdf(ctx *gin.Context) {
	var req ResumeReq
	if err := ctx.Bind(&req); err != nil {
		return
	}
	data, err := h.resumeSvc.Pdf(ctx.Request.Context(), req.Uid)
	if err != nil {
		h.logger.Error("导出简历PDF失败",
			elog.FieldErr(err),
			elog.Int64("uid", req.Uid))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="resume-%d.pdf"`, req.Uid))
	ctx.Data(http.StatusOK, "application/pdf", data)
}
