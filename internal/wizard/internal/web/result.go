package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/irantalent/estekhdam/internal/wizard/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidStepResult = ginx.Result{
		Code: errs.InvalidStep.Code,
		Msg:  errs.InvalidStep.Msg,
	}
	invalidPayloadResult = ginx.Result{
		Code: errs.InvalidPayload.Code,
		Msg:  errs.InvalidPayload.Msg,
	}
	// 错误码和技能模块保持一致
	tooManyManagementResult = ginx.Result{
		Code: 505003,
		Msg:  "حداکثر ۳ مهارت مدیریتی می‌توانید انتخاب کنید",
	}
)
