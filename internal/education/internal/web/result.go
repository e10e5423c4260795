package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/irantalent/estekhdam/internal/education/internal/errs"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}
