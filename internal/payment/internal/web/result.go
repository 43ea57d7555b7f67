package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/pawmall/internal/payment/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidOrderTypeResult = ginx.Result{
		Code: errs.InvalidOrderType.Code,
		Msg:  errs.InvalidOrderType.Msg,
	}
	payableNotFoundResult = ginx.Result{
		Code: errs.PayableNotFound.Code,
		Msg:  errs.PayableNotFound.Msg,
	}
	notPayableResult = ginx.Result{
		Code: errs.NotPayable.Code,
		Msg:  errs.NotPayable.Msg,
	}
)
