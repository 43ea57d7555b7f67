package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/pawmall/internal/product/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	productNotFoundResult = ginx.Result{
		Code: errs.ProductNotFound.Code,
		Msg:  errs.ProductNotFound.Msg,
	}
	invalidArgumentResult = ginx.Result{
		Code: errs.InvalidArgument.Code,
		Msg:  errs.InvalidArgument.Msg,
	}
)
