package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/pawmall/internal/order/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidCartResult = ginx.Result{
		Code: errs.InvalidCart.Code,
		Msg:  errs.InvalidCart.Msg,
	}
	invalidRecipientResult = ginx.Result{
		Code: errs.InvalidRecipient.Code,
		Msg:  errs.InvalidRecipient.Msg,
	}
	orderNotFoundResult = ginx.Result{
		Code: errs.OrderNotFound.Code,
		Msg:  errs.OrderNotFound.Msg,
	}
	invalidTransitionResult = ginx.Result{
		Code: errs.InvalidTransition.Code,
		Msg:  errs.InvalidTransition.Msg,
	}
	duplicateRequestResult = ginx.Result{
		Code: errs.DuplicateRequest.Code,
		Msg:  errs.DuplicateRequest.Msg,
	}
)
