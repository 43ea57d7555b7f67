package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/pawmall/internal/donation/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	donationNotFoundResult = ginx.Result{
		Code: errs.DonationNotFound.Code,
		Msg:  errs.DonationNotFound.Msg,
	}
	notRetryableResult = ginx.Result{
		Code: errs.NotRetryable.Code,
		Msg:  errs.NotRetryable.Msg,
	}
	alreadyRetriedResult = ginx.Result{
		Code: errs.AlreadyRetried.Code,
		Msg:  errs.AlreadyRetried.Msg,
	}
)
