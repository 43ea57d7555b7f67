package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/pawmall/internal/promotion/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidPromotionResult = ginx.Result{
		Code: errs.InvalidPromotion.Code,
		Msg:  errs.InvalidPromotion.Msg,
	}
	promotionNotFoundResult = ginx.Result{
		Code: errs.PromotionNotFound.Code,
		Msg:  errs.PromotionNotFound.Msg,
	}
	variantNotFoundResult = ginx.Result{
		Code: errs.VariantNotFound.Code,
		Msg:  errs.VariantNotFound.Msg,
	}
)
