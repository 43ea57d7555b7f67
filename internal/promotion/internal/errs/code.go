package errs

var (
	SystemError       = ErrorCode{Code: 521001, Msg: "系统错误"}
	InvalidPromotion  = ErrorCode{Code: 521002, Msg: "促销活动参数非法"}
	PromotionNotFound = ErrorCode{Code: 521003, Msg: "促销活动不存在"}
	VariantNotFound   = ErrorCode{Code: 521004, Msg: "商品规格不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
