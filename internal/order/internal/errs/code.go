package errs

var (
	SystemError       = ErrorCode{Code: 522001, Msg: "系统错误"}
	InvalidCart       = ErrorCode{Code: 522002, Msg: "购物车为空或商品数量非法"}
	InvalidRecipient  = ErrorCode{Code: 522003, Msg: "收件人信息不完整"}
	InsufficientStock = ErrorCode{Code: 522004, Msg: "商品库存不足"}
	ProductNotFound   = ErrorCode{Code: 522005, Msg: "商品不存在或已下架"}
	OrderNotFound     = ErrorCode{Code: 522006, Msg: "订单不存在"}
	InvalidTransition = ErrorCode{Code: 522007, Msg: "订单当前状态不允许该操作"}
	DuplicateRequest  = ErrorCode{Code: 522008, Msg: "请勿重复提交订单"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
