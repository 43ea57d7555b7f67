package errs

var (
	SystemError      = ErrorCode{Code: 524001, Msg: "系统错误"}
	InvalidOrderType = ErrorCode{Code: 524002, Msg: "未知的单据类型"}
	PayableNotFound  = ErrorCode{Code: 524003, Msg: "待支付单据不存在"}
	NotPayable       = ErrorCode{Code: 524004, Msg: "单据当前状态不允许付款"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
