package errs

var (
	SystemError     = ErrorCode{Code: 520001, Msg: "系统错误"}
	ProductNotFound = ErrorCode{Code: 520002, Msg: "商品不存在"}
	InvalidArgument = ErrorCode{Code: 520003, Msg: "商品参数非法"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
