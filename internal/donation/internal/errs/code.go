package errs

var (
	SystemError      = ErrorCode{Code: 523001, Msg: "系统错误"}
	InvalidDonation  = ErrorCode{Code: 523002, Msg: "捐款信息非法"}
	DonationNotFound = ErrorCode{Code: 523003, Msg: "捐款记录不存在"}
	NotRetryable     = ErrorCode{Code: 523004, Msg: "只有失败的定期定额捐款可以重试"}
	AlreadyRetried   = ErrorCode{Code: 523005, Msg: "该笔捐款已被重试"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
