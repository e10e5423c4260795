package errs

var (
	SystemError  = ErrorCode{Code: 502001, Msg: "خطای سیستم، لطفاً بعداً دوباره تلاش کنید"}
	InvalidInput = ErrorCode{Code: 502002, Msg: "اطلاعات واردشده معتبر نیست"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
