package errs

var (
	SystemError  = ErrorCode{Code: 503001, Msg: "خطای سیستم، لطفاً بعداً دوباره تلاش کنید"}
	InvalidInput = ErrorCode{Code: 503002, Msg: "اطلاعات تحصیلی واردشده معتبر نیست"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
