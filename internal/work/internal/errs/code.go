package errs

var (
	SystemError  = ErrorCode{Code: 504001, Msg: "خطای سیستم، لطفاً بعداً دوباره تلاش کنید"}
	InvalidInput = ErrorCode{Code: 504002, Msg: "اطلاعات شغلی واردشده معتبر نیست"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
