package errs

var (
	SystemError   = ErrorCode{Code: 505001, Msg: "خطای سیستم، لطفاً بعداً دوباره تلاش کنید"}
	InvalidInput  = ErrorCode{Code: 505002, Msg: "اطلاعات مهارت واردشده معتبر نیست"}
	TooManyManage = ErrorCode{Code: 505003, Msg: "حداکثر ۳ مهارت مدیریتی می‌توانید انتخاب کنید"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
