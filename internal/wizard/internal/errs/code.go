package errs

var (
	SystemError    = ErrorCode{Code: 507001, Msg: "خطای سیستم، لطفاً بعداً دوباره تلاش کنید"}
	InvalidStep    = ErrorCode{Code: 507002, Msg: "مرحله درخواستی وجود ندارد"}
	InvalidPayload = ErrorCode{Code: 507003, Msg: "اطلاعات ارسالی این مرحله معتبر نیست"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
