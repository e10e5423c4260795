package errs

var (
	SystemError         = ErrorCode{Code: 508001, Msg: "خطای سیستم، لطفاً بعداً دوباره تلاش کنید"}
	AlreadySubmitted    = ErrorCode{Code: 508002, Msg: "قبلا ارسال شده"}
	InvalidTransition   = ErrorCode{Code: 508003, Msg: "تغییر وضعیت درخواست مجاز نیست"}
	ApplicationNotFound = ErrorCode{Code: 508004, Msg: "درخواست موردنظر یافت نشد"}
	InvalidStatus       = ErrorCode{Code: 508005, Msg: "وضعیت انتخاب‌شده نامعتبر است"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
