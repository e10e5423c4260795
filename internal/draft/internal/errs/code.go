package errs

var (
	SystemError = ErrorCode{Code: 506001, Msg: "خطای سیستم، لطفاً بعداً دوباره تلاش کنید"}
	InvalidStep = ErrorCode{Code: 506002, Msg: "مرحله درخواستی وجود ندارد"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
