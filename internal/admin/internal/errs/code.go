package errs

var (
	SystemError = ErrorCode{Code: 509001, Msg: "خطای سیستم، لطفاً بعداً دوباره تلاش کنید"}
	// InvalidAdminCredentials 管理员登录失败统一返回这一个，不区分用户名还是密码错
	InvalidAdminCredentials = ErrorCode{Code: 509002, Msg: "نام کاربری یا رمز عبور مدیر اشتباه است"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
