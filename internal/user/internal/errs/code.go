package errs

var (
	SystemError = ErrorCode{Code: 501001, Msg: "خطای سیستم، لطفا دوباره تلاش کنید"}
	// EmailDuplicate 邮箱已注册
	EmailDuplicate = ErrorCode{Code: 501002, Msg: "این ایمیل قبلا ثبت شده است"}
	// InvalidCredentials 登录失败统一文案，不区分邮箱不存在和密码错误
	InvalidCredentials = ErrorCode{Code: 501003, Msg: "ایمیل یا رمز عبور اشتباه است"}
	InvalidEmail       = ErrorCode{Code: 501004, Msg: "فرمت ایمیل نامعتبر است"}
	InvalidPassword    = ErrorCode{Code: 501005, Msg: "رمز عبور باید حداقل ۸ کاراکتر و شامل حروف بزرگ، کوچک، عدد و علامت باشد"}
	PasswordMismatch   = ErrorCode{Code: 501006, Msg: "رمز عبور و تکرار آن یکسان نیستند"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
