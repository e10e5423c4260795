package domain

type User struct {
	Id       int64
	SN       string
	Email    string
	// bcrypt 之后的密码，永远不会回传给前端
	Password string
	Nickname string
	Avatar   string
}
