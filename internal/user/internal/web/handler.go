package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/irantalent/estekhdam/internal/pkg/validate"
	"github.com/irantalent/estekhdam/internal/user/internal/domain"
	"github.com/irantalent/estekhdam/internal/user/internal/errs"
	"github.com/irantalent/estekhdam/internal/user/internal/service"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc    service.UserService
	logger *elog.Component
}

func NewHandler(svc service.UserService) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.POST("/signup", ginx.B[SignupReq](h.Signup))
	users.POST("/login", ginx.B[LoginReq](h.Login))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.GET("/profile", ginx.S(h.Profile))
	users.POST("/profile", ginx.BS[EditReq](h.Edit))
}

func (h *Handler) Signup(ctx *ginx.Context, req SignupReq) (ginx.Result, error) {
	if !validate.Email(req.Email) {
		return ginx.Result{
			Code: errs.InvalidEmail.Code,
			Msg:  errs.InvalidEmail.Msg,
		}, nil
	}
	if !validate.Password(req.Password) {
		return ginx.Result{
			Code: errs.InvalidPassword.Code,
			Msg:  errs.InvalidPassword.Msg,
		}, nil
	}
	if req.Password != req.ConfirmPassword {
		return ginx.Result{
			Code: errs.PasswordMismatch.Code,
			Msg:  errs.PasswordMismatch.Msg,
		}, nil
	}
	user, err := h.svc.Signup(ctx, req.Email, req.Password)
	if errors.Is(err, service.ErrUserDuplicate) {
		return ginx.Result{
			Code: errs.EmailDuplicate.Code,
			Msg:  errs.EmailDuplicate.Msg,
		}, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	_, err = session.NewSessionBuilder(ctx, user.Id).Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Profile{
			Id:       user.Id,
			Email:    user.Email,
			Nickname: user.Nickname,
		},
	}, nil
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	user, err := h.svc.Login(ctx, req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		return ginx.Result{
			Code: errs.InvalidCredentials.Code,
			Msg:  errs.InvalidCredentials.Msg,
		}, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	_, err = session.NewSessionBuilder(ctx, user.Id).Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Profile{
			Id:       user.Id,
			Email:    user.Email,
			Nickname: user.Nickname,
			Avatar:   user.Avatar,
		},
	}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.svc.Profile(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Profile{
			Id:       u.Id,
			Email:    u.Email,
			Nickname: u.Nickname,
			Avatar:   u.Avatar,
		},
	}, nil
}

// Edit 用户编辑信息
func (h *Handler) Edit(ctx *ginx.Context, req EditReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	err := h.svc.UpdateNonSensitiveInfo(ctx, domain.User{
		Id:       uid,
		Nickname: req.Nickname,
		Avatar:   req.Avatar,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}
