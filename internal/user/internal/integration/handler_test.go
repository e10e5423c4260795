// Copyright 2024 irantalent
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build e2e

package integration

import (
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/irantalent/estekhdam/internal/test"
	testioc "github.com/irantalent/estekhdam/internal/test/ioc"
	"github.com/irantalent/estekhdam/internal/user/internal/integration/startup"
	"github.com/irantalent/estekhdam/internal/user/internal/repository/dao"
	"github.com/irantalent/estekhdam/internal/user/internal/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

const uid = int64(1023)

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	dao    dao.UserDAO
}

func (s *HandlerTestSuite) SetupSuite() {
	m, err := startup.InitModule()
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"debug": true})
	server := egin.Load("server").Build()
	m.Hdl.PublicRoutes(server.Engine)
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	m.Hdl.PrivateRoutes(server.Engine)
	s.server = server
	s.db = testioc.InitDB()
	s.dao = dao.NewGORMUserDAO(s.db)
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `users`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TestSignup() {
	testCases := []struct {
		name     string
		before   func(t *testing.T)
		after    func(t *testing.T)
		req      web.SignupReq
		wantCode int
		wantRes  test.Result[web.Profile]
	}{
		{
			name:   "注册成功",
			before: func(t *testing.T) {},
			after: func(t *testing.T) {
				u, err := s.dao.FindByEmail(t.Context(), "abc@irantalent.com")
				require.NoError(t, err)
				assert.NotEmpty(t, u.SN)
				assert.NotEmpty(t, u.Nickname)
				assert.True(t, u.Ctime > 0)
				err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("Pa$$word123"))
				assert.NoError(t, err)
			},
			req: web.SignupReq{
				Email:           "abc@irantalent.com",
				Password:        "Pa$$word123",
				ConfirmPassword: "Pa$$word123",
			},
			wantCode: 200,
			wantRes: test.Result[web.Profile]{
				Data: web.Profile{
					Id:    1,
					Email: "abc@irantalent.com",
				},
			},
		},
		{
			name: "邮箱已经注册过了",
			before: func(t *testing.T) {
				_, err := s.dao.Insert(t.Context(), dao.User{
					SN:       "sn-abc",
					Email:    "dup@irantalent.com",
					Password: "whatever",
				})
				require.NoError(t, err)
			},
			after: func(t *testing.T) {},
			req: web.SignupReq{
				Email:           "dup@irantalent.com",
				Password:        "Pa$$word123",
				ConfirmPassword: "Pa$$word123",
			},
			wantCode: 200,
			wantRes: test.Result[web.Profile]{
				Code: 501002,
				Msg:  "این ایمیل قبلاً ثبت شده است",
			},
		},
		{
			name:     "非法邮箱",
			before:   func(t *testing.T) {},
			after:    func(t *testing.T) {},
			req: web.SignupReq{
				Email:           "not-an-email",
				Password:        "Pa$$word123",
				ConfirmPassword: "Pa$$word123",
			},
			wantCode: 200,
			wantRes: test.Result[web.Profile]{
				Code: 501004,
				Msg:  "فرمت ایمیل نامعتبر است",
			},
		},
		{
			name:     "弱密码",
			before:   func(t *testing.T) {},
			after:    func(t *testing.T) {},
			req: web.SignupReq{
				Email:           "weak@irantalent.com",
				Password:        "12345678",
				ConfirmPassword: "12345678",
			},
			wantCode: 200,
			wantRes: test.Result[web.Profile]{
				Code: 501005,
				Msg:  "رمز عبور باید حداقل ۸ کاراکتر و شامل حروف بزرگ و کوچک، عدد و نماد باشد",
			},
		},
		{
			name:     "两次密码不一致",
			before:   func(t *testing.T) {},
			after:    func(t *testing.T) {},
			req: web.SignupReq{
				Email:           "mismatch@irantalent.com",
				Password:        "Pa$$word123",
				ConfirmPassword: "Pa$$word456",
			},
			wantCode: 200,
			wantRes: test.Result[web.Profile]{
				Code: 501006,
				Msg:  "رمز عبور و تکرار آن یکسان نیستند",
			},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			tc.before(t)
			req, err := http.NewRequest(http.MethodPost,
				"/users/signup", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.Profile]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			res := recorder.MustScan()
			if tc.wantRes.Code == 0 {
				// 昵称是随机的，校验非空之后抹掉再比较
				assert.NotEmpty(t, res.Data.Nickname)
				res.Data.Nickname = ""
			}
			assert.Equal(t, tc.wantRes, res)
			tc.after(t)
			err = s.db.Exec("TRUNCATE TABLE `users`").Error
			require.NoError(t, err)
		})
	}
}

func (s *HandlerTestSuite) TestLogin() {
	hash, err := bcrypt.GenerateFromPassword([]byte("Pa$$word123"), bcrypt.DefaultCost)
	require.NoError(s.T(), err)
	testCases := []struct {
		name     string
		before   func(t *testing.T)
		req      web.LoginReq
		wantCode int
		wantRes  test.Result[web.Profile]
	}{
		{
			name: "登录成功",
			before: func(t *testing.T) {
				_, err := s.dao.Insert(t.Context(), dao.User{
					SN:       "sn-login",
					Email:    "login@irantalent.com",
					Password: string(hash),
					Nickname: "ali",
				})
				require.NoError(t, err)
			},
			req: web.LoginReq{
				Email:    "login@irantalent.com",
				Password: "Pa$$word123",
			},
			wantCode: 200,
			wantRes: test.Result[web.Profile]{
				Data: web.Profile{
					Id:       1,
					Email:    "login@irantalent.com",
					Nickname: "ali",
				},
			},
		},
		{
			name: "密码不对",
			before: func(t *testing.T) {
				_, err := s.dao.Insert(t.Context(), dao.User{
					SN:       "sn-wrong",
					Email:    "wrong@irantalent.com",
					Password: string(hash),
				})
				require.NoError(t, err)
			},
			req: web.LoginReq{
				Email:    "wrong@irantalent.com",
				Password: "Pa$$word456",
			},
			wantCode: 200,
			wantRes: test.Result[web.Profile]{
				Code: 501003,
				Msg:  "ایمیل یا رمز عبور اشتباه است",
			},
		},
		{
			name:   "用户不存在",
			before: func(t *testing.T) {},
			req: web.LoginReq{
				Email:    "ghost@irantalent.com",
				Password: "Pa$$word123",
			},
			wantCode: 200,
			wantRes: test.Result[web.Profile]{
				Code: 501003,
				Msg:  "ایمیل یا رمز عبور اشتباه است",
			},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			tc.before(t)
			req, err := http.NewRequest(http.MethodPost,
				"/users/login", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.Profile]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantRes, recorder.MustScan())
			err = s.db.Exec("TRUNCATE TABLE `users`").Error
			require.NoError(t, err)
		})
	}
}

func (s *HandlerTestSuite) TestProfile() {
	_, err := s.dao.Insert(s.T().Context(), dao.User{
		Id:       uid,
		SN:       "sn-profile",
		Email:    "profile@irantalent.com",
		Password: "whatever",
		Nickname: "reza",
		Avatar:   "https://cdn.irantalent.com/a.png",
	})
	require.NoError(s.T(), err)

	req, err := http.NewRequest(http.MethodGet, "/users/profile", nil)
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.Profile]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	assert.Equal(s.T(), test.Result[web.Profile]{
		Data: web.Profile{
			Id:       uid,
			Email:    "profile@irantalent.com",
			Nickname: "reza",
			Avatar:   "https://cdn.irantalent.com/a.png",
		},
	}, recorder.MustScan())
}

func (s *HandlerTestSuite) TestEdit() {
	_, err := s.dao.Insert(s.T().Context(), dao.User{
		Id:       uid,
		SN:       "sn-edit",
		Email:    "edit@irantalent.com",
		Password: "whatever",
		Nickname: "old",
	})
	require.NoError(s.T(), err)

	req, err := http.NewRequest(http.MethodPost,
		"/users/profile", iox.NewJSONReader(web.EditReq{
			Nickname: "new name",
			Avatar:   "https://cdn.irantalent.com/b.png",
		}))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)

	u, err := s.dao.FindById(s.T().Context(), uid)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "new name", u.Nickname)
	assert.Equal(s.T(), "https://cdn.irantalent.com/b.png", u.Avatar)
	// 敏感字段不能被改掉
	assert.Equal(s.T(), "edit@irantalent.com", u.Email)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
