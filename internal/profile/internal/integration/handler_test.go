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
	"github.com/irantalent/estekhdam/internal/profile/internal/integration/startup"
	"github.com/irantalent/estekhdam/internal/profile/internal/repository/dao"
	"github.com/irantalent/estekhdam/internal/profile/internal/web"
	"github.com/irantalent/estekhdam/internal/test"
	testioc "github.com/irantalent/estekhdam/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = int64(2077)

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	dao    dao.ProfileDAO
}

func (s *HandlerTestSuite) SetupSuite() {
	m, err := startup.InitModule()
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"debug": true})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	m.Hdl.PrivateRoutes(server.Engine)
	s.server = server
	s.db = testioc.InitDB()
	s.dao = dao.NewGORMProfileDAO(s.db)
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `personal_infos`").Error
	require.NoError(s.T(), err)
}

func validReq() web.SaveProfileReq {
	return web.SaveProfileReq{
		FirstName:     "علی",
		LastName:      "رضایی",
		NationalCode:  "0012345678",
		BirthDate:     "1370-05-14",
		BirthPlace:    "تهران",
		IssuingPlace:  "تهران",
		Gender:        "male",
		Religion:      "islam",
		MaritalStatus: "single",
		FatherName:    "حسین",
		SiblingCount:  2,
		ChildrenCount: 0,
		Province:      "تهران",
		City:          "تهران",
		Address:       "خیابان انقلاب",
		PostalCode:    "1234567890",
		Phone:         "02112345678",
		Mobile:        "09123456789",
		Email:         "ali@irantalent.com",
	}
}

func (s *HandlerTestSuite) save(req web.SaveProfileReq) *test.JSONResponseRecorder[map[string]string] {
	httpReq, err := http.NewRequest(http.MethodPost,
		"/profile/save", iox.NewJSONReader(req))
	httpReq.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[map[string]string]()
	s.server.ServeHTTP(recorder, httpReq)
	return recorder
}

func (s *HandlerTestSuite) TestSaveIdempotent() {
	// 连着保存两次，只能有一行
	for i := 0; i < 2; i++ {
		recorder := s.save(validReq())
		require.Equal(s.T(), 200, recorder.Code)
		res := recorder.MustScan()
		require.Equal(s.T(), 0, res.Code)
	}
	var cnt int64
	err := s.db.Model(&dao.Profile{}).Where("uid = ?", uid).Count(&cnt).Error
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), cnt)
}

func (s *HandlerTestSuite) TestUpsertReturnsExistingId() {
	// 更新路径也要返回已有行的主键
	ctx := s.T().Context()
	id1, err := s.dao.Upsert(ctx, dao.Profile{Uid: uid, FirstName: "علی"})
	require.NoError(s.T(), err)
	require.NotZero(s.T(), id1)

	id2, err := s.dao.Upsert(ctx, dao.Profile{Uid: uid, FirstName: "رضا"})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), id1, id2)

	p, err := s.dao.FindByUid(ctx, uid)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), id1, p.Id)
}

func (s *HandlerTestSuite) TestSaveOverwrites() {
	recorder := s.save(validReq())
	require.Equal(s.T(), 200, recorder.Code)

	req := validReq()
	req.City = "اصفهان"
	recorder = s.save(req)
	require.Equal(s.T(), 200, recorder.Code)

	p, err := s.dao.FindByUid(s.T().Context(), uid)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "اصفهان", p.City)
}

func (s *HandlerTestSuite) TestSaveValidation() {
	testCases := []struct {
		name      string
		transform func(req *web.SaveProfileReq)
		// 期望出错的字段
		wantField string
	}{
		{
			name: "名字缺失",
			transform: func(req *web.SaveProfileReq) {
				req.FirstName = ""
			},
			wantField: "firstName",
		},
		{
			name: "身份证号码位数不对",
			transform: func(req *web.SaveProfileReq) {
				req.NationalCode = "12345"
			},
			wantField: "nationalCode",
		},
		{
			name: "非法性别",
			transform: func(req *web.SaveProfileReq) {
				req.Gender = "other"
			},
			wantField: "gender",
		},
		{
			name: "兄弟姐妹数量为负",
			transform: func(req *web.SaveProfileReq) {
				req.SiblingCount = -1
			},
			wantField: "siblingCount",
		},
		{
			name: "邮编不对",
			transform: func(req *web.SaveProfileReq) {
				req.PostalCode = "abc"
			},
			wantField: "postalCode",
		},
		{
			name: "手机号不是 09 开头",
			transform: func(req *web.SaveProfileReq) {
				req.Mobile = "08123456789"
			},
			wantField: "mobile",
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			req := validReq()
			tc.transform(&req)
			recorder := s.save(req)
			require.Equal(t, 200, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, 502002, res.Code)
			assert.Contains(t, res.Data, tc.wantField)
			// 校验失败不能落库
			var cnt int64
			err := s.db.Model(&dao.Profile{}).Where("uid = ?", uid).Count(&cnt).Error
			require.NoError(t, err)
			assert.Equal(t, int64(0), cnt)
		})
	}
}

func (s *HandlerTestSuite) TestDetail() {
	// 没填过资料，拿到空的默认值
	req, err := http.NewRequest(http.MethodGet, "/profile", nil)
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.ProfileVO]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	assert.Equal(s.T(), web.ProfileVO{}, recorder.MustScan().Data)

	// 保存之后生日要原样读回来
	saveRecorder := s.save(validReq())
	require.Equal(s.T(), 200, saveRecorder.Code)

	recorder = test.NewJSONResponseRecorder[web.ProfileVO]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	got := recorder.MustScan().Data
	assert.Equal(s.T(), "1370-05-14", got.BirthDate)
	assert.Equal(s.T(), "رضایی", got.LastName)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
