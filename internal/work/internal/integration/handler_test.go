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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/irantalent/estekhdam/internal/test"
	testioc "github.com/irantalent/estekhdam/internal/test/ioc"
	"github.com/irantalent/estekhdam/internal/work/internal/integration/startup"
	"github.com/irantalent/estekhdam/internal/work/internal/repository/dao"
	"github.com/irantalent/estekhdam/internal/work/internal/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = int64(4099)

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
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
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `work_infos`").Error
	require.NoError(s.T(), err)
}

func entry(company string) web.Work {
	return web.Work{
		Company:         company,
		Position:        "برنامه‌نویس",
		Field:           "نرم‌افزار",
		OrgLevel:        "کارشناس",
		CooperationType: "تمام‌وقت",
		InsuranceMonths: 24,
		StartDate:       "1397-01-01",
		EndDate:         "1399-06-31",
		WorkPhone:       "02112345678",
		LastSalary:      90000000,
	}
}

func (s *HandlerTestSuite) save(req web.SaveReq) *test.JSONResponseRecorder[any] {
	httpReq, err := http.NewRequest(http.MethodPost,
		"/work/save", iox.NewJSONReader(req))
	httpReq.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, httpReq)
	return recorder
}

func (s *HandlerTestSuite) list() web.ListResp {
	req, err := http.NewRequest(http.MethodPost, "/work/list", nil)
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.ListResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	return recorder.MustScan().Data
}

func (s *HandlerTestSuite) TestSaveReplacesAll() {
	recorder := s.save(web.SaveReq{Entries: []web.Work{
		entry("ایران‌تلنت"), entry("دیجی‌کالا"),
	}})
	require.Equal(s.T(), 200, recorder.Code)

	recorder = s.save(web.SaveReq{Entries: []web.Work{
		entry("اسنپ"),
	}})
	require.Equal(s.T(), 200, recorder.Code)

	got := s.list()
	require.Len(s.T(), got.Entries, 1)
	assert.Equal(s.T(), "اسنپ", got.Entries[0].Company)

	var cnt int64
	err := s.db.Model(&dao.Work{}).Where("uid = ?", uid).Count(&cnt).Error
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), cnt)
}

func (s *HandlerTestSuite) TestDeletePreservesOrder() {
	recorder := s.save(web.SaveReq{Entries: []web.Work{
		entry("الف"), entry("ب"), entry("ج"),
	}})
	require.Equal(s.T(), 200, recorder.Code)

	req, err := http.NewRequest(http.MethodPost,
		"/work/delete", iox.NewJSONReader(web.DeleteReq{Index: 0}))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	delRecorder := test.NewJSONResponseRecorder[web.ListResp]()
	s.server.ServeHTTP(delRecorder, req)
	require.Equal(s.T(), 200, delRecorder.Code)

	got := s.list()
	assert.Equal(s.T(), []string{"ب", "ج"},
		slice.Map(got.Entries, func(idx int, src web.Work) string {
			return src.Company
		}))
}

func (s *HandlerTestSuite) TestSaveValidation() {
	testCases := []struct {
		name      string
		transform func(e *web.Work)
	}{
		{
			name: "公司名缺失",
			transform: func(e *web.Work) {
				e.Company = ""
			},
		},
		{
			name: "保险月数为负",
			transform: func(e *web.Work) {
				e.InsuranceMonths = -1
			},
		},
		{
			name: "还在职却没有勾选",
			transform: func(e *web.Work) {
				e.EndDate = ""
				e.StillWorking = false
			},
		},
		{
			name: "座机位数不对",
			transform: func(e *web.Work) {
				e.WorkPhone = "123"
			},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			e := entry("شرکت")
			tc.transform(&e)
			recorder := s.save(web.SaveReq{Entries: []web.Work{e}})
			require.Equal(t, 200, recorder.Code)
			assert.Equal(t, 504002, recorder.MustScan().Code)
			assert.Len(t, s.list().Entries, 0)
		})
	}
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
