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
	"github.com/irantalent/estekhdam/internal/education/internal/integration/startup"
	"github.com/irantalent/estekhdam/internal/education/internal/repository/dao"
	"github.com/irantalent/estekhdam/internal/education/internal/web"
	"github.com/irantalent/estekhdam/internal/test"
	testioc "github.com/irantalent/estekhdam/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = int64(3011)

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	dao    dao.EducationDAO
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
	s.dao = dao.NewGORMEducationDAO(s.db)
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `educations`").Error
	require.NoError(s.T(), err)
}

func entry(degree string) web.Education {
	return web.Education{
		Degree:          degree,
		FieldOfStudy:    "نرم‌افزار",
		InstitutionType: "دولتی",
		InstitutionName: "دانشگاه تهران",
		Grade:           "17.5",
		StartDate:       "1392-07-01",
		EndDate:         "1396-04-01",
	}
}

func (s *HandlerTestSuite) save(req web.SaveReq) *test.JSONResponseRecorder[any] {
	httpReq, err := http.NewRequest(http.MethodPost,
		"/education/save", iox.NewJSONReader(req))
	httpReq.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, httpReq)
	return recorder
}

func (s *HandlerTestSuite) list() web.ListResp {
	req, err := http.NewRequest(http.MethodPost, "/education/list", nil)
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.ListResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	return recorder.MustScan().Data
}

func (s *HandlerTestSuite) TestSaveReplacesAll() {
	recorder := s.save(web.SaveReq{Entries: []web.Education{
		entry("کارشناسی"), entry("کارشناسی ارشد"),
	}})
	require.Equal(s.T(), 200, recorder.Code)

	// 再保存一个更短的列表，旧的要被整体换掉
	recorder = s.save(web.SaveReq{Entries: []web.Education{
		entry("دکتری"),
	}})
	require.Equal(s.T(), 200, recorder.Code)

	got := s.list()
	require.Len(s.T(), got.Entries, 1)
	assert.Equal(s.T(), "دکتری", got.Entries[0].Degree)

	var cnt int64
	err := s.db.Model(&dao.Education{}).Where("uid = ?", uid).Count(&cnt).Error
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), cnt)
}

func (s *HandlerTestSuite) TestDeletePreservesOrder() {
	recorder := s.save(web.SaveReq{Entries: []web.Education{
		entry("دیپلم"), entry("کارشناسی"), entry("کارشناسی ارشد"),
	}})
	require.Equal(s.T(), 200, recorder.Code)

	req, err := http.NewRequest(http.MethodPost,
		"/education/delete", iox.NewJSONReader(web.DeleteReq{Index: 1}))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	delRecorder := test.NewJSONResponseRecorder[web.ListResp]()
	s.server.ServeHTTP(delRecorder, req)
	require.Equal(s.T(), 200, delRecorder.Code)

	got := s.list()
	assert.Equal(s.T(), []string{"دیپلم", "کارشناسی ارشد"},
		slice.Map(got.Entries, func(idx int, src web.Education) string {
			return src.Degree
		}))
}

func (s *HandlerTestSuite) TestSaveValidation() {
	e := entry("کارشناسی")
	e.EndDate = ""
	// 没结束时间又没勾在读，要报错
	recorder := s.save(web.SaveReq{Entries: []web.Education{e}})
	require.Equal(s.T(), 200, recorder.Code)
	res := recorder.MustScan()
	assert.Equal(s.T(), 503002, res.Code)
	assert.Len(s.T(), s.list().Entries, 0)

	// 勾了在读就可以没有结束时间
	e.StillStudying = true
	recorder = s.save(web.SaveReq{Entries: []web.Education{e}})
	require.Equal(s.T(), 200, recorder.Code)
	assert.Equal(s.T(), 0, recorder.MustScan().Code)
	assert.Len(s.T(), s.list().Entries, 1)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
