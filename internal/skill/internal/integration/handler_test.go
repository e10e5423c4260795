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
	"github.com/irantalent/estekhdam/internal/skill/internal/integration/startup"
	"github.com/irantalent/estekhdam/internal/skill/internal/repository/dao"
	"github.com/irantalent/estekhdam/internal/skill/internal/web"
	"github.com/irantalent/estekhdam/internal/test"
	testioc "github.com/irantalent/estekhdam/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = int64(5023)

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
	err := s.db.Exec("TRUNCATE TABLE `skills`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) saveAll(req web.SaveAllReq) *test.JSONResponseRecorder[any] {
	httpReq, err := http.NewRequest(http.MethodPost,
		"/skill/save-all", iox.NewJSONReader(req))
	httpReq.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, httpReq)
	return recorder
}

func (s *HandlerTestSuite) list() web.SkillSetVO {
	req, err := http.NewRequest(http.MethodPost, "/skill/list", nil)
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.SkillSetVO]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	return recorder.MustScan().Data
}

func validReq() web.SaveAllReq {
	return web.SaveAllReq{
		Technical: []web.TechnicalSkill{
			{Name: "Golang", Level: 5},
			{Name: "MySQL", Level: 4},
		},
		Languages: []web.LanguageSkill{
			{
				Language:      "انگلیسی",
				Reading:       "excellent",
				Writing:       "medium",
				Speaking:      "medium",
				Comprehension: "excellent",
			},
		},
		Management: []web.ManagementSkill{
			{Name: "رهبری", Level: 4},
			{Name: "مدیریت پروژه", Level: 3},
			{Name: "کار تیمی", Level: 5},
		},
		Resume: &web.ResumeFile{
			Filename: "resume.pdf",
			Data:     "data:application/pdf;base64,JVBERi0xLjQ=",
		},
	}
}

func (s *HandlerTestSuite) TestSaveAllAndList() {
	recorder := s.saveAll(validReq())
	require.Equal(s.T(), 200, recorder.Code)
	require.Equal(s.T(), 0, recorder.MustScan().Code)

	got := s.list()
	assert.Len(s.T(), got.Technical, 2)
	assert.Len(s.T(), got.Languages, 1)
	assert.Len(s.T(), got.Management, 3)
	require.NotNil(s.T(), got.Resume)
	assert.Equal(s.T(), "resume.pdf", got.Resume.Filename)

	// 每一行都要带上显式的 kind
	var cnt int64
	err := s.db.Model(&dao.Skill{}).
		Where("uid = ? AND kind = ?", uid, dao.KindResume).Count(&cnt).Error
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), cnt)
}

func (s *HandlerTestSuite) TestSaveAllReplaces() {
	recorder := s.saveAll(validReq())
	require.Equal(s.T(), 200, recorder.Code)

	// 第二次保存去掉简历，只留一个技术技能
	recorder = s.saveAll(web.SaveAllReq{
		Technical: []web.TechnicalSkill{{Name: "Kafka", Level: 3}},
	})
	require.Equal(s.T(), 200, recorder.Code)

	got := s.list()
	require.Len(s.T(), got.Technical, 1)
	assert.Equal(s.T(), "Kafka", got.Technical[0].Name)
	assert.Len(s.T(), got.Languages, 0)
	assert.Nil(s.T(), got.Resume)
}

func (s *HandlerTestSuite) TestFourthManagementSkillRejected() {
	recorder := s.saveAll(validReq())
	require.Equal(s.T(), 200, recorder.Code)

	req := validReq()
	req.Management = append(req.Management, web.ManagementSkill{Name: "مذاکره", Level: 2})
	recorder = s.saveAll(req)
	require.Equal(s.T(), 200, recorder.Code)
	res := recorder.MustScan()
	assert.Equal(s.T(), 505003, res.Code)

	// 原来的三个要原封不动
	got := s.list()
	assert.Len(s.T(), got.Management, 3)
}

func (s *HandlerTestSuite) TestSaveAllValidation() {
	testCases := []struct {
		name      string
		transform func(req *web.SaveAllReq)
	}{
		{
			name: "星级越界",
			transform: func(req *web.SaveAllReq) {
				req.Technical[0].Level = 6
			},
		},
		{
			name: "星级为零",
			transform: func(req *web.SaveAllReq) {
				req.Technical[0].Level = 0
			},
		},
		{
			name: "语言熟练度非法",
			transform: func(req *web.SaveAllReq) {
				req.Languages[0].Reading = "perfect"
			},
		},
		{
			name: "管理技能不在目录里",
			transform: func(req *web.SaveAllReq) {
				req.Management[0].Name = "随便写的"
			},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			req := validReq()
			tc.transform(&req)
			recorder := s.saveAll(req)
			require.Equal(t, 200, recorder.Code)
			assert.Equal(t, 505002, recorder.MustScan().Code)
		})
	}
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
