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
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/irantalent/estekhdam/internal/application/internal/integration/startup"
	"github.com/irantalent/estekhdam/internal/application/internal/repository/dao"
	"github.com/irantalent/estekhdam/internal/application/internal/web"
	"github.com/irantalent/estekhdam/internal/education"
	educationmocks "github.com/irantalent/estekhdam/internal/education/mocks"
	"github.com/irantalent/estekhdam/internal/pkg/pdf"
	"github.com/irantalent/estekhdam/internal/profile"
	profilemocks "github.com/irantalent/estekhdam/internal/profile/mocks"
	"github.com/irantalent/estekhdam/internal/skill"
	skillmocks "github.com/irantalent/estekhdam/internal/skill/mocks"
	"github.com/irantalent/estekhdam/internal/test"
	testioc "github.com/irantalent/estekhdam/internal/test/ioc"
	"github.com/irantalent/estekhdam/internal/work"
	workmocks "github.com/irantalent/estekhdam/internal/work/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const uid = int64(8077)

// fakeConverter 测试里不起真的 Chrome
type fakeConverter struct{}

func (fakeConverter) ConvertHTMLToPDF(ctx context.Context, html string, opts ...pdf.Option) ([]byte, error) {
	return []byte("%PDF-1.4 fake\n" + html), nil
}

type HandlerTestSuite struct {
	suite.Suite
	server      *egin.Component
	adminServer *egin.Component
	consume     func() error
	db          *egorm.Component
	dao         dao.ApplicationDAO
}

func (s *HandlerTestSuite) SetupSuite() {
	ctrl := gomock.NewController(s.T())
	profileSvc := profilemocks.NewMockProfileService(ctrl)
	profileSvc.EXPECT().Profile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, uid int64) (profile.Profile, error) {
			return profile.Profile{
				Uid:          uid,
				FirstName:    "سارا",
				LastName:     "محمدی",
				NationalCode: "0453817591",
				Mobile:       "09123456789",
				Email:        "sara@example.com",
				City:         "تهران",
			}, nil
		}).AnyTimes()
	educationSvc := educationmocks.NewMockEducationService(ctrl)
	educationSvc.EXPECT().List(gomock.Any(), gomock.Any()).
		Return([]education.Education{
			{Degree: "کارشناسی", FieldOfStudy: "مهندسی نرم‌افزار", InstitutionName: "دانشگاه تهران", StartDate: "1392-07-01", EndDate: "1396-04-01"},
		}, nil).AnyTimes()
	workSvc := workmocks.NewMockWorkService(ctrl)
	workSvc.EXPECT().List(gomock.Any(), gomock.Any()).
		Return([]work.Work{
			{Company: "ایران‌تلنت", Position: "توسعه‌دهنده", StartDate: "1396-05-01", StillWorking: true},
		}, nil).AnyTimes()
	skillSvc := skillmocks.NewMockSkillService(ctrl)
	skillSvc.EXPECT().Detail(gomock.Any(), gomock.Any()).
		Return(skill.SkillSet{
			Technical: []skill.TechnicalSkill{{Name: "Go", Level: 5}},
		}, nil).AnyTimes()

	m, err := startup.InitModule(fakeConverter{},
		&profile.Module{Svc: profileSvc},
		&education.Module{Svc: educationSvc},
		&work.Module{Svc: workSvc},
		&skill.Module{Svc: skillSvc})
	require.NoError(s.T(), err)
	// 测试里同步消费，避免和断言赛跑
	s.consume = func() error {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		return m.Consumer.Consume(ctx)
	}

	econf.Set("server", map[string]any{"debug": true})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	m.Hdl.PrivateRoutes(server.Engine)
	s.server = server

	econf.Set("admin", map[string]any{"debug": true})
	adminServer := egin.Load("admin").Build()
	adminServer.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  1,
			Data: map[string]string{"admin": "true"},
		}))
	})
	m.AdminHdl.PrivateRoutes(adminServer.Engine)
	s.adminServer = adminServer

	s.db = testioc.InitDB()
	s.dao = dao.NewGORMApplicationDAO(s.db)
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `applications`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) submit() test.Result[web.SubmitResp] {
	req, err := http.NewRequest(http.MethodPost, "/application/submit", nil)
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.SubmitResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	return recorder.MustScan()
}

func (s *HandlerTestSuite) summary() test.Result[web.SummaryVO] {
	req, err := http.NewRequest(http.MethodGet, "/application/summary", nil)
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.SummaryVO]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	return recorder.MustScan()
}

func (s *HandlerTestSuite) decide(req web.DecideReq) test.Result[any] {
	httpReq, err := http.NewRequest(http.MethodPost, "/applications/decide", iox.NewJSONReader(req))
	httpReq.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[any]()
	s.adminServer.ServeHTTP(recorder, httpReq)
	require.Equal(s.T(), 200, recorder.Code)
	return recorder.MustScan()
}

func (s *HandlerTestSuite) list(req web.ListReq) test.Result[web.ListResp] {
	httpReq, err := http.NewRequest(http.MethodPost, "/applications/list", iox.NewJSONReader(req))
	httpReq.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.ListResp]()
	s.adminServer.ServeHTTP(recorder, httpReq)
	require.Equal(s.T(), 200, recorder.Code)
	return recorder.MustScan()
}

func (s *HandlerTestSuite) TestSubmitOnce() {
	res := s.submit()
	require.Equal(s.T(), 0, res.Code)
	assert.NotEmpty(s.T(), res.Data.SN)

	app, err := s.dao.FindByUid(s.T().Context(), uid)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "pending", app.Status)
	assert.Equal(s.T(), "محمدی", app.LastName)
	// 快照里有提交那一刻的完整材料
	require.True(s.T(), app.Snapshot.Valid)
	assert.Equal(s.T(), "سارا", app.Snapshot.Val.Profile.FirstName)
	assert.Len(s.T(), app.Snapshot.Val.Educations, 1)

	// 再交一次只会得到提示，不会多一行
	res = s.submit()
	assert.Equal(s.T(), 508002, res.Code)
	assert.Equal(s.T(), "قبلا ارسال شده", res.Msg)
	count, err := s.dao.Count(s.T().Context(), "", "")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), count)
}

func (s *HandlerTestSuite) TestSummaryLifecycle() {
	// 还没提交过
	res := s.summary()
	require.Equal(s.T(), 0, res.Code)
	assert.False(s.T(), res.Data.Submitted)

	sn := s.submit().Data.SN
	res = s.summary()
	require.Equal(s.T(), 0, res.Code)
	assert.True(s.T(), res.Data.Submitted)
	assert.Equal(s.T(), sn, res.Data.SN)
	assert.Equal(s.T(), "pending", res.Data.Status)

	app, err := s.dao.FindByUid(s.T().Context(), uid)
	require.NoError(s.T(), err)
	decideRes := s.decide(web.DecideReq{
		Id:      app.Id,
		Status:  "approved",
		Message: "تایید شد",
	})
	require.Equal(s.T(), 0, decideRes.Code)
	// 审核事件把摘要缓存清掉
	require.NoError(s.T(), s.consume())

	res = s.summary()
	require.Equal(s.T(), 0, res.Code)
	assert.Equal(s.T(), "approved", res.Data.Status)
	assert.Equal(s.T(), "تایید شد", res.Data.Message)
	assert.True(s.T(), res.Data.DecidedAt > 0)
}

func (s *HandlerTestSuite) TestDecideTransitions() {
	sn := s.submit().Data.SN
	require.NotEmpty(s.T(), sn)
	app, err := s.dao.FindByUid(s.T().Context(), uid)
	require.NoError(s.T(), err)

	// 待审不能退回待审
	res := s.decide(web.DecideReq{Id: app.Id, Status: "pending"})
	assert.Equal(s.T(), 508005, res.Code)

	res = s.decide(web.DecideReq{Id: app.Id, Status: "approved"})
	require.Equal(s.T(), 0, res.Code)
	require.NoError(s.T(), s.consume())

	// 批准之后还能改成拒绝
	res = s.decide(web.DecideReq{Id: app.Id, Status: "rejected", Message: "مدارک ناقص است"})
	require.Equal(s.T(), 0, res.Code)
	require.NoError(s.T(), s.consume())
	got, err := s.dao.FindById(s.T().Context(), app.Id)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "rejected", got.Status)

	// 不存在的申请
	res = s.decide(web.DecideReq{Id: 99999, Status: "approved"})
	assert.Equal(s.T(), 508004, res.Code)
}

func (s *HandlerTestSuite) TestDecideMessageTruncated() {
	sn := s.submit().Data.SN
	require.NotEmpty(s.T(), sn)
	app, err := s.dao.FindByUid(s.T().Context(), uid)
	require.NoError(s.T(), err)

	long := strings.Repeat("ن", 600)
	res := s.decide(web.DecideReq{Id: app.Id, Status: "rejected", Message: long})
	require.Equal(s.T(), 0, res.Code)
	require.NoError(s.T(), s.consume())

	got, err := s.dao.FindById(s.T().Context(), app.Id)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 500, len([]rune(got.Message)))
}

func (s *HandlerTestSuite) TestListFilterAndSearch() {
	now := time.Now().UnixMilli()
	rows := []dao.Application{
		{Uid: 9001, SN: "sn-9001", Status: "pending", FirstName: "سارا", LastName: "محمدی", Ctime: now, Utime: now},
		{Uid: 9002, SN: "sn-9002", Status: "approved", FirstName: "علی", LastName: "رضایی", Ctime: now, Utime: now},
		{Uid: 9003, SN: "sn-9003", Status: "rejected", FirstName: "Omid", LastName: "Karimi", Ctime: now, Utime: now},
	}
	for _, row := range rows {
		require.NoError(s.T(), s.db.Create(&row).Error)
	}

	// 全部
	res := s.list(web.ListReq{Offset: 0, Limit: 10, Status: "all"})
	require.Equal(s.T(), 0, res.Code)
	assert.Equal(s.T(), int64(3), res.Data.Total)

	// 按状态过滤
	res = s.list(web.ListReq{Offset: 0, Limit: 10, Status: "approved"})
	require.Equal(s.T(), 0, res.Code)
	require.Len(s.T(), res.Data.Applications, 1)
	assert.Equal(s.T(), "رضایی", res.Data.Applications[0].LastName)

	// 姓氏搜索大小写不敏感
	res = s.list(web.ListReq{Offset: 0, Limit: 10, Keyword: "KARIMI"})
	require.Equal(s.T(), 0, res.Code)
	require.Len(s.T(), res.Data.Applications, 1)
	assert.Equal(s.T(), "Karimi", res.Data.Applications[0].LastName)

	// 没命中就是空列表
	res = s.list(web.ListReq{Offset: 0, Limit: 10, Keyword: "احمدی"})
	require.Equal(s.T(), 0, res.Code)
	assert.Equal(s.T(), int64(0), res.Data.Total)
	assert.Empty(s.T(), res.Data.Applications)

	// 非法状态
	res = s.list(web.ListReq{Offset: 0, Limit: 10, Status: "whatever"})
	assert.Equal(s.T(), 508005, res.Code)
}

func (s *HandlerTestSuite) TestResume() {
	req, err := http.NewRequest(http.MethodPost, "/applications/resume",
		iox.NewJSONReader(web.ResumeReq{Uid: uid}))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.ResumeVO]()
	s.adminServer.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	res := recorder.MustScan()
	require.Equal(s.T(), 0, res.Code)
	assert.Contains(s.T(), res.Data.Html, "سارا محمدی")
	assert.Contains(s.T(), res.Data.Html, "کارشناسی")
	assert.Contains(s.T(), res.Data.Html, "ایران‌تلنت")
}

func (s *HandlerTestSuite) TestResumePdf() {
	req, err := http.NewRequest(http.MethodPost, "/applications/resume/pdf",
		iox.NewJSONReader(web.ResumeReq{Uid: uid}))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[any]()
	s.adminServer.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	assert.Equal(s.T(), "application/pdf", recorder.Header().Get("Content-Type"))
	assert.True(s.T(), strings.HasPrefix(recorder.Body.String(), "%PDF"))
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
