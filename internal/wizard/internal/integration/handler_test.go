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

package integration

import (
	"context"
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/irantalent/estekhdam/internal/draft"
	draftmocks "github.com/irantalent/estekhdam/internal/draft/mocks"
	"github.com/irantalent/estekhdam/internal/education"
	educationmocks "github.com/irantalent/estekhdam/internal/education/mocks"
	"github.com/irantalent/estekhdam/internal/profile"
	profilemocks "github.com/irantalent/estekhdam/internal/profile/mocks"
	"github.com/irantalent/estekhdam/internal/skill"
	skillmocks "github.com/irantalent/estekhdam/internal/skill/mocks"
	"github.com/irantalent/estekhdam/internal/test"
	"github.com/irantalent/estekhdam/internal/wizard/internal/integration/startup"
	"github.com/irantalent/estekhdam/internal/wizard/internal/web"
	"github.com/irantalent/estekhdam/internal/work"
	workmocks "github.com/irantalent/estekhdam/internal/work/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const uid = int64(7042)

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component

	// drafts 假的草稿存储，按步骤存
	drafts map[draft.Step]string
	// savedProfile 最近一次同步到档案模块的数据
	savedProfile *profile.Profile
	savedSkills  *skill.SkillSet
}

func (s *HandlerTestSuite) SetupTest() {
	s.drafts = make(map[draft.Step]string)
	s.savedProfile = nil
	s.savedSkills = nil

	ctrl := gomock.NewController(s.T())
	draftSvc := draftmocks.NewMockDraftService(ctrl)
	draftSvc.EXPECT().Load(gomock.Any(), int64(uid), gomock.Any()).
		DoAndReturn(func(ctx context.Context, uid int64, step draft.Step) (string, error) {
			return s.drafts[step], nil
		}).AnyTimes()
	draftSvc.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, d draft.Draft) error {
			s.drafts[d.Step] = d.Payload
			return nil
		}).AnyTimes()

	profileSvc := profilemocks.NewMockProfileService(ctrl)
	profileSvc.EXPECT().Profile(gomock.Any(), int64(uid)).
		Return(profile.Profile{
			Uid:       uid,
			FirstName: "علی",
			LastName:  "رضایی",
		}, nil).AnyTimes()
	profileSvc.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, p profile.Profile) (int64, error) {
			s.savedProfile = &p
			return 1, nil
		}).AnyTimes()

	educationSvc := educationmocks.NewMockEducationService(ctrl)
	educationSvc.EXPECT().List(gomock.Any(), int64(uid)).
		Return([]education.Education{{Degree: "کارشناسی"}}, nil).AnyTimes()
	educationSvc.EXPECT().Save(gomock.Any(), int64(uid), gomock.Any()).
		Return(nil).AnyTimes()

	workSvc := workmocks.NewMockWorkService(ctrl)
	workSvc.EXPECT().List(gomock.Any(), int64(uid)).
		Return([]work.Work{}, nil).AnyTimes()
	workSvc.EXPECT().Save(gomock.Any(), int64(uid), gomock.Any()).
		Return(nil).AnyTimes()

	skillSvc := skillmocks.NewMockSkillService(ctrl)
	skillSvc.EXPECT().Detail(gomock.Any(), int64(uid)).
		Return(skill.SkillSet{Uid: uid}, nil).AnyTimes()
	skillSvc.EXPECT().SaveAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, set skill.SkillSet) error {
			if len(set.Management) > 3 {
				return skill.ErrTooManyManagementSkills
			}
			s.savedSkills = &set
			return nil
		}).AnyTimes()

	m, err := startup.InitModule(
		&profile.Module{Svc: profileSvc},
		&education.Module{Svc: educationSvc},
		&work.Module{Svc: workSvc},
		&skill.Module{Svc: skillSvc},
		&draft.Module{Svc: draftSvc})
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
}

func (s *HandlerTestSuite) load(step string) test.Result[web.StepVO] {
	req, err := http.NewRequest(http.MethodPost, "/wizard/load",
		iox.NewJSONReader(web.LoadReq{Step: step}))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.StepVO]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	return recorder.MustScan()
}

func (s *HandlerTestSuite) submit(step, payload string) test.Result[web.SubmitResp] {
	req, err := http.NewRequest(http.MethodPost, "/wizard/submit",
		iox.NewJSONReader(web.SubmitReq{Step: step, Payload: payload}))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.SubmitResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	return recorder.MustScan()
}

const validPersonalInfo = `{
	"firstName": "علی",
	"lastName": "رضایی",
	"nationalCode": "0453817591",
	"birthDate": "1370-01-01",
	"gender": "male",
	"maritalStatus": "single",
	"postalCode": "1234567890",
	"mobile": "09123456789",
	"email": "ali@example.com"
}`

func (s *HandlerTestSuite) TestLoadCanonicalRecord() {
	// 没有草稿时读正式记录
	res := s.load("personal-info")
	require.Equal(s.T(), 0, res.Code)
	assert.Equal(s.T(), "personal-info", res.Data.Step)
	assert.Equal(s.T(), "", res.Data.Prev)
	assert.Equal(s.T(), "education", res.Data.Next)
	assert.False(s.T(), res.Data.FromDraft)
	assert.Contains(s.T(), res.Data.Payload, "علی")
}

func (s *HandlerTestSuite) TestLoadDraftWins() {
	payload := `{"firstName":"مریم"}`
	s.drafts[draft.StepPersonalInfo] = payload
	res := s.load("personal-info")
	require.Equal(s.T(), 0, res.Code)
	assert.True(s.T(), res.Data.FromDraft)
	assert.Equal(s.T(), payload, res.Data.Payload)
}

func (s *HandlerTestSuite) TestLoadSummary() {
	// 摘要页没有草稿也没有表单数据
	res := s.load("summary")
	require.Equal(s.T(), 0, res.Code)
	assert.Equal(s.T(), "skill", res.Data.Prev)
	assert.Equal(s.T(), "", res.Data.Next)
	assert.False(s.T(), res.Data.FromDraft)
	assert.Equal(s.T(), "", res.Data.Payload)
}

func (s *HandlerTestSuite) TestSubmitAdvances() {
	res := s.submit("personal-info", validPersonalInfo)
	require.Equal(s.T(), 0, res.Code)
	assert.Equal(s.T(), "education", res.Data.Next)
	// 同步到了档案模块
	require.NotNil(s.T(), s.savedProfile)
	assert.Equal(s.T(), uid, s.savedProfile.Uid)
	assert.Equal(s.T(), "علی", s.savedProfile.FirstName)
	// 草稿也更新成刚提交的内容
	assert.Equal(s.T(), validPersonalInfo, s.drafts[draft.StepPersonalInfo])
}

func (s *HandlerTestSuite) TestSubmitRejected() {
	testCases := []struct {
		name     string
		step     string
		payload  string
		wantCode int
	}{
		{
			name:     "未知步骤",
			step:     "unknown",
			payload:  validPersonalInfo,
			wantCode: 507002,
		},
		{
			name:     "摘要页不能提交",
			step:     "summary",
			payload:  "{}",
			wantCode: 507002,
		},
		{
			name:     "不是合法的JSON",
			step:     "personal-info",
			payload:  "{not-json",
			wantCode: 507003,
		},
		{
			name:     "缺必填字段",
			step:     "personal-info",
			payload:  `{"lastName":"رضایی"}`,
			wantCode: 507003,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			res := s.submit(tc.step, tc.payload)
			assert.Equal(t, tc.wantCode, res.Code)
			// 被拒绝的提交不会落到档案模块，也不会写草稿
			assert.Nil(t, s.savedProfile)
			assert.Empty(t, s.drafts)
		})
	}
}

func (s *HandlerTestSuite) TestSubmitTooManyManagementSkills() {
	payload := `{
		"management": [
			{"name": "رهبری", "level": 4},
			{"name": "مدیریت پروژه", "level": 3},
			{"name": "مدیریت زمان", "level": 5},
			{"name": "برنامه‌ریزی", "level": 2}
		]
	}`
	res := s.submit("skill", payload)
	assert.Equal(s.T(), 505003, res.Code)
	assert.Nil(s.T(), s.savedSkills)
	// 同步失败不写草稿
	assert.Empty(s.T(), s.drafts)
}

func (s *HandlerTestSuite) TestLoadUnknownStep() {
	res := s.load("whatever")
	assert.Equal(s.T(), 507002, res.Code)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
