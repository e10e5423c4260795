package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
	"github.com/irantalent/estekhdam/internal/application"
	"github.com/irantalent/estekhdam/internal/draft"
	"github.com/irantalent/estekhdam/internal/education"
	"github.com/irantalent/estekhdam/internal/pkg/middleware"
	"github.com/irantalent/estekhdam/internal/profile"
	"github.com/irantalent/estekhdam/internal/skill"
	"github.com/irantalent/estekhdam/internal/user"
	"github.com/irantalent/estekhdam/internal/wizard"
	"github.com/irantalent/estekhdam/internal/work"
)

func initGinxServer(sp session.Provider,
	userHdl *user.Handler,
	profileHdl *profile.Handler,
	educationHdl *education.Handler,
	workHdl *work.Handler,
	skillHdl *skill.Handler,
	draftHdl *draft.Handler,
	wizardHdl *wizard.Handler,
	applicationHdl *application.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("server").Build()
	res.Use(middleware.NewMetricsBuilder("server").Build())
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			// 只允许我的域名过来的
			return strings.Contains(origin, "irantalent.com")
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	userHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	userHdl.PrivateRoutes(res.Engine)
	profileHdl.PrivateRoutes(res.Engine)
	educationHdl.PrivateRoutes(res.Engine)
	workHdl.PrivateRoutes(res.Engine)
	skillHdl.PrivateRoutes(res.Engine)
	draftHdl.PrivateRoutes(res.Engine)
	wizardHdl.PrivateRoutes(res.Engine)
	applicationHdl.PrivateRoutes(res.Engine)
	return res
}
