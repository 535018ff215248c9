package controller

import (
	"net/http"

	"github.com/EnrichTheWorld/enrich-the-world-blog/config"
	blogctrl "github.com/EnrichTheWorld/enrich-the-world-blog/internal/controller/blog"
	quizctrl "github.com/EnrichTheWorld/enrich-the-world-blog/internal/controller/quiz"
	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/dto"
	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/i18n"
	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/metrics"
	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/middleware"
	"github.com/gin-gonic/gin"
)

const (
	APIPrefix    = "/api/v1"
	KoreanPrefix = "/kr"
)

type Controller struct {
	blog *blogctrl.BlogController
	quiz *quizctrl.QuizController
	cfg  *config.Config
}

func NewController(blog *blogctrl.BlogController, quiz *quizctrl.QuizController, cfg *config.Config) *Controller {
	return &Controller{blog: blog, quiz: quiz, cfg: cfg}
}

// RegisterRoutes mounts the API twice: English under /api/v1 and Korean under /api/v1/kr.
func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	router.GET("/healthz", ctrl.Health)
	router.GET("/metrics", metrics.Handler())

	apiV1 := router.Group(APIPrefix, middleware.Locale(), middleware.ClientID())
	ctrl.registerLocalized(apiV1)
	ctrl.registerLocalized(apiV1.Group(KoreanPrefix))

	apiV1.GET("/cms/diagnostics", ctrl.blog.Diagnostics)
	apiV1.GET("/locales", ctrl.Locales)
}

func (ctrl *Controller) registerLocalized(rg *gin.RouterGroup) {
	rg.GET("/home", ctrl.blog.Home)

	posts := rg.Group("/posts")
	posts.GET("", ctrl.blog.ListPosts)
	posts.GET("/featured", ctrl.blog.ListFeaturedPosts)
	posts.GET("/latest", ctrl.blog.ListLatestPosts)
	posts.GET("/:slug", ctrl.blog.GetPost)

	rg.GET("/categories", ctrl.blog.ListCategories)
	rg.GET("/categories/:slug/posts", ctrl.blog.ListPostsByCategory)
	rg.GET("/tags/:tag/posts", ctrl.blog.ListPostsByTag)
	rg.GET("/authors", ctrl.blog.ListAuthors)

	quiz := rg.Group("/quiz")
	quiz.GET("/questions", ctrl.quiz.ListQuestions)
	quiz.POST("/sessions", ctrl.quiz.StartSession)
	quiz.GET("/sessions/:id", ctrl.quiz.GetSession)
	quiz.POST("/sessions/:id/answer", ctrl.quiz.SubmitAnswer)
	quiz.POST("/sessions/:id/advance", ctrl.quiz.Advance)
	quiz.POST("/sessions/:id/restart", ctrl.quiz.Restart)
	quiz.GET("/history", ctrl.quiz.History)
	quiz.GET("/stats", ctrl.quiz.Stats)
}

// Health godoc
// @Summary Liveness probe
// @Tags System
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /healthz [get]
func (ctrl *Controller) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "ok",
		Storage: ctrl.cfg.Storage.Driver,
		CMS:     ctrl.cfg.Contentful.Configured(),
	})
}

// Locales godoc
// @Summary Language switcher
// @Description Lists the supported locales and the given page path rewritten for each of them.
// @Tags System
// @Produce json
// @Param path query string false "Page path, e.g. /kr/blog/hello" default(/)
// @Success 200 {object} dto.LocalesResponse
// @Router /locales [get]
func (ctrl *Controller) Locales(ctx *gin.Context) {
	path := ctx.DefaultQuery("path", "/")
	if path == "" || path[0] != '/' {
		path = "/" + path
	}
	current := i18n.LocaleFromPath(path)
	base := i18n.StripLocale(path, current)

	resp := dto.LocalesResponse{Current: string(current), Path: base}
	for _, l := range i18n.Locales {
		resp.Locales = append(resp.Locales, dto.LocaleDTO{
			Code:         string(l),
			Name:         i18n.Names[l],
			ProviderCode: l.ProviderCode(),
			Path:         i18n.AddLocale(base, l),
			Current:      l == current,
		})
	}
	ctx.JSON(http.StatusOK, resp)
}
