package blog

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/contentful"
	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/dto"
	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/i18n"
	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/middleware"
	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/model"
	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

const maxLimit = 50

type BlogController struct {
	contentService service.ContentService
}

func NewBlogController(cs service.ContentService) *BlogController {
	return &BlogController{contentService: cs}
}

// ListPosts godoc
// @Summary List posts
// @Description All published posts, newest first. Prefix the path with /kr for Korean content.
// @Tags Blog
// @Produce json
// @Success 200 {object} dto.PostListResponse
// @Router /posts [get]
func (c *BlogController) ListPosts(ctx *gin.Context) {
	locale := middleware.LocaleFrom(ctx)
	posts := c.contentService.ListPosts(ctx.Request.Context(), locale)
	ctx.JSON(http.StatusOK, postList(locale, posts))
}

// GetPost godoc
// @Summary Get a post by slug
// @Tags Blog
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} dto.PostDetailResponse
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /posts/{slug} [get]
func (c *BlogController) GetPost(ctx *gin.Context) {
	locale := middleware.LocaleFrom(ctx)
	slug := ctx.Param("slug")

	post := c.contentService.GetPostBySlug(ctx.Request.Context(), slug, locale)
	if post == nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: i18n.T(locale, i18n.MsgPostNotFound), Details: []string{slug}})
		return
	}
	ctx.JSON(http.StatusOK, dto.PostDetailResponse{
		Locale:    string(locale),
		Post:      *post,
		PlainText: contentful.PlainText(post.Content),
	})
}

// ListFeaturedPosts godoc
// @Summary List featured posts
// @Description Posts flagged as featured, or the newest posts when none are flagged.
// @Tags Blog
// @Produce json
// @Param limit query int false "Maximum number of posts" default(3)
// @Success 200 {object} dto.PostListResponse
// @Router /posts/featured [get]
func (c *BlogController) ListFeaturedPosts(ctx *gin.Context) {
	locale := middleware.LocaleFrom(ctx)
	limit := parseLimit(ctx, service.DefaultFeaturedLimit)
	ctx.JSON(http.StatusOK, postList(locale, c.contentService.ListFeaturedPosts(ctx.Request.Context(), limit, locale)))
}

// ListLatestPosts godoc
// @Summary List latest posts
// @Tags Blog
// @Produce json
// @Param limit query int false "Maximum number of posts" default(5)
// @Success 200 {object} dto.PostListResponse
// @Router /posts/latest [get]
func (c *BlogController) ListLatestPosts(ctx *gin.Context) {
	locale := middleware.LocaleFrom(ctx)
	limit := parseLimit(ctx, service.DefaultLatestLimit)
	ctx.JSON(http.StatusOK, postList(locale, c.contentService.ListLatestPosts(ctx.Request.Context(), limit, locale)))
}

// ListPostsByCategory godoc
// @Summary List posts in a category
// @Tags Blog
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} dto.PostListResponse
// @Router /categories/{slug}/posts [get]
func (c *BlogController) ListPostsByCategory(ctx *gin.Context) {
	locale := middleware.LocaleFrom(ctx)
	posts := c.contentService.ListPostsByCategory(ctx.Request.Context(), ctx.Param("slug"), locale)
	ctx.JSON(http.StatusOK, postList(locale, posts))
}

// ListPostsByTag godoc
// @Summary List posts with a tag
// @Tags Blog
// @Produce json
// @Param tag path string true "Tag"
// @Success 200 {object} dto.PostListResponse
// @Router /tags/{tag}/posts [get]
func (c *BlogController) ListPostsByTag(ctx *gin.Context) {
	locale := middleware.LocaleFrom(ctx)
	posts := c.contentService.ListPostsByTag(ctx.Request.Context(), ctx.Param("tag"), locale)
	ctx.JSON(http.StatusOK, postList(locale, posts))
}

// ListCategories godoc
// @Summary List categories
// @Tags Blog
// @Produce json
// @Success 200 {object} dto.CategoryListResponse
// @Router /categories [get]
func (c *BlogController) ListCategories(ctx *gin.Context) {
	locale := middleware.LocaleFrom(ctx)
	categories := c.contentService.ListCategories(ctx.Request.Context(), locale)
	resp := dto.CategoryListResponse{Locale: string(locale), Items: categories}
	if len(categories) == 0 {
		resp.EmptyMessage = i18n.T(locale, i18n.MsgNoCategories)
	}
	ctx.JSON(http.StatusOK, resp)
}

// ListAuthors godoc
// @Summary List authors
// @Tags Blog
// @Produce json
// @Success 200 {object} dto.AuthorListResponse
// @Router /authors [get]
func (c *BlogController) ListAuthors(ctx *gin.Context) {
	locale := middleware.LocaleFrom(ctx)
	authors := c.contentService.ListAuthors(ctx.Request.Context(), locale)
	resp := dto.AuthorListResponse{Locale: string(locale), Items: authors}
	if len(authors) == 0 {
		resp.EmptyMessage = i18n.T(locale, i18n.MsgNoAuthors)
	}
	ctx.JSON(http.StatusOK, resp)
}

// Home godoc
// @Summary Home page data
// @Description Featured posts, latest posts and categories fetched concurrently.
// @Tags Blog
// @Produce json
// @Success 200 {object} dto.HomeResponse
// @Router /home [get]
func (c *BlogController) Home(ctx *gin.Context) {
	locale := middleware.LocaleFrom(ctx)

	var (
		featured, latest []model.Post
		categories       []model.Category
	)
	reqCtx := ctx.Request.Context()
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		featured = c.contentService.ListFeaturedPosts(reqCtx, service.DefaultFeaturedLimit, locale)
	}()
	go func() {
		defer wg.Done()
		latest = c.contentService.ListLatestPosts(reqCtx, service.DefaultLatestLimit, locale)
	}()
	go func() {
		defer wg.Done()
		categories = c.contentService.ListCategories(reqCtx, locale)
	}()
	wg.Wait()

	ctx.JSON(http.StatusOK, dto.HomeResponse{
		Locale:     string(locale),
		Featured:   summaries(locale, featured),
		Latest:     summaries(locale, latest),
		Categories: categories,
	})
}

// Diagnostics godoc
// @Summary CMS diagnostics
// @Description Reports whether the content provider is configured and reachable. Secrets are never returned.
// @Tags Blog
// @Produce json
// @Success 200 {object} dto.CMSDiagnosticsDTO
// @Router /cms/diagnostics [get]
func (c *BlogController) Diagnostics(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.contentService.Diagnostics(ctx.Request.Context()))
}

func parseLimit(ctx *gin.Context, fallback int) int {
	raw := ctx.Query("limit")
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Debug().Str("limit", raw).Msg("Ignoring invalid limit")
		return fallback
	}
	if n > maxLimit {
		return maxLimit
	}
	return n
}

func postList(locale i18n.Locale, posts []model.Post) dto.PostListResponse {
	items := summaries(locale, posts)
	resp := dto.PostListResponse{Locale: string(locale), Total: len(items), Items: items}
	if len(items) == 0 {
		resp.EmptyMessage = i18n.T(locale, i18n.MsgNoPosts)
	}
	return resp
}

func summaries(locale i18n.Locale, posts []model.Post) []dto.PostSummaryDTO {
	out := make([]dto.PostSummaryDTO, 0, len(posts))
	for i := range posts {
		var summary dto.PostSummaryDTO
		if err := copier.Copy(&summary, &posts[i]); err != nil {
			log.Error().Err(err).Str("post_id", posts[i].ID).Msg("Error copying post to summary DTO")
			continue
		}
		if summary.Tags == nil {
			summary.Tags = []string{}
		}
		summary.ReadingLabel = i18n.ReadingTime(locale, summary.ReadingTime)
		out = append(out, summary)
	}
	return out
}
