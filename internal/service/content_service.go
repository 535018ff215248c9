package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/EnrichTheWorld/enrich-the-world-blog/config"
	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/contentful"
	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/dto"
	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/i18n"
	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/metrics"
	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/model"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	CategoryContentType = "category"
	AuthorContentType   = "author"

	DefaultFeaturedLimit = 3
	DefaultLatestLimit   = 5

	// includeDepth asks the provider to embed linked authors, categories and assets.
	includeDepth = 2
	// collectionLimit is the provider's page maximum. Full listings and the
	// featured scan both read this window in a single request.
	collectionLimit = 1000
)

var newestFirst = []string{"-sys.createdAt"}

// ContentService reads blog content from the provider. No method returns an
// error: failures are logged and surface as empty results.
type ContentService interface {
	ListPosts(ctx context.Context, locale i18n.Locale) []model.Post
	GetPostBySlug(ctx context.Context, slug string, locale i18n.Locale) *model.Post
	ListPostsByCategory(ctx context.Context, categorySlug string, locale i18n.Locale) []model.Post
	ListPostsByTag(ctx context.Context, tag string, locale i18n.Locale) []model.Post
	ListFeaturedPosts(ctx context.Context, limit int, locale i18n.Locale) []model.Post
	ListLatestPosts(ctx context.Context, limit int, locale i18n.Locale) []model.Post
	ListCategories(ctx context.Context, locale i18n.Locale) []model.Category
	ListAuthors(ctx context.Context, locale i18n.Locale) []model.Author
	Diagnostics(ctx context.Context) dto.CMSDiagnosticsDTO
}

type contentService struct {
	provider contentful.Provider
	cfg      config.Contentful
	postType string
}

func NewContentService(provider contentful.Provider, cfg *config.Config) ContentService {
	postType := cfg.Contentful.PostContentType
	if postType == "" {
		postType = "blogPost"
	}
	if !cfg.Contentful.Configured() {
		log.Warn().Msg("Contentful credentials are placeholders, content requests will return empty results")
	}
	return &contentService{provider: provider, cfg: cfg.Contentful, postType: postType}
}

// lazyProvider builds the delivery client on first use.
type lazyProvider struct {
	once   sync.Once
	build  func() contentful.Provider
	client contentful.Provider
}

func (p *lazyProvider) get() contentful.Provider {
	p.once.Do(func() { p.client = p.build() })
	return p.client
}

func (p *lazyProvider) Entries(ctx context.Context, q contentful.Query) (*contentful.Collection, error) {
	return p.get().Entries(ctx, q)
}

func (p *lazyProvider) ContentTypes(ctx context.Context) ([]contentful.ContentType, error) {
	return p.get().ContentTypes(ctx)
}

// NewContentfulProvider returns a process-wide delivery client built from config.
func NewContentfulProvider(cfg *config.Config) contentful.Provider {
	c := cfg.Contentful
	return &lazyProvider{build: func() contentful.Provider {
		log.Info().Str("space", c.SpaceID).Str("environment", c.Environment).Msg("Creating Contentful client")
		return contentful.NewClient(contentful.Config{
			SpaceID:     c.SpaceID,
			AccessToken: c.AccessToken,
			Environment: c.Environment,
			Host:        c.Host,
			Timeout:     c.Timeout,
		})
	}}
}

func (s *contentService) postQuery(locale i18n.Locale) contentful.Query {
	return contentful.Query{
		ContentType: s.postType,
		Include:     includeDepth,
		Order:       newestFirst,
		Locale:      locale.ProviderCode(),
		Filters:     map[string]string{},
	}
}

// fetchPosts performs exactly one provider request and maps every item.
func (s *contentService) fetchPosts(ctx context.Context, op string, q contentful.Query) []model.Post {
	started := time.Now()
	col, err := s.provider.Entries(ctx, q)
	if err != nil {
		metrics.ObserveCMS(op, "error", started)
		log.Error().Err(err).
			Str("operation", op).
			Str("content_type", q.ContentType).
			Str("locale", q.Locale).
			Interface("filters", q.Filters).
			Msg("Error fetching posts from Contentful")
		return []model.Post{}
	}
	metrics.ObserveCMS(op, "ok", started)

	posts := make([]model.Post, 0, len(col.Items))
	for _, item := range col.Items {
		if ct := item.ContentTypeID(); ct != "" && ct != q.ContentType {
			log.Debug().Str("entry_id", item.Sys.ID).Str("content_type", ct).Msg("Skipping entry of another content type")
			continue
		}
		posts = append(posts, MapPost(item))
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts
}

func (s *contentService) ListPosts(ctx context.Context, locale i18n.Locale) []model.Post {
	q := s.postQuery(locale)
	q.Limit = collectionLimit
	return s.fetchPosts(ctx, "list_posts", q)
}

func (s *contentService) GetPostBySlug(ctx context.Context, slug string, locale i18n.Locale) *model.Post {
	if slug == "" {
		return nil
	}
	q := s.postQuery(locale)
	q.Filters["fields.slug"] = slug
	q.Limit = 1
	for _, p := range s.fetchPosts(ctx, "get_post_by_slug", q) {
		if p.Slug == slug {
			post := p
			return &post
		}
	}
	log.Debug().Str("slug", slug).Str("locale", string(locale)).Msg("Post not found")
	return nil
}

func (s *contentService) ListPostsByCategory(ctx context.Context, categorySlug string, locale i18n.Locale) []model.Post {
	q := s.postQuery(locale)
	q.Filters["fields.category.sys.contentType.sys.id"] = CategoryContentType
	q.Filters["fields.category.fields.slug"] = categorySlug
	q.Limit = collectionLimit

	posts := s.fetchPosts(ctx, "list_posts_by_category", q)
	out := make([]model.Post, 0, len(posts))
	for _, p := range posts {
		if p.Category != nil && p.Category.Slug == categorySlug {
			out = append(out, p)
		}
	}
	return out
}

func (s *contentService) ListPostsByTag(ctx context.Context, tag string, locale i18n.Locale) []model.Post {
	q := s.postQuery(locale)
	q.Filters["fields.tags[in]"] = tag
	q.Limit = collectionLimit

	posts := s.fetchPosts(ctx, "list_posts_by_tag", q)
	out := make([]model.Post, 0, len(posts))
	for _, p := range posts {
		if p.HasTag(tag) {
			out = append(out, p)
		}
	}
	return out
}

// ListFeaturedPosts returns flagged posts when any are flagged, otherwise the
// newest ones. Schemas without a featured flag therefore still fill the slot.
func (s *contentService) ListFeaturedPosts(ctx context.Context, limit int, locale i18n.Locale) []model.Post {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	q := s.postQuery(locale)
	q.Limit = collectionLimit
	posts := s.fetchPosts(ctx, "list_featured_posts", q)

	featured := make([]model.Post, 0, limit)
	for _, p := range posts {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	if len(featured) == 0 {
		featured = posts
	}
	return truncate(featured, limit)
}

func (s *contentService) ListLatestPosts(ctx context.Context, limit int, locale i18n.Locale) []model.Post {
	if limit <= 0 {
		limit = DefaultLatestLimit
	}
	q := s.postQuery(locale)
	q.Limit = limit
	return truncate(s.fetchPosts(ctx, "list_latest_posts", q), limit)
}

func (s *contentService) ListCategories(ctx context.Context, locale i18n.Locale) []model.Category {
	entries := s.fetchCollection(ctx, "list_categories", CategoryContentType, locale)
	out := make([]model.Category, 0, len(entries))
	for _, e := range entries {
		out = append(out, MapCategory(e))
	}
	return out
}

func (s *contentService) ListAuthors(ctx context.Context, locale i18n.Locale) []model.Author {
	entries := s.fetchCollection(ctx, "list_authors", AuthorContentType, locale)
	out := make([]model.Author, 0, len(entries))
	for _, e := range entries {
		out = append(out, MapAuthor(e))
	}
	return out
}

// fetchCollection treats a missing content type as an empty collection.
func (s *contentService) fetchCollection(ctx context.Context, op, contentType string, locale i18n.Locale) []contentful.Entry {
	started := time.Now()
	col, err := s.provider.Entries(ctx, contentful.Query{
		ContentType: contentType,
		Include:     1,
		Limit:       collectionLimit,
		Locale:      locale.ProviderCode(),
	})
	if err != nil {
		if contentful.IsUnknownContentType(err) {
			metrics.ObserveCMS(op, "degraded", started)
			log.Info().Str("content_type", contentType).Msg("Content type not defined in space, returning empty list")
			return nil
		}
		metrics.ObserveCMS(op, "error", started)
		log.Error().Err(err).Str("operation", op).Str("content_type", contentType).Str("locale", locale.ProviderCode()).Msg("Error fetching collection from Contentful")
		return nil
	}
	metrics.ObserveCMS(op, "ok", started)
	return col.Items
}

func (s *contentService) Diagnostics(ctx context.Context) dto.CMSDiagnosticsDTO {
	diag := dto.CMSDiagnosticsDTO{
		Configured:      s.cfg.Configured(),
		SpaceID:         s.cfg.SpaceID,
		Environment:     s.cfg.Environment,
		TokenSet:        s.cfg.AccessToken != config.PlaceholderAccessToken,
		PostContentType: s.postType,
		ContentTypes:    []dto.ContentTypeDTO{},
	}

	// Both requests run together; the first failure cancels the other and is reported.
	var (
		types []contentful.ContentType
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		types, err = s.provider.ContentTypes(gctx)
		if err != nil {
			log.Error().Err(err).Msg("Diagnostics: failed to list content types")
		}
		return err
	})
	g.Go(func() error {
		col, err := s.provider.Entries(gctx, contentful.Query{ContentType: s.postType, Limit: 1})
		if err != nil {
			log.Error().Err(err).Str("content_type", s.postType).Msg("Diagnostics: failed to count posts")
			return err
		}
		total = col.Total
		return nil
	})
	if err := g.Wait(); err != nil {
		diag.Error = err.Error()
	}

	for _, ct := range types {
		diag.ContentTypes = append(diag.ContentTypes, dto.ContentTypeDTO{ID: ct.Sys.ID, Name: ct.Name, Description: ct.Description})
	}
	diag.PostCount = total
	return diag
}

func truncate(posts []model.Post, limit int) []model.Post {
	if len(posts) > limit {
		return posts[:limit]
	}
	return posts
}
