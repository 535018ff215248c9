package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/EnrichTheWorld/enrich-the-world-blog/config"
	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/contentful"
	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	entries      map[string][]contentful.Entry
	err          error
	typeErr      map[string]error
	contentTypes []contentful.ContentType
	queries      []contentful.Query
}

func (f *fakeProvider) Entries(_ context.Context, q contentful.Query) (*contentful.Collection, error) {
	f.queries = append(f.queries, q)
	if f.err != nil {
		return nil, f.err
	}
	if err := f.typeErr[q.ContentType]; err != nil {
		return nil, err
	}
	items := f.entries[q.ContentType]
	return &contentful.Collection{Total: len(items), Items: items}, nil
}

func (f *fakeProvider) ContentTypes(context.Context) ([]contentful.ContentType, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.contentTypes, nil
}

func testConfig() *config.Config {
	return &config.Config{Contentful: config.Contentful{
		SpaceID:         "space",
		AccessToken:     "token",
		Environment:     "master",
		PostContentType: "blogPost",
	}}
}

func postEntry(id, created string, fields map[string]any) contentful.Entry {
	return contentful.Entry{
		Sys:    contentful.Sys{ID: id, Type: "Entry", CreatedAt: created, UpdatedAt: created},
		Fields: fields,
	}
}

func categoryLink(slug string) map[string]any {
	return map[string]any{
		"sys":    map[string]any{"id": "cat-" + slug},
		"fields": map[string]any{"name": slug, "slug": slug},
	}
}

func samplePosts() []contentful.Entry {
	return []contentful.Entry{
		postEntry("old", "2024-01-01T00:00:00Z", map[string]any{
			"title": "Old", "slug": "old", "tags": []any{"go"}, "category": categoryLink("tech"),
		}),
		postEntry("new", "2024-03-01T00:00:00Z", map[string]any{
			"title": "New", "slug": "new", "tags": []any{"life"}, "category": categoryLink("growth"),
		}),
		postEntry("mid", "2024-02-01T00:00:00Z", map[string]any{
			"title": "Mid", "slug": "mid", "tags": []any{"go", "life"}, "category": categoryLink("tech"),
		}),
	}
}

func TestListPostsNewestFirst(t *testing.T) {
	provider := &fakeProvider{entries: map[string][]contentful.Entry{"blogPost": samplePosts()}}
	svc := NewContentService(provider, testConfig())

	posts := svc.ListPosts(context.Background(), i18n.Korean)

	require.Len(t, posts, 3)
	assert.Equal(t, "new", posts[0].Slug)
	assert.Equal(t, "mid", posts[1].Slug)
	assert.Equal(t, "old", posts[2].Slug)

	require.Len(t, provider.queries, 1)
	q := provider.queries[0]
	assert.Equal(t, "blogPost", q.ContentType)
	assert.Equal(t, "ko-KR", q.Locale)
	assert.Equal(t, []string{"-sys.createdAt"}, q.Order)
}

func TestListPostsSkipsOtherContentTypes(t *testing.T) {
	author := postEntry("author-1", "2024-04-01T00:00:00Z", map[string]any{"name": "Jane"})
	author.Sys.ContentType = &contentful.ContentTypeRef{}
	author.Sys.ContentType.Sys.ID = "author"

	tagged := postEntry("tagged", "2024-04-02T00:00:00Z", map[string]any{"title": "Tagged", "slug": "tagged"})
	tagged.Sys.ContentType = &contentful.ContentTypeRef{}
	tagged.Sys.ContentType.Sys.ID = "blogPost"

	entries := append(samplePosts(), author, tagged)
	provider := &fakeProvider{entries: map[string][]contentful.Entry{"blogPost": entries}}
	svc := NewContentService(provider, testConfig())

	posts := svc.ListPosts(context.Background(), i18n.English)

	require.Len(t, posts, 4)
	assert.Equal(t, "tagged", posts[0].Slug)
	for _, p := range posts {
		assert.NotEqual(t, "author-1", p.ID)
	}
}

func TestProviderFailureYieldsEmptyResults(t *testing.T) {
	provider := &fakeProvider{err: errors.New("connection refused")}
	svc := NewContentService(provider, testConfig())
	ctx := context.Background()

	posts := svc.ListPosts(ctx, i18n.English)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)

	assert.Nil(t, svc.GetPostBySlug(ctx, "anything", i18n.English))
	assert.Empty(t, svc.ListPostsByCategory(ctx, "tech", i18n.English))
	assert.Empty(t, svc.ListPostsByTag(ctx, "go", i18n.English))
	assert.Empty(t, svc.ListFeaturedPosts(ctx, 3, i18n.English))
	assert.Empty(t, svc.ListLatestPosts(ctx, 3, i18n.English))
	assert.Empty(t, svc.ListCategories(ctx, i18n.English))
	assert.Empty(t, svc.ListAuthors(ctx, i18n.English))

	diag := svc.Diagnostics(ctx)
	assert.Equal(t, "connection refused", diag.Error)
	assert.True(t, diag.Configured)
}

func TestGetPostBySlug(t *testing.T) {
	provider := &fakeProvider{entries: map[string][]contentful.Entry{"blogPost": samplePosts()}}
	svc := NewContentService(provider, testConfig())

	post := svc.GetPostBySlug(context.Background(), "mid", i18n.English)
	require.NotNil(t, post)
	assert.Equal(t, "Mid", post.Title)
	assert.Equal(t, "mid", provider.queries[0].Filters["fields.slug"])

	assert.Nil(t, svc.GetPostBySlug(context.Background(), "missing", i18n.English))
	assert.Nil(t, svc.GetPostBySlug(context.Background(), "", i18n.English))
}

func TestListPostsByCategoryAndTag(t *testing.T) {
	provider := &fakeProvider{entries: map[string][]contentful.Entry{"blogPost": samplePosts()}}
	svc := NewContentService(provider, testConfig())
	ctx := context.Background()

	byCategory := svc.ListPostsByCategory(ctx, "tech", i18n.English)
	require.Len(t, byCategory, 2)
	assert.Equal(t, "mid", byCategory[0].Slug)
	assert.Equal(t, "old", byCategory[1].Slug)
	assert.Equal(t, "tech", provider.queries[0].Filters["fields.category.fields.slug"])

	byTag := svc.ListPostsByTag(ctx, "life", i18n.English)
	require.Len(t, byTag, 2)
	assert.Equal(t, "new", byTag[0].Slug)
	assert.Equal(t, "mid", byTag[1].Slug)
	assert.Equal(t, "life", provider.queries[1].Filters["fields.tags[in]"])
}

func TestListFeaturedPosts(t *testing.T) {
	t.Run("falls back to newest when nothing is flagged", func(t *testing.T) {
		provider := &fakeProvider{entries: map[string][]contentful.Entry{"blogPost": samplePosts()}}
		svc := NewContentService(provider, testConfig())

		posts := svc.ListFeaturedPosts(context.Background(), 2, i18n.English)
		require.Len(t, posts, 2)
		assert.Equal(t, "new", posts[0].Slug)
		assert.Equal(t, "mid", posts[1].Slug)
		assert.Len(t, provider.queries, 1)
	})

	t.Run("prefers flagged posts", func(t *testing.T) {
		entries := samplePosts()
		entries[0].Fields["isFeatured"] = true
		provider := &fakeProvider{entries: map[string][]contentful.Entry{"blogPost": entries}}
		svc := NewContentService(provider, testConfig())

		posts := svc.ListFeaturedPosts(context.Background(), 2, i18n.English)
		require.Len(t, posts, 1)
		assert.Equal(t, "old", posts[0].Slug)
	})

	t.Run("finds flagged posts beyond the newest hundred", func(t *testing.T) {
		base := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
		entries := make([]contentful.Entry, 0, 150)
		for i := 0; i < 150; i++ {
			slug := fmt.Sprintf("post-%03d", i)
			entries = append(entries, postEntry(slug, base.Add(time.Duration(i)*time.Hour).Format(time.RFC3339),
				map[string]any{"title": slug, "slug": slug}))
		}
		entries[0].Fields["featured"] = true
		provider := &fakeProvider{entries: map[string][]contentful.Entry{"blogPost": entries}}
		svc := NewContentService(provider, testConfig())

		posts := svc.ListFeaturedPosts(context.Background(), 3, i18n.English)
		require.Len(t, posts, 1)
		assert.Equal(t, "post-000", posts[0].Slug)
		require.Len(t, provider.queries, 1)
		assert.Equal(t, collectionLimit, provider.queries[0].Limit)
	})
}

func TestListLatestPostsDefaultsLimit(t *testing.T) {
	provider := &fakeProvider{entries: map[string][]contentful.Entry{"blogPost": samplePosts()}}
	svc := NewContentService(provider, testConfig())

	posts := svc.ListLatestPosts(context.Background(), 0, i18n.English)
	assert.Len(t, posts, 3)
	assert.Equal(t, DefaultLatestLimit, provider.queries[0].Limit)

	posts = svc.ListLatestPosts(context.Background(), 1, i18n.English)
	require.Len(t, posts, 1)
	assert.Equal(t, "new", posts[0].Slug)
}

func TestCollectionsDegradeOnUnknownContentType(t *testing.T) {
	unknown := &contentful.APIError{StatusCode: http.StatusBadRequest, ID: "InvalidQuery", Details: []string{"unknownContentType"}}
	provider := &fakeProvider{
		entries: map[string][]contentful.Entry{
			"category": {postEntry("c1", "2024-01-01T00:00:00Z", map[string]any{"name": "Tech", "slug": "tech"})},
		},
		typeErr: map[string]error{"author": unknown},
	}
	svc := NewContentService(provider, testConfig())

	categories := svc.ListCategories(context.Background(), i18n.English)
	require.Len(t, categories, 1)
	assert.Equal(t, "tech", categories[0].Slug)

	authors := svc.ListAuthors(context.Background(), i18n.English)
	assert.NotNil(t, authors)
	assert.Empty(t, authors)
}

func TestDiagnostics(t *testing.T) {
	provider := &fakeProvider{
		entries: map[string][]contentful.Entry{"blogPost": samplePosts()},
		contentTypes: []contentful.ContentType{
			{Sys: contentful.Sys{ID: "blogPost"}, Name: "Blog Post"},
		},
	}
	cfg := testConfig()
	cfg.Contentful.AccessToken = config.PlaceholderAccessToken
	svc := NewContentService(provider, cfg)

	diag := svc.Diagnostics(context.Background())
	assert.False(t, diag.Configured)
	assert.False(t, diag.TokenSet)
	assert.Equal(t, 3, diag.PostCount)
	require.Len(t, diag.ContentTypes, 1)
	assert.Equal(t, "blogPost", diag.ContentTypes[0].ID)
	assert.Empty(t, diag.Error)
}

func TestDiagnosticsReportsPartialFailure(t *testing.T) {
	provider := &fakeProvider{
		entries:      map[string][]contentful.Entry{"blogPost": samplePosts()},
		typeErr:      map[string]error{"blogPost": errors.New("rate limited")},
		contentTypes: []contentful.ContentType{{Sys: contentful.Sys{ID: "blogPost"}, Name: "Blog Post"}},
	}
	svc := NewContentService(provider, testConfig())

	diag := svc.Diagnostics(context.Background())
	assert.Equal(t, "rate limited", diag.Error)
	assert.Zero(t, diag.PostCount)
	require.Len(t, diag.ContentTypes, 1)
	assert.Equal(t, "blogPost", diag.ContentTypes[0].ID)
}
