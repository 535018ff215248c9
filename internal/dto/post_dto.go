package dto

import (
	"time"

	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/model"
)

// PostSummaryDTO is a post without its body, used by list endpoints.
type PostSummaryDTO struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Slug          string          `json:"slug"`
	Excerpt       string          `json:"excerpt"`
	FeaturedImage *string         `json:"featuredImage"`
	Author        *model.Author   `json:"author"`
	Category      *model.Category `json:"category"`
	Tags          []string        `json:"tags"`
	Featured      bool            `json:"featured"`
	ReadingTime   int             `json:"readingTime"`
	ReadingLabel  string          `json:"readingLabel"`
	PublishedAt   time.Time       `json:"publishedAt"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// PostListResponse carries a localized EmptyMessage when Items is empty.
type PostListResponse struct {
	Locale       string           `json:"locale"`
	Total        int              `json:"total"`
	Items        []PostSummaryDTO `json:"items"`
	EmptyMessage string           `json:"empty_message,omitempty"`
}

// PostDetailResponse carries the full post plus a plain text rendering of the body.
type PostDetailResponse struct {
	Locale    string     `json:"locale"`
	Post      model.Post `json:"post"`
	PlainText string     `json:"plainText"`
}

type CategoryListResponse struct {
	Locale       string           `json:"locale"`
	Items        []model.Category `json:"items"`
	EmptyMessage string           `json:"empty_message,omitempty"`
}

type AuthorListResponse struct {
	Locale       string         `json:"locale"`
	Items        []model.Author `json:"items"`
	EmptyMessage string         `json:"empty_message,omitempty"`
}

type HomeResponse struct {
	Locale     string           `json:"locale"`
	Featured   []PostSummaryDTO `json:"featured"`
	Latest     []PostSummaryDTO `json:"latest"`
	Categories []model.Category `json:"categories"`
}

type ContentTypeDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CMSDiagnosticsDTO reports provider configuration without exposing secrets.
type CMSDiagnosticsDTO struct {
	Configured      bool             `json:"configured"`
	SpaceID         string           `json:"space_id"`
	Environment     string           `json:"environment"`
	TokenSet        bool             `json:"token_set"`
	PostContentType string           `json:"post_content_type"`
	ContentTypes    []ContentTypeDTO `json:"content_types"`
	PostCount       int              `json:"post_count"`
	Error           string           `json:"error,omitempty"`
}
