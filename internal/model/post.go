package model

import (
	"time"

	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/contentful"
)

type SocialLinks struct {
	Twitter  string `json:"twitter,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
}

type Author struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Bio       string      `json:"bio"`
	Avatar    *string     `json:"avatar"`
	Social    SocialLinks `json:"social"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Post is a read-only projection of a provider entry, rebuilt per request.
type Post struct {
	ID            string               `json:"id"`
	Title         string               `json:"title"`
	Slug          string               `json:"slug"`
	Excerpt       string               `json:"excerpt"`
	Content       *contentful.Document `json:"content"`
	FeaturedImage *string              `json:"featuredImage"`
	Author        *Author              `json:"author"`
	Category      *Category            `json:"category"`
	Tags          []string             `json:"tags"`
	Featured      bool                 `json:"featured"`
	Published     bool                 `json:"published"`
	ReadingTime   int                  `json:"readingTime"`
	PublishedAt   time.Time            `json:"publishedAt"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

func (p Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
