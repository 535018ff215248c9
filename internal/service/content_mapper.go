package service

import (
	"math"
	"strings"
	"time"

	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/contentful"
	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/model"
)

const (
	DefaultPostTitle   = "Untitled"
	DefaultExcerpt     = "No description available"
	DefaultAuthorID    = "default-author"
	DefaultAuthorName  = "Anonymous"
	WordsPerMinute     = 200
	minimumReadingTime = 1
)

// Field names differ between the content models the space has used over time;
// the first populated name wins.
var (
	excerptFields = []string{"shortDescription", "excerpt", "summary", "description"}
	imageFields   = []string{"featuredImage", "coverImage", "image"}
	dateFields    = []string{"publishedDate", "publishedAt", "date"}
	bodyFields    = []string{"content", "body"}
)

// record is a linked entry or asset after include resolution.
type record struct {
	id        string
	createdAt string
	updatedAt string
	fields    map[string]any
}

func recordFromEntry(e contentful.Entry) record {
	return record{id: e.Sys.ID, createdAt: e.Sys.CreatedAt, updatedAt: e.Sys.UpdatedAt, fields: e.Fields}
}

func recordFromValue(v any) (record, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return record{}, false
	}
	var rec record
	if sys, ok := m["sys"].(map[string]any); ok {
		rec.id, _ = sys["id"].(string)
		rec.createdAt, _ = sys["createdAt"].(string)
		rec.updatedAt, _ = sys["updatedAt"].(string)
	}
	rec.fields, _ = m["fields"].(map[string]any)
	return rec, rec.fields != nil
}

func (r record) str(key string) string {
	s, _ := r.fields[key].(string)
	return strings.TrimSpace(s)
}

func (r record) firstStr(keys ...string) string {
	for _, k := range keys {
		if s := r.str(k); s != "" {
			return s
		}
	}
	return ""
}

// MapPost converts a raw provider entry into a Post. It never fails: absent or
// malformed fields fall back to defaults.
func MapPost(e contentful.Entry) model.Post {
	rec := recordFromEntry(e)
	created := parseTimestamp(rec.createdAt)
	updated := parseTimestamp(rec.updatedAt)

	post := model.Post{
		ID:            rec.id,
		Title:         orDefault(rec.str("title"), DefaultPostTitle),
		Slug:          orDefault(rec.str("slug"), rec.id),
		Excerpt:       orDefault(rec.firstStr(excerptFields...), DefaultExcerpt),
		Content:       mapBody(rec),
		FeaturedImage: mapImage(rec, imageFields...),
		Category:      mapCategoryValue(rec.fields["category"]),
		Tags:          mapTags(rec.fields["tags"]),
		Featured:      boolField(rec, "isFeatured") || boolField(rec, "featured"),
		Published:     true,
		CreatedAt:     created,
		UpdatedAt:     updated,
	}

	post.Author = mapAuthorValue(rec.fields["author"], created, updated)
	post.ReadingTime = readingTime(rec, post.Content)

	post.PublishedAt = created
	for _, key := range dateFields {
		if t := parseTimestamp(rec.str(key)); !t.IsZero() {
			post.PublishedAt = t
			break
		}
	}
	return post
}

// MapAuthor converts a standalone author entry.
func MapAuthor(e contentful.Entry) model.Author {
	rec := recordFromEntry(e)
	return authorFromRecord(rec, parseTimestamp(rec.createdAt), parseTimestamp(rec.updatedAt))
}

// MapCategory converts a standalone category entry.
func MapCategory(e contentful.Entry) model.Category {
	return categoryFromRecord(recordFromEntry(e))
}

func mapAuthorValue(v any, created, updated time.Time) *model.Author {
	rec, ok := recordFromValue(v)
	if !ok {
		return defaultAuthor(created, updated)
	}
	a := authorFromRecord(rec, created, updated)
	if t := parseTimestamp(rec.createdAt); !t.IsZero() {
		a.CreatedAt = t
	}
	if t := parseTimestamp(rec.updatedAt); !t.IsZero() {
		a.UpdatedAt = t
	}
	return &a
}

func defaultAuthor(created, updated time.Time) *model.Author {
	return &model.Author{
		ID:        DefaultAuthorID,
		Name:      DefaultAuthorName,
		CreatedAt: created,
		UpdatedAt: updated,
	}
}

func authorFromRecord(rec record, created, updated time.Time) model.Author {
	return model.Author{
		ID:     orDefault(rec.id, DefaultAuthorID),
		Name:   orDefault(rec.str("name"), DefaultAuthorName),
		Bio:    rec.firstStr("bio", "biography"),
		Avatar: mapImage(rec, "avatar", "profilePicture", "image"),
		Social: model.SocialLinks{
			Twitter:  rec.str("twitter"),
			LinkedIn: rec.str("linkedin"),
			GitHub:   rec.str("github"),
			Website:  rec.str("website"),
		},
		CreatedAt: created,
		UpdatedAt: updated,
	}
}

func mapCategoryValue(v any) *model.Category {
	rec, ok := recordFromValue(v)
	if !ok {
		return nil
	}
	c := categoryFromRecord(rec)
	return &c
}

func categoryFromRecord(rec record) model.Category {
	name := rec.firstStr("name", "title")
	slug := rec.str("slug")
	if slug == "" {
		slug = slugify(name)
	}
	if slug == "" {
		slug = rec.id
	}
	return model.Category{
		ID:          rec.id,
		Name:        name,
		Slug:        slug,
		Description: rec.str("description"),
		Color:       rec.str("color"),
		CreatedAt:   parseTimestamp(rec.createdAt),
		UpdatedAt:   parseTimestamp(rec.updatedAt),
	}
}

// mapBody accepts a rich text document or a Markdown string.
func mapBody(rec record) *contentful.Document {
	for _, key := range bodyFields {
		switch v := rec.fields[key].(type) {
		case map[string]any:
			if doc, ok := contentful.DocumentFromValue(v); ok {
				return doc
			}
		case string:
			if strings.TrimSpace(v) != "" {
				return contentful.FromMarkdown(v)
			}
		}
	}
	return nil
}

// mapImage reads an asset link (fields.file.url) or a bare URL string.
func mapImage(rec record, keys ...string) *string {
	for _, key := range keys {
		var raw string
		switch v := rec.fields[key].(type) {
		case string:
			raw = v
		case map[string]any:
			asset, ok := recordFromValue(v)
			if !ok {
				continue
			}
			file, _ := asset.fields["file"].(map[string]any)
			raw, _ = file["url"].(string)
		}
		if url := NormalizeImageURL(raw); url != "" {
			return &url
		}
	}
	return nil
}

// NormalizeImageURL prefixes protocol-relative URLs with https.
func NormalizeImageURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "//") {
		return "https:" + raw
	}
	return raw
}

func mapTags(v any) []string {
	tags := []string{}
	items, ok := v.([]any)
	if !ok {
		return tags
	}
	for _, item := range items {
		if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
			tags = append(tags, strings.TrimSpace(s))
		}
	}
	return tags
}

func boolField(rec record, key string) bool {
	b, _ := rec.fields[key].(bool)
	return b
}

// readingTime uses a supplied positive value, rounding fractional minutes up,
// otherwise estimates it from the body word count.
func readingTime(rec record, doc *contentful.Document) int {
	switch v := rec.fields["readingTime"].(type) {
	case float64:
		if v > 0 {
			return int(math.Ceil(v))
		}
	case int:
		if v > 0 {
			return v
		}
	}
	return EstimateReadingTime(contentful.WordCount(doc))
}

func EstimateReadingTime(words int) int {
	minutes := int(math.Ceil(float64(words) / WordsPerMinute))
	if minutes < minimumReadingTime {
		return minimumReadingTime
	}
	return minutes
}

func parseTimestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r > 127:
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
