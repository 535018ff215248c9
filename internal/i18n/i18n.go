// Package i18n holds the two supported locales and the API-facing strings
// that differ between them.
package i18n

import "strings"

type Locale string

const (
	English Locale = "en"
	Korean  Locale = "ko"

	DefaultLocale = English

	// koreanPrefix marks Korean routes, e.g. /kr/blog.
	koreanPrefix = "/kr"
)

var Locales = []Locale{English, Korean}

var Names = map[Locale]string{
	English: "English",
	Korean:  "한국어",
}

// Parse accepts "en", "ko", "kr" and provider codes like "ko-KR".
func Parse(s string) (Locale, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "en" || strings.HasPrefix(s, "en-"):
		return English, true
	case s == "ko" || s == "kr" || strings.HasPrefix(s, "ko-"):
		return Korean, true
	}
	return DefaultLocale, false
}

// ProviderCode is the locale code the CMS expects.
func (l Locale) ProviderCode() string {
	if l == Korean {
		return "ko-KR"
	}
	return "en-US"
}

func hasKoreanPrefix(path string) bool {
	return path == koreanPrefix || strings.HasPrefix(path, koreanPrefix+"/")
}

// LocaleFromPath returns Korean for paths under /kr, English otherwise.
// A leading /api/v1 segment is ignored so API routes follow the same rule.
func LocaleFromPath(path string) Locale {
	if hasKoreanPrefix(trimAPIPrefix(path)) {
		return Korean
	}
	return DefaultLocale
}

func trimAPIPrefix(path string) string {
	const apiPrefix = "/api/v1"
	if strings.HasPrefix(path, apiPrefix) {
		return path[len(apiPrefix):]
	}
	return path
}

// StripLocale removes the Korean prefix from a page path.
func StripLocale(path string, l Locale) string {
	if l == DefaultLocale || !hasKoreanPrefix(path) {
		return path
	}
	stripped := strings.TrimPrefix(path, koreanPrefix)
	if stripped == "" {
		return "/"
	}
	return stripped
}

// AddLocale prefixes a page path for the given locale.
func AddLocale(path string, l Locale) string {
	if l == DefaultLocale {
		return path
	}
	if path == "/" || path == "" {
		return koreanPrefix
	}
	return koreanPrefix + path
}
