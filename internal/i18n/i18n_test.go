package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocaleFromPath(t *testing.T) {
	cases := []struct {
		path string
		want Locale
	}{
		{"/", English},
		{"/blog", English},
		{"/kr", Korean},
		{"/kr/blog/hello", Korean},
		{"/krypton", English},
		{"/api/v1/posts", English},
		{"/api/v1/kr/posts", Korean},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.want, LocaleFromPath(tc.path))
		})
	}
}

func TestStripAndAddLocale(t *testing.T) {
	assert.Equal(t, "/blog", StripLocale("/kr/blog", Korean))
	assert.Equal(t, "/", StripLocale("/kr", Korean))
	assert.Equal(t, "/blog", StripLocale("/blog", English))

	assert.Equal(t, "/kr/quiz", AddLocale("/quiz", Korean))
	assert.Equal(t, "/kr", AddLocale("/", Korean))
	assert.Equal(t, "/quiz", AddLocale("/quiz", English))
}

func TestParse(t *testing.T) {
	l, ok := Parse("ko-KR")
	assert.True(t, ok)
	assert.Equal(t, Korean, l)

	l, ok = Parse("EN")
	assert.True(t, ok)
	assert.Equal(t, English, l)

	l, ok = Parse("fr")
	assert.False(t, ok)
	assert.Equal(t, DefaultLocale, l)
}

func TestProviderCodeAndMessages(t *testing.T) {
	assert.Equal(t, "en-US", English.ProviderCode())
	assert.Equal(t, "ko-KR", Korean.ProviderCode())

	assert.Equal(t, "Excellent", T(English, MsgGradeExcellent))
	assert.Equal(t, "게시물이 없습니다.", T(Korean, MsgNoPosts))
	assert.Equal(t, "Post not found.", T(Locale("fr"), MsgPostNotFound))
	assert.Equal(t, "missing_key", T(English, MessageKey("missing_key")))
	assert.Equal(t, "3 min read", ReadingTime(English, 3))
	assert.Equal(t, "3분 읽기", ReadingTime(Korean, 3))
}
