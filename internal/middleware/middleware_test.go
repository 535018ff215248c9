package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/i18n"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Locale(), ClientID())
	handler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"locale": LocaleFrom(c), "client": ClientIDFrom(c)})
	}
	r.GET("/api/v1/posts", handler)
	r.GET("/api/v1/kr/posts", handler)
	return r
}

func TestLocaleFromPathAndQuery(t *testing.T) {
	r := newRouter()
	tests := []struct {
		url  string
		want i18n.Locale
	}{
		{"/api/v1/posts", i18n.English},
		{"/api/v1/kr/posts", i18n.Korean},
		{"/api/v1/posts?locale=ko", i18n.Korean},
		{"/api/v1/kr/posts?locale=en", i18n.English},
		{"/api/v1/posts?locale=fr", i18n.English},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.url, nil))
		assert.Equal(t, http.StatusOK, w.Code, tt.url)
		assert.Contains(t, w.Body.String(), `"locale":"`+string(tt.want)+`"`, tt.url)
		assert.Equal(t, string(tt.want), w.Header().Get("Content-Language"), tt.url)
	}
}

func TestClientIDHeader(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/posts", nil)
	req.Header.Set(ClientIDHeader, " reader-7 ")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "reader-7", w.Header().Get(ClientIDHeader))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/posts", nil))
	assert.Len(t, w.Header().Get(ClientIDHeader), 36)
}
