package middleware

import (
	"strings"

	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/i18n"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	ClientIDHeader = "X-Client-ID"
	localeKey      = "locale"
	clientIDKey    = "client_id"
	maxClientIDLen = 128
)

// Locale resolves the request locale from the /kr path prefix, then a
// ?locale= override, and stores it on the context.
func Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := i18n.LocaleFromPath(c.Request.URL.Path)
		if q := c.Query("locale"); q != "" {
			if parsed, ok := i18n.Parse(q); ok {
				locale = parsed
			}
		}
		c.Set(localeKey, locale)
		c.Header("Content-Language", string(locale))
		c.Next()
	}
}

func LocaleFrom(c *gin.Context) i18n.Locale {
	if v, ok := c.Get(localeKey); ok {
		if l, ok := v.(i18n.Locale); ok {
			return l
		}
	}
	return i18n.DefaultLocale
}

// ClientID identifies the caller for quiz history. A missing or oversized
// header gets a fresh id, echoed back so the client can keep it.
func ClientID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(ClientIDHeader))
		if id == "" || len(id) > maxClientIDLen {
			id = uuid.NewString()
			log.Debug().Str("client_id", id).Msg("Assigned new client id")
		}
		c.Set(clientIDKey, id)
		c.Header(ClientIDHeader, id)
		c.Next()
	}
}

func ClientIDFrom(c *gin.Context) string {
	return c.GetString(clientIDKey)
}

// RequestLogger writes one zerolog line per request.
func RequestLogger() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	})
}
