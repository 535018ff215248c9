package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigTrimsContentfulCredentials(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("CONTENTFUL_SPACE_ID", "  abc123\n")
	t.Setenv("CONTENTFUL_ACCESS_TOKEN", "tok-456\r\n")
	t.Setenv("CONTENTFUL_TIMEOUT", "3s")
	t.Setenv("STORAGE_DRIVER", " Redis ")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example ,")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "abc123", cfg.Contentful.SpaceID)
	assert.Equal(t, "tok-456", cfg.Contentful.AccessToken)
	assert.True(t, cfg.Contentful.Configured())
	assert.Equal(t, 3*time.Second, cfg.Contentful.Timeout)
	assert.Equal(t, "redis", cfg.Storage.Driver)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowOrigins)
}

func TestNewConfigUsesPlaceholdersAndDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("CONTENTFUL_SPACE_ID", " \n")
	t.Setenv("CONTENTFUL_ACCESS_TOKEN", "")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, PlaceholderSpaceID, cfg.Contentful.SpaceID)
	assert.Equal(t, PlaceholderAccessToken, cfg.Contentful.AccessToken)
	assert.False(t, cfg.Contentful.Configured())
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "master", cfg.Contentful.Environment)
	assert.Equal(t, "cdn.contentful.com", cfg.Contentful.Host)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.False(t, cfg.IsProduction())
}
