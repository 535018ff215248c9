package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	PlaceholderSpaceID     = "placeholder_space_id"
	PlaceholderAccessToken = "placeholder_access_token"
)

type Config struct {
	AppEnv     string
	LogLevel   string
	Server     Server
	Contentful Contentful
	Storage    Storage
	Database   Database
	Redis      Redis
	RabbitMQ   RabbitMQ
}

type Server struct {
	Port             string
	CORSAllowOrigins []string
}

type Contentful struct {
	SpaceID     string
	AccessToken string
	Environment string
	Host        string
	Timeout     time.Duration
	// PostContentType is the content type id holding blog posts.
	PostContentType string
}

// Configured is false while placeholder credentials are in use.
func (c Contentful) Configured() bool {
	return c.SpaceID != PlaceholderSpaceID && c.AccessToken != PlaceholderAccessToken
}

type Storage struct {
	Driver     string // memory, sqlite, postgres, redis
	SQLitePath string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

type RabbitMQ struct {
	URL      string
	Exchange string
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	cfg := load()

	log.Info().
		Str("app_env", cfg.AppEnv).
		Str("port", cfg.Server.Port).
		Str("storage_driver", cfg.Storage.Driver).
		Str("contentful_space", cfg.Contentful.SpaceID).
		Bool("contentful_token_set", cfg.Contentful.AccessToken != PlaceholderAccessToken).
		Bool("events_enabled", cfg.RabbitMQ.URL != "").
		Msg("Config loaded")
	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")
	viper.SetDefault("CONTENTFUL_ENVIRONMENT", "master")
	viper.SetDefault("CONTENTFUL_HOST", "cdn.contentful.com")
	viper.SetDefault("CONTENTFUL_TIMEOUT", "10s")
	viper.SetDefault("CONTENTFUL_POST_TYPE", "blogPost")
	viper.SetDefault("STORAGE_DRIVER", "sqlite")
	viper.SetDefault("SQLITE_PATH", "enrich.db")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("RABBITMQ_EXCHANGE", "enrich.events")
}

func load() *Config {
	var config Config

	config.AppEnv = viper.GetString("APP_ENV")
	config.LogLevel = viper.GetString("LOG_LEVEL")

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.CORSAllowOrigins = splitList(viper.GetString("CORS_ALLOW_ORIGINS"))

	config.Contentful.SpaceID = credential(viper.GetString("CONTENTFUL_SPACE_ID"), PlaceholderSpaceID)
	config.Contentful.AccessToken = credential(viper.GetString("CONTENTFUL_ACCESS_TOKEN"), PlaceholderAccessToken)
	config.Contentful.Environment = strings.TrimSpace(viper.GetString("CONTENTFUL_ENVIRONMENT"))
	config.Contentful.Host = strings.TrimSpace(viper.GetString("CONTENTFUL_HOST"))
	config.Contentful.Timeout = viper.GetDuration("CONTENTFUL_TIMEOUT")
	config.Contentful.PostContentType = strings.TrimSpace(viper.GetString("CONTENTFUL_POST_TYPE"))

	config.Storage.Driver = strings.ToLower(strings.TrimSpace(viper.GetString("STORAGE_DRIVER")))
	config.Storage.SQLitePath = viper.GetString("SQLITE_PATH")

	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Redis.Addr = viper.GetString("REDIS_ADDR")
	config.Redis.Password = viper.GetString("REDIS_PASSWORD")
	config.Redis.DB = viper.GetInt("REDIS_DB")

	config.RabbitMQ.URL = strings.TrimSpace(viper.GetString("RABBITMQ_URL"))
	config.RabbitMQ.Exchange = viper.GetString("RABBITMQ_EXCHANGE")

	return &config
}

// credential trims stray whitespace and newlines injected by hosting
// environments, falling back to the placeholder when nothing is left.
func credential(raw, placeholder string) string {
	v := strings.TrimSpace(raw)
	if v == "" {
		return placeholder
	}
	return v
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
