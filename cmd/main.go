package main

import (
	"context"
	"net/http"
	"time"

	"github.com/EnrichTheWorld/enrich-the-world-blog/config"
	"github.com/EnrichTheWorld/enrich-the-world-blog/database"
	_ "github.com/EnrichTheWorld/enrich-the-world-blog/docs" // Swagger docs
	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/controller"
	blogctrl "github.com/EnrichTheWorld/enrich-the-world-blog/internal/controller/blog"
	quizctrl "github.com/EnrichTheWorld/enrich-the-world-blog/internal/controller/quiz"
	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/event"
	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/logger"
	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/metrics"
	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/middleware"
	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/model"
	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/quizbank"
	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/repository"
	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Enrich the World Blog API
// @version 1.0
// @description Bilingual blog content from Contentful and the technology and social impact quiz.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init("info", true)

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			database.NewRedisClient,
			NewGinEngine,
		),

		// Storage and external systems
		fx.Provide(
			repository.NewStorage,
			repository.NewResultRepository,
			service.NewContentfulProvider,
			quizbank.Load,
			NewEventPublisher,
		),

		// Services Layer
		fx.Provide(
			service.NewContentService,
			service.NewScoreService,
			service.NewQuizService,
		),

		// API Controllers Layer
		fx.Provide(
			blogctrl.NewBlogController,
			quizctrl.NewQuizController,
			controller.NewController,
		),

		fx.Invoke(ConfigureLogger),
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Error during shutdown")
	}
}

func ConfigureLogger(cfg *config.Config) {
	logger.Init(cfg.LogLevel, !cfg.IsProduction())
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(gin.Recovery())
	r.Use(metrics.Middleware())

	origins := cfg.Server.CORSAllowOrigins
	allowAll := len(origins) == 0 || (len(origins) == 1 && origins[0] == "*")
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.ClientIDHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Language", middleware.ClientIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if allowAll {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
		corsCfg.AllowCredentials = true
	}
	r.Use(cors.New(corsCfg))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func NewEventPublisher(lc fx.Lifecycle, cfg *config.Config) (event.Publisher, error) {
	publisher, err := event.NewEventPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return publisher.Close()
		},
	})
	return publisher, nil
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	ctrl *controller.Controller,
	db *gorm.DB,
	rdb *redis.Client,
) {
	ctrl.RegisterRoutes(router)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Enrich the World API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				return err
			}
			if rdb != nil {
				if err := rdb.Close(); err != nil {
					log.Warn().Err(err).Msg("Error closing Redis client")
				}
			}
			if db != nil {
				if sqlDB, err := db.DB(); err == nil {
					sqlDB.Close()
				}
			}
			return nil
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	log.Info().Msg("Running database migrations...")
	if err := db.AutoMigrate(&model.KVEntry{}); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
