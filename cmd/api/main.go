package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/omarfh/proctor-api/api/swagger"
	"github.com/omarfh/proctor-api/internal/handler"
	"github.com/omarfh/proctor-api/internal/middleware"
	"github.com/omarfh/proctor-api/internal/repository"
	"github.com/omarfh/proctor-api/internal/service"
	"github.com/omarfh/proctor-api/pkg/cache"
	"github.com/omarfh/proctor-api/pkg/config"
	"github.com/omarfh/proctor-api/pkg/database"
	"github.com/omarfh/proctor-api/pkg/logger"
	corsmiddleware "github.com/omarfh/proctor-api/pkg/middleware/cors"
	reqidmiddleware "github.com/omarfh/proctor-api/pkg/middleware/requestid"
)

// @title Proctor Assignment API
// @version 1.0.0
// @description Quiz proctor assignment and fairness ranking service
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect database", "error", err)
	}
	defer db.Close()

	metricsSvc := service.NewMetricsService()

	var cacheRepo service.CacheRepository
	if cfg.Suggestions.CacheEnabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, suggestion cache disabled", "error", err)
		} else {
			defer redisClient.Close()
			cacheRepo = repository.NewCacheRepository(redisClient, logr)
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Suggestions.CacheTTL, logr, cacheRepo != nil)

	quizRepo := repository.NewQuizRepository(db)
	taRepo := repository.NewTARepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	excuseRepo := repository.NewExcuseRepository(db)
	exchangeRepo := repository.NewExchangeRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	settingsSvc := service.NewSettingsService(settingsRepo, nil, logr)
	assignmentSvc := service.NewAssignmentService(
		quizRepo, taRepo, scheduleRepo, assignmentRepo, excuseRepo, exchangeRepo,
		settingsSvc, cacheSvc, metricsSvc, nil, logr,
	)
	quizSvc := service.NewQuizService(quizRepo, assignmentSvc, cacheSvc, nil, logr)
	exportSvc := service.NewExportService(taRepo, logr)

	quizHandler := handler.NewQuizHandler(quizSvc)
	assignmentHandler := handler.NewAssignmentHandler(assignmentSvc)
	settingsHandler := handler.NewSettingsHandler(settingsSvc)
	exportHandler := handler.NewExportHandler(exportSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		quizzes := api.Group("/quizzes")
		{
			quizzes.GET("", quizHandler.List)
			quizzes.POST("", quizHandler.Create)
			quizzes.GET("/:id", quizHandler.Get)
			quizzes.DELETE("/:id", quizHandler.Delete)
			quizzes.PUT("/:id/locations", quizHandler.ReplaceLocations)
			quizzes.GET("/:id/suggestions", assignmentHandler.Suggestions)
			quizzes.POST("/:id/auto-assign", assignmentHandler.AutoAssign)
			quizzes.GET("/:id/assignments", assignmentHandler.ListByQuiz)
		}

		api.POST("/assignments/preview", assignmentHandler.Preview)

		settings := api.Group("/settings")
		{
			settings.GET("/compressed-schedule", settingsHandler.GetCompressedSchedule)
			settings.PUT("/compressed-schedule", settingsHandler.UpdateCompressedSchedule)
		}

		if cfg.Exports.Enabled {
			api.GET("/exports/workload", exportHandler.Workload)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
