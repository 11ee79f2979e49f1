package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/learnsphere/learnsphere-api/api/swagger"
	"github.com/learnsphere/learnsphere-api/internal/handler"
	"github.com/learnsphere/learnsphere-api/internal/middleware"
	"github.com/learnsphere/learnsphere-api/internal/repository"
	"github.com/learnsphere/learnsphere-api/internal/service"
	"github.com/learnsphere/learnsphere-api/pkg/cache"
	"github.com/learnsphere/learnsphere-api/pkg/config"
	"github.com/learnsphere/learnsphere-api/pkg/database"
	"github.com/learnsphere/learnsphere-api/pkg/logger"
	corsmiddleware "github.com/learnsphere/learnsphere-api/pkg/middleware/cors"
	reqidmiddleware "github.com/learnsphere/learnsphere-api/pkg/middleware/requestid"
)

// @title LearnSphere API
// @version 1.0.0
// @description Booking and visitor-analytics backend for the LearnSphere tutoring site
// @BasePath /api
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

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	var redisClient *redis.Client
	if cfg.RateLimit.Enabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			// Throttling is protective, not load-bearing. Run without it
			// rather than keeping the public forms offline.
			logr.Warn("redis unavailable, rate limiting disabled", zap.Error(err))
		}
	}

	bookingRepo := repository.NewBookingRepository(db)
	inquiryRepo := repository.NewInquiryRepository(db)
	visitorRepo := repository.NewVisitorRepository(db)
	userRepo := repository.NewUserRepository(db)

	validate := service.NewValidator()
	bookingSvc := service.NewBookingService(bookingRepo, validate, logr)
	inquirySvc := service.NewInquiryService(inquiryRepo, validate, logr)
	visitorSvc := service.NewVisitorService(visitorRepo, logr)
	statsSvc := service.NewStatsService(bookingRepo, visitorRepo, logr)
	exportSvc := service.NewExportService(bookingRepo, logr)
	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		JWTSecret:  cfg.Auth.JWTSecret,
		Expiration: cfg.Auth.Expiration,
		Issuer:     cfg.Auth.Issuer,
	})
	metricsSvc := service.NewMetricsService()

	bookingHandler := handler.NewBookingHandler(bookingSvc)
	inquiryHandler := handler.NewInquiryHandler(inquirySvc)
	visitorHandler := handler.NewVisitorHandler(visitorSvc)
	statsHandler := handler.NewStatsHandler(statsSvc)
	exportHandler := handler.NewExportHandler(exportSvc)
	authHandler := handler.NewAuthHandler(authSvc)
	catalogHandler := handler.NewCatalogHandler()

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		start := time.Now()
		err := db.Ping()
		metricsSvc.ObserveDBQuery("ping", time.Since(start))
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	public := api.Group("")
	if redisClient != nil {
		limiter := repository.NewRateLimitRepository(redisClient)
		public.Use(middleware.RateLimit(limiter, middleware.RateLimitConfig{
			Window: cfg.RateLimit.Window,
			Max:    cfg.RateLimit.Max,
		}, logr))
	}
	public.POST("/demo-bookings", bookingHandler.Create)
	public.POST("/subject-queries", inquiryHandler.CreateSubjectQuery)
	public.POST("/contact-messages", inquiryHandler.CreateContactMessage)
	public.POST("/visitors/track", visitorHandler.Track)
	public.GET("/catalog", catalogHandler.Catalog)
	public.POST("/auth/login", authHandler.Login)

	admin := api.Group("")
	admin.Use(middleware.Auth(authSvc, cfg.Auth.Enabled))
	admin.GET("/demo-bookings", bookingHandler.List)
	admin.DELETE("/demo-bookings/:id", bookingHandler.Delete)
	admin.PATCH("/demo-bookings/:id/status", bookingHandler.UpdateStatus)
	admin.GET("/admin/stats", statsHandler.Stats)
	admin.GET("/admin/subject-queries", inquiryHandler.ListSubjectQueries)
	admin.GET("/admin/contact-messages", inquiryHandler.ListContactMessages)
	if cfg.Exports.Enabled {
		admin.GET("/admin/bookings/export", exportHandler.Bookings)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "auth_enabled", cfg.Auth.Enabled)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
