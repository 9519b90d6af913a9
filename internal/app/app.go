package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/startuphub-br/startuphub-api/internal/adapter/database"
	handlers "github.com/startuphub-br/startuphub-api/internal/adapter/http"
	"github.com/startuphub-br/startuphub-api/internal/app/auth"
	"github.com/startuphub-br/startuphub-api/internal/app/community"
	"github.com/startuphub-br/startuphub-api/internal/app/event"
	"github.com/startuphub-br/startuphub-api/internal/infra/metrics"
	"github.com/startuphub-br/startuphub-api/internal/infra/middleware"
	"github.com/startuphub-br/startuphub-api/pkg/cache"
	"github.com/startuphub-br/startuphub-api/pkg/config"
	"github.com/startuphub-br/startuphub-api/pkg/security"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

// App reúne todas as dependências da aplicação, construídas explicitamente
// e injetadas em cada componente
type App struct {
	Logger           *zap.Logger
	DB               *database.Database
	Cache            cache.Cache
	Middleware       *middleware.Middleware
	AuthHandler      *handlers.AuthHandler
	EventHandler     *handlers.EventHandler
	CommunityHandler *handlers.CommunityHandler
	HealthChecker    *handlers.HealthChecker
	Metrics          *metrics.APIMetrics
}

// NewApp cria uma nova instância da aplicação com todas as dependências injetadas
func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	dbConfig := database.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogLevel:        gormlogger.Warn,
		SlowThreshold:   cfg.Database.SlowThreshold,
	}

	db, err := database.NewDatabase(ctx, dbConfig, logger)
	if err != nil {
		return nil, err
	}

	apiMetrics := metrics.NewAPIMetrics()
	appCache := newCache(cfg, apiMetrics, logger)

	userRepo := database.NewUserRepository(db.DB())
	eventRepo := database.NewEventRepository(db.DB())
	communityRepo := database.NewCommunityRepository(db.DB())

	keyManager, err := security.NewKeyManager(cfg.Auth.JWTSecret, logger)
	if err != nil {
		return nil, fmt.Errorf("falha ao inicializar gerenciador de chaves: %w", err)
	}

	authService := auth.NewService(keyManager, userRepo, cfg.Auth.TokenExpiration, apiMetrics, logger)
	eventService := event.NewService(eventRepo, eventRepo, appCache, apiMetrics, logger)
	communityService := community.NewService(communityRepo, logger)

	middlewares := middleware.NewMiddleware(logger, authService, apiMetrics)

	return &App{
		Logger:           logger,
		DB:               db,
		Cache:            appCache,
		Middleware:       middlewares,
		AuthHandler:      handlers.NewAuthHandler(authService, logger),
		EventHandler:     handlers.NewEventHandler(eventService, logger),
		CommunityHandler: handlers.NewCommunityHandler(communityService, logger),
		HealthChecker:    handlers.NewHealthChecker(db, appCache, logger),
		Metrics:          apiMetrics,
	}, nil
}

// RegisterRoutes registra todas as rotas no router
func (a *App) RegisterRoutes(router *gin.Engine) {
	router.Use(a.Middleware.Recovery())
	router.Use(a.Middleware.Logger())
	router.Use(a.Middleware.Metrics())

	// Rotas públicas
	router.GET("/health", a.HealthChecker.HealthCheck)
	router.GET("/health/readiness", a.HealthChecker.ReadinessCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/register", a.AuthHandler.Register)
		authGroup.POST("/login", a.AuthHandler.Login)
	}

	// Rotas autenticadas
	api := router.Group("/api")
	api.Use(a.Middleware.Authenticate)
	{
		api.GET("/eventos", a.EventHandler.List)
		api.POST("/eventos", a.EventHandler.Create)
		api.POST("/eventos/:id/checkin", a.EventHandler.CheckIn)

		api.GET("/startups", a.CommunityHandler.ListStartups)
		api.POST("/startups", a.CommunityHandler.CreateStartup)

		api.GET("/mentores", a.CommunityHandler.ListMentors)
		api.POST("/mentores", a.CommunityHandler.CreateMentor)

		api.GET("/mentorias", a.CommunityHandler.ListMentorships)
		api.POST("/mentorias", a.CommunityHandler.CreateMentorship)
	}
}

// Close libera os recursos da aplicação
func (a *App) Close() error {
	return a.DB.Close()
}

// newCache constrói o cache conforme a configuração, com fallback para
// memória quando o Redis não está acessível
func newCache(cfg *config.Config, apiMetrics *metrics.APIMetrics, logger *zap.Logger) cache.Cache {
	if !cfg.Cache.Enabled {
		return &cache.NoOpCache{}
	}

	if cfg.Cache.Type == "redis" {
		redisCache, err := cache.NewRedisCache(
			cfg.Cache.Redis.Address,
			cfg.Cache.Redis.Password,
			cfg.Cache.Redis.DB,
			logger,
		)
		if err == nil {
			return redisCache
		}
		logger.Warn("Redis indisponível, usando cache em memória", zap.Error(err))
	}

	return cache.NewMemoryCache(cfg.Cache.TTL, 2*cfg.Cache.TTL, apiMetrics, logger)
}
