package container

import (
	"context"
	"fmt"
	"time"

	"portfolio-backend/internal/config"
	infraCache "portfolio-backend/internal/infrastructure/cache"
	"portfolio-backend/internal/infrastructure/database"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/pkg/cache"
	"portfolio-backend/pkg/jwt"
	"portfolio-backend/pkg/logger"

	"portfolio-backend/internal/domains/auth"
	authHandler "portfolio-backend/internal/domains/auth/handler"
	authService "portfolio-backend/internal/domains/auth/service"
	"portfolio-backend/internal/domains/portfolio"
	portfolioHandler "portfolio-backend/internal/domains/portfolio/handler"
	portfolioRepo "portfolio-backend/internal/domains/portfolio/repository"
	portfolioService "portfolio-backend/internal/domains/portfolio/service"
	"portfolio-backend/internal/domains/upload"
	uploadHandler "portfolio-backend/internal/domains/upload/handler"
	uploadRepo "portfolio-backend/internal/domains/upload/repository"
	uploadService "portfolio-backend/internal/domains/upload/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the application, built once at startup.
// Initialization order matters: config -> infrastructure -> repositories ->
// services -> handlers.
type Container struct {
	// Infrastructure - process-wide singletons
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache // nil when Redis is disabled
	JWTManager *jwt.Manager
	Blobs      storage.BlobStorage
	LocalStore *storage.LocalStorage // set only for the local driver, for static routing

	// Repositories
	PortfolioRepo portfolio.Repository
	UploadRepo    upload.Repository

	// Services
	PortfolioService portfolio.Service
	UploadService    upload.Service
	AuthService      auth.Service

	// Handlers
	PortfolioHandler *portfolioHandler.PortfolioHandler
	UploadHandler    *uploadHandler.UploadHandler
	AuthHandler      *authHandler.AuthHandler

	redisCache *infraCache.RedisCache
}

// ========================================
// CONSTRUCTOR
// ========================================

// NewContainer builds the full dependency graph. Any failure aborts startup.
func NewContainer() (*Container, error) {
	c := &Container{}

	// ========================================
	// STEP 1: CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Info("Config loaded", map[string]interface{}{"environment": cfg.App.Environment})

	// ========================================
	// STEP 2: DATABASE
	// ========================================
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	// ========================================
	// STEP 3: CACHE (OPTIONAL)
	// ========================================
	if cfg.Redis.Enabled {
		redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
		if err := redisCache.Ping(ctx); err != nil {
			// The document cache is an optimization; a missing Redis must not
			// keep the site down.
			logger.Warn("Redis unavailable, document cache disabled", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			c.Cache = redisCache
			c.redisCache = redisCache
		}
	}

	// ========================================
	// STEP 4: BLOB STORAGE
	// ========================================
	switch cfg.Storage.Driver {
	case "minio":
		blobs, err := storage.NewMinIOStorage(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to init minio storage: %w", err)
		}
		c.Blobs = blobs
	default:
		local, err := storage.NewLocalStorage(cfg.Storage.UploadDir, cfg.App.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to init local storage: %w", err)
		}
		c.Blobs = local
		c.LocalStore = local
	}

	// ========================================
	// STEP 5: TOKEN MANAGER
	// ========================================
	c.JWTManager = jwt.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	// ========================================
	// STEP 6: REPOSITORIES
	// ========================================
	c.PortfolioRepo, err = portfolioRepo.NewPostgresRepository(ctx, db.Pool, c.Cache)
	if err != nil {
		return nil, fmt.Errorf("failed to init portfolio repository: %w", err)
	}

	c.UploadRepo, err = uploadRepo.NewPostgresRepository(ctx, db.Pool)
	if err != nil {
		return nil, fmt.Errorf("failed to init upload repository: %w", err)
	}

	// ========================================
	// STEP 7: SERVICES
	// ========================================
	c.PortfolioService = portfolioService.NewPortfolioService(c.PortfolioRepo)
	c.UploadService = uploadService.NewUploadService(
		c.Blobs,
		c.UploadRepo,
		storage.NewImageProcessor(),
		cfg.Storage.MaxUploadSize,
	)
	c.AuthService = authService.NewAuthService(cfg.Auth, c.JWTManager)

	// ========================================
	// STEP 8: HANDLERS
	// ========================================
	c.PortfolioHandler = portfolioHandler.NewPortfolioHandler(c.PortfolioService)
	c.UploadHandler = uploadHandler.NewUploadHandler(c.UploadService, cfg.Storage.MaxUploadSize)
	c.AuthHandler = authHandler.NewAuthHandler(c.AuthService)

	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.redisCache != nil {
		if err := c.redisCache.Close(); err != nil {
			logger.Error("Failed to close redis", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
