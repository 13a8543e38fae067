package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/marketplace/backend/internal/application/catalog"
	inventoryapp "github.com/marketplace/backend/internal/application/inventory"
	partnerapp "github.com/marketplace/backend/internal/application/partner"
	"github.com/marketplace/backend/internal/infrastructure/auth"
	"github.com/marketplace/backend/internal/infrastructure/cache"
	"github.com/marketplace/backend/internal/infrastructure/config"
	"github.com/marketplace/backend/internal/infrastructure/logger"
	"github.com/marketplace/backend/internal/infrastructure/persistence"
	"github.com/marketplace/backend/internal/infrastructure/storage"
	"github.com/marketplace/backend/internal/infrastructure/telemetry"
	"github.com/marketplace/backend/internal/interfaces/http/handler"
	"github.com/marketplace/backend/internal/interfaces/http/router"
	"github.com/redis/go-redis/v9"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting marketplace backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Telemetry (optional)
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize telemetry", zap.Error(err))
	}

	// Database
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if cfg.Telemetry.Enabled {
		if err := db.DB.Use(otelgorm.NewPlugin()); err != nil {
			log.Fatal("Failed to attach tracing plugin", zap.Error(err))
		}
	}

	// File storage
	store, err := newFileStore(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize file storage", zap.Error(err))
	}

	// Redis-backed movement-type cache (optional)
	var logTypeCache inventoryapp.LogTypeCache
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Warn("Redis unavailable, movement types served uncached", zap.Error(err))
			_ = redisClient.Close()
			redisClient = nil
		} else {
			logTypeCache = cache.NewRedisLogTypeCacheWithClient(redisClient,
				cache.WithCacheLogger(log))
		}
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	imageRepo := persistence.NewGormProductImageRepository(db.DB)
	locationRepo := persistence.NewGormProductLocationRepository(db.DB)
	itemRepo := persistence.NewGormInventoryItemRepository(db.DB)
	itemLogRepo := persistence.NewGormInventoryItemLogRepository(db.DB)
	logTypeRepo := persistence.NewGormInventoryLogTypeRepository(db.DB)
	agentUserRepo := persistence.NewGormAgentUserRepository(db.DB)
	inventoryRepo := persistence.NewGormInventoryRepository(db.DB)

	// Application services
	resolver := partnerapp.NewAgentResolver(agentUserRepo, inventoryRepo)
	productService := catalogapp.NewProductService(
		persistence.NewGormCatalogTransactionScope(db.DB),
		productRepo, imageRepo, locationRepo, itemRepo, itemLogRepo,
		resolver, store, log,
	)
	itemService := inventoryapp.NewInventoryItemService(
		persistence.NewGormInventoryTransactionScope(db.DB), itemRepo, log)
	logTypeService := inventoryapp.NewLogTypeService(logTypeRepo, logTypeCache, log)
	registrationService := partnerapp.NewRegistrationService(
		agentUserRepo, persistence.NewGormPartnerTransactionScope(db.DB))

	// HTTP boundary
	jwtService, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.AccessTokenExpiration)
	if err != nil {
		log.Fatal("Failed to initialize JWT service", zap.Error(err))
	}

	engine := router.New(router.Config{
		Logger:      log,
		JWTService:  jwtService,
		Env:         cfg.App.Env,
		MaxBodySize: cfg.HTTP.MaxBodySize,
		Handlers: router.Handlers{
			Product:       handler.NewProductHandler(productService, store, log),
			InventoryItem: handler.NewInventoryItemHandler(itemService, logTypeService),
			Agent:         handler.NewAgentHandler(registrationService),
		},
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}
	if err := tracerProvider.Shutdown(ctx); err != nil {
		log.Warn("Failed to shut down telemetry", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// newFileStore selects the storage driver from configuration. Both
// drivers satisfy the handler's ProductStore surface.
func newFileStore(cfg *config.Config, log *zap.Logger) (handler.ProductStore, error) {
	switch cfg.Storage.Driver {
	case "", "local":
		return storage.NewLocalFileStorage(cfg.Storage.BasePath, log)
	case "s3":
		s3Store, err := storage.NewS3FileStorage(cfg.Storage, log)
		if err != nil {
			return nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s3Store.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		return s3Store, nil
	default:
		return nil, fmt.Errorf("unknown storage driver: %q", cfg.Storage.Driver)
	}
}
