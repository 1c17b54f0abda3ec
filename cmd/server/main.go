package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	contactapp "github.com/helenrojas261991-debug/home-services-florida/internal/application/contact"
	contentapp "github.com/helenrojas261991-debug/home-services-florida/internal/application/content"
	identityapp "github.com/helenrojas261991-debug/home-services-florida/internal/application/identity"
	mediaapp "github.com/helenrojas261991-debug/home-services-florida/internal/application/media"
	socialapp "github.com/helenrojas261991-debug/home-services-florida/internal/application/social"
	"github.com/helenrojas261991-debug/home-services-florida/internal/infrastructure/auth"
	"github.com/helenrojas261991-debug/home-services-florida/internal/infrastructure/config"
	"github.com/helenrojas261991-debug/home-services-florida/internal/infrastructure/connector"
	"github.com/helenrojas261991-debug/home-services-florida/internal/infrastructure/logger"
	"github.com/helenrojas261991-debug/home-services-florida/internal/infrastructure/persistence"
	"github.com/helenrojas261991-debug/home-services-florida/internal/infrastructure/storage"
	"github.com/helenrojas261991-debug/home-services-florida/internal/interfaces/http/handler"
	"github.com/helenrojas261991-debug/home-services-florida/internal/interfaces/http/middleware"
	"github.com/helenrojas261991-debug/home-services-florida/internal/interfaces/http/router"
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
		_ = logger.Sync(log)
	}()

	log.Info("Starting backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories
	credentialRepo := persistence.NewGormCredentialRepository(db.DB)
	reviewRepo := persistence.NewGormReviewRepository(db.DB)
	postRepo := persistence.NewGormPostRepository(db.DB)
	contentRepo := persistence.NewGormContentRepository(db.DB)
	contactRepo := persistence.NewGormContactRepository(db.DB)

	// Upstream connectors
	googleAdapter, err := connector.NewGoogleAdapter(&connector.GoogleConfig{
		BusinessAPIBaseURL: cfg.Google.BusinessAPIBaseURL,
		ReviewsAPIBaseURL:  cfg.Google.ReviewsAPIBaseURL,
		TimeoutSeconds:     cfg.Google.TimeoutSeconds,
	}, log)
	if err != nil {
		log.Fatal("Failed to create Google connector", zap.Error(err))
	}

	instagramAdapter, err := connector.NewInstagramAdapter(&connector.InstagramConfig{
		APIBaseURL:     cfg.Instagram.APIBaseURL,
		TimeoutSeconds: cfg.Instagram.TimeoutSeconds,
	}, log)
	if err != nil {
		log.Fatal("Failed to create Instagram connector", zap.Error(err))
	}

	// Session store: Redis when enabled, in-memory otherwise
	var sessions auth.SessionStore
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		sessions = auth.NewRedisSessionStore(client)
		log.Info("Using Redis session store", zap.String("addr", cfg.Redis.Addr()))
	} else {
		sessions = auth.NewMemorySessionStore()
		log.Info("Using in-memory session store")
	}

	// Media storage: S3 when a bucket is configured, stub otherwise
	var mediaStorage mediaapp.ObjectStorage
	if cfg.Storage.Bucket != "" {
		s3Storage, err := storage.NewS3MediaStorage(&cfg.Storage, storage.WithLogger(log))
		if err != nil {
			log.Fatal("Failed to create media storage", zap.Error(err))
		}
		ensureCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := s3Storage.EnsureBucket(ensureCtx); err != nil {
			log.Warn("Could not ensure storage bucket", zap.Error(err))
		}
		cancel()
		mediaStorage = s3Storage
		log.Info("Using S3 media storage", zap.String("bucket", cfg.Storage.Bucket))
	} else {
		mediaStorage = storage.NewStubMediaStorage()
		log.Warn("No storage bucket configured, media uploads are held in memory")
	}

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	identityService := identityapp.NewService(cfg.Admin, jwtService, sessions, log)
	googleService := socialapp.NewGoogleService(credentialRepo, reviewRepo, googleAdapter, log)
	instagramService := socialapp.NewInstagramService(credentialRepo, postRepo, instagramAdapter, log)
	contentService := contentapp.NewService(contentRepo, log)
	mediaService := mediaapp.NewService(mediaStorage, contentRepo, log)
	contactService := contactapp.NewService(contactRepo, log)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORS(cfg.HTTP.CORSAllowOrigins))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	authMiddleware := middleware.AdminAuth(identityService)

	systemHandler := handler.NewSystemHandler()
	engine.GET("/health", livenessHandler(db))

	r := router.New(engine, router.DefaultVersion)
	r.Register(systemHandler)
	r.Register(handler.NewAuthHandler(identityService, authMiddleware))
	r.Register(handler.NewIntegrationHandler(googleService, instagramService, authMiddleware))
	r.Register(handler.NewContentHandler(contentService, authMiddleware))
	r.Register(handler.NewMediaHandler(mediaService, authMiddleware))
	r.Register(handler.NewContactHandler(contactService, authMiddleware))
	r.Register(handler.NewI18nHandler())
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	log.Info("Server exited")
}

// livenessHandler answers the root health probe, reporting database reachability
func livenessHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			logger.GetGinLogger(c).Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": "error",
				"time":     time.Now().Format(time.RFC3339),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"database": "ok",
			"time":     time.Now().Format(time.RFC3339),
		})
	}
}
