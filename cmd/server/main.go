package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"metahub/internal/core/domain"
	"metahub/internal/core/services"
	httphandlers "metahub/internal/handlers/http"
	backupinfra "metahub/internal/infrastructure/backup"
	"metahub/internal/infrastructure/middleware"
	"metahub/internal/infrastructure/monitoring"
	"metahub/internal/infrastructure/repositories"
	"metahub/internal/infrastructure/repositories/keyed"
	"metahub/pkg/backup"
	"metahub/pkg/config"
	"metahub/pkg/logger"
	"metahub/pkg/tracing"
)

const version = "1.0.0"

func main() {
	startTime := time.Now()

	configPaths := []string{
		"configs/config.yaml",
		"./configs/config.yaml",
		"/etc/metahub/config.yaml",
		"config.yaml",
	}

	var cfg *config.Config
	var err error

	for _, path := range configPaths {
		cfg, err = config.Load(path)
		if err == nil {
			break
		}
	}
	if err != nil {
		cfg = config.DefaultConfig()
	}

	zapLogger := logger.New(cfg.Logging.Level)
	defer zapLogger.Sync()

	log := zapLogger.Sugar()

	tracerProvider, err := tracing.Init(tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: "metahub",
		JaegerURL:   cfg.Tracing.JaegerURL,
		Environment: cfg.Tracing.Environment,
		SampleRate:  cfg.Tracing.SampleRate,
	})
	if err != nil {
		log.Fatalw("failed to initialize tracing", "error", err)
	}

	collector := monitoring.NewPrometheusCollector()

	repoFactory, err := repositories.NewFactory(cfg, log, collector)
	if err != nil {
		log.Fatalw("failed to create repository factory", "error", err)
	}
	defer repoFactory.Close()

	ctx := context.Background()

	profileRepo := repoFactory.CreateProfileRepository(ctx)
	buildRepo := repoFactory.CreateBuildRepository(ctx)
	tierListRepo := repoFactory.CreateTierListRepository(ctx)
	chatRepo := repoFactory.CreateChatRepository()
	notificationRepo := repoFactory.CreateNotificationRepository(ctx)
	favoritesRepo := repoFactory.CreateFavoritesRepository(ctx)
	catalogRepo := repoFactory.CreateCatalogRepository()

	rooms := make([]domain.RoomID, 0, len(cfg.Chat.Rooms))
	for _, room := range cfg.Chat.Rooms {
		rooms = append(rooms, domain.RoomID(room))
	}

	profileService := services.NewProfileService(profileRepo, log)
	notificationService := services.NewNotificationService(notificationRepo, collector, log)
	buildService := services.NewBuildService(buildRepo, profileRepo, notificationService, collector, log)
	if cfg.Cache.Enabled {
		buildService = services.NewCachedBuildService(buildService, cfg.Cache.TTL)
	}
	tierListService := services.NewTierListService(tierListRepo, profileRepo, notificationService, collector, log)
	chatService := services.NewChatService(chatRepo, profileRepo, rooms, collector, log)
	favoritesService := services.NewFavoritesService(favoritesRepo, profileService, log)
	catalogService := services.NewCatalogService(catalogRepo, log)

	if cfg.Backup.Enabled {
		backupStorage, err := backup.NewFileStorage(cfg.Backup.Dir)
		if err != nil {
			log.Fatalw("failed to open backup directory", "dir", cfg.Backup.Dir, "error", err)
		}

		keys := []string{
			keyed.KeyProfile,
			keyed.KeyBuilds,
			keyed.KeyTierLists,
			keyed.KeyNotifications,
			keyed.KeyFavorites,
		}
		for _, room := range rooms {
			keys = append(keys, keyed.ChatKey(room))
		}

		scheduler := backupinfra.NewScheduler(
			backup.NewService(backupStorage, version),
			repoFactory.Store(),
			keys,
			backupinfra.Config{Interval: cfg.Backup.Interval, Keep: cfg.Backup.Keep},
			repoFactory.RedisClient(),
			log,
		)
		go scheduler.Start(ctx)
		defer scheduler.Stop()
		log.Infow("backup scheduler started", "dir", cfg.Backup.Dir, "interval", cfg.Backup.Interval)
	}

	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.ErrorHandlerMiddleware(log))
	router.Use(middleware.NewHTTPRateLimitMiddleware(cfg))
	if cfg.Tracing.Enabled {
		router.Use(middleware.TracingMiddleware(log))
	}
	if cfg.Monitoring.PrometheusEnabled {
		router.Use(middleware.MetricsMiddleware(collector))
	}

	httphandlers.NewProfileHandler(profileService).SetupRoutes(router)
	httphandlers.NewBuildHandler(buildService).SetupRoutes(router)
	httphandlers.NewTierListHandler(tierListService).SetupRoutes(router)
	httphandlers.NewChatHandler(chatService).SetupRoutes(router)
	httphandlers.NewNotificationHandler(notificationService).SetupRoutes(router)
	httphandlers.NewFavoritesHandler(favoritesService).SetupRoutes(router)
	httphandlers.NewCatalogHandler(catalogService).SetupRoutes(router)

	health := monitoring.NewHealthChecker()
	health.AddCheck("storage", repoFactory.HealthCheck, 2*time.Second)
	health.AddRepositoryCheck(buildRepo, 2*time.Second)
	if redisClient := repoFactory.RedisClient(); redisClient != nil {
		health.AddRedisCheck(redisClient, 2*time.Second)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"uptime":    time.Since(startTime).String(),
		})
	})

	router.GET("/ready", func(c *gin.Context) {
		status := health.CheckAll(c.Request.Context())
		code := http.StatusOK
		if status.Status != "healthy" {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, status)
	})

	if cfg.Monitoring.PrometheusEnabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
		log.Info("Prometheus metrics enabled")
	}

	srv := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Infof("Starting Meta Hub server on %s", cfg.Server.Address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Fatalw("server failed", "error", err)
	case sig := <-sigChan:
		log.Infow("received shutdown signal", "signal", sig)
	}

	log.Info("Shutting down Meta Hub server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server shutdown failed", "error", err)
	}

	if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
		log.Warnw("tracer shutdown failed", "error", err)
	}

	log.Info("Server stopped")
}
