package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Philip2024394/website-massage--sub024/config"
	"github.com/Philip2024394/website-massage--sub024/cron"
	"github.com/Philip2024394/website-massage--sub024/database"
	providerRepo "github.com/Philip2024394/website-massage--sub024/database/repository/provider"
	"github.com/Philip2024394/website-massage--sub024/handlers"
	"github.com/Philip2024394/website-massage--sub024/metrics"
	"github.com/Philip2024394/website-massage--sub024/middleware"
	"github.com/Philip2024394/website-massage--sub024/routes"
	"github.com/Philip2024394/website-massage--sub024/services/provider"
	"github.com/Philip2024394/website-massage--sub024/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	database.InitDB()
	cacheClient := utils.GetCacheClient()
	queueMonitor := utils.NewQueueMonitorClient()

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()
	utils.StartHealthMonitor(rootCtx, []*redis.Client{cacheClient, queueMonitor}, database.MongoClient)

	// repositories.
	provRepo := providerRepo.NewMongoProviderRepo()

	// task queue.
	asynqClient := asynq.NewClient(utils.QueueRedisOpt())
	defer asynqClient.Close()

	// services.
	providerService, err := provider.NewDefaultProviderService(
		provRepo,
		provider.NewRedisPricingCache(cacheClient, config.AppConfig.PricingCacheTTL()),
		provider.NewViewStore(config.AppConfig.ViewSessionTTL()),
		asynqClient,
		config.AppConfig.GuardDebounce(),
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize provider service: %v", err)
	}
	metricsRegistry := metrics.NewRegistry()
	providerService.Metrics = metricsRegistry

	worker := cron.StartPricingWorker(utils.QueueRedisOpt(), providerService, metricsRegistry)
	go cron.StartPricingWarmer(rootCtx, providerService, time.Hour)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	handlerBundle := handlers.NewHandlerBundle(
		handlers.NewProviderHandler(providerService),
		handlers.NewViewHandler(providerService, config.AppConfig.CountdownTick()),
		handlers.HealthHandler(utils.GetHealthStatus),
		gin.WrapH(metricsRegistry.Handler()),
	)
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	worker.Shutdown()
	if err := database.CloseDB(ctx); err != nil {
		logger.Sugar().Warnf("main: mongo disconnect failed: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
