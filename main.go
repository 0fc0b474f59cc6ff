// File: wellnest/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wellnest/config"
	"wellnest/database"
	"wellnest/database/repository"
	"wellnest/handlers"
	"wellnest/middleware"
	"wellnest/routes"
	"wellnest/services/professional"
	"wellnest/services/rating"
	"wellnest/services/review"
	"wellnest/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
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

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	utils.StartHealthMonitor(monitorCtx, cacheClient, database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// repositories.
	db := database.Database()
	reviews := repository.NewMongoReviewRepo(db)
	events := repository.NewMongoEventRepo(db)
	professionals := repository.NewMongoProfessionalRepo(db)

	// services.
	ratingService, err := rating.NewDefaultRatingService(reviews, events, professionals, logger.Named("rating"))
	if err != nil {
		logger.Fatal("main: failed to initialize rating service", zap.Error(err))
	}
	reviewService, err := review.NewDefaultReviewService(reviews, events, logger.Named("review"))
	if err != nil {
		logger.Fatal("main: failed to initialize review service", zap.Error(err))
	}
	directoryCache := professional.NewRedisDirectoryCache(cacheClient, config.AppConfig.DirectoryCacheTTL)
	directory := professional.NewDefaultDirectory(professionals, directoryCache, logger.Named("directory"))

	handlerBundle := handlers.NewHandlerBundle(
		handlers.NewRatingHandler(ratingService, directory, logger),
		handlers.NewReviewHandler(reviewService, logger),
	)

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := cacheClient.Close(); err != nil {
		logger.Warn("main: failed to close redis client", zap.Error(err))
	}
	if err := database.Disconnect(ctx); err != nil {
		logger.Warn("main: failed to disconnect from MongoDB", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
