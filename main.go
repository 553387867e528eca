package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"wayfarer/config"
	"wayfarer/database"
	accountRepo "wayfarer/database/repository/account"
	catalogRepo "wayfarer/database/repository/catalog"
	reviewRepo "wayfarer/database/repository/review"
	"wayfarer/handlers"
	"wayfarer/routes"
	"wayfarer/services/catalog"
	profileService "wayfarer/services/profile"
	reviewService "wayfarer/services/review"
	userService "wayfarer/services/user"
	"wayfarer/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// Repositories.
	catalogStore := catalogRepo.NewCatalogRepo()
	accountStore := accountRepo.NewAccountRepo()
	reviewStore := reviewRepo.NewMongoReviewRepo()

	// Services.
	catalogSvc := catalog.NewService(catalogStore)
	aggregator := reviewService.NewAggregator(reviewStore, reviewStore)
	reviewSvc := reviewService.NewService(reviewStore, aggregator)
	profileSvc := profileService.NewService(accountStore)
	userSvc := userService.NewService(accountStore, utils.GetAuthCacheClient())

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Catalog:     handlers.NewCatalogHandler(catalogSvc, storageService),
		Reviews:     handlers.NewReviewHandler(reviewSvc),
		Profiles:    handlers.NewProfileHandler(profileSvc, storageService),
		Auth:        handlers.NewAuthHandler(userSvc),
		Users:       handlers.NewUserHandler(userSvc),
		UserService: userSvc,
	}

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

	go func() {
		logger.Sugar().Infof("Starting server on %s...", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: forced shutdown: %v", err)
	}
	if err := database.MongoClient.Disconnect(ctx); err != nil {
		logger.Sugar().Warnf("main: mongo disconnect: %v", err)
	}
	logger.Sugar().Info("Server exited")
}
