// File: samvidhansetu/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"samvidhansetu/config"
	"samvidhansetu/database"
	accountRepoPkg "samvidhansetu/database/repository/account"
	lawRepoPkg "samvidhansetu/database/repository/law"
	"samvidhansetu/handlers"
	"samvidhansetu/middleware"
	"samvidhansetu/routes"
	"samvidhansetu/services/admin"
	"samvidhansetu/services/auth"
	ai "samvidhansetu/services/intelligence"
	"samvidhansetu/services/law"
	"samvidhansetu/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	lawRepo := lawRepoPkg.NewMongoLawRepo()
	accountRepo := accountRepoPkg.NewMongoAccountRepo()

	// Seed the law database on first boot so browsing works out of the box.
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 15*time.Second)
	if err := lawRepo.EnsureSeed(seedCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to seed law database: %v", err)
	}
	cancelSeed()

	// services.
	authService := &auth.DefaultAuthService{
		Repo:     accountRepo,
		Sessions: auth.NewRedisSessionStore(utils.GetAuthCacheClient()),
	}

	lawService := &law.DefaultLawService{
		Repo: lawRepo,
		Auth: authService,
	}

	ctxStore := ai.NewRedisContextStore(utils.GetAIContextCacheClient(), 30*time.Minute)
	aiSvc, err := ai.NewDefaultAIService(
		config.AppConfig.GeminiAPIKey,
		config.AppConfig.GeminiChatModel,
		config.AppConfig.GeminiReasoningModel,
		ctxStore,
		lawService,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize AI service: %v", err)
	}

	adminService := &admin.DefaultAdminService{}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AccountRepo: accountRepo,
		Auth:        handlers.NewAuthHandler(authService),
		Laws:        handlers.NewLawHandler(lawService),
		AI:          handlers.NewAIHandler(aiSvc, lawService),
		Admin:       handlers.NewAdminHandler(authService, adminService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Periodic dependency health checks backing /health.
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient(), utils.GetAIContextCacheClient()},
		database.MongoClient,
	)

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
