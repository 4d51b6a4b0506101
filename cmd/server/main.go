package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/mkulima/livestock-market/internal/api"
	"github.com/mkulima/livestock-market/internal/config"
	"github.com/mkulima/livestock-market/internal/database"
	"github.com/mkulima/livestock-market/internal/database/repository"
	"github.com/mkulima/livestock-market/internal/database/service"
	"github.com/mkulima/livestock-market/internal/handler"
	"github.com/mkulima/livestock-market/internal/logger"
	"github.com/mkulima/livestock-market/internal/middleware"
	"github.com/mkulima/livestock-market/internal/storage"
)

func main() {
	// 1. Config (.env is optional, real env vars win)
	godotenv.Load()
	cfg := config.LoadConfig()

	// 2. Logger
	appLogger := logger.New(cfg.AppEnv, cfg.LogLevel)

	appLogger.Info("🚀 [Go] Starting Livestock Market API...",
		"environment", cfg.AppEnv,
	)

	// 3. Connect to Database
	db, err := database.ConnectDatabase(cfg, appLogger)
	if err != nil {
		appLogger.Error("❌ Failed to connect to database", "error", err)
		os.Exit(1)
	}

	// 4. Initialize Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	farmerRepo := repository.NewFarmerRepository(db)
	brokerRepo := repository.NewBrokerRepository(db)
	livestockRepo := repository.NewLivestockRepository(db)

	// 5. Initialize Services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg, appLogger)
	userService := service.NewUserService(userRepo, appLogger)
	farmerService := service.NewFarmerService(farmerRepo, userRepo, livestockRepo, appLogger)
	brokerService := service.NewBrokerService(brokerRepo, userRepo, appLogger)
	livestockService := service.NewLivestockService(livestockRepo, userRepo, appLogger)

	// 6. Image storage for listing uploads
	imageStore, err := storage.NewImageStore(cfg.UploadDir, appLogger)
	if err != nil {
		appLogger.Error("❌ Failed to prepare upload directory", "error", err)
		os.Exit(1)
	}

	// 7. Initialize Handlers & Middleware
	authHandler := handler.NewAuthHandler(authService, appLogger)
	userHandler := handler.NewUserHandler(userService, appLogger)
	farmerHandler := handler.NewFarmerHandler(farmerService, appLogger)
	brokerHandler := handler.NewBrokerHandler(brokerService, appLogger)
	livestockHandler := handler.NewLivestockHandler(livestockService, imageStore, appLogger)
	authMiddleware := middleware.NewAuthMiddleware(authService, appLogger)

	// 8. Initialize Rate Limiter
	rateLimiter, err := middleware.NewRateLimiter(cfg, appLogger)
	if err != nil {
		appLogger.Warn("⚠️ Failed to connect to Redis, using no-op rate limiter", "error", err)
		rateLimiter = middleware.NewNoOpRateLimiter(appLogger)
	}
	defer rateLimiter.Close()

	// 9. Setup Router
	r := api.SetupRouter(
		cfg,
		authHandler,
		userHandler,
		farmerHandler,
		brokerHandler,
		livestockHandler,
		authMiddleware,
		middleware.LoginRateLimit(rateLimiter, appLogger),
	)

	// 10. Start HTTP Server
	addr := fmt.Sprintf(":%s", cfg.ApiServicePort)
	appLogger.Info("🌍 [Go] HTTP Server running on port...", "port", addr)
	if err := r.Run(addr); err != nil {
		appLogger.Error("❌ HTTP Server failed to start", "error", err)
		os.Exit(1)
	}
}
