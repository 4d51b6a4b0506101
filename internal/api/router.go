package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mkulima/livestock-market/internal/config"
	"github.com/mkulima/livestock-market/internal/handler"
	"github.com/mkulima/livestock-market/internal/middleware"
)

func SetupRouter(
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	farmerHandler *handler.FarmerHandler,
	brokerHandler *handler.BrokerHandler,
	livestockHandler *handler.LivestockHandler,
	authMiddleware *middleware.AuthMiddleware,
	loginLimiter gin.HandlerFunc,
) *gin.Engine {
	r := gin.Default()
	r.SetTrustedProxies(nil)
	r.Use(cors.Default())

	// Public routes
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Auth routes (Public)
	r.POST("/register", authHandler.Register)
	r.POST("/login", loginLimiter, authHandler.Login)
	r.POST("/refresh", authHandler.Refresh)
	r.POST("/logout", authHandler.Logout)

	// Livestock browsing is open to everyone
	r.GET("/livestock", livestockHandler.ListLivestock)
	r.GET("/livestock/:id", livestockHandler.GetLivestock)

	// Protected routes
	auth := r.Group("/")
	auth.Use(authMiddleware.RequireAuth())
	{
		auth.GET("/profile", userHandler.GetProfile)
		auth.PUT("/profile", userHandler.UpdateProfile)
		auth.DELETE("/profile", userHandler.DeleteProfile)

		auth.GET("/users", userHandler.ListUsers)
		auth.GET("/users/:id", userHandler.GetUser)
		auth.GET("/users/role/:role", userHandler.ListUsersByRole)

		auth.GET("/farmers", farmerHandler.ListFarmers)
		auth.GET("/farmers/:id", farmerHandler.GetFarmer)
		auth.POST("/farmers", farmerHandler.CreateFarmer)
		auth.GET("/farmers/location/:location", farmerHandler.ListFarmersByLocation)
		auth.GET("/farmers/:id/livestock", farmerHandler.ListFarmerLivestock)

		auth.GET("/brokers", brokerHandler.ListBrokers)
		auth.GET("/broker/:id", brokerHandler.GetBroker)
		auth.POST("/broker", brokerHandler.CreateBroker)

		// Mutations on listings are owner-only, enforced in the service
		auth.POST("/livestock", middleware.BodyLimit(cfg.MaxUploadSize), livestockHandler.CreateLivestock)
		auth.PUT("/livestock/:id", middleware.BodyLimit(cfg.MaxUploadSize), livestockHandler.UpdateLivestock)
		auth.DELETE("/livestock/:id", livestockHandler.DeleteLivestock)
		auth.GET("/my-livestock", livestockHandler.ListMyLivestock)
	}

	// Serve uploaded images
	r.Static("/uploads", cfg.UploadDir)

	return r
}
