package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nutritrack/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, logger *zap.Logger) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware(logger))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP, cfg.RateLimit.Burst))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		foods := v1.Group("/foods")
		{
			foods.GET("", handler.SearchFoods)
			foods.POST("/detail", OptionalAuthMiddleware(cfg.Auth.JWTSecret), handler.FoodDetail)
		}

		nutrition := v1.Group("/nutrition")
		{
			nutrition.POST("/estimate", handler.EstimateNutrition)
		}

		profile := v1.Group("/profile", AuthMiddleware(cfg.Auth.JWTSecret))
		{
			profile.GET("", handler.GetProfile)
			profile.PUT("", handler.UpdateProfile)
			profile.POST("/nutrition", handler.CreateNutritionProfile)
			profile.GET("/nutrition", handler.GetNutritionProfile)
		}

		workouts := v1.Group("/workouts", AuthMiddleware(cfg.Auth.JWTSecret))
		{
			workouts.POST("", handler.RecordWorkout)
		}
	}

	return router
}
