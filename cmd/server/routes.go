package main

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	authrest "github.com/sycord/server/api/rest/auth"
	functionsrest "github.com/sycord/server/api/rest/functions"
	"github.com/sycord/server/api/rest/generate"
	"github.com/sycord/server/api/rest/health"
	"github.com/sycord/server/internal/ratelimit"
)

// default per-user quota on the generation endpoint; completion calls are
// slow and billed, the limiter runs before any classification
const defaultGenerationRate = "30-H"

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) error {
	router.Use(corsMiddleware())
	router.GET("/health", health.Handler)

	generationRate := os.Getenv("GENERATION_RATE_LIMIT")
	if generationRate == "" {
		generationRate = defaultGenerationRate
	}

	generationLimiter, err := ratelimit.UserRateLimiter(generationRate)
	if err != nil {
		return err
	}

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		authrest.RegisterRoutes(v1, server.userRepo)
		functionsrest.RegisterRoutes(v1, server.functionRepo)
		generate.RegisterRoutes(v1, server.services.Generator, generationLimiter)
	}

	return nil
}

func corsMiddleware() gin.HandlerFunc {
	allowedOrigins := []string{"http://localhost:3000"}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		allowedOrigins = strings.Split(origins, ",")
	}

	return cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
