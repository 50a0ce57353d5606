package generate

import (
	"github.com/gin-gonic/gin"
	"github.com/sycord/server/internal/auth"
	"github.com/sycord/server/internal/generator"
)

func RegisterRoutes(router *gin.RouterGroup, gen *generator.Generator, rateLimiter gin.HandlerFunc) {
	aiGroup := router.Group("/ai")
	aiGroup.Use(auth.AuthMiddleware(), rateLimiter)
	{
		aiGroup.POST("/generate", Handler(gen))
	}
}
