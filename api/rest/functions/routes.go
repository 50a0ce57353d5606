package functions

import (
	"github.com/gin-gonic/gin"
	"github.com/sycord/server/internal/auth"
	"github.com/sycord/server/sycord/functions"
)

func RegisterRoutes(router *gin.RouterGroup, repo *functions.Repository) {
	functionsGroup := router.Group("/functions")
	functionsGroup.Use(auth.AuthMiddleware())
	{
		functionsGroup.GET("", ListHandler(repo))
		functionsGroup.POST("", CreateHandler(repo))
		functionsGroup.GET("/:id", GetHandler(repo))
		functionsGroup.DELETE("/:id", DeleteHandler(repo))
		functionsGroup.GET("/:id/versions", ListVersionsHandler(repo))
		functionsGroup.GET("/:id/messages", ListMessagesHandler(repo))
	}
}
