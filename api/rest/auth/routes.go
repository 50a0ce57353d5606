package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/sycord/server/internal/auth"
	"github.com/sycord/server/sycord/users"
)

func RegisterRoutes(router *gin.RouterGroup, userRepo *users.Repository) {
	authGroup := router.Group("/auth")
	{
		authGroup.GET("/discord", BeginAuthHandler())
		authGroup.GET("/discord/callback", CallbackHandler(userRepo))
		authGroup.GET("/me", auth.AuthMiddleware(), GetCurrentUserHandler(userRepo))
	}
}
