package routes

import (
	"servicedesk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth  = "/auth"
	PathUsers = "/users"
)

func addAuthPublicRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", authHandler.Login)
	}
}

func addAuthProtectedRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/me", authHandler.Me)
	}

	users := rg.Group(PathUsers)
	{
		users.POST("", authHandler.CreateUser)
		users.GET("", authHandler.ListUsers)
		users.GET("/:id", authHandler.GetUser)
	}
}
