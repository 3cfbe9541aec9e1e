package routes

import (
	"servicedesk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathChangeRequests = "/change-requests"
)

func addChangeRequestRoutes(rg *gin.RouterGroup, handler *handlers.ChangeRequestHandler) {
	changes := rg.Group(PathChangeRequests)
	{
		changes.POST("", handler.Create)
		changes.GET("", handler.List)
		changes.GET("/:key", handler.Get)
		changes.PATCH("/:key", handler.Update)
		changes.DELETE("/:key", handler.Delete)
	}
}
