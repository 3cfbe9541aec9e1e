package routes

import (
	"servicedesk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServiceRequests = "/service-requests"
)

func addServiceRequestRoutes(rg *gin.RouterGroup, handler *handlers.ServiceRequestHandler) {
	requests := rg.Group(PathServiceRequests)
	{
		requests.POST("", handler.Create)
		requests.GET("", handler.List)
		requests.GET("/:key", handler.Get)
		requests.PATCH("/:key", handler.Update)
		requests.DELETE("/:key", handler.Delete)
	}
}
