package routes

import (
	"servicedesk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathConfigurationItems = "/configuration-items"
)

func addConfigurationItemRoutes(rg *gin.RouterGroup, handler *handlers.ConfigurationItemHandler) {
	items := rg.Group(PathConfigurationItems)
	{
		items.POST("", handler.Create)
		items.GET("", handler.List)
		items.GET("/:key", handler.Get)
		items.PATCH("/:key", handler.Update)
		items.DELETE("/:key", handler.Delete)
	}
}
