package routes

import (
	"servicedesk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAssets = "/assets"
)

func addAssetRoutes(rg *gin.RouterGroup, handler *handlers.AssetHandler) {
	assets := rg.Group(PathAssets)
	{
		assets.POST("", handler.Create)
		assets.GET("", handler.List)
		assets.GET("/:key", handler.Get)
		assets.PATCH("/:key", handler.Update)
		assets.DELETE("/:key", handler.Delete)
	}
}
