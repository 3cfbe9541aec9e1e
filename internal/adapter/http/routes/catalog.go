package routes

import (
	"servicedesk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCatalogCategories = "/catalog/categories"
	PathCatalogItems      = "/catalog/items"
)

func addCatalogRoutes(rg *gin.RouterGroup, handler *handlers.CatalogHandler) {
	categories := rg.Group(PathCatalogCategories)
	{
		categories.POST("", handler.CreateCategory)
		categories.GET("", handler.ListCategories)
		categories.GET("/:id", handler.GetCategory)
		categories.PATCH("/:id", handler.UpdateCategory)
		categories.DELETE("/:id", handler.DeleteCategory)
	}

	items := rg.Group(PathCatalogItems)
	{
		items.POST("", handler.CreateItem)
		items.GET("", handler.ListItems)
		items.GET("/:key", handler.GetItem)
		items.PATCH("/:key", handler.UpdateItem)
		items.DELETE("/:key", handler.DeleteItem)
	}
}
