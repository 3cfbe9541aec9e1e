package routes

import (
	"servicedesk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCategories = "/categories"
	PathLocations  = "/locations"
	PathVendors    = "/vendors"
)

func addLookupRoutes(rg *gin.RouterGroup, handler *handlers.LookupHandler) {
	categories := rg.Group(PathCategories)
	{
		categories.POST("", handler.CreateCategory)
		categories.GET("", handler.ListCategories)
		categories.GET("/:id", handler.GetCategory)
		categories.PATCH("/:id", handler.UpdateCategory)
		categories.DELETE("/:id", handler.DeleteCategory)
	}

	locations := rg.Group(PathLocations)
	{
		locations.POST("", handler.CreateLocation)
		locations.GET("", handler.ListLocations)
		locations.GET("/:id", handler.GetLocation)
		locations.PATCH("/:id", handler.UpdateLocation)
		locations.DELETE("/:id", handler.DeleteLocation)
	}

	vendors := rg.Group(PathVendors)
	{
		vendors.POST("", handler.CreateVendor)
		vendors.GET("", handler.ListVendors)
		vendors.GET("/:id", handler.GetVendor)
		vendors.PATCH("/:id", handler.UpdateVendor)
		vendors.DELETE("/:id", handler.DeleteVendor)
	}
}
