package routes

import (
	"github.com/gin-gonic/gin"

	cataloghandlers "loomflow/internal/interfaces/http/handlers/catalog"
)

type CatalogRouteConfig struct {
	CatalogHandler *cataloghandlers.CatalogHandler
}

func SetupCatalogRoutes(engine *gin.Engine, config *CatalogRouteConfig) {
	catalog := engine.Group("/catalog")
	{
		catalog.GET("/orders", config.CatalogHandler.ListOrders)
		catalog.GET("/orders/:id", config.CatalogHandler.GetOrder)
		catalog.GET("/templates/:id", config.CatalogHandler.GetTemplate)
		catalog.GET("/users", config.CatalogHandler.ListUsers)
	}
}
