package routes

import (
	"github.com/gin-gonic/gin"

	"fieldserve/internal/interfaces/http/handlers"
	"fieldserve/internal/interfaces/http/middleware"
	"fieldserve/internal/shared/authorization"
)

// InventoryRouteConfig holds dependencies for warehouse routes.
type InventoryRouteConfig struct {
	InventoryHandler *handlers.InventoryHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// SetupInventoryRoutes configures the spare-part warehouse routes.
func SetupInventoryRoutes(engine *gin.Engine, cfg *InventoryRouteConfig) {
	warehouse := authorization.RequireRoles(authorization.RoleWarehouse, authorization.RoleManager)

	inventory := engine.Group("/inventory")
	inventory.Use(cfg.AuthMiddleware.RequireAuth())
	{
		inventory.POST("", warehouse, cfg.InventoryHandler.Create)
		inventory.GET("", cfg.InventoryHandler.List)
		inventory.GET("/:id", cfg.InventoryHandler.Get)
		inventory.PUT("/:id", warehouse, cfg.InventoryHandler.Update)
		inventory.POST("/:id/adjust", warehouse, cfg.InventoryHandler.AdjustStock)
	}
}
