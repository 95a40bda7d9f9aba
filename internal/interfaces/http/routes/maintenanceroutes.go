package routes

import (
	"github.com/gin-gonic/gin"

	"fieldserve/internal/interfaces/http/handlers"
	"fieldserve/internal/interfaces/http/middleware"
	"fieldserve/internal/shared/authorization"
)

// MaintenanceRouteConfig holds dependencies for maintenance routes.
type MaintenanceRouteConfig struct {
	MaintenanceHandler *handlers.MaintenanceHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// SetupMaintenanceRoutes configures the preventive maintenance routes.
func SetupMaintenanceRoutes(engine *gin.Engine, cfg *MaintenanceRouteConfig) {
	maintenance := engine.Group("/maintenance")
	maintenance.Use(cfg.AuthMiddleware.RequireAuth())
	{
		maintenance.POST("", authorization.RequireManager(), cfg.MaintenanceHandler.Schedule)
		maintenance.GET("", cfg.MaintenanceHandler.List)
		maintenance.POST("/:id/complete", cfg.MaintenanceHandler.Complete)
	}
}
