package routes

import (
	"github.com/gin-gonic/gin"

	"fieldserve/internal/interfaces/http/handlers"
	"fieldserve/internal/interfaces/http/middleware"
	"fieldserve/internal/shared/authorization"
)

// DeviceRouteConfig holds dependencies for equipment registry routes.
type DeviceRouteConfig struct {
	DeviceHandler  *handlers.DeviceHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupDeviceRoutes configures the equipment registry routes.
func SetupDeviceRoutes(engine *gin.Engine, cfg *DeviceRouteConfig) {
	devices := engine.Group("/devices")
	devices.Use(cfg.AuthMiddleware.RequireAuth())
	{
		devices.POST("", authorization.RequireManager(), cfg.DeviceHandler.Register)
		devices.GET("", cfg.DeviceHandler.List)
		devices.GET("/:id", cfg.DeviceHandler.Get)
		devices.PUT("/:id", authorization.RequireManager(), cfg.DeviceHandler.Update)
		devices.GET("/:id/label", cfg.DeviceHandler.Label)
	}
}
