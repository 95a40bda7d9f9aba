package routes

import (
	"github.com/gin-gonic/gin"

	"fieldserve/internal/interfaces/http/handlers"
	"fieldserve/internal/interfaces/http/middleware"
	"fieldserve/internal/shared/authorization"
)

// RestaurantRouteConfig holds dependencies for restaurant site routes.
type RestaurantRouteConfig struct {
	RestaurantHandler *handlers.RestaurantHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// SetupRestaurantRoutes configures the restaurant site routes.
func SetupRestaurantRoutes(engine *gin.Engine, cfg *RestaurantRouteConfig) {
	restaurants := engine.Group("/restaurants")
	restaurants.Use(cfg.AuthMiddleware.RequireAuth())
	{
		restaurants.POST("", authorization.RequireManager(), cfg.RestaurantHandler.Create)
		restaurants.GET("", cfg.RestaurantHandler.List)
		restaurants.GET("/:id", cfg.RestaurantHandler.Get)
		restaurants.PUT("/:id", authorization.RequireManager(), cfg.RestaurantHandler.Update)
		restaurants.DELETE("/:id", authorization.RequireAdmin(), cfg.RestaurantHandler.Delete)
	}
}
