package routes

import (
	"github.com/gin-gonic/gin"

	"fieldserve/internal/interfaces/http/handlers"
	"fieldserve/internal/interfaces/http/middleware"
	"fieldserve/internal/shared/authorization"
)

// AuthRouteConfig holds dependencies for authentication and user routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAuthRoutes configures authentication and user administration routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/login", cfg.AuthHandler.Login)
		auth.GET("/me", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Me)
	}

	users := engine.Group("/users")
	users.Use(cfg.AuthMiddleware.RequireAuth())
	{
		users.POST("", authorization.RequireAdmin(), cfg.AuthHandler.Register)
		users.GET("", authorization.RequireManager(), cfg.AuthHandler.ListUsers)
		users.GET("/:id", authorization.RequireManager(), cfg.AuthHandler.GetUser)
		users.PUT("/:id/role", authorization.RequireAdmin(), cfg.AuthHandler.ChangeRole)
		users.DELETE("/:id", authorization.RequireAdmin(), cfg.AuthHandler.Deactivate)
	}
}
