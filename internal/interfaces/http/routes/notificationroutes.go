package routes

import (
	"github.com/gin-gonic/gin"

	"fieldserve/internal/interfaces/http/handlers"
	"fieldserve/internal/interfaces/http/middleware"
)

// NotificationRouteConfig holds dependencies for notification routes.
type NotificationRouteConfig struct {
	NotificationHandler *handlers.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// SetupNotificationRoutes configures the notification inbox routes.
func SetupNotificationRoutes(engine *gin.Engine, cfg *NotificationRouteConfig) {
	notifications := engine.Group("/notifications")
	notifications.Use(cfg.AuthMiddleware.RequireAuth())
	{
		// Register specific paths BEFORE parameterized paths.
		notifications.GET("/unread-count", cfg.NotificationHandler.UnreadCount)
		notifications.POST("/read-all", cfg.NotificationHandler.MarkAllRead)

		notifications.GET("", cfg.NotificationHandler.List)
		notifications.POST("/:id/read", cfg.NotificationHandler.MarkRead)
	}
}
