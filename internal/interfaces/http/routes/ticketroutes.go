package routes

import (
	"github.com/gin-gonic/gin"

	"fieldserve/internal/interfaces/http/handlers"
	"fieldserve/internal/interfaces/http/middleware"
	"fieldserve/internal/shared/authorization"
)

// TicketRouteConfig holds dependencies for ticket routes.
type TicketRouteConfig struct {
	TicketHandler  *handlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupTicketRoutes configures the ticket lifecycle routes.
func SetupTicketRoutes(engine *gin.Engine, cfg *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(cfg.AuthMiddleware.RequireAuth())
	{
		// Register specific paths BEFORE parameterized paths.
		tickets.POST("/helpdesk", cfg.TicketHandler.CreateHelpdesk)
		tickets.POST("/verify-write-path", authorization.RequireAdmin(), cfg.TicketHandler.VerifyWritePath)

		tickets.POST("", cfg.TicketHandler.Create)
		tickets.GET("", cfg.TicketHandler.List)
		tickets.GET("/:id", cfg.TicketHandler.Get)
		// Assign is open to every authenticated user: self-assignment is
		// allowed for anyone, and assigning someone else is policed by
		// the use case itself.
		tickets.POST("/:id/assign", cfg.TicketHandler.Assign)
		tickets.POST("/:id/status", cfg.TicketHandler.ChangeStatus)
		tickets.POST("/:id/resolve", cfg.TicketHandler.Resolve)
		tickets.POST("/:id/close", cfg.TicketHandler.Close)
		tickets.POST("/:id/comments", cfg.TicketHandler.AddComment)
		tickets.POST("/:id/photos", cfg.TicketHandler.AttachPhoto)
		tickets.GET("/:id/work-order", cfg.TicketHandler.WorkOrder)
	}
}
