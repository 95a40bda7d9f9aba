package routes

import (
	"github.com/gin-gonic/gin"

	"fieldserve/internal/interfaces/http/handlers"
)

// WSRouteConfig holds dependencies for the realtime change feed.
type WSRouteConfig struct {
	WSHandler *handlers.WSHandler
}

// SetupWSRoutes configures the websocket change feed. Authentication
// happens inside the handler because the token arrives as a query
// parameter rather than a header.
func SetupWSRoutes(engine *gin.Engine, cfg *WSRouteConfig) {
	engine.GET("/ws/changes", cfg.WSHandler.Changes)
}
