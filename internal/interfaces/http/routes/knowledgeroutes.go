package routes

import (
	"github.com/gin-gonic/gin"

	"fieldserve/internal/interfaces/http/handlers"
	"fieldserve/internal/interfaces/http/middleware"
	"fieldserve/internal/shared/authorization"
)

// KnowledgeRouteConfig holds dependencies for knowledge base routes.
type KnowledgeRouteConfig struct {
	KnowledgeHandler *handlers.KnowledgeHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// SetupKnowledgeRoutes configures the knowledge base routes. Management
// is keyed by numeric ID; the read path is keyed by slug and lives under
// its own prefix so the two parameter styles cannot collide in the
// routing tree.
func SetupKnowledgeRoutes(engine *gin.Engine, cfg *KnowledgeRouteConfig) {
	kb := engine.Group("/knowledge")
	kb.Use(cfg.AuthMiddleware.RequireAuth())
	{
		kb.GET("/articles", cfg.KnowledgeHandler.List)
		kb.POST("/articles", cfg.KnowledgeHandler.Create)
		kb.PUT("/articles/:id", cfg.KnowledgeHandler.Update)
		kb.DELETE("/articles/:id", authorization.RequireManager(), cfg.KnowledgeHandler.Delete)

		kb.GET("/view/:slug", cfg.KnowledgeHandler.GetBySlug)
	}
}
