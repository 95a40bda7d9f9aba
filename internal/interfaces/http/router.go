package http

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"fieldserve/internal/domain/ticket/valueobjects"
	"fieldserve/internal/infrastructure/config"
	"fieldserve/internal/interfaces/http/middleware"
	"fieldserve/internal/interfaces/http/routes"
	"fieldserve/internal/shared/logger"
)

// Router owns the gin engine and the route registration.
type Router struct {
	engine    *gin.Engine
	container *Container
	cfg       *config.Config
	logger    logger.Interface
}

func NewRouter(container *Container, cfg *config.Config, log logger.Interface) *Router {
	registerValidators()

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	return &Router{
		engine:    engine,
		container: container,
		cfg:       cfg,
		logger:    log,
	}
}

// SetupRoutes registers every route group on the engine.
func (r *Router) SetupRoutes() {
	c := r.container

	r.engine.GET("/health", c.HealthHandler.Health)

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    c.AuthHandler,
		AuthMiddleware: c.AuthMiddleware,
	})
	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  c.TicketHandler,
		AuthMiddleware: c.AuthMiddleware,
	})
	routes.SetupDeviceRoutes(r.engine, &routes.DeviceRouteConfig{
		DeviceHandler:  c.DeviceHandler,
		AuthMiddleware: c.AuthMiddleware,
	})
	routes.SetupRestaurantRoutes(r.engine, &routes.RestaurantRouteConfig{
		RestaurantHandler: c.RestaurantHandler,
		AuthMiddleware:    c.AuthMiddleware,
	})
	routes.SetupInventoryRoutes(r.engine, &routes.InventoryRouteConfig{
		InventoryHandler: c.InventoryHandler,
		AuthMiddleware:   c.AuthMiddleware,
	})
	routes.SetupNotificationRoutes(r.engine, &routes.NotificationRouteConfig{
		NotificationHandler: c.NotificationHandler,
		AuthMiddleware:      c.AuthMiddleware,
	})
	routes.SetupKnowledgeRoutes(r.engine, &routes.KnowledgeRouteConfig{
		KnowledgeHandler: c.KnowledgeHandler,
		AuthMiddleware:   c.AuthMiddleware,
	})
	routes.SetupMaintenanceRoutes(r.engine, &routes.MaintenanceRouteConfig{
		MaintenanceHandler: c.MaintenanceHandler,
		AuthMiddleware:     c.AuthMiddleware,
	})
	routes.SetupWSRoutes(r.engine, &routes.WSRouteConfig{
		WSHandler: c.WSHandler,
	})
}

// Engine exposes the configured engine to the HTTP server.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// registerValidators adds the domain value checks to gin's binding layer
// so malformed payloads are rejected before a use case runs.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("ticketstatus", func(fl validator.FieldLevel) bool {
		return valueobjects.TicketStatus(fl.Field().String()).IsValid()
	})
}
