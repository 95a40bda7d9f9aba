package http

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	deviceUC "fieldserve/internal/application/device/usecases"
	inventoryUC "fieldserve/internal/application/inventory/usecases"
	knowledgeUC "fieldserve/internal/application/knowledge/usecases"
	maintenanceUC "fieldserve/internal/application/maintenance/usecases"
	notificationUC "fieldserve/internal/application/notification/usecases"
	restaurantUC "fieldserve/internal/application/restaurant/usecases"
	ticketUC "fieldserve/internal/application/ticket/usecases"
	userUC "fieldserve/internal/application/user/usecases"
	"fieldserve/internal/domain/shared/events"
	"fieldserve/internal/domain/ticket"
	"fieldserve/internal/infrastructure/auth"
	"fieldserve/internal/infrastructure/cache"
	"fieldserve/internal/infrastructure/config"
	"fieldserve/internal/infrastructure/database"
	"fieldserve/internal/infrastructure/email"
	"fieldserve/internal/infrastructure/label"
	"fieldserve/internal/infrastructure/markdown"
	"fieldserve/internal/infrastructure/notifier"
	"fieldserve/internal/infrastructure/queue"
	"fieldserve/internal/infrastructure/realtime"
	"fieldserve/internal/infrastructure/report"
	"fieldserve/internal/infrastructure/repository"
	"fieldserve/internal/infrastructure/scheduler"
	"fieldserve/internal/interfaces/http/handlers"
	"fieldserve/internal/interfaces/http/middleware"
	sharedDB "fieldserve/internal/shared/db"
	"fieldserve/internal/shared/logger"
)

// Container wires repositories, use cases, handlers and background
// services for the HTTP server.
type Container struct {
	cfg    *config.Config
	logger logger.Interface

	dispatcher events.EventDispatcher
	hub        *realtime.Hub
	replayer   *queue.Replayer
	jobs       *scheduler.Manager

	AuthMiddleware      *middleware.AuthMiddleware
	TicketHandler       *handlers.TicketHandler
	DeviceHandler       *handlers.DeviceHandler
	RestaurantHandler   *handlers.RestaurantHandler
	InventoryHandler    *handlers.InventoryHandler
	AuthHandler         *handlers.AuthHandler
	NotificationHandler *handlers.NotificationHandler
	KnowledgeHandler    *handlers.KnowledgeHandler
	MaintenanceHandler  *handlers.MaintenanceHandler
	WSHandler           *handlers.WSHandler
	HealthHandler       *handlers.HealthHandler
}

// dbPinger adapts the database package to the queue's Pinger interface.
type dbPinger struct{}

func (dbPinger) Ping(ctx context.Context) error {
	return database.Ping(ctx)
}

// NewContainer builds the full dependency graph. The dispatcher must
// already be running so the event subscriptions made here take effect.
func NewContainer(
	cfg *config.Config,
	db *gorm.DB,
	redisClient *redis.Client,
	dispatcher events.EventDispatcher,
	log logger.Interface,
) (*Container, error) {
	c := &Container{
		cfg:        cfg,
		logger:     log,
		dispatcher: dispatcher,
	}

	// Repositories.
	mutationQueue := queue.NewRedisMutationQueue(redisClient)
	var ticketRepo ticket.TicketRepository = repository.NewTicketRepository(db)
	var historyRepo ticket.HistoryRepository = repository.NewHistoryRepository(db)
	ticketRepo = queue.NewOfflineTicketRepository(ticketRepo, mutationQueue, log)
	historyRepo = queue.NewOfflineHistoryRepository(historyRepo, mutationQueue, log)

	commentRepo := repository.NewCommentRepository(db)
	interventionRepo := repository.NewInterventionRepository(db)
	deviceRepo := repository.NewDeviceRepository(db)
	restaurantRepo := repository.NewRestaurantRepository(db)
	itemRepo := repository.NewInventoryItemRepository(db)
	usageRepo := repository.NewInventoryUsageRepository(db)
	userRepo := repository.NewUserRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	knowledgeRepo := repository.NewKnowledgeRepository(db)
	maintenanceRepo := repository.NewMaintenanceRepository(db)

	numberGen := repository.NewTicketNumberGenerator(db)
	txManager := sharedDB.NewTransactionManager(db)

	// Infrastructure services.
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	tokens := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	unreadCounter := cache.NewRedisUnreadCounter(redisClient, log)
	renderer := markdown.NewGoldmarkRenderer()
	labels := label.NewQRLabelGenerator()
	workOrders := report.NewWorkOrderPDFRenderer()

	var sender email.Sender
	if cfg.Email.Enabled {
		sender = email.NewSMTPSender(&cfg.Email)
	}

	// Realtime change feed.
	c.hub = realtime.NewHub(log)
	bridge := realtime.NewBridge(c.hub, log)
	if err := bridge.Attach(dispatcher); err != nil {
		return nil, err
	}

	// Event-driven notifications.
	n := notifier.NewNotifier(notificationRepo, userRepo, ticketRepo, sender, unreadCounter, log)
	if err := n.Attach(dispatcher); err != nil {
		return nil, err
	}

	// Offline mutation replay.
	applier := queue.NewTicketMutationApplier(db)
	c.replayer = queue.NewReplayer(mutationQueue, dbPinger{}, applier, 10*time.Second, log)

	// Background jobs.
	slaMonitor := scheduler.NewSLAMonitor(
		ticketRepo,
		dispatcher,
		time.Duration(cfg.SLA.MonitorIntervalMinutes)*time.Minute,
		log,
	)
	reminder := scheduler.NewMaintenanceReminder(maintenanceRepo, notificationRepo, userRepo, 0, 0, log)
	c.jobs = scheduler.NewManager(log, slaMonitor, reminder)

	// Use cases.
	createTicket := ticketUC.NewCreateTicketUseCase(ticketRepo, historyRepo, deviceRepo, numberGen, dispatcher, log)
	createHelpdesk := ticketUC.NewCreateHelpdeskTicketUseCase(ticketRepo, historyRepo, deviceRepo, numberGen, dispatcher, log)
	getTicket := ticketUC.NewGetTicketUseCase(ticketRepo, commentRepo, historyRepo, log)
	listTickets := ticketUC.NewListTicketsUseCase(ticketRepo, log)
	assignTicket := ticketUC.NewAssignTicketUseCase(ticketRepo, historyRepo, userRepo, dispatcher, log)
	changeStatus := ticketUC.NewChangeStatusUseCase(ticketRepo, historyRepo, dispatcher, log)
	resolveTicket := ticketUC.NewResolveTicketUseCase(
		ticketRepo, historyRepo, interventionRepo,
		itemRepo, usageRepo, deviceRepo,
		txManager, dispatcher, log,
	)
	closeTicket := ticketUC.NewCloseTicketUseCase(ticketRepo, historyRepo, dispatcher, log)
	addComment := ticketUC.NewAddCommentUseCase(ticketRepo, commentRepo, dispatcher, log)
	attachPhoto := ticketUC.NewAttachPhotoUseCase(ticketRepo, log)
	workOrder := ticketUC.NewGenerateWorkOrderUseCase(ticketRepo, interventionRepo, workOrders, log)
	verifyWritePath := ticketUC.NewVerifyWritePathUseCase(ticketRepo, numberGen, log)

	registerDevice := deviceUC.NewRegisterDeviceUseCase(deviceRepo, restaurantRepo, log)
	updateDevice := deviceUC.NewUpdateDeviceUseCase(deviceRepo, dispatcher, log)
	getDevice := deviceUC.NewGetDeviceUseCase(deviceRepo, log)
	listDevices := deviceUC.NewListDevicesUseCase(deviceRepo, log)
	generateLabel := deviceUC.NewGenerateLabelUseCase(deviceRepo, labels, log)

	restaurantService := restaurantUC.NewRestaurantService(restaurantRepo, log)

	createItem := inventoryUC.NewCreateItemUseCase(itemRepo, log)
	updateItem := inventoryUC.NewUpdateItemUseCase(itemRepo, log)
	getItem := inventoryUC.NewGetItemUseCase(itemRepo, usageRepo, log)
	listItems := inventoryUC.NewListItemsUseCase(itemRepo, log)
	adjustStock := inventoryUC.NewAdjustStockUseCase(itemRepo, txManager, dispatcher, log)

	registerUser := userUC.NewRegisterUserUseCase(userRepo, hasher, log)
	login := userUC.NewLoginUseCase(userRepo, hasher, tokens, log)
	getUser := userUC.NewGetUserUseCase(userRepo, log)
	listUsers := userUC.NewListUsersUseCase(userRepo, log)
	changeRole := userUC.NewChangeRoleUseCase(userRepo, log)
	deactivateUser := userUC.NewDeactivateUserUseCase(userRepo, log)

	notificationService := notificationUC.NewNotificationService(notificationRepo, unreadCounter, log)
	articleService := knowledgeUC.NewArticleService(knowledgeRepo, renderer, log)
	maintenanceService := maintenanceUC.NewMaintenanceService(maintenanceRepo, deviceRepo, log)

	// Handlers.
	c.AuthMiddleware = middleware.NewAuthMiddleware(tokens, log)
	c.TicketHandler = handlers.NewTicketHandler(
		createTicket, createHelpdesk, getTicket, listTickets,
		assignTicket, changeStatus, resolveTicket, closeTicket,
		addComment, attachPhoto, workOrder, verifyWritePath, log,
	)
	c.DeviceHandler = handlers.NewDeviceHandler(registerDevice, updateDevice, getDevice, listDevices, generateLabel, log)
	c.RestaurantHandler = handlers.NewRestaurantHandler(restaurantService, log)
	c.InventoryHandler = handlers.NewInventoryHandler(createItem, updateItem, getItem, listItems, adjustStock, log)
	c.AuthHandler = handlers.NewAuthHandler(registerUser, login, getUser, listUsers, changeRole, deactivateUser, log)
	c.NotificationHandler = handlers.NewNotificationHandler(notificationService, log)
	c.KnowledgeHandler = handlers.NewKnowledgeHandler(articleService, log)
	c.MaintenanceHandler = handlers.NewMaintenanceHandler(maintenanceService, log)
	c.WSHandler = handlers.NewWSHandler(c.hub, tokens, log)
	c.HealthHandler = handlers.NewHealthHandler(dbPinger{}, mutationQueue)

	return c, nil
}

// Start launches the background services.
func (c *Container) Start() {
	c.replayer.Start()
	c.jobs.Start()
}

// Stop shuts the background services down in reverse dependency order.
func (c *Container) Stop() {
	c.jobs.Stop()
	c.replayer.Stop()
	c.hub.Close()
}
