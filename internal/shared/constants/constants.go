package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Context keys
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"

	// Database table names
	TableUsers              = "users"
	TableTickets            = "tickets"
	TableTicketHistory      = "ticket_history"
	TableTicketComments     = "ticket_comments"
	TableInterventions      = "interventions"
	TableDevices            = "devices"
	TableRestaurants        = "restaurants"
	TableEquipmentInventory = "equipment_inventory"
	TableInventoryUsage     = "inventory_usage"
	TableNotifications      = "notifications"
	TableKnowledgeArticles  = "knowledge_articles"
	TableMaintenanceRecords = "maintenance_records"
)
