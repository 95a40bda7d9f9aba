package usecases

import (
	"context"

	"fieldserve/internal/domain/device"
	"fieldserve/internal/domain/inventory"
	"fieldserve/internal/domain/shared/events"
	"fieldserve/internal/domain/ticket"
	"fieldserve/internal/domain/user"
	"fieldserve/internal/shared/authorization"
	"fieldserve/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc              func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc            func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc            func(ctx context.Context, ticketID uint) error
	GetByIDFunc           func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	GetByNumberFunc       func(ctx context.Context, number string) (*ticket.Ticket, error)
	ListFunc              func(ctx context.Context, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
	GetOverdueTicketsFunc func(ctx context.Context) ([]*ticket.Ticket, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filters)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) GetOverdueTickets(ctx context.Context) ([]*ticket.Ticket, error) {
	if m.GetOverdueTicketsFunc != nil {
		return m.GetOverdueTicketsFunc(ctx)
	}
	return nil, nil
}

type mockHistoryRepository struct {
	SaveFunc          func(ctx context.Context, entry *ticket.HistoryEntry) error
	GetByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.HistoryEntry, error)
}

func (m *mockHistoryRepository) Save(ctx context.Context, entry *ticket.HistoryEntry) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, entry)
	}
	return nil
}

func (m *mockHistoryRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.HistoryEntry, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockCommentRepository struct {
	SaveFunc          func(ctx context.Context, comment *ticket.Comment) error
	GetByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
}

func (m *mockCommentRepository) Save(ctx context.Context, comment *ticket.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockInterventionRepository struct {
	SaveFunc          func(ctx context.Context, intervention *ticket.Intervention) error
	GetByIDFunc       func(ctx context.Context, id uint) (*ticket.Intervention, error)
	GetByTicketIDFunc func(ctx context.Context, ticketID uint) (*ticket.Intervention, error)
}

func (m *mockInterventionRepository) Save(ctx context.Context, intervention *ticket.Intervention) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, intervention)
	}
	return nil
}

func (m *mockInterventionRepository) GetByID(ctx context.Context, id uint) (*ticket.Intervention, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockInterventionRepository) GetByTicketID(ctx context.Context, ticketID uint) (*ticket.Intervention, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockDeviceRepository struct {
	SaveFunc              func(ctx context.Context, d *device.Device) error
	UpdateFunc            func(ctx context.Context, d *device.Device) error
	DeleteFunc            func(ctx context.Context, deviceID uint) error
	GetByIDFunc           func(ctx context.Context, deviceID uint) (*device.Device, error)
	GetBySerialNumberFunc func(ctx context.Context, serial string) (*device.Device, error)
	ListFunc              func(ctx context.Context, filter device.Filter) ([]*device.Device, int64, error)
}

func (m *mockDeviceRepository) Save(ctx context.Context, d *device.Device) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, d)
	}
	return nil
}

func (m *mockDeviceRepository) Update(ctx context.Context, d *device.Device) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, d)
	}
	return nil
}

func (m *mockDeviceRepository) Delete(ctx context.Context, deviceID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, deviceID)
	}
	return nil
}

func (m *mockDeviceRepository) GetByID(ctx context.Context, deviceID uint) (*device.Device, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, deviceID)
	}
	return nil, nil
}

func (m *mockDeviceRepository) GetBySerialNumber(ctx context.Context, serial string) (*device.Device, error) {
	if m.GetBySerialNumberFunc != nil {
		return m.GetBySerialNumberFunc(ctx, serial)
	}
	return nil, nil
}

func (m *mockDeviceRepository) List(ctx context.Context, filter device.Filter) ([]*device.Device, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockUserRepository struct {
	SaveFunc          func(ctx context.Context, u *user.User) error
	UpdateFunc        func(ctx context.Context, u *user.User) error
	DeleteFunc        func(ctx context.Context, userID uint) error
	GetByIDFunc       func(ctx context.Context, userID uint) (*user.User, error)
	GetByEmailFunc    func(ctx context.Context, email string) (*user.User, error)
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
	ListFunc          func(ctx context.Context, filter user.Filter) ([]*user.User, int64, error)
	ListByRoleFunc    func(ctx context.Context, role authorization.UserRole) ([]*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, userID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepository) List(ctx context.Context, filter user.Filter) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockUserRepository) ListByRole(ctx context.Context, role authorization.UserRole) ([]*user.User, error) {
	if m.ListByRoleFunc != nil {
		return m.ListByRoleFunc(ctx, role)
	}
	return nil, nil
}

type mockItemRepository struct {
	SaveFunc             func(ctx context.Context, item *inventory.Item) error
	UpdateFunc           func(ctx context.Context, item *inventory.Item) error
	DeleteFunc           func(ctx context.Context, itemID uint) error
	GetByIDFunc          func(ctx context.Context, itemID uint) (*inventory.Item, error)
	GetByIDForUpdateFunc func(ctx context.Context, itemID uint) (*inventory.Item, error)
	GetBySKUFunc         func(ctx context.Context, sku string) (*inventory.Item, error)
	ListFunc             func(ctx context.Context, filter inventory.ItemFilter) ([]*inventory.Item, int64, error)
	ListBelowMinimumFunc func(ctx context.Context) ([]*inventory.Item, error)
}

func (m *mockItemRepository) Save(ctx context.Context, item *inventory.Item) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, item)
	}
	return nil
}

func (m *mockItemRepository) Update(ctx context.Context, item *inventory.Item) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, item)
	}
	return nil
}

func (m *mockItemRepository) Delete(ctx context.Context, itemID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, itemID)
	}
	return nil
}

func (m *mockItemRepository) GetByID(ctx context.Context, itemID uint) (*inventory.Item, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, itemID)
	}
	return nil, nil
}

func (m *mockItemRepository) GetByIDForUpdate(ctx context.Context, itemID uint) (*inventory.Item, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, itemID)
	}
	return nil, nil
}

func (m *mockItemRepository) GetBySKU(ctx context.Context, sku string) (*inventory.Item, error) {
	if m.GetBySKUFunc != nil {
		return m.GetBySKUFunc(ctx, sku)
	}
	return nil, nil
}

func (m *mockItemRepository) List(ctx context.Context, filter inventory.ItemFilter) ([]*inventory.Item, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockItemRepository) ListBelowMinimum(ctx context.Context) ([]*inventory.Item, error) {
	if m.ListBelowMinimumFunc != nil {
		return m.ListBelowMinimumFunc(ctx)
	}
	return nil, nil
}

type mockUsageRepository struct {
	SaveFunc          func(ctx context.Context, record *inventory.UsageRecord) error
	GetByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*inventory.UsageRecord, error)
	GetByItemIDFunc   func(ctx context.Context, itemID uint) ([]*inventory.UsageRecord, error)
}

func (m *mockUsageRepository) Save(ctx context.Context, record *inventory.UsageRecord) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, record)
	}
	return nil
}

func (m *mockUsageRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*inventory.UsageRecord, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockUsageRepository) GetByItemID(ctx context.Context, itemID uint) ([]*inventory.UsageRecord, error) {
	if m.GetByItemIDFunc != nil {
		return m.GetByItemIDFunc(ctx, itemID)
	}
	return nil, nil
}

type mockNumberGenerator struct {
	GenerateFunc func(ctx context.Context) (string, error)
}

func (m *mockNumberGenerator) Generate(ctx context.Context) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx)
	}
	return "FS-20260101-0001", nil
}

// passthroughTxManager runs the function directly; transactional behavior
// is covered by repository integration tests.
type passthroughTxManager struct{}

func (passthroughTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockDispatcher struct {
	Published []events.DomainEvent
}

func (m *mockDispatcher) Publish(event events.DomainEvent) error {
	m.Published = append(m.Published, event)
	return nil
}

func (m *mockDispatcher) PublishAll(evts []events.DomainEvent) error {
	m.Published = append(m.Published, evts...)
	return nil
}

func (m *mockDispatcher) Subscribe(eventType string, handler events.EventHandler) error {
	return nil
}

func (m *mockDispatcher) Unsubscribe(eventType string, handler events.EventHandler) error {
	return nil
}

func (m *mockDispatcher) Start() error { return nil }
func (m *mockDispatcher) Stop() error  { return nil }

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any) {}
func (noopLogger) Info(msg string, args ...any)  {}
func (noopLogger) Warn(msg string, args ...any)  {}
func (noopLogger) Error(msg string, args ...any) {}

func (n noopLogger) With(args ...any) logger.Interface  { return n }
func (n noopLogger) Named(name string) logger.Interface { return n }

func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
