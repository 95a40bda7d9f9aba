package inventory

import "context"

type ItemRepository interface {
	Save(ctx context.Context, item *Item) error
	Update(ctx context.Context, item *Item) error
	Delete(ctx context.Context, itemID uint) error
	GetByID(ctx context.Context, itemID uint) (*Item, error)
	// GetByIDForUpdate locks the row for the duration of the enclosing
	// transaction. Used by consumption so concurrent resolutions cannot
	// both read the same stock level.
	GetByIDForUpdate(ctx context.Context, itemID uint) (*Item, error)
	GetBySKU(ctx context.Context, sku string) (*Item, error)
	List(ctx context.Context, filter ItemFilter) ([]*Item, int64, error)
	ListBelowMinimum(ctx context.Context) ([]*Item, error)
}

type ItemFilter struct {
	Category     *string
	BelowMinimum bool
	Search       string
	Page         int
	PageSize     int
}

type UsageRepository interface {
	Save(ctx context.Context, record *UsageRecord) error
	GetByTicketID(ctx context.Context, ticketID uint) ([]*UsageRecord, error)
	GetByItemID(ctx context.Context, itemID uint) ([]*UsageRecord, error)
}
