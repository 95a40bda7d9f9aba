package ticket

import (
	"context"

	vo "fieldserve/internal/domain/ticket/valueobjects"
)

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	GetByNumber(ctx context.Context, number string) (*Ticket, error)
	List(ctx context.Context, filters TicketFilter) ([]*Ticket, int64, error)
	GetOverdueTickets(ctx context.Context) ([]*Ticket, error)
}

type TicketFilter struct {
	Status       *vo.TicketStatus
	Priority     *vo.Priority
	DeviceID     *uint
	RestaurantID *uint
	CreatorID    *uint
	AssigneeID   *uint
	Search       string
	Page         int
	PageSize     int
	SortBy       string
	SortOrder    string
}

type HistoryRepository interface {
	Save(ctx context.Context, entry *HistoryEntry) error
	GetByTicketID(ctx context.Context, ticketID uint) ([]*HistoryEntry, error)
}

type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
}

type InterventionRepository interface {
	Save(ctx context.Context, intervention *Intervention) error
	GetByID(ctx context.Context, id uint) (*Intervention, error)
	GetByTicketID(ctx context.Context, ticketID uint) (*Intervention, error)
}
