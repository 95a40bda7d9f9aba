package notification

import "context"

type Repository interface {
	Save(ctx context.Context, notification *Notification) error
	Update(ctx context.Context, notification *Notification) error
	GetByID(ctx context.Context, notificationID uint) (*Notification, error)
	ListByUser(ctx context.Context, userID uint, filter Filter) ([]*Notification, int64, error)
	CountUnread(ctx context.Context, userID uint) (int64, error)
	MarkAllRead(ctx context.Context, userID uint) error
}

type Filter struct {
	UnreadOnly bool
	Page       int
	PageSize   int
}
