package maintenance

import (
	"context"
	"time"
)

type Repository interface {
	Save(ctx context.Context, record *Record) error
	Update(ctx context.Context, record *Record) error
	Delete(ctx context.Context, recordID uint) error
	GetByID(ctx context.Context, recordID uint) (*Record, error)
	List(ctx context.Context, filter Filter) ([]*Record, int64, error)
	ListDueBefore(ctx context.Context, cutoff time.Time) ([]*Record, error)
}

type Filter struct {
	DeviceID     *uint
	TechnicianID *uint
	Completed    *bool
	Page         int
	PageSize     int
}
