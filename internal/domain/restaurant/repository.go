package restaurant

import "context"

type Repository interface {
	Save(ctx context.Context, restaurant *Restaurant) error
	Update(ctx context.Context, restaurant *Restaurant) error
	Delete(ctx context.Context, restaurantID uint) error
	GetByID(ctx context.Context, restaurantID uint) (*Restaurant, error)
	List(ctx context.Context, filter Filter) ([]*Restaurant, int64, error)
}

type Filter struct {
	Search   string
	Page     int
	PageSize int
}
