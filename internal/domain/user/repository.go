package user

import (
	"context"

	"fieldserve/internal/shared/authorization"
)

type Repository interface {
	Save(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, userID uint) error
	GetByID(ctx context.Context, userID uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, filter Filter) ([]*User, int64, error)
	ListByRole(ctx context.Context, role authorization.UserRole) ([]*User, error)
}

type Filter struct {
	Role         *authorization.UserRole
	RestaurantID *uint
	IsActive     *bool
	Search       string
	Page         int
	PageSize     int
}
