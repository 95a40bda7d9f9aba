package usecases

import (
	"context"
	"time"

	"fieldserve/internal/domain/user"
	"fieldserve/internal/shared/errors"
	"fieldserve/internal/shared/logger"
)

type GetUserQuery struct {
	UserID uint
}

type UserResult struct {
	UserID       uint       `json:"user_id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	Phone        string     `json:"phone"`
	Role         string     `json:"role"`
	RestaurantID *uint      `json:"restaurant_id"`
	IsActive     bool       `json:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at"`
}

func toUserResult(u *user.User) *UserResult {
	return &UserResult{
		UserID:       u.ID(),
		Email:        u.Email(),
		Name:         u.Name(),
		Phone:        u.Phone(),
		Role:         u.Role().String(),
		RestaurantID: u.RestaurantID(),
		IsActive:     u.IsActive(),
		LastLoginAt:  u.LastLoginAt(),
		CreatedAt:    u.CreatedAt(),
	}
}

type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, query GetUserQuery) (*UserResult, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	account, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	return toUserResult(account), nil
}
