package usecases

import (
	"context"

	"fieldserve/internal/domain/user"
	"fieldserve/internal/shared/authorization"
	"fieldserve/internal/shared/logger"
	"fieldserve/internal/shared/utils"
)

type ListUsersQuery struct {
	Role         string
	RestaurantID *uint
	ActiveOnly   bool
	Search       string
	Page         int
	PageSize     int
}

type ListUsersResult struct {
	Users    []UserResult `json:"users"`
	Total    int64        `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo, logger: logger}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	filter := user.Filter{
		RestaurantID: query.RestaurantID,
		Search:       query.Search,
		Page:         pagination.Page,
		PageSize:     pagination.PageSize,
	}
	if len(query.Role) > 0 {
		role := authorization.ParseUserRole(query.Role)
		filter.Role = &role
	}
	if query.ActiveOnly {
		active := true
		filter.IsActive = &active
	}

	users, total, err := uc.userRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}

	results := make([]UserResult, 0, len(users))
	for _, u := range users {
		results = append(results, *toUserResult(u))
	}

	return &ListUsersResult{
		Users:    results,
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}
