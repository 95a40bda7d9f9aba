package mappers

import (
	"fieldserve/internal/domain/user"
	"fieldserve/internal/infrastructure/persistence/models"
	"fieldserve/internal/shared/authorization"
)

type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Name:         u.Name(),
		Phone:        u.Phone(),
		Role:         u.Role().String(),
		RestaurantID: u.RestaurantID(),
		IsActive:     u.IsActive(),
		LastLoginAt:  timePtrToMillis(u.LastLoginAt()),
		Version:      u.Version(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		model.ID,
		model.Email,
		model.PasswordHash,
		model.Name,
		model.Phone,
		authorization.UserRole(model.Role),
		model.RestaurantID,
		model.IsActive,
		millisPtrToTime(model.LastLoginAt),
		model.Version,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
