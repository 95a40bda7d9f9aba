package usecases

import (
	"context"
	"strings"

	"fieldserve/internal/domain/user"
	"fieldserve/internal/shared/authorization"
	"fieldserve/internal/shared/errors"
	"fieldserve/internal/shared/logger"
)

type RegisterUserCommand struct {
	Email        string
	Password     string
	Name         string
	Phone        string
	Role         string
	RestaurantID *uint
}

type RegisterUserResult struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

type RegisterUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewRegisterUserUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (*RegisterUserResult, error) {
	uc.logger.Infow("executing register user use case", "email", cmd.Email)

	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError("email is already registered")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to hash password")
	}

	role := authorization.ParseUserRole(cmd.Role)
	newUser, err := user.NewUser(email, hash, cmd.Name, cmd.Phone, role, cmd.RestaurantID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("email is already registered")
		}
		uc.logger.Errorw("failed to save user", "error", err)
		return nil, err
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "role", role.String())

	return &RegisterUserResult{
		UserID: newUser.ID(),
		Email:  newUser.Email(),
		Role:   newUser.Role().String(),
	}, nil
}

func (uc *RegisterUserUseCase) validateCommand(cmd RegisterUserCommand) error {
	if len(cmd.Email) == 0 {
		return errors.NewValidationError("email is required")
	}
	if len(cmd.Password) < 8 {
		return errors.NewValidationError("password must be at least 8 characters")
	}
	if len(cmd.Password) > 72 {
		return errors.NewValidationError("password exceeds maximum length of 72 characters")
	}
	if len(cmd.Name) == 0 {
		return errors.NewValidationError("name is required")
	}
	return nil
}
