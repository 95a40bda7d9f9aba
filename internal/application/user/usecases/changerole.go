package usecases

import (
	"context"

	"fieldserve/internal/domain/user"
	"fieldserve/internal/shared/authorization"
	"fieldserve/internal/shared/errors"
	"fieldserve/internal/shared/logger"
)

type ChangeRoleCommand struct {
	UserID    uint
	NewRole   string
	ChangedBy uint
}

type ChangeRoleUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewChangeRoleUseCase(userRepo user.Repository, logger logger.Interface) *ChangeRoleUseCase {
	return &ChangeRoleUseCase{userRepo: userRepo, logger: logger}
}

func (uc *ChangeRoleUseCase) Execute(ctx context.Context, cmd ChangeRoleCommand) (*UserResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	role := authorization.UserRole(cmd.NewRole)
	if !role.IsValid() {
		return nil, errors.NewValidationError("invalid role: " + cmd.NewRole)
	}
	if cmd.UserID == cmd.ChangedBy {
		return nil, errors.NewValidationError("cannot change own role")
	}

	account, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	if err := account.ChangeRole(role); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, account); err != nil {
		uc.logger.Errorw("failed to update user role", "error", err, "user_id", cmd.UserID)
		return nil, err
	}

	uc.logger.Infow("user role changed", "user_id", cmd.UserID, "new_role", role.String(), "changed_by", cmd.ChangedBy)

	return toUserResult(account), nil
}
