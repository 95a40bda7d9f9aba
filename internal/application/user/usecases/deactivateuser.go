package usecases

import (
	"context"

	"fieldserve/internal/domain/user"
	"fieldserve/internal/shared/errors"
	"fieldserve/internal/shared/logger"
)

type DeactivateUserCommand struct {
	UserID        uint
	DeactivatedBy uint
}

type DeactivateUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewDeactivateUserUseCase(userRepo user.Repository, logger logger.Interface) *DeactivateUserUseCase {
	return &DeactivateUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *DeactivateUserUseCase) Execute(ctx context.Context, cmd DeactivateUserCommand) error {
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if cmd.UserID == cmd.DeactivatedBy {
		return errors.NewValidationError("cannot deactivate own account")
	}

	account, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return errors.NewNotFoundError("user not found")
	}

	account.Deactivate()
	if err := uc.userRepo.Update(ctx, account); err != nil {
		uc.logger.Errorw("failed to deactivate user", "error", err, "user_id", cmd.UserID)
		return err
	}

	uc.logger.Infow("user deactivated", "user_id", cmd.UserID, "deactivated_by", cmd.DeactivatedBy)
	return nil
}
