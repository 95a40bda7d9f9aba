package usecases

import (
	"context"
	"strings"
	"time"

	"fieldserve/internal/domain/user"
	"fieldserve/internal/shared/errors"
	"fieldserve/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	UserID    uint      `json:"user_id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenService
	logger   logger.Interface
}

func NewLoginUseCase(userRepo user.Repository, hasher PasswordHasher, tokens TokenService, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if len(cmd.Email) == 0 || len(cmd.Password) == 0 {
		return nil, errors.NewValidationError("email and password are required")
	}

	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	account, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Warnw("login attempt for unknown email", "email", email)
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if !account.IsActive() {
		return nil, errors.NewForbiddenError("account is deactivated")
	}

	if err := uc.hasher.Verify(account.PasswordHash(), cmd.Password); err != nil {
		uc.logger.Warnw("login attempt with wrong password", "user_id", account.ID())
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	token, expiresAt, err := uc.tokens.GenerateToken(account.ID(), account.Email(), account.Role().String())
	if err != nil {
		uc.logger.Errorw("failed to generate token", "error", err, "user_id", account.ID())
		return nil, errors.NewInternalError("failed to generate token")
	}

	account.RecordLogin()
	if err := uc.userRepo.Update(ctx, account); err != nil {
		uc.logger.Warnw("failed to record login time", "error", err, "user_id", account.ID())
	}

	uc.logger.Infow("user logged in", "user_id", account.ID())

	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    account.ID(),
		Name:      account.Name(),
		Role:      account.Role().String(),
	}, nil
}
