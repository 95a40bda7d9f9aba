package usecases

import (
	"context"
	"time"
)

// PasswordHasher hashes and verifies user passwords. The bcrypt
// implementation lives in infrastructure/auth.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) error
}

// TokenService issues and validates access tokens.
type TokenService interface {
	GenerateToken(userID uint, email, role string) (string, time.Time, error)
	ValidateToken(token string) (*TokenClaims, error)
}

type TokenClaims struct {
	UserID uint
	Email  string
	Role   string
}

type RegisterUserExecutor interface {
	Execute(ctx context.Context, cmd RegisterUserCommand) (*RegisterUserResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type GetUserExecutor interface {
	Execute(ctx context.Context, query GetUserQuery) (*UserResult, error)
}

type ListUsersExecutor interface {
	Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error)
}

type ChangeRoleExecutor interface {
	Execute(ctx context.Context, cmd ChangeRoleCommand) (*UserResult, error)
}

type DeactivateUserExecutor interface {
	Execute(ctx context.Context, cmd DeactivateUserCommand) error
}
