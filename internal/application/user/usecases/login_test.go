package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldserve/internal/domain/user"
	"fieldserve/internal/shared/authorization"
	"fieldserve/internal/shared/errors"
)

func newActiveUser(t *testing.T) *user.User {
	t.Helper()
	u, err := user.NewUser("tech@example.com", "hashed:secret123", "Alex Tech", "", authorization.RoleTechnician, nil)
	require.NoError(t, err)
	require.NoError(t, u.SetID(42))
	return u
}

func TestLoginUseCase_Execute(t *testing.T) {
	account := newActiveUser(t)

	var updated bool
	userRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			assert.Equal(t, "tech@example.com", email)
			return account, nil
		},
		UpdateFunc: func(ctx context.Context, u *user.User) error {
			updated = true
			return nil
		},
	}

	uc := NewLoginUseCase(userRepo, &mockPasswordHasher{}, &mockTokenService{}, noopLogger{})

	result, err := uc.Execute(context.Background(), LoginCommand{
		Email:    " Tech@Example.com ",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "token-abc", result.Token)
	assert.Equal(t, uint(42), result.UserID)
	assert.Equal(t, "technician", result.Role)
	assert.True(t, updated, "login time must be recorded")
	assert.NotNil(t, account.LastLoginAt())
}

func TestLoginUseCase_Execute_WrongPassword(t *testing.T) {
	account := newActiveUser(t)
	userRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) { return account, nil },
	}

	uc := NewLoginUseCase(userRepo, &mockPasswordHasher{}, &mockTokenService{}, noopLogger{})

	_, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "tech@example.com",
		Password: "wrong",
	})

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
}

func TestLoginUseCase_Execute_UnknownEmail(t *testing.T) {
	userRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return nil, errors.NewNotFoundError("user not found")
		},
	}

	uc := NewLoginUseCase(userRepo, &mockPasswordHasher{}, &mockTokenService{}, noopLogger{})

	_, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "nobody@example.com",
		Password: "secret123",
	})

	// Unknown email and wrong password are indistinguishable to the caller.
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
}

func TestLoginUseCase_Execute_DeactivatedAccount(t *testing.T) {
	account := newActiveUser(t)
	account.Deactivate()

	userRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) { return account, nil },
	}

	uc := NewLoginUseCase(userRepo, &mockPasswordHasher{}, &mockTokenService{}, noopLogger{})

	_, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "tech@example.com",
		Password: "secret123",
	})

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
}
