package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldserve/internal/domain/user"
	"fieldserve/internal/shared/errors"
)

func TestRegisterUserUseCase_Execute(t *testing.T) {
	var saved *user.User
	userRepo := &mockUserRepository{
		SaveFunc: func(ctx context.Context, u *user.User) error {
			saved = u
			return u.SetID(42)
		},
	}

	uc := NewRegisterUserUseCase(userRepo, &mockPasswordHasher{}, noopLogger{})

	result, err := uc.Execute(context.Background(), RegisterUserCommand{
		Email:    "Tech@Example.com",
		Password: "secret123",
		Name:     "Alex Tech",
		Role:     "technician",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(42), result.UserID)
	assert.Equal(t, "tech@example.com", result.Email, "email is lowercased")
	assert.Equal(t, "technician", result.Role)

	require.NotNil(t, saved)
	assert.Equal(t, "hashed:secret123", saved.PasswordHash())
	assert.True(t, saved.IsActive())
}

func TestRegisterUserUseCase_Execute_DuplicateEmail(t *testing.T) {
	userRepo := &mockUserRepository{
		ExistsByEmailFunc: func(ctx context.Context, email string) (bool, error) { return true, nil },
	}

	uc := NewRegisterUserUseCase(userRepo, &mockPasswordHasher{}, noopLogger{})

	_, err := uc.Execute(context.Background(), RegisterUserCommand{
		Email:    "tech@example.com",
		Password: "secret123",
		Name:     "Alex Tech",
	})

	assert.True(t, errors.IsConflictError(err))
}

func TestRegisterUserUseCase_Execute_UnknownRoleDefaultsToStaff(t *testing.T) {
	restaurantID := uint(7)
	userRepo := &mockUserRepository{
		SaveFunc: func(ctx context.Context, u *user.User) error { return u.SetID(42) },
	}

	uc := NewRegisterUserUseCase(userRepo, &mockPasswordHasher{}, noopLogger{})

	result, err := uc.Execute(context.Background(), RegisterUserCommand{
		Email:        "staff@example.com",
		Password:     "secret123",
		Name:         "Site Staff",
		Role:         "superuser",
		RestaurantID: &restaurantID,
	})

	require.NoError(t, err)
	assert.Equal(t, "restaurant_staff", result.Role)
}

func TestRegisterUserUseCase_Execute_ShortPassword(t *testing.T) {
	uc := NewRegisterUserUseCase(&mockUserRepository{}, &mockPasswordHasher{}, noopLogger{})

	_, err := uc.Execute(context.Background(), RegisterUserCommand{
		Email:    "tech@example.com",
		Password: "short",
		Name:     "Alex Tech",
	})

	assert.True(t, errors.IsValidationError(err))
}
