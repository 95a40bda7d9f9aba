package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldserve/internal/domain/ticket"
	"fieldserve/internal/shared/authorization"
	apperrors "fieldserve/internal/shared/errors"
)

func TestVerifyWritePathUseCase_Execute(t *testing.T) {
	var savedID uint
	var deletedID uint
	repo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			savedID = 999
			return tk.SetID(savedID)
		},
		DeleteFunc: func(ctx context.Context, ticketID uint) error {
			deletedID = ticketID
			return nil
		},
	}

	uc := NewVerifyWritePathUseCase(repo, ticket.NewDefaultNumberGenerator(), noopLogger{})
	result, err := uc.Execute(context.Background(), VerifyWritePathCommand{
		RequestedBy:  1,
		Role:         authorization.RoleAdmin,
		DeviceID:     3,
		RestaurantID: 7,
	})

	require.NoError(t, err)
	assert.True(t, result.Deleted)
	assert.Equal(t, savedID, result.TicketID)
	assert.Equal(t, savedID, deletedID)
	assert.NotEmpty(t, result.Number)
}

func TestVerifyWritePathUseCase_NonAdminForbidden(t *testing.T) {
	uc := NewVerifyWritePathUseCase(&mockTicketRepository{}, ticket.NewDefaultNumberGenerator(), noopLogger{})

	_, err := uc.Execute(context.Background(), VerifyWritePathCommand{
		RequestedBy:  42,
		Role:         authorization.RoleTechnician,
		DeviceID:     3,
		RestaurantID: 7,
	})

	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeForbidden, appErr.Type)
}

func TestVerifyWritePathUseCase_DeleteFailureReportsLeftoverProbe(t *testing.T) {
	repo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			return tk.SetID(1000)
		},
		DeleteFunc: func(ctx context.Context, ticketID uint) error {
			return errors.New("connection lost")
		},
	}

	uc := NewVerifyWritePathUseCase(repo, ticket.NewDefaultNumberGenerator(), noopLogger{})
	result, err := uc.Execute(context.Background(), VerifyWritePathCommand{
		RequestedBy:  1,
		Role:         authorization.RoleAdmin,
		DeviceID:     3,
		RestaurantID: 7,
	})

	require.Error(t, err)
	require.NotNil(t, result)
	assert.False(t, result.Deleted)
	assert.Equal(t, uint(1000), result.TicketID)
}
