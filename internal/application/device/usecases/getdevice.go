package usecases

import (
	"context"

	"fieldserve/internal/domain/device"
	"fieldserve/internal/shared/errors"
	"fieldserve/internal/shared/logger"
)

type GetDeviceQuery struct {
	DeviceID uint
}

type GetDeviceUseCase struct {
	deviceRepo device.Repository
	logger     logger.Interface
}

func NewGetDeviceUseCase(deviceRepo device.Repository, logger logger.Interface) *GetDeviceUseCase {
	return &GetDeviceUseCase{deviceRepo: deviceRepo, logger: logger}
}

func (uc *GetDeviceUseCase) Execute(ctx context.Context, query GetDeviceQuery) (*DeviceResult, error) {
	if query.DeviceID == 0 {
		return nil, errors.NewValidationError("device ID is required")
	}

	dev, err := uc.deviceRepo.GetByID(ctx, query.DeviceID)
	if err != nil {
		return nil, errors.NewNotFoundError("device not found")
	}

	return toDeviceResult(dev), nil
}
