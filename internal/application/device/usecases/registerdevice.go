package usecases

import (
	"context"

	"fieldserve/internal/domain/device"
	"fieldserve/internal/domain/restaurant"
	"fieldserve/internal/shared/errors"
	"fieldserve/internal/shared/logger"
)

type RegisterDeviceCommand struct {
	Name         string
	Category     string
	SerialNumber string
	Model        string
	RestaurantID uint
}

type RegisterDeviceResult struct {
	DeviceID     uint   `json:"device_id"`
	SerialNumber string `json:"serial_number"`
	Status       string `json:"status"`
}

type RegisterDeviceUseCase struct {
	deviceRepo     device.Repository
	restaurantRepo restaurant.Repository
	logger         logger.Interface
}

func NewRegisterDeviceUseCase(
	deviceRepo device.Repository,
	restaurantRepo restaurant.Repository,
	logger logger.Interface,
) *RegisterDeviceUseCase {
	return &RegisterDeviceUseCase{
		deviceRepo:     deviceRepo,
		restaurantRepo: restaurantRepo,
		logger:         logger,
	}
}

func (uc *RegisterDeviceUseCase) Execute(ctx context.Context, cmd RegisterDeviceCommand) (*RegisterDeviceResult, error) {
	uc.logger.Infow("executing register device use case", "serial", cmd.SerialNumber, "restaurant_id", cmd.RestaurantID)

	if _, err := uc.restaurantRepo.GetByID(ctx, cmd.RestaurantID); err != nil {
		return nil, errors.NewNotFoundError("restaurant not found")
	}

	dev, err := device.NewDevice(cmd.Name, cmd.Category, cmd.SerialNumber, cmd.Model, cmd.RestaurantID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.deviceRepo.Save(ctx, dev); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("serial number already registered")
		}
		uc.logger.Errorw("failed to save device", "error", err)
		return nil, err
	}

	uc.logger.Infow("device registered", "device_id", dev.ID(), "serial", dev.SerialNumber())

	return &RegisterDeviceResult{
		DeviceID:     dev.ID(),
		SerialNumber: dev.SerialNumber(),
		Status:       dev.Status().String(),
	}, nil
}
