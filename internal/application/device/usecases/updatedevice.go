package usecases

import (
	"context"
	"time"

	"fieldserve/internal/domain/device"
	"fieldserve/internal/domain/shared/events"
	"fieldserve/internal/shared/biztime"
	"fieldserve/internal/shared/errors"
	"fieldserve/internal/shared/logger"
)

type UpdateDeviceCommand struct {
	DeviceID uint
	Name     string
	Category string
	Model    string
	Status   string
}

type DeviceResult struct {
	DeviceID          uint       `json:"device_id"`
	Name              string     `json:"name"`
	Category          string     `json:"category"`
	SerialNumber      string     `json:"serial_number"`
	Model             string     `json:"model"`
	Status            string     `json:"status"`
	RestaurantID      uint       `json:"restaurant_id"`
	LastMaintenanceAt *time.Time `json:"last_maintenance_at"`
	CreatedAt         time.Time  `json:"created_at"`
}

func toDeviceResult(dev *device.Device) *DeviceResult {
	return &DeviceResult{
		DeviceID:          dev.ID(),
		Name:              dev.Name(),
		Category:          dev.Category(),
		SerialNumber:      dev.SerialNumber(),
		Model:             dev.Model(),
		Status:            dev.Status().String(),
		RestaurantID:      dev.RestaurantID(),
		LastMaintenanceAt: dev.LastMaintenanceAt(),
		CreatedAt:         dev.CreatedAt(),
	}
}

type UpdateDeviceUseCase struct {
	deviceRepo device.Repository
	dispatcher events.EventDispatcher
	logger     logger.Interface
}

func NewUpdateDeviceUseCase(deviceRepo device.Repository, dispatcher events.EventDispatcher, logger logger.Interface) *UpdateDeviceUseCase {
	return &UpdateDeviceUseCase{deviceRepo: deviceRepo, dispatcher: dispatcher, logger: logger}
}

func (uc *UpdateDeviceUseCase) Execute(ctx context.Context, cmd UpdateDeviceCommand) (*DeviceResult, error) {
	if cmd.DeviceID == 0 {
		return nil, errors.NewValidationError("device ID is required")
	}

	dev, err := uc.deviceRepo.GetByID(ctx, cmd.DeviceID)
	if err != nil {
		return nil, errors.NewNotFoundError("device not found")
	}

	if err := dev.UpdateDetails(cmd.Name, cmd.Category, cmd.Model); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// Manual status override covers offline decommissioning; maintenance
	// transitions are driven by the ticket lifecycle.
	if len(cmd.Status) > 0 {
		status, err := device.NewDeviceStatus(cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		switch status {
		case device.StatusOffline:
			dev.MarkOffline()
		case device.StatusOperational:
			dev.CompleteMaintenance()
		case device.StatusMaintenance:
			dev.EnterMaintenance()
		}
	}

	if err := uc.deviceRepo.Update(ctx, dev); err != nil {
		uc.logger.Errorw("failed to update device", "error", err, "device_id", cmd.DeviceID)
		return nil, err
	}

	if uc.dispatcher != nil && len(cmd.Status) > 0 {
		if err := uc.dispatcher.Publish(device.NewDeviceStatusChangedEvent(dev, biztime.NowUTC())); err != nil {
			uc.logger.Warnw("failed to publish device status event", "error", err)
		}
	}

	return toDeviceResult(dev), nil
}
