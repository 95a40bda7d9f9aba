package mappers

import (
	"fieldserve/internal/domain/device"
	"fieldserve/internal/infrastructure/persistence/models"
)

type DeviceMapper interface {
	ToModel(d *device.Device) *models.DeviceModel
	ToDomain(model *models.DeviceModel) (*device.Device, error)
}

type DeviceMapperImpl struct{}

func NewDeviceMapper() DeviceMapper {
	return &DeviceMapperImpl{}
}

func (m *DeviceMapperImpl) ToModel(d *device.Device) *models.DeviceModel {
	return &models.DeviceModel{
		ID:                d.ID(),
		Name:              d.Name(),
		Category:          d.Category(),
		SerialNumber:      d.SerialNumber(),
		Model:             d.Model(),
		Status:            d.Status().String(),
		RestaurantID:      d.RestaurantID(),
		LastMaintenanceAt: timePtrToMillis(d.LastMaintenanceAt()),
		CreatedAt:         d.CreatedAt().UnixMilli(),
		UpdatedAt:         d.UpdatedAt().UnixMilli(),
	}
}

func (m *DeviceMapperImpl) ToDomain(model *models.DeviceModel) (*device.Device, error) {
	return device.ReconstructDevice(
		model.ID,
		model.Name,
		model.Category,
		model.SerialNumber,
		model.Model,
		device.DeviceStatus(model.Status),
		model.RestaurantID,
		millisPtrToTime(model.LastMaintenanceAt),
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
