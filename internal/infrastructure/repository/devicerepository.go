package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fieldserve/internal/domain/device"
	"fieldserve/internal/infrastructure/persistence/mappers"
	"fieldserve/internal/infrastructure/persistence/models"
	"fieldserve/internal/shared/db"
)

type DeviceRepository struct {
	db     *gorm.DB
	mapper mappers.DeviceMapper
}

func NewDeviceRepository(database *gorm.DB) *DeviceRepository {
	return &DeviceRepository{
		db:     database,
		mapper: mappers.NewDeviceMapper(),
	}
}

func (r *DeviceRepository) Save(ctx context.Context, d *device.Device) error {
	model := r.mapper.ToModel(d)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save device: %w", err)
	}

	return d.SetID(model.ID)
}

func (r *DeviceRepository) Update(ctx context.Context, d *device.Device) error {
	model := r.mapper.ToModel(d)

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.
		Model(&models.DeviceModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update device: %w", result.Error)
	}

	return nil
}

func (r *DeviceRepository) Delete(ctx context.Context, deviceID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.DeviceModel{}, deviceID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete device: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("device not found")
	}
	return nil
}

func (r *DeviceRepository) GetByID(ctx context.Context, deviceID uint) (*device.Device, error) {
	var model models.DeviceModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, deviceID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("device not found")
		}
		return nil, fmt.Errorf("failed to find device: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *DeviceRepository) GetBySerialNumber(ctx context.Context, serial string) (*device.Device, error) {
	var model models.DeviceModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("serial_number = ?", serial).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("device not found")
		}
		return nil, fmt.Errorf("failed to find device: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *DeviceRepository) List(ctx context.Context, filter device.Filter) ([]*device.Device, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.DeviceModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.RestaurantID != nil {
		query = query.Where("restaurant_id = ?", *filter.RestaurantID)
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR serial_number LIKE ? OR model LIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count devices: %w", err)
	}

	query = query.Order("name ASC")
	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var deviceModels []models.DeviceModel
	if err := query.Find(&deviceModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list devices: %w", err)
	}

	devices := make([]*device.Device, len(deviceModels))
	for i := range deviceModels {
		d, err := r.mapper.ToDomain(&deviceModels[i])
		if err != nil {
			return nil, 0, err
		}
		devices[i] = d
	}

	return devices, total, nil
}
