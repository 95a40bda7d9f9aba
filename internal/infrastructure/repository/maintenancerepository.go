package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"fieldserve/internal/domain/maintenance"
	"fieldserve/internal/infrastructure/persistence/mappers"
	"fieldserve/internal/infrastructure/persistence/models"
	"fieldserve/internal/shared/db"
)

type MaintenanceRepository struct {
	db     *gorm.DB
	mapper mappers.MaintenanceMapper
}

func NewMaintenanceRepository(database *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{
		db:     database,
		mapper: mappers.NewMaintenanceMapper(),
	}
}

func (r *MaintenanceRepository) Save(ctx context.Context, record *maintenance.Record) error {
	model := r.mapper.ToModel(record)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save maintenance record: %w", err)
	}

	return record.SetID(model.ID)
}

func (r *MaintenanceRepository) Update(ctx context.Context, record *maintenance.Record) error {
	model := r.mapper.ToModel(record)

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.
		Model(&models.MaintenanceRecordModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update maintenance record: %w", result.Error)
	}

	return nil
}

func (r *MaintenanceRepository) Delete(ctx context.Context, recordID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.MaintenanceRecordModel{}, recordID)

	if result.Error != nil {
		return fmt.Errorf("failed to delete maintenance record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("maintenance record not found")
	}

	return nil
}

func (r *MaintenanceRepository) GetByID(ctx context.Context, recordID uint) (*maintenance.Record, error) {
	var model models.MaintenanceRecordModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, recordID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("maintenance record not found")
		}
		return nil, fmt.Errorf("failed to find maintenance record: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *MaintenanceRepository) List(ctx context.Context, filter maintenance.Filter) ([]*maintenance.Record, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.MaintenanceRecordModel{})

	if filter.DeviceID != nil {
		query = query.Where("device_id = ?", *filter.DeviceID)
	}
	if filter.TechnicianID != nil {
		query = query.Where("technician_id = ?", *filter.TechnicianID)
	}
	if filter.Completed != nil {
		if *filter.Completed {
			query = query.Where("completed_at IS NOT NULL")
		} else {
			query = query.Where("completed_at IS NULL")
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count maintenance records: %w", err)
	}

	query = query.Order("due_date ASC")
	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var recordModels []models.MaintenanceRecordModel
	if err := query.Find(&recordModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list maintenance records: %w", err)
	}

	records := make([]*maintenance.Record, len(recordModels))
	for i := range recordModels {
		rec, err := r.mapper.ToDomain(&recordModels[i])
		if err != nil {
			return nil, 0, err
		}
		records[i] = rec
	}

	return records, total, nil
}

func (r *MaintenanceRepository) ListDueBefore(ctx context.Context, cutoff time.Time) ([]*maintenance.Record, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var recordModels []models.MaintenanceRecordModel
	if err := tx.
		Where("completed_at IS NULL AND due_date <= ?", cutoff.UnixMilli()).
		Order("due_date ASC").
		Find(&recordModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list due maintenance records: %w", err)
	}

	records := make([]*maintenance.Record, len(recordModels))
	for i := range recordModels {
		rec, err := r.mapper.ToDomain(&recordModels[i])
		if err != nil {
			return nil, err
		}
		records[i] = rec
	}

	return records, nil
}
