package mappers

import (
	"fieldserve/internal/domain/maintenance"
	"fieldserve/internal/infrastructure/persistence/models"
)

type MaintenanceMapper interface {
	ToModel(r *maintenance.Record) *models.MaintenanceRecordModel
	ToDomain(model *models.MaintenanceRecordModel) (*maintenance.Record, error)
}

type MaintenanceMapperImpl struct{}

func NewMaintenanceMapper() MaintenanceMapper {
	return &MaintenanceMapperImpl{}
}

func (m *MaintenanceMapperImpl) ToModel(r *maintenance.Record) *models.MaintenanceRecordModel {
	return &models.MaintenanceRecordModel{
		ID:           r.ID(),
		DeviceID:     r.DeviceID(),
		TechnicianID: r.TechnicianID(),
		Description:  r.Description(),
		DueDate:      r.DueDate().UnixMilli(),
		CompletedAt:  timePtrToMillis(r.CompletedAt()),
		Notes:        r.Notes(),
		CreatedAt:    r.CreatedAt().UnixMilli(),
		UpdatedAt:    r.UpdatedAt().UnixMilli(),
	}
}

func (m *MaintenanceMapperImpl) ToDomain(model *models.MaintenanceRecordModel) (*maintenance.Record, error) {
	return maintenance.ReconstructRecord(
		model.ID,
		model.DeviceID,
		model.TechnicianID,
		model.Description,
		millisToTime(model.DueDate),
		millisPtrToTime(model.CompletedAt),
		model.Notes,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
