package usecases

import (
	"context"
	"time"

	"fieldserve/internal/domain/device"
	"fieldserve/internal/domain/maintenance"
	"fieldserve/internal/shared/biztime"
	"fieldserve/internal/shared/errors"
	"fieldserve/internal/shared/logger"
	"fieldserve/internal/shared/utils"
)

type ScheduleMaintenanceCommand struct {
	DeviceID     uint
	TechnicianID *uint
	Description  string
	DueDate      time.Time
}

type CompleteMaintenanceCommand struct {
	RecordID    uint
	CompletedBy uint
	Notes       string
}

type MaintenanceResult struct {
	RecordID     uint       `json:"record_id"`
	DeviceID     uint       `json:"device_id"`
	TechnicianID *uint      `json:"technician_id"`
	Description  string     `json:"description"`
	DueDate      time.Time  `json:"due_date"`
	CompletedAt  *time.Time `json:"completed_at"`
	Notes        string     `json:"notes,omitempty"`
	Overdue      bool       `json:"overdue"`
}

func toMaintenanceResult(r *maintenance.Record) *MaintenanceResult {
	return &MaintenanceResult{
		RecordID:     r.ID(),
		DeviceID:     r.DeviceID(),
		TechnicianID: r.TechnicianID(),
		Description:  r.Description(),
		DueDate:      r.DueDate(),
		CompletedAt:  r.CompletedAt(),
		Notes:        r.Notes(),
		Overdue:      r.IsOverdue(biztime.NowUTC()),
	}
}

type ListMaintenanceQuery struct {
	DeviceID     *uint
	TechnicianID *uint
	Completed    *bool
	Page         int
	PageSize     int
}

type ListMaintenanceResult struct {
	Records  []MaintenanceResult `json:"records"`
	Total    int64               `json:"total"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"page_size"`
}

// MaintenanceService schedules and completes preventive maintenance
// visits. Completing a visit also refreshes the device's maintenance
// stamp.
type MaintenanceService struct {
	repo       maintenance.Repository
	deviceRepo device.Repository
	logger     logger.Interface
}

func NewMaintenanceService(repo maintenance.Repository, deviceRepo device.Repository, logger logger.Interface) *MaintenanceService {
	return &MaintenanceService{
		repo:       repo,
		deviceRepo: deviceRepo,
		logger:     logger,
	}
}

func (s *MaintenanceService) Schedule(ctx context.Context, cmd ScheduleMaintenanceCommand) (*MaintenanceResult, error) {
	s.logger.Infow("scheduling maintenance", "device_id", cmd.DeviceID, "due", cmd.DueDate)

	if _, err := s.deviceRepo.GetByID(ctx, cmd.DeviceID); err != nil {
		return nil, errors.NewNotFoundError("device not found")
	}

	record, err := maintenance.NewRecord(cmd.DeviceID, cmd.TechnicianID, cmd.Description, cmd.DueDate)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Save(ctx, record); err != nil {
		s.logger.Errorw("failed to save maintenance record", "error", err)
		return nil, err
	}

	return toMaintenanceResult(record), nil
}

func (s *MaintenanceService) Complete(ctx context.Context, cmd CompleteMaintenanceCommand) (*MaintenanceResult, error) {
	if cmd.RecordID == 0 {
		return nil, errors.NewValidationError("record ID is required")
	}

	record, err := s.repo.GetByID(ctx, cmd.RecordID)
	if err != nil {
		return nil, errors.NewNotFoundError("maintenance record not found")
	}

	// Unassigned records are claimed by whoever completes them.
	if record.TechnicianID() == nil {
		if err := record.Assign(cmd.CompletedBy); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := record.Complete(cmd.Notes); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := s.repo.Update(ctx, record); err != nil {
		s.logger.Errorw("failed to update maintenance record", "error", err, "record_id", cmd.RecordID)
		return nil, err
	}

	if dev, err := s.deviceRepo.GetByID(ctx, record.DeviceID()); err == nil {
		dev.CompleteMaintenance()
		if err := s.deviceRepo.Update(ctx, dev); err != nil {
			s.logger.Warnw("failed to stamp device maintenance", "error", err, "device_id", dev.ID())
		}
	}

	s.logger.Infow("maintenance completed", "record_id", record.ID(), "device_id", record.DeviceID())
	return toMaintenanceResult(record), nil
}

func (s *MaintenanceService) List(ctx context.Context, query ListMaintenanceQuery) (*ListMaintenanceResult, error) {
	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	records, total, err := s.repo.List(ctx, maintenance.Filter{
		DeviceID:     query.DeviceID,
		TechnicianID: query.TechnicianID,
		Completed:    query.Completed,
		Page:         pagination.Page,
		PageSize:     pagination.PageSize,
	})
	if err != nil {
		s.logger.Errorw("failed to list maintenance records", "error", err)
		return nil, err
	}

	results := make([]MaintenanceResult, 0, len(records))
	for _, r := range records {
		results = append(results, *toMaintenanceResult(r))
	}

	return &ListMaintenanceResult{
		Records:  results,
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}

// ListDue returns open visits due within the horizon. Used by the
// scheduler to raise maintenance-due notifications.
func (s *MaintenanceService) ListDue(ctx context.Context, horizon time.Duration) ([]MaintenanceResult, error) {
	records, err := s.repo.ListDueBefore(ctx, biztime.NowUTC().Add(horizon))
	if err != nil {
		return nil, err
	}

	results := make([]MaintenanceResult, 0, len(records))
	for _, r := range records {
		if r.IsCompleted() {
			continue
		}
		results = append(results, *toMaintenanceResult(r))
	}
	return results, nil
}
