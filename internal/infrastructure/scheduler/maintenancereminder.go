package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fieldserve/internal/domain/maintenance"
	"fieldserve/internal/domain/notification"
	"fieldserve/internal/domain/user"
	"fieldserve/internal/shared/authorization"
	"fieldserve/internal/shared/biztime"
	"fieldserve/internal/shared/logger"
)

// MaintenanceReminder notifies technicians about preventive maintenance
// coming due within the lead window. An unassigned record goes to every
// active field technician. Each record is reminded once per process
// lifetime.
type MaintenanceReminder struct {
	maintenanceRepo  maintenance.Repository
	notificationRepo notification.Repository
	userRepo         user.Repository
	logger           logger.Interface
	interval         time.Duration
	leadWindow       time.Duration
	stopChan         chan struct{}

	reminded   map[uint]struct{}
	remindedMu sync.Mutex
}

func NewMaintenanceReminder(
	maintenanceRepo maintenance.Repository,
	notificationRepo notification.Repository,
	userRepo user.Repository,
	interval time.Duration,
	leadWindow time.Duration,
	log logger.Interface,
) *MaintenanceReminder {
	if interval <= 0 {
		interval = 6 * time.Hour
	}
	if leadWindow <= 0 {
		leadWindow = 7 * 24 * time.Hour
	}
	return &MaintenanceReminder{
		maintenanceRepo:  maintenanceRepo,
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		logger:           log.Named("maintenance-reminder"),
		interval:         interval,
		leadWindow:       leadWindow,
		stopChan:         make(chan struct{}),
		reminded:         make(map[uint]struct{}),
	}
}

func (r *MaintenanceReminder) Start(ctx context.Context) {
	r.logger.Infow("starting maintenance reminder", "interval", r.interval, "lead_window", r.leadWindow)

	r.scan(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Infow("maintenance reminder stopped due to context cancellation")
			return
		case <-r.stopChan:
			r.logger.Infow("maintenance reminder stopped")
			return
		case <-ticker.C:
			r.scan(ctx)
		}
	}
}

func (r *MaintenanceReminder) Stop() {
	close(r.stopChan)
}

func (r *MaintenanceReminder) scan(ctx context.Context) int {
	cutoff := biztime.NowUTC().Add(r.leadWindow)
	due, err := r.maintenanceRepo.ListDueBefore(ctx, cutoff)
	if err != nil {
		r.logger.Errorw("failed to load due maintenance records", "error", err)
		return 0
	}

	r.remindedMu.Lock()
	defer r.remindedMu.Unlock()

	notified := 0
	for _, record := range due {
		if _, seen := r.reminded[record.ID()]; seen {
			continue
		}

		recipients, err := r.recipients(ctx, record)
		if err != nil {
			r.logger.Warnw("failed to resolve reminder recipients", "error", err, "record_id", record.ID())
			continue
		}

		title := fmt.Sprintf("Maintenance due for device #%d", record.DeviceID())
		body := fmt.Sprintf("%s (due %s)", record.Description(), record.DueDate().Format("2006-01-02"))

		delivered := 0
		for _, userID := range recipients {
			n, err := notification.NewNotification(userID, nil, notification.TypeMaintenanceDue, title, body)
			if err != nil {
				continue
			}
			if err := r.notificationRepo.Save(ctx, n); err != nil {
				r.logger.Warnw("failed to save maintenance reminder", "error", err, "user_id", userID)
				continue
			}
			delivered++
		}

		if delivered > 0 {
			r.reminded[record.ID()] = struct{}{}
			notified++
			r.logger.Infow("maintenance reminder sent",
				"record_id", record.ID(),
				"device_id", record.DeviceID(),
				"recipients", delivered,
			)
		}
	}

	return notified
}

func (r *MaintenanceReminder) recipients(ctx context.Context, record *maintenance.Record) ([]uint, error) {
	if techID := record.TechnicianID(); techID != nil {
		return []uint{*techID}, nil
	}

	technicians, err := r.userRepo.ListByRole(ctx, authorization.RoleTechnician)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(technicians))
	for _, tech := range technicians {
		ids = append(ids, tech.ID())
	}
	return ids, nil
}
