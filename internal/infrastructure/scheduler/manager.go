package scheduler

import (
	"context"

	"fieldserve/internal/shared/goroutine"
	"fieldserve/internal/shared/logger"
)

// Job is a long-running background loop.
type Job interface {
	Start(ctx context.Context)
	Stop()
}

// Manager owns the background jobs and their shared lifecycle.
type Manager struct {
	jobs   []Job
	logger logger.Interface
	cancel context.CancelFunc
}

func NewManager(log logger.Interface, jobs ...Job) *Manager {
	return &Manager{
		jobs:   jobs,
		logger: log.Named("scheduler"),
	}
}

func (m *Manager) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	for _, job := range m.jobs {
		job := job
		goroutine.SafeGo(m.logger, "scheduler-job", func() {
			job.Start(ctx)
		})
	}

	m.logger.Infow("background jobs started", "count", len(m.jobs))
}

func (m *Manager) Stop() {
	if m.cancel != nil {
		m.cancel()
	}
	for _, job := range m.jobs {
		job.Stop()
	}
	m.logger.Infow("background jobs stopped")
}
