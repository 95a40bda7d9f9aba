// Package scheduler runs the periodic background checks: SLA breach
// detection and maintenance reminders.
package scheduler

import (
	"context"
	"sync"
	"time"

	"fieldserve/internal/domain/shared/events"
	"fieldserve/internal/domain/ticket"
	"fieldserve/internal/shared/biztime"
	"fieldserve/internal/shared/logger"
)

// SLAMonitor scans for open tickets past their SLA due time and
// publishes a violation event for each. A ticket is flagged once per
// process lifetime; resolving and reopening clears the flag.
type SLAMonitor struct {
	ticketRepo ticket.TicketRepository
	dispatcher events.EventPublisher
	logger     logger.Interface
	interval   time.Duration
	stopChan   chan struct{}

	flagged   map[uint]struct{}
	flaggedMu sync.Mutex
}

func NewSLAMonitor(
	ticketRepo ticket.TicketRepository,
	dispatcher events.EventPublisher,
	interval time.Duration,
	log logger.Interface,
) *SLAMonitor {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &SLAMonitor{
		ticketRepo: ticketRepo,
		dispatcher: dispatcher,
		logger:     log.Named("sla-monitor"),
		interval:   interval,
		stopChan:   make(chan struct{}),
		flagged:    make(map[uint]struct{}),
	}
}

func (m *SLAMonitor) Start(ctx context.Context) {
	m.logger.Infow("starting sla monitor", "interval", m.interval)

	m.scan(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.logger.Infow("sla monitor stopped due to context cancellation")
			return
		case <-m.stopChan:
			m.logger.Infow("sla monitor stopped")
			return
		case <-ticker.C:
			m.scan(ctx)
		}
	}
}

func (m *SLAMonitor) Stop() {
	close(m.stopChan)
}

// scan publishes a violation event for every newly overdue ticket and
// returns the number of events published.
func (m *SLAMonitor) scan(ctx context.Context) int {
	overdue, err := m.ticketRepo.GetOverdueTickets(ctx)
	if err != nil {
		m.logger.Errorw("failed to load overdue tickets", "error", err)
		return 0
	}

	m.flaggedMu.Lock()
	defer m.flaggedMu.Unlock()

	current := make(map[uint]struct{}, len(overdue))
	published := 0
	now := biztime.NowUTC()

	for _, t := range overdue {
		current[t.ID()] = struct{}{}
		if _, seen := m.flagged[t.ID()]; seen {
			continue
		}

		event := ticket.NewSLAViolatedEvent(t.ID(), t.AssigneeID(), t.SLADueTime(), now)
		if err := m.dispatcher.Publish(event); err != nil {
			m.logger.Warnw("failed to publish sla violation", "error", err, "ticket_id", t.ID())
			continue
		}

		m.flagged[t.ID()] = struct{}{}
		published++
		m.logger.Infow("sla violation detected",
			"ticket_id", t.ID(),
			"number", t.Number(),
			"due_time", t.SLADueTime(),
		)
	}

	// drop flags for tickets that left the overdue set
	for id := range m.flagged {
		if _, still := current[id]; !still {
			delete(m.flagged, id)
		}
	}

	return published
}
