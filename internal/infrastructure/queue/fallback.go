package queue

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"

	"fieldserve/internal/domain/ticket"
	"fieldserve/internal/infrastructure/persistence/mappers"
	"fieldserve/internal/shared/logger"
)

// isConnectivityError reports whether err indicates the database is
// unreachable rather than a rejected write.
func isConnectivityError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// OfflineTicketRepository wraps the ticket repository so that status
// updates survive a database outage: a failed Update is parked in the
// mutation queue and reported as accepted. Reads and creates are passed
// through untouched; a ticket that was never persisted has nothing to
// replay against.
type OfflineTicketRepository struct {
	ticket.TicketRepository

	queue  MutationQueue
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewOfflineTicketRepository(inner ticket.TicketRepository, q MutationQueue, logger logger.Interface) *OfflineTicketRepository {
	return &OfflineTicketRepository{
		TicketRepository: inner,
		queue:            q,
		mapper:           mappers.NewTicketMapper(),
		logger:           logger,
	}
}

func (r *OfflineTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	err := r.TicketRepository.Update(ctx, t)
	if !isConnectivityError(err) {
		return err
	}

	model, mapErr := r.mapper.ToModel(t)
	if mapErr != nil {
		return err
	}

	entry, entryErr := NewEntry(EntityTickets, OperationUpdate, model)
	if entryErr != nil {
		return err
	}

	if qErr := r.queue.Enqueue(ctx, entry); qErr != nil {
		r.logger.Errorw("failed to park ticket update", "ticket_id", t.ID(), "error", qErr)
		return err
	}

	r.logger.Warnw("database unreachable, ticket update queued for replay",
		"ticket_id", t.ID(),
		"entry_id", entry.ID,
	)
	return nil
}

// OfflineHistoryRepository parks history inserts during an outage the
// same way. GetByTicketID still fails when the database is down.
type OfflineHistoryRepository struct {
	ticket.HistoryRepository

	queue  MutationQueue
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewOfflineHistoryRepository(inner ticket.HistoryRepository, q MutationQueue, logger logger.Interface) *OfflineHistoryRepository {
	return &OfflineHistoryRepository{
		HistoryRepository: inner,
		queue:             q,
		mapper:            mappers.NewTicketMapper(),
		logger:            logger,
	}
}

func (r *OfflineHistoryRepository) Save(ctx context.Context, entry *ticket.HistoryEntry) error {
	err := r.HistoryRepository.Save(ctx, entry)
	if !isConnectivityError(err) {
		return err
	}

	model := r.mapper.HistoryToModel(entry)

	queued, entryErr := NewEntry(EntityTicketHistory, OperationInsert, model)
	if entryErr != nil {
		return err
	}

	if qErr := r.queue.Enqueue(ctx, queued); qErr != nil {
		r.logger.Errorw("failed to park history insert", "ticket_id", entry.TicketID(), "error", qErr)
		return err
	}

	r.logger.Warnw("database unreachable, history insert queued for replay",
		"ticket_id", entry.TicketID(),
		"entry_id", queued.ID,
	)
	return nil
}
