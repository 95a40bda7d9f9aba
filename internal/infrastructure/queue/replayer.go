package queue

import (
	"context"
	"time"

	"fieldserve/internal/shared/goroutine"
	"fieldserve/internal/shared/logger"
)

// Pinger reports database reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Replayer drains the mutation queue in enqueue order once the database
// answers pings again. A replay failure caused by connectivity leaves
// the entry at the head for the next round; any other failure is logged
// and the entry dropped so one poison mutation cannot wedge the queue.
type Replayer struct {
	queue    MutationQueue
	pinger   Pinger
	applier  Applier
	interval time.Duration
	logger   logger.Interface
	cancel   context.CancelFunc
	done     chan struct{}
}

func NewReplayer(q MutationQueue, pinger Pinger, applier Applier, interval time.Duration, logger logger.Interface) *Replayer {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &Replayer{
		queue:    q,
		pinger:   pinger,
		applier:  applier,
		interval: interval,
		logger:   logger.Named("replayer"),
	}
}

func (r *Replayer) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.done = make(chan struct{})

	goroutine.SafeGo(r.logger, "mutation-replayer", func() {
		defer close(r.done)
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.drain(ctx)
			}
		}
	})
}

func (r *Replayer) Stop() {
	if r.cancel != nil {
		r.cancel()
		<-r.done
	}
}

func (r *Replayer) drain(ctx context.Context) {
	length, err := r.queue.Len(ctx)
	if err != nil {
		r.logger.Warnw("failed to read queue length", "error", err)
		return
	}
	if length == 0 {
		return
	}

	if err := r.pinger.Ping(ctx); err != nil {
		return
	}

	r.logger.Infow("database reachable, replaying queued mutations", "pending", length)

	for {
		entry, err := r.queue.Peek(ctx)
		if err != nil {
			r.logger.Warnw("failed to peek mutation queue", "error", err)
			return
		}
		if entry == nil {
			return
		}

		if err := r.applier.Apply(ctx, entry); err != nil {
			if isConnectivityError(err) {
				return
			}
			r.logger.Errorw("dropping unreplayable mutation",
				"entry_id", entry.ID,
				"entity", entry.Entity,
				"operation", entry.Operation,
				"error", err,
			)
		} else {
			r.logger.Infow("replayed mutation",
				"entry_id", entry.ID,
				"entity", entry.Entity,
				"operation", entry.Operation,
			)
		}

		if err := r.queue.Ack(ctx); err != nil {
			r.logger.Warnw("failed to ack mutation", "entry_id", entry.ID, "error", err)
			return
		}
	}
}
