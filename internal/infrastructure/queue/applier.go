package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"fieldserve/internal/infrastructure/persistence/models"
)

// Applier fires a queued mutation against the database.
type Applier interface {
	Apply(ctx context.Context, entry *Entry) error
}

// TicketMutationApplier replays ticket writes exactly as enqueued.
// Last write wins; no comparison against current row state.
type TicketMutationApplier struct {
	db *gorm.DB
}

func NewTicketMutationApplier(db *gorm.DB) *TicketMutationApplier {
	return &TicketMutationApplier{db: db}
}

func (a *TicketMutationApplier) Apply(ctx context.Context, entry *Entry) error {
	switch {
	case entry.Entity == EntityTickets && entry.Operation == OperationUpdate:
		return a.applyTicketUpdate(ctx, entry.Payload)
	case entry.Entity == EntityTicketHistory && entry.Operation == OperationInsert:
		return a.applyHistoryInsert(ctx, entry.Payload)
	default:
		return fmt.Errorf("unknown mutation %s/%s", entry.Entity, entry.Operation)
	}
}

func (a *TicketMutationApplier) applyTicketUpdate(ctx context.Context, payload json.RawMessage) error {
	var model models.TicketModel
	if err := json.Unmarshal(payload, &model); err != nil {
		return fmt.Errorf("failed to decode ticket payload: %w", err)
	}

	result := a.db.WithContext(ctx).
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&model)

	if result.Error != nil {
		return fmt.Errorf("failed to replay ticket update: %w", result.Error)
	}

	return nil
}

func (a *TicketMutationApplier) applyHistoryInsert(ctx context.Context, payload json.RawMessage) error {
	var model models.HistoryModel
	if err := json.Unmarshal(payload, &model); err != nil {
		return fmt.Errorf("failed to decode history payload: %w", err)
	}
	model.ID = 0

	if err := a.db.WithContext(ctx).Create(&model).Error; err != nil {
		return fmt.Errorf("failed to replay history insert: %w", err)
	}

	return nil
}
