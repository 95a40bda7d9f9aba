package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fieldserve/internal/domain/ticket"
	"fieldserve/internal/infrastructure/persistence/mappers"
	"fieldserve/internal/infrastructure/persistence/models"
	"fieldserve/internal/shared/db"
)

// HistoryRepository persists the append-only audit trail. There are no
// update or delete paths on purpose.
type HistoryRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewHistoryRepository(database *gorm.DB) *HistoryRepository {
	return &HistoryRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *HistoryRepository) Save(ctx context.Context, entry *ticket.HistoryEntry) error {
	model := r.mapper.HistoryToModel(entry)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save history entry: %w", err)
	}

	return entry.SetID(model.ID)
}

func (r *HistoryRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.HistoryEntry, error) {
	var historyModels []models.HistoryModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&historyModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load ticket history: %w", err)
	}

	entries := make([]*ticket.HistoryEntry, len(historyModels))
	for i := range historyModels {
		entry, err := r.mapper.HistoryToDomain(&historyModels[i])
		if err != nil {
			return nil, err
		}
		entries[i] = entry
	}

	return entries, nil
}

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewCommentRepository(database *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *CommentRepository) Save(ctx context.Context, comment *ticket.Comment) error {
	model := r.mapper.CommentToModel(comment)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}

	return comment.SetID(model.ID)
}

func (r *CommentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	var commentModels []models.CommentModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&commentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}

	comments := make([]*ticket.Comment, len(commentModels))
	for i := range commentModels {
		c, err := r.mapper.CommentToDomain(&commentModels[i])
		if err != nil {
			return nil, err
		}
		comments[i] = c
	}

	return comments, nil
}
