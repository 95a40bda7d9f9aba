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

type InterventionRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewInterventionRepository(database *gorm.DB) *InterventionRepository {
	return &InterventionRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *InterventionRepository) Save(ctx context.Context, intervention *ticket.Intervention) error {
	model, err := r.mapper.InterventionToModel(intervention)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save intervention: %w", err)
	}

	return intervention.SetID(model.ID)
}

func (r *InterventionRepository) GetByID(ctx context.Context, id uint) (*ticket.Intervention, error) {
	var model models.InterventionModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("intervention not found")
		}
		return nil, fmt.Errorf("failed to find intervention: %w", err)
	}

	return r.mapper.InterventionToDomain(&model)
}

func (r *InterventionRepository) GetByTicketID(ctx context.Context, ticketID uint) (*ticket.Intervention, error) {
	var model models.InterventionModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("ticket_id = ?", ticketID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("intervention not found")
		}
		return nil, fmt.Errorf("failed to find intervention: %w", err)
	}

	return r.mapper.InterventionToDomain(&model)
}
