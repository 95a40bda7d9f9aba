package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fieldserve/internal/domain/restaurant"
	"fieldserve/internal/infrastructure/persistence/mappers"
	"fieldserve/internal/infrastructure/persistence/models"
	"fieldserve/internal/shared/db"
)

type RestaurantRepository struct {
	db     *gorm.DB
	mapper mappers.RestaurantMapper
}

func NewRestaurantRepository(database *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{
		db:     database,
		mapper: mappers.NewRestaurantMapper(),
	}
}

func (r *RestaurantRepository) Save(ctx context.Context, rest *restaurant.Restaurant) error {
	model := r.mapper.ToModel(rest)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save restaurant: %w", err)
	}

	return rest.SetID(model.ID)
}

func (r *RestaurantRepository) Update(ctx context.Context, rest *restaurant.Restaurant) error {
	model := r.mapper.ToModel(rest)

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.
		Model(&models.RestaurantModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update restaurant: %w", result.Error)
	}

	return nil
}

func (r *RestaurantRepository) Delete(ctx context.Context, restaurantID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.RestaurantModel{}, restaurantID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete restaurant: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("restaurant not found")
	}
	return nil
}

func (r *RestaurantRepository) GetByID(ctx context.Context, restaurantID uint) (*restaurant.Restaurant, error) {
	var model models.RestaurantModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, restaurantID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("restaurant not found")
		}
		return nil, fmt.Errorf("failed to find restaurant: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *RestaurantRepository) List(ctx context.Context, filter restaurant.Filter) ([]*restaurant.Restaurant, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.RestaurantModel{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR address LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count restaurants: %w", err)
	}

	query = query.Order("name ASC")
	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var restaurantModels []models.RestaurantModel
	if err := query.Find(&restaurantModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list restaurants: %w", err)
	}

	restaurants := make([]*restaurant.Restaurant, len(restaurantModels))
	for i := range restaurantModels {
		rest, err := r.mapper.ToDomain(&restaurantModels[i])
		if err != nil {
			return nil, 0, err
		}
		restaurants[i] = rest
	}

	return restaurants, total, nil
}
