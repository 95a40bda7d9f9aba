package mappers

import (
	"fieldserve/internal/domain/restaurant"
	"fieldserve/internal/infrastructure/persistence/models"
)

type RestaurantMapper interface {
	ToModel(r *restaurant.Restaurant) *models.RestaurantModel
	ToDomain(model *models.RestaurantModel) (*restaurant.Restaurant, error)
}

type RestaurantMapperImpl struct{}

func NewRestaurantMapper() RestaurantMapper {
	return &RestaurantMapperImpl{}
}

func (m *RestaurantMapperImpl) ToModel(r *restaurant.Restaurant) *models.RestaurantModel {
	return &models.RestaurantModel{
		ID:        r.ID(),
		Name:      r.Name(),
		Address:   r.Address(),
		Phone:     r.Phone(),
		CreatedAt: r.CreatedAt().UnixMilli(),
		UpdatedAt: r.UpdatedAt().UnixMilli(),
	}
}

func (m *RestaurantMapperImpl) ToDomain(model *models.RestaurantModel) (*restaurant.Restaurant, error) {
	return restaurant.ReconstructRestaurant(
		model.ID,
		model.Name,
		model.Address,
		model.Phone,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
