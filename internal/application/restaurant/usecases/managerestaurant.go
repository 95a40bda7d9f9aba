package usecases

import (
	"context"
	"time"

	"fieldserve/internal/domain/restaurant"
	"fieldserve/internal/shared/errors"
	"fieldserve/internal/shared/logger"
	"fieldserve/internal/shared/utils"
)

type CreateRestaurantCommand struct {
	Name    string
	Address string
	Phone   string
}

type UpdateRestaurantCommand struct {
	RestaurantID uint
	Name         string
	Address      string
	Phone        string
}

type RestaurantResult struct {
	RestaurantID uint      `json:"restaurant_id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	CreatedAt    time.Time `json:"created_at"`
}

func toRestaurantResult(r *restaurant.Restaurant) *RestaurantResult {
	return &RestaurantResult{
		RestaurantID: r.ID(),
		Name:         r.Name(),
		Address:      r.Address(),
		Phone:        r.Phone(),
		CreatedAt:    r.CreatedAt(),
	}
}

type ListRestaurantsQuery struct {
	Search   string
	Page     int
	PageSize int
}

type ListRestaurantsResult struct {
	Restaurants []RestaurantResult `json:"restaurants"`
	Total       int64              `json:"total"`
	Page        int                `json:"page"`
	PageSize    int                `json:"page_size"`
}

// RestaurantService bundles the CRUD operations for restaurant sites.
// The surface is small enough that separate use case types would only
// add ceremony.
type RestaurantService struct {
	repo   restaurant.Repository
	logger logger.Interface
}

func NewRestaurantService(repo restaurant.Repository, logger logger.Interface) *RestaurantService {
	return &RestaurantService{repo: repo, logger: logger}
}

func (s *RestaurantService) Create(ctx context.Context, cmd CreateRestaurantCommand) (*RestaurantResult, error) {
	r, err := restaurant.NewRestaurant(cmd.Name, cmd.Address, cmd.Phone)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Save(ctx, r); err != nil {
		s.logger.Errorw("failed to save restaurant", "error", err)
		return nil, err
	}

	s.logger.Infow("restaurant created", "restaurant_id", r.ID())
	return toRestaurantResult(r), nil
}

func (s *RestaurantService) Update(ctx context.Context, cmd UpdateRestaurantCommand) (*RestaurantResult, error) {
	if cmd.RestaurantID == 0 {
		return nil, errors.NewValidationError("restaurant ID is required")
	}

	r, err := s.repo.GetByID(ctx, cmd.RestaurantID)
	if err != nil {
		return nil, errors.NewNotFoundError("restaurant not found")
	}

	if err := r.UpdateContact(cmd.Name, cmd.Address, cmd.Phone); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Update(ctx, r); err != nil {
		s.logger.Errorw("failed to update restaurant", "error", err, "restaurant_id", cmd.RestaurantID)
		return nil, err
	}

	return toRestaurantResult(r), nil
}

func (s *RestaurantService) Get(ctx context.Context, restaurantID uint) (*RestaurantResult, error) {
	if restaurantID == 0 {
		return nil, errors.NewValidationError("restaurant ID is required")
	}

	r, err := s.repo.GetByID(ctx, restaurantID)
	if err != nil {
		return nil, errors.NewNotFoundError("restaurant not found")
	}

	return toRestaurantResult(r), nil
}

func (s *RestaurantService) List(ctx context.Context, query ListRestaurantsQuery) (*ListRestaurantsResult, error) {
	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	restaurants, total, err := s.repo.List(ctx, restaurant.Filter{
		Search:   query.Search,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
	if err != nil {
		s.logger.Errorw("failed to list restaurants", "error", err)
		return nil, err
	}

	results := make([]RestaurantResult, 0, len(restaurants))
	for _, r := range restaurants {
		results = append(results, *toRestaurantResult(r))
	}

	return &ListRestaurantsResult{
		Restaurants: results,
		Total:       total,
		Page:        pagination.Page,
		PageSize:    pagination.PageSize,
	}, nil
}

func (s *RestaurantService) Delete(ctx context.Context, restaurantID uint) error {
	if restaurantID == 0 {
		return errors.NewValidationError("restaurant ID is required")
	}
	if err := s.repo.Delete(ctx, restaurantID); err != nil {
		s.logger.Errorw("failed to delete restaurant", "error", err, "restaurant_id", restaurantID)
		return err
	}
	s.logger.Infow("restaurant deleted", "restaurant_id", restaurantID)
	return nil
}
