package usecases

import (
	"context"

	"fieldserve/internal/domain/device"
	"fieldserve/internal/shared/errors"
	"fieldserve/internal/shared/logger"
	"fieldserve/internal/shared/utils"
)

type ListDevicesQuery struct {
	Status       string
	RestaurantID *uint
	Category     string
	Search       string
	Page         int
	PageSize     int
}

type ListDevicesResult struct {
	Devices  []DeviceResult `json:"devices"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

type ListDevicesUseCase struct {
	deviceRepo device.Repository
	logger     logger.Interface
}

func NewListDevicesUseCase(deviceRepo device.Repository, logger logger.Interface) *ListDevicesUseCase {
	return &ListDevicesUseCase{deviceRepo: deviceRepo, logger: logger}
}

func (uc *ListDevicesUseCase) Execute(ctx context.Context, query ListDevicesQuery) (*ListDevicesResult, error) {
	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	filter := device.Filter{
		RestaurantID: query.RestaurantID,
		Search:       query.Search,
		Page:         pagination.Page,
		PageSize:     pagination.PageSize,
	}
	if len(query.Status) > 0 {
		status, err := device.NewDeviceStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if len(query.Category) > 0 {
		filter.Category = &query.Category
	}

	devices, total, err := uc.deviceRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list devices", "error", err)
		return nil, err
	}

	results := make([]DeviceResult, 0, len(devices))
	for _, dev := range devices {
		results = append(results, *toDeviceResult(dev))
	}

	return &ListDevicesResult{
		Devices:  results,
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}
