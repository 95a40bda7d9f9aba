package device

import "context"

type Repository interface {
	Save(ctx context.Context, device *Device) error
	Update(ctx context.Context, device *Device) error
	Delete(ctx context.Context, deviceID uint) error
	GetByID(ctx context.Context, deviceID uint) (*Device, error)
	GetBySerialNumber(ctx context.Context, serial string) (*Device, error)
	List(ctx context.Context, filter Filter) ([]*Device, int64, error)
}

type Filter struct {
	Status       *DeviceStatus
	RestaurantID *uint
	Category     *string
	Search       string
	Page         int
	PageSize     int
}
