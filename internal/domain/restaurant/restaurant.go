package restaurant

import (
	"fmt"
	"time"

	"fieldserve/internal/shared/biztime"
)

// Restaurant is a customer site owning devices. Rarely mutated after
// creation.
type Restaurant struct {
	id        uint
	name      string
	address   string
	phone     string
	createdAt time.Time
	updatedAt time.Time
}

func NewRestaurant(name, address, phone string) (*Restaurant, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("name exceeds maximum length of 200 characters")
	}

	now := biztime.NowUTC()
	return &Restaurant{
		name:      name,
		address:   address,
		phone:     phone,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructRestaurant(
	id uint,
	name string,
	address string,
	phone string,
	createdAt, updatedAt time.Time,
) (*Restaurant, error) {
	if id == 0 {
		return nil, fmt.Errorf("restaurant ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	return &Restaurant{
		id:        id,
		name:      name,
		address:   address,
		phone:     phone,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (r *Restaurant) ID() uint {
	return r.id
}

func (r *Restaurant) Name() string {
	return r.name
}

func (r *Restaurant) Address() string {
	return r.address
}

func (r *Restaurant) Phone() string {
	return r.phone
}

func (r *Restaurant) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Restaurant) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *Restaurant) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("restaurant ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("restaurant ID cannot be zero")
	}
	r.id = id
	return nil
}

func (r *Restaurant) UpdateContact(name, address, phone string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	r.name = name
	r.address = address
	r.phone = phone
	r.updatedAt = biztime.NowUTC()
	return nil
}
