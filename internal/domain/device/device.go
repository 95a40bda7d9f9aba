package device

import (
	"fmt"
	"time"

	"fieldserve/internal/shared/biztime"
)

type DeviceStatus string

const (
	StatusOperational DeviceStatus = "operational"
	StatusMaintenance DeviceStatus = "maintenance"
	StatusOffline     DeviceStatus = "offline"
)

var validDeviceStatuses = map[DeviceStatus]bool{
	StatusOperational: true,
	StatusMaintenance: true,
	StatusOffline:     true,
}

func (s DeviceStatus) String() string {
	return string(s)
}

func (s DeviceStatus) IsValid() bool {
	return validDeviceStatuses[s]
}

func NewDeviceStatus(s string) (DeviceStatus, error) {
	ds := DeviceStatus(s)
	if !ds.IsValid() {
		return "", fmt.Errorf("invalid device status: %s", s)
	}
	return ds, nil
}

// Device is a piece of restaurant equipment tracked for service. Opening a
// ticket against a device moves it to maintenance; completing maintenance
// restores operational and stamps the last-maintenance time.
type Device struct {
	id                uint
	name              string
	category          string
	serialNumber      string
	model             string
	status            DeviceStatus
	restaurantID      uint
	lastMaintenanceAt *time.Time
	createdAt         time.Time
	updatedAt         time.Time
}

func NewDevice(
	name string,
	category string,
	serialNumber string,
	model string,
	restaurantID uint,
) (*Device, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(serialNumber) == 0 {
		return nil, fmt.Errorf("serial number is required")
	}
	if restaurantID == 0 {
		return nil, fmt.Errorf("restaurant ID is required")
	}

	now := biztime.NowUTC()
	return &Device{
		name:         name,
		category:     category,
		serialNumber: serialNumber,
		model:        model,
		status:       StatusOperational,
		restaurantID: restaurantID,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructDevice(
	id uint,
	name string,
	category string,
	serialNumber string,
	model string,
	status DeviceStatus,
	restaurantID uint,
	lastMaintenanceAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Device, error) {
	if id == 0 {
		return nil, fmt.Errorf("device ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid device status")
	}

	return &Device{
		id:                id,
		name:              name,
		category:          category,
		serialNumber:      serialNumber,
		model:             model,
		status:            status,
		restaurantID:      restaurantID,
		lastMaintenanceAt: lastMaintenanceAt,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

func (d *Device) ID() uint {
	return d.id
}

func (d *Device) Name() string {
	return d.name
}

func (d *Device) Category() string {
	return d.category
}

func (d *Device) SerialNumber() string {
	return d.serialNumber
}

func (d *Device) Model() string {
	return d.model
}

func (d *Device) Status() DeviceStatus {
	return d.status
}

func (d *Device) RestaurantID() uint {
	return d.restaurantID
}

func (d *Device) LastMaintenanceAt() *time.Time {
	return d.lastMaintenanceAt
}

func (d *Device) CreatedAt() time.Time {
	return d.createdAt
}

func (d *Device) UpdatedAt() time.Time {
	return d.updatedAt
}

func (d *Device) SetID(id uint) error {
	if d.id != 0 {
		return fmt.Errorf("device ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("device ID cannot be zero")
	}
	d.id = id
	return nil
}

// EnterMaintenance marks the device as under maintenance. Called when a
// ticket is opened against it. Already-maintenance is a no-op.
func (d *Device) EnterMaintenance() {
	if d.status == StatusMaintenance {
		return
	}
	d.status = StatusMaintenance
	d.updatedAt = biztime.NowUTC()
}

// CompleteMaintenance restores the device to operational and stamps the
// last-maintenance time.
func (d *Device) CompleteMaintenance() {
	now := biztime.NowUTC()
	d.status = StatusOperational
	d.lastMaintenanceAt = &now
	d.updatedAt = now
}

// MarkOffline takes the device out of service entirely.
func (d *Device) MarkOffline() {
	d.status = StatusOffline
	d.updatedAt = biztime.NowUTC()
}

func (d *Device) UpdateDetails(name, category, model string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	d.name = name
	d.category = category
	d.model = model
	d.updatedAt = biztime.NowUTC()
	return nil
}
