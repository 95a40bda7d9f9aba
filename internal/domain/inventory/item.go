package inventory

import (
	"fmt"
	"time"

	"fieldserve/internal/shared/biztime"
)

// ErrInsufficientStock is returned when a consumption would drive stock
// below zero. Callers map it to a conflict response.
var ErrInsufficientStock = fmt.Errorf("insufficient stock")

// Item is a spare part or consumable tracked in the warehouse. Stock never
// goes negative; consumption that would do so is rejected.
type Item struct {
	id        uint
	name      string
	sku       string
	category  string
	stock     int
	minStock  int
	maxStock  int
	location  string
	supplier  string
	unitCost  float64
	version   int
	createdAt time.Time
	updatedAt time.Time
}

func NewItem(
	name string,
	sku string,
	category string,
	stock int,
	minStock int,
	maxStock int,
	location string,
	supplier string,
	unitCost float64,
) (*Item, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(sku) == 0 {
		return nil, fmt.Errorf("SKU is required")
	}
	if stock < 0 {
		return nil, fmt.Errorf("stock cannot be negative")
	}
	if minStock < 0 {
		return nil, fmt.Errorf("minimum stock cannot be negative")
	}
	if maxStock > 0 && maxStock < minStock {
		return nil, fmt.Errorf("maximum stock cannot be below minimum stock")
	}
	if unitCost < 0 {
		return nil, fmt.Errorf("unit cost cannot be negative")
	}

	now := biztime.NowUTC()
	return &Item{
		name:      name,
		sku:       sku,
		category:  category,
		stock:     stock,
		minStock:  minStock,
		maxStock:  maxStock,
		location:  location,
		supplier:  supplier,
		unitCost:  unitCost,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructItem(
	id uint,
	name string,
	sku string,
	category string,
	stock int,
	minStock int,
	maxStock int,
	location string,
	supplier string,
	unitCost float64,
	version int,
	createdAt, updatedAt time.Time,
) (*Item, error) {
	if id == 0 {
		return nil, fmt.Errorf("item ID cannot be zero")
	}
	if len(sku) == 0 {
		return nil, fmt.Errorf("SKU is required")
	}

	return &Item{
		id:        id,
		name:      name,
		sku:       sku,
		category:  category,
		stock:     stock,
		minStock:  minStock,
		maxStock:  maxStock,
		location:  location,
		supplier:  supplier,
		unitCost:  unitCost,
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (i *Item) ID() uint {
	return i.id
}

func (i *Item) Name() string {
	return i.name
}

func (i *Item) SKU() string {
	return i.sku
}

func (i *Item) Category() string {
	return i.category
}

func (i *Item) Stock() int {
	return i.stock
}

func (i *Item) MinStock() int {
	return i.minStock
}

func (i *Item) MaxStock() int {
	return i.maxStock
}

func (i *Item) Location() string {
	return i.location
}

func (i *Item) Supplier() string {
	return i.supplier
}

func (i *Item) UnitCost() float64 {
	return i.unitCost
}

func (i *Item) Version() int {
	return i.version
}

func (i *Item) CreatedAt() time.Time {
	return i.createdAt
}

func (i *Item) UpdatedAt() time.Time {
	return i.updatedAt
}

func (i *Item) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("item ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("item ID cannot be zero")
	}
	i.id = id
	return nil
}

// Consume decrements stock by quantity. Returns ErrInsufficientStock if the
// decrement would take stock below zero.
func (i *Item) Consume(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	if i.stock-quantity < 0 {
		return ErrInsufficientStock
	}
	i.stock -= quantity
	i.version++
	i.updatedAt = biztime.NowUTC()
	return nil
}

// Restock increments stock by quantity.
func (i *Item) Restock(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	i.stock += quantity
	i.version++
	i.updatedAt = biztime.NowUTC()
	return nil
}

// IsBelowMinimum reports whether stock has fallen to or below the reorder
// threshold.
func (i *Item) IsBelowMinimum() bool {
	return i.stock <= i.minStock
}

func (i *Item) UpdateDetails(name, category, location, supplier string, minStock, maxStock int, unitCost float64) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	if minStock < 0 {
		return fmt.Errorf("minimum stock cannot be negative")
	}
	if maxStock > 0 && maxStock < minStock {
		return fmt.Errorf("maximum stock cannot be below minimum stock")
	}
	if unitCost < 0 {
		return fmt.Errorf("unit cost cannot be negative")
	}
	i.name = name
	i.category = category
	i.location = location
	i.supplier = supplier
	i.minStock = minStock
	i.maxStock = maxStock
	i.unitCost = unitCost
	i.version++
	i.updatedAt = biztime.NowUTC()
	return nil
}
