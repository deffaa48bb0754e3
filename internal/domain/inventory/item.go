// Package inventory contains the InventoryItem and SerializedPart
// aggregates. An item is a stocked product line; a serialized part is one
// physical unit of it, tracked by serial number.
package inventory

import (
	"fmt"
	"time"
)

type Item struct {
	id              uint
	name            string
	inventoryNumber string
	description     string
	unitPriceCents  int64
	quantityInStock int
	deleted         bool
	createdAt       time.Time
	updatedAt       time.Time
}

func NewItem(name, inventoryNumber, description string, unitPriceCents int64, quantityInStock int) (*Item, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(inventoryNumber) == 0 {
		return nil, fmt.Errorf("inventory number is required")
	}
	if unitPriceCents < 0 {
		return nil, fmt.Errorf("unit price cannot be negative")
	}
	if quantityInStock < 0 {
		return nil, fmt.Errorf("quantity in stock cannot be negative")
	}

	now := time.Now().UTC()
	return &Item{
		name:            name,
		inventoryNumber: inventoryNumber,
		description:     description,
		unitPriceCents:  unitPriceCents,
		quantityInStock: quantityInStock,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructItem(
	id uint,
	name, inventoryNumber, description string,
	unitPriceCents int64,
	quantityInStock int,
	deleted bool,
	createdAt, updatedAt time.Time,
) (*Item, error) {
	if id == 0 {
		return nil, fmt.Errorf("item ID cannot be zero")
	}
	if len(inventoryNumber) == 0 {
		return nil, fmt.Errorf("inventory number is required")
	}
	return &Item{
		id:              id,
		name:            name,
		inventoryNumber: inventoryNumber,
		description:     description,
		unitPriceCents:  unitPriceCents,
		quantityInStock: quantityInStock,
		deleted:         deleted,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (i *Item) ID() uint                { return i.id }
func (i *Item) Name() string            { return i.name }
func (i *Item) InventoryNumber() string { return i.inventoryNumber }
func (i *Item) Description() string     { return i.description }
func (i *Item) UnitPriceCents() int64   { return i.unitPriceCents }
func (i *Item) QuantityInStock() int    { return i.quantityInStock }
func (i *Item) IsDeleted() bool         { return i.deleted }
func (i *Item) CreatedAt() time.Time    { return i.createdAt }
func (i *Item) UpdatedAt() time.Time    { return i.updatedAt }

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

func (i *Item) Update(name, description string, unitPriceCents *int64, quantityInStock *int) error {
	if name != "" {
		i.name = name
	}
	if description != "" {
		i.description = description
	}
	if unitPriceCents != nil {
		if *unitPriceCents < 0 {
			return fmt.Errorf("unit price cannot be negative")
		}
		i.unitPriceCents = *unitPriceCents
	}
	if quantityInStock != nil {
		if *quantityInStock < 0 {
			return fmt.Errorf("quantity in stock cannot be negative")
		}
		i.quantityInStock = *quantityInStock
	}
	i.updatedAt = time.Now().UTC()
	return nil
}

// ConsumeStock decrements available stock when a serialized part is
// installed. Stock already at zero is left alone; the installed part is
// the source of truth, the counter is bookkeeping.
func (i *Item) ConsumeStock() {
	if i.quantityInStock > 0 {
		i.quantityInStock--
	}
	i.updatedAt = time.Now().UTC()
}

// SoftDelete flags the item as logically removed while keeping it for
// history. Serialized parts referencing it stay valid.
func (i *Item) SoftDelete() error {
	if i.deleted {
		return fmt.Errorf("item is already deleted")
	}
	i.deleted = true
	i.updatedAt = time.Now().UTC()
	return nil
}
