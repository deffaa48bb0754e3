package models

import (
	"time"

	"github.com/VELIFZ/mechanicshop-api/internal/shared/constants"
)

// InventoryItemModel is the persistence model for inventory stock items.
// Deletion is an explicit flag rather than gorm's DeletedAt so closed
// tickets can still resolve the items their parts billed against.
type InventoryItemModel struct {
	ID              uint   `gorm:"primarykey"`
	Name            string `gorm:"not null;size:255"`
	InventoryNumber string `gorm:"uniqueIndex:uk_inventory_items_number;not null;size:64"`
	Description     string `gorm:"type:text"`
	UnitPriceCents  int64  `gorm:"not null"`
	QuantityInStock int    `gorm:"not null;default:0"`
	IsDeleted       bool   `gorm:"not null;default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (InventoryItemModel) TableName() string {
	return constants.TableInventoryItems
}
