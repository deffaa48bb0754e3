package models

import (
	"time"

	"github.com/VELIFZ/mechanicshop-api/internal/shared/constants"
)

// SerializedPartModel is the persistence model for individually tracked
// parts belonging to an inventory item.
type SerializedPartModel struct {
	ID           uint   `gorm:"primarykey"`
	ItemID       uint   `gorm:"not null;index:idx_serialized_parts_item"`
	SerialNumber string `gorm:"uniqueIndex:uk_serialized_parts_serial;not null;size:128"`
	Status       string `gorm:"not null;size:32;default:in_stock;index:idx_serialized_parts_status"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (SerializedPartModel) TableName() string {
	return constants.TableSerializedParts
}
