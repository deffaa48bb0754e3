package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/VELIFZ/mechanicshop-api/internal/shared/constants"
)

// ServiceModel is the persistence model for catalog services.
type ServiceModel struct {
	ID             uint   `gorm:"primarykey"`
	Name           string `gorm:"not null;size:255"`
	Description    string `gorm:"type:text"`
	BasePriceCents int64  `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (ServiceModel) TableName() string {
	return constants.TableServices
}
