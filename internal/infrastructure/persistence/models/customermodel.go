package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/VELIFZ/mechanicshop-api/internal/shared/constants"
)

// CustomerModel is the persistence model for customers. It is the
// anti-corruption layer between the domain aggregate and the database.
type CustomerModel struct {
	ID           uint   `gorm:"primarykey"`
	Name         string `gorm:"not null;size:255"`
	Email        string `gorm:"uniqueIndex:uk_customers_email;not null;size:255"`
	Phone        string `gorm:"size:32"`
	PasswordHash string `gorm:"not null;size:255"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (CustomerModel) TableName() string {
	return constants.TableCustomers
}
