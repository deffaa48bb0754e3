package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/VELIFZ/mechanicshop-api/internal/shared/constants"
)

// EmployeeModel is the persistence model for shop employees.
type EmployeeModel struct {
	ID           uint   `gorm:"primarykey"`
	Name         string `gorm:"not null;size:255"`
	Email        string `gorm:"uniqueIndex:uk_employees_email;not null;size:255"`
	Phone        string `gorm:"size:32"`
	PasswordHash string `gorm:"not null;size:255"`
	Role         string `gorm:"not null;size:32;index:idx_employees_role"`
	SalaryCents  int64  `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (EmployeeModel) TableName() string {
	return constants.TableEmployees
}
