package models

import (
	"time"

	"github.com/VELIFZ/mechanicshop-api/internal/shared/constants"
)

// TicketModel is the persistence model for service tickets. Association ID
// sets live in the join tables below and are loaded separately by the
// repository.
type TicketModel struct {
	ID             uint   `gorm:"primarykey"`
	CustomerID     uint   `gorm:"not null;index:idx_tickets_customer"`
	VIN            string `gorm:"column:vin;not null;size:32"`
	WorkSummary    string `gorm:"type:text"`
	Status         string `gorm:"not null;size:32;default:open;index:idx_tickets_status"`
	TotalCostCents *int64
	IsDeleted      bool `gorm:"not null;default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	ClosedAt       *time.Time
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}

// TicketMechanicModel is a row in the ticket to mechanic join table.
type TicketMechanicModel struct {
	TicketID   uint `gorm:"primarykey;autoIncrement:false"`
	EmployeeID uint `gorm:"primarykey;autoIncrement:false;index:idx_ticket_mechanics_employee"`
	CreatedAt  time.Time
}

func (TicketMechanicModel) TableName() string {
	return constants.TableTicketMechanics
}

// TicketServiceModel is a row in the ticket to catalog service join table.
type TicketServiceModel struct {
	TicketID  uint `gorm:"primarykey;autoIncrement:false"`
	ServiceID uint `gorm:"primarykey;autoIncrement:false;index:idx_ticket_services_service"`
	CreatedAt time.Time
}

func (TicketServiceModel) TableName() string {
	return constants.TableTicketServices
}

// TicketPartModel is a row in the ticket to serialized part join table.
type TicketPartModel struct {
	TicketID  uint `gorm:"primarykey;autoIncrement:false"`
	PartID    uint `gorm:"primarykey;autoIncrement:false;index:idx_ticket_parts_part"`
	CreatedAt time.Time
}

func (TicketPartModel) TableName() string {
	return constants.TableTicketParts
}
