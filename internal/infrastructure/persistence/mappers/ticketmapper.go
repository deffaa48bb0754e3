package mappers

import (
	"github.com/VELIFZ/mechanicshop-api/internal/domain/ticket"
	"github.com/VELIFZ/mechanicshop-api/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and
// persistence models. Association ID sets are stored in join tables and
// loaded by the repository, so ToDomain takes them explicitly.
type TicketMapper struct{}

func NewTicketMapper() *TicketMapper {
	return &TicketMapper{}
}

func (m *TicketMapper) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:             t.ID(),
		CustomerID:     t.CustomerID(),
		VIN:            t.VIN(),
		WorkSummary:    t.WorkSummary(),
		Status:         t.Status().String(),
		TotalCostCents: t.TotalCostCents(),
		IsDeleted:      t.IsDeleted(),
		CreatedAt:      t.CreatedAt(),
		UpdatedAt:      t.UpdatedAt(),
		ClosedAt:       t.ClosedAt(),
	}
}

func (m *TicketMapper) ToDomain(model *models.TicketModel, mechanicIDs, serviceIDs, partIDs []uint) (*ticket.Ticket, error) {
	status, err := ticket.NewStatus(model.Status)
	if err != nil {
		return nil, err
	}
	return ticket.ReconstructTicket(
		model.ID,
		model.CustomerID,
		model.VIN,
		model.WorkSummary,
		status,
		model.TotalCostCents,
		model.IsDeleted,
		model.CreatedAt,
		model.UpdatedAt,
		model.ClosedAt,
		mechanicIDs,
		serviceIDs,
		partIDs,
	)
}
