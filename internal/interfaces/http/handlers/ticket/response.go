package ticket

import (
	"time"

	"github.com/VELIFZ/mechanicshop-api/internal/application/ticket/usecases"
	"github.com/VELIFZ/mechanicshop-api/internal/domain/billing"
	"github.com/VELIFZ/mechanicshop-api/internal/domain/ticket"
)

type TicketResponse struct {
	ID             uint       `json:"id"`
	CustomerID     uint       `json:"customer_id"`
	VIN            string     `json:"vin"`
	WorkSummary    string     `json:"work_summary,omitempty"`
	Status         string     `json:"status"`
	TotalCostCents *int64     `json:"total_cost_cents,omitempty"`
	TotalCost      *string    `json:"total_cost,omitempty"`
	MechanicIDs    []uint     `json:"mechanic_ids"`
	ServiceIDs     []uint     `json:"service_ids"`
	PartIDs        []uint     `json:"part_ids"`
	IsDeleted      bool       `json:"is_deleted"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	ClosedAt       *time.Time `json:"closed_at,omitempty"`
}

func NewTicketResponse(t *ticket.Ticket) TicketResponse {
	return TicketResponse{
		ID:             t.ID(),
		CustomerID:     t.CustomerID(),
		VIN:            t.VIN(),
		WorkSummary:    t.WorkSummary(),
		Status:         t.Status().String(),
		TotalCostCents: t.TotalCostCents(),
		TotalCost:      formatCost(t.TotalCostCents()),
		MechanicIDs:    t.MechanicIDs(),
		ServiceIDs:     t.ServiceIDs(),
		PartIDs:        t.PartIDs(),
		IsDeleted:      t.IsDeleted(),
		CreatedAt:      t.CreatedAt(),
		UpdatedAt:      t.UpdatedAt(),
		ClosedAt:       t.ClosedAt(),
	}
}

func NewTicketListResponse(tickets []*ticket.Ticket) []TicketResponse {
	out := make([]TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, NewTicketResponse(t))
	}
	return out
}

type ChangeStatusResponse struct {
	TicketID       uint    `json:"ticket_id"`
	OldStatus      string  `json:"old_status"`
	NewStatus      string  `json:"new_status"`
	TotalCostCents *int64  `json:"total_cost_cents,omitempty"`
	TotalCost      *string `json:"total_cost,omitempty"`
}

func NewChangeStatusResponse(r *usecases.ChangeStatusResult) ChangeStatusResponse {
	return ChangeStatusResponse{
		TicketID:       r.TicketID,
		OldStatus:      r.OldStatus,
		NewStatus:      r.NewStatus,
		TotalCostCents: r.TotalCostCents,
		TotalCost:      formatCost(r.TotalCostCents),
	}
}

func formatCost(cents *int64) *string {
	if cents == nil {
		return nil
	}
	formatted := billing.FormatCents(*cents)
	return &formatted
}
