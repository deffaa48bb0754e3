package catalog

import (
	"time"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/catalog"
)

type ServiceResponse struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	BasePriceCents int64     `json:"base_price_cents"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func NewServiceResponse(s *catalog.Service) ServiceResponse {
	return ServiceResponse{
		ID:             s.ID(),
		Name:           s.Name(),
		Description:    s.Description(),
		BasePriceCents: s.BasePriceCents(),
		CreatedAt:      s.CreatedAt(),
		UpdatedAt:      s.UpdatedAt(),
	}
}

func NewServiceListResponse(services []*catalog.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, NewServiceResponse(s))
	}
	return out
}
