package mappers

import (
	"github.com/VELIFZ/mechanicshop-api/internal/domain/catalog"
	"github.com/VELIFZ/mechanicshop-api/internal/infrastructure/persistence/models"
)

// ServiceMapper handles the conversion between catalog Service domain
// entities and persistence models.
type ServiceMapper struct{}

func NewServiceMapper() *ServiceMapper {
	return &ServiceMapper{}
}

func (m *ServiceMapper) ToModel(s *catalog.Service) *models.ServiceModel {
	return &models.ServiceModel{
		ID:             s.ID(),
		Name:           s.Name(),
		Description:    s.Description(),
		BasePriceCents: s.BasePriceCents(),
		CreatedAt:      s.CreatedAt(),
		UpdatedAt:      s.UpdatedAt(),
	}
}

func (m *ServiceMapper) ToDomain(model *models.ServiceModel) (*catalog.Service, error) {
	return catalog.ReconstructService(
		model.ID,
		model.Name,
		model.Description,
		model.BasePriceCents,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
