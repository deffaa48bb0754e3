// Package mappers converts between domain aggregates and persistence models.
package mappers

import (
	"github.com/VELIFZ/mechanicshop-api/internal/domain/customer"
	"github.com/VELIFZ/mechanicshop-api/internal/infrastructure/persistence/models"
)

// CustomerMapper handles the conversion between Customer domain entities and
// persistence models.
type CustomerMapper struct{}

func NewCustomerMapper() *CustomerMapper {
	return &CustomerMapper{}
}

func (m *CustomerMapper) ToModel(c *customer.Customer) *models.CustomerModel {
	return &models.CustomerModel{
		ID:           c.ID(),
		Name:         c.Name(),
		Email:        c.Email(),
		Phone:        c.Phone(),
		PasswordHash: c.PasswordHash(),
		CreatedAt:    c.CreatedAt(),
		UpdatedAt:    c.UpdatedAt(),
	}
}

func (m *CustomerMapper) ToDomain(model *models.CustomerModel) (*customer.Customer, error) {
	return customer.ReconstructCustomer(
		model.ID,
		model.Name,
		model.Email,
		model.Phone,
		model.PasswordHash,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
