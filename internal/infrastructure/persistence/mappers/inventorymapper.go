package mappers

import (
	"github.com/VELIFZ/mechanicshop-api/internal/domain/inventory"
	vo "github.com/VELIFZ/mechanicshop-api/internal/domain/inventory/valueobjects"
	"github.com/VELIFZ/mechanicshop-api/internal/infrastructure/persistence/models"
)

// InventoryMapper handles the conversion for both inventory items and their
// serialized parts.
type InventoryMapper struct{}

func NewInventoryMapper() *InventoryMapper {
	return &InventoryMapper{}
}

func (m *InventoryMapper) ItemToModel(i *inventory.Item) *models.InventoryItemModel {
	return &models.InventoryItemModel{
		ID:              i.ID(),
		Name:            i.Name(),
		InventoryNumber: i.InventoryNumber(),
		Description:     i.Description(),
		UnitPriceCents:  i.UnitPriceCents(),
		QuantityInStock: i.QuantityInStock(),
		IsDeleted:       i.IsDeleted(),
		CreatedAt:       i.CreatedAt(),
		UpdatedAt:       i.UpdatedAt(),
	}
}

func (m *InventoryMapper) ItemToDomain(model *models.InventoryItemModel) (*inventory.Item, error) {
	return inventory.ReconstructItem(
		model.ID,
		model.Name,
		model.InventoryNumber,
		model.Description,
		model.UnitPriceCents,
		model.QuantityInStock,
		model.IsDeleted,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *InventoryMapper) PartToModel(p *inventory.SerializedPart) *models.SerializedPartModel {
	return &models.SerializedPartModel{
		ID:           p.ID(),
		ItemID:       p.ItemID(),
		SerialNumber: p.SerialNumber(),
		Status:       p.Status().String(),
		CreatedAt:    p.CreatedAt(),
		UpdatedAt:    p.UpdatedAt(),
	}
}

func (m *InventoryMapper) PartToDomain(model *models.SerializedPartModel) (*inventory.SerializedPart, error) {
	status, err := vo.NewPartStatus(model.Status)
	if err != nil {
		return nil, err
	}
	return inventory.ReconstructSerializedPart(
		model.ID,
		model.SerialNumber,
		status,
		model.ItemID,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
