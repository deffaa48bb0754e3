package inventory

import (
	"time"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/inventory"
)

type ItemResponse struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	InventoryNumber string    `json:"inventory_number"`
	Description     string    `json:"description,omitempty"`
	UnitPriceCents  int64     `json:"unit_price_cents"`
	QuantityInStock int       `json:"quantity_in_stock"`
	IsDeleted       bool      `json:"is_deleted"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func NewItemResponse(i *inventory.Item) ItemResponse {
	return ItemResponse{
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

func NewItemListResponse(items []*inventory.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, NewItemResponse(i))
	}
	return out
}

type PartResponse struct {
	ID           uint      `json:"id"`
	SerialNumber string    `json:"serial_number"`
	Status       string    `json:"status"`
	ItemID       uint      `json:"item_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewPartResponse(p *inventory.SerializedPart) PartResponse {
	return PartResponse{
		ID:           p.ID(),
		SerialNumber: p.SerialNumber(),
		Status:       p.Status().String(),
		ItemID:       p.ItemID(),
		CreatedAt:    p.CreatedAt(),
		UpdatedAt:    p.UpdatedAt(),
	}
}

func NewPartListResponse(parts []*inventory.SerializedPart) []PartResponse {
	out := make([]PartResponse, 0, len(parts))
	for _, p := range parts {
		out = append(out, NewPartResponse(p))
	}
	return out
}
