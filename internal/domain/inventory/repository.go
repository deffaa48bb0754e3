package inventory

import (
	"context"

	vo "github.com/VELIFZ/mechanicshop-api/internal/domain/inventory/valueobjects"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/query"
)

type ItemFilter struct {
	query.BaseFilter
	Search         string // matches against name and inventory number
	IncludeDeleted bool
}

type PartFilter struct {
	query.BaseFilter
	ItemID *uint
	Status *string
}

// PartPrice pairs a serialized part with its item's unit price, which is
// what the billing calculator charges for it.
type PartPrice struct {
	PartID         uint
	ItemID         uint
	UnitPriceCents int64
}

type ItemRepository interface {
	Save(ctx context.Context, i *Item) error
	Update(ctx context.Context, i *Item) error
	GetByID(ctx context.Context, id uint, includeDeleted bool) (*Item, error)
	List(ctx context.Context, filter ItemFilter) ([]*Item, int64, error)
}

type PartRepository interface {
	Save(ctx context.Context, p *SerializedPart) error
	Update(ctx context.Context, p *SerializedPart) error
	// TransitionStatus moves a part between statuses with a guarded update:
	// the write only lands if the row is still in the expected status, so of
	// two concurrent transitions exactly one wins. Returns Conflict when the
	// guard fails.
	TransitionStatus(ctx context.Context, partID uint, from, to vo.PartStatus) error
	GetByID(ctx context.Context, id uint) (*SerializedPart, error)
	GetBySerialNumber(ctx context.Context, serial string) (*SerializedPart, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*SerializedPart, error)
	// GetPrices resolves the unit prices the given parts bill at.
	GetPrices(ctx context.Context, partIDs []uint) ([]PartPrice, error)
	List(ctx context.Context, filter PartFilter) ([]*SerializedPart, int64, error)
}
