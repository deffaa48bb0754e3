package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/inventory"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
)

func newTestItem(t *testing.T, id uint) *inventory.Item {
	t.Helper()
	item, err := inventory.NewItem("Brake Pad", "INV-001", "front axle", 2500, 10)
	require.NoError(t, err)
	require.NoError(t, item.SetID(id))
	return item
}

func TestCreatePartUseCase_Execute(t *testing.T) {
	itemRepo := &mockItemRepository{
		GetByIDFunc: func(ctx context.Context, id uint, includeDeleted bool) (*inventory.Item, error) {
			return newTestItem(t, id), nil
		},
	}
	partRepo := &mockPartRepository{
		SaveFunc: func(ctx context.Context, p *inventory.SerializedPart) error {
			return p.SetID(77)
		},
	}
	uc := NewCreatePartUseCase(partRepo, itemRepo, noopLogger{})

	result, err := uc.Execute(context.Background(), CreatePartCommand{
		SerialNumber: "SN-1001",
		ItemID:       5,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(77), result.PartID)
	assert.Equal(t, "in_stock", result.Status)
}

func TestCreatePartUseCase_UnknownItem(t *testing.T) {
	itemRepo := &mockItemRepository{
		GetByIDFunc: func(ctx context.Context, id uint, includeDeleted bool) (*inventory.Item, error) {
			return nil, errors.NewNotFoundError("item not found")
		},
	}
	uc := NewCreatePartUseCase(&mockPartRepository{}, itemRepo, noopLogger{})

	_, err := uc.Execute(context.Background(), CreatePartCommand{
		SerialNumber: "SN-1001",
		ItemID:       99,
	})

	assert.True(t, errors.IsNotFoundError(err))
}

func TestCreatePartUseCase_DuplicateSerial(t *testing.T) {
	itemRepo := &mockItemRepository{
		GetByIDFunc: func(ctx context.Context, id uint, includeDeleted bool) (*inventory.Item, error) {
			return newTestItem(t, id), nil
		},
	}
	partRepo := &mockPartRepository{
		SaveFunc: func(ctx context.Context, p *inventory.SerializedPart) error {
			return errors.NewInternalError("UNIQUE constraint failed: serialized_parts.serial_number")
		},
	}
	uc := NewCreatePartUseCase(partRepo, itemRepo, noopLogger{})

	_, err := uc.Execute(context.Background(), CreatePartCommand{
		SerialNumber: "SN-1001",
		ItemID:       5,
	})

	assert.True(t, errors.IsConflictError(err))
}

func TestDeleteItemUseCase_SoftDelete(t *testing.T) {
	item := newTestItem(t, 5)
	var updated *inventory.Item
	itemRepo := &mockItemRepository{
		GetByIDFunc: func(ctx context.Context, id uint, includeDeleted bool) (*inventory.Item, error) {
			return item, nil
		},
		UpdateFunc: func(ctx context.Context, i *inventory.Item) error {
			updated = i
			return nil
		},
	}
	uc := NewDeleteItemUseCase(itemRepo, noopLogger{})

	err := uc.Execute(context.Background(), DeleteItemCommand{ItemID: 5})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, updated.IsDeleted())
}
