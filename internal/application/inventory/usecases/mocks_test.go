package usecases

import (
	"context"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/inventory"
	vo "github.com/VELIFZ/mechanicshop-api/internal/domain/inventory/valueobjects"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
)

type mockItemRepository struct {
	SaveFunc    func(ctx context.Context, i *inventory.Item) error
	UpdateFunc  func(ctx context.Context, i *inventory.Item) error
	GetByIDFunc func(ctx context.Context, id uint, includeDeleted bool) (*inventory.Item, error)
	ListFunc    func(ctx context.Context, filter inventory.ItemFilter) ([]*inventory.Item, int64, error)
}

func (m *mockItemRepository) Save(ctx context.Context, i *inventory.Item) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, i)
	}
	return nil
}

func (m *mockItemRepository) Update(ctx context.Context, i *inventory.Item) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, i)
	}
	return nil
}

func (m *mockItemRepository) GetByID(ctx context.Context, id uint, includeDeleted bool) (*inventory.Item, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id, includeDeleted)
	}
	return nil, nil
}

func (m *mockItemRepository) List(ctx context.Context, filter inventory.ItemFilter) ([]*inventory.Item, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockPartRepository struct {
	SaveFunc              func(ctx context.Context, p *inventory.SerializedPart) error
	UpdateFunc            func(ctx context.Context, p *inventory.SerializedPart) error
	GetByIDFunc           func(ctx context.Context, id uint) (*inventory.SerializedPart, error)
	GetBySerialNumberFunc func(ctx context.Context, serial string) (*inventory.SerializedPart, error)
	GetByIDsFunc          func(ctx context.Context, ids []uint) ([]*inventory.SerializedPart, error)
	GetPricesFunc         func(ctx context.Context, partIDs []uint) ([]inventory.PartPrice, error)
	ListFunc              func(ctx context.Context, filter inventory.PartFilter) ([]*inventory.SerializedPart, int64, error)
}

func (m *mockPartRepository) Save(ctx context.Context, p *inventory.SerializedPart) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockPartRepository) Update(ctx context.Context, p *inventory.SerializedPart) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockPartRepository) TransitionStatus(ctx context.Context, partID uint, from, to vo.PartStatus) error {
	return nil
}

func (m *mockPartRepository) GetByID(ctx context.Context, id uint) (*inventory.SerializedPart, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPartRepository) GetBySerialNumber(ctx context.Context, serial string) (*inventory.SerializedPart, error) {
	if m.GetBySerialNumberFunc != nil {
		return m.GetBySerialNumberFunc(ctx, serial)
	}
	return nil, nil
}

func (m *mockPartRepository) GetByIDs(ctx context.Context, ids []uint) ([]*inventory.SerializedPart, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockPartRepository) GetPrices(ctx context.Context, partIDs []uint) ([]inventory.PartPrice, error) {
	if m.GetPricesFunc != nil {
		return m.GetPricesFunc(ctx, partIDs)
	}
	return nil, nil
}

func (m *mockPartRepository) List(ctx context.Context, filter inventory.PartFilter) ([]*inventory.SerializedPart, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (noopLogger) With(args ...any) logger.Interface               { return noopLogger{} }
func (noopLogger) Named(name string) logger.Interface              { return noopLogger{} }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
