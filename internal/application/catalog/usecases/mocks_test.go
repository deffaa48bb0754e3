package usecases

import (
	"context"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/catalog"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
)

type mockServiceRepository struct {
	SaveFunc     func(ctx context.Context, s *catalog.Service) error
	UpdateFunc   func(ctx context.Context, s *catalog.Service) error
	DeleteFunc   func(ctx context.Context, id uint) error
	GetByIDFunc  func(ctx context.Context, id uint) (*catalog.Service, error)
	GetByIDsFunc func(ctx context.Context, ids []uint) ([]*catalog.Service, error)
	ListFunc     func(ctx context.Context, filter catalog.Filter) ([]*catalog.Service, int64, error)
}

func (m *mockServiceRepository) Save(ctx context.Context, s *catalog.Service) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, s)
	}
	return nil
}

func (m *mockServiceRepository) Update(ctx context.Context, s *catalog.Service) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, s)
	}
	return nil
}

func (m *mockServiceRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockServiceRepository) GetByID(ctx context.Context, id uint) (*catalog.Service, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockServiceRepository) GetByIDs(ctx context.Context, ids []uint) ([]*catalog.Service, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockServiceRepository) List(ctx context.Context, filter catalog.Filter) ([]*catalog.Service, int64, error) {
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
