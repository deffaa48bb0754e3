package catalog

import (
	"context"

	"github.com/VELIFZ/mechanicshop-api/internal/shared/query"
)

type Filter struct {
	query.BaseFilter
	Search string // matches against service name
}

type Repository interface {
	Save(ctx context.Context, s *Service) error
	Update(ctx context.Context, s *Service) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Service, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*Service, error)
	List(ctx context.Context, filter Filter) ([]*Service, int64, error)
}
