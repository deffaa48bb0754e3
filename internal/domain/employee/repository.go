package employee

import (
	"context"

	"github.com/VELIFZ/mechanicshop-api/internal/shared/authorization"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/query"
)

type Filter struct {
	query.BaseFilter
	Role   *authorization.EmployeeRole
	Search string // matches against name and email
}

type Repository interface {
	Save(ctx context.Context, e *Employee) error
	Update(ctx context.Context, e *Employee) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Employee, error)
	GetByEmail(ctx context.Context, email string) (*Employee, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*Employee, error)
	List(ctx context.Context, filter Filter) ([]*Employee, int64, error)
}
