package customer

import (
	"context"

	"github.com/VELIFZ/mechanicshop-api/internal/shared/query"
)

type Filter struct {
	query.BaseFilter
	Search string // matches against name and email
}

type Repository interface {
	Save(ctx context.Context, c *Customer) error
	Update(ctx context.Context, c *Customer) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Customer, error)
	GetByEmail(ctx context.Context, email string) (*Customer, error)
	List(ctx context.Context, filter Filter) ([]*Customer, int64, error)
}
