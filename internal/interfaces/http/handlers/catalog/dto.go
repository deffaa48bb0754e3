package catalog

import (
	"github.com/gin-gonic/gin"

	"github.com/VELIFZ/mechanicshop-api/internal/application/catalog/usecases"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/utils"
)

type CreateServiceRequest struct {
	Name           string `json:"name" binding:"required,max=150"`
	Description    string `json:"description" binding:"omitempty,max=2000"`
	BasePriceCents int64  `json:"base_price_cents" binding:"required,min=0"`
}

func (r *CreateServiceRequest) ToCommand() usecases.CreateServiceCommand {
	return usecases.CreateServiceCommand{
		Name:           r.Name,
		Description:    r.Description,
		BasePriceCents: r.BasePriceCents,
	}
}

type UpdateServiceRequest struct {
	Name           *string `json:"name" binding:"omitempty,max=150"`
	Description    *string `json:"description" binding:"omitempty,max=2000"`
	BasePriceCents *int64  `json:"base_price_cents" binding:"omitempty,min=0"`
}

type ListServicesRequest struct {
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
	Search    string
}

func (r *ListServicesRequest) ToQuery() usecases.ListServicesQuery {
	return usecases.ListServicesQuery{
		Page:      r.Page,
		PageSize:  r.PageSize,
		SortBy:    r.SortBy,
		SortOrder: r.SortOrder,
		Search:    r.Search,
	}
}

func parseListServicesRequest(c *gin.Context) *ListServicesRequest {
	p := utils.ParsePagination(c)
	return &ListServicesRequest{
		Page:      p.Page,
		PageSize:  p.PageSize,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
		Search:    c.Query("search"),
	}
}
