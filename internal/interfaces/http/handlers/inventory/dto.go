package inventory

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/VELIFZ/mechanicshop-api/internal/application/inventory/usecases"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/utils"
)

type CreateItemRequest struct {
	Name            string `json:"name" binding:"required,max=150"`
	InventoryNumber string `json:"inventory_number" binding:"required,max=64"`
	Description     string `json:"description" binding:"omitempty,max=2000"`
	UnitPriceCents  int64  `json:"unit_price_cents" binding:"required,min=0"`
	QuantityInStock int    `json:"quantity_in_stock" binding:"omitempty,min=0"`
}

func (r *CreateItemRequest) ToCommand() usecases.CreateItemCommand {
	return usecases.CreateItemCommand{
		Name:            r.Name,
		InventoryNumber: r.InventoryNumber,
		Description:     r.Description,
		UnitPriceCents:  r.UnitPriceCents,
		QuantityInStock: r.QuantityInStock,
	}
}

type UpdateItemRequest struct {
	Name            *string `json:"name" binding:"omitempty,max=150"`
	Description     *string `json:"description" binding:"omitempty,max=2000"`
	UnitPriceCents  *int64  `json:"unit_price_cents" binding:"omitempty,min=0"`
	QuantityInStock *int    `json:"quantity_in_stock" binding:"omitempty,min=0"`
}

type CreatePartRequest struct {
	SerialNumber string `json:"serial_number" binding:"required,max=64"`
	ItemID       uint   `json:"item_id" binding:"required"`
}

func (r *CreatePartRequest) ToCommand() usecases.CreatePartCommand {
	return usecases.CreatePartCommand{
		SerialNumber: r.SerialNumber,
		ItemID:       r.ItemID,
	}
}

type ListItemsRequest struct {
	Page           int
	PageSize       int
	SortBy         string
	SortOrder      string
	Search         string
	IncludeDeleted bool
}

func (r *ListItemsRequest) ToQuery() usecases.ListItemsQuery {
	return usecases.ListItemsQuery{
		Page:           r.Page,
		PageSize:       r.PageSize,
		SortBy:         r.SortBy,
		SortOrder:      r.SortOrder,
		Search:         r.Search,
		IncludeDeleted: r.IncludeDeleted,
	}
}

func parseListItemsRequest(c *gin.Context) *ListItemsRequest {
	p := utils.ParsePagination(c)
	includeDeleted, _ := strconv.ParseBool(c.DefaultQuery("include_deleted", "false"))
	return &ListItemsRequest{
		Page:           p.Page,
		PageSize:       p.PageSize,
		SortBy:         c.Query("sort_by"),
		SortOrder:      c.Query("sort_order"),
		Search:         c.Query("search"),
		IncludeDeleted: includeDeleted,
	}
}

type ListPartsRequest struct {
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
	ItemID    uint
	Status    string
}

func (r *ListPartsRequest) ToQuery() usecases.ListPartsQuery {
	return usecases.ListPartsQuery{
		Page:      r.Page,
		PageSize:  r.PageSize,
		SortBy:    r.SortBy,
		SortOrder: r.SortOrder,
		ItemID:    r.ItemID,
		Status:    r.Status,
	}
}

func parseListPartsRequest(c *gin.Context) *ListPartsRequest {
	p := utils.ParsePagination(c)
	itemID, _ := strconv.ParseUint(c.DefaultQuery("item_id", "0"), 10, 32)
	return &ListPartsRequest{
		Page:      p.Page,
		PageSize:  p.PageSize,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
		ItemID:    uint(itemID),
		Status:    c.Query("status"),
	}
}
