package inventory

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/VELIFZ/mechanicshop-api/internal/application/inventory/usecases"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/utils"
)

type InventoryHandler struct {
	createItemUC usecases.CreateItemExecutor
	getItemUC    usecases.GetItemExecutor
	updateItemUC usecases.UpdateItemExecutor
	deleteItemUC usecases.DeleteItemExecutor
	listItemsUC  usecases.ListItemsExecutor
	createPartUC usecases.CreatePartExecutor
	getPartUC    usecases.GetPartExecutor
	listPartsUC  usecases.ListPartsExecutor
	logger       logger.Interface
}

func NewInventoryHandler(
	createItemUC usecases.CreateItemExecutor,
	getItemUC usecases.GetItemExecutor,
	updateItemUC usecases.UpdateItemExecutor,
	deleteItemUC usecases.DeleteItemExecutor,
	listItemsUC usecases.ListItemsExecutor,
	createPartUC usecases.CreatePartExecutor,
	getPartUC usecases.GetPartExecutor,
	listPartsUC usecases.ListPartsExecutor,
) *InventoryHandler {
	return &InventoryHandler{
		createItemUC: createItemUC,
		getItemUC:    getItemUC,
		updateItemUC: updateItemUC,
		deleteItemUC: deleteItemUC,
		listItemsUC:  listItemsUC,
		createPartUC: createPartUC,
		getPartUC:    getPartUC,
		listPartsUC:  listPartsUC,
		logger:       logger.NewLogger(),
	}
}

// CreateItem handles POST /inventory/items
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create item", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createItemUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Inventory item created successfully")
}

// GetItem handles GET /inventory/items/:id
func (h *InventoryHandler) GetItem(c *gin.Context) {
	itemID, err := parseItemID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	includeDeleted, _ := strconv.ParseBool(c.DefaultQuery("include_deleted", "false"))

	result, err := h.getItemUC.Execute(c.Request.Context(), usecases.GetItemQuery{
		ItemID:         itemID,
		IncludeDeleted: includeDeleted,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", NewItemResponse(result.Item))
}

// UpdateItem handles PUT /inventory/items/:id
func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	itemID, err := parseItemID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateItemUC.Execute(c.Request.Context(), usecases.UpdateItemCommand{
		ItemID:          itemID,
		Name:            req.Name,
		Description:     req.Description,
		UnitPriceCents:  req.UnitPriceCents,
		QuantityInStock: req.QuantityInStock,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Inventory item updated successfully", NewItemResponse(result.Item))
}

// DeleteItem handles DELETE /inventory/items/:id
func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	itemID, err := parseItemID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteItemUC.Execute(c.Request.Context(), usecases.DeleteItemCommand{ItemID: itemID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListItems handles GET /inventory/items
func (h *InventoryHandler) ListItems(c *gin.Context) {
	req := parseListItemsRequest(c)

	result, err := h.listItemsUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, NewItemListResponse(result.Items), result.Total, result.Page, result.PageSize)
}

// CreatePart handles POST /inventory/parts
func (h *InventoryHandler) CreatePart(c *gin.Context) {
	var req CreatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create part", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createPartUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Serialized part created successfully")
}

// GetPart handles GET /inventory/parts/:id. A non-numeric path value is
// treated as a serial number lookup.
func (h *InventoryHandler) GetPart(c *gin.Context) {
	query := usecases.GetPartQuery{}
	raw := c.Param("id")
	if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
		query.PartID = uint(id)
	} else {
		query.SerialNumber = raw
	}

	result, err := h.getPartUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", NewPartResponse(result.Part))
}

// ListParts handles GET /inventory/parts
func (h *InventoryHandler) ListParts(c *gin.Context) {
	req := parseListPartsRequest(c)

	result, err := h.listPartsUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, NewPartListResponse(result.Parts), result.Total, result.Page, result.PageSize)
}

func parseItemID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.NewValidationError("invalid item ID")
	}
	return uint(id), nil
}
