package catalog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/VELIFZ/mechanicshop-api/internal/application/catalog/usecases"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/utils"
)

type ServiceHandler struct {
	createUC usecases.CreateServiceExecutor
	getUC    usecases.GetServiceExecutor
	updateUC usecases.UpdateServiceExecutor
	deleteUC usecases.DeleteServiceExecutor
	listUC   usecases.ListServicesExecutor
	logger   logger.Interface
}

func NewServiceHandler(
	createUC usecases.CreateServiceExecutor,
	getUC usecases.GetServiceExecutor,
	updateUC usecases.UpdateServiceExecutor,
	deleteUC usecases.DeleteServiceExecutor,
	listUC usecases.ListServicesExecutor,
) *ServiceHandler {
	return &ServiceHandler{
		createUC: createUC,
		getUC:    getUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		listUC:   listUC,
		logger:   logger.NewLogger(),
	}
}

// CreateService handles POST /services
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create service", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Service created successfully")
}

// GetService handles GET /services/:id
func (h *ServiceHandler) GetService(c *gin.Context) {
	serviceID, err := parseServiceID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetServiceQuery{ServiceID: serviceID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", NewServiceResponse(result.Service))
}

// UpdateService handles PUT /services/:id
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	serviceID, err := parseServiceID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateServiceCommand{
		ServiceID:      serviceID,
		Name:           req.Name,
		Description:    req.Description,
		BasePriceCents: req.BasePriceCents,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Service updated successfully", NewServiceResponse(result.Service))
}

// DeleteService handles DELETE /services/:id
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	serviceID, err := parseServiceID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteServiceCommand{ServiceID: serviceID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListServices handles GET /services
func (h *ServiceHandler) ListServices(c *gin.Context) {
	req := parseListServicesRequest(c)

	result, err := h.listUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, NewServiceListResponse(result.Services), result.Total, result.Page, result.PageSize)
}

func parseServiceID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.NewValidationError("invalid service ID")
	}
	return uint(id), nil
}
