package customer

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/VELIFZ/mechanicshop-api/internal/application/customer/usecases"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/authorization"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/utils"
)

type CustomerHandler struct {
	registerUC usecases.RegisterCustomerExecutor
	loginUC    usecases.LoginCustomerExecutor
	getUC      usecases.GetCustomerExecutor
	updateUC   usecases.UpdateCustomerExecutor
	deleteUC   usecases.DeleteCustomerExecutor
	listUC     usecases.ListCustomersExecutor
	logger     logger.Interface
}

func NewCustomerHandler(
	registerUC usecases.RegisterCustomerExecutor,
	loginUC usecases.LoginCustomerExecutor,
	getUC usecases.GetCustomerExecutor,
	updateUC usecases.UpdateCustomerExecutor,
	deleteUC usecases.DeleteCustomerExecutor,
	listUC usecases.ListCustomersExecutor,
) *CustomerHandler {
	return &CustomerHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		getUC:      getUC,
		updateUC:   updateUC,
		deleteUC:   deleteUC,
		listUC:     listUC,
		logger:     logger.NewLogger(),
	}
}

// Register handles POST /auth/customers/register
func (h *CustomerHandler) Register(c *gin.Context) {
	var req RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for customer registration", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Customer registered successfully")
}

// Login handles POST /auth/customers/login
func (h *CustomerHandler) Login(c *gin.Context) {
	var req LoginCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", LoginResponse{
		Customer:    NewCustomerResponse(result.Customer),
		AccessToken: result.AccessToken,
		ExpiresIn:   result.ExpiresIn,
	})
}

// GetCustomer handles GET /customers/:id
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customerID, err := parseCustomerID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	requester, ok := authorization.PrincipalFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetCustomerQuery{
		CustomerID: customerID,
		Requester:  requester,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", NewCustomerResponse(result.Customer))
}

// UpdateCustomer handles PUT /customers/:id
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	customerID, err := parseCustomerID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	requester, ok := authorization.PrincipalFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateCustomerCommand{
		CustomerID: customerID,
		Requester:  requester,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Password:   req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Customer updated successfully", NewCustomerResponse(result.Customer))
}

// DeleteCustomer handles DELETE /customers/:id
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	customerID, err := parseCustomerID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	requester, ok := authorization.PrincipalFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteCustomerCommand{
		CustomerID: customerID,
		Requester:  requester,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListCustomers handles GET /customers
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	req := parseListCustomersRequest(c)

	result, err := h.listUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, NewCustomerListResponse(result.Customers), result.Total, result.Page, result.PageSize)
}

func parseCustomerID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.NewValidationError("invalid customer ID")
	}
	return uint(id), nil
}
