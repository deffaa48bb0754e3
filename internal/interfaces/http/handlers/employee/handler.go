package employee

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/VELIFZ/mechanicshop-api/internal/application/employee/usecases"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/authorization"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/utils"
)

type EmployeeHandler struct {
	createUC usecases.CreateEmployeeExecutor
	loginUC  usecases.LoginEmployeeExecutor
	getUC    usecases.GetEmployeeExecutor
	updateUC usecases.UpdateEmployeeExecutor
	deleteUC usecases.DeleteEmployeeExecutor
	listUC   usecases.ListEmployeesExecutor
	logger   logger.Interface
}

func NewEmployeeHandler(
	createUC usecases.CreateEmployeeExecutor,
	loginUC usecases.LoginEmployeeExecutor,
	getUC usecases.GetEmployeeExecutor,
	updateUC usecases.UpdateEmployeeExecutor,
	deleteUC usecases.DeleteEmployeeExecutor,
	listUC usecases.ListEmployeesExecutor,
) *EmployeeHandler {
	return &EmployeeHandler{
		createUC: createUC,
		loginUC:  loginUC,
		getUC:    getUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		listUC:   listUC,
		logger:   logger.NewLogger(),
	}
}

// CreateEmployee handles POST /employees
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create employee", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Employee created successfully")
}

// Login handles POST /auth/employees/login
func (h *EmployeeHandler) Login(c *gin.Context) {
	var req LoginEmployeeRequest
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
		Employee:    NewEmployeeResponse(result.Employee),
		AccessToken: result.AccessToken,
		ExpiresIn:   result.ExpiresIn,
	})
}

// GetEmployee handles GET /employees/:id
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	employeeID, err := parseEmployeeID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetEmployeeQuery{EmployeeID: employeeID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", NewEmployeeResponse(result.Employee))
}

// UpdateEmployee handles PUT /employees/:id
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	employeeID, err := parseEmployeeID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateEmployeeCommand{
		EmployeeID:  employeeID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Password:    req.Password,
		Role:        req.Role,
		SalaryCents: req.SalaryCents,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Employee updated successfully", NewEmployeeResponse(result.Employee))
}

// DeleteEmployee handles DELETE /employees/:id
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	employeeID, err := parseEmployeeID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	requester, ok := authorization.PrincipalFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteEmployeeCommand{
		EmployeeID: employeeID,
		Requester:  requester,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListEmployees handles GET /employees
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	req := parseListEmployeesRequest(c)

	result, err := h.listUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, NewEmployeeListResponse(result.Employees), result.Total, result.Page, result.PageSize)
}

func parseEmployeeID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.NewValidationError("invalid employee ID")
	}
	return uint(id), nil
}
