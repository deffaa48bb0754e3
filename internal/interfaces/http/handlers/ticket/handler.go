package ticket

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/VELIFZ/mechanicshop-api/internal/application/ticket/usecases"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/authorization"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/utils"
)

type TicketHandler struct {
	createUC         usecases.CreateTicketExecutor
	getUC            usecases.GetTicketExecutor
	listUC           usecases.ListTicketsExecutor
	updateUC         usecases.UpdateTicketExecutor
	changeStatusUC   usecases.ChangeStatusExecutor
	deleteUC         usecases.DeleteTicketExecutor
	attachMechanicUC usecases.AttachMechanicExecutor
	detachMechanicUC usecases.DetachMechanicExecutor
	attachServiceUC  usecases.AttachServiceExecutor
	detachServiceUC  usecases.DetachServiceExecutor
	attachPartUC     usecases.AttachPartExecutor
	detachPartUC     usecases.DetachPartExecutor
	logger           logger.Interface
}

func NewTicketHandler(
	createUC usecases.CreateTicketExecutor,
	getUC usecases.GetTicketExecutor,
	listUC usecases.ListTicketsExecutor,
	updateUC usecases.UpdateTicketExecutor,
	changeStatusUC usecases.ChangeStatusExecutor,
	deleteUC usecases.DeleteTicketExecutor,
	attachMechanicUC usecases.AttachMechanicExecutor,
	detachMechanicUC usecases.DetachMechanicExecutor,
	attachServiceUC usecases.AttachServiceExecutor,
	detachServiceUC usecases.DetachServiceExecutor,
	attachPartUC usecases.AttachPartExecutor,
	detachPartUC usecases.DetachPartExecutor,
) *TicketHandler {
	return &TicketHandler{
		createUC:         createUC,
		getUC:            getUC,
		listUC:           listUC,
		updateUC:         updateUC,
		changeStatusUC:   changeStatusUC,
		deleteUC:         deleteUC,
		attachMechanicUC: attachMechanicUC,
		detachMechanicUC: detachMechanicUC,
		attachServiceUC:  attachServiceUC,
		detachServiceUC:  detachServiceUC,
		attachPartUC:     attachPartUC,
		detachPartUC:     detachPartUC,
		logger:           logger.NewLogger(),
	}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	requester, ok := authorization.PrincipalFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCommand(requester))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	requester, ok := authorization.PrincipalFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	includeDeleted, _ := strconv.ParseBool(c.DefaultQuery("include_deleted", "false"))

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		TicketID:       ticketID,
		Requester:      requester,
		IncludeDeleted: includeDeleted,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", NewTicketResponse(result.Ticket))
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	req := parseListTicketsRequest(c)

	requester, ok := authorization.PrincipalFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), req.ToQuery(requester))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, NewTicketListResponse(result.Tickets), result.Total, result.Page, result.PageSize)
}

// ListCustomerTickets handles GET /customers/:id/tickets. Customers remain
// scoped to their own tickets regardless of the path value.
func (h *TicketHandler) ListCustomerTickets(c *gin.Context) {
	customerID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid customer ID"))
		return
	}

	req := parseListTicketsRequest(c)
	req.CustomerID = uint(customerID)

	requester, ok := authorization.PrincipalFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), req.ToQuery(requester))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, NewTicketListResponse(result.Tickets), result.Total, result.Page, result.PageSize)
}

// UpdateTicket handles PUT /tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateTicketCommand{
		TicketID:    ticketID,
		WorkSummary: req.WorkSummary,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", NewTicketResponse(result.Ticket))
}

// ChangeStatus handles PATCH /tickets/:id/status
func (h *TicketHandler) ChangeStatus(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeStatusCommand{
		TicketID:  ticketID,
		NewStatus: req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status changed successfully", NewChangeStatusResponse(result))
}

// DeleteTicket handles DELETE /tickets/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{TicketID: ticketID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// AttachMechanic handles POST /tickets/:id/mechanics/:employeeId
func (h *TicketHandler) AttachMechanic(c *gin.Context) {
	ticketID, employeeID, err := parseTicketSubIDs(c, "employeeId", "employee")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.attachMechanicUC.Execute(c.Request.Context(), usecases.AttachMechanicCommand{
		TicketID:   ticketID,
		EmployeeID: employeeID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Mechanic assigned successfully", nil)
}

// DetachMechanic handles DELETE /tickets/:id/mechanics/:employeeId
func (h *TicketHandler) DetachMechanic(c *gin.Context) {
	ticketID, employeeID, err := parseTicketSubIDs(c, "employeeId", "employee")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.detachMechanicUC.Execute(c.Request.Context(), usecases.DetachMechanicCommand{
		TicketID:   ticketID,
		EmployeeID: employeeID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// AttachService handles POST /tickets/:id/services/:serviceId
func (h *TicketHandler) AttachService(c *gin.Context) {
	ticketID, serviceID, err := parseTicketSubIDs(c, "serviceId", "service")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.attachServiceUC.Execute(c.Request.Context(), usecases.AttachServiceCommand{
		TicketID:  ticketID,
		ServiceID: serviceID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Service added successfully", nil)
}

// DetachService handles DELETE /tickets/:id/services/:serviceId
func (h *TicketHandler) DetachService(c *gin.Context) {
	ticketID, serviceID, err := parseTicketSubIDs(c, "serviceId", "service")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.detachServiceUC.Execute(c.Request.Context(), usecases.DetachServiceCommand{
		TicketID:  ticketID,
		ServiceID: serviceID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// AttachPart handles POST /tickets/:id/parts/:partId
func (h *TicketHandler) AttachPart(c *gin.Context) {
	ticketID, partID, err := parseTicketSubIDs(c, "partId", "part")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.attachPartUC.Execute(c.Request.Context(), usecases.AttachPartCommand{
		TicketID: ticketID,
		PartID:   partID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Part reserved successfully", nil)
}

// DetachPart handles DELETE /tickets/:id/parts/:partId
func (h *TicketHandler) DetachPart(c *gin.Context) {
	ticketID, partID, err := parseTicketSubIDs(c, "partId", "part")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.detachPartUC.Execute(c.Request.Context(), usecases.DetachPartCommand{
		TicketID: ticketID,
		PartID:   partID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func parseTicketID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.NewValidationError("invalid ticket ID")
	}
	return uint(id), nil
}

func parseTicketSubIDs(c *gin.Context, param, label string) (uint, uint, error) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		return 0, 0, err
	}
	subID, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		return 0, 0, errors.NewValidationError("invalid " + label + " ID")
	}
	return ticketID, uint(subID), nil
}
