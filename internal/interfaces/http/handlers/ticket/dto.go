package ticket

import (
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/VELIFZ/mechanicshop-api/internal/application/ticket/usecases"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/authorization"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/utils"
)

// vinPattern accepts 11 to 17 characters from the VIN alphabet, which
// excludes I, O, and Q. Vehicles older than 1981 carry short VINs, so the
// full 17-character check is not enforced.
var vinPattern = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]{11,17}$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("vin", func(fl validator.FieldLevel) bool {
			return vinPattern.MatchString(fl.Field().String())
		})
	}
}

type CreateTicketRequest struct {
	CustomerID  uint   `json:"customer_id" binding:"omitempty"`
	VIN         string `json:"vin" binding:"required,vin"`
	WorkSummary string `json:"work_summary" binding:"omitempty,max=5000"`
	ServiceIDs  []uint `json:"service_ids,omitempty"`
	PartIDs     []uint `json:"part_ids,omitempty"`
	MechanicIDs []uint `json:"mechanic_ids,omitempty"`
}

// ToCommand resolves the ticket owner. Customers always open tickets for
// themselves; employees must name the customer explicitly.
func (r *CreateTicketRequest) ToCommand(requester authorization.Principal) usecases.CreateTicketCommand {
	customerID := r.CustomerID
	if requester.Type == authorization.PrincipalCustomer {
		customerID = requester.ID
	}
	return usecases.CreateTicketCommand{
		CustomerID:  customerID,
		VIN:         r.VIN,
		WorkSummary: r.WorkSummary,
		ServiceIDs:  r.ServiceIDs,
		PartIDs:     r.PartIDs,
		MechanicIDs: r.MechanicIDs,
	}
}

type UpdateTicketRequest struct {
	WorkSummary string `json:"work_summary" binding:"required,max=5000"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=open in_progress closed"`
}

type ListTicketsRequest struct {
	Page           int
	PageSize       int
	SortBy         string
	SortOrder      string
	Status         string
	CustomerID     uint
	IncludeDeleted bool
}

func (r *ListTicketsRequest) ToQuery(requester authorization.Principal) usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		Page:           r.Page,
		PageSize:       r.PageSize,
		SortBy:         r.SortBy,
		SortOrder:      r.SortOrder,
		Status:         r.Status,
		CustomerID:     r.CustomerID,
		IncludeDeleted: r.IncludeDeleted,
		Requester:      requester,
	}
}

func parseListTicketsRequest(c *gin.Context) *ListTicketsRequest {
	p := utils.ParsePagination(c)
	customerID, _ := strconv.ParseUint(c.DefaultQuery("customer_id", "0"), 10, 32)
	includeDeleted, _ := strconv.ParseBool(c.DefaultQuery("include_deleted", "false"))
	return &ListTicketsRequest{
		Page:           p.Page,
		PageSize:       p.PageSize,
		SortBy:         c.Query("sort_by"),
		SortOrder:      c.Query("sort_order"),
		Status:         c.Query("status"),
		CustomerID:     uint(customerID),
		IncludeDeleted: includeDeleted,
	}
}
