package customer

import (
	"github.com/gin-gonic/gin"

	"github.com/VELIFZ/mechanicshop-api/internal/application/customer/usecases"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/utils"
)

type RegisterCustomerRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"omitempty,max=32"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *RegisterCustomerRequest) ToCommand() usecases.RegisterCustomerCommand {
	return usecases.RegisterCustomerCommand{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Password: r.Password,
	}
}

type LoginCustomerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginCustomerRequest) ToCommand() usecases.LoginCustomerCommand {
	return usecases.LoginCustomerCommand{
		Email:    r.Email,
		Password: r.Password,
	}
}

type UpdateCustomerRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=100"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone" binding:"omitempty,max=32"`
	Password *string `json:"password" binding:"omitempty,min=8"`
}

type ListCustomersRequest struct {
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
	Search    string
}

func (r *ListCustomersRequest) ToQuery() usecases.ListCustomersQuery {
	return usecases.ListCustomersQuery{
		Page:      r.Page,
		PageSize:  r.PageSize,
		SortBy:    r.SortBy,
		SortOrder: r.SortOrder,
		Search:    r.Search,
	}
}

func parseListCustomersRequest(c *gin.Context) *ListCustomersRequest {
	p := utils.ParsePagination(c)
	return &ListCustomersRequest{
		Page:      p.Page,
		PageSize:  p.PageSize,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
		Search:    c.Query("search"),
	}
}
