package employee

import (
	"github.com/gin-gonic/gin"

	"github.com/VELIFZ/mechanicshop-api/internal/application/employee/usecases"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/utils"
)

type CreateEmployeeRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"omitempty,max=32"`
	Password    string `json:"password" binding:"required,min=8"`
	Role        string `json:"role" binding:"required,oneof=mechanic manager admin"`
	SalaryCents int64  `json:"salary_cents" binding:"omitempty,min=0"`
}

func (r *CreateEmployeeRequest) ToCommand() usecases.CreateEmployeeCommand {
	return usecases.CreateEmployeeCommand{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Password:    r.Password,
		Role:        r.Role,
		SalaryCents: r.SalaryCents,
	}
}

type LoginEmployeeRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginEmployeeRequest) ToCommand() usecases.LoginEmployeeCommand {
	return usecases.LoginEmployeeCommand{
		Email:    r.Email,
		Password: r.Password,
	}
}

type UpdateEmployeeRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Phone       *string `json:"phone" binding:"omitempty,max=32"`
	Password    *string `json:"password" binding:"omitempty,min=8"`
	Role        *string `json:"role" binding:"omitempty,oneof=mechanic manager admin"`
	SalaryCents *int64  `json:"salary_cents" binding:"omitempty,min=0"`
}

type ListEmployeesRequest struct {
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
	Search    string
	Role      string
}

func (r *ListEmployeesRequest) ToQuery() usecases.ListEmployeesQuery {
	return usecases.ListEmployeesQuery{
		Page:      r.Page,
		PageSize:  r.PageSize,
		SortBy:    r.SortBy,
		SortOrder: r.SortOrder,
		Search:    r.Search,
		Role:      r.Role,
	}
}

func parseListEmployeesRequest(c *gin.Context) *ListEmployeesRequest {
	p := utils.ParsePagination(c)
	return &ListEmployeesRequest{
		Page:      p.Page,
		PageSize:  p.PageSize,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
		Search:    c.Query("search"),
		Role:      c.Query("role"),
	}
}
