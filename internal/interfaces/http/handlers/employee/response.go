package employee

import (
	"time"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/employee"
)

type EmployeeResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Role        string    `json:"role"`
	SalaryCents int64     `json:"salary_cents"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewEmployeeResponse(e *employee.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          e.ID(),
		Name:        e.Name(),
		Email:       e.Email(),
		Phone:       e.Phone(),
		Role:        e.Role().String(),
		SalaryCents: e.SalaryCents(),
		CreatedAt:   e.CreatedAt(),
		UpdatedAt:   e.UpdatedAt(),
	}
}

func NewEmployeeListResponse(employees []*employee.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, NewEmployeeResponse(e))
	}
	return out
}

type LoginResponse struct {
	Employee    EmployeeResponse `json:"employee"`
	AccessToken string           `json:"access_token"`
	ExpiresIn   int64            `json:"expires_in"`
}
