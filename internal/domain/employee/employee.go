// Package employee contains the Employee aggregate and its repository
// contract. Employees are the shop staff: mechanics, managers, and admins.
package employee

import (
	"fmt"
	"strings"
	"time"

	"github.com/VELIFZ/mechanicshop-api/internal/shared/authorization"
)

type Employee struct {
	id           uint
	name         string
	email        string
	phone        string
	passwordHash string
	role         authorization.EmployeeRole
	salaryCents  int64
	createdAt    time.Time
	updatedAt    time.Time
}

func NewEmployee(name, email, phone, passwordHash string, role authorization.EmployeeRole, salaryCents int64) (*Employee, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if salaryCents < 0 {
		return nil, fmt.Errorf("salary cannot be negative")
	}

	now := time.Now().UTC()
	return &Employee{
		name:         name,
		email:        email,
		phone:        phone,
		passwordHash: passwordHash,
		role:         role,
		salaryCents:  salaryCents,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructEmployee(
	id uint,
	name, email, phone, passwordHash string,
	role authorization.EmployeeRole,
	salaryCents int64,
	createdAt, updatedAt time.Time,
) (*Employee, error) {
	if id == 0 {
		return nil, fmt.Errorf("employee ID cannot be zero")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	return &Employee{
		id:           id,
		name:         name,
		email:        email,
		phone:        phone,
		passwordHash: passwordHash,
		role:         role,
		salaryCents:  salaryCents,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (e *Employee) ID() uint                         { return e.id }
func (e *Employee) Name() string                     { return e.name }
func (e *Employee) Email() string                    { return e.email }
func (e *Employee) Phone() string                    { return e.phone }
func (e *Employee) PasswordHash() string             { return e.passwordHash }
func (e *Employee) Role() authorization.EmployeeRole { return e.role }
func (e *Employee) SalaryCents() int64               { return e.salaryCents }
func (e *Employee) CreatedAt() time.Time             { return e.createdAt }
func (e *Employee) UpdatedAt() time.Time             { return e.updatedAt }

func (e *Employee) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("employee ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("employee ID cannot be zero")
	}
	e.id = id
	return nil
}

func (e *Employee) UpdateProfile(name, email, phone string) {
	if name != "" {
		e.name = name
	}
	if email != "" {
		e.email = strings.ToLower(strings.TrimSpace(email))
	}
	if phone != "" {
		e.phone = phone
	}
	e.updatedAt = time.Now().UTC()
}

func (e *Employee) ChangeRole(role authorization.EmployeeRole) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	e.role = role
	e.updatedAt = time.Now().UTC()
	return nil
}

func (e *Employee) ChangePasswordHash(hash string) error {
	if len(hash) == 0 {
		return fmt.Errorf("password hash cannot be empty")
	}
	e.passwordHash = hash
	e.updatedAt = time.Now().UTC()
	return nil
}

func (e *Employee) ChangeSalary(salaryCents int64) error {
	if salaryCents < 0 {
		return fmt.Errorf("salary cannot be negative")
	}
	e.salaryCents = salaryCents
	e.updatedAt = time.Now().UTC()
	return nil
}
