package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/employee"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/authorization"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
)

func reconstructEmployee(t *testing.T, id uint, role authorization.EmployeeRole) *employee.Employee {
	t.Helper()
	e, err := employee.ReconstructEmployee(
		id, "Sam Smith", "sam@example.com", "", "hash", role, 500000,
		time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return e
}

func TestDeleteEmployeeUseCase_Execute(t *testing.T) {
	var deletedID uint
	repo := &mockEmployeeRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*employee.Employee, error) {
			return reconstructEmployee(t, id, authorization.RoleMechanic), nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			deletedID = id
			return nil
		},
	}
	uc := NewDeleteEmployeeUseCase(repo, authorization.RoleAdmin, noopLogger{})

	err := uc.Execute(context.Background(), DeleteEmployeeCommand{
		EmployeeID: 9,
		Requester:  authorization.Principal{ID: 1, Type: authorization.PrincipalEmployee, Role: authorization.RoleAdmin},
	})

	require.NoError(t, err)
	assert.Equal(t, uint(9), deletedID)
}

func TestDeleteEmployeeUseCase_RoleChecks(t *testing.T) {
	repo := &mockEmployeeRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*employee.Employee, error) {
			return reconstructEmployee(t, id, authorization.RoleMechanic), nil
		},
	}

	tests := []struct {
		name         string
		requiredRole authorization.EmployeeRole
		requester    authorization.Principal
		wantErr      bool
	}{
		{
			"mechanic cannot delete when admin required",
			authorization.RoleAdmin,
			authorization.Principal{ID: 1, Type: authorization.PrincipalEmployee, Role: authorization.RoleMechanic},
			true,
		},
		{
			"manager allowed when manager required",
			authorization.RoleManager,
			authorization.Principal{ID: 1, Type: authorization.PrincipalEmployee, Role: authorization.RoleManager},
			false,
		},
		{
			"admin always allowed",
			authorization.RoleManager,
			authorization.Principal{ID: 1, Type: authorization.PrincipalEmployee, Role: authorization.RoleAdmin},
			false,
		},
		{
			"customers never allowed",
			authorization.RoleAdmin,
			authorization.Principal{ID: 1, Type: authorization.PrincipalCustomer},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewDeleteEmployeeUseCase(repo, tt.requiredRole, noopLogger{})
			err := uc.Execute(context.Background(), DeleteEmployeeCommand{EmployeeID: 9, Requester: tt.requester})
			if tt.wantErr {
				assert.True(t, errors.IsForbiddenError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDeleteEmployeeUseCase_SelfDelete(t *testing.T) {
	uc := NewDeleteEmployeeUseCase(&mockEmployeeRepository{}, authorization.RoleAdmin, noopLogger{})

	err := uc.Execute(context.Background(), DeleteEmployeeCommand{
		EmployeeID: 5,
		Requester:  authorization.Principal{ID: 5, Type: authorization.PrincipalEmployee, Role: authorization.RoleAdmin},
	})

	assert.True(t, errors.IsConflictError(err))
}

func TestCreateEmployeeUseCase_Execute(t *testing.T) {
	repo := &mockEmployeeRepository{
		SaveFunc: func(ctx context.Context, e *employee.Employee) error {
			return e.SetID(3)
		},
	}
	uc := NewCreateEmployeeUseCase(repo, &mockPasswordHasher{}, noopLogger{})

	result, err := uc.Execute(context.Background(), CreateEmployeeCommand{
		Name:        "Sam Smith",
		Email:       "sam@example.com",
		Password:    "sturdy pass1",
		Role:        "mechanic",
		SalaryCents: 4500000,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(3), result.EmployeeID)
	assert.Equal(t, "mechanic", result.Role)
}

func TestCreateEmployeeUseCase_InvalidRole(t *testing.T) {
	uc := NewCreateEmployeeUseCase(&mockEmployeeRepository{}, &mockPasswordHasher{}, noopLogger{})

	_, err := uc.Execute(context.Background(), CreateEmployeeCommand{
		Name:     "Sam Smith",
		Email:    "sam@example.com",
		Password: "sturdy pass1",
		Role:     "janitor",
	})

	assert.True(t, errors.IsValidationError(err))
}
