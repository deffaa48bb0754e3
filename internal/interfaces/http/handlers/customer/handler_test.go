package customer

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VELIFZ/mechanicshop-api/internal/application/customer/usecases"
	domain "github.com/VELIFZ/mechanicshop-api/internal/domain/customer"
	"github.com/VELIFZ/mechanicshop-api/internal/interfaces/http/handlers/testutil"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
)

type mockRegisterUC struct {
	result *usecases.RegisterCustomerResult
	err    error
}

func (m *mockRegisterUC) Execute(ctx context.Context, cmd usecases.RegisterCustomerCommand) (*usecases.RegisterCustomerResult, error) {
	return m.result, m.err
}

type mockLoginUC struct {
	result *usecases.LoginCustomerResult
	err    error
}

func (m *mockLoginUC) Execute(ctx context.Context, cmd usecases.LoginCustomerCommand) (*usecases.LoginCustomerResult, error) {
	return m.result, m.err
}

type mockGetUC struct {
	result *usecases.GetCustomerResult
	err    error
	query  usecases.GetCustomerQuery
}

func (m *mockGetUC) Execute(ctx context.Context, query usecases.GetCustomerQuery) (*usecases.GetCustomerResult, error) {
	m.query = query
	return m.result, m.err
}

type mockUpdateUC struct {
	result *usecases.UpdateCustomerResult
	err    error
}

func (m *mockUpdateUC) Execute(ctx context.Context, cmd usecases.UpdateCustomerCommand) (*usecases.UpdateCustomerResult, error) {
	return m.result, m.err
}

type mockDeleteUC struct {
	err error
	cmd usecases.DeleteCustomerCommand
}

func (m *mockDeleteUC) Execute(ctx context.Context, cmd usecases.DeleteCustomerCommand) error {
	m.cmd = cmd
	return m.err
}

type mockListUC struct {
	result *usecases.ListCustomersResult
	err    error
}

func (m *mockListUC) Execute(ctx context.Context, query usecases.ListCustomersQuery) (*usecases.ListCustomersResult, error) {
	return m.result, m.err
}

func testCustomer(t *testing.T) *domain.Customer {
	t.Helper()
	now := time.Now()
	c, err := domain.ReconstructCustomer(7, "Dana Reyes", "dana@example.com", "555-0100", "hash", now, now)
	require.NoError(t, err)
	return c
}

func newTestHandler(
	register *mockRegisterUC,
	login *mockLoginUC,
	get *mockGetUC,
	update *mockUpdateUC,
	del *mockDeleteUC,
	list *mockListUC,
) *CustomerHandler {
	if register == nil {
		register = &mockRegisterUC{}
	}
	if login == nil {
		login = &mockLoginUC{}
	}
	if get == nil {
		get = &mockGetUC{}
	}
	if update == nil {
		update = &mockUpdateUC{}
	}
	if del == nil {
		del = &mockDeleteUC{}
	}
	if list == nil {
		list = &mockListUC{}
	}
	return NewCustomerHandler(register, login, get, update, del, list)
}

func TestCustomerHandler_Register_Success(t *testing.T) {
	mockUC := &mockRegisterUC{result: &usecases.RegisterCustomerResult{
		CustomerID: 7,
		Name:       "Dana Reyes",
		Email:      "dana@example.com",
		CreatedAt:  time.Now(),
	}}
	handler := newTestHandler(mockUC, nil, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/customers/register", RegisterCustomerRequest{
		Name:     "Dana Reyes",
		Email:    "dana@example.com",
		Password: "s3cret-pass",
	})

	handler.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestCustomerHandler_Register_InvalidBody(t *testing.T) {
	handler := newTestHandler(nil, nil, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/customers/register", map[string]string{
		"name": "no email or password",
	})

	handler.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCustomerHandler_Register_DuplicateEmail(t *testing.T) {
	mockUC := &mockRegisterUC{err: errors.NewConflictError("email already registered")}
	handler := newTestHandler(mockUC, nil, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/customers/register", RegisterCustomerRequest{
		Name:     "Dana Reyes",
		Email:    "dana@example.com",
		Password: "s3cret-pass",
	})

	handler.Register(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCustomerHandler_Login_Success(t *testing.T) {
	mockUC := &mockLoginUC{result: &usecases.LoginCustomerResult{
		Customer:    testCustomer(t),
		AccessToken: "token-abc",
		ExpiresIn:   900,
	}}
	handler := newTestHandler(nil, mockUC, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/customers/login", LoginCustomerRequest{
		Email:    "dana@example.com",
		Password: "s3cret-pass",
	})

	handler.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, string(resp.Data), "token-abc")
}

func TestCustomerHandler_Login_BadCredentials(t *testing.T) {
	mockUC := &mockLoginUC{err: errors.NewUnauthorizedError("invalid credentials")}
	handler := newTestHandler(nil, mockUC, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/customers/login", LoginCustomerRequest{
		Email:    "dana@example.com",
		Password: "wrong",
	})

	handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCustomerHandler_GetCustomer_Success(t *testing.T) {
	mockUC := &mockGetUC{result: &usecases.GetCustomerResult{Customer: testCustomer(t)}}
	handler := newTestHandler(nil, nil, mockUC, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/customers/7", nil)
	testutil.SetURLParam(c, "id", "7")
	testutil.SetCustomerContext(c, 7)

	handler.GetCustomer(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), mockUC.query.CustomerID)
	assert.Equal(t, uint(7), mockUC.query.Requester.ID)
}

func TestCustomerHandler_GetCustomer_InvalidID(t *testing.T) {
	handler := newTestHandler(nil, nil, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/customers/abc", nil)
	testutil.SetURLParam(c, "id", "abc")

	handler.GetCustomer(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCustomerHandler_GetCustomer_NotAuthenticated(t *testing.T) {
	handler := newTestHandler(nil, nil, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/customers/7", nil)
	testutil.SetURLParam(c, "id", "7")

	handler.GetCustomer(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCustomerHandler_GetCustomer_Forbidden(t *testing.T) {
	mockUC := &mockGetUC{err: errors.NewForbiddenError("access denied")}
	handler := newTestHandler(nil, nil, mockUC, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/customers/7", nil)
	testutil.SetURLParam(c, "id", "7")
	testutil.SetCustomerContext(c, 99)

	handler.GetCustomer(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCustomerHandler_UpdateCustomer_Success(t *testing.T) {
	mockUC := &mockUpdateUC{result: &usecases.UpdateCustomerResult{Customer: testCustomer(t)}}
	handler := newTestHandler(nil, nil, nil, mockUC, nil, nil)

	name := "Dana R."
	c, w := testutil.NewTestContext(http.MethodPut, "/customers/7", UpdateCustomerRequest{Name: &name})
	testutil.SetURLParam(c, "id", "7")
	testutil.SetCustomerContext(c, 7)

	handler.UpdateCustomer(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCustomerHandler_DeleteCustomer_Success(t *testing.T) {
	mockUC := &mockDeleteUC{}
	handler := newTestHandler(nil, nil, nil, nil, mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodDelete, "/customers/7", nil)
	testutil.SetURLParam(c, "id", "7")
	testutil.SetCustomerContext(c, 7)

	handler.DeleteCustomer(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, uint(7), mockUC.cmd.CustomerID)
}

func TestCustomerHandler_ListCustomers_Success(t *testing.T) {
	mockUC := &mockListUC{result: &usecases.ListCustomersResult{
		Customers: []*domain.Customer{testCustomer(t)},
		Total:     1,
		Page:      1,
		PageSize:  10,
	}}
	handler := newTestHandler(nil, nil, nil, nil, nil, mockUC)

	c, w := testutil.NewTestContext(http.MethodGet, "/customers", nil)
	testutil.SetQueryParams(c, map[string]string{"search": "dana"})

	handler.ListCustomers(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, string(resp.Data), "dana@example.com")
}
