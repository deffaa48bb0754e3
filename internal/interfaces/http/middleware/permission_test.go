package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/VELIFZ/mechanicshop-api/internal/shared/authorization"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/constants"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubEnforcer struct {
	allowed bool
	err     error

	subject  string
	resource string
	action   string
}

func (s *stubEnforcer) Enforce(subject, resource, action string) (bool, error) {
	s.subject = subject
	s.resource = resource
	s.action = action
	return s.allowed, s.err
}

func permissionTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/tickets", nil)
	return c, w
}

func TestRequirePermission(t *testing.T) {
	t.Run("employee role is the policy subject", func(t *testing.T) {
		enforcer := &stubEnforcer{allowed: true}
		m := NewPermissionMiddleware(enforcer, logger.NewLogger())

		c, w := permissionTestContext(t)
		c.Set(constants.ContextKeyPrincipalID, uint(2))
		c.Set(constants.ContextKeyPrincipalType, string(authorization.PrincipalEmployee))
		c.Set(constants.ContextKeyEmployeeRole, authorization.RoleManager.String())

		handled := false
		m.RequirePermission(constants.ResourceEmployees, constants.ActionRead)(c)
		if !c.IsAborted() {
			handled = true
		}

		assert.True(t, handled)
		assert.Equal(t, "manager", enforcer.subject)
		assert.Equal(t, constants.ResourceEmployees, enforcer.resource)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("customers use the customer subject", func(t *testing.T) {
		enforcer := &stubEnforcer{allowed: true}
		m := NewPermissionMiddleware(enforcer, logger.NewLogger())

		c, _ := permissionTestContext(t)
		c.Set(constants.ContextKeyPrincipalID, uint(7))
		c.Set(constants.ContextKeyPrincipalType, string(authorization.PrincipalCustomer))

		m.RequirePermission(constants.ResourceTickets, constants.ActionRead)(c)

		assert.False(t, c.IsAborted())
		assert.Equal(t, "customer", enforcer.subject)
	})

	t.Run("denied policy aborts with 403", func(t *testing.T) {
		enforcer := &stubEnforcer{allowed: false}
		m := NewPermissionMiddleware(enforcer, logger.NewLogger())

		c, w := permissionTestContext(t)
		c.Set(constants.ContextKeyPrincipalID, uint(7))
		c.Set(constants.ContextKeyPrincipalType, string(authorization.PrincipalCustomer))

		m.RequirePermission(constants.ResourceEmployees, constants.ActionDelete)(c)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("missing principal aborts with 401", func(t *testing.T) {
		m := NewPermissionMiddleware(&stubEnforcer{allowed: true}, logger.NewLogger())

		c, w := permissionTestContext(t)

		m.RequirePermission(constants.ResourceTickets, constants.ActionRead)(c)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("enforcer error aborts with 500", func(t *testing.T) {
		enforcer := &stubEnforcer{err: errors.New("adapter down")}
		m := NewPermissionMiddleware(enforcer, logger.NewLogger())

		c, w := permissionTestContext(t)
		c.Set(constants.ContextKeyPrincipalID, uint(7))
		c.Set(constants.ContextKeyPrincipalType, string(authorization.PrincipalCustomer))

		m.RequirePermission(constants.ResourceTickets, constants.ActionRead)(c)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
