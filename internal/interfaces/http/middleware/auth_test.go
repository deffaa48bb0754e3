package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VELIFZ/mechanicshop-api/internal/infrastructure/auth"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/authorization"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/constants"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
)

func authTestContext(t *testing.T, header string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/customers", nil)
	if header != "" {
		c.Request.Header.Set("Authorization", header)
	}
	return c, w
}

func TestRequireAuth(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 15)
	m := NewAuthMiddleware(jwtService, logger.NewLogger())

	t.Run("valid employee token populates the context", func(t *testing.T) {
		token, _, err := jwtService.Issue(authorization.Principal{
			ID:   2,
			Type: authorization.PrincipalEmployee,
			Role: authorization.RoleManager,
		})
		require.NoError(t, err)

		c, w := authTestContext(t, "Bearer "+token)
		m.RequireAuth()(c)

		assert.False(t, c.IsAborted())
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(2), c.MustGet(constants.ContextKeyPrincipalID))
		assert.Equal(t, "employee", c.GetString(constants.ContextKeyPrincipalType))
		assert.Equal(t, "manager", c.GetString(constants.ContextKeyEmployeeRole))
	})

	t.Run("valid customer token has no role", func(t *testing.T) {
		token, _, err := jwtService.Issue(authorization.Principal{
			ID:   7,
			Type: authorization.PrincipalCustomer,
		})
		require.NoError(t, err)

		c, _ := authTestContext(t, "Bearer "+token)
		m.RequireAuth()(c)

		assert.False(t, c.IsAborted())
		assert.Equal(t, "customer", c.GetString(constants.ContextKeyPrincipalType))
		_, hasRole := c.Get(constants.ContextKeyEmployeeRole)
		assert.False(t, hasRole)
	})

	t.Run("missing header aborts with 401", func(t *testing.T) {
		c, w := authTestContext(t, "")
		m.RequireAuth()(c)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header aborts with 401", func(t *testing.T) {
		c, w := authTestContext(t, "Token abc")
		m.RequireAuth()(c)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		other := auth.NewJWTService("other-secret", 15)
		token, _, err := other.Issue(authorization.Principal{
			ID:   7,
			Type: authorization.PrincipalCustomer,
		})
		require.NoError(t, err)

		c, w := authTestContext(t, "Bearer "+token)
		m.RequireAuth()(c)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequirePrincipal(t *testing.T) {
	m := NewAuthMiddleware(auth.NewJWTService("test-secret", 15), logger.NewLogger())

	t.Run("matching principal kind passes", func(t *testing.T) {
		c, _ := authTestContext(t, "")
		c.Set(constants.ContextKeyPrincipalID, uint(2))
		c.Set(constants.ContextKeyPrincipalType, "employee")
		c.Set(constants.ContextKeyEmployeeRole, "mechanic")

		m.RequirePrincipal(authorization.PrincipalEmployee)(c)

		assert.False(t, c.IsAborted())
	})

	t.Run("customer on an employee surface aborts with 403", func(t *testing.T) {
		c, w := authTestContext(t, "")
		c.Set(constants.ContextKeyPrincipalID, uint(7))
		c.Set(constants.ContextKeyPrincipalType, "customer")

		m.RequirePrincipal(authorization.PrincipalEmployee)(c)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("unauthenticated request aborts with 401", func(t *testing.T) {
		c, w := authTestContext(t, "")

		m.RequirePrincipal(authorization.PrincipalEmployee)(c)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
