package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/VELIFZ/mechanicshop-api/internal/infrastructure/auth"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/authorization"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/constants"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, log logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     log,
	}
}

// RequireAuth verifies the Bearer token and places the principal into the
// request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		principal := claims.Principal()
		c.Set(constants.ContextKeyPrincipalID, principal.ID)
		c.Set(constants.ContextKeyPrincipalType, principal.Type.String())
		if principal.Type.IsEmployee() {
			c.Set(constants.ContextKeyEmployeeRole, principal.Role.String())
		}

		c.Next()
	}
}

// RequirePrincipal restricts a route group to one principal kind. It must
// run after RequireAuth.
func (m *AuthMiddleware) RequirePrincipal(principalType authorization.PrincipalType) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := authorization.PrincipalFromContext(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
			c.Abort()
			return
		}
		if principal.Type != principalType {
			utils.ErrorResponse(c, http.StatusForbidden, "access restricted to "+principalType.String()+" accounts")
			c.Abort()
			return
		}
		c.Next()
	}
}
