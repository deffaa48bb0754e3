package authorization

import (
	"github.com/gin-gonic/gin"

	"github.com/VELIFZ/mechanicshop-api/internal/shared/constants"
)

// PrincipalFromContext rebuilds the principal set by the auth middleware.
func PrincipalFromContext(c *gin.Context) (Principal, bool) {
	id, exists := c.Get(constants.ContextKeyPrincipalID)
	if !exists {
		return Principal{}, false
	}
	principalID, ok := id.(uint)
	if !ok {
		return Principal{}, false
	}
	p := Principal{
		ID:   principalID,
		Type: ParsePrincipalType(c.GetString(constants.ContextKeyPrincipalType)),
	}
	if p.Type.IsEmployee() {
		p.Role = ParseEmployeeRole(c.GetString(constants.ContextKeyEmployeeRole))
	}
	return p, true
}
