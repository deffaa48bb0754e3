package routes

import (
	"github.com/gin-gonic/gin"

	customerhandlers "github.com/VELIFZ/mechanicshop-api/internal/interfaces/http/handlers/customer"
	employeehandlers "github.com/VELIFZ/mechanicshop-api/internal/interfaces/http/handlers/employee"
	"github.com/VELIFZ/mechanicshop-api/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	CustomerHandler     *customerhandlers.CustomerHandler
	EmployeeHandler     *employeehandlers.EmployeeHandler
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// SetupAuthRoutes wires the unauthenticated endpoints. Login and registration
// are rate limited per client IP.
func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/auth")
	if config.RateLimitMiddleware != nil {
		auth.Use(config.RateLimitMiddleware.Limit())
	}
	{
		auth.POST("/customers/register", config.CustomerHandler.Register)
		auth.POST("/customers/login", config.CustomerHandler.Login)
		auth.POST("/employees/login", config.EmployeeHandler.Login)
	}
}
