package routes

import (
	"github.com/gin-gonic/gin"

	customerhandlers "github.com/VELIFZ/mechanicshop-api/internal/interfaces/http/handlers/customer"
	"github.com/VELIFZ/mechanicshop-api/internal/interfaces/http/middleware"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/constants"
)

type CustomerRouteConfig struct {
	CustomerHandler      *customerhandlers.CustomerHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupCustomerRoutes(engine *gin.Engine, config *CustomerRouteConfig) {
	customers := engine.Group("/customers")
	customers.Use(config.AuthMiddleware.RequireAuth())
	{
		customers.GET("",
			config.PermissionMiddleware.RequirePermission(constants.ResourceCustomers, constants.ActionRead),
			config.CustomerHandler.ListCustomers)

		customers.GET("/:id",
			config.PermissionMiddleware.RequirePermission(constants.ResourceCustomers, constants.ActionRead),
			config.CustomerHandler.GetCustomer)
		customers.PUT("/:id",
			config.PermissionMiddleware.RequirePermission(constants.ResourceCustomers, constants.ActionWrite),
			config.CustomerHandler.UpdateCustomer)
		customers.DELETE("/:id",
			config.PermissionMiddleware.RequirePermission(constants.ResourceCustomers, constants.ActionDelete),
			config.CustomerHandler.DeleteCustomer)
	}
}
