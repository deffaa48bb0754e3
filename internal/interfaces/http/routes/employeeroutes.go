package routes

import (
	"github.com/gin-gonic/gin"

	employeehandlers "github.com/VELIFZ/mechanicshop-api/internal/interfaces/http/handlers/employee"
	"github.com/VELIFZ/mechanicshop-api/internal/interfaces/http/middleware"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/authorization"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/constants"
)

type EmployeeRouteConfig struct {
	EmployeeHandler      *employeehandlers.EmployeeHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupEmployeeRoutes(engine *gin.Engine, config *EmployeeRouteConfig) {
	employees := engine.Group("/employees")
	employees.Use(
		config.AuthMiddleware.RequireAuth(),
		config.AuthMiddleware.RequirePrincipal(authorization.PrincipalEmployee),
	)
	{
		employees.POST("",
			config.PermissionMiddleware.RequirePermission(constants.ResourceEmployees, constants.ActionWrite),
			config.EmployeeHandler.CreateEmployee)
		employees.GET("",
			config.PermissionMiddleware.RequirePermission(constants.ResourceEmployees, constants.ActionRead),
			config.EmployeeHandler.ListEmployees)

		employees.GET("/:id",
			config.PermissionMiddleware.RequirePermission(constants.ResourceEmployees, constants.ActionRead),
			config.EmployeeHandler.GetEmployee)
		employees.PUT("/:id",
			config.PermissionMiddleware.RequirePermission(constants.ResourceEmployees, constants.ActionWrite),
			config.EmployeeHandler.UpdateEmployee)
		employees.DELETE("/:id",
			config.PermissionMiddleware.RequirePermission(constants.ResourceEmployees, constants.ActionDelete),
			config.EmployeeHandler.DeleteEmployee)
	}
}
