package routes

import (
	"github.com/gin-gonic/gin"

	cataloghandlers "github.com/VELIFZ/mechanicshop-api/internal/interfaces/http/handlers/catalog"
	"github.com/VELIFZ/mechanicshop-api/internal/interfaces/http/middleware"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/constants"
)

type ServiceRouteConfig struct {
	ServiceHandler       *cataloghandlers.ServiceHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupServiceRoutes(engine *gin.Engine, config *ServiceRouteConfig) {
	services := engine.Group("/services")
	services.Use(config.AuthMiddleware.RequireAuth())
	{
		services.POST("",
			config.PermissionMiddleware.RequirePermission(constants.ResourceServices, constants.ActionWrite),
			config.ServiceHandler.CreateService)
		services.GET("",
			config.PermissionMiddleware.RequirePermission(constants.ResourceServices, constants.ActionRead),
			config.ServiceHandler.ListServices)

		services.GET("/:id",
			config.PermissionMiddleware.RequirePermission(constants.ResourceServices, constants.ActionRead),
			config.ServiceHandler.GetService)
		services.PUT("/:id",
			config.PermissionMiddleware.RequirePermission(constants.ResourceServices, constants.ActionWrite),
			config.ServiceHandler.UpdateService)
		services.DELETE("/:id",
			config.PermissionMiddleware.RequirePermission(constants.ResourceServices, constants.ActionDelete),
			config.ServiceHandler.DeleteService)
	}
}
