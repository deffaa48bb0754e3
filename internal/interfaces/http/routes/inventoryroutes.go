package routes

import (
	"github.com/gin-gonic/gin"

	inventoryhandlers "github.com/VELIFZ/mechanicshop-api/internal/interfaces/http/handlers/inventory"
	"github.com/VELIFZ/mechanicshop-api/internal/interfaces/http/middleware"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/constants"
)

type InventoryRouteConfig struct {
	InventoryHandler     *inventoryhandlers.InventoryHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupInventoryRoutes(engine *gin.Engine, config *InventoryRouteConfig) {
	inventory := engine.Group("/inventory")
	inventory.Use(config.AuthMiddleware.RequireAuth())
	{
		items := inventory.Group("/items")
		{
			items.POST("",
				config.PermissionMiddleware.RequirePermission(constants.ResourceInventory, constants.ActionWrite),
				config.InventoryHandler.CreateItem)
			items.GET("",
				config.PermissionMiddleware.RequirePermission(constants.ResourceInventory, constants.ActionRead),
				config.InventoryHandler.ListItems)

			items.GET("/:id",
				config.PermissionMiddleware.RequirePermission(constants.ResourceInventory, constants.ActionRead),
				config.InventoryHandler.GetItem)
			items.PUT("/:id",
				config.PermissionMiddleware.RequirePermission(constants.ResourceInventory, constants.ActionWrite),
				config.InventoryHandler.UpdateItem)
			items.DELETE("/:id",
				config.PermissionMiddleware.RequirePermission(constants.ResourceInventory, constants.ActionDelete),
				config.InventoryHandler.DeleteItem)
		}

		parts := inventory.Group("/parts")
		{
			parts.POST("",
				config.PermissionMiddleware.RequirePermission(constants.ResourceInventory, constants.ActionWrite),
				config.InventoryHandler.CreatePart)
			parts.GET("",
				config.PermissionMiddleware.RequirePermission(constants.ResourceInventory, constants.ActionRead),
				config.InventoryHandler.ListParts)

			parts.GET("/:id",
				config.PermissionMiddleware.RequirePermission(constants.ResourceInventory, constants.ActionRead),
				config.InventoryHandler.GetPart)
		}
	}
}
