package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "github.com/VELIFZ/mechanicshop-api/internal/interfaces/http/handlers/ticket"
	"github.com/VELIFZ/mechanicshop-api/internal/interfaces/http/middleware"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/constants"
)

type TicketRouteConfig struct {
	TicketHandler        *tickethandlers.TicketHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Any authenticated principal may open a ticket. Customers are pinned
		// to their own ID when the command is built.
		tickets.POST("",
			config.TicketHandler.CreateTicket)
		tickets.GET("",
			config.PermissionMiddleware.RequirePermission(constants.ResourceTickets, constants.ActionRead),
			config.TicketHandler.ListTickets)

		// Lifecycle and association endpoints (must come BEFORE the bare /:id routes)
		tickets.PATCH("/:id/status",
			config.PermissionMiddleware.RequirePermission(constants.ResourceTickets, constants.ActionWrite),
			config.TicketHandler.ChangeStatus)

		tickets.POST("/:id/mechanics/:employeeId",
			config.PermissionMiddleware.RequirePermission(constants.ResourceTickets, constants.ActionWrite),
			config.TicketHandler.AttachMechanic)
		tickets.DELETE("/:id/mechanics/:employeeId",
			config.PermissionMiddleware.RequirePermission(constants.ResourceTickets, constants.ActionWrite),
			config.TicketHandler.DetachMechanic)

		tickets.POST("/:id/services/:serviceId",
			config.PermissionMiddleware.RequirePermission(constants.ResourceTickets, constants.ActionWrite),
			config.TicketHandler.AttachService)
		tickets.DELETE("/:id/services/:serviceId",
			config.PermissionMiddleware.RequirePermission(constants.ResourceTickets, constants.ActionWrite),
			config.TicketHandler.DetachService)

		tickets.POST("/:id/parts/:partId",
			config.PermissionMiddleware.RequirePermission(constants.ResourceTickets, constants.ActionWrite),
			config.TicketHandler.AttachPart)
		tickets.DELETE("/:id/parts/:partId",
			config.PermissionMiddleware.RequirePermission(constants.ResourceTickets, constants.ActionWrite),
			config.TicketHandler.DetachPart)

		tickets.GET("/:id",
			config.PermissionMiddleware.RequirePermission(constants.ResourceTickets, constants.ActionRead),
			config.TicketHandler.GetTicket)
		tickets.PUT("/:id",
			config.PermissionMiddleware.RequirePermission(constants.ResourceTickets, constants.ActionWrite),
			config.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id",
			config.PermissionMiddleware.RequirePermission(constants.ResourceTickets, constants.ActionDelete),
			config.TicketHandler.DeleteTicket)
	}

	// Customer "my tickets" view. The use case pins customers to their own
	// records, so the path parameter only matters for employees.
	customerTickets := engine.Group("/customers/:id/tickets")
	customerTickets.Use(config.AuthMiddleware.RequireAuth())
	{
		customerTickets.GET("",
			config.PermissionMiddleware.RequirePermission(constants.ResourceTickets, constants.ActionRead),
			config.TicketHandler.ListCustomerTickets)
	}
}
