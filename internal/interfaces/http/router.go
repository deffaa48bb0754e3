package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/VELIFZ/mechanicshop-api/internal/interfaces/http/routes"
)

func (c *Container) registerRoutes() {
	c.engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(c.engine, &routes.AuthRouteConfig{
		CustomerHandler:     c.hdlrs.customers,
		EmployeeHandler:     c.hdlrs.employees,
		RateLimitMiddleware: c.rateLimitMiddleware,
	})

	routes.SetupCustomerRoutes(c.engine, &routes.CustomerRouteConfig{
		CustomerHandler:      c.hdlrs.customers,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupEmployeeRoutes(c.engine, &routes.EmployeeRouteConfig{
		EmployeeHandler:      c.hdlrs.employees,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupServiceRoutes(c.engine, &routes.ServiceRouteConfig{
		ServiceHandler:       c.hdlrs.services,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupInventoryRoutes(c.engine, &routes.InventoryRouteConfig{
		InventoryHandler:     c.hdlrs.inventory,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupTicketRoutes(c.engine, &routes.TicketRouteConfig{
		TicketHandler:        c.hdlrs.tickets,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})
}

// Engine exposes the underlying gin engine, mainly for tests.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Run serves HTTP until ctx is cancelled, then drains in-flight requests.
func (c *Container) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           c.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	c.log.Infow("http server started", "addr", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	c.log.Infow("http server stopped")
	return nil
}
