package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	catalogUC "github.com/VELIFZ/mechanicshop-api/internal/application/catalog/usecases"
	customerUC "github.com/VELIFZ/mechanicshop-api/internal/application/customer/usecases"
	employeeUC "github.com/VELIFZ/mechanicshop-api/internal/application/employee/usecases"
	inventoryUC "github.com/VELIFZ/mechanicshop-api/internal/application/inventory/usecases"
	ticketUC "github.com/VELIFZ/mechanicshop-api/internal/application/ticket/usecases"
	"github.com/VELIFZ/mechanicshop-api/internal/domain/catalog"
	"github.com/VELIFZ/mechanicshop-api/internal/domain/customer"
	"github.com/VELIFZ/mechanicshop-api/internal/domain/employee"
	"github.com/VELIFZ/mechanicshop-api/internal/domain/inventory"
	"github.com/VELIFZ/mechanicshop-api/internal/domain/ticket"
	"github.com/VELIFZ/mechanicshop-api/internal/infrastructure/auth"
	"github.com/VELIFZ/mechanicshop-api/internal/infrastructure/config"
	"github.com/VELIFZ/mechanicshop-api/internal/infrastructure/permission"
	"github.com/VELIFZ/mechanicshop-api/internal/infrastructure/ratelimit"
	"github.com/VELIFZ/mechanicshop-api/internal/infrastructure/repository"
	cataloghandlers "github.com/VELIFZ/mechanicshop-api/internal/interfaces/http/handlers/catalog"
	customerhandlers "github.com/VELIFZ/mechanicshop-api/internal/interfaces/http/handlers/customer"
	employeehandlers "github.com/VELIFZ/mechanicshop-api/internal/interfaces/http/handlers/employee"
	inventoryhandlers "github.com/VELIFZ/mechanicshop-api/internal/interfaces/http/handlers/inventory"
	tickethandlers "github.com/VELIFZ/mechanicshop-api/internal/interfaces/http/handlers/ticket"
	"github.com/VELIFZ/mechanicshop-api/internal/interfaces/http/middleware"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/authorization"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/db"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
)

// Container wires repositories, use cases, handlers, and middleware together
// and owns the resources that need explicit shutdown.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	hdlrs *allHandlers

	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	rateLimitMiddleware  *middleware.RateLimitMiddleware

	jwtService *auth.JWTService
	hasher     *auth.BcryptPasswordHasher
	enforcer   *permission.Enforcer
	txManager  *db.TransactionManager
}

type repositories struct {
	customers customer.Repository
	employees employee.Repository
	services  catalog.Repository
	items     inventory.ItemRepository
	parts     inventory.PartRepository
	tickets   ticket.Repository
}

type allHandlers struct {
	customers *customerhandlers.CustomerHandler
	employees *employeehandlers.EmployeeHandler
	services  *cataloghandlers.ServiceHandler
	inventory *inventoryhandlers.InventoryHandler
	tickets   *tickethandlers.TicketHandler
}

// NewContainer builds the full HTTP dependency graph.
func NewContainer(database *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		db:  database,
		cfg: cfg,
		log: log,
	}

	c.engine = gin.New()
	c.engine.Use(middleware.Recovery())
	c.engine.Use(middleware.Logger(log))
	c.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	if err := c.initAuth(); err != nil {
		return nil, err
	}
	c.initRedis()
	c.initRepositories()
	c.initHandlers()
	c.registerRoutes()

	return c, nil
}

func (c *Container) initAuth() error {
	c.jwtService = auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.AccessExpMinutes)
	c.hasher = auth.NewBcryptPasswordHasher(c.cfg.Auth.Password.BcryptCost)
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtService, c.log)

	enforcer, err := permission.NewEnforcer(c.db, c.cfg.Authz.ModelPath, c.log)
	if err != nil {
		return err
	}
	if err := enforcer.SeedPolicies(); err != nil {
		return err
	}
	c.enforcer = enforcer
	c.permissionMiddleware = middleware.NewPermissionMiddleware(enforcer, c.log)
	return nil
}

// initRedis connects the Redis client backing the auth rate limiter. The
// limiter is optional: when disabled or unreachable the auth endpoints run
// unthrottled.
func (c *Container) initRedis() {
	if !c.cfg.RateLimit.Enabled {
		return
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     c.cfg.Redis.GetAddr(),
		Password: c.cfg.Redis.Password,
		DB:       c.cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		c.log.Warnw("redis unavailable, auth rate limiting disabled", "error", err)
		_ = redisClient.Close()
		return
	}
	c.log.Infow("redis connection established")

	c.redis = redisClient
	limiter := ratelimit.NewRedisRateLimiter(redisClient)
	window := time.Duration(c.cfg.RateLimit.WindowSeconds) * time.Second
	c.rateLimitMiddleware = middleware.NewRateLimitMiddleware(limiter, c.cfg.RateLimit.Requests, window)
}

func (c *Container) initRepositories() {
	c.txManager = db.NewTransactionManager(c.db)
	c.repos = &repositories{
		customers: repository.NewCustomerRepository(c.db, c.log),
		employees: repository.NewEmployeeRepository(c.db, c.log),
		services:  repository.NewServiceRepository(c.db, c.log),
		items:     repository.NewInventoryItemRepository(c.db, c.log),
		parts:     repository.NewSerializedPartRepository(c.db, c.log),
		tickets:   repository.NewTicketRepository(c.db, c.log),
	}
}

func (c *Container) initHandlers() {
	r := c.repos

	customerHandler := customerhandlers.NewCustomerHandler(
		customerUC.NewRegisterCustomerUseCase(r.customers, c.hasher, c.log),
		customerUC.NewLoginCustomerUseCase(r.customers, c.hasher, c.jwtService, c.log),
		customerUC.NewGetCustomerUseCase(r.customers, c.log),
		customerUC.NewUpdateCustomerUseCase(r.customers, c.hasher, c.log),
		customerUC.NewDeleteCustomerUseCase(r.customers, c.log),
		customerUC.NewListCustomersUseCase(r.customers, c.log),
	)

	deleteRole := authorization.ParseEmployeeRole(c.cfg.Authz.EmployeeDeleteRole)
	employeeHandler := employeehandlers.NewEmployeeHandler(
		employeeUC.NewCreateEmployeeUseCase(r.employees, c.hasher, c.log),
		employeeUC.NewLoginEmployeeUseCase(r.employees, c.hasher, c.jwtService, c.log),
		employeeUC.NewGetEmployeeUseCase(r.employees, c.log),
		employeeUC.NewUpdateEmployeeUseCase(r.employees, c.hasher, c.log),
		employeeUC.NewDeleteEmployeeUseCase(r.employees, deleteRole, c.log),
		employeeUC.NewListEmployeesUseCase(r.employees, c.log),
	)

	serviceHandler := cataloghandlers.NewServiceHandler(
		catalogUC.NewCreateServiceUseCase(r.services, c.log),
		catalogUC.NewGetServiceUseCase(r.services, c.log),
		catalogUC.NewUpdateServiceUseCase(r.services, c.log),
		catalogUC.NewDeleteServiceUseCase(r.services, c.log),
		catalogUC.NewListServicesUseCase(r.services, c.log),
	)

	inventoryHandler := inventoryhandlers.NewInventoryHandler(
		inventoryUC.NewCreateItemUseCase(r.items, c.log),
		inventoryUC.NewGetItemUseCase(r.items, c.log),
		inventoryUC.NewUpdateItemUseCase(r.items, c.log),
		inventoryUC.NewDeleteItemUseCase(r.items, c.log),
		inventoryUC.NewListItemsUseCase(r.items, c.log),
		inventoryUC.NewCreatePartUseCase(r.parts, r.items, c.log),
		inventoryUC.NewGetPartUseCase(r.parts, c.log),
		inventoryUC.NewListPartsUseCase(r.parts, c.log),
	)

	ticketHandler := tickethandlers.NewTicketHandler(
		ticketUC.NewCreateTicketUseCase(r.tickets, r.customers, r.employees, r.services, r.parts, c.txManager, c.log),
		ticketUC.NewGetTicketUseCase(r.tickets, c.log),
		ticketUC.NewListTicketsUseCase(r.tickets, c.log),
		ticketUC.NewUpdateTicketUseCase(r.tickets, c.log),
		ticketUC.NewChangeStatusUseCase(r.tickets, r.services, r.parts, r.items, c.txManager, c.cfg.Billing.TaxRatePercent, c.log),
		ticketUC.NewDeleteTicketUseCase(r.tickets, c.log),
		ticketUC.NewAttachMechanicUseCase(r.tickets, r.employees, c.log),
		ticketUC.NewDetachMechanicUseCase(r.tickets, c.log),
		ticketUC.NewAttachServiceUseCase(r.tickets, r.services, c.log),
		ticketUC.NewDetachServiceUseCase(r.tickets, c.log),
		ticketUC.NewAttachPartUseCase(r.tickets, r.parts, c.txManager, c.log),
		ticketUC.NewDetachPartUseCase(r.tickets, r.parts, c.txManager, c.log),
	)

	c.hdlrs = &allHandlers{
		customers: customerHandler,
		employees: employeeHandler,
		services:  serviceHandler,
		inventory: inventoryHandler,
		tickets:   ticketHandler,
	}
}

// Shutdown releases resources held by the container.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
