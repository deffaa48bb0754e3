package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/catalog"
	"github.com/VELIFZ/mechanicshop-api/internal/domain/customer"
	"github.com/VELIFZ/mechanicshop-api/internal/domain/employee"
	"github.com/VELIFZ/mechanicshop-api/internal/domain/inventory"
	"github.com/VELIFZ/mechanicshop-api/internal/domain/ticket"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
)

type CreateTicketCommand struct {
	CustomerID  uint
	VIN         string
	WorkSummary string
	ServiceIDs  []uint
	PartIDs     []uint
	MechanicIDs []uint
}

type CreateTicketResult struct {
	TicketID  uint
	Status    string
	CreatedAt time.Time
}

// CreateTicketUseCase opens a ticket and attaches its initial mechanics,
// services, and parts in one transaction. A part held by another non-closed
// ticket fails the whole operation.
type CreateTicketUseCase struct {
	ticketRepo   ticket.Repository
	customerRepo customer.Repository
	employeeRepo employee.Repository
	serviceRepo  catalog.Repository
	partRepo     inventory.PartRepository
	txManager    TransactionManager
	logger       logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	customerRepo customer.Repository,
	employeeRepo employee.Repository,
	serviceRepo catalog.Repository,
	partRepo inventory.PartRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:   ticketRepo,
		customerRepo: customerRepo,
		employeeRepo: employeeRepo,
		serviceRepo:  serviceRepo,
		partRepo:     partRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "customer_id", cmd.CustomerID, "vin", cmd.VIN)

	if cmd.CustomerID == 0 {
		return nil, errors.NewValidationError("customer ID is required")
	}

	if _, err := uc.customerRepo.GetByID(ctx, cmd.CustomerID); err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("customer %d not found", cmd.CustomerID))
		}
		uc.logger.Errorw("failed to get customer", "customer_id", cmd.CustomerID, "error", err)
		return nil, errors.NewInternalError("failed to create ticket")
	}

	newTicket, err := ticket.NewTicket(cmd.CustomerID, cmd.VIN, cmd.WorkSummary)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	for _, id := range cmd.MechanicIDs {
		if err := newTicket.AttachMechanic(id); err != nil {
			return nil, mapTicketError(err)
		}
	}
	for _, id := range cmd.ServiceIDs {
		if err := newTicket.AttachService(id); err != nil {
			return nil, mapTicketError(err)
		}
	}
	for _, id := range cmd.PartIDs {
		if err := newTicket.AttachPart(id); err != nil {
			return nil, mapTicketError(err)
		}
	}

	if err := uc.verifyReferences(ctx, cmd); err != nil {
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		// Reserve parts first: the exclusivity check and the reservation
		// must see the same snapshot as the association insert.
		for _, partID := range cmd.PartIDs {
			if err := uc.reservePart(txCtx, partID); err != nil {
				return err
			}
		}
		return uc.ticketRepo.Save(txCtx, newTicket)
	})
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, errors.NewInternalError("failed to create ticket")
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID(), "customer_id", cmd.CustomerID)

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Status:    newTicket.Status().String(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}

func (uc *CreateTicketUseCase) verifyReferences(ctx context.Context, cmd CreateTicketCommand) error {
	if len(cmd.MechanicIDs) > 0 {
		mechanics, err := uc.employeeRepo.GetByIDs(ctx, cmd.MechanicIDs)
		if err != nil {
			uc.logger.Errorw("failed to resolve mechanics", "error", err)
			return errors.NewInternalError("failed to create ticket")
		}
		if len(mechanics) != len(cmd.MechanicIDs) {
			return errors.NewNotFoundError("one or more mechanics not found")
		}
	}

	if len(cmd.ServiceIDs) > 0 {
		services, err := uc.serviceRepo.GetByIDs(ctx, cmd.ServiceIDs)
		if err != nil {
			uc.logger.Errorw("failed to resolve services", "error", err)
			return errors.NewInternalError("failed to create ticket")
		}
		if len(services) != len(cmd.ServiceIDs) {
			return errors.NewNotFoundError("one or more services not found")
		}
	}

	return nil
}

func (uc *CreateTicketUseCase) reservePart(ctx context.Context, partID uint) error {
	return reservePartForTicket(ctx, uc.partRepo, uc.ticketRepo, partID)
}
