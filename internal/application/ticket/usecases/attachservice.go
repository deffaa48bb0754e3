package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/catalog"
	"github.com/VELIFZ/mechanicshop-api/internal/domain/ticket"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
)

type AttachServiceCommand struct {
	TicketID  uint
	ServiceID uint
}

type AttachServiceUseCase struct {
	ticketRepo  ticket.Repository
	serviceRepo catalog.Repository
	logger      logger.Interface
}

func NewAttachServiceUseCase(
	ticketRepo ticket.Repository,
	serviceRepo catalog.Repository,
	logger logger.Interface,
) *AttachServiceUseCase {
	return &AttachServiceUseCase{
		ticketRepo:  ticketRepo,
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

func (uc *AttachServiceUseCase) Execute(ctx context.Context, cmd AttachServiceCommand) error {
	uc.logger.Infow("executing attach service use case", "ticket_id", cmd.TicketID, "service_id", cmd.ServiceID)

	if cmd.TicketID == 0 || cmd.ServiceID == 0 {
		return errors.NewValidationError("ticket ID and service ID are required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID, false)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
		}
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return errors.NewInternalError("failed to attach service")
	}

	if _, err := uc.serviceRepo.GetByID(ctx, cmd.ServiceID); err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewNotFoundError(fmt.Sprintf("service %d not found", cmd.ServiceID))
		}
		uc.logger.Errorw("failed to get service", "service_id", cmd.ServiceID, "error", err)
		return errors.NewInternalError("failed to attach service")
	}

	if err := t.AttachService(cmd.ServiceID); err != nil {
		// Re-attaching a listed service is a no-op.
		if stderrors.Is(err, ticket.ErrAlreadyAttached) {
			return nil
		}
		return mapTicketError(err)
	}

	if err := uc.ticketRepo.AddService(ctx, cmd.TicketID, cmd.ServiceID); err != nil {
		uc.logger.Errorw("failed to attach service", "ticket_id", cmd.TicketID, "service_id", cmd.ServiceID, "error", err)
		return errors.NewInternalError("failed to attach service")
	}

	uc.logger.Infow("service attached successfully", "ticket_id", cmd.TicketID, "service_id", cmd.ServiceID)
	return nil
}
