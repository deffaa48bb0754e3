package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/ticket"
	"github.com/VELIFZ/mechanicshop-api/internal/infrastructure/persistence/mappers"
	"github.com/VELIFZ/mechanicshop-api/internal/infrastructure/persistence/models"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/constants"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/db"
	apperrors "github.com/VELIFZ/mechanicshop-api/internal/shared/errors"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
)

var allowedTicketOrderByFields = map[string]bool{
	"id":          true,
	"customer_id": true,
	"status":      true,
	"created_at":  true,
	"updated_at":  true,
	"closed_at":   true,
}

type TicketRepository struct {
	db     *gorm.DB
	mapper *mappers.TicketMapper
	logger logger.Interface
}

func NewTicketRepository(database *gorm.DB, log logger.Interface) ticket.Repository {
	return &TicketRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
		logger: log,
	}
}

// Save persists the ticket and its association rows. Callers wrap it in a
// transaction when parts are involved so reservation and association commit
// together.
func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create ticket", "customer_id", model.CustomerID, "error", err)
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set ticket ID: %w", err)
	}

	for _, employeeID := range t.MechanicIDs() {
		if err := tx.Create(&models.TicketMechanicModel{TicketID: model.ID, EmployeeID: employeeID}).Error; err != nil {
			return fmt.Errorf("failed to attach mechanic %d: %w", employeeID, err)
		}
	}
	for _, serviceID := range t.ServiceIDs() {
		if err := tx.Create(&models.TicketServiceModel{TicketID: model.ID, ServiceID: serviceID}).Error; err != nil {
			return fmt.Errorf("failed to attach service %d: %w", serviceID, err)
		}
	}
	for _, partID := range t.PartIDs() {
		if err := tx.Create(&models.TicketPartModel{TicketID: model.ID, PartID: partID}).Error; err != nil {
			return fmt.Errorf("failed to attach part %d: %w", partID, err)
		}
	}

	return nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("vin", "work_summary", "status", "total_cost_cents", "is_deleted", "updated_at", "closed_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update ticket", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("ticket %d not found", model.ID))
	}
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint, includeDeleted bool) (*ticket.Ticket, error) {
	var model models.TicketModel

	tx := db.GetTxFromContext(ctx, r.db)
	q := tx.Model(&models.TicketModel{})
	if !includeDeleted {
		q = q.Scopes(db.NotDeleted())
	}
	if err := q.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("ticket %d not found", id))
		}
		r.logger.Errorw("failed to get ticket", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	mechanicIDs, serviceIDs, partIDs, err := r.loadAssociations(tx, id)
	if err != nil {
		return nil, err
	}

	return r.mapper.ToDomain(&model, mechanicIDs, serviceIDs, partIDs)
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	q := tx.Model(&models.TicketModel{})

	if !filter.IncludeDeleted {
		q = q.Scopes(db.NotDeleted())
	}
	if filter.Status != nil {
		q = q.Where("status = ?", filter.Status.String())
	}
	if filter.CustomerID != nil {
		q = q.Where("customer_id = ?", *filter.CustomerID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	var ticketModels []*models.TicketModel
	q = applyOrder(q, filter.SortFilter, allowedTicketOrderByFields)
	if err := applyPage(q, filter.PageFilter).Find(&ticketModels).Error; err != nil {
		r.logger.Errorw("failed to list tickets", "error", err)
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	ids := make([]uint, 0, len(ticketModels))
	for _, model := range ticketModels {
		ids = append(ids, model.ID)
	}

	mechanics, services, parts, err := r.loadAssociationsBatch(tx, ids)
	if err != nil {
		return nil, 0, err
	}

	tickets := make([]*ticket.Ticket, 0, len(ticketModels))
	for _, model := range ticketModels {
		entity, err := r.mapper.ToDomain(model, mechanics[model.ID], services[model.ID], parts[model.ID])
		if err != nil {
			r.logger.Warnw("failed to map ticket model, skipping", "id", model.ID, "error", err)
			continue
		}
		tickets = append(tickets, entity)
	}

	return tickets, total, nil
}

func (r *TicketRepository) AddMechanic(ctx context.Context, ticketID, employeeID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(&models.TicketMechanicModel{TicketID: ticketID, EmployeeID: employeeID}).Error; err != nil {
		return fmt.Errorf("failed to attach mechanic: %w", err)
	}
	return nil
}

func (r *TicketRepository) RemoveMechanic(ctx context.Context, ticketID, employeeID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("ticket_id = ? AND employee_id = ?", ticketID, employeeID).
		Delete(&models.TicketMechanicModel{}).Error; err != nil {
		return fmt.Errorf("failed to detach mechanic: %w", err)
	}
	return nil
}

func (r *TicketRepository) AddService(ctx context.Context, ticketID, serviceID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(&models.TicketServiceModel{TicketID: ticketID, ServiceID: serviceID}).Error; err != nil {
		return fmt.Errorf("failed to attach service: %w", err)
	}
	return nil
}

func (r *TicketRepository) RemoveService(ctx context.Context, ticketID, serviceID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("ticket_id = ? AND service_id = ?", ticketID, serviceID).
		Delete(&models.TicketServiceModel{}).Error; err != nil {
		return fmt.Errorf("failed to detach service: %w", err)
	}
	return nil
}

func (r *TicketRepository) AddPart(ctx context.Context, ticketID, partID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(&models.TicketPartModel{TicketID: ticketID, PartID: partID}).Error; err != nil {
		return fmt.Errorf("failed to attach part: %w", err)
	}
	return nil
}

func (r *TicketRepository) RemovePart(ctx context.Context, ticketID, partID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("ticket_id = ? AND part_id = ?", ticketID, partID).
		Delete(&models.TicketPartModel{}).Error; err != nil {
		return fmt.Errorf("failed to detach part: %w", err)
	}
	return nil
}

// ActiveTicketIDForPart finds the non-closed, non-deleted ticket currently
// holding the part. Runs inside the caller's transaction so the exclusivity
// check and the association insert see the same state.
func (r *TicketRepository) ActiveTicketIDForPart(ctx context.Context, partID uint) (uint, bool, error) {
	var ticketIDs []uint

	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Table(constants.TableTicketParts+" AS tp").
		Joins(fmt.Sprintf("JOIN %s t ON t.id = tp.ticket_id", constants.TableTickets)).
		Where("tp.part_id = ?", partID).
		Where("t.status <> ?", ticket.StatusClosed.String()).
		Scopes(db.NotDeletedWithAlias("t")).
		Limit(1).
		Pluck("tp.ticket_id", &ticketIDs).Error
	if err != nil {
		r.logger.Errorw("failed to check part attachment", "part_id", partID, "error", err)
		return 0, false, fmt.Errorf("failed to check part attachment: %w", err)
	}

	if len(ticketIDs) == 0 {
		return 0, false, nil
	}
	return ticketIDs[0], true, nil
}

func (r *TicketRepository) loadAssociations(tx *gorm.DB, ticketID uint) (mechanicIDs, serviceIDs, partIDs []uint, err error) {
	if err = tx.Model(&models.TicketMechanicModel{}).
		Where("ticket_id = ?", ticketID).
		Pluck("employee_id", &mechanicIDs).Error; err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load ticket mechanics: %w", err)
	}
	if err = tx.Model(&models.TicketServiceModel{}).
		Where("ticket_id = ?", ticketID).
		Pluck("service_id", &serviceIDs).Error; err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load ticket services: %w", err)
	}
	if err = tx.Model(&models.TicketPartModel{}).
		Where("ticket_id = ?", ticketID).
		Pluck("part_id", &partIDs).Error; err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load ticket parts: %w", err)
	}
	return mechanicIDs, serviceIDs, partIDs, nil
}

func (r *TicketRepository) loadAssociationsBatch(tx *gorm.DB, ticketIDs []uint) (map[uint][]uint, map[uint][]uint, map[uint][]uint, error) {
	mechanics := make(map[uint][]uint)
	services := make(map[uint][]uint)
	parts := make(map[uint][]uint)

	if len(ticketIDs) == 0 {
		return mechanics, services, parts, nil
	}

	var mechanicRows []models.TicketMechanicModel
	if err := tx.Where("ticket_id IN ?", ticketIDs).Find(&mechanicRows).Error; err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load ticket mechanics: %w", err)
	}
	for _, row := range mechanicRows {
		mechanics[row.TicketID] = append(mechanics[row.TicketID], row.EmployeeID)
	}

	var serviceRows []models.TicketServiceModel
	if err := tx.Where("ticket_id IN ?", ticketIDs).Find(&serviceRows).Error; err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load ticket services: %w", err)
	}
	for _, row := range serviceRows {
		services[row.TicketID] = append(services[row.TicketID], row.ServiceID)
	}

	var partRows []models.TicketPartModel
	if err := tx.Where("ticket_id IN ?", ticketIDs).Find(&partRows).Error; err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load ticket parts: %w", err)
	}
	for _, row := range partRows {
		parts[row.TicketID] = append(parts[row.TicketID], row.PartID)
	}

	return mechanics, services, parts, nil
}
