package usecases

import (
	"context"

	"github.com/VELIFZ/mechanicshop-api/internal/domain/catalog"
	"github.com/VELIFZ/mechanicshop-api/internal/domain/customer"
	"github.com/VELIFZ/mechanicshop-api/internal/domain/employee"
	"github.com/VELIFZ/mechanicshop-api/internal/domain/inventory"
	vo "github.com/VELIFZ/mechanicshop-api/internal/domain/inventory/valueobjects"
	"github.com/VELIFZ/mechanicshop-api/internal/domain/ticket"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc                  func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc                func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc               func(ctx context.Context, id uint, includeDeleted bool) (*ticket.Ticket, error)
	ListFunc                  func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error)
	AddMechanicFunc           func(ctx context.Context, ticketID, employeeID uint) error
	RemoveMechanicFunc        func(ctx context.Context, ticketID, employeeID uint) error
	AddServiceFunc            func(ctx context.Context, ticketID, serviceID uint) error
	RemoveServiceFunc         func(ctx context.Context, ticketID, serviceID uint) error
	AddPartFunc               func(ctx context.Context, ticketID, partID uint) error
	RemovePartFunc            func(ctx context.Context, ticketID, partID uint) error
	ActiveTicketIDForPartFunc func(ctx context.Context, partID uint) (uint, bool, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint, includeDeleted bool) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id, includeDeleted)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) AddMechanic(ctx context.Context, ticketID, employeeID uint) error {
	if m.AddMechanicFunc != nil {
		return m.AddMechanicFunc(ctx, ticketID, employeeID)
	}
	return nil
}

func (m *mockTicketRepository) RemoveMechanic(ctx context.Context, ticketID, employeeID uint) error {
	if m.RemoveMechanicFunc != nil {
		return m.RemoveMechanicFunc(ctx, ticketID, employeeID)
	}
	return nil
}

func (m *mockTicketRepository) AddService(ctx context.Context, ticketID, serviceID uint) error {
	if m.AddServiceFunc != nil {
		return m.AddServiceFunc(ctx, ticketID, serviceID)
	}
	return nil
}

func (m *mockTicketRepository) RemoveService(ctx context.Context, ticketID, serviceID uint) error {
	if m.RemoveServiceFunc != nil {
		return m.RemoveServiceFunc(ctx, ticketID, serviceID)
	}
	return nil
}

func (m *mockTicketRepository) AddPart(ctx context.Context, ticketID, partID uint) error {
	if m.AddPartFunc != nil {
		return m.AddPartFunc(ctx, ticketID, partID)
	}
	return nil
}

func (m *mockTicketRepository) RemovePart(ctx context.Context, ticketID, partID uint) error {
	if m.RemovePartFunc != nil {
		return m.RemovePartFunc(ctx, ticketID, partID)
	}
	return nil
}

func (m *mockTicketRepository) ActiveTicketIDForPart(ctx context.Context, partID uint) (uint, bool, error) {
	if m.ActiveTicketIDForPartFunc != nil {
		return m.ActiveTicketIDForPartFunc(ctx, partID)
	}
	return 0, false, nil
}

type mockCustomerRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*customer.Customer, error)
}

func (m *mockCustomerRepository) Save(ctx context.Context, c *customer.Customer) error   { return nil }
func (m *mockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error { return nil }
func (m *mockCustomerRepository) Delete(ctx context.Context, id uint) error              { return nil }

func (m *mockCustomerRepository) GetByID(ctx context.Context, id uint) (*customer.Customer, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCustomerRepository) GetByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	return nil, nil
}

func (m *mockCustomerRepository) List(ctx context.Context, filter customer.Filter) ([]*customer.Customer, int64, error) {
	return nil, 0, nil
}

type mockEmployeeRepository struct {
	GetByIDFunc  func(ctx context.Context, id uint) (*employee.Employee, error)
	GetByIDsFunc func(ctx context.Context, ids []uint) ([]*employee.Employee, error)
}

func (m *mockEmployeeRepository) Save(ctx context.Context, e *employee.Employee) error   { return nil }
func (m *mockEmployeeRepository) Update(ctx context.Context, e *employee.Employee) error { return nil }
func (m *mockEmployeeRepository) Delete(ctx context.Context, id uint) error              { return nil }

func (m *mockEmployeeRepository) GetByID(ctx context.Context, id uint) (*employee.Employee, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockEmployeeRepository) GetByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	return nil, nil
}

func (m *mockEmployeeRepository) GetByIDs(ctx context.Context, ids []uint) ([]*employee.Employee, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockEmployeeRepository) List(ctx context.Context, filter employee.Filter) ([]*employee.Employee, int64, error) {
	return nil, 0, nil
}

type mockServiceRepository struct {
	GetByIDFunc  func(ctx context.Context, id uint) (*catalog.Service, error)
	GetByIDsFunc func(ctx context.Context, ids []uint) ([]*catalog.Service, error)
}

func (m *mockServiceRepository) Save(ctx context.Context, s *catalog.Service) error   { return nil }
func (m *mockServiceRepository) Update(ctx context.Context, s *catalog.Service) error { return nil }
func (m *mockServiceRepository) Delete(ctx context.Context, id uint) error            { return nil }

func (m *mockServiceRepository) GetByID(ctx context.Context, id uint) (*catalog.Service, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockServiceRepository) GetByIDs(ctx context.Context, ids []uint) ([]*catalog.Service, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockServiceRepository) List(ctx context.Context, filter catalog.Filter) ([]*catalog.Service, int64, error) {
	return nil, 0, nil
}

type mockPartRepository struct {
	SaveFunc              func(ctx context.Context, p *inventory.SerializedPart) error
	UpdateFunc            func(ctx context.Context, p *inventory.SerializedPart) error
	TransitionStatusFunc  func(ctx context.Context, partID uint, from, to vo.PartStatus) error
	GetByIDFunc           func(ctx context.Context, id uint) (*inventory.SerializedPart, error)
	GetBySerialNumberFunc func(ctx context.Context, serial string) (*inventory.SerializedPart, error)
	GetByIDsFunc          func(ctx context.Context, ids []uint) ([]*inventory.SerializedPart, error)
	GetPricesFunc         func(ctx context.Context, partIDs []uint) ([]inventory.PartPrice, error)
}

func (m *mockPartRepository) Save(ctx context.Context, p *inventory.SerializedPart) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockPartRepository) Update(ctx context.Context, p *inventory.SerializedPart) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockPartRepository) TransitionStatus(ctx context.Context, partID uint, from, to vo.PartStatus) error {
	if m.TransitionStatusFunc != nil {
		return m.TransitionStatusFunc(ctx, partID, from, to)
	}
	return nil
}

func (m *mockPartRepository) GetByID(ctx context.Context, id uint) (*inventory.SerializedPart, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPartRepository) GetBySerialNumber(ctx context.Context, serial string) (*inventory.SerializedPart, error) {
	if m.GetBySerialNumberFunc != nil {
		return m.GetBySerialNumberFunc(ctx, serial)
	}
	return nil, nil
}

func (m *mockPartRepository) GetByIDs(ctx context.Context, ids []uint) ([]*inventory.SerializedPart, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockPartRepository) GetPrices(ctx context.Context, partIDs []uint) ([]inventory.PartPrice, error) {
	if m.GetPricesFunc != nil {
		return m.GetPricesFunc(ctx, partIDs)
	}
	return nil, nil
}

func (m *mockPartRepository) List(ctx context.Context, filter inventory.PartFilter) ([]*inventory.SerializedPart, int64, error) {
	return nil, 0, nil
}

type mockItemRepository struct {
	UpdateFunc  func(ctx context.Context, i *inventory.Item) error
	GetByIDFunc func(ctx context.Context, id uint, includeDeleted bool) (*inventory.Item, error)
}

func (m *mockItemRepository) Save(ctx context.Context, i *inventory.Item) error { return nil }

func (m *mockItemRepository) Update(ctx context.Context, i *inventory.Item) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, i)
	}
	return nil
}

func (m *mockItemRepository) GetByID(ctx context.Context, id uint, includeDeleted bool) (*inventory.Item, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id, includeDeleted)
	}
	return nil, nil
}

func (m *mockItemRepository) List(ctx context.Context, filter inventory.ItemFilter) ([]*inventory.Item, int64, error) {
	return nil, 0, nil
}

// passthroughTxManager runs the callback directly, without a database.
type passthroughTxManager struct{}

func (passthroughTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (noopLogger) With(args ...any) logger.Interface               { return noopLogger{} }
func (noopLogger) Named(name string) logger.Interface              { return noopLogger{} }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
