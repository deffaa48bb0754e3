// Package ticket contains the ServiceTicket aggregate: one customer visit,
// its assigned mechanics, the services performed, and the serialized parts
// consumed. All mutations go through the aggregate so lifecycle invariants
// cannot be bypassed by direct field writes.
package ticket

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors let use cases map domain failures onto the shared error
// taxonomy without string matching.
var (
	ErrTicketClosed    = errors.New("ticket is closed")
	ErrTicketDeleted   = errors.New("ticket is deleted")
	ErrAlreadyAttached = errors.New("already attached to ticket")
	ErrNotAttached     = errors.New("not attached to ticket")
	ErrBadTransition   = errors.New("invalid status transition")
	ErrCostFinalized   = errors.New("ticket cost is finalized")
)

type Ticket struct {
	id             uint
	customerID     uint
	vin            string
	workSummary    string
	status         Status
	totalCostCents *int64
	deleted        bool
	createdAt      time.Time
	updatedAt      time.Time
	closedAt       *time.Time

	mechanicIDs []uint
	serviceIDs  []uint
	partIDs     []uint
}

func NewTicket(customerID uint, vin, workSummary string) (*Ticket, error) {
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}
	if len(vin) == 0 {
		return nil, fmt.Errorf("VIN is required")
	}
	if len(vin) > 17 {
		return nil, fmt.Errorf("VIN exceeds maximum length of 17 characters")
	}
	if len(workSummary) == 0 {
		return nil, fmt.Errorf("work summary is required")
	}

	now := time.Now().UTC()
	return &Ticket{
		customerID:  customerID,
		vin:         vin,
		workSummary: workSummary,
		status:      StatusOpen,
		createdAt:   now,
		updatedAt:   now,
		mechanicIDs: []uint{},
		serviceIDs:  []uint{},
		partIDs:     []uint{},
	}, nil
}

func ReconstructTicket(
	id uint,
	customerID uint,
	vin, workSummary string,
	status Status,
	totalCostCents *int64,
	deleted bool,
	createdAt, updatedAt time.Time,
	closedAt *time.Time,
	mechanicIDs, serviceIDs, partIDs []uint,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid ticket status: %s", status)
	}

	if mechanicIDs == nil {
		mechanicIDs = []uint{}
	}
	if serviceIDs == nil {
		serviceIDs = []uint{}
	}
	if partIDs == nil {
		partIDs = []uint{}
	}

	return &Ticket{
		id:             id,
		customerID:     customerID,
		vin:            vin,
		workSummary:    workSummary,
		status:         status,
		totalCostCents: totalCostCents,
		deleted:        deleted,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		closedAt:       closedAt,
		mechanicIDs:    mechanicIDs,
		serviceIDs:     serviceIDs,
		partIDs:        partIDs,
	}, nil
}

func (t *Ticket) ID() uint              { return t.id }
func (t *Ticket) CustomerID() uint      { return t.customerID }
func (t *Ticket) VIN() string           { return t.vin }
func (t *Ticket) WorkSummary() string   { return t.workSummary }
func (t *Ticket) Status() Status        { return t.status }
func (t *Ticket) IsDeleted() bool       { return t.deleted }
func (t *Ticket) CreatedAt() time.Time  { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time  { return t.updatedAt }
func (t *Ticket) ClosedAt() *time.Time  { return t.closedAt }

// TotalCostCents is nil until the ticket closes.
func (t *Ticket) TotalCostCents() *int64 { return t.totalCostCents }

func (t *Ticket) MechanicIDs() []uint {
	out := make([]uint, len(t.mechanicIDs))
	copy(out, t.mechanicIDs)
	return out
}

func (t *Ticket) ServiceIDs() []uint {
	out := make([]uint, len(t.serviceIDs))
	copy(out, t.serviceIDs)
	return out
}

func (t *Ticket) PartIDs() []uint {
	out := make([]uint, len(t.partIDs))
	copy(out, t.partIDs)
	return out
}

func (t *Ticket) HasMechanic(id uint) bool { return contains(t.mechanicIDs, id) }
func (t *Ticket) HasService(id uint) bool  { return contains(t.serviceIDs, id) }
func (t *Ticket) HasPart(id uint) bool     { return contains(t.partIDs, id) }

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) UpdateWorkSummary(summary string) error {
	if t.status.IsClosed() {
		return ErrTicketClosed
	}
	if len(summary) == 0 {
		return fmt.Errorf("work summary cannot be empty")
	}
	t.workSummary = summary
	t.touch()
	return nil
}

// AttachMechanic links an employee to the ticket. Attaching one already on
// the ticket reports ErrAlreadyAttached; callers treat it as a no-op.
func (t *Ticket) AttachMechanic(employeeID uint) error {
	if err := t.mutable(); err != nil {
		return err
	}
	if contains(t.mechanicIDs, employeeID) {
		return ErrAlreadyAttached
	}
	t.mechanicIDs = append(t.mechanicIDs, employeeID)
	t.touch()
	return nil
}

func (t *Ticket) DetachMechanic(employeeID uint) error {
	if err := t.mutable(); err != nil {
		return err
	}
	removed, ok := remove(t.mechanicIDs, employeeID)
	if !ok {
		return ErrNotAttached
	}
	t.mechanicIDs = removed
	t.touch()
	return nil
}

func (t *Ticket) AttachService(serviceID uint) error {
	if err := t.mutable(); err != nil {
		return err
	}
	if contains(t.serviceIDs, serviceID) {
		return ErrAlreadyAttached
	}
	t.serviceIDs = append(t.serviceIDs, serviceID)
	t.touch()
	return nil
}

func (t *Ticket) DetachService(serviceID uint) error {
	if err := t.mutable(); err != nil {
		return err
	}
	removed, ok := remove(t.serviceIDs, serviceID)
	if !ok {
		return ErrNotAttached
	}
	t.serviceIDs = removed
	t.touch()
	return nil
}

// AttachPart records the part on this ticket. The cross-ticket exclusivity
// check (a part may sit on at most one non-closed ticket) is a store-level
// invariant enforced by the use case inside the write transaction; the
// aggregate only guards its own state.
func (t *Ticket) AttachPart(partID uint) error {
	if err := t.mutable(); err != nil {
		return err
	}
	if contains(t.partIDs, partID) {
		return ErrAlreadyAttached
	}
	t.partIDs = append(t.partIDs, partID)
	t.touch()
	return nil
}

func (t *Ticket) DetachPart(partID uint) error {
	if err := t.mutable(); err != nil {
		return err
	}
	removed, ok := remove(t.partIDs, partID)
	if !ok {
		return ErrNotAttached
	}
	t.partIDs = removed
	t.touch()
	return nil
}

// TransitionTo moves the ticket one step forward. Closing must go through
// Close so a cost is always persisted with the terminal state.
func (t *Ticket) TransitionTo(target Status) error {
	if !target.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrBadTransition, target.String())
	}
	if target.IsClosed() {
		return fmt.Errorf("%w: closing requires a computed cost", ErrBadTransition)
	}
	if !t.status.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s -> %s", ErrBadTransition, t.status, target)
	}
	t.status = target
	t.touch()
	return nil
}

// Close finalizes the ticket with its computed total cost. Only valid from
// in_progress; the transition and the cost are one atomic change.
func (t *Ticket) Close(totalCostCents int64) error {
	if t.status.IsClosed() {
		return ErrCostFinalized
	}
	if !t.status.CanTransitionTo(StatusClosed) {
		return fmt.Errorf("%w: %s -> %s", ErrBadTransition, t.status, StatusClosed)
	}
	if totalCostCents < 0 {
		return fmt.Errorf("total cost cannot be negative")
	}

	now := time.Now().UTC()
	t.status = StatusClosed
	t.totalCostCents = &totalCostCents
	t.closedAt = &now
	t.updatedAt = now
	return nil
}

// SoftDelete flags the ticket as logically removed. Status and
// associations are untouched so audit reads see the original record.
func (t *Ticket) SoftDelete() error {
	if t.deleted {
		return ErrTicketDeleted
	}
	t.deleted = true
	t.touch()
	return nil
}

func (t *Ticket) mutable() error {
	if t.status.IsClosed() {
		return ErrTicketClosed
	}
	return nil
}

func (t *Ticket) touch() {
	t.updatedAt = time.Now().UTC()
}

func contains(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func remove(ids []uint, id uint) ([]uint, bool) {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...), true
		}
	}
	return ids, false
}
