package inventory

import (
	"fmt"
	"time"

	vo "github.com/VELIFZ/mechanicshop-api/internal/domain/inventory/valueobjects"
)

// SerializedPart is a single physical unit of an inventory item, tracked by
// a unique serial number. Its status follows the part through the ticket
// lifecycle: in_stock -> reserved (attached to a non-closed ticket) ->
// installed (ticket closed), or back to in_stock when detached.
type SerializedPart struct {
	id           uint
	serialNumber string
	status       vo.PartStatus
	itemID       uint
	createdAt    time.Time
	updatedAt    time.Time
}

func NewSerializedPart(serialNumber string, itemID uint) (*SerializedPart, error) {
	if len(serialNumber) == 0 {
		return nil, fmt.Errorf("serial number is required")
	}
	if itemID == 0 {
		return nil, fmt.Errorf("inventory item ID is required")
	}

	now := time.Now().UTC()
	return &SerializedPart{
		serialNumber: serialNumber,
		status:       vo.StatusInStock,
		itemID:       itemID,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructSerializedPart(
	id uint,
	serialNumber string,
	status vo.PartStatus,
	itemID uint,
	createdAt, updatedAt time.Time,
) (*SerializedPart, error) {
	if id == 0 {
		return nil, fmt.Errorf("part ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid part status: %s", status)
	}
	return &SerializedPart{
		id:           id,
		serialNumber: serialNumber,
		status:       status,
		itemID:       itemID,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (p *SerializedPart) ID() uint              { return p.id }
func (p *SerializedPart) SerialNumber() string  { return p.serialNumber }
func (p *SerializedPart) Status() vo.PartStatus { return p.status }
func (p *SerializedPart) ItemID() uint          { return p.itemID }
func (p *SerializedPart) CreatedAt() time.Time  { return p.createdAt }
func (p *SerializedPart) UpdatedAt() time.Time  { return p.updatedAt }

func (p *SerializedPart) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("part ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("part ID cannot be zero")
	}
	p.id = id
	return nil
}

// Reserve marks the part as held by a non-closed ticket.
func (p *SerializedPart) Reserve() error {
	if !p.status.IsInStock() {
		return fmt.Errorf("part %s is not in stock", p.serialNumber)
	}
	p.status = vo.StatusReserved
	p.updatedAt = time.Now().UTC()
	return nil
}

// Release returns a reserved part to stock when it is detached from a
// ticket before closing.
func (p *SerializedPart) Release() error {
	if !p.status.IsReserved() {
		return fmt.Errorf("part %s is not reserved", p.serialNumber)
	}
	p.status = vo.StatusInStock
	p.updatedAt = time.Now().UTC()
	return nil
}

// Install marks the part as consumed by a closed ticket. Terminal.
func (p *SerializedPart) Install() error {
	if p.status.IsInstalled() {
		return fmt.Errorf("part %s is already installed", p.serialNumber)
	}
	p.status = vo.StatusInstalled
	p.updatedAt = time.Now().UTC()
	return nil
}
