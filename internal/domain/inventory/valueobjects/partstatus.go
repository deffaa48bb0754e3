package valueobjects

import "fmt"

// PartStatus tracks where a serialized part is in its physical lifecycle.
type PartStatus string

const (
	// StatusInStock means the part sits on the shelf and may be attached
	// to a ticket.
	StatusInStock PartStatus = "in_stock"
	// StatusReserved means the part is attached to a non-closed ticket.
	StatusReserved PartStatus = "reserved"
	// StatusInstalled means the part was consumed by a closed ticket.
	StatusInstalled PartStatus = "installed"
)

var validPartStatuses = map[PartStatus]bool{
	StatusInStock:   true,
	StatusReserved:  true,
	StatusInstalled: true,
}

func (s PartStatus) String() string {
	return string(s)
}

func (s PartStatus) IsValid() bool {
	return validPartStatuses[s]
}

func (s PartStatus) IsInStock() bool {
	return s == StatusInStock
}

func (s PartStatus) IsReserved() bool {
	return s == StatusReserved
}

func (s PartStatus) IsInstalled() bool {
	return s == StatusInstalled
}

func NewPartStatus(s string) (PartStatus, error) {
	ps := PartStatus(s)
	if !ps.IsValid() {
		return "", fmt.Errorf("invalid part status: %s", s)
	}
	return ps, nil
}
