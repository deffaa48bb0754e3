// Package authorization defines the principal model: who is making the
// request (customer or employee) and, for employees, which shop role they
// hold.
package authorization

// PrincipalType distinguishes the two authenticated actor kinds.
type PrincipalType string

const (
	PrincipalCustomer PrincipalType = "customer"
	PrincipalEmployee PrincipalType = "employee"
)

func (p PrincipalType) String() string {
	return string(p)
}

func (p PrincipalType) IsCustomer() bool {
	return p == PrincipalCustomer
}

func (p PrincipalType) IsEmployee() bool {
	return p == PrincipalEmployee
}

func (p PrincipalType) IsValid() bool {
	return p == PrincipalCustomer || p == PrincipalEmployee
}

// ParsePrincipalType parses a string into a PrincipalType; unknown values
// resolve to customer, the least privileged kind.
func ParsePrincipalType(s string) PrincipalType {
	p := PrincipalType(s)
	if p.IsValid() {
		return p
	}
	return PrincipalCustomer
}

// EmployeeRole is the shop role carried by employee principals.
type EmployeeRole string

const (
	RoleMechanic EmployeeRole = "mechanic"
	RoleManager  EmployeeRole = "manager"
	RoleAdmin    EmployeeRole = "admin"
)

func (r EmployeeRole) String() string {
	return string(r)
}

func (r EmployeeRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r EmployeeRole) IsValid() bool {
	return r == RoleMechanic || r == RoleManager || r == RoleAdmin
}

// ParseEmployeeRole parses a string into an EmployeeRole; unknown values
// resolve to mechanic, the least privileged role.
func ParseEmployeeRole(s string) EmployeeRole {
	r := EmployeeRole(s)
	if r.IsValid() {
		return r
	}
	return RoleMechanic
}

// Principal is the resolved identity of the requester.
type Principal struct {
	ID   uint
	Type PrincipalType
	Role EmployeeRole // zero value for customers
}

// CanAccessOwnedResource reports whether the principal may act on a
// customer-owned resource. Employees may; customers only on their own.
func (p Principal) CanAccessOwnedResource(ownerCustomerID uint) bool {
	if p.Type.IsEmployee() {
		return true
	}
	return p.ID == ownerCustomerID
}
