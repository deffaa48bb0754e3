package permission

import (
	"fmt"

	"github.com/VELIFZ/mechanicshop-api/internal/shared/constants"
)

// SeedPolicies installs the default role permissions. Existing policies are
// left untouched so operators can tighten or extend them at runtime.
func (e *Enforcer) SeedPolicies() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	// Customers manage their own profile and read their own tickets; record
	// ownership is enforced in the use cases, this only gates the endpoint.
	policies := [][]string{
		{"customer", constants.ResourceCustomers, constants.ActionRead},
		{"customer", constants.ResourceCustomers, constants.ActionWrite},
		{"customer", constants.ResourceCustomers, constants.ActionDelete},
		{"customer", constants.ResourceTickets, constants.ActionRead},

		// Mechanics work tickets and look up anything they need to do so.
		{"mechanic", constants.ResourceCustomers, constants.ActionRead},
		{"mechanic", constants.ResourceServices, constants.ActionRead},
		{"mechanic", constants.ResourceInventory, constants.ActionRead},
		{"mechanic", constants.ResourceInventory, constants.ActionWrite},
		{"mechanic", constants.ResourceTickets, constants.ActionRead},
		{"mechanic", constants.ResourceTickets, constants.ActionWrite},

		// Managers additionally administer the catalog, customers and staff.
		{"manager", constants.ResourceCustomers, constants.ActionWrite},
		{"manager", constants.ResourceCustomers, constants.ActionDelete},
		{"manager", constants.ResourceServices, constants.ActionWrite},
		{"manager", constants.ResourceServices, constants.ActionDelete},
		{"manager", constants.ResourceInventory, constants.ActionDelete},
		{"manager", constants.ResourceEmployees, constants.ActionRead},
		{"manager", constants.ResourceEmployees, constants.ActionWrite},
		{"manager", constants.ResourceTickets, constants.ActionDelete},

		// Admins get everything the lower roles do not already grant.
		{"admin", constants.ResourceEmployees, constants.ActionDelete},
	}

	for _, p := range policies {
		if _, err := e.enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return fmt.Errorf("failed to seed policy %v: %w", p, err)
		}
	}

	// Role inheritance: admin > manager > mechanic.
	groupings := [][]string{
		{"manager", "mechanic"},
		{"admin", "manager"},
	}
	for _, g := range groupings {
		if _, err := e.enforcer.AddGroupingPolicy(g[0], g[1]); err != nil {
			return fmt.Errorf("failed to seed role grouping %v: %w", g, err)
		}
	}

	if err := e.enforcer.SavePolicy(); err != nil {
		return fmt.Errorf("failed to save seeded policies: %w", err)
	}

	e.logger.Info("authorization policies seeded")
	return nil
}
