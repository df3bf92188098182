package domain

// Role enumerates campus principal roles. Values are wire-level and stored
// as-is in the database and in API responses.
type Role string

const (
	RoleStudent     Role = "student"
	RoleRA          Role = "ra"
	RoleRD          Role = "rd"
	RoleMaintenance Role = "maintenance"
)

// DefaultRole is assigned when registration omits a role.
const DefaultRole = RoleStudent

// Valid reports whether the role is one of the closed set.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleRA, RoleRD, RoleMaintenance:
		return true
	}
	return false
}

// Elevated reports whether the role may view all work orders and change
// their status. Only RDs and maintenance staff qualify; RAs are not elevated.
func (r Role) Elevated() bool {
	return r == RoleRD || r == RoleMaintenance
}
