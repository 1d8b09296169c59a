// Package entity contains the core business objects of the project.
package entity

// Role represents the authorization level of a member.
type Role string

const (
	// RoleGuest indicates a social member that has not completed sign-up.
	RoleGuest Role = "GUEST"
	// RoleUser indicates a fully registered member.
	RoleUser Role = "USER"
	// RoleAdmin indicates an administrator.
	RoleAdmin Role = "ADMIN"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleGuest, RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// Authority returns the role's authority key used in security contexts.
func (r Role) Authority() string {
	return "ROLE_" + string(r)
}
