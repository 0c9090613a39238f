// Package entity contains the core business objects of the project.
package entity

// Role represents the type of account a user holds.
type Role string

const (
	// RoleStudent is a candidate who maintains a profile.
	RoleStudent Role = "student"
	// RoleRecruiter searches the directory and records hires for one company.
	RoleRecruiter Role = "recruiter"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleRecruiter:
		return true
	default:
		return false
	}
}
