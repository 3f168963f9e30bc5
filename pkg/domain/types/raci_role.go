package types

import "fmt"

// RACIRole identifies one letter of the RACI responsibility model.
type RACIRole string

const (
	RACIResponsible RACIRole = "R"
	RACIAccountable RACIRole = "A"
	RACIConsulted   RACIRole = "C"
	RACIInformed    RACIRole = "I"
)

// AllRACIRoles returns the four RACI letters in canonical order.
func AllRACIRoles() []RACIRole {
	return []RACIRole{
		RACIResponsible,
		RACIAccountable,
		RACIConsulted,
		RACIInformed,
	}
}

// IsValid checks if the RACI role is one of the four letters.
func (r RACIRole) IsValid() bool {
	switch r {
	case RACIResponsible, RACIAccountable, RACIConsulted, RACIInformed:
		return true
	default:
		return false
	}
}

// Name returns the full name of the RACI role.
func (r RACIRole) Name() string {
	switch r {
	case RACIResponsible:
		return "Responsible"
	case RACIAccountable:
		return "Accountable"
	case RACIConsulted:
		return "Consulted"
	case RACIInformed:
		return "Informed"
	default:
		return string(r)
	}
}

// String returns the string representation of the RACI role.
func (r RACIRole) String() string {
	return string(r)
}

// ParseRACIRole parses a string into a RACIRole.
func ParseRACIRole(s string) (RACIRole, error) {
	role := RACIRole(s)
	if !role.IsValid() {
		return "", fmt.Errorf("invalid RACI role: %s", s)
	}
	return role, nil
}
