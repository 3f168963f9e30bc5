package types

import "fmt"

// ChangeType classifies a detected difference between As-Is and To-Be
// responsibility assignment for a single RACI letter.
type ChangeType string

const (
	ChangeTypeNewAssignment     ChangeType = "NEW_ASSIGNMENT"
	ChangeTypeRemovedAssignment ChangeType = "REMOVED_ASSIGNMENT"
	ChangeTypeRoleChange        ChangeType = "ROLE_CHANGE"
	ChangeTypeNoChange          ChangeType = "NO_CHANGE"
)

// AllChangeTypes returns all valid change types.
func AllChangeTypes() []ChangeType {
	return []ChangeType{
		ChangeTypeNewAssignment,
		ChangeTypeRemovedAssignment,
		ChangeTypeRoleChange,
		ChangeTypeNoChange,
	}
}

// IsValid checks if the change type is valid.
func (c ChangeType) IsValid() bool {
	switch c {
	case ChangeTypeNewAssignment,
		ChangeTypeRemovedAssignment,
		ChangeTypeRoleChange,
		ChangeTypeNoChange:
		return true
	default:
		return false
	}
}

// String returns the string representation of the change type.
func (c ChangeType) String() string {
	return string(c)
}

// ParseChangeType parses a string into a ChangeType.
func ParseChangeType(s string) (ChangeType, error) {
	ct := ChangeType(s)
	if !ct.IsValid() {
		return "", fmt.Errorf("invalid change type: %s", s)
	}
	return ct, nil
}
