package model

import (
	"github.com/shiftlens/shiftlens/pkg/domain/types"
)

// RACIAssignment holds the free-text role assignments for one state (As-Is or
// To-Be). Each field is a comma-separable string of role codes, possibly empty.
type RACIAssignment struct {
	Responsible string
	Accountable string
	Consulted   string
	Informed    string
}

// Field returns the assignment text for the given RACI letter.
func (a RACIAssignment) Field(role types.RACIRole) string {
	switch role {
	case types.RACIResponsible:
		return a.Responsible
	case types.RACIAccountable:
		return a.Accountable
	case types.RACIConsulted:
		return a.Consulted
	case types.RACIInformed:
		return a.Informed
	default:
		return ""
	}
}

// RACIMatrix pairs the As-Is and To-Be responsibility assignments of a process.
type RACIMatrix struct {
	AsIs RACIAssignment
	ToBe RACIAssignment
}

// RACIChangeRecord is one detected difference between As-Is and To-Be
// responsibility assignment for a single RACI letter on a single process.
// Records with ChangeType NO_CHANGE are never emitted.
type RACIChangeRecord struct {
	ProcessID    int64
	ProcessCode  string
	Role         types.RACIRole
	AsIsValue    string
	ToBeValue    string
	ChangeType   types.ChangeType
	ImpactRating types.OverallRating
	Priority     types.Priority
}
