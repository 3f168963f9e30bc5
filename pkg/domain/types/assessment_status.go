package types

import "fmt"

// AssessmentStatus represents the status of an assessment
type AssessmentStatus string

const (
	AssessmentStatusDraft     AssessmentStatus = "DRAFT"
	AssessmentStatusActive    AssessmentStatus = "ACTIVE"
	AssessmentStatusCompleted AssessmentStatus = "COMPLETED"
)

// AllAssessmentStatuses returns all valid assessment statuses
func AllAssessmentStatuses() []AssessmentStatus {
	return []AssessmentStatus{
		AssessmentStatusDraft,
		AssessmentStatusActive,
		AssessmentStatusCompleted,
	}
}

// IsValid checks if the assessment status is valid
func (s AssessmentStatus) IsValid() bool {
	switch s {
	case AssessmentStatusDraft,
		AssessmentStatusActive,
		AssessmentStatusCompleted:
		return true
	default:
		return false
	}
}

// Normalize returns the status, treating empty as AssessmentStatusDraft.
func (s AssessmentStatus) Normalize() AssessmentStatus {
	if s == "" {
		return AssessmentStatusDraft
	}
	return s
}

// String returns the string representation of the assessment status
func (s AssessmentStatus) String() string {
	return string(s)
}

// ParseAssessmentStatus parses a string into an AssessmentStatus
func ParseAssessmentStatus(s string) (AssessmentStatus, error) {
	status := AssessmentStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid assessment status: %s", s)
	}
	return status, nil
}
