package types

import "fmt"

// WorkloadDirection indicates whether the To-Be workload grows or shrinks.
type WorkloadDirection string

const (
	WorkloadIncrease WorkloadDirection = "INCREASE"
	WorkloadDecrease WorkloadDirection = "DECREASE"
	WorkloadNeutral  WorkloadDirection = "NEUTRAL"
)

// IsValid checks if the workload direction is valid.
func (d WorkloadDirection) IsValid() bool {
	switch d {
	case WorkloadIncrease, WorkloadDecrease, WorkloadNeutral:
		return true
	default:
		return false
	}
}

// Normalize returns the direction, treating empty as NEUTRAL.
func (d WorkloadDirection) Normalize() WorkloadDirection {
	if d == "" {
		return WorkloadNeutral
	}
	return d
}

// String returns the string representation of the workload direction.
func (d WorkloadDirection) String() string {
	return string(d)
}

// ParseWorkloadDirection parses a string into a WorkloadDirection.
func ParseWorkloadDirection(s string) (WorkloadDirection, error) {
	d := WorkloadDirection(s)
	if !d.IsValid() {
		return "", fmt.Errorf("invalid workload direction: %s", s)
	}
	return d, nil
}

// ImpactDirection indicates whether the overall change helps or hurts the
// affected organization.
type ImpactDirection string

const (
	ImpactPositive ImpactDirection = "POSITIVE"
	ImpactNegative ImpactDirection = "NEGATIVE"
	ImpactNeutral  ImpactDirection = "NEUTRAL"
)

// IsValid checks if the impact direction is valid.
func (d ImpactDirection) IsValid() bool {
	switch d {
	case ImpactPositive, ImpactNegative, ImpactNeutral:
		return true
	default:
		return false
	}
}

// Normalize returns the direction, treating empty as NEUTRAL.
func (d ImpactDirection) Normalize() ImpactDirection {
	if d == "" {
		return ImpactNeutral
	}
	return d
}

// String returns the string representation of the impact direction.
func (d ImpactDirection) String() string {
	return string(d)
}

// ParseImpactDirection parses a string into an ImpactDirection.
func ParseImpactDirection(s string) (ImpactDirection, error) {
	d := ImpactDirection(s)
	if !d.IsValid() {
		return "", fmt.Errorf("invalid impact direction: %s", s)
	}
	return d, nil
}
