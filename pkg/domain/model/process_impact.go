package model

import (
	"time"

	"github.com/shiftlens/shiftlens/pkg/domain/types"
)

// SubRatings holds the five independent impact dimensions of a process on the
// 0-3 standard scale. A zero value means "not assessed"; missing dimensions
// degrade to zero, never to an error.
type SubRatings struct {
	Process          types.SubRating
	Role             types.SubRating
	NewRole          types.SubRating
	Workload         types.SubRating
	SystemComplexity types.SubRating
}

// Clamp returns a copy with every dimension coerced into the 0-3 scale.
func (s SubRatings) Clamp() SubRatings {
	return SubRatings{
		Process:          s.Process.Clamp(),
		Role:             s.Role.Clamp(),
		NewRole:          s.NewRole.Clamp(),
		Workload:         s.Workload.Clamp(),
		SystemComplexity: s.SystemComplexity.Clamp(),
	}
}

// IsValid reports whether every dimension is already within the 0-3 scale.
func (s SubRatings) IsValid() bool {
	return s.Process.IsValid() &&
		s.Role.IsValid() &&
		s.NewRole.IsValid() &&
		s.Workload.IsValid() &&
		s.SystemComplexity.IsValid()
}

// TotalPoints sums the clamped dimensions into the 0-15 aggregate range.
func (s SubRatings) TotalPoints() int {
	c := s.Clamp()
	return c.Process.Int() + c.Role.Int() + c.NewRole.Int() +
		c.Workload.Int() + c.SystemComplexity.Int()
}

// ProcessImpact is one assessed process's current/future-state comparison.
// OverallImpactRating is always derived from the sub-ratings; a stored value
// is recomputed before any analysis uses it.
type ProcessImpact struct {
	ID           int64
	AssessmentID int64
	ProcessCode  string
	Name         string

	AsIsDescription string
	ToBeDescription string
	AsIsSystem      string
	ToBeSystem      string

	Ratings             SubRatings
	WorkloadDirection   types.WorkloadDirection
	OverallImpactRating types.OverallRating
	ImpactDirection     types.ImpactDirection

	RACI RACIMatrix

	TrainingRequired bool
	Priority         types.Priority

	CreatedAt time.Time
	UpdatedAt time.Time
}
