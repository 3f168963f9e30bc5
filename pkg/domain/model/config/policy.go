package config

import (
	"github.com/m-mizutani/goerr/v2"

	"github.com/shiftlens/shiftlens/pkg/domain/types"
)

// AnalysisPolicy holds the tunable constants of the change-analysis engine.
// The values are empirical policy, not derived math, so they are named and
// overridable rather than hard-coded literals.
type AnalysisPolicy struct {
	// ChangeWeights is the per-change-type weight added to the impact rating
	// when computing a record's priority.
	ChangeWeights map[types.ChangeType]int

	// Priority thresholds over totalScore = impactRating + changeWeight.
	// The same thresholds apply to per-record and whole-process priority.
	PriorityCriticalScore int
	PriorityHighScore     int
	PriorityMediumScore   int

	// Severity bands over the ratio of high-impact processes to the total.
	// Thresholds are inclusive: a ratio of exactly SeverityHighRatio is HIGH.
	SeverityCriticalRatio float64
	SeverityHighRatio     float64
	SeverityMediumRatio   float64

	// HighImpactRating is the minimum overall rating that counts a process
	// as high-impact for the severity ratio.
	HighImpactRating types.OverallRating
}

// DefaultAnalysisPolicy returns the policy constants used in production.
// Role changes and new assignments weigh more than removed assignments.
func DefaultAnalysisPolicy() *AnalysisPolicy {
	return &AnalysisPolicy{
		ChangeWeights: map[types.ChangeType]int{
			types.ChangeTypeRoleChange:        3,
			types.ChangeTypeNewAssignment:     3,
			types.ChangeTypeRemovedAssignment: 2,
		},
		PriorityCriticalScore: 7,
		PriorityHighScore:     5,
		PriorityMediumScore:   3,
		SeverityCriticalRatio: 0.5,
		SeverityHighRatio:     0.3,
		SeverityMediumRatio:   0.1,
		HighImpactRating:      4,
	}
}

// Validate checks that the policy is internally consistent.
func (p *AnalysisPolicy) Validate() error {
	for ct, w := range p.ChangeWeights {
		if !ct.IsValid() {
			return goerr.New("unknown change type in weights", goerr.V("change_type", ct))
		}
		if w < 0 {
			return goerr.New("change weight must not be negative",
				goerr.V("change_type", ct), goerr.V("weight", w))
		}
	}
	if p.PriorityCriticalScore < p.PriorityHighScore ||
		p.PriorityHighScore < p.PriorityMediumScore {
		return goerr.New("priority thresholds must be descending",
			goerr.V("critical", p.PriorityCriticalScore),
			goerr.V("high", p.PriorityHighScore),
			goerr.V("medium", p.PriorityMediumScore))
	}
	if p.SeverityCriticalRatio < p.SeverityHighRatio ||
		p.SeverityHighRatio < p.SeverityMediumRatio {
		return goerr.New("severity ratio bands must be descending",
			goerr.V("critical", p.SeverityCriticalRatio),
			goerr.V("high", p.SeverityHighRatio),
			goerr.V("medium", p.SeverityMediumRatio))
	}
	if p.SeverityMediumRatio <= 0 || p.SeverityCriticalRatio > 1 {
		return goerr.New("severity ratio bands must be within (0, 1]",
			goerr.V("critical", p.SeverityCriticalRatio),
			goerr.V("medium", p.SeverityMediumRatio))
	}
	if !p.HighImpactRating.IsValid() {
		return goerr.New("high impact rating must be within the 0-5 scale",
			goerr.V("rating", p.HighImpactRating.Int()))
	}
	return nil
}

// ChangeWeight returns the weight for the given change type, zero if unset.
func (p *AnalysisPolicy) ChangeWeight(ct types.ChangeType) int {
	if p.ChangeWeights == nil {
		return 0
	}
	return p.ChangeWeights[ct]
}
