package analysis

import (
	"strings"

	"github.com/shiftlens/shiftlens/pkg/domain/model"
	"github.com/shiftlens/shiftlens/pkg/domain/model/config"
	"github.com/shiftlens/shiftlens/pkg/domain/types"
)

// DiffRACIField classifies the difference between the As-Is and To-Be text
// of a single RACI letter. Whitespace-only values count as "no role present".
func DiffRACIField(asIs, toBe string) types.ChangeType {
	asIs = strings.TrimSpace(asIs)
	toBe = strings.TrimSpace(toBe)

	switch {
	case asIs == "" && toBe != "":
		return types.ChangeTypeNewAssignment
	case asIs != "" && toBe == "":
		return types.ChangeTypeRemovedAssignment
	case asIs == toBe:
		return types.ChangeTypeNoChange
	default:
		return types.ChangeTypeRoleChange
	}
}

// ComputePriority buckets the sum of an impact rating and a change weight.
// The same thresholds serve per-record and whole-process prioritization so
// the UI never shows divergent labels for the same score.
func ComputePriority(rating types.OverallRating, changeWeight int, policy *config.AnalysisPolicy) types.Priority {
	if policy == nil {
		policy = config.DefaultAnalysisPolicy()
	}

	totalScore := rating.Int() + changeWeight
	switch {
	case totalScore >= policy.PriorityCriticalScore:
		return types.PriorityCritical
	case totalScore >= policy.PriorityHighScore:
		return types.PriorityHigh
	case totalScore >= policy.PriorityMediumScore:
		return types.PriorityMedium
	default:
		return types.PriorityLow
	}
}

// AnalyzeProcess diffs all four RACI letters of a process and returns one
// change record per actual difference. NO_CHANGE results are suppressed.
// The overall impact rating is recomputed from the sub-ratings rather than
// trusting the stored value, which may be stale.
func AnalyzeProcess(pi *model.ProcessImpact, policy *config.AnalysisPolicy) []model.RACIChangeRecord {
	if pi == nil {
		return nil
	}
	if policy == nil {
		policy = config.DefaultAnalysisPolicy()
	}

	rating := CalculateOverallImpactRating(pi.Ratings)

	var records []model.RACIChangeRecord
	for _, role := range types.AllRACIRoles() {
		asIs := pi.RACI.AsIs.Field(role)
		toBe := pi.RACI.ToBe.Field(role)

		changeType := DiffRACIField(asIs, toBe)
		if changeType == types.ChangeTypeNoChange {
			continue
		}

		records = append(records, model.RACIChangeRecord{
			ProcessID:    pi.ID,
			ProcessCode:  pi.ProcessCode,
			Role:         role,
			AsIsValue:    strings.TrimSpace(asIs),
			ToBeValue:    strings.TrimSpace(toBe),
			ChangeType:   changeType,
			ImpactRating: rating,
			Priority:     ComputePriority(rating, policy.ChangeWeight(changeType), policy),
		})
	}

	return records
}
