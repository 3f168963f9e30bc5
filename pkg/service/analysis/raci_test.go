package analysis_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/shiftlens/shiftlens/pkg/domain/model"
	"github.com/shiftlens/shiftlens/pkg/domain/model/config"
	"github.com/shiftlens/shiftlens/pkg/domain/types"
	"github.com/shiftlens/shiftlens/pkg/service/analysis"
)

func TestDiffRACIField(t *testing.T) {
	cases := []struct {
		name     string
		asIs     string
		toBe     string
		expected types.ChangeType
	}{
		{name: "both empty", asIs: "", toBe: "", expected: types.ChangeTypeNoChange},
		{name: "new assignment", asIs: "", toBe: "AM", expected: types.ChangeTypeNewAssignment},
		{name: "removed assignment", asIs: "AM", toBe: "", expected: types.ChangeTypeRemovedAssignment},
		{name: "role change", asIs: "AM", toBe: "DC", expected: types.ChangeTypeRoleChange},
		{name: "identical", asIs: "AM", toBe: "AM", expected: types.ChangeTypeNoChange},
		{name: "identical after trimming", asIs: " AM ", toBe: "AM", expected: types.ChangeTypeNoChange},
		{name: "whitespace only counts as empty", asIs: "   ", toBe: "DC", expected: types.ChangeTypeNewAssignment},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gt.Value(t, analysis.DiffRACIField(tc.asIs, tc.toBe)).Equal(tc.expected)
		})
	}
}

func TestComputePriority(t *testing.T) {
	t.Run("default thresholds", func(t *testing.T) {
		cases := []struct {
			rating   types.OverallRating
			weight   int
			expected types.Priority
		}{
			{rating: 0, weight: 0, expected: types.PriorityLow},
			{rating: 0, weight: 2, expected: types.PriorityLow},
			{rating: 1, weight: 2, expected: types.PriorityMedium},
			{rating: 2, weight: 2, expected: types.PriorityMedium},
			{rating: 2, weight: 3, expected: types.PriorityHigh},
			{rating: 3, weight: 3, expected: types.PriorityHigh},
			{rating: 4, weight: 3, expected: types.PriorityCritical},
			{rating: 5, weight: 3, expected: types.PriorityCritical},
		}

		for _, tc := range cases {
			gt.Value(t, analysis.ComputePriority(tc.rating, tc.weight, nil)).Equal(tc.expected)
		}
	})

	t.Run("custom thresholds", func(t *testing.T) {
		policy := config.DefaultAnalysisPolicy()
		policy.PriorityCriticalScore = 9
		policy.PriorityHighScore = 8
		policy.PriorityMediumScore = 7

		gt.Value(t, analysis.ComputePriority(5, 3, policy)).Equal(types.PriorityHigh)
		gt.Value(t, analysis.ComputePriority(5, 4, policy)).Equal(types.PriorityCritical)
		gt.Value(t, analysis.ComputePriority(5, 1, policy)).Equal(types.PriorityLow)
	})
}

func TestAnalyzeProcess(t *testing.T) {
	t.Run("no differences yield no records", func(t *testing.T) {
		pi := &model.ProcessImpact{
			ID:          1,
			ProcessCode: "P1",
			RACI: model.RACIMatrix{
				AsIs: model.RACIAssignment{Responsible: "AM"},
				ToBe: model.RACIAssignment{Responsible: "AM"},
			},
		}

		gt.Array(t, analysis.AnalyzeProcess(pi, nil)).Length(0)
	})

	t.Run("single new assignment", func(t *testing.T) {
		pi := &model.ProcessImpact{
			ID:          2,
			ProcessCode: "P2",
			RACI: model.RACIMatrix{
				ToBe: model.RACIAssignment{Responsible: "DC"},
			},
		}

		records := analysis.AnalyzeProcess(pi, nil)
		gt.Array(t, records).Length(1)
		gt.Value(t, records[0].Role).Equal(types.RACIResponsible)
		gt.Value(t, records[0].ChangeType).Equal(types.ChangeTypeNewAssignment)
		gt.Value(t, records[0].AsIsValue).Equal("")
		gt.Value(t, records[0].ToBeValue).Equal("DC")
		gt.Value(t, records[0].ProcessCode).Equal("P2")
	})

	t.Run("never emits a no-change record", func(t *testing.T) {
		pi := &model.ProcessImpact{
			ID:          3,
			ProcessCode: "P3",
			RACI: model.RACIMatrix{
				AsIs: model.RACIAssignment{
					Responsible: "AM",
					Accountable: "PM",
					Consulted:   "QA",
					Informed:    "OPS",
				},
				ToBe: model.RACIAssignment{
					Responsible: "DC", // role change
					Accountable: "PM", // unchanged
					Consulted:   "",   // removed
					Informed:    "OPS, FIN",
				},
			},
		}

		records := analysis.AnalyzeProcess(pi, nil)
		gt.Array(t, records).Length(3)
		for _, rec := range records {
			gt.Value(t, rec.ChangeType == types.ChangeTypeNoChange).Equal(false)
		}
	})

	t.Run("recomputes the impact rating from sub-ratings", func(t *testing.T) {
		pi := &model.ProcessImpact{
			ID:          4,
			ProcessCode: "P4",
			Ratings: model.SubRatings{
				Process: 3, Role: 3, NewRole: 3, Workload: 3, SystemComplexity: 3,
			},
			// Stale stored value must be ignored.
			OverallImpactRating: 1,
			RACI: model.RACIMatrix{
				ToBe: model.RACIAssignment{Accountable: "PM"},
			},
		}

		records := analysis.AnalyzeProcess(pi, nil)
		gt.Array(t, records).Length(1)
		gt.Value(t, records[0].ImpactRating).Equal(types.OverallRating(5))
		// rating 5 + new-assignment weight 3 = 8 >= 7
		gt.Value(t, records[0].Priority).Equal(types.PriorityCritical)
	})

	t.Run("change weights favor role changes over removals", func(t *testing.T) {
		policy := config.DefaultAnalysisPolicy()
		pi := &model.ProcessImpact{
			ID:          5,
			ProcessCode: "P5",
			Ratings:     model.SubRatings{Process: 2, Role: 1}, // 3 points, rating 2
			RACI: model.RACIMatrix{
				AsIs: model.RACIAssignment{Responsible: "AM", Consulted: "QA"},
				ToBe: model.RACIAssignment{Responsible: "DC"},
			},
		}

		records := analysis.AnalyzeProcess(pi, policy)
		gt.Array(t, records).Length(2)

		byRole := map[types.RACIRole]model.RACIChangeRecord{}
		for _, rec := range records {
			byRole[rec.Role] = rec
		}

		// role change: 2 + 3 = 5 -> HIGH; removal: 2 + 2 = 4 -> MEDIUM
		gt.Value(t, byRole[types.RACIResponsible].Priority).Equal(types.PriorityHigh)
		gt.Value(t, byRole[types.RACIConsulted].Priority).Equal(types.PriorityMedium)
	})

	t.Run("nil process yields no records", func(t *testing.T) {
		gt.Array(t, analysis.AnalyzeProcess(nil, nil)).Length(0)
	})
}

func TestAnalyzeProcess_EndToEnd(t *testing.T) {
	// Two processes: P1 unchanged, P2 gains a responsible role.
	p1 := &model.ProcessImpact{
		ID:          1,
		ProcessCode: "P1",
		RACI: model.RACIMatrix{
			AsIs: model.RACIAssignment{Responsible: "AM"},
			ToBe: model.RACIAssignment{Responsible: "AM"},
		},
	}
	p2 := &model.ProcessImpact{
		ID:          2,
		ProcessCode: "P2",
		RACI: model.RACIMatrix{
			ToBe: model.RACIAssignment{Responsible: "DC"},
		},
	}

	gt.Array(t, analysis.AnalyzeProcess(p1, nil)).Length(0)

	records := analysis.AnalyzeProcess(p2, nil)
	gt.Array(t, records).Length(1)
	gt.Value(t, records[0].Role).Equal(types.RACIResponsible)
	gt.Value(t, records[0].ChangeType).Equal(types.ChangeTypeNewAssignment)
}
