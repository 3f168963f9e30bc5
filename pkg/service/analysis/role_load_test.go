package analysis_test

import (
	"math/rand"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/shiftlens/shiftlens/pkg/domain/model"
	"github.com/shiftlens/shiftlens/pkg/service/analysis"
)

func TestAggregateRoleLoad(t *testing.T) {
	t.Run("counts as-is and to-be separately", func(t *testing.T) {
		processes := []*model.ProcessImpact{
			{
				ProcessCode: "P1",
				RACI: model.RACIMatrix{
					AsIs: model.RACIAssignment{Responsible: "AM", Accountable: "PM"},
					ToBe: model.RACIAssignment{Responsible: "AM, DC"},
				},
			},
		}

		loads := analysis.AggregateRoleLoad(processes)
		gt.Array(t, loads).Length(3)

		byName := map[string]model.RoleLoad{}
		for _, l := range loads {
			byName[l.RoleName] = l
		}

		gt.Value(t, byName["AM"].AsIsCount).Equal(1)
		gt.Value(t, byName["AM"].ToBeCount).Equal(1)
		gt.Value(t, byName["AM"].TotalLoad).Equal(2)
		gt.Value(t, byName["AM"].ProcessCount).Equal(1)

		gt.Value(t, byName["PM"].AsIsCount).Equal(1)
		gt.Value(t, byName["PM"].ToBeCount).Equal(0)

		gt.Value(t, byName["DC"].ToBeCount).Equal(1)
	})

	t.Run("sorted by total load descending", func(t *testing.T) {
		processes := []*model.ProcessImpact{
			{
				ProcessCode: "P1",
				RACI: model.RACIMatrix{
					AsIs: model.RACIAssignment{Responsible: "AM", Consulted: "QA"},
					ToBe: model.RACIAssignment{Responsible: "AM", Consulted: "QA"},
				},
			},
			{
				ProcessCode: "P2",
				RACI: model.RACIMatrix{
					AsIs: model.RACIAssignment{Responsible: "AM"},
					ToBe: model.RACIAssignment{Responsible: "AM"},
				},
			},
		}

		loads := analysis.AggregateRoleLoad(processes)
		gt.Array(t, loads).Length(2)
		gt.Value(t, loads[0].RoleName).Equal("AM")
		gt.Value(t, loads[0].TotalLoad).Equal(4)
		gt.Value(t, loads[0].ProcessCount).Equal(2)
		gt.Value(t, loads[1].RoleName).Equal("QA")
		gt.Value(t, loads[1].TotalLoad).Equal(2)
	})

	t.Run("ties break by role name for determinism", func(t *testing.T) {
		processes := []*model.ProcessImpact{
			{
				ProcessCode: "P1",
				RACI: model.RACIMatrix{
					AsIs: model.RACIAssignment{Responsible: "ZZ", Accountable: "AA"},
				},
			},
		}

		loads := analysis.AggregateRoleLoad(processes)
		gt.Array(t, loads).Length(2)
		gt.Value(t, loads[0].RoleName).Equal("AA")
		gt.Value(t, loads[1].RoleName).Equal("ZZ")
	})

	t.Run("malformed input degrades silently", func(t *testing.T) {
		processes := []*model.ProcessImpact{
			{
				ProcessCode: "P1",
				RACI: model.RACIMatrix{
					AsIs: model.RACIAssignment{Responsible: " AM ,, DC , "},
					ToBe: model.RACIAssignment{Responsible: ", ,"},
				},
			},
		}

		loads := analysis.AggregateRoleLoad(processes)
		gt.Array(t, loads).Length(2)

		byName := map[string]model.RoleLoad{}
		for _, l := range loads {
			byName[l.RoleName] = l
		}
		gt.Value(t, byName["AM"].AsIsCount).Equal(1)
		gt.Value(t, byName["DC"].AsIsCount).Equal(1)
	})

	t.Run("order independence of totals", func(t *testing.T) {
		processes := []*model.ProcessImpact{
			{ProcessCode: "P1", RACI: model.RACIMatrix{
				AsIs: model.RACIAssignment{Responsible: "AM, DC"},
				ToBe: model.RACIAssignment{Responsible: "DC"},
			}},
			{ProcessCode: "P2", RACI: model.RACIMatrix{
				AsIs: model.RACIAssignment{Accountable: "PM"},
				ToBe: model.RACIAssignment{Accountable: "PM, AM"},
			}},
			{ProcessCode: "P3", RACI: model.RACIMatrix{
				ToBe: model.RACIAssignment{Informed: "OPS, FIN, AM"},
			}},
		}

		baseline := analysis.AggregateRoleLoad(processes)

		rng := rand.New(rand.NewSource(42))
		for i := 0; i < 10; i++ {
			shuffled := make([]*model.ProcessImpact, len(processes))
			copy(shuffled, processes)
			rng.Shuffle(len(shuffled), func(a, b int) {
				shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
			})

			loads := analysis.AggregateRoleLoad(shuffled)
			gt.Value(t, loads).Equal(baseline)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		gt.Array(t, analysis.AggregateRoleLoad(nil)).Length(0)
	})
}
