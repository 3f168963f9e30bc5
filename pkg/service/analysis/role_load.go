package analysis

import (
	"sort"
	"strings"

	"github.com/shiftlens/shiftlens/pkg/domain/model"
	"github.com/shiftlens/shiftlens/pkg/domain/types"
)

type roleAccumulator struct {
	asIsCount int
	toBeCount int
	processes map[string]struct{}
}

// AggregateRoleLoad tallies how often each named role appears across the
// RACI fields of the given processes. Role names are comma-separated free
// text; tokens are trimmed and empty tokens discarded silently. The result
// is sorted by TotalLoad descending with role name as a deterministic
// tiebreak, and the per-role totals are independent of input order.
func AggregateRoleLoad(processes []*model.ProcessImpact) []model.RoleLoad {
	acc := make(map[string]*roleAccumulator)

	touch := func(name string, processCode string, toBe bool) {
		a, ok := acc[name]
		if !ok {
			a = &roleAccumulator{processes: make(map[string]struct{})}
			acc[name] = a
		}
		if toBe {
			a.toBeCount++
		} else {
			a.asIsCount++
		}
		a.processes[processCode] = struct{}{}
	}

	for _, pi := range processes {
		if pi == nil {
			continue
		}
		for _, role := range types.AllRACIRoles() {
			for _, name := range splitRoleCodes(pi.RACI.AsIs.Field(role)) {
				touch(name, pi.ProcessCode, false)
			}
			for _, name := range splitRoleCodes(pi.RACI.ToBe.Field(role)) {
				touch(name, pi.ProcessCode, true)
			}
		}
	}

	loads := make([]model.RoleLoad, 0, len(acc))
	for name, a := range acc {
		loads = append(loads, model.RoleLoad{
			RoleName:     name,
			AsIsCount:    a.asIsCount,
			ToBeCount:    a.toBeCount,
			TotalLoad:    a.asIsCount + a.toBeCount,
			ProcessCount: len(a.processes),
		})
	}

	sort.Slice(loads, func(i, j int) bool {
		if loads[i].TotalLoad != loads[j].TotalLoad {
			return loads[i].TotalLoad > loads[j].TotalLoad
		}
		return loads[i].RoleName < loads[j].RoleName
	})

	return loads
}

// splitRoleCodes tokenizes a comma-separated role-code string. Stray commas
// and whitespace are tolerated, never an error.
func splitRoleCodes(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	var codes []string
	for _, token := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(token); trimmed != "" {
			codes = append(codes, trimmed)
		}
	}
	return codes
}
