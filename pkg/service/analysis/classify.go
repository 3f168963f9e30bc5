package analysis

import (
	"github.com/shiftlens/shiftlens/pkg/domain/model/config"
	"github.com/shiftlens/shiftlens/pkg/domain/types"
)

// ClassifySeverityByRatio maps the ratio of high-impact processes to the
// total into a portfolio severity band. A zero total yields SeverityNone.
// Band thresholds are inclusive: a ratio of exactly 0.3 lands in HIGH under
// the default policy.
func ClassifySeverityByRatio(matched, total int, policy *config.AnalysisPolicy) types.Severity {
	if policy == nil {
		policy = config.DefaultAnalysisPolicy()
	}
	if total <= 0 {
		return types.SeverityNone
	}

	ratio := float64(matched) / float64(total)
	switch {
	case ratio >= policy.SeverityCriticalRatio:
		return types.SeverityCritical
	case ratio >= policy.SeverityHighRatio:
		return types.SeverityHigh
	case ratio >= policy.SeverityMediumRatio:
		return types.SeverityMedium
	case ratio > 0:
		return types.SeverityLow
	default:
		return types.SeverityNone
	}
}
