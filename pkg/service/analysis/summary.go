package analysis

import (
	"github.com/shiftlens/shiftlens/pkg/domain/model"
	"github.com/shiftlens/shiftlens/pkg/domain/model/config"
	"github.com/shiftlens/shiftlens/pkg/domain/types"
)

// SummarizeAssessment rolls the given processes up into the portfolio view:
// per-rating heatmap buckets, the high-impact count and its severity band,
// training demand, and change-type totals. Ratings are recomputed from the
// sub-ratings, so stale stored values cannot skew the dashboard.
func SummarizeAssessment(assessmentID int64, processes []*model.ProcessImpact, policy *config.AnalysisPolicy) model.AssessmentSummary {
	if policy == nil {
		policy = config.DefaultAnalysisPolicy()
	}

	buckets := make([]model.RatingBucket, int(types.OverallRatingMax)+1)
	for i := range buckets {
		rating := types.OverallRating(i)
		buckets[i] = model.RatingBucket{Rating: rating, Label: rating.Label()}
	}

	summary := model.AssessmentSummary{
		AssessmentID: assessmentID,
		ChangeCounts: make(map[types.ChangeType]int),
	}

	for _, pi := range processes {
		if pi == nil {
			continue
		}
		summary.ProcessCount++

		rating := CalculateOverallImpactRating(pi.Ratings)
		buckets[rating.Int()].Count++

		if rating >= policy.HighImpactRating {
			summary.HighImpactCount++
		}
		if pi.TrainingRequired {
			summary.TrainingRequired++
		}
		for _, rec := range AnalyzeProcess(pi, policy) {
			summary.ChangeCounts[rec.ChangeType]++
		}
	}

	summary.RatingBuckets = buckets
	summary.Severity = ClassifySeverityByRatio(summary.HighImpactCount, summary.ProcessCount, policy)

	return summary
}
