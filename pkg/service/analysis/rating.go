// Package analysis implements the impact rating and RACI change-analysis
// engine: pure, stateless functions over already-fetched assessment rows.
// Nothing in this package performs I/O or mutates its inputs.
package analysis

import (
	"fmt"

	"github.com/shiftlens/shiftlens/pkg/domain/model"
	"github.com/shiftlens/shiftlens/pkg/domain/types"
)

// CalculateOverallImpactRating combines the five 0-3 sub-ratings into the
// 0-5 overall impact rating. Out-of-range dimensions are clamped and missing
// ones count as zero, so the result is always a valid rating. The mapping is
// a fixed threshold table over the 0-15 point sum.
func CalculateOverallImpactRating(ratings model.SubRatings) types.OverallRating {
	return ratingForPoints(ratings.TotalPoints())
}

func ratingForPoints(totalPoints int) types.OverallRating {
	switch {
	case totalPoints <= 0:
		return 0
	case totalPoints <= 2:
		return 1
	case totalPoints <= 5:
		return 2
	case totalPoints <= 8:
		return 3
	case totalPoints <= 11:
		return 4
	default:
		return 5
	}
}

// maxTotalPoints is the point sum of five sub-ratings at the top of the scale.
const maxTotalPoints = 5 * int(types.SubRatingMax)

// OverallImpactBreakdown wraps CalculateOverallImpactRating with the
// human-readable form used by detail views: the point sum, the derived
// rating, and a "X/15 points = Label" summary string.
func OverallImpactBreakdown(ratings model.SubRatings) model.ImpactBreakdown {
	totalPoints := ratings.TotalPoints()
	rating := ratingForPoints(totalPoints)

	return model.ImpactBreakdown{
		TotalPoints:   totalPoints,
		MaxPoints:     maxTotalPoints,
		OverallRating: rating,
		Description:   rating.Label(),
		Summary:       fmt.Sprintf("%d/%d points = %s", totalPoints, maxTotalPoints, rating.Label()),
	}
}
