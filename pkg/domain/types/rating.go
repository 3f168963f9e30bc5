package types

import "fmt"

// SubRating is a single impact dimension rated on the 0-3 standard scale
// (process, role, new role, workload, system complexity).
type SubRating int

// SubRatingMax is the upper bound of the standard dimension scale.
const SubRatingMax SubRating = 3

// IsValid checks if the sub-rating is within the 0-3 scale.
func (r SubRating) IsValid() bool {
	return r >= 0 && r <= SubRatingMax
}

// Clamp coerces the sub-rating into the 0-3 scale. Out-of-range values are a
// caller contract violation; clamping keeps aggregate computations alive.
func (r SubRating) Clamp() SubRating {
	if r < 0 {
		return 0
	}
	if r > SubRatingMax {
		return SubRatingMax
	}
	return r
}

// Label returns the standard-scale description of the sub-rating.
func (r SubRating) Label() string {
	switch r.Clamp() {
	case 0:
		return "No Change"
	case 1:
		return "Minor"
	case 2:
		return "Moderate"
	default:
		return "Major"
	}
}

// Int returns the numeric value of the sub-rating.
func (r SubRating) Int() int {
	return int(r)
}

// OverallRating is the aggregate impact of a process on the 0-5 scale,
// always derived from the five sub-ratings and never set independently.
type OverallRating int

// OverallRatingMax is the upper bound of the aggregate impact scale.
const OverallRatingMax OverallRating = 5

// IsValid checks if the overall rating is within the 0-5 scale.
func (r OverallRating) IsValid() bool {
	return r >= 0 && r <= OverallRatingMax
}

// Label returns the aggregate-scale description of the overall rating.
func (r OverallRating) Label() string {
	switch r {
	case 0:
		return "No Impact"
	case 1:
		return "Low Impact"
	case 2:
		return "Medium Impact"
	case 3:
		return "High Impact"
	case 4:
		return "Very High Impact"
	case 5:
		return "Critical Impact"
	default:
		return fmt.Sprintf("Unknown (%d)", int(r))
	}
}

// Int returns the numeric value of the overall rating.
func (r OverallRating) Int() int {
	return int(r)
}
