package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/shiftlens/shiftlens/pkg/domain/types"
)

// ImpactBreakdown is the display form of an aggregate rating computation.
type ImpactBreakdown struct {
	TotalPoints   int
	MaxPoints     int
	OverallRating types.OverallRating
	Description   string
	Summary       string
}

// RatingBucket is one cell of the portfolio heatmap: how many processes
// landed on a given overall rating.
type RatingBucket struct {
	Rating types.OverallRating
	Label  string
	Count  int
}

// AssessmentSummary is the portfolio roll-up over all processes of an
// assessment, consumed by dashboards.
type AssessmentSummary struct {
	AssessmentID     int64
	ProcessCount     int
	HighImpactCount  int
	Severity         types.Severity
	RatingBuckets    []RatingBucket
	TrainingRequired int
	ChangeCounts     map[types.ChangeType]int
}

// AnalysisReport bundles everything the reporting layer needs for one
// assessment: per-field RACI changes, per-role load, and the summary.
type AnalysisReport struct {
	ReportID    uuid.UUID
	GeneratedAt time.Time
	Assessment  *Assessment
	Changes     []RACIChangeRecord
	RoleLoads   []RoleLoad
	Summary     AssessmentSummary
}
