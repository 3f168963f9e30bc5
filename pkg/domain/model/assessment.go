package model

import (
	"time"

	"github.com/shiftlens/shiftlens/pkg/domain/types"
)

// Assessment groups the process impacts of one change initiative.
type Assessment struct {
	ID          int64
	Name        string
	Description string
	Status      types.AssessmentStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
