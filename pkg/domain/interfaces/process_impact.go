package interfaces

import (
	"context"

	"github.com/shiftlens/shiftlens/pkg/domain/model"
)

// ProcessImpactRepository defines the interface for ProcessImpact data access
type ProcessImpactRepository interface {
	// Create creates a new process impact with auto-generated ID
	Create(ctx context.Context, pi *model.ProcessImpact) (*model.ProcessImpact, error)

	// Get retrieves a process impact by ID
	Get(ctx context.Context, id int64) (*model.ProcessImpact, error)

	// ListByAssessment retrieves all process impacts of an assessment
	ListByAssessment(ctx context.Context, assessmentID int64) ([]*model.ProcessImpact, error)

	// Update updates an existing process impact
	Update(ctx context.Context, pi *model.ProcessImpact) (*model.ProcessImpact, error)

	// Delete deletes a process impact by ID
	Delete(ctx context.Context, id int64) error

	// DeleteByAssessment deletes all process impacts of an assessment
	DeleteByAssessment(ctx context.Context, assessmentID int64) error
}
