package interfaces

import (
	"context"

	"github.com/shiftlens/shiftlens/pkg/domain/model"
)

// AssessmentRepository defines the interface for Assessment data access
type AssessmentRepository interface {
	// Create creates a new assessment with auto-generated ID
	Create(ctx context.Context, a *model.Assessment) (*model.Assessment, error)

	// Get retrieves an assessment by ID
	Get(ctx context.Context, id int64) (*model.Assessment, error)

	// List retrieves all assessments
	List(ctx context.Context) ([]*model.Assessment, error)

	// Update updates an existing assessment
	Update(ctx context.Context, a *model.Assessment) (*model.Assessment, error)

	// Delete deletes an assessment by ID
	Delete(ctx context.Context, id int64) error
}
