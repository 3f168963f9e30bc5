package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"

	"github.com/shiftlens/shiftlens/pkg/domain/interfaces"
	"github.com/shiftlens/shiftlens/pkg/domain/model"
	"github.com/shiftlens/shiftlens/pkg/domain/types"
)

type AssessmentUseCase struct {
	repo interfaces.Repository
}

func NewAssessmentUseCase(repo interfaces.Repository) *AssessmentUseCase {
	return &AssessmentUseCase{repo: repo}
}

func (uc *AssessmentUseCase) CreateAssessment(ctx context.Context, name, description string, status types.AssessmentStatus) (*model.Assessment, error) {
	if name == "" {
		return nil, goerr.New("assessment name is required")
	}

	status = status.Normalize()
	if !status.IsValid() {
		return nil, goerr.New("invalid assessment status", goerr.V("status", status))
	}

	created, err := uc.repo.Assessment().Create(ctx, &model.Assessment{
		Name:        name,
		Description: description,
		Status:      status,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create assessment")
	}

	return created, nil
}

func (uc *AssessmentUseCase) GetAssessment(ctx context.Context, id int64) (*model.Assessment, error) {
	a, err := uc.repo.Assessment().Get(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrAssessmentNotFound, "failed to get assessment", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get assessment", goerr.V("id", id))
	}

	return a, nil
}

func (uc *AssessmentUseCase) ListAssessments(ctx context.Context) ([]*model.Assessment, error) {
	assessments, err := uc.repo.Assessment().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list assessments")
	}

	return assessments, nil
}

func (uc *AssessmentUseCase) UpdateAssessment(ctx context.Context, id int64, name, description string, status types.AssessmentStatus) (*model.Assessment, error) {
	if name == "" {
		return nil, goerr.New("assessment name is required")
	}

	status = status.Normalize()
	if !status.IsValid() {
		return nil, goerr.New("invalid assessment status", goerr.V("status", status))
	}

	updated, err := uc.repo.Assessment().Update(ctx, &model.Assessment{
		ID:          id,
		Name:        name,
		Description: description,
		Status:      status,
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrAssessmentNotFound, "failed to update assessment", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to update assessment", goerr.V("id", id))
	}

	return updated, nil
}

// DeleteAssessment removes the assessment and all of its process impacts.
func (uc *AssessmentUseCase) DeleteAssessment(ctx context.Context, id int64) error {
	if err := uc.repo.Assessment().Delete(ctx, id); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return goerr.Wrap(ErrAssessmentNotFound, "failed to delete assessment", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to delete assessment", goerr.V("id", id))
	}

	if err := uc.repo.ProcessImpact().DeleteByAssessment(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete process impacts of assessment", goerr.V("id", id))
	}

	return nil
}
