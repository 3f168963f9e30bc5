package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"

	"github.com/shiftlens/shiftlens/pkg/domain/interfaces"
	"github.com/shiftlens/shiftlens/pkg/domain/model"
	"github.com/shiftlens/shiftlens/pkg/domain/model/config"
	"github.com/shiftlens/shiftlens/pkg/domain/types"
	"github.com/shiftlens/shiftlens/pkg/service/analysis"
	"github.com/shiftlens/shiftlens/pkg/utils/logging"
)

type ProcessImpactUseCase struct {
	repo   interfaces.Repository
	policy *config.AnalysisPolicy
}

func NewProcessImpactUseCase(repo interfaces.Repository, policy *config.AnalysisPolicy) *ProcessImpactUseCase {
	if policy == nil {
		policy = config.DefaultAnalysisPolicy()
	}
	return &ProcessImpactUseCase{repo: repo, policy: policy}
}

// normalize enforces the derived-field invariants before any write: sub-ratings
// are clamped into the 0-3 scale, the overall rating is recomputed from the
// sub-ratings (a caller-supplied value is never trusted), and the process
// priority is re-derived. Out-of-range input is a caller contract violation;
// it is logged and repaired rather than rejected so a bad row never takes the
// dashboard down.
func (uc *ProcessImpactUseCase) normalize(ctx context.Context, pi *model.ProcessImpact) {
	if !pi.Ratings.IsValid() {
		logging.From(ctx).Warn("sub-ratings out of range, clamping to 0-3",
			"process_code", pi.ProcessCode,
			"ratings", pi.Ratings,
		)
		pi.Ratings = pi.Ratings.Clamp()
	}

	pi.OverallImpactRating = analysis.CalculateOverallImpactRating(pi.Ratings)
	pi.Priority = uc.derivePriority(pi)
	pi.WorkloadDirection = pi.WorkloadDirection.Normalize()
	pi.ImpactDirection = pi.ImpactDirection.Normalize()
}

// derivePriority buckets the whole process with the same thresholds as the
// per-record priority: the weight is the heaviest RACI change the process
// carries, zero when the responsibility assignment is unchanged.
func (uc *ProcessImpactUseCase) derivePriority(pi *model.ProcessImpact) types.Priority {
	maxWeight := 0
	for _, rec := range analysis.AnalyzeProcess(pi, uc.policy) {
		if w := uc.policy.ChangeWeight(rec.ChangeType); w > maxWeight {
			maxWeight = w
		}
	}
	return analysis.ComputePriority(pi.OverallImpactRating, maxWeight, uc.policy)
}

func (uc *ProcessImpactUseCase) CreateProcessImpact(ctx context.Context, pi *model.ProcessImpact) (*model.ProcessImpact, error) {
	if pi == nil {
		return nil, goerr.New("process impact is required")
	}
	if pi.ProcessCode == "" {
		return nil, goerr.New("process code is required")
	}

	// The parent assessment must exist
	if _, err := uc.repo.Assessment().Get(ctx, pi.AssessmentID); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrAssessmentNotFound, "cannot add process to missing assessment",
				goerr.V("assessment_id", pi.AssessmentID))
		}
		return nil, goerr.Wrap(err, "failed to check assessment", goerr.V("assessment_id", pi.AssessmentID))
	}

	uc.normalize(ctx, pi)

	created, err := uc.repo.ProcessImpact().Create(ctx, pi)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create process impact")
	}

	return created, nil
}

func (uc *ProcessImpactUseCase) GetProcessImpact(ctx context.Context, id int64) (*model.ProcessImpact, error) {
	pi, err := uc.repo.ProcessImpact().Get(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrProcessNotFound, "failed to get process impact", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get process impact", goerr.V("id", id))
	}

	return pi, nil
}

func (uc *ProcessImpactUseCase) ListProcessImpacts(ctx context.Context, assessmentID int64) ([]*model.ProcessImpact, error) {
	impacts, err := uc.repo.ProcessImpact().ListByAssessment(ctx, assessmentID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list process impacts", goerr.V("assessment_id", assessmentID))
	}

	return impacts, nil
}

func (uc *ProcessImpactUseCase) UpdateProcessImpact(ctx context.Context, pi *model.ProcessImpact) (*model.ProcessImpact, error) {
	if pi == nil {
		return nil, goerr.New("process impact is required")
	}
	if pi.ProcessCode == "" {
		return nil, goerr.New("process code is required")
	}

	existing, err := uc.repo.ProcessImpact().Get(ctx, pi.ID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrProcessNotFound, "failed to update process impact", goerr.V("id", pi.ID))
		}
		return nil, goerr.Wrap(err, "failed to get process impact", goerr.V("id", pi.ID))
	}

	// The assessment binding is immutable
	pi.AssessmentID = existing.AssessmentID

	uc.normalize(ctx, pi)

	updated, err := uc.repo.ProcessImpact().Update(ctx, pi)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update process impact", goerr.V("id", pi.ID))
	}

	return updated, nil
}

func (uc *ProcessImpactUseCase) DeleteProcessImpact(ctx context.Context, id int64) error {
	if err := uc.repo.ProcessImpact().Delete(ctx, id); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return goerr.Wrap(ErrProcessNotFound, "failed to delete process impact", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to delete process impact", goerr.V("id", id))
	}

	return nil
}

// GetImpactBreakdown returns the display form of a process's rating
// computation, recomputed from the stored sub-ratings.
func (uc *ProcessImpactUseCase) GetImpactBreakdown(ctx context.Context, id int64) (*model.ImpactBreakdown, error) {
	pi, err := uc.GetProcessImpact(ctx, id)
	if err != nil {
		return nil, err
	}

	breakdown := analysis.OverallImpactBreakdown(pi.Ratings)
	return &breakdown, nil
}
