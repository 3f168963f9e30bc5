package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/shiftlens/shiftlens/pkg/domain/interfaces"
	"github.com/shiftlens/shiftlens/pkg/domain/model"
	"github.com/shiftlens/shiftlens/pkg/domain/model/config"
	"github.com/shiftlens/shiftlens/pkg/service/analysis"
	"github.com/shiftlens/shiftlens/pkg/utils/logging"
)

// recomputeConcurrency bounds how many assessments are repaired in parallel.
const recomputeConcurrency = 4

// RecomputeUseCase repairs stored derived fields. Rows written by older
// builds (or imported from spreadsheets) can carry overall ratings and
// priorities that no longer match their sub-ratings; recompute walks them
// and persists the corrected values.
type RecomputeUseCase struct {
	repo   interfaces.Repository
	policy *config.AnalysisPolicy
}

func NewRecomputeUseCase(repo interfaces.Repository, policy *config.AnalysisPolicy) *RecomputeUseCase {
	if policy == nil {
		policy = config.DefaultAnalysisPolicy()
	}
	return &RecomputeUseCase{repo: repo, policy: policy}
}

// RecomputeAssessment re-derives the overall rating and priority of every
// process in the assessment and writes back only the rows that changed.
// It returns the number of updated rows.
func (uc *RecomputeUseCase) RecomputeAssessment(ctx context.Context, assessmentID int64) (int, error) {
	if _, err := uc.repo.Assessment().Get(ctx, assessmentID); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return 0, goerr.Wrap(ErrAssessmentNotFound, "failed to recompute assessment", goerr.V("id", assessmentID))
		}
		return 0, goerr.Wrap(err, "failed to get assessment", goerr.V("id", assessmentID))
	}

	processes, err := uc.repo.ProcessImpact().ListByAssessment(ctx, assessmentID)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to list process impacts", goerr.V("assessment_id", assessmentID))
	}

	updated := 0
	for _, pi := range processes {
		changed, err := uc.recomputeProcess(ctx, pi)
		if err != nil {
			return updated, err
		}
		if changed {
			updated++
		}
	}

	return updated, nil
}

func (uc *RecomputeUseCase) recomputeProcess(ctx context.Context, pi *model.ProcessImpact) (bool, error) {
	ratings := pi.Ratings.Clamp()
	rating := analysis.CalculateOverallImpactRating(ratings)

	maxWeight := 0
	for _, rec := range analysis.AnalyzeProcess(pi, uc.policy) {
		if w := uc.policy.ChangeWeight(rec.ChangeType); w > maxWeight {
			maxWeight = w
		}
	}
	priority := analysis.ComputePriority(rating, maxWeight, uc.policy)

	if ratings == pi.Ratings && rating == pi.OverallImpactRating && priority == pi.Priority {
		return false, nil
	}

	logging.From(ctx).Info("repairing stale derived fields",
		"process_id", pi.ID,
		"process_code", pi.ProcessCode,
		"stored_rating", pi.OverallImpactRating,
		"computed_rating", rating,
	)

	pi.Ratings = ratings
	pi.OverallImpactRating = rating
	pi.Priority = priority

	if _, err := uc.repo.ProcessImpact().Update(ctx, pi); err != nil {
		return false, goerr.Wrap(err, "failed to persist recomputed process impact", goerr.V("id", pi.ID))
	}

	return true, nil
}

// RecomputeAll repairs every assessment, a bounded number at a time.
// It returns the total number of updated rows.
func (uc *RecomputeUseCase) RecomputeAll(ctx context.Context) (int, error) {
	assessments, err := uc.repo.Assessment().List(ctx)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to list assessments")
	}

	counts := make([]int, len(assessments))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(recomputeConcurrency)

	for i, a := range assessments {
		eg.Go(func() error {
			n, err := uc.RecomputeAssessment(ctx, a.ID)
			if err != nil {
				return err
			}
			counts[i] = n
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return 0, goerr.Wrap(err, "failed to recompute assessments")
	}

	total := 0
	for _, n := range counts {
		total += n
	}

	return total, nil
}
