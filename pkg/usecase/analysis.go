package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"

	"github.com/shiftlens/shiftlens/pkg/domain/interfaces"
	"github.com/shiftlens/shiftlens/pkg/domain/model"
	"github.com/shiftlens/shiftlens/pkg/domain/model/config"
	"github.com/shiftlens/shiftlens/pkg/service/analysis"
	"github.com/shiftlens/shiftlens/pkg/service/gcs"
	"github.com/shiftlens/shiftlens/pkg/utils/async"
	"github.com/shiftlens/shiftlens/pkg/utils/logging"
)

type AnalysisUseCase struct {
	repo     interfaces.Repository
	policy   *config.AnalysisPolicy
	exporter gcs.Exporter
}

func NewAnalysisUseCase(repo interfaces.Repository, policy *config.AnalysisPolicy, exporter gcs.Exporter) *AnalysisUseCase {
	if policy == nil {
		policy = config.DefaultAnalysisPolicy()
	}
	return &AnalysisUseCase{repo: repo, policy: policy, exporter: exporter}
}

// AnalyzeAssessment runs the full change analysis over every process of the
// assessment: per-field RACI diffs, role load aggregation, and the portfolio
// summary. All ratings are recomputed from stored sub-ratings. When an
// exporter is configured the report is also written to the object store in
// the background; export failures are logged, never surfaced to the caller.
func (uc *AnalysisUseCase) AnalyzeAssessment(ctx context.Context, assessmentID int64) (*model.AnalysisReport, error) {
	assessment, err := uc.repo.Assessment().Get(ctx, assessmentID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrAssessmentNotFound, "failed to analyze assessment", goerr.V("id", assessmentID))
		}
		return nil, goerr.Wrap(err, "failed to get assessment", goerr.V("id", assessmentID))
	}

	processes, err := uc.repo.ProcessImpact().ListByAssessment(ctx, assessmentID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list process impacts", goerr.V("assessment_id", assessmentID))
	}

	var changes []model.RACIChangeRecord
	for _, pi := range processes {
		changes = append(changes, analysis.AnalyzeProcess(pi, uc.policy)...)
	}

	report := &model.AnalysisReport{
		ReportID:    uuid.New(),
		GeneratedAt: time.Now().UTC(),
		Assessment:  assessment,
		Changes:     changes,
		RoleLoads:   analysis.AggregateRoleLoad(processes),
		Summary:     analysis.SummarizeAssessment(assessmentID, processes, uc.policy),
	}

	if uc.exporter != nil {
		async.Dispatch(ctx, func(ctx context.Context) error {
			uri, err := uc.exporter.ExportReport(ctx, report)
			if err != nil {
				return goerr.Wrap(err, "failed to export analysis report",
					goerr.V("assessment_id", assessmentID),
					goerr.V("report_id", report.ReportID))
			}
			logging.From(ctx).Info("exported analysis report",
				"assessment_id", assessmentID,
				"report_id", report.ReportID,
				"uri", uri,
			)
			return nil
		})
	}

	return report, nil
}

// SummarizeAssessment returns only the portfolio roll-up, the cheap call
// dashboards poll.
func (uc *AnalysisUseCase) SummarizeAssessment(ctx context.Context, assessmentID int64) (*model.AssessmentSummary, error) {
	if _, err := uc.repo.Assessment().Get(ctx, assessmentID); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrAssessmentNotFound, "failed to summarize assessment", goerr.V("id", assessmentID))
		}
		return nil, goerr.Wrap(err, "failed to get assessment", goerr.V("id", assessmentID))
	}

	processes, err := uc.repo.ProcessImpact().ListByAssessment(ctx, assessmentID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list process impacts", goerr.V("assessment_id", assessmentID))
	}

	summary := analysis.SummarizeAssessment(assessmentID, processes, uc.policy)
	return &summary, nil
}
