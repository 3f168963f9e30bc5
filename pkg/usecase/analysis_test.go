package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/shiftlens/shiftlens/pkg/domain/model"
	"github.com/shiftlens/shiftlens/pkg/domain/types"
	"github.com/shiftlens/shiftlens/pkg/repository/memory"
	"github.com/shiftlens/shiftlens/pkg/usecase"
)

func TestAnalyzeAssessment(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New())
	assessmentID := setupAssessment(t, uc)

	_, err := uc.ProcessImpact.CreateProcessImpact(ctx, &model.ProcessImpact{
		AssessmentID: assessmentID,
		ProcessCode:  "P-001",
		Name:         "Order Entry",
		Ratings:      model.SubRatings{Process: 3, Role: 3, Workload: 3},
		RACI: model.RACIMatrix{
			AsIs: model.RACIAssignment{Responsible: "AM", Accountable: "PM"},
			ToBe: model.RACIAssignment{Responsible: "DC", Accountable: "PM", Consulted: "QA"},
		},
		TrainingRequired: true,
	})
	gt.NoError(t, err).Required()

	_, err = uc.ProcessImpact.CreateProcessImpact(ctx, &model.ProcessImpact{
		AssessmentID: assessmentID,
		ProcessCode:  "P-002",
		Name:         "Shipping",
		Ratings:      model.SubRatings{Process: 1},
		RACI: model.RACIMatrix{
			AsIs: model.RACIAssignment{Responsible: "WH"},
			ToBe: model.RACIAssignment{Responsible: "WH"},
		},
	})
	gt.NoError(t, err).Required()

	report, err := uc.Analysis.AnalyzeAssessment(ctx, assessmentID)
	gt.NoError(t, err).Required()

	gt.Value(t, report.Assessment.ID).Equal(assessmentID)
	gt.False(t, report.GeneratedAt.IsZero())

	// P-001 carries a responsible swap and a new consulted role; P-002 is
	// unchanged and contributes no records.
	gt.Array(t, report.Changes).Length(2)
	for _, rec := range report.Changes {
		gt.Value(t, rec.ProcessCode).Equal("P-001")
	}

	gt.Value(t, report.Summary.ProcessCount).Equal(2)
	gt.Value(t, report.Summary.HighImpactCount).Equal(1)
	gt.Value(t, report.Summary.TrainingRequired).Equal(1)

	// Role load covers both states: AM and DC each once, PM on both sides.
	loads := map[string]model.RoleLoad{}
	for _, l := range report.RoleLoads {
		loads[l.RoleName] = l
	}
	gt.Value(t, loads["PM"].TotalLoad).Equal(2)
	gt.Value(t, loads["AM"].AsIsCount).Equal(1)
	gt.Value(t, loads["AM"].ToBeCount).Equal(0)
	gt.Value(t, loads["DC"].ToBeCount).Equal(1)
}

func TestAnalyzeAssessmentNotFound(t *testing.T) {
	uc := usecase.New(memory.New())

	_, err := uc.Analysis.AnalyzeAssessment(context.Background(), 404)
	gt.True(t, errors.Is(err, usecase.ErrAssessmentNotFound))
}

func TestSummarizeAssessmentEmpty(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New())
	assessmentID := setupAssessment(t, uc)

	summary, err := uc.Analysis.SummarizeAssessment(ctx, assessmentID)
	gt.NoError(t, err).Required()
	gt.Value(t, summary.ProcessCount).Equal(0)
	gt.Value(t, summary.Severity).Equal(types.SeverityNone)
	gt.Array(t, summary.RatingBuckets).Length(6)
}

type captureExporter struct {
	mu     sync.Mutex
	report *model.AnalysisReport
	done   chan struct{}
}

func (e *captureExporter) ExportReport(ctx context.Context, report *model.AnalysisReport) (string, error) {
	e.mu.Lock()
	e.report = report
	e.mu.Unlock()
	close(e.done)
	return "gs://test-bucket/report.json", nil
}

func TestAnalyzeAssessmentExportsReport(t *testing.T) {
	ctx := context.Background()
	exporter := &captureExporter{done: make(chan struct{})}
	uc := usecase.New(memory.New(), usecase.WithExporter(exporter))
	assessmentID := setupAssessment(t, uc)

	report, err := uc.Analysis.AnalyzeAssessment(ctx, assessmentID)
	gt.NoError(t, err).Required()

	select {
	case <-exporter.done:
	case <-time.After(5 * time.Second):
		t.Fatal("exporter was not invoked")
	}

	exporter.mu.Lock()
	defer exporter.mu.Unlock()
	gt.Value(t, exporter.report.ReportID).Equal(report.ReportID)
}
