package http

import (
	"net/http"
	"time"

	"github.com/shiftlens/shiftlens/pkg/domain/model"
	"github.com/shiftlens/shiftlens/pkg/utils/errutil"
)

type raciChangeResponse struct {
	ProcessID    int64  `json:"process_id"`
	ProcessCode  string `json:"process_code"`
	Role         string `json:"role"`
	RoleName     string `json:"role_name"`
	AsIsValue    string `json:"as_is_value"`
	ToBeValue    string `json:"to_be_value"`
	ChangeType   string `json:"change_type"`
	ImpactRating int    `json:"impact_rating"`
	Priority     string `json:"priority"`
}

type roleLoadResponse struct {
	RoleName     string `json:"role_name"`
	AsIsCount    int    `json:"as_is_count"`
	ToBeCount    int    `json:"to_be_count"`
	TotalLoad    int    `json:"total_load"`
	ProcessCount int    `json:"process_count"`
}

type ratingBucketResponse struct {
	Rating int    `json:"rating"`
	Label  string `json:"label"`
	Count  int    `json:"count"`
}

type summaryResponse struct {
	AssessmentID     int64                  `json:"assessment_id"`
	ProcessCount     int                    `json:"process_count"`
	HighImpactCount  int                    `json:"high_impact_count"`
	Severity         string                 `json:"severity"`
	RatingBuckets    []ratingBucketResponse `json:"rating_buckets"`
	TrainingRequired int                    `json:"training_required"`
	ChangeCounts     map[string]int         `json:"change_counts"`
}

type analysisReportResponse struct {
	ReportID    string               `json:"report_id"`
	GeneratedAt time.Time            `json:"generated_at"`
	Assessment  assessmentResponse   `json:"assessment"`
	Changes     []raciChangeResponse `json:"changes"`
	RoleLoads   []roleLoadResponse   `json:"role_loads"`
	Summary     summaryResponse      `json:"summary"`
}

func toSummaryResponse(s model.AssessmentSummary) summaryResponse {
	buckets := make([]ratingBucketResponse, len(s.RatingBuckets))
	for i, b := range s.RatingBuckets {
		buckets[i] = ratingBucketResponse{
			Rating: b.Rating.Int(),
			Label:  b.Label,
			Count:  b.Count,
		}
	}

	counts := make(map[string]int, len(s.ChangeCounts))
	for ct, n := range s.ChangeCounts {
		counts[ct.String()] = n
	}

	return summaryResponse{
		AssessmentID:     s.AssessmentID,
		ProcessCount:     s.ProcessCount,
		HighImpactCount:  s.HighImpactCount,
		Severity:         s.Severity.String(),
		RatingBuckets:    buckets,
		TrainingRequired: s.TrainingRequired,
		ChangeCounts:     counts,
	}
}

func toAnalysisReportResponse(report *model.AnalysisReport) analysisReportResponse {
	changes := make([]raciChangeResponse, len(report.Changes))
	for i, rec := range report.Changes {
		changes[i] = raciChangeResponse{
			ProcessID:    rec.ProcessID,
			ProcessCode:  rec.ProcessCode,
			Role:         rec.Role.String(),
			RoleName:     rec.Role.Name(),
			AsIsValue:    rec.AsIsValue,
			ToBeValue:    rec.ToBeValue,
			ChangeType:   rec.ChangeType.String(),
			ImpactRating: rec.ImpactRating.Int(),
			Priority:     rec.Priority.String(),
		}
	}

	loads := make([]roleLoadResponse, len(report.RoleLoads))
	for i, l := range report.RoleLoads {
		loads[i] = roleLoadResponse{
			RoleName:     l.RoleName,
			AsIsCount:    l.AsIsCount,
			ToBeCount:    l.ToBeCount,
			TotalLoad:    l.TotalLoad,
			ProcessCount: l.ProcessCount,
		}
	}

	return analysisReportResponse{
		ReportID:    report.ReportID.String(),
		GeneratedAt: report.GeneratedAt,
		Assessment:  toAssessmentResponse(report.Assessment),
		Changes:     changes,
		RoleLoads:   loads,
		Summary:     toSummaryResponse(report.Summary),
	}
}

func (s *Server) analyzeAssessment(w http.ResponseWriter, r *http.Request) {
	assessmentID, err := pathID(r, "assessmentID")
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	report, err := s.uc.Analysis.AnalyzeAssessment(r.Context(), assessmentID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, toAnalysisReportResponse(report))
}

func (s *Server) summarizeAssessment(w http.ResponseWriter, r *http.Request) {
	assessmentID, err := pathID(r, "assessmentID")
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	summary, err := s.uc.Analysis.SummarizeAssessment(r.Context(), assessmentID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, toSummaryResponse(*summary))
}

func (s *Server) recomputeAssessment(w http.ResponseWriter, r *http.Request) {
	assessmentID, err := pathID(r, "assessmentID")
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	updated, err := s.uc.Recompute.RecomputeAssessment(r.Context(), assessmentID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]int{"updated": updated})
}
