package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/shiftlens/shiftlens/pkg/domain/model"
	"github.com/shiftlens/shiftlens/pkg/domain/types"
	"github.com/shiftlens/shiftlens/pkg/utils/errutil"
)

type raciAssignmentDTO struct {
	Responsible string `json:"responsible"`
	Accountable string `json:"accountable"`
	Consulted   string `json:"consulted"`
	Informed    string `json:"informed"`
}

type subRatingsDTO struct {
	Process          int `json:"process"`
	Role             int `json:"role"`
	NewRole          int `json:"new_role"`
	Workload         int `json:"workload"`
	SystemComplexity int `json:"system_complexity"`
}

type processImpactRequest struct {
	ProcessCode string `json:"process_code"`
	Name        string `json:"name"`

	AsIsDescription string `json:"as_is_description"`
	ToBeDescription string `json:"to_be_description"`
	AsIsSystem      string `json:"as_is_system"`
	ToBeSystem      string `json:"to_be_system"`

	Ratings           subRatingsDTO `json:"ratings"`
	WorkloadDirection string        `json:"workload_direction"`
	ImpactDirection   string        `json:"impact_direction"`

	AsIsRACI raciAssignmentDTO `json:"as_is_raci"`
	ToBeRACI raciAssignmentDTO `json:"to_be_raci"`

	TrainingRequired bool `json:"training_required"`
}

type processImpactResponse struct {
	ID           int64  `json:"id"`
	AssessmentID int64  `json:"assessment_id"`
	ProcessCode  string `json:"process_code"`
	Name         string `json:"name"`

	AsIsDescription string `json:"as_is_description"`
	ToBeDescription string `json:"to_be_description"`
	AsIsSystem      string `json:"as_is_system"`
	ToBeSystem      string `json:"to_be_system"`

	Ratings             subRatingsDTO `json:"ratings"`
	WorkloadDirection   string        `json:"workload_direction"`
	OverallImpactRating int           `json:"overall_impact_rating"`
	OverallImpactLabel  string        `json:"overall_impact_label"`
	ImpactDirection     string        `json:"impact_direction"`

	AsIsRACI raciAssignmentDTO `json:"as_is_raci"`
	ToBeRACI raciAssignmentDTO `json:"to_be_raci"`

	TrainingRequired bool   `json:"training_required"`
	Priority         string `json:"priority"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (req *processImpactRequest) toModel(assessmentID int64) *model.ProcessImpact {
	return &model.ProcessImpact{
		AssessmentID:    assessmentID,
		ProcessCode:     req.ProcessCode,
		Name:            req.Name,
		AsIsDescription: req.AsIsDescription,
		ToBeDescription: req.ToBeDescription,
		AsIsSystem:      req.AsIsSystem,
		ToBeSystem:      req.ToBeSystem,
		Ratings: model.SubRatings{
			Process:          types.SubRating(req.Ratings.Process),
			Role:             types.SubRating(req.Ratings.Role),
			NewRole:          types.SubRating(req.Ratings.NewRole),
			Workload:         types.SubRating(req.Ratings.Workload),
			SystemComplexity: types.SubRating(req.Ratings.SystemComplexity),
		},
		WorkloadDirection: types.WorkloadDirection(req.WorkloadDirection),
		ImpactDirection:   types.ImpactDirection(req.ImpactDirection),
		RACI: model.RACIMatrix{
			AsIs: model.RACIAssignment{
				Responsible: req.AsIsRACI.Responsible,
				Accountable: req.AsIsRACI.Accountable,
				Consulted:   req.AsIsRACI.Consulted,
				Informed:    req.AsIsRACI.Informed,
			},
			ToBe: model.RACIAssignment{
				Responsible: req.ToBeRACI.Responsible,
				Accountable: req.ToBeRACI.Accountable,
				Consulted:   req.ToBeRACI.Consulted,
				Informed:    req.ToBeRACI.Informed,
			},
		},
		TrainingRequired: req.TrainingRequired,
	}
}

func toRACIAssignmentDTO(a model.RACIAssignment) raciAssignmentDTO {
	return raciAssignmentDTO{
		Responsible: a.Responsible,
		Accountable: a.Accountable,
		Consulted:   a.Consulted,
		Informed:    a.Informed,
	}
}

func toProcessImpactResponse(pi *model.ProcessImpact) processImpactResponse {
	return processImpactResponse{
		ID:              pi.ID,
		AssessmentID:    pi.AssessmentID,
		ProcessCode:     pi.ProcessCode,
		Name:            pi.Name,
		AsIsDescription: pi.AsIsDescription,
		ToBeDescription: pi.ToBeDescription,
		AsIsSystem:      pi.AsIsSystem,
		ToBeSystem:      pi.ToBeSystem,
		Ratings: subRatingsDTO{
			Process:          pi.Ratings.Process.Int(),
			Role:             pi.Ratings.Role.Int(),
			NewRole:          pi.Ratings.NewRole.Int(),
			Workload:         pi.Ratings.Workload.Int(),
			SystemComplexity: pi.Ratings.SystemComplexity.Int(),
		},
		WorkloadDirection:   pi.WorkloadDirection.String(),
		OverallImpactRating: pi.OverallImpactRating.Int(),
		OverallImpactLabel:  pi.OverallImpactRating.Label(),
		ImpactDirection:     pi.ImpactDirection.String(),
		AsIsRACI:            toRACIAssignmentDTO(pi.RACI.AsIs),
		ToBeRACI:            toRACIAssignmentDTO(pi.RACI.ToBe),
		TrainingRequired:    pi.TrainingRequired,
		Priority:            pi.Priority.String(),
		CreatedAt:           pi.CreatedAt,
		UpdatedAt:           pi.UpdatedAt,
	}
}

func (s *Server) listProcessImpacts(w http.ResponseWriter, r *http.Request) {
	assessmentID, err := pathID(r, "assessmentID")
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	impacts, err := s.uc.ProcessImpact.ListProcessImpacts(r.Context(), assessmentID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	resp := make([]processImpactResponse, len(impacts))
	for i, pi := range impacts {
		resp[i] = toProcessImpactResponse(pi)
	}
	respondJSON(w, r, http.StatusOK, resp)
}

func (s *Server) createProcessImpact(w http.ResponseWriter, r *http.Request) {
	assessmentID, err := pathID(r, "assessmentID")
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	var req processImpactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}

	created, err := s.uc.ProcessImpact.CreateProcessImpact(r.Context(), req.toModel(assessmentID))
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusCreated, toProcessImpactResponse(created))
}

func (s *Server) getProcessImpact(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "processID")
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	pi, err := s.uc.ProcessImpact.GetProcessImpact(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, toProcessImpactResponse(pi))
}

func (s *Server) updateProcessImpact(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "processID")
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	var req processImpactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}

	pi := req.toModel(0)
	pi.ID = id

	updated, err := s.uc.ProcessImpact.UpdateProcessImpact(r.Context(), pi)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, toProcessImpactResponse(updated))
}

func (s *Server) deleteProcessImpact(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "processID")
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	if err := s.uc.ProcessImpact.DeleteProcessImpact(r.Context(), id); err != nil {
		handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) getImpactBreakdown(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "processID")
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	breakdown, err := s.uc.ProcessImpact.GetImpactBreakdown(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{
		"total_points":   breakdown.TotalPoints,
		"max_points":     breakdown.MaxPoints,
		"overall_rating": breakdown.OverallRating.Int(),
		"description":    breakdown.Description,
		"summary":        breakdown.Summary,
	})
}
