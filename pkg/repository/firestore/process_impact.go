package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/shiftlens/shiftlens/pkg/domain/model"
	"github.com/shiftlens/shiftlens/pkg/domain/types"
)

type raciAssignmentDocument struct {
	Responsible string `firestore:"responsible"`
	Accountable string `firestore:"accountable"`
	Consulted   string `firestore:"consulted"`
	Informed    string `firestore:"informed"`
}

type processImpactDocument struct {
	ID           int64  `firestore:"id"`
	AssessmentID int64  `firestore:"assessment_id"`
	ProcessCode  string `firestore:"process_code"`
	Name         string `firestore:"name"`

	AsIsDescription string `firestore:"as_is_description"`
	ToBeDescription string `firestore:"to_be_description"`
	AsIsSystem      string `firestore:"as_is_system"`
	ToBeSystem      string `firestore:"to_be_system"`

	ProcessRating          int `firestore:"process_rating"`
	RoleRating             int `firestore:"role_rating"`
	NewRoleRating          int `firestore:"new_role_rating"`
	WorkloadRating         int `firestore:"workload_rating"`
	SystemComplexityRating int `firestore:"system_complexity_rating"`

	WorkloadDirection   string `firestore:"workload_direction"`
	OverallImpactRating int    `firestore:"overall_impact_rating"`
	ImpactDirection     string `firestore:"impact_direction"`

	AsIsRACI raciAssignmentDocument `firestore:"as_is_raci"`
	ToBeRACI raciAssignmentDocument `firestore:"to_be_raci"`

	TrainingRequired bool   `firestore:"training_required"`
	Priority         string `firestore:"priority"`

	CreatedAt time.Time `firestore:"created_at"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

func toProcessImpactDocument(pi *model.ProcessImpact) *processImpactDocument {
	return &processImpactDocument{
		ID:           pi.ID,
		AssessmentID: pi.AssessmentID,
		ProcessCode:  pi.ProcessCode,
		Name:         pi.Name,

		AsIsDescription: pi.AsIsDescription,
		ToBeDescription: pi.ToBeDescription,
		AsIsSystem:      pi.AsIsSystem,
		ToBeSystem:      pi.ToBeSystem,

		ProcessRating:          pi.Ratings.Process.Int(),
		RoleRating:             pi.Ratings.Role.Int(),
		NewRoleRating:          pi.Ratings.NewRole.Int(),
		WorkloadRating:         pi.Ratings.Workload.Int(),
		SystemComplexityRating: pi.Ratings.SystemComplexity.Int(),

		WorkloadDirection:   pi.WorkloadDirection.Normalize().String(),
		OverallImpactRating: pi.OverallImpactRating.Int(),
		ImpactDirection:     pi.ImpactDirection.Normalize().String(),

		AsIsRACI: raciAssignmentDocument{
			Responsible: pi.RACI.AsIs.Responsible,
			Accountable: pi.RACI.AsIs.Accountable,
			Consulted:   pi.RACI.AsIs.Consulted,
			Informed:    pi.RACI.AsIs.Informed,
		},
		ToBeRACI: raciAssignmentDocument{
			Responsible: pi.RACI.ToBe.Responsible,
			Accountable: pi.RACI.ToBe.Accountable,
			Consulted:   pi.RACI.ToBe.Consulted,
			Informed:    pi.RACI.ToBe.Informed,
		},

		TrainingRequired: pi.TrainingRequired,
		Priority:         pi.Priority.String(),

		CreatedAt: pi.CreatedAt,
		UpdatedAt: pi.UpdatedAt,
	}
}

func (d *processImpactDocument) toModel() *model.ProcessImpact {
	return &model.ProcessImpact{
		ID:           d.ID,
		AssessmentID: d.AssessmentID,
		ProcessCode:  d.ProcessCode,
		Name:         d.Name,

		AsIsDescription: d.AsIsDescription,
		ToBeDescription: d.ToBeDescription,
		AsIsSystem:      d.AsIsSystem,
		ToBeSystem:      d.ToBeSystem,

		Ratings: model.SubRatings{
			Process:          types.SubRating(d.ProcessRating),
			Role:             types.SubRating(d.RoleRating),
			NewRole:          types.SubRating(d.NewRoleRating),
			Workload:         types.SubRating(d.WorkloadRating),
			SystemComplexity: types.SubRating(d.SystemComplexityRating),
		},

		WorkloadDirection:   types.WorkloadDirection(d.WorkloadDirection).Normalize(),
		OverallImpactRating: types.OverallRating(d.OverallImpactRating),
		ImpactDirection:     types.ImpactDirection(d.ImpactDirection).Normalize(),

		RACI: model.RACIMatrix{
			AsIs: model.RACIAssignment{
				Responsible: d.AsIsRACI.Responsible,
				Accountable: d.AsIsRACI.Accountable,
				Consulted:   d.AsIsRACI.Consulted,
				Informed:    d.AsIsRACI.Informed,
			},
			ToBe: model.RACIAssignment{
				Responsible: d.ToBeRACI.Responsible,
				Accountable: d.ToBeRACI.Accountable,
				Consulted:   d.ToBeRACI.Consulted,
				Informed:    d.ToBeRACI.Informed,
			},
		},

		TrainingRequired: d.TrainingRequired,
		Priority:         types.Priority(d.Priority),

		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type processImpactRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newProcessImpactRepository(client *firestore.Client) *processImpactRepository {
	return &processImpactRepository{
		client:           client,
		collectionPrefix: "",
	}
}

func (r *processImpactRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_process_impacts"
	}
	return "process_impacts"
}

func (r *processImpactRepository) counterCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_counters"
	}
	return "counters"
}

func (r *processImpactRepository) Create(ctx context.Context, pi *model.ProcessImpact) (*model.ProcessImpact, error) {
	id, err := nextID(ctx, r.client, r.counterCollection(), "process_impact_counter")
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doc := toProcessImpactDocument(pi)
	doc.ID = id
	doc.CreatedAt = now
	doc.UpdatedAt = now

	docRef := r.client.Collection(r.collection()).Doc(fmt.Sprintf("%d", id))
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create process impact")
	}

	return doc.toModel(), nil
}

func (r *processImpactRepository) Get(ctx context.Context, id int64) (*model.ProcessImpact, error) {
	docRef := r.client.Collection(r.collection()).Doc(fmt.Sprintf("%d", id))
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "process impact not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get process impact", goerr.V("id", id))
	}

	var impactDoc processImpactDocument
	if err := doc.DataTo(&impactDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal process impact", goerr.V("id", id))
	}

	return impactDoc.toModel(), nil
}

func (r *processImpactRepository) ListByAssessment(ctx context.Context, assessmentID int64) ([]*model.ProcessImpact, error) {
	iter := r.client.Collection(r.collection()).
		Where("assessment_id", "==", assessmentID).
		Documents(ctx)
	defer iter.Stop()

	impacts := make([]*model.ProcessImpact, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate process impacts",
				goerr.V("assessment_id", assessmentID))
		}

		var impactDoc processImpactDocument
		if err := doc.DataTo(&impactDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal process impact")
		}

		impacts = append(impacts, impactDoc.toModel())
	}

	return impacts, nil
}

func (r *processImpactRepository) Update(ctx context.Context, pi *model.ProcessImpact) (*model.ProcessImpact, error) {
	docRef := r.client.Collection(r.collection()).Doc(fmt.Sprintf("%d", pi.ID))

	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "process impact not found", goerr.V("id", pi.ID))
		}
		return nil, goerr.Wrap(err, "failed to get process impact", goerr.V("id", pi.ID))
	}

	var existing processImpactDocument
	if err := doc.DataTo(&existing); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal process impact", goerr.V("id", pi.ID))
	}

	updated := toProcessImpactDocument(pi)
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	if _, err := docRef.Set(ctx, updated); err != nil {
		return nil, goerr.Wrap(err, "failed to update process impact", goerr.V("id", pi.ID))
	}

	return updated.toModel(), nil
}

func (r *processImpactRepository) Delete(ctx context.Context, id int64) error {
	docRef := r.client.Collection(r.collection()).Doc(fmt.Sprintf("%d", id))

	_, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "process impact not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get process impact", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete process impact", goerr.V("id", id))
	}

	return nil
}

func (r *processImpactRepository) DeleteByAssessment(ctx context.Context, assessmentID int64) error {
	iter := r.client.Collection(r.collection()).
		Where("assessment_id", "==", assessmentID).
		Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return goerr.Wrap(err, "failed to iterate process impacts",
				goerr.V("assessment_id", assessmentID))
		}

		if _, err := doc.Ref.Delete(ctx); err != nil {
			return goerr.Wrap(err, "failed to delete process impact",
				goerr.V("assessment_id", assessmentID))
		}
	}

	return nil
}
