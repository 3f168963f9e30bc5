package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/shiftlens/shiftlens/pkg/domain/model"
	"github.com/shiftlens/shiftlens/pkg/domain/types"
	"github.com/shiftlens/shiftlens/pkg/repository/memory"
	"github.com/shiftlens/shiftlens/pkg/usecase"
)

func TestAssessmentLifecycle(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New())

	created, err := uc.Assessment.CreateAssessment(ctx, "ERP Migration", "SAP rollout wave 2", "")
	gt.NoError(t, err).Required()
	gt.Value(t, created.Name).Equal("ERP Migration")
	gt.Value(t, created.Status).Equal(types.AssessmentStatusDraft)
	gt.True(t, created.ID > 0)

	retrieved, err := uc.Assessment.GetAssessment(ctx, created.ID)
	gt.NoError(t, err).Required()
	gt.Value(t, retrieved.Description).Equal("SAP rollout wave 2")

	updated, err := uc.Assessment.UpdateAssessment(ctx, created.ID, "ERP Migration", "SAP rollout wave 2", types.AssessmentStatusActive)
	gt.NoError(t, err).Required()
	gt.Value(t, updated.Status).Equal(types.AssessmentStatusActive)

	list, err := uc.Assessment.ListAssessments(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, list).Length(1)

	gt.NoError(t, uc.Assessment.DeleteAssessment(ctx, created.ID))

	_, err = uc.Assessment.GetAssessment(ctx, created.ID)
	gt.True(t, errors.Is(err, usecase.ErrAssessmentNotFound))
}

func TestAssessmentValidation(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New())

	_, err := uc.Assessment.CreateAssessment(ctx, "", "no name", "")
	gt.Error(t, err)

	_, err = uc.Assessment.CreateAssessment(ctx, "x", "", "SHIPPED")
	gt.Error(t, err)

	_, err = uc.Assessment.GetAssessment(ctx, 999)
	gt.True(t, errors.Is(err, usecase.ErrAssessmentNotFound))

	err = uc.Assessment.DeleteAssessment(ctx, 999)
	gt.True(t, errors.Is(err, usecase.ErrAssessmentNotFound))
}

func TestDeleteAssessmentCascadesToProcesses(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	uc := usecase.New(repo)

	a, err := uc.Assessment.CreateAssessment(ctx, "Billing Redesign", "", "")
	gt.NoError(t, err).Required()

	_, err = uc.ProcessImpact.CreateProcessImpact(ctx, &model.ProcessImpact{
		AssessmentID: a.ID,
		ProcessCode:  "BIL-001",
		Name:         "Invoice Approval",
	})
	gt.NoError(t, err).Required()

	gt.NoError(t, uc.Assessment.DeleteAssessment(ctx, a.ID))

	impacts, err := repo.ProcessImpact().ListByAssessment(ctx, a.ID)
	gt.NoError(t, err).Required()
	gt.Array(t, impacts).Length(0)
}
