package repository_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/shiftlens/shiftlens/pkg/domain/interfaces"
	"github.com/shiftlens/shiftlens/pkg/domain/model"
	"github.com/shiftlens/shiftlens/pkg/domain/types"
	"github.com/shiftlens/shiftlens/pkg/repository/firestore"
	"github.com/shiftlens/shiftlens/pkg/repository/memory"
)

func runAssessmentRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create creates assessment with auto-increment ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created1, err := repo.Assessment().Create(ctx, &model.Assessment{
			Name:        "ERP Migration Wave 1",
			Description: "Finance and procurement processes",
		})
		if err != nil {
			t.Fatalf("failed to create assessment: %v", err)
		}

		if created1.ID != 1 {
			t.Errorf("expected ID=1, got %d", created1.ID)
		}
		if created1.Status != types.AssessmentStatusDraft {
			t.Errorf("expected default status DRAFT, got %s", created1.Status)
		}
		if created1.CreatedAt.IsZero() {
			t.Error("expected non-zero CreatedAt")
		}

		created2, err := repo.Assessment().Create(ctx, &model.Assessment{
			Name: "ERP Migration Wave 2",
		})
		if err != nil {
			t.Fatalf("failed to create second assessment: %v", err)
		}
		if created2.ID != 2 {
			t.Errorf("expected ID=2, got %d", created2.ID)
		}
	})

	t.Run("Get retrieves existing assessment", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Assessment().Create(ctx, &model.Assessment{
			Name:        "Warehouse Automation",
			Description: "Logistics processes",
			Status:      types.AssessmentStatusActive,
		})
		if err != nil {
			t.Fatalf("failed to create assessment: %v", err)
		}

		retrieved, err := repo.Assessment().Get(ctx, created.ID)
		if err != nil {
			t.Fatalf("failed to get assessment: %v", err)
		}

		if retrieved.ID != created.ID {
			t.Errorf("expected ID=%d, got %d", created.ID, retrieved.ID)
		}
		if retrieved.Name != created.Name {
			t.Errorf("expected name=%s, got %s", created.Name, retrieved.Name)
		}
		if retrieved.Status != types.AssessmentStatusActive {
			t.Errorf("expected status ACTIVE, got %s", retrieved.Status)
		}
	})

	t.Run("Get returns ErrNotFound for non-existent assessment", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Assessment().Get(ctx, 99999)
		if err == nil {
			t.Fatal("expected error for non-existent assessment")
		}
		if !errors.Is(err, interfaces.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("List returns all assessments", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		assessments, err := repo.Assessment().List(ctx)
		if err != nil {
			t.Fatalf("failed to list assessments: %v", err)
		}
		if len(assessments) != 0 {
			t.Errorf("expected 0 assessments, got %d", len(assessments))
		}

		for i := 0; i < 3; i++ {
			if _, err := repo.Assessment().Create(ctx, &model.Assessment{
				Name: fmt.Sprintf("Assessment %d", i+1),
			}); err != nil {
				t.Fatalf("failed to create assessment: %v", err)
			}
		}

		assessments, err = repo.Assessment().List(ctx)
		if err != nil {
			t.Fatalf("failed to list assessments: %v", err)
		}
		if len(assessments) != 3 {
			t.Errorf("expected 3 assessments, got %d", len(assessments))
		}
	})

	t.Run("Update preserves CreatedAt", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Assessment().Create(ctx, &model.Assessment{
			Name: "Original",
		})
		if err != nil {
			t.Fatalf("failed to create assessment: %v", err)
		}

		created.Name = "Renamed"
		created.Status = types.AssessmentStatusCompleted
		updated, err := repo.Assessment().Update(ctx, created)
		if err != nil {
			t.Fatalf("failed to update assessment: %v", err)
		}

		if updated.Name != "Renamed" {
			t.Errorf("expected name=Renamed, got %s", updated.Name)
		}
		if updated.Status != types.AssessmentStatusCompleted {
			t.Errorf("expected status COMPLETED, got %s", updated.Status)
		}
		if !updated.CreatedAt.Equal(created.CreatedAt) {
			t.Errorf("expected createdAt preserved, got %v", updated.CreatedAt)
		}
	})

	t.Run("Update returns ErrNotFound for non-existent assessment", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Assessment().Update(ctx, &model.Assessment{ID: 99999, Name: "Ghost"})
		if !errors.Is(err, interfaces.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Delete removes assessment", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Assessment().Create(ctx, &model.Assessment{Name: "Doomed"})
		if err != nil {
			t.Fatalf("failed to create assessment: %v", err)
		}

		if err := repo.Assessment().Delete(ctx, created.ID); err != nil {
			t.Fatalf("failed to delete assessment: %v", err)
		}

		if _, err := repo.Assessment().Get(ctx, created.ID); !errors.Is(err, interfaces.ErrNotFound) {
			t.Errorf("expected ErrNotFound after delete, got %v", err)
		}
	})
}

func newFirestoreRepository(t *testing.T) interfaces.Repository {
	t.Helper()

	projectID := os.Getenv("TEST_FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("TEST_FIRESTORE_PROJECT_ID not set")
	}

	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE_ID")

	ctx := context.Background()
	prefix := fmt.Sprintf("test_%d", time.Now().UnixNano())
	repo, err := firestore.New(ctx, projectID, databaseID, firestore.WithCollectionPrefix(prefix))
	if err != nil {
		t.Fatalf("failed to create firestore repository: %v", err)
	}
	t.Cleanup(func() {
		if err := repo.Close(); err != nil {
			t.Errorf("failed to close firestore repository: %v", err)
		}
	})
	return repo
}

func TestMemoryAssessmentRepository(t *testing.T) {
	runAssessmentRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestFirestoreAssessmentRepository(t *testing.T) {
	runAssessmentRepositoryTest(t, newFirestoreRepository)
}
