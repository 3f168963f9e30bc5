package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/shiftlens/shiftlens/pkg/domain/model"
)

type processImpactRepository struct {
	mu      sync.RWMutex
	impacts map[int64]*model.ProcessImpact
	nextID  int64
}

func newProcessImpactRepository() *processImpactRepository {
	return &processImpactRepository{
		impacts: make(map[int64]*model.ProcessImpact),
		nextID:  1,
	}
}

// copyProcessImpact creates a deep copy. All fields are value types, so a
// struct copy is sufficient.
func copyProcessImpact(pi *model.ProcessImpact) *model.ProcessImpact {
	copied := *pi
	return &copied
}

func (r *processImpactRepository) Create(ctx context.Context, pi *model.ProcessImpact) (*model.ProcessImpact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyProcessImpact(pi)
	created.ID = r.nextID
	created.CreatedAt = now
	created.UpdatedAt = now
	r.nextID++

	r.impacts[created.ID] = created
	return copyProcessImpact(created), nil
}

func (r *processImpactRepository) Get(ctx context.Context, id int64) (*model.ProcessImpact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pi, exists := r.impacts[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "process impact not found", goerr.V("id", id))
	}

	return copyProcessImpact(pi), nil
}

func (r *processImpactRepository) ListByAssessment(ctx context.Context, assessmentID int64) ([]*model.ProcessImpact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	impacts := make([]*model.ProcessImpact, 0)
	for _, pi := range r.impacts {
		if pi.AssessmentID == assessmentID {
			impacts = append(impacts, copyProcessImpact(pi))
		}
	}

	return impacts, nil
}

func (r *processImpactRepository) Update(ctx context.Context, pi *model.ProcessImpact) (*model.ProcessImpact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.impacts[pi.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "process impact not found", goerr.V("id", pi.ID))
	}

	updated := copyProcessImpact(pi)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.impacts[updated.ID] = updated
	return copyProcessImpact(updated), nil
}

func (r *processImpactRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.impacts[id]; !exists {
		return goerr.Wrap(ErrNotFound, "process impact not found", goerr.V("id", id))
	}

	delete(r.impacts, id)
	return nil
}

func (r *processImpactRepository) DeleteByAssessment(ctx context.Context, assessmentID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, pi := range r.impacts {
		if pi.AssessmentID == assessmentID {
			delete(r.impacts, id)
		}
	}

	return nil
}
