package memory

import (
	"github.com/shiftlens/shiftlens/pkg/domain/interfaces"
)

// Memory is an in-memory repository for development and tests. It mirrors
// the behavior of the Firestore repository, including auto-increment IDs
// and copy-on-read semantics.
type Memory struct {
	assessment    *assessmentRepository
	processImpact *processImpactRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		assessment:    newAssessmentRepository(),
		processImpact: newProcessImpactRepository(),
	}
}

func (m *Memory) Assessment() interfaces.AssessmentRepository {
	return m.assessment
}

func (m *Memory) ProcessImpact() interfaces.ProcessImpactRepository {
	return m.processImpact
}

func (m *Memory) Close() error {
	return nil
}
