package usecase

import (
	"github.com/shiftlens/shiftlens/pkg/domain/interfaces"
	"github.com/shiftlens/shiftlens/pkg/domain/model/config"
	"github.com/shiftlens/shiftlens/pkg/service/gcs"
)

type UseCases struct {
	repo     interfaces.Repository
	policy   *config.AnalysisPolicy
	exporter gcs.Exporter

	Assessment    *AssessmentUseCase
	ProcessImpact *ProcessImpactUseCase
	Analysis      *AnalysisUseCase
	Recompute     *RecomputeUseCase
}

type Option func(*UseCases)

// WithAnalysisPolicy overrides the default engine policy constants.
func WithAnalysisPolicy(policy *config.AnalysisPolicy) Option {
	return func(uc *UseCases) {
		uc.policy = policy
	}
}

// WithExporter enables report export to an object store.
func WithExporter(exporter gcs.Exporter) Option {
	return func(uc *UseCases) {
		uc.exporter = exporter
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:   repo,
		policy: config.DefaultAnalysisPolicy(),
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Assessment = NewAssessmentUseCase(repo)
	uc.ProcessImpact = NewProcessImpactUseCase(repo, uc.policy)
	uc.Analysis = NewAnalysisUseCase(repo, uc.policy, uc.exporter)
	uc.Recompute = NewRecomputeUseCase(repo, uc.policy)

	return uc
}
