package unitofwork

import (
	"context"

	"vofc-ingest-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	TaxonomyRepository() contract.TaxonomyRepository
	TaxonomyEmbeddingRepository() contract.TaxonomyEmbeddingRepository

	SubmissionRepository() contract.SubmissionRepository
	VulnerabilityRepository() contract.VulnerabilityRepository
	OfcRepository() contract.OfcRepository
	SourceRepository() contract.SourceRepository

	LearningRepository() contract.LearningRepository
}
