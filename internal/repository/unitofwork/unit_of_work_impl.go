package unitofwork

import (
	"context"
	"fmt"

	"vofc-ingest-be/internal/repository/contract"
	"vofc-ingest-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) TaxonomyRepository() contract.TaxonomyRepository {
	return implementation.NewTaxonomyRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TaxonomyEmbeddingRepository() contract.TaxonomyEmbeddingRepository {
	return implementation.NewTaxonomyEmbeddingRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SubmissionRepository() contract.SubmissionRepository {
	return implementation.NewSubmissionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) VulnerabilityRepository() contract.VulnerabilityRepository {
	return implementation.NewVulnerabilityRepository(u.getDB())
}

func (u *UnitOfWorkImpl) OfcRepository() contract.OfcRepository {
	return implementation.NewOfcRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SourceRepository() contract.SourceRepository {
	return implementation.NewSourceRepository(u.getDB())
}

func (u *UnitOfWorkImpl) LearningRepository() contract.LearningRepository {
	return implementation.NewLearningRepository(u.getDB())
}
