package service

import (
	"context"
	"fmt"
	"testing"

	"vofc-ingest-be/internal/entity"
	"vofc-ingest-be/internal/repository/contract"
	"vofc-ingest-be/internal/repository/specification"
	"vofc-ingest-be/internal/repository/unitofwork"
	"vofc-ingest-be/pkg/taxonomy"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// fakeTaxonomyRepository mimics the store's upsert semantics: a repeated
// name keeps its original id, and the upsert always hands that id back.
// Children arriving with a zero parent id are rejected the way a NOT
// NULL foreign key would reject them.
type fakeTaxonomyRepository struct {
	sectors     map[string]uuid.UUID
	disciplines map[string]uuid.UUID
	subsectors  map[string]*entity.Subsector
	subtypes    map[string]*entity.DisciplineSubtype
}

func newFakeTaxonomyRepository() *fakeTaxonomyRepository {
	return &fakeTaxonomyRepository{
		sectors:     make(map[string]uuid.UUID),
		disciplines: make(map[string]uuid.UUID),
		subsectors:  make(map[string]*entity.Subsector),
		subtypes:    make(map[string]*entity.DisciplineSubtype),
	}
}

func (f *fakeTaxonomyRepository) FindSectors(context.Context, ...specification.Specification) ([]*entity.Sector, error) {
	return nil, nil
}

func (f *fakeTaxonomyRepository) FindSubsectors(context.Context, ...specification.Specification) ([]*entity.Subsector, error) {
	return nil, nil
}

func (f *fakeTaxonomyRepository) FindDisciplines(context.Context, ...specification.Specification) ([]*entity.Discipline, error) {
	return nil, nil
}

func (f *fakeTaxonomyRepository) FindSubtypes(context.Context, ...specification.Specification) ([]*entity.DisciplineSubtype, error) {
	return nil, nil
}

func (f *fakeTaxonomyRepository) UpsertSector(_ context.Context, sector *entity.Sector) error {
	id, ok := f.sectors[sector.Name]
	if !ok {
		id = uuid.New()
		f.sectors[sector.Name] = id
	}
	sector.Id = id
	return nil
}

func (f *fakeTaxonomyRepository) UpsertDiscipline(_ context.Context, discipline *entity.Discipline) error {
	id, ok := f.disciplines[discipline.Name]
	if !ok {
		id = uuid.New()
		f.disciplines[discipline.Name] = id
	}
	discipline.Id = id
	return nil
}

func (f *fakeTaxonomyRepository) UpsertSubsector(_ context.Context, subsector *entity.Subsector) error {
	if subsector.SectorId == uuid.Nil {
		return fmt.Errorf("subsector %q has no sector id", subsector.Name)
	}
	existing, ok := f.subsectors[subsector.Name]
	if !ok {
		existing = &entity.Subsector{Id: uuid.New(), Name: subsector.Name}
		f.subsectors[subsector.Name] = existing
	}
	existing.SectorId = subsector.SectorId
	*subsector = *existing
	return nil
}

func (f *fakeTaxonomyRepository) UpsertSubtype(_ context.Context, subtype *entity.DisciplineSubtype) error {
	if subtype.DisciplineId == uuid.Nil {
		return fmt.Errorf("subtype %q has no discipline id", subtype.Name)
	}
	key := subtype.DisciplineId.String() + "/" + subtype.Name
	existing, ok := f.subtypes[key]
	if !ok {
		existing = &entity.DisciplineSubtype{
			Id:           uuid.New(),
			DisciplineId: subtype.DisciplineId,
			Name:         subtype.Name,
		}
		f.subtypes[key] = existing
	}
	*subtype = *existing
	return nil
}

type fakeUnitOfWork struct {
	unitofwork.UnitOfWork
	taxonomy contract.TaxonomyRepository
}

func (f *fakeUnitOfWork) TaxonomyRepository() contract.TaxonomyRepository {
	return f.taxonomy
}

type fakeRepositoryFactory struct {
	uow unitofwork.UnitOfWork
}

func (f *fakeRepositoryFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork {
	return f.uow
}

func TestSeedIsSafeToRerun(t *testing.T) {
	repo := newFakeTaxonomyRepository()
	svc := NewTaxonomyService(&fakeRepositoryFactory{
		uow: &fakeUnitOfWork{taxonomy: repo},
	}, nil, false)

	ctx := context.Background()
	require.NoError(t, svc.Seed(ctx))

	firstSectors := make(map[string]uuid.UUID, len(repo.subsectors))
	for name, s := range repo.subsectors {
		require.NotEqual(t, uuid.Nil, s.SectorId, "subsector %q seeded without a sector", name)
		firstSectors[name] = s.SectorId
	}
	require.Len(t, repo.subsectors, len(taxonomy.Subsectors))

	// A second run must reuse every existing row, not rewire children
	// to zero ids or insert duplicates.
	require.NoError(t, svc.Seed(ctx))

	require.Len(t, repo.subsectors, len(taxonomy.Subsectors))
	for name, s := range repo.subsectors {
		require.Equal(t, firstSectors[name], s.SectorId,
			"subsector %q changed sector between seed runs", name)
	}
	for key, st := range repo.subtypes {
		require.NotEqual(t, uuid.Nil, st.DisciplineId, "subtype %s lost its discipline", key)
	}
}
