package service

import (
	"context"
	"log"
	"sync"

	"vofc-ingest-be/internal/entity"
	"vofc-ingest-be/internal/repository/contract"
	"vofc-ingest-be/internal/repository/unitofwork"
	"vofc-ingest-be/pkg/embedding"
	"vofc-ingest-be/pkg/taxonomy"
)

// ITaxonomyService owns the resolver singletons. Resolver construction
// is expensive (vocabulary load plus one embedding call per seed), so
// the first caller triggers it and everyone else reuses the result.
type ITaxonomyService interface {
	DisciplineResolver(ctx context.Context) (*taxonomy.DisciplineResolver, error)
	DocumentClassifier(ctx context.Context) (*taxonomy.DocumentClassifier, error)
	Seed(ctx context.Context) error
}

type taxonomyService struct {
	uowFactory unitofwork.RepositoryFactory
	embedder   embedding.EmbeddingProvider
	offline    bool

	once       sync.Once
	resolver   *taxonomy.DisciplineResolver
	classifier *taxonomy.DocumentClassifier
	loadErr    error
}

func NewTaxonomyService(uowFactory unitofwork.RepositoryFactory, embedder embedding.EmbeddingProvider, offline bool) ITaxonomyService {
	return &taxonomyService{
		uowFactory: uowFactory,
		embedder:   embedder,
		offline:    offline,
	}
}

func (ts *taxonomyService) DisciplineResolver(ctx context.Context) (*taxonomy.DisciplineResolver, error) {
	ts.load(ctx)
	return ts.resolver, ts.loadErr
}

func (ts *taxonomyService) DocumentClassifier(ctx context.Context) (*taxonomy.DocumentClassifier, error) {
	ts.load(ctx)
	return ts.classifier, ts.loadErr
}

func (ts *taxonomyService) load(ctx context.Context) {
	ts.once.Do(func() {
		var (
			disciplineRefs []taxonomy.DisciplineRef
			sectorRefs     []taxonomy.SectorRef
			subsectorRefs  []taxonomy.SubsectorRef
			seedCache      taxonomy.SeedCache
		)

		if !ts.offline {
			uow := ts.uowFactory.NewUnitOfWork(ctx)
			repo := uow.TaxonomyRepository()

			disciplines, err := repo.FindDisciplines(ctx)
			if err != nil {
				log.Printf("[WARN] Taxonomy store unavailable, resolving by name only: %v", err)
			} else {
				for _, d := range disciplines {
					disciplineRefs = append(disciplineRefs, taxonomy.DisciplineRef{
						ID:     d.Id,
						Name:   d.Name,
						Active: d.Active,
					})
				}

				sectors, _ := repo.FindSectors(ctx)
				sectorNames := make(map[string]string, len(sectors))
				for _, s := range sectors {
					sectorRefs = append(sectorRefs, taxonomy.SectorRef{ID: s.Id, Name: s.Name})
					sectorNames[s.Id.String()] = s.Name
				}

				subsectors, _ := repo.FindSubsectors(ctx)
				for _, s := range subsectors {
					subsectorRefs = append(subsectorRefs, taxonomy.SubsectorRef{
						ID:         s.Id,
						SectorID:   s.SectorId,
						Name:       s.Name,
						SectorName: sectorNames[s.SectorId.String()],
					})
				}

				seedCache = newStoreSeedCache(uow.TaxonomyEmbeddingRepository())
			}
		}

		semantic := taxonomy.NewSemanticScorer(ts.embedder, seedCache)
		ts.resolver = taxonomy.NewDisciplineResolver(disciplineRefs, semantic)
		ts.classifier = taxonomy.NewDocumentClassifier(sectorRefs, subsectorRefs, semantic)

		log.Printf("[INFO] Taxonomy resolvers ready (%d disciplines, %d sectors, %d subsectors from store)",
			len(disciplineRefs), len(sectorRefs), len(subsectorRefs))
	})
}

// Seed upserts the built-in vocabulary into the taxonomy store.
func (ts *taxonomyService) Seed(ctx context.Context) error {
	uow := ts.uowFactory.NewUnitOfWork(ctx)
	repo := uow.TaxonomyRepository()

	for _, d := range taxonomy.Disciplines {
		discipline := &entity.Discipline{
			Name:     d.Name,
			Category: d.Category,
			Active:   d.Active,
		}
		if err := repo.UpsertDiscipline(ctx, discipline); err != nil {
			return err
		}
		for name := range d.Subtypes {
			subtype := &entity.DisciplineSubtype{
				DisciplineId: discipline.Id,
				Name:         name,
			}
			if err := repo.UpsertSubtype(ctx, subtype); err != nil {
				return err
			}
		}
	}

	sectorIDs := make(map[string]*entity.Sector)
	for _, s := range taxonomy.Subsectors {
		sector, ok := sectorIDs[s.SectorName]
		if !ok {
			sector = &entity.Sector{Name: s.SectorName}
			if err := repo.UpsertSector(ctx, sector); err != nil {
				return err
			}
			sectorIDs[s.SectorName] = sector
		}
		subsector := &entity.Subsector{
			SectorId: sector.Id,
			Name:     s.Name,
		}
		if err := repo.UpsertSubsector(ctx, subsector); err != nil {
			return err
		}
	}

	log.Printf("[INFO] Taxonomy seeded: %d disciplines, %d sectors, %d subsectors",
		len(taxonomy.Disciplines), len(sectorIDs), len(taxonomy.Subsectors))
	return nil
}

// storeSeedCache adapts the taxonomy embedding repository to the
// resolver's SeedCache. Failures fall back to recomputation.
type storeSeedCache struct {
	repo contract.TaxonomyEmbeddingRepository
}

func newStoreSeedCache(repo contract.TaxonomyEmbeddingRepository) *storeSeedCache {
	return &storeSeedCache{repo: repo}
}

func (c *storeSeedCache) Load(label string) ([][]float32, bool) {
	rows, err := c.repo.FindByLabel(context.Background(), label)
	if err != nil || len(rows) == 0 {
		return nil, false
	}
	vectors := make([][]float32, len(rows))
	for i, row := range rows {
		vectors[i] = row.Embedding
	}
	return vectors, true
}

func (c *storeSeedCache) Save(label string, vectors [][]float32) {
	rows := make([]*entity.TaxonomyEmbedding, len(vectors))
	for i, vec := range vectors {
		rows[i] = &entity.TaxonomyEmbedding{Label: label, SeedIndex: i, Embedding: vec}
	}
	if err := c.repo.ReplaceLabel(context.Background(), label, rows); err != nil {
		log.Printf("[WARN] Failed to cache seed embeddings for %q: %v", label, err)
	}
}
