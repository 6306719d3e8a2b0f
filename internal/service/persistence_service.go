package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"vofc-ingest-be/internal/dto"
	"vofc-ingest-be/internal/entity"
	"vofc-ingest-be/internal/repository/specification"
	"vofc-ingest-be/internal/repository/unitofwork"
	"vofc-ingest-be/pkg/pipeline"

	"github.com/google/uuid"
)

// IPersistenceService writes one run's result into the review queue.
// The submission root is created first and survives any child failure;
// child errors are captured in the payload instead of raised.
type IPersistenceService interface {
	Persist(ctx context.Context, result *dto.ResultDTO) (*dto.PersistResultDTO, error)
}

type persistenceService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewPersistenceService(uowFactory unitofwork.RepositoryFactory) IPersistenceService {
	return &persistenceService{uowFactory: uowFactory}
}

func (ps *persistenceService) Persist(ctx context.Context, result *dto.ResultDTO) (*dto.PersistResultDTO, error) {
	uow := ps.uowFactory.NewUnitOfWork(ctx)

	payload, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("%w: marshaling run payload: %v", pipeline.ErrPersistence, err)
	}

	// 1. Submission root. A failure here fails the whole file; nothing
	// has been written yet so the retry is clean.
	submission := &entity.Submission{
		SourceFile:   result.Source,
		Status:       entity.SubmissionStatusPendingReview,
		ModelVersion: result.ModelVersion,
		Payload:      payload,
	}
	if err := uow.SubmissionRepository().Create(ctx, submission); err != nil {
		return nil, fmt.Errorf("%w: creating submission for %s: %v", pipeline.ErrPersistence, result.Source, err)
	}
	log.Printf("[INFO] Submission %s created for %s", submission.Id, result.Source)

	// 2. One source row per run; OFC source links point at it.
	source := &entity.Source{
		SubmissionId: submission.Id,
		FileName:     result.Source,
	}
	if err := uow.SourceRepository().Create(ctx, source); err != nil {
		ps.recordError(result, fmt.Sprintf("source row: %v", err))
		source = nil
	}

	counts := dto.PersistCountsDTO{}

	// 3. Children. Every store call is wrapped: a failure records the
	// error against the payload and moves on.
	for i := range result.Records {
		record := &result.Records[i]
		vulnID, inserted, err := ps.upsertVulnerability(ctx, uow, submission.Id, record)
		if err != nil {
			ps.recordError(result, fmt.Sprintf("record %q: %v", truncateText(record.Vulnerability, 60), err))
			counts.Skipped++
			continue
		}
		if inserted {
			counts.Inserted++
		} else {
			counts.Skipped++
		}

		for position, option := range record.Options {
			if err := ps.linkOption(ctx, uow, submission.Id, vulnID, option, position, source, record.PageRef); err != nil {
				ps.recordError(result, fmt.Sprintf("record %q option %d: %v", truncateText(record.Vulnerability, 60), position, err))
				continue
			}
			counts.Linked++
		}
	}

	// 4. Payload rewrite so per-call failures are visible to reviewers.
	if len(result.PersistenceErrors) > 0 {
		if updated, err := json.Marshal(result); err == nil {
			if err := uow.SubmissionRepository().UpdatePayload(ctx, submission.Id, updated); err != nil {
				log.Printf("[WARN] Failed to update payload for submission %s: %v", submission.Id, err)
			}
		}
	}

	log.Printf("[INFO] Persisted %s: %d inserted, %d linked, %d skipped",
		result.Source, counts.Inserted, counts.Linked, counts.Skipped)

	return &dto.PersistResultDTO{SubmissionId: submission.Id, Counts: counts}, nil
}

// upsertVulnerability reuses a prior row by dedupe key or inserts a new
// one. Returns the row ID and whether an insert happened.
func (ps *persistenceService) upsertVulnerability(ctx context.Context, uow unitofwork.UnitOfWork, submissionID uuid.UUID, record *dto.RecordDTO) (uuid.UUID, bool, error) {
	repo := uow.VulnerabilityRepository()

	existing, err := repo.FindOne(ctx, specification.ByDedupeKey{DedupeKey: record.DedupeKey})
	if err != nil {
		return uuid.Nil, false, err
	}
	if existing != nil {
		return existing.Id, false, nil
	}

	vuln := &entity.Vulnerability{
		SubmissionId:      submissionID,
		DedupeKey:         record.DedupeKey,
		VulnerabilityText: record.Vulnerability,
		DisciplineId:      record.DisciplineId,
		SubtypeName:       record.Subtype,
		SectorId:          record.SectorId,
		SubsectorId:       record.SubsectorId,
		Confidence:        record.Confidence,
		ImpactLevel:       record.ImpactLevel,
	}
	if err := repo.Create(ctx, vuln); err != nil {
		return uuid.Nil, false, err
	}
	return vuln.Id, true, nil
}

// linkOption reuses an OFC row by exact option text or inserts one,
// then links it to the vulnerability and its source.
func (ps *persistenceService) linkOption(ctx context.Context, uow unitofwork.UnitOfWork, submissionID, vulnID uuid.UUID, option string, position int, source *entity.Source, pageRef *string) error {
	repo := uow.OfcRepository()

	ofc, err := repo.FindOne(ctx, specification.ByOptionText{OptionText: option})
	if err != nil {
		return err
	}
	if ofc == nil {
		ofc = &entity.Ofc{SubmissionId: submissionID, OptionText: option}
		if err := repo.Create(ctx, ofc); err != nil {
			return err
		}
	}

	link := &entity.VulnerabilityOfcLink{
		SubmissionId:    submissionID,
		VulnerabilityId: vulnID,
		OfcId:           ofc.Id,
		Position:        position,
	}
	exists, err := repo.LinkExists(ctx, link)
	if err != nil {
		return err
	}
	if !exists {
		if err := repo.CreateLink(ctx, link); err != nil {
			return err
		}
	}

	if source != nil {
		sourceLink := &entity.OfcSource{
			OfcId:    ofc.Id,
			SourceId: source.Id,
			PageRef:  pageRef,
		}
		if err := repo.CreateSourceLink(ctx, sourceLink); err != nil {
			return err
		}
	}
	return nil
}

func (ps *persistenceService) recordError(result *dto.ResultDTO, msg string) {
	log.Printf("[ERROR] Persistence: %s (%s)", msg, result.Source)
	result.PersistenceErrors = append(result.PersistenceErrors, msg)
}

func truncateText(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
