package service

import (
	"context"
	"log"
	"path/filepath"
	"strings"
	"time"

	"vofc-ingest-be/internal/config"
	"vofc-ingest-be/internal/dto"
	"vofc-ingest-be/pkg/extract"
	"vofc-ingest-be/pkg/pdftext"
	"vofc-ingest-be/pkg/queue"
	"vofc-ingest-be/pkg/taxonomy"
)

// IPipelineService runs the full extraction pipeline for one file:
// pages, chunks, model extraction, merge, taxonomy resolution,
// normalization, persistence.
type IPipelineService interface {
	ProcessFile(ctx context.Context, path string) (*dto.ResultDTO, *dto.PersistResultDTO, error)
}

type pipelineService struct {
	cfg         *config.Config
	extractor   *extract.Extractor
	taxonomy    ITaxonomyService
	persistence IPersistenceService
	progress    *queue.ProgressWriter
}

func NewPipelineService(
	cfg *config.Config,
	extractor *extract.Extractor,
	taxonomyService ITaxonomyService,
	persistenceService IPersistenceService,
	progress *queue.ProgressWriter,
) IPipelineService {
	return &pipelineService{
		cfg:         cfg,
		extractor:   extractor,
		taxonomy:    taxonomyService,
		persistence: persistenceService,
		progress:    progress,
	}
}

func (ps *pipelineService) ProcessFile(ctx context.Context, path string) (*dto.ResultDTO, *dto.PersistResultDTO, error) {
	fileName := filepath.Base(path)
	stem := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	log.Printf("[INFO] Processing %s", fileName)

	// 1. Extract pages and metadata. An unreadable PDF fails the file.
	ps.reportStage(fileName, "extracting text", 0, 0)
	pages, err := pdftext.ExtractPages(path)
	if err != nil {
		return nil, nil, err
	}
	meta, metaErr := pdftext.ExtractMetadata(path)
	if metaErr != nil {
		log.Printf("[WARN] No usable metadata in %s: %v", fileName, metaErr)
	}

	// 2. Reflow wrapped lines and chunk on page boundaries.
	pages = pdftext.ReflowPages(pages)
	chunks := pdftext.ChunkPages(stem, pages, ps.cfg.Pipeline.MaxChunkChars)
	log.Printf("[INFO] %s: %d pages, %d chunks", fileName, len(pages), len(chunks))

	// 3. Pin the model before the first chunk goes out.
	if err := ps.extractor.ResolveModel(ctx); err != nil {
		return nil, nil, err
	}

	// 4. Per-chunk extraction. A malformed chunk contributes zero
	// records and the run continues; an unreachable backend fails the
	// file so the worker retries it later.
	chunkResults := make([]extract.ChunkResult, 0, len(chunks))
	for i, chunk := range chunks {
		ps.reportStage(fileName, "extracting records", i, len(chunks))
		cr, err := ps.extractor.ExtractChunk(ctx, chunk)
		if err != nil {
			return nil, nil, err
		}
		chunkResults = append(chunkResults, cr)
	}

	// 5. Merge duplicates within the run.
	merged := extract.MergeChunkResults(chunkResults)

	// 6. Document-level classification from metadata and leading pages.
	ps.reportStage(fileName, "resolving taxonomy", len(chunks), len(chunks))
	classifier, err := ps.taxonomy.DocumentClassifier(ctx)
	if err != nil {
		return nil, nil, err
	}
	resolver, err := ps.taxonomy.DisciplineResolver(ctx)
	if err != nil {
		return nil, nil, err
	}

	docClass := classifier.Classify(taxonomy.DocumentContext{
		FileName:    fileName,
		Title:       meta.Title,
		Subject:     meta.Subject,
		Keywords:    meta.Keywords,
		Description: meta.Description,
		BodyText:    leadingText(pages, 3),
	}, "", "")

	result := &dto.ResultDTO{
		Source:       fileName,
		ProcessedAt:  time.Now().UTC(),
		ModelVersion: ps.extractor.Model(),
		Records:      make([]dto.RecordDTO, 0, len(merged)),
	}
	if !docClass.IsNull() {
		result.Classification = &dto.ClassificationDTO{
			Sector:      docClass.SectorName,
			SectorId:    docClass.SectorID,
			Subsector:   docClass.SubsectorName,
			SubsectorId: docClass.SubsectorID,
			Confidence:  docClass.Confidence,
		}
	}
	for _, cr := range chunkResults {
		if cr.Error != "" {
			result.ChunkErrors = append(result.ChunkErrors, dto.ChunkErrorDTO{ChunkId: cr.ChunkID, Error: cr.Error})
		}
	}

	// 7. Normalize and resolve each record.
	for _, raw := range merged {
		record, err := extract.NormalizeRecord(raw, raw.ChunkID)
		if err != nil {
			log.Printf("[WARN] Dropping record from %s: %v", fileName, err)
			result.DroppedRecords = append(result.DroppedRecords, err.Error())
			continue
		}

		resolution := resolver.Resolve(record.UnresolvedRaw.Discipline,
			record.Vulnerability+" "+strings.Join(record.Options, " "))
		record.DisciplineName = resolution.Name
		record.DisciplineID = resolution.ID
		record.SubtypeName = resolution.Subtype

		applyClassification(record, docClass,
			classifier.ResolveLabels(record.UnresolvedRaw.Sector, record.UnresolvedRaw.Subsector))

		result.Records = append(result.Records, toRecordDTO(record))
	}
	result.TotalRecords = len(result.Records)

	// 8. Persist unless running offline.
	if ps.cfg.Pipeline.OfflineMode {
		log.Printf("[INFO] Offline mode: skipping store writes for %s", fileName)
		return result, nil, nil
	}

	ps.reportStage(fileName, "persisting", len(chunks), len(chunks))
	persisted, err := ps.persistence.Persist(ctx, result)
	if err != nil {
		return result, nil, err
	}
	return result, persisted, nil
}

// applyClassification propagates the document-level sector/subsector to
// a record unless its own labels resolved with strictly higher
// confidence.
func applyClassification(record *extract.NormalizedRecord, doc, recordLevel taxonomy.Classification) {
	chosen := doc
	if !recordLevel.IsNull() && recordLevel.Confidence > doc.Confidence {
		chosen = recordLevel
	}
	if chosen.IsNull() {
		return
	}
	record.SectorName = chosen.SectorName
	record.SectorID = chosen.SectorID
	record.SubsectorName = chosen.SubsectorName
	record.SubsectorID = chosen.SubsectorID
}

func toRecordDTO(record *extract.NormalizedRecord) dto.RecordDTO {
	return dto.RecordDTO{
		Vulnerability: record.Vulnerability,
		Options:       record.Options,
		Discipline:    record.DisciplineName,
		DisciplineId:  record.DisciplineID,
		Subtype:       record.SubtypeName,
		Sector:        record.SectorName,
		SectorId:      record.SectorID,
		Subsector:     record.SubsectorName,
		SubsectorId:   record.SubsectorID,
		Confidence:    record.Confidence,
		ImpactLevel:   record.ImpactLevel,
		PageRef:       record.PageRef,
		ChunkId:       record.ChunkID,
		DedupeKey:     record.DedupeKey,
	}
}

// leadingText concatenates the first n pages for document
// classification, capped so enormous pages stay cheap to score.
func leadingText(pages []pdftext.Page, n int) string {
	var b strings.Builder
	for i, page := range pages {
		if i >= n {
			break
		}
		b.WriteString(page.Text)
		b.WriteString("\n")
	}
	text := b.String()
	if len(text) > 8000 {
		text = text[:8000]
	}
	return text
}

func (ps *pipelineService) reportStage(file, stage string, done, total int) {
	if ps.progress == nil {
		return
	}
	if err := ps.progress.Write(queue.Progress{
		Status:      "processing",
		CurrentFile: file,
		Stage:       stage,
		ChunksDone:  done,
		ChunksTotal: total,
	}); err != nil {
		log.Printf("[WARN] Progress snapshot failed: %v", err)
	}
}
