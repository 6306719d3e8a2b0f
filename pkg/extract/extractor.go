package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"vofc-ingest-be/internal/constant"
	"vofc-ingest-be/pkg/llm"
	"vofc-ingest-be/pkg/pdftext"
	"vofc-ingest-be/pkg/pipeline"
)

// Extractor runs the per-chunk LLM extraction. One attempt per chunk;
// the worker decides whether a whole file is retried.
type Extractor struct {
	provider llm.LLMProvider
	model    string
}

func NewExtractor(provider llm.LLMProvider, model string) *Extractor {
	return &Extractor{provider: provider, model: model}
}

// ResolveModel pins the configured model name against the backend
// catalog before the first chunk is sent. The resolved name is used for
// every subsequent call.
func (e *Extractor) ResolveModel(ctx context.Context) error {
	resolved, err := e.provider.ResolveModel(ctx, e.model)
	if err != nil {
		return err
	}
	if resolved != e.model {
		log.Printf("[INFO] Model %q resolved to installed variant %q", e.model, resolved)
		e.model = resolved
	}
	return nil
}

func (e *Extractor) Model() string {
	return e.model
}

// ExtractChunk sends one chunk to the model. A malformed response or a
// model-side error yields zero records plus an error note and the file
// continues; an unreachable backend or missing model returns a non-nil
// error so the whole file can be retried instead of persisting an
// empty run.
func (e *Extractor) ExtractChunk(ctx context.Context, chunk pdftext.Chunk) (ChunkResult, error) {
	result := ChunkResult{ChunkID: chunk.ID, PageRange: chunk.PageRange}

	prompt := constant.BuildExtractionPrompt(chunk.Text)
	response, err := e.provider.Generate(ctx, prompt,
		llm.WithModel(e.model),
		llm.WithTemperature(0.1),
		llm.WithJSONFormat(),
	)
	if err != nil {
		if errors.Is(err, pipeline.ErrDependency) || errors.Is(err, pipeline.ErrModelUnavailable) {
			return result, err
		}
		log.Printf("[WARN] Chunk %s: model call failed: %v", chunk.ID, err)
		result.Error = fmt.Sprintf("model call failed: %v", err)
		return result, nil
	}

	records, err := ParseRecords(response)
	if err != nil {
		log.Printf("[WARN] Chunk %s: response was not valid JSON: %v", chunk.ID, err)
		result.Error = fmt.Sprintf("parse failed: %v", err)
		return result, nil
	}

	result.Records = records
	return result, nil
}

// ParseRecords extracts the records array from a model response.
// Accepts a bare {"records":[...]} object, a bare array, and fenced
// code blocks around either.
func ParseRecords(response string) ([]RawRecord, error) {
	text := stripCodeFences(strings.TrimSpace(response))

	var envelope struct {
		Records []RawRecord `json:"records"`
	}
	if err := json.Unmarshal([]byte(text), &envelope); err == nil {
		return envelope.Records, nil
	}

	var list []RawRecord
	if err := json.Unmarshal([]byte(text), &list); err == nil {
		return list, nil
	}

	// Last resort: the model sometimes pads valid JSON with prose.
	if start := strings.Index(text, "{"); start >= 0 {
		if end := strings.LastIndex(text, "}"); end > start {
			if err := json.Unmarshal([]byte(text[start:end+1]), &envelope); err == nil {
				return envelope.Records, nil
			}
		}
	}

	return nil, fmt.Errorf("no JSON records object found in response")
}

func stripCodeFences(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
