package extract

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"vofc-ingest-be/pkg/llm"
	"vofc-ingest-be/pkg/pdftext"
	"vofc-ingest-be/pkg/pipeline"
)

// fakeProvider returns canned responses without a live backend.
type fakeProvider struct {
	response string
	err      error
	models   []string
	prompts  []string
}

func (f *fakeProvider) Generate(_ context.Context, prompt string, _ ...llm.Option) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func (f *fakeProvider) ListModels(context.Context) ([]string, error) {
	return f.models, nil
}

func (f *fakeProvider) ResolveModel(_ context.Context, name string) (string, error) {
	for _, m := range f.models {
		if m == name {
			return m, nil
		}
	}
	if len(f.models) > 0 {
		return f.models[0], nil
	}
	return "", errors.New("no models")
}

func TestParseRecords(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     int
		wantErr  bool
	}{
		{
			name:     "records envelope",
			response: `{"records":[{"vulnerability":"v1","options":["o1"]}]}`,
			want:     1,
		},
		{
			name:     "bare array",
			response: `[{"vulnerability":"v1"},{"vulnerability":"v2"}]`,
			want:     2,
		},
		{
			name:     "fenced block",
			response: "```json\n{\"records\":[{\"vulnerability\":\"v1\"}]}\n```",
			want:     1,
		},
		{
			name:     "prose around the object",
			response: "Here is the result: {\"records\":[{\"vulnerability\":\"v1\"}]} hope that helps",
			want:     1,
		},
		{
			name:     "single option as string",
			response: `{"records":[{"vulnerability":"v1","options":"just one"}]}`,
			want:     1,
		},
		{
			name:     "empty records",
			response: `{"records":[]}`,
			want:     0,
		},
		{
			name:     "not json",
			response: "I could not find any vulnerabilities.",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := ParseRecords(tt.response)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected parse error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRecords() error = %v", err)
			}
			if len(records) != tt.want {
				t.Errorf("records = %d, want %d", len(records), tt.want)
			}
		})
	}
}

func TestExtractChunkBadResponseYieldsZeroRecords(t *testing.T) {
	provider := &fakeProvider{response: "not json at all"}
	e := NewExtractor(provider, "llama3:latest")

	result, err := e.ExtractChunk(context.Background(), pdftext.Chunk{ID: "doc_c003", PageRange: "5–6", Text: "text"})
	if err != nil {
		t.Fatalf("parse failure must not fail the file: %v", err)
	}
	if len(result.Records) != 0 {
		t.Errorf("records = %d, want 0 on parse failure", len(result.Records))
	}
	if result.Error == "" {
		t.Error("parse failure must be noted on the chunk result")
	}
	if result.ChunkID != "doc_c003" {
		t.Errorf("ChunkID = %q", result.ChunkID)
	}
}

func TestExtractChunkPropagatesBackendOutage(t *testing.T) {
	provider := &fakeProvider{
		err: fmt.Errorf("%w: connection refused", pipeline.ErrDependency),
	}
	e := NewExtractor(provider, "llama3:latest")

	_, err := e.ExtractChunk(context.Background(), pdftext.Chunk{ID: "doc_c001", Text: "text"})
	if err == nil {
		t.Fatal("unreachable backend must fail the chunk, not degrade to zero records")
	}
	if !pipeline.IsRetryable(err) {
		t.Errorf("error %v is not retryable; the file would leave incoming", err)
	}
}

func TestExtractChunkModelErrorDegradesToZeroRecords(t *testing.T) {
	provider := &fakeProvider{err: errors.New("model returned 500")}
	e := NewExtractor(provider, "llama3:latest")

	result, err := e.ExtractChunk(context.Background(), pdftext.Chunk{ID: "doc_c002", Text: "text"})
	if err != nil {
		t.Fatalf("model-side failure must not fail the file: %v", err)
	}
	if result.Error == "" {
		t.Error("model failure must be noted on the chunk result")
	}
}

func TestExtractChunkPromptCarriesScopeAndText(t *testing.T) {
	provider := &fakeProvider{response: `{"records":[]}`}
	e := NewExtractor(provider, "llama3:latest")

	if _, err := e.ExtractChunk(context.Background(), pdftext.Chunk{ID: "c", Text: "[PAGE 1]\nchunk body here"}); err != nil {
		t.Fatalf("ExtractChunk: %v", err)
	}
	if len(provider.prompts) != 1 {
		t.Fatalf("prompts sent = %d, want 1 (single attempt per chunk)", len(provider.prompts))
	}
	prompt := provider.prompts[0]
	for _, want := range []string{"physical security", "CVEs", "chunk body here", `"records"`} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestResolveModelUpdatesExtractor(t *testing.T) {
	provider := &fakeProvider{models: []string{"llama3:v3"}}
	e := NewExtractor(provider, "llama3:latest")

	if err := e.ResolveModel(context.Background()); err != nil {
		t.Fatalf("ResolveModel() error = %v", err)
	}
	if e.Model() != "llama3:v3" {
		t.Errorf("Model() = %q, want resolved variant", e.Model())
	}
}
