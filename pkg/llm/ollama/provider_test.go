package ollama

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vofc-ingest-be/pkg/llm"
	"vofc-ingest-be/pkg/pipeline"
)

func newTestBackend(t *testing.T, models []string, responseBody string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/tags":
			type tag struct {
				Name string `json:"name"`
			}
			tags := make([]tag, len(models))
			for i, m := range models {
				tags[i] = tag{Name: m}
			}
			json.NewEncoder(w).Encode(map[string]interface{}{"models": tags})
		case "/api/generate":
			var req map[string]interface{}
			json.NewDecoder(r.Body).Decode(&req)
			if stream, ok := req["stream"].(bool); !ok || stream {
				t.Errorf("generate request must set stream=false")
			}
			w.Write([]byte(responseBody))
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestGenerateParsesResponseShape(t *testing.T) {
	srv := newTestBackend(t, nil, `{"response":"{\"records\":[]}","done":true}`)
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "llama3:latest", 10*time.Second)
	got, err := p.Generate(context.Background(), "prompt", llm.WithJSONFormat())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != `{"records":[]}` {
		t.Errorf("Generate() = %q", got)
	}
}

func TestGenerateParsesChatShape(t *testing.T) {
	srv := newTestBackend(t, nil, `{"message":{"content":"hello"},"done":true}`)
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "llama3:latest", 10*time.Second)
	got, err := p.Generate(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != "hello" {
		t.Errorf("Generate() = %q, want hello", got)
	}
}

func TestResolveModel(t *testing.T) {
	tests := []struct {
		name      string
		installed []string
		ask       string
		want      string
		wantErr   bool
	}{
		{"exact match", []string{"llama3:latest", "qwen2.5:7b"}, "llama3:latest", "llama3:latest", false},
		{"variant of same base", []string{"llama3:v3"}, "llama3:latest", "llama3:v3", false},
		{"bare base installed", []string{"llama3"}, "llama3:latest", "llama3", false},
		{"not installed", []string{"qwen2.5:7b"}, "llama3:latest", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestBackend(t, tt.installed, `{}`)
			defer srv.Close()

			p := NewOllamaProvider(srv.URL, tt.ask, 10*time.Second)
			got, err := p.ResolveModel(context.Background(), tt.ask)
			if tt.wantErr {
				if !errors.Is(err, pipeline.ErrModelUnavailable) {
					t.Fatalf("error = %v, want ErrModelUnavailable", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveModel() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveModel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGenerateUnreachableBackendIsDependencyError(t *testing.T) {
	p := NewOllamaProvider("http://127.0.0.1:1", "llama3", time.Second)
	_, err := p.Generate(context.Background(), "prompt")
	if !errors.Is(err, pipeline.ErrDependency) {
		t.Errorf("error = %v, want ErrDependency", err)
	}
}
