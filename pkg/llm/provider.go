package llm

import (
	"context"
)

// Option allows for optional parameters like Temperature, Format, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // Override default model
	JSONFormat  bool   // Constrain the response to a JSON object
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

func WithJSONFormat() Option {
	return func(o *Options) {
		o.JSONFormat = true
	}
}

// LLMProvider defines the contract for any generative backend.
type LLMProvider interface {
	// Generate sends a single prompt to the model and returns the raw
	// response text. One attempt, no internal retries; retrying is the
	// caller's decision.
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)

	// ListModels returns the names of models installed on the backend.
	ListModels(ctx context.Context) ([]string, error)

	// ResolveModel maps a configured model name onto an installed one,
	// tolerating tag drift (e.g. "name:latest" -> "name:v3").
	ResolveModel(ctx context.Context, name string) (string, error)
}
