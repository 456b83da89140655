// Package backend defines the generative-text client contract and its
// provider implementations. The core only depends on this contract: a
// structured call that must honor a JSON schema, and a free-text call.
package backend

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrNoResult indicates the provider answered but produced no usable
// payload (empty completion, refusal, or missing structured output).
var ErrNoResult = errors.New("backend returned no result")

// ParseRequest asks the provider for schema-conforming structured output.
type ParseRequest struct {
	Instructions string
	Input        string
	SchemaName   string
	Schema       map[string]any
}

// GenerateRequest asks the provider for free text.
type GenerateRequest struct {
	Instructions string
	Input        string
}

// Client is the provider-neutral interface consumed by the query engine.
type Client interface {
	// Parse requests structured output conforming to req.Schema and
	// returns the raw JSON payload. Returns ErrNoResult when the provider
	// could not produce conformant output.
	Parse(ctx context.Context, req ParseRequest) (json.RawMessage, error)

	// Generate requests a plain text completion.
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// Provider identifies a supported backend implementation.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"
)
