package backend

import (
	"context"
	"fmt"
	"os"
	"time"
)

// ProviderConfig holds the resolved provider and credentials.
type ProviderConfig struct {
	Provider Provider
	APIKey   string
	Model    string // optional model override
	BaseURL  string // optional endpoint override (OpenAI-compatible gateways)
	Timeout  time.Duration
}

// DetectProvider scans the environment for a usable API key.
// Priority: OPENAI_API_KEY > GEMINI_API_KEY.
func DetectProvider() (ProviderConfig, error) {
	providers := []struct {
		envVar   string
		provider Provider
	}{
		{"OPENAI_API_KEY", ProviderOpenAI},
		{"GEMINI_API_KEY", ProviderGemini},
	}

	for _, p := range providers {
		if key := os.Getenv(p.envVar); key != "" {
			return ProviderConfig{Provider: p.provider, APIKey: key}, nil
		}
	}

	return ProviderConfig{}, fmt.Errorf("no API key found; set OPENAI_API_KEY or GEMINI_API_KEY")
}

// NewClient creates a backend client for the resolved provider.
func NewClient(ctx context.Context, cfg ProviderConfig) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key not configured for provider %q", cfg.Provider)
	}

	switch cfg.Provider {
	case ProviderOpenAI, "":
		oc := DefaultOpenAIConfig(cfg.APIKey)
		if cfg.Model != "" {
			oc.Model = cfg.Model
		}
		if cfg.BaseURL != "" {
			oc.BaseURL = cfg.BaseURL
		}
		if cfg.Timeout > 0 {
			oc.Timeout = cfg.Timeout
		}
		return NewOpenAIClientWithConfig(oc), nil
	case ProviderGemini:
		gc := DefaultGeminiConfig(cfg.APIKey)
		if cfg.Model != "" {
			gc.Model = cfg.Model
		}
		if cfg.Timeout > 0 {
			gc.Timeout = cfg.Timeout
		}
		return NewGeminiClientWithConfig(ctx, gc)
	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}
}
