package backend

import (
	"context"
	"testing"
)

func TestDetectProviderPriority(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("GEMINI_API_KEY", "gm-key")

	cfg, err := DetectProvider()
	if err != nil {
		t.Fatalf("DetectProvider failed: %v", err)
	}
	if cfg.Provider != ProviderOpenAI {
		t.Errorf("expected openai to win, got %s", cfg.Provider)
	}
	if cfg.APIKey != "sk-openai" {
		t.Errorf("unexpected key %q", cfg.APIKey)
	}
}

func TestDetectProviderGeminiFallback(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "gm-key")

	cfg, err := DetectProvider()
	if err != nil {
		t.Fatalf("DetectProvider failed: %v", err)
	}
	if cfg.Provider != ProviderGemini {
		t.Errorf("expected gemini, got %s", cfg.Provider)
	}
}

func TestDetectProviderNoKeys(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	if _, err := DetectProvider(); err == nil {
		t.Error("expected error with no keys configured")
	}
}

func TestNewClientOpenAI(t *testing.T) {
	client, err := NewClient(context.Background(), ProviderConfig{
		Provider: ProviderOpenAI,
		APIKey:   "sk-test",
		Model:    "gpt-custom",
	})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	oc, ok := client.(*OpenAIClient)
	if !ok {
		t.Fatalf("expected *OpenAIClient, got %T", client)
	}
	if oc.GetModel() != "gpt-custom" {
		t.Errorf("model override not applied: %s", oc.GetModel())
	}
}

func TestNewClientUnknownProvider(t *testing.T) {
	if _, err := NewClient(context.Background(), ProviderConfig{Provider: "smoke-signals", APIKey: "k"}); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestNewClientMissingKey(t *testing.T) {
	if _, err := NewClient(context.Background(), ProviderConfig{Provider: ProviderOpenAI}); err == nil {
		t.Error("expected error for missing key")
	}
}
