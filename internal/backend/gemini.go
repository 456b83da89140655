package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"aiss/internal/logging"
)

// GeminiClient implements Client using the Google GenAI SDK.
// Structured calls use responseJsonSchema with a JSON MIME type; the same
// raw schema maps served to OpenAI work here unchanged.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// GeminiConfig holds configuration for the Gemini client.
type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// DefaultGeminiConfig returns sensible defaults.
func DefaultGeminiConfig(apiKey string) GeminiConfig {
	return GeminiConfig{
		APIKey:  apiKey,
		Model:   "gemini-2.5-flash",
		Timeout: 2 * time.Minute,
	}
}

// NewGeminiClient creates a new Gemini client with default config.
func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	return NewGeminiClientWithConfig(ctx, DefaultGeminiConfig(apiKey))
}

// NewGeminiClientWithConfig creates a new Gemini client with custom config.
func NewGeminiClientWithConfig(ctx context.Context, config GeminiConfig) (*GeminiClient, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("API key not configured")
	}
	model := strings.TrimSpace(config.Model)
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

// Parse requests schema-conforming structured output.
func (c *GeminiClient) Parse(ctx context.Context, req ParseRequest) (json.RawMessage, error) {
	cfg := c.baseConfig(req.Instructions)
	cfg.ResponseMIMEType = "application/json"
	cfg.ResponseJsonSchema = req.Schema

	text, err := c.generate(ctx, req.Input, cfg)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, ErrNoResult
	}
	return json.RawMessage(text), nil
}

// Generate requests a plain text completion.
func (c *GeminiClient) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	text, err := c.generate(ctx, req.Input, c.baseConfig(req.Instructions))
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", ErrNoResult
	}
	return text, nil
}

func (c *GeminiClient) baseConfig(instructions string) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.1),
	}
	if strings.TrimSpace(instructions) != "" {
		cfg.SystemInstruction = genai.NewContentFromText(instructions, genai.RoleUser)
	}
	return cfg
}

func (c *GeminiClient) generate(ctx context.Context, input string, cfg *genai.GenerateContentConfig) (string, error) {
	startTime := time.Now()
	log := logging.Named("gemini")
	log.Debug("generate content",
		zap.String("model", c.model),
		zap.Int("input_len", len(input)),
		zap.Bool("structured", cfg.ResponseMIMEType != ""))

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(input), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content failed: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	log.Debug("generate content done",
		zap.Duration("elapsed", time.Since(startTime)),
		zap.Int("content_len", len(text)))
	return text, nil
}

// GetModel returns the current model.
func (c *GeminiClient) GetModel() string {
	return c.model
}
