package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"aiss/internal/logging"
)

// OpenAIClient implements Client against the OpenAI chat completions API.
type OpenAIClient struct {
	apiKey      string
	baseURL     string
	model       string
	httpClient  *http.Client
	mu          sync.Mutex
	lastRequest time.Time
}

// OpenAIConfig holds configuration for the OpenAI client.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// DefaultOpenAIConfig returns sensible defaults.
func DefaultOpenAIConfig(apiKey string) OpenAIConfig {
	return OpenAIConfig{
		APIKey:  apiKey,
		BaseURL: "https://api.openai.com/v1",
		Model:   "gpt-5-mini",
		Timeout: 2 * time.Minute,
	}
}

// NewOpenAIClient creates a new OpenAI client with default config.
func NewOpenAIClient(apiKey string) *OpenAIClient {
	return NewOpenAIClientWithConfig(DefaultOpenAIConfig(apiKey))
}

// NewOpenAIClientWithConfig creates a new OpenAI client with custom config.
func NewOpenAIClientWithConfig(config OpenAIConfig) *OpenAIClient {
	model := strings.TrimSpace(config.Model)
	if model == "" {
		model = "gpt-5-mini"
	}
	baseURL := strings.TrimSpace(config.BaseURL)
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	return &OpenAIClient{
		apiKey:  config.APIKey,
		baseURL: baseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// openAIMessage represents a chat message.
type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// openAIResponseFormat selects plain text or strict JSON schema output.
type openAIResponseFormat struct {
	Type       string            `json:"type"`
	JSONSchema *openAIJSONSchema `json:"json_schema,omitempty"`
}

type openAIJSONSchema struct {
	Name   string         `json:"name"`
	Strict bool           `json:"strict"`
	Schema map[string]any `json:"schema"`
}

// openAIRequest represents the chat completions request body.
type openAIRequest struct {
	Model          string                `json:"model"`
	Messages       []openAIMessage       `json:"messages"`
	MaxTokens      int                   `json:"max_tokens,omitempty"`
	Temperature    float64               `json:"temperature,omitempty"`
	ResponseFormat *openAIResponseFormat `json:"response_format,omitempty"`
}

// openAIResponse represents the chat completions response body.
type openAIResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
			Refusal string `json:"refusal"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error,omitempty"`
}

// Parse requests schema-conforming structured output.
func (c *OpenAIClient) Parse(ctx context.Context, req ParseRequest) (json.RawMessage, error) {
	name := req.SchemaName
	if name == "" {
		name = "result"
	}
	format := &openAIResponseFormat{
		Type: "json_schema",
		JSONSchema: &openAIJSONSchema{
			Name:   name,
			Strict: true,
			Schema: req.Schema,
		},
	}

	content, refusal, err := c.complete(ctx, req.Instructions, req.Input, format)
	if err != nil {
		return nil, err
	}
	if refusal != "" {
		logging.Named("openai").Debug("model refused structured output", zap.String("refusal", refusal))
		return nil, fmt.Errorf("%w: %s", ErrNoResult, refusal)
	}
	if content == "" {
		return nil, ErrNoResult
	}
	return json.RawMessage(content), nil
}

// Generate requests a plain text completion.
func (c *OpenAIClient) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	content, refusal, err := c.complete(ctx, req.Instructions, req.Input, nil)
	if err != nil {
		return "", err
	}
	if content == "" && refusal != "" {
		return "", fmt.Errorf("%w: %s", ErrNoResult, refusal)
	}
	if content == "" {
		return "", ErrNoResult
	}
	return content, nil
}

// complete sends one chat completion request, retrying on rate limits.
func (c *OpenAIClient) complete(ctx context.Context, instructions, input string, format *openAIResponseFormat) (content, refusal string, err error) {
	if c.apiKey == "" {
		return "", "", fmt.Errorf("API key not configured")
	}

	// Auto-apply timeout if context has no deadline.
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.httpClient.Timeout)
		defer cancel()
	}

	startTime := time.Now()
	log := logging.Named("openai")
	log.Debug("chat completion",
		zap.String("model", c.model),
		zap.Int("instructions_len", len(instructions)),
		zap.Int("input_len", len(input)),
		zap.Bool("structured", format != nil))

	// Rate limiting: keep a minimum gap between requests.
	c.mu.Lock()
	elapsed := time.Since(c.lastRequest)
	if elapsed < 100*time.Millisecond {
		time.Sleep(100*time.Millisecond - elapsed)
	}
	c.lastRequest = time.Now()
	c.mu.Unlock()

	messages := make([]openAIMessage, 0, 2)
	if strings.TrimSpace(instructions) != "" {
		messages = append(messages, openAIMessage{Role: "system", Content: instructions})
	}
	messages = append(messages, openAIMessage{Role: "user", Content: input})

	reqBody := openAIRequest{
		Model:          c.model,
		Messages:       messages,
		MaxTokens:      4096,
		Temperature:    0.1,
		ResponseFormat: format,
	}

	// Retry loop for rate limits.
	maxRetries := 3
	var lastErr error

	for i := 0; i <= maxRetries; i++ {
		if i > 0 {
			time.Sleep(time.Duration(1<<uint(i-1)) * time.Second)
		}

		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return "", "", fmt.Errorf("failed to marshal request: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/chat/completions", bytes.NewReader(jsonData))
		if err != nil {
			return "", "", fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("request failed: %w", err)
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("failed to read response: %w", err)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			lastErr = fmt.Errorf("rate limit exceeded (429)")
			continue
		}

		if resp.StatusCode != http.StatusOK {
			return "", "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
		}

		var parsed openAIResponse
		if err := json.Unmarshal(body, &parsed); err != nil {
			return "", "", fmt.Errorf("failed to parse response: %w", err)
		}
		if parsed.Error != nil {
			return "", "", fmt.Errorf("API error: %s", parsed.Error.Message)
		}
		if len(parsed.Choices) == 0 {
			return "", "", ErrNoResult
		}

		choice := parsed.Choices[0]
		log.Debug("chat completion done",
			zap.Duration("elapsed", time.Since(startTime)),
			zap.Int("content_len", len(choice.Message.Content)))
		return strings.TrimSpace(choice.Message.Content), strings.TrimSpace(choice.Message.Refusal), nil
	}

	return "", "", fmt.Errorf("max retries exceeded: %w", lastErr)
}

// SetModel changes the model used for completions.
func (c *OpenAIClient) SetModel(model string) {
	c.model = model
}

// GetModel returns the current model.
func (c *OpenAIClient) GetModel() string {
	return c.model
}
