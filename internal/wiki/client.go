// Package wiki fetches short topic summaries from the Wikipedia REST API.
// It is the external knowledge provider used to enrich retrieval prompts;
// callers must treat every failure here as recoverable.
package wiki

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"aiss/internal/logging"
)

// ErrNotFound indicates no article matched the requested topic.
var ErrNotFound = errors.New("no article found")

// Config holds client configuration.
type Config struct {
	BaseURL     string // host serving both /w/api.php and /api/rest_v1
	UserAgent   string
	Timeout     time.Duration
	ResultLimit int // max search results considered per lookup
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:     "https://en.wikipedia.org",
		UserAgent:   "aiss/1.0 (topic summary lookup)",
		Timeout:     15 * time.Second,
		ResultLimit: 3,
	}
}

// Client queries Wikipedia for article summaries.
type Client struct {
	http        *resty.Client
	resultLimit int
}

// New creates a summary client.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultConfig().BaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	if cfg.ResultLimit <= 0 {
		cfg.ResultLimit = DefaultConfig().ResultLimit
	}

	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", cfg.UserAgent)

	return &Client{
		http:        httpClient,
		resultLimit: cfg.ResultLimit,
	}
}

// summaryResponse is the relevant slice of the page summary payload.
type summaryResponse struct {
	Title   string `json:"title"`
	Extract string `json:"extract"`
	Type    string `json:"type"`
}

// Summarize resolves topic to an article and returns its summary, cut to
// at most maxSentences sentences.
func (c *Client) Summarize(ctx context.Context, topic string, maxSentences int) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", ErrNotFound
	}

	title, err := c.search(ctx, topic)
	if err != nil {
		return "", err
	}

	extract, err := c.summary(ctx, title)
	if err != nil {
		return "", err
	}

	logging.Named("wiki").Debug("summary fetched",
		zap.String("topic", topic),
		zap.String("title", title),
		zap.Int("len", len(extract)))

	return TruncateSentences(extract, maxSentences), nil
}

// search resolves a free-text topic to the best matching article title.
func (c *Client) search(ctx context.Context, topic string) (string, error) {
	// opensearch returns [query, [titles...], [descriptions...], [urls...]].
	var payload []any
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"action": "opensearch",
			"search": topic,
			"limit":  fmt.Sprintf("%d", c.resultLimit),
			"format": "json",
		}).
		SetResult(&payload).
		Get("/w/api.php")
	if err != nil {
		return "", fmt.Errorf("search request failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("search failed with status %d", resp.StatusCode())
	}

	if len(payload) < 2 {
		return "", ErrNotFound
	}
	titles, ok := payload[1].([]any)
	if !ok || len(titles) == 0 {
		return "", ErrNotFound
	}
	title, ok := titles[0].(string)
	if !ok || title == "" {
		return "", ErrNotFound
	}
	return title, nil
}

// summary fetches the article extract for an exact title.
func (c *Client) summary(ctx context.Context, title string) (string, error) {
	var payload summaryResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&payload).
		Get("/api/rest_v1/page/summary/" + url.PathEscape(title))
	if err != nil {
		return "", fmt.Errorf("summary request failed: %w", err)
	}
	if resp.StatusCode() == 404 {
		return "", ErrNotFound
	}
	if resp.IsError() {
		return "", fmt.Errorf("summary failed with status %d", resp.StatusCode())
	}
	if strings.TrimSpace(payload.Extract) == "" {
		return "", ErrNotFound
	}
	return payload.Extract, nil
}

// TruncateSentences cuts text to at most n sentences. Sentence boundaries
// are terminal punctuation followed by whitespace; abbreviations are not
// special-cased, which matches how the summary source formats extracts.
func TruncateSentences(text string, n int) string {
	text = strings.TrimSpace(text)
	if n <= 0 || text == "" {
		return text
	}

	count := 0
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '.', '!', '?':
			// Consume any run of closing punctuation.
			j := i
			for j+1 < len(runes) && (runes[j+1] == '"' || runes[j+1] == '\'' || runes[j+1] == ')') {
				j++
			}
			if j+1 >= len(runes) {
				return string(runes)
			}
			if runes[j+1] == ' ' || runes[j+1] == '\n' || runes[j+1] == '\t' {
				count++
				if count >= n {
					return strings.TrimSpace(string(runes[:j+1]))
				}
				i = j
			}
		}
	}
	return text
}
