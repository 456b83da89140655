package query

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"aiss/internal/logging"
)

// Summarizer provides a short background summary for a topic.
// Implementations live outside this package; the wiki client is one.
type Summarizer interface {
	Summarize(ctx context.Context, topic string, maxSentences int) (string, error)
}

// ContextBundle carries optional background material for a retrieval.
// The zero value means no context is available.
type ContextBundle struct {
	Summary string // external knowledge summary
	Hint    string // compact identification hint built from the classification
}

// Empty reports whether the bundle carries nothing.
func (b ContextBundle) Empty() bool {
	return b.Summary == "" && b.Hint == ""
}

// buildHint assembles a compact identification string for the classified
// work, used to steer both the summary lookup and the retrieval prompt.
func buildHint(res Result) string {
	parts := []string{
		"Title: " + res.Title,
		"Format: " + res.Descriptor.DisplayName,
	}
	if res.Descriptor.KeyTrait != "" {
		parts = append(parts, "Key Trait: "+res.Descriptor.KeyTrait)
	}
	if res.Description != "" {
		parts = append(parts, "Description: "+res.Description)
	}
	if len(res.AdditionalInfo) > 0 {
		keys := make([]string, 0, len(res.AdditionalInfo))
		for k := range res.AdditionalInfo {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, len(keys))
		for i, k := range keys {
			pairs[i] = k + ": " + res.AdditionalInfo[k]
		}
		parts = append(parts, "Additional Info: "+strings.Join(pairs, "; "))
	}
	return strings.Join(parts, ",")
}

// BuildContext fetches background context for a classified work. Context
// is strictly best-effort: every provider failure is logged and swallowed,
// and the retrieval proceeds with whatever was gathered.
func BuildContext(ctx context.Context, s Summarizer, res Result, maxSentences int) ContextBundle {
	if s == nil || strings.TrimSpace(res.Title) == "" {
		return ContextBundle{}
	}

	topic := res.Title
	if res.Description != "" {
		topic = fmt.Sprintf("%s: %s", res.Title, res.Description)
	}

	summary, err := s.Summarize(ctx, topic, maxSentences)
	if err != nil {
		logging.Named("context").Debug("context lookup failed",
			zap.String("topic", topic),
			zap.Error(err))
		return ContextBundle{}
	}

	return ContextBundle{
		Summary: summary,
		Hint:    buildHint(res),
	}
}

// AugmentInstructions appends the context bundle to system instructions.
func AugmentInstructions(instructions string, b ContextBundle) string {
	if b.Empty() {
		return instructions
	}
	return fmt.Sprintf("%s\n\nPrefer the following context: %s.\n\nBackground Summary: %s",
		strings.TrimRight(instructions, "\n"), b.Hint, b.Summary)
}

// AugmentPrompt appends the context bundle to a user prompt.
func AugmentPrompt(prompt string, b ContextBundle) string {
	if b.Empty() {
		return prompt
	}
	return fmt.Sprintf("%s\n\nTopic & Context Hint: %s\n\nBackground Summary: %s",
		prompt, b.Hint, b.Summary)
}

// composeInstructions appends classification extras to a category's base
// instructions as a bulleted context block.
func composeInstructions(base string, info map[string]string) string {
	if len(info) == 0 {
		return base
	}
	keys := make([]string, 0, len(info))
	for k := range info {
		if strings.TrimSpace(info[k]) != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return base
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(strings.TrimRight(base, "\n"))
	b.WriteString("\n\nAdditional context:\n")
	for _, k := range keys {
		fmt.Fprintf(&b, "- %s: %s\n", k, info[k])
	}
	return strings.TrimRight(b.String(), "\n")
}
