// Package query orchestrates the two-stage pipeline: classify free-text
// input into a category, then retrieve a structured description of the
// work through one of three interchangeable strategies.
package query

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"aiss/internal/backend"
	"aiss/internal/catalog"
	"aiss/internal/logging"
)

// Outcome is the result of one retrieval. Concrete types correspond to
// the three modes.
type Outcome interface {
	Info() map[string]string
}

// TypedOutcome is a schema-validated structured result.
type TypedOutcome struct {
	Descriptor     catalog.Descriptor
	Title          string
	Fields         map[string]any
	Raw            json.RawMessage
	AdditionalInfo map[string]string
}

func (o *TypedOutcome) Info() map[string]string { return o.AdditionalInfo }

// JSONOutcome is a leniently decoded JSON result.
type JSONOutcome struct {
	Descriptor     catalog.Descriptor
	Title          string
	Data           map[string]any
	Raw            string
	AdditionalInfo map[string]string
}

func (o *JSONOutcome) Info() map[string]string { return o.AdditionalInfo }

// TextOutcome is a plain prose result.
type TextOutcome struct {
	Descriptor     catalog.Descriptor
	Title          string
	Text           string
	AdditionalInfo map[string]string
}

func (o *TextOutcome) Info() map[string]string { return o.AdditionalInfo }

// Renderer draws outcomes. The console implementation lives in the
// render package.
type Renderer interface {
	RenderTyped(d catalog.Descriptor, fields map[string]any, info map[string]string)
	RenderJSON(data map[string]any, raw string, info map[string]string)
	RenderText(body string, info map[string]string)
	RenderInvalid(raw string)
}

// Progress receives step announcements during a run.
type Progress interface {
	Step(message string)
}

type nopProgress struct{}

func (nopProgress) Step(string) {}

// Engine runs the classification-then-retrieval pipeline.
type Engine struct {
	client           backend.Client
	summarizer       Summarizer
	classifier       *Classifier
	progress         Progress
	contextSentences int
	contextDisabled  bool
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithSummarizer enables background context lookups.
func WithSummarizer(s Summarizer) EngineOption {
	return func(e *Engine) { e.summarizer = s }
}

// WithProgress reports pipeline steps to p.
func WithProgress(p Progress) EngineOption {
	return func(e *Engine) { e.progress = p }
}

// WithContextSentences caps the background summary length.
func WithContextSentences(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.contextSentences = n
		}
	}
}

// WithoutContext disables background context lookups entirely.
func WithoutContext() EngineOption {
	return func(e *Engine) { e.contextDisabled = true }
}

// NewEngine creates an engine on top of a backend client.
func NewEngine(client backend.Client, opts ...EngineOption) *Engine {
	e := &Engine{
		client:           client,
		classifier:       NewClassifier(client),
		progress:         nopProgress{},
		contextSentences: 10,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RunOption adjusts a single Run call.
type RunOption func(*runSettings)

type runSettings struct {
	schemaOverride map[string]any
}

// WithSchemaOverride substitutes the retrieval schema for this run in
// place of the classified category's own field schema.
func WithSchemaOverride(schema map[string]any) RunOption {
	return func(s *runSettings) { s.schemaOverride = schema }
}

// Run executes the full pipeline for one input in the given mode.
// The mode is validated before any backend call is made.
func (e *Engine) Run(ctx context.Context, input string, mode Mode, opts ...RunOption) (Outcome, error) {
	switch mode {
	case ModeParsed, ModeJSON, ModeText:
	default:
		return nil, &InvalidModeError{Mode: string(mode)}
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("input text must be provided")
	}

	var settings runSettings
	for _, opt := range opts {
		opt(&settings)
	}

	start := time.Now()
	log := logging.Named("engine")

	e.progress.Step("Detecting category")
	res, err := e.classifier.Classify(ctx, input)
	if err != nil {
		return nil, err
	}

	e.progress.Step(fmt.Sprintf("Running %s (%s)", res.Title, res.Descriptor.ID))

	var bundle ContextBundle
	if !e.contextDisabled {
		bundle = BuildContext(ctx, e.summarizer, res, e.contextSentences)
	}

	var outcome Outcome
	switch mode {
	case ModeParsed:
		outcome, err = e.runTyped(ctx, res, bundle, settings)
	case ModeJSON:
		outcome, err = e.runJSON(ctx, res, bundle, settings)
	case ModeText:
		outcome, err = e.runText(ctx, res, bundle)
	}
	if err != nil {
		return nil, err
	}

	e.progress.Step("Completed")
	log.Debug("run finished",
		zap.String("mode", string(mode)),
		zap.String("category", res.Descriptor.ID),
		zap.Duration("elapsed", time.Since(start)))
	return outcome, nil
}

// runTyped retrieves via backend-enforced structured output.
func (e *Engine) runTyped(ctx context.Context, res Result, bundle ContextBundle, settings runSettings) (Outcome, error) {
	d := res.Descriptor
	instructions := AugmentInstructions(composeInstructions(d.Instructions, res.AdditionalInfo), bundle)

	schema := settings.schemaOverride
	if schema == nil {
		schema = d.JSONSchema()
	}

	raw, err := e.client.Parse(ctx, backend.ParseRequest{
		Instructions: instructions,
		Input:        d.Prompt(res.Title),
		SchemaName:   d.ID,
		Schema:       schema,
	})
	if err != nil {
		return nil, &ParseError{Category: d.ID, Title: res.Title, Err: err}
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, &ParseError{Category: d.ID, Title: res.Title, Err: err}
	}

	return &TypedOutcome{
		Descriptor:     d,
		Title:          res.Title,
		Fields:         fields,
		Raw:            raw,
		AdditionalInfo: res.AdditionalInfo,
	}, nil
}

// runJSON retrieves JSON by instruction only, decoding leniently. When
// the response is not bare JSON, the first balanced document embedded in
// the text is extracted and decoded instead.
func (e *Engine) runJSON(ctx context.Context, res Result, bundle ContextBundle, settings runSettings) (Outcome, error) {
	d := res.Descriptor

	schema := settings.schemaOverride
	if schema == nil {
		schema = d.JSONSchema()
	}
	schemaJSON, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("encoding %s schema: %w", d.ID, err)
	}
	instructions := composeInstructions(d.Instructions, res.AdditionalInfo)
	instructions += "\n\nRespond with a single JSON object conforming to this JSON schema, and nothing else:\n" + string(schemaJSON)
	instructions = AugmentInstructions(instructions, bundle)

	text, err := e.client.Generate(ctx, backend.GenerateRequest{
		Instructions: instructions,
		Input:        d.Prompt(res.Title),
	})
	if err != nil {
		return nil, fmt.Errorf("json retrieval for %q failed: %w", res.Title, err)
	}

	data, decodeErr := decodeLoose(text)
	if decodeErr != nil {
		return nil, &JSONDecodeError{Title: res.Title, Raw: text, Err: decodeErr}
	}

	return &JSONOutcome{
		Descriptor:     d,
		Title:          res.Title,
		Data:           data,
		Raw:            text,
		AdditionalInfo: res.AdditionalInfo,
	}, nil
}

// decodeLoose decodes text as JSON, falling back to the first balanced
// document embedded in it.
func decodeLoose(text string) (map[string]any, error) {
	var data map[string]any
	if err := json.Unmarshal([]byte(text), &data); err == nil {
		return data, nil
	}

	candidate, ok := ExtractJSON(text)
	if !ok {
		return nil, fmt.Errorf("no JSON document found")
	}
	if err := json.Unmarshal([]byte(candidate), &data); err != nil {
		return nil, err
	}
	return data, nil
}

// runText retrieves a plain prose description.
func (e *Engine) runText(ctx context.Context, res Result, bundle ContextBundle) (Outcome, error) {
	d := res.Descriptor
	instructions := AugmentInstructions(composeInstructions(d.Instructions, res.AdditionalInfo), bundle)

	text, err := e.client.Generate(ctx, backend.GenerateRequest{
		Instructions: instructions,
		Input:        d.Prompt(res.Title),
	})
	if err != nil {
		return nil, fmt.Errorf("text retrieval for %q failed: %w", res.Title, err)
	}

	return &TextOutcome{
		Descriptor:     d,
		Title:          res.Title,
		Text:           text,
		AdditionalInfo: res.AdditionalInfo,
	}, nil
}

// RenderOutcome dispatches an outcome to the matching renderer method.
func RenderOutcome(r Renderer, o Outcome) {
	switch v := o.(type) {
	case *TypedOutcome:
		r.RenderTyped(v.Descriptor, v.Fields, v.AdditionalInfo)
	case *JSONOutcome:
		r.RenderJSON(v.Data, v.Raw, v.AdditionalInfo)
	case *TextOutcome:
		r.RenderText(v.Text, v.AdditionalInfo)
	}
}
