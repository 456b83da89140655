package query

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"aiss/internal/backend"
)

type recordingProgress struct {
	steps []string
}

func (r *recordingProgress) Step(msg string) { r.steps = append(r.steps, msg) }

// scriptedClient answers the classification Parse call first, then
// delegates to the configured retrieval behaviour.
func scriptedClient(t *testing.T, category, title string, retrieval *fakeClient) *fakeClient {
	t.Helper()
	return &fakeClient{
		parseFn: func(req backend.ParseRequest) (json.RawMessage, error) {
			if req.SchemaName == "classification" {
				return classificationJSON(category, title), nil
			}
			if retrieval.parseFn == nil {
				t.Fatalf("unexpected structured retrieval for schema %q", req.SchemaName)
			}
			return retrieval.parseFn(req)
		},
		generateFn: func(req backend.GenerateRequest) (string, error) {
			if retrieval.generateFn == nil {
				t.Fatalf("unexpected text retrieval")
			}
			return retrieval.generateFn(req)
		},
	}
}

func TestRunInvalidModeMakesNoBackendCalls(t *testing.T) {
	fake := &fakeClient{}
	e := NewEngine(fake)

	_, err := e.Run(context.Background(), "Breaking Bad", Mode("xml"))
	var modeErr *InvalidModeError
	if !errors.As(err, &modeErr) {
		t.Fatalf("expected InvalidModeError, got %v", err)
	}
	if len(fake.parseCalls)+len(fake.generateCalls) != 0 {
		t.Errorf("backend was called %d times", len(fake.parseCalls)+len(fake.generateCalls))
	}
}

func TestRunEmptyInput(t *testing.T) {
	fake := &fakeClient{}
	e := NewEngine(fake)

	if _, err := e.Run(context.Background(), "   ", ModeParsed); err == nil {
		t.Fatal("expected error for empty input")
	}
	if len(fake.parseCalls) != 0 {
		t.Errorf("backend was called %d times", len(fake.parseCalls))
	}
}

func TestRunTypedPipeline(t *testing.T) {
	payload := `{"title":"Breaking Bad","show_summary":"A teacher breaks bad.","seasons":5}`
	retrieval := &fakeClient{
		parseFn: func(req backend.ParseRequest) (json.RawMessage, error) {
			if req.SchemaName != "drama" {
				return nil, fmt.Errorf("wrong schema %q", req.SchemaName)
			}
			return json.RawMessage(payload), nil
		},
	}
	client := scriptedClient(t, "drama", "Breaking Bad", retrieval)
	progress := &recordingProgress{}
	e := NewEngine(client, WithProgress(progress))

	out, err := e.Run(context.Background(), "the chemistry teacher show", ModeParsed)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	typed, ok := out.(*TypedOutcome)
	if !ok {
		t.Fatalf("expected TypedOutcome, got %T", out)
	}
	if typed.Descriptor.ID != "drama" || typed.Title != "Breaking Bad" {
		t.Errorf("outcome identity wrong: %s %s", typed.Descriptor.ID, typed.Title)
	}
	if typed.Fields["show_summary"] != "A teacher breaks bad." {
		t.Errorf("fields = %v", typed.Fields)
	}
	if typed.AdditionalInfo["network"] != "AMC" {
		t.Errorf("additional info lost: %v", typed.AdditionalInfo)
	}

	if len(client.parseCalls) != 2 {
		t.Errorf("expected classify + retrieve, got %d parse calls", len(client.parseCalls))
	}
	if len(client.generateCalls) != 0 {
		t.Errorf("unexpected generate calls: %d", len(client.generateCalls))
	}
	if len(progress.steps) != 3 || progress.steps[0] != "Detecting category" || progress.steps[2] != "Completed" {
		t.Errorf("progress steps = %v", progress.steps)
	}
}

func TestRunTypedIdempotent(t *testing.T) {
	payload := `{"title":"Breaking Bad","seasons":5}`
	retrieval := &fakeClient{
		parseFn: func(backend.ParseRequest) (json.RawMessage, error) {
			return json.RawMessage(payload), nil
		},
	}
	client := scriptedClient(t, "drama", "Breaking Bad", retrieval)
	e := NewEngine(client)

	first, err := e.Run(context.Background(), "Breaking Bad", ModeParsed)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := e.Run(context.Background(), "Breaking Bad", ModeParsed)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical runs diverged:\n%+v\n%+v", first, second)
	}
}

func TestRunTypedUndecodablePayload(t *testing.T) {
	retrieval := &fakeClient{
		parseFn: func(backend.ParseRequest) (json.RawMessage, error) {
			return json.RawMessage(`"just a string"`), nil
		},
	}
	client := scriptedClient(t, "drama", "Breaking Bad", retrieval)
	e := NewEngine(client)

	_, err := e.Run(context.Background(), "Breaking Bad", ModeParsed)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if parseErr.Category != "drama" {
		t.Errorf("category = %q", parseErr.Category)
	}
}

func TestRunTypedSchemaOverride(t *testing.T) {
	override := map[string]any{
		"type":       "object",
		"properties": map[string]any{"only_field": map[string]any{"type": "string"}},
	}
	var seenSchema map[string]any
	retrieval := &fakeClient{
		parseFn: func(req backend.ParseRequest) (json.RawMessage, error) {
			seenSchema = req.Schema
			return json.RawMessage(`{"only_field":"x"}`), nil
		},
	}
	client := scriptedClient(t, "drama", "Breaking Bad", retrieval)
	e := NewEngine(client)

	_, err := e.Run(context.Background(), "Breaking Bad", ModeParsed, WithSchemaOverride(override))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !reflect.DeepEqual(seenSchema, override) {
		t.Errorf("override schema not forwarded: %v", seenSchema)
	}
}

func TestRunJSONDecodesEmbeddedDocument(t *testing.T) {
	retrieval := &fakeClient{
		generateFn: func(req backend.GenerateRequest) (string, error) {
			return `Here is your result: {"model_name": "Drama", "seasons": 5} Thanks!`, nil
		},
	}
	client := scriptedClient(t, "drama", "Breaking Bad", retrieval)
	e := NewEngine(client)

	out, err := e.Run(context.Background(), "Breaking Bad", ModeJSON)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	jsonOut, ok := out.(*JSONOutcome)
	if !ok {
		t.Fatalf("expected JSONOutcome, got %T", out)
	}
	if jsonOut.Data["model_name"] != "Drama" {
		t.Errorf("data = %v", jsonOut.Data)
	}
	if jsonOut.Data["seasons"] != float64(5) {
		t.Errorf("seasons = %v", jsonOut.Data["seasons"])
	}
}

func TestRunJSONDecodeFailureKeepsRaw(t *testing.T) {
	retrieval := &fakeClient{
		generateFn: func(backend.GenerateRequest) (string, error) {
			return "I cannot comply.", nil
		},
	}
	client := scriptedClient(t, "drama", "Breaking Bad", retrieval)
	e := NewEngine(client)

	_, err := e.Run(context.Background(), "Breaking Bad", ModeJSON)
	var decodeErr *JSONDecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected JSONDecodeError, got %v", err)
	}
	if decodeErr.Raw != "I cannot comply." {
		t.Errorf("raw text not preserved: %q", decodeErr.Raw)
	}
}

func TestRunJSONBackendErrorIsNotParseError(t *testing.T) {
	backendErr := fmt.Errorf("backend transport failure")
	retrieval := &fakeClient{
		generateFn: func(backend.GenerateRequest) (string, error) {
			return "", backendErr
		},
	}
	client := scriptedClient(t, "drama", "Breaking Bad", retrieval)
	e := NewEngine(client)

	_, err := e.Run(context.Background(), "Breaking Bad", ModeJSON)
	if err == nil {
		t.Fatal("expected error")
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		t.Errorf("transport failure surfaced as ParseError: %v", err)
	}
	var decodeErr *JSONDecodeError
	if errors.As(err, &decodeErr) {
		t.Errorf("transport failure surfaced as JSONDecodeError: %v", err)
	}
	if !errors.Is(err, backendErr) {
		t.Errorf("underlying error not preserved: %v", err)
	}
}

func TestRunTextPipeline(t *testing.T) {
	retrieval := &fakeClient{
		generateFn: func(req backend.GenerateRequest) (string, error) {
			return "Breaking Bad is a crime drama.", nil
		},
	}
	client := scriptedClient(t, "drama", "Breaking Bad", retrieval)
	e := NewEngine(client)

	out, err := e.Run(context.Background(), "Breaking Bad", ModeText)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	textOut, ok := out.(*TextOutcome)
	if !ok {
		t.Fatalf("expected TextOutcome, got %T", out)
	}
	if textOut.Text != "Breaking Bad is a crime drama." {
		t.Errorf("text = %q", textOut.Text)
	}
}

func TestRunContextFailureNeverEscapes(t *testing.T) {
	for _, mode := range []Mode{ModeParsed, ModeJSON, ModeText} {
		t.Run(string(mode), func(t *testing.T) {
			retrieval := &fakeClient{
				parseFn: func(backend.ParseRequest) (json.RawMessage, error) {
					return json.RawMessage(`{"title":"X"}`), nil
				},
				generateFn: func(backend.GenerateRequest) (string, error) {
					return `{"title":"X"}`, nil
				},
			}
			client := scriptedClient(t, "drama", "X", retrieval)
			broken := &fakeSummarizer{err: fmt.Errorf("provider down")}
			e := NewEngine(client, WithSummarizer(broken))

			if _, err := e.Run(context.Background(), "X", mode); err != nil {
				t.Errorf("context failure escaped in %s mode: %v", mode, err)
			}
		})
	}
}

func TestRunContextAugmentsInstructions(t *testing.T) {
	var seen backend.GenerateRequest
	retrieval := &fakeClient{
		generateFn: func(req backend.GenerateRequest) (string, error) {
			seen = req
			return "prose", nil
		},
	}
	client := scriptedClient(t, "drama", "Breaking Bad", retrieval)
	s := &fakeSummarizer{summary: "A teacher cooks meth."}
	e := NewEngine(client, WithSummarizer(s))

	if _, err := e.Run(context.Background(), "Breaking Bad", ModeText); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if want := "A teacher cooks meth."; !strings.Contains(seen.Instructions, want) {
		t.Errorf("instructions missing summary: %q", seen.Instructions)
	}
}

func TestRunWithoutContextSkipsSummarizer(t *testing.T) {
	retrieval := &fakeClient{
		generateFn: func(backend.GenerateRequest) (string, error) { return "prose", nil },
	}
	client := scriptedClient(t, "drama", "Breaking Bad", retrieval)
	s := &fakeSummarizer{summary: "should not be used"}
	e := NewEngine(client, WithSummarizer(s), WithoutContext())

	if _, err := e.Run(context.Background(), "Breaking Bad", ModeText); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(s.calls) != 0 {
		t.Errorf("summarizer called %d times with context disabled", len(s.calls))
	}
}
