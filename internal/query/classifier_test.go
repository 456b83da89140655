package query

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/goccy/go-json"

	"aiss/internal/backend"
	"aiss/internal/catalog"
)

// fakeClient is a scriptable backend.Client recording every call.
type fakeClient struct {
	parseFn    func(req backend.ParseRequest) (json.RawMessage, error)
	generateFn func(req backend.GenerateRequest) (string, error)

	parseCalls    []backend.ParseRequest
	generateCalls []backend.GenerateRequest
}

func (f *fakeClient) Parse(_ context.Context, req backend.ParseRequest) (json.RawMessage, error) {
	f.parseCalls = append(f.parseCalls, req)
	if f.parseFn == nil {
		return nil, fmt.Errorf("unexpected Parse call")
	}
	return f.parseFn(req)
}

func (f *fakeClient) Generate(_ context.Context, req backend.GenerateRequest) (string, error) {
	f.generateCalls = append(f.generateCalls, req)
	if f.generateFn == nil {
		return "", fmt.Errorf("unexpected Generate call")
	}
	return f.generateFn(req)
}

func classificationJSON(category, title string) json.RawMessage {
	c := Classification{
		Category:       category,
		Title:          title,
		Description:    "test pick",
		AdditionalInfo: map[string]string{"network": "AMC"},
	}
	data, _ := json.Marshal(c)
	return data
}

func TestClassificationSchemaShape(t *testing.T) {
	schema := ClassificationSchema()

	if schema["type"] != "object" {
		t.Errorf("type = %v", schema["type"])
	}
	if _, present := schema["$schema"]; present {
		t.Error("$schema must be stripped for strict mode")
	}
	if schema["additionalProperties"] != false {
		t.Error("additionalProperties must be false")
	}

	props, ok := schema["properties"].(map[string]any)
	if !ok {
		t.Fatalf("missing properties: %v", schema)
	}
	category, ok := props["category"].(map[string]any)
	if !ok {
		t.Fatal("missing category property")
	}
	enum, ok := category["enum"].([]any)
	if !ok {
		t.Fatal("category enum not injected")
	}
	if len(enum) != len(catalog.IDs()) {
		t.Errorf("enum covers %d ids, want %d", len(enum), len(catalog.IDs()))
	}

	required, ok := schema["required"].([]any)
	if !ok || len(required) != 4 {
		t.Errorf("required = %v", schema["required"])
	}
}

func TestClassifyResolvesCategory(t *testing.T) {
	fake := &fakeClient{
		parseFn: func(req backend.ParseRequest) (json.RawMessage, error) {
			if req.SchemaName != "classification" {
				t.Errorf("schema name = %q", req.SchemaName)
			}
			return classificationJSON("drama", "Breaking Bad"), nil
		},
	}

	res, err := NewClassifier(fake).Classify(context.Background(), "the show about the chemistry teacher")
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if res.Descriptor.ID != "drama" {
		t.Errorf("category = %q", res.Descriptor.ID)
	}
	if res.Title != "Breaking Bad" {
		t.Errorf("title = %q", res.Title)
	}
	if res.AdditionalInfo["network"] != "AMC" {
		t.Errorf("additional info lost: %v", res.AdditionalInfo)
	}
	if len(fake.parseCalls) != 1 {
		t.Errorf("expected exactly one backend call, got %d", len(fake.parseCalls))
	}
}

func TestClassifyUnknownCategory(t *testing.T) {
	fake := &fakeClient{
		parseFn: func(backend.ParseRequest) (json.RawMessage, error) {
			return classificationJSON("soap_opera", "Days"), nil
		},
	}

	_, err := NewClassifier(fake).Classify(context.Background(), "some soap")
	if !errors.Is(err, catalog.ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestClassifyBackendError(t *testing.T) {
	fake := &fakeClient{
		parseFn: func(backend.ParseRequest) (json.RawMessage, error) {
			return nil, fmt.Errorf("boom")
		},
	}

	_, err := NewClassifier(fake).Classify(context.Background(), "anything")
	var classErr *ClassificationError
	if !errors.As(err, &classErr) {
		t.Fatalf("expected ClassificationError, got %v", err)
	}
	if classErr.Input != "anything" {
		t.Errorf("input = %q", classErr.Input)
	}
}

func TestClassifyUndecodablePayload(t *testing.T) {
	fake := &fakeClient{
		parseFn: func(backend.ParseRequest) (json.RawMessage, error) {
			return json.RawMessage(`not json`), nil
		},
	}

	_, err := NewClassifier(fake).Classify(context.Background(), "anything")
	var classErr *ClassificationError
	if !errors.As(err, &classErr) {
		t.Errorf("expected ClassificationError, got %v", err)
	}
}

func TestClassifyEmptyTitleFallsBackToInput(t *testing.T) {
	fake := &fakeClient{
		parseFn: func(backend.ParseRequest) (json.RawMessage, error) {
			return classificationJSON("comedy", ""), nil
		},
	}

	res, err := NewClassifier(fake).Classify(context.Background(), "Frasier")
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if res.Title != "Frasier" {
		t.Errorf("title = %q, want input fallback", res.Title)
	}
}

func TestClassifyEmptyInput(t *testing.T) {
	fake := &fakeClient{}
	_, err := NewClassifier(fake).Classify(context.Background(), "   ")
	if err == nil {
		t.Fatal("expected error for empty input")
	}
	if len(fake.parseCalls) != 0 {
		t.Errorf("no backend call expected, got %d", len(fake.parseCalls))
	}
}
