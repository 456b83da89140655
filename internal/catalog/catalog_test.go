package catalog

import (
	"errors"
	"strings"
	"testing"
)

func TestResolveKnownCategories(t *testing.T) {
	for _, id := range IDs() {
		d, err := Resolve(id)
		if err != nil {
			t.Fatalf("Resolve(%q) failed: %v", id, err)
		}
		if d.ID != id {
			t.Errorf("Resolve(%q) returned descriptor with id %q", id, d.ID)
		}
		if d.DisplayName == "" || d.Description == "" || d.KeyTrait == "" {
			t.Errorf("descriptor %q is missing metadata", id)
		}
		if len(d.Fields) == 0 {
			t.Errorf("descriptor %q has no field schema", id)
		}
	}
}

func TestResolveUnknownCategory(t *testing.T) {
	_, err := Resolve("interpretive_dance")
	if err == nil {
		t.Fatal("expected error for unknown category")
	}
	if !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestAllOrderIsStable(t *testing.T) {
	first := IDs()
	second := IDs()
	if len(first) != len(second) {
		t.Fatalf("id count changed between calls: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("order changed at %d: %q vs %q", i, first[i], second[i])
		}
	}

	seen := make(map[string]bool)
	for _, id := range first {
		if seen[id] {
			t.Errorf("duplicate category id %q", id)
		}
		seen[id] = true
	}

	// Generic fallbacks lead the registry so classifier instructions list
	// them first.
	if first[0] != "show" || first[1] != "movie" {
		t.Errorf("expected generic ids first, got %v", first[:2])
	}
}

func TestFormattedOptions(t *testing.T) {
	opts := FormattedOptions()
	if !strings.HasPrefix(opts, "'show', 'movie', ") {
		t.Errorf("unexpected prefix: %s", opts[:40])
	}
	if !strings.Contains(opts, ", or '") {
		t.Errorf("expected trailing or-clause in %q", opts)
	}
}

func TestInstructionListingCoversEveryCategory(t *testing.T) {
	listing := InstructionListing()
	for _, d := range All() {
		if !strings.Contains(listing, "'"+d.ID+"'") {
			t.Errorf("listing missing category %q", d.ID)
		}
		if !strings.Contains(listing, d.KeyTrait) {
			t.Errorf("listing missing key trait for %q", d.ID)
		}
	}
}

func TestJSONSchemaShape(t *testing.T) {
	d, err := Resolve("drama")
	if err != nil {
		t.Fatal(err)
	}
	schema := d.JSONSchema()
	if schema["type"] != "object" {
		t.Fatalf("expected object schema, got %v", schema["type"])
	}
	if schema["additionalProperties"] != false {
		t.Error("expected additionalProperties=false for strict mode")
	}

	props, ok := schema["properties"].(map[string]any)
	if !ok {
		t.Fatal("properties missing")
	}
	required, ok := schema["required"].([]string)
	if !ok {
		t.Fatal("required missing")
	}
	if len(props) != len(d.Fields) || len(required) != len(d.Fields) {
		t.Errorf("schema does not cover all %d fields: props=%d required=%d",
			len(d.Fields), len(props), len(required))
	}

	// Table fields become arrays of closed objects.
	chars, ok := props["characters"].(map[string]any)
	if !ok {
		t.Fatal("characters field missing from schema")
	}
	if chars["type"] != "array" {
		t.Errorf("expected array type for table field, got %v", chars["type"])
	}
	items := chars["items"].(map[string]any)
	if items["additionalProperties"] != false {
		t.Error("table item schema must be closed")
	}
}

func TestFieldLookup(t *testing.T) {
	d, err := Resolve("drama")
	if err != nil {
		t.Fatal(err)
	}

	names := d.FieldNames()
	if len(names) != len(d.Fields) {
		t.Fatalf("FieldNames returned %d names for %d fields", len(names), len(d.Fields))
	}
	if names[0] != d.Fields[0].Name {
		t.Errorf("FieldNames order broken: %q vs %q", names[0], d.Fields[0].Name)
	}

	f, ok := d.FieldByName("characters")
	if !ok {
		t.Fatal("characters field not found")
	}
	if f.Kind != KindTable || len(f.Columns) == 0 {
		t.Errorf("characters field shape wrong: %+v", f)
	}
	if _, ok := d.FieldByName("no_such_field"); ok {
		t.Error("FieldByName found a field that does not exist")
	}
}

func TestPromptTemplate(t *testing.T) {
	d, err := Resolve("drama_movie")
	if err != nil {
		t.Fatal(err)
	}
	got := d.Prompt("The Remains of the Day")
	if !strings.Contains(got, "'The Remains of the Day'") {
		t.Errorf("prompt missing title: %q", got)
	}

	// Default template kicks in when a category declares none.
	generic, err := Resolve("comedy")
	if err != nil {
		t.Fatal(err)
	}
	got = generic.Prompt("Frasier")
	if !strings.Contains(got, "comedy series 'Frasier'") {
		t.Errorf("default prompt template not applied: %q", got)
	}
}
