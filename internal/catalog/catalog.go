// Package catalog holds the static category registry: one immutable
// descriptor per supported show, movie, or game genre. Descriptors are
// built once and never mutated, so concurrent readers need no locking.
package catalog

import (
	"fmt"
	"strings"
	"sync"
)

// ErrUnknownCategory indicates a category id that is not registered.
// A classification carrying such an id is a registry integrity violation
// and is never silently defaulted.
var ErrUnknownCategory = fmt.Errorf("unknown category")

// Kind describes the JSON shape of a schema field.
type Kind string

const (
	KindString     Kind = "string"
	KindInt        Kind = "integer"
	KindFloat      Kind = "number"
	KindBool       Kind = "boolean"
	KindStringList Kind = "string_list"
	KindTable      Kind = "table"
)

// Format is a rendering hint applied when a field value is displayed.
// It never affects parsing or validation.
type Format string

const (
	FormatNone    Format = ""
	FormatYear    Format = "year"
	FormatMoney   Format = "money"
	FormatNumber  Format = "number"
	FormatDecimal Format = "decimal"
	FormatPercent Format = "percent"
	FormatRuntime Format = "runtime"
)

// Column describes one column of a table-shaped field.
type Column struct {
	Name        string
	Header      string
	Kind        Kind
	Format      Format
	Description string
}

// Field describes one named, typed entry in a category's field schema.
// Field order within a descriptor is stable for the process lifetime and
// drives rendering order.
type Field struct {
	Name        string
	Header      string
	Kind        Kind
	Format      Format
	Description string
	Columns     []Column // populated only when Kind == KindTable
}

// Descriptor is the immutable schema record for one category.
type Descriptor struct {
	ID             string
	DisplayName    string
	Description    string
	KeyTrait       string
	Label          string
	Instructions   string
	PromptTemplate string
	Fields         []Field
}

// Prompt renders the user prompt for a given topic title.
func (d Descriptor) Prompt(title string) string {
	tmpl := d.PromptTemplate
	if tmpl == "" {
		tmpl = "Tell me about the {label} '{title}' in depth."
	}
	out := strings.ReplaceAll(tmpl, "{label}", d.Label)
	return strings.ReplaceAll(out, "{title}", title)
}

var (
	buildOnce sync.Once
	ordered   []Descriptor
	index     map[string]Descriptor
)

func build() {
	ordered = definitions()
	index = make(map[string]Descriptor, len(ordered))
	for _, d := range ordered {
		index[d.ID] = d
	}
}

// Resolve returns the descriptor registered under id.
func Resolve(id string) (Descriptor, error) {
	buildOnce.Do(build)
	d, ok := index[id]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownCategory, id)
	}
	return d, nil
}

// All returns every registered descriptor in registration order.
// The returned slice is shared; callers must treat it as read-only.
func All() []Descriptor {
	buildOnce.Do(build)
	return ordered
}

// IDs returns every registered category id in registration order.
func IDs() []string {
	all := All()
	ids := make([]string, len(all))
	for i, d := range all {
		ids[i] = d.ID
	}
	return ids
}

// FormattedOptions returns a human-readable enumeration of category ids,
// quoted and joined with a trailing "or", for use inside instructions.
func FormattedOptions() string {
	ids := IDs()
	quoted := make([]string, len(ids))
	for i, id := range ids {
		quoted[i] = "'" + id + "'"
	}
	switch len(quoted) {
	case 0:
		return "''"
	case 1:
		return quoted[0]
	default:
		return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
	}
}

// InstructionListing returns a multi-line description of every category,
// fed verbatim into the classifier's system instructions.
func InstructionListing() string {
	var b strings.Builder
	b.WriteString("Categories available:\n")
	for _, d := range All() {
		fmt.Fprintf(&b, "For category '%s' (%s):\n", d.ID, d.DisplayName)
		fmt.Fprintf(&b, "- Description: %s\n", d.Description)
		fmt.Fprintf(&b, "- Key Trait: %s\n", d.KeyTrait)
	}
	return strings.TrimRight(b.String(), "\n")
}
