package query

import "strings"

// Mode selects the retrieval strategy.
type Mode string

const (
	// ModeParsed requests schema-validated structured output.
	ModeParsed Mode = "parsed"
	// ModeJSON requests JSON by instruction only and decodes leniently.
	ModeJSON Mode = "json"
	// ModeText requests a plain prose description.
	ModeText Mode = "text"
)

// ParseMode normalizes a user-supplied mode string. Matching is
// case-insensitive and surrounding whitespace is ignored; an empty
// string selects the parsed mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(ModeParsed):
		return ModeParsed, nil
	case string(ModeJSON):
		return ModeJSON, nil
	case string(ModeText):
		return ModeText, nil
	default:
		return "", &InvalidModeError{Mode: s}
	}
}
