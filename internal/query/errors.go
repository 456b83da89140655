package query

import "fmt"

// ClassificationError indicates the category detection stage failed:
// the backend call errored or returned something undecodable.
type ClassificationError struct {
	Input string
	Err   error
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("classification failed for input %q: %v", e.Input, e.Err)
}

func (e *ClassificationError) Unwrap() error { return e.Err }

// ParseError indicates a structured retrieval returned a payload that
// does not decode against the category schema.
type ParseError struct {
	Category string
	Title    string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s result for %q: %v", e.Category, e.Title, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// JSONDecodeError indicates a loose JSON retrieval produced text with no
// decodable JSON document. Raw preserves the full backend text so the
// caller can still show it.
type JSONDecodeError struct {
	Title string
	Raw   string
	Err   error
}

func (e *JSONDecodeError) Error() string {
	return fmt.Sprintf("no decodable JSON in response for %q: %v", e.Title, e.Err)
}

func (e *JSONDecodeError) Unwrap() error { return e.Err }

// InvalidModeError indicates an unrecognized retrieval mode. It is
// raised before any backend call is made.
type InvalidModeError struct {
	Mode string
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("unknown mode %q: choose from 'parsed', 'json', or 'text'", e.Mode)
}
