package render

import (
	"testing"

	"aiss/internal/catalog"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"float", float64(63500000), "$63,500,000"},
		{"string with separators", "63,500,000", "$63,500,000"},
		{"small", float64(5), "$5"},
		{"nil", nil, "-"},
		{"blank string", "   ", "-"},
		{"non numeric keeps prefix", "unknown", "$unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatMoney(tt.in, "$"); got != tt.want {
				t.Errorf("FormatMoney(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatYear(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"normal", float64(1999), "1999"},
		{"string", "2004", "2004"},
		{"float truncates", float64(2004.0), "2004"},
		{"zero", float64(0), "-"},
		{"negative", float64(-1), "-"},
		{"ongoing sentinel", float64(9999), "Present"},
		{"beyond sentinel", float64(10231), "Present"},
		{"present string", "Present", "Present"},
		{"present lower", "present", "Present"},
		{"nil", nil, "-"},
		{"blank", "  ", "-"},
		{"garbage passes through", "sometime", "sometime"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatYear(tt.in); got != tt.want {
				t.Errorf("FormatYear(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"integer", float64(1234567), "1,234,567"},
		{"fraction trimmed", float64(1234.5), "1,234.5"},
		{"two decimals", float64(0.25), "0.25"},
		{"not numeric", "n/a", "n/a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatNumber(tt.in); got != tt.want {
				t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatDecimal(t *testing.T) {
	if got := FormatDecimal(float64(8.0), 1); got != "8" {
		t.Errorf("whole number should trim: %q", got)
	}
	if got := FormatDecimal(float64(8.55), 1); got != "8.6" {
		t.Errorf("rounding failed: %q", got)
	}
	if got := FormatDecimal("bad", 1); got != "bad" {
		t.Errorf("fallback failed: %q", got)
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"ratio scaled", float64(0.93), "93%"},
		{"already percent", float64(93), "93%"},
		{"one decimal kept", float64(93.5), "93.5%"},
		{"not numeric", "fresh", "fresh"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPercent(tt.in); got != tt.want {
				t.Errorf("FormatPercent(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatRuntime(t *testing.T) {
	if got := FormatRuntime(float64(136)); got != "136 min" {
		t.Errorf("got %q", got)
	}
	if got := FormatRuntime(float64(0)); got != "-" {
		t.Errorf("zero runtime: %q", got)
	}
	if got := FormatRuntime("unknown"); got != "unknown" {
		t.Errorf("fallback: %q", got)
	}
}

func TestFormatValue(t *testing.T) {
	if got := FormatValue([]any{"a", "b", "c"}, catalog.FormatNone); got != "a, b, c" {
		t.Errorf("list join: %q", got)
	}
	if got := FormatValue(nil, catalog.FormatYear); got != "-" {
		t.Errorf("nil: %q", got)
	}
	if got := FormatValue(true, catalog.FormatNone); got != "Yes" {
		t.Errorf("bool: %q", got)
	}
	if got := FormatValue(float64(2010), catalog.FormatYear); got != "2010" {
		t.Errorf("year hint: %q", got)
	}
	if got := FormatValue("  ", catalog.FormatNone); got != "-" {
		t.Errorf("blank string: %q", got)
	}
}
