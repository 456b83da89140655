package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"aiss/internal/catalog"
)

// errNotNumeric marks values coerceNumeric cannot handle; callers fall
// back to plain string rendering.
var errNotNumeric = fmt.Errorf("not numeric")

// coerceNumeric converts JSON-decoded scalar values into a float64.
// Strings may carry thousands separators. The "present" sentinel is
// rejected so year formatting can handle it explicitly.
func coerceNumeric(v any) (float64, error) {
	switch n := v.(type) {
	case nil:
		return 0, errNotNumeric
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, errNotNumeric
		}
		s = strings.ReplaceAll(s, ",", "")
		if strings.EqualFold(s, "present") {
			return 0, errNotNumeric
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, errNotNumeric
		}
		return f, nil
	default:
		return 0, errNotNumeric
	}
}

// groupThousands inserts comma separators into a non-negative integer string.
func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	rem := n % 3
	if rem > 0 {
		b.WriteString(digits[:rem])
	}
	for i := rem; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func groupedInt(v int64) string {
	if v < 0 {
		return "-" + groupThousands(strconv.FormatInt(-v, 10))
	}
	return groupThousands(strconv.FormatInt(v, 10))
}

// FormatMoney renders a numeric value with thousands separators and a
// currency prefix. Non-numeric values keep the prefix when printable.
func FormatMoney(v any, currency string) string {
	n, err := coerceNumeric(v)
	if err != nil {
		if v == nil {
			return "-"
		}
		if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
			return "-"
		}
		return currency + fmt.Sprint(v)
	}
	return currency + groupedInt(int64(n))
}

// FormatYear renders year-like values. Zero or negative means unknown,
// 9999 and the "present" sentinel mean an ongoing run.
func FormatYear(v any) string {
	if v == nil {
		return "-"
	}
	if s, ok := v.(string); ok {
		trimmed := strings.TrimSpace(s)
		if trimmed == "" {
			return "-"
		}
		if strings.EqualFold(trimmed, "present") {
			return "Present"
		}
		v = trimmed
	}

	n, err := coerceNumeric(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	year := int64(n)
	if year <= 0 {
		return "-"
	}
	if year >= 9999 {
		return "Present"
	}
	return strconv.FormatInt(year, 10)
}

// FormatNumber renders integers with separators; fractional values keep
// up to two decimal places with trailing zeros trimmed.
func FormatNumber(v any) string {
	n, err := coerceNumeric(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	rounded := math.Round(n)
	if math.Abs(n-rounded) < 1e-6 {
		return groupedInt(int64(rounded))
	}
	formatted := strconv.FormatFloat(n, 'f', 2, 64)
	formatted = strings.TrimRight(formatted, "0")
	formatted = strings.TrimSuffix(formatted, ".")
	dot := strings.IndexByte(formatted, '.')
	if dot < 0 {
		i, _ := strconv.ParseInt(formatted, 10, 64)
		return groupedInt(i)
	}
	intPart := strings.TrimPrefix(formatted[:dot], "-")
	out := groupThousands(intPart) + formatted[dot:]
	if strings.HasPrefix(formatted, "-") {
		out = "-" + out
	}
	return out
}

// FormatDecimal renders a number with a fixed number of decimal places,
// trimming trailing zeros.
func FormatDecimal(v any, digits int) string {
	n, err := coerceNumeric(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	formatted := strconv.FormatFloat(n, 'f', digits, 64)
	if strings.Contains(formatted, ".") {
		formatted = strings.TrimRight(formatted, "0")
		formatted = strings.TrimSuffix(formatted, ".")
	}
	return formatted
}

// FormatPercent renders ratios and percentages. Magnitudes at or below 1
// are treated as ratios and scaled.
func FormatPercent(v any) string {
	n, err := coerceNumeric(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	if math.Abs(n) <= 1 {
		n *= 100
	}
	formatted := strconv.FormatFloat(n, 'f', 1, 64)
	formatted = strings.TrimRight(formatted, "0")
	formatted = strings.TrimSuffix(formatted, ".")
	return formatted + "%"
}

// FormatRuntime renders a runtime in minutes with a unit suffix.
func FormatRuntime(v any) string {
	n, err := coerceNumeric(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	minutes := int64(math.Round(n))
	if minutes <= 0 {
		return "-"
	}
	return groupedInt(minutes) + " min"
}

// FormatValue applies a catalog format hint to a decoded JSON value.
// Lists are joined with commas; missing values render as a dash.
func FormatValue(v any, format catalog.Format) string {
	if v == nil {
		return "-"
	}
	if list, ok := v.([]any); ok {
		parts := make([]string, len(list))
		for i, item := range list {
			parts[i] = FormatValue(item, format)
		}
		return strings.Join(parts, ", ")
	}
	if list, ok := v.([]string); ok {
		return strings.Join(list, ", ")
	}

	switch format {
	case catalog.FormatYear:
		return FormatYear(v)
	case catalog.FormatMoney:
		return FormatMoney(v, "$")
	case catalog.FormatNumber:
		return FormatNumber(v)
	case catalog.FormatDecimal:
		return FormatDecimal(v, 1)
	case catalog.FormatPercent:
		return FormatPercent(v)
	case catalog.FormatRuntime:
		return FormatRuntime(v)
	default:
		switch s := v.(type) {
		case string:
			if strings.TrimSpace(s) == "" {
				return "-"
			}
			return s
		case float64:
			return FormatNumber(s)
		case bool:
			if s {
				return "Yes"
			}
			return "No"
		default:
			return fmt.Sprint(v)
		}
	}
}
