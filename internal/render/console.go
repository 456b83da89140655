// Package render draws retrieval results to the terminal. Typed results
// are laid out field by field from the category descriptor; loose JSON
// and plain text fall back to generic panels.
package render

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-json"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"aiss/internal/catalog"
)

// Console renders results to a writer, with styling when the target is a
// terminal.
type Console struct {
	out    io.Writer
	styled bool
}

// NewConsole creates a renderer for out. Styling is enabled only when out
// is a terminal and noColor is false.
func NewConsole(out io.Writer, noColor bool) *Console {
	styled := false
	if !noColor {
		if f, ok := out.(*os.File); ok {
			styled = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
	}
	return &Console{out: out, styled: styled}
}

// Styled reports whether output uses colors and borders.
func (c *Console) Styled() bool { return c.styled }

func (c *Console) titleStyle(color string) lipgloss.Style {
	if !c.styled {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color))
}

// panel prints a titled block. Styled output gets a rounded border;
// plain output gets an underlined heading.
func (c *Console) panel(title, body, color string) {
	if c.styled {
		border := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(color)).
			Padding(0, 1)
		heading := c.titleStyle(color).Render(title)
		fmt.Fprintln(c.out, heading)
		fmt.Fprintln(c.out, border.Render(body))
		return
	}
	fmt.Fprintf(c.out, "%s\n%s\n%s\n\n", title, strings.Repeat("-", len(title)), body)
}

const (
	colorInfo    = "#2196F3"
	colorSuccess = "#8BC34A"
	colorWarning = "#FFC107"
	colorError   = "#e53935"
)

// renderTable draws rows with go-pretty using the shared rounded style.
func (c *Console) renderTable(title string, headers []string, rows [][]string) {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle(title)

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, len(headers))
		for i := range headers {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, len(headers))
	for i := range headers {
		configs[i] = table.ColumnConfig{
			Number:      i + 1,
			Align:       text.AlignLeft,
			AlignHeader: text.AlignLeft,
			WidthMax:    60,
		}
	}
	tw.SetColumnConfigs(configs)

	fmt.Fprintln(c.out, tw.Render())
}

// RenderListing draws an arbitrary titled table. Used for static
// listings such as the category registry.
func (c *Console) RenderListing(title string, headers []string, rows [][]string) {
	c.renderTable(title, headers, rows)
}

// RenderTyped lays out a schema-validated result field by field in
// descriptor order.
func (c *Console) RenderTyped(d catalog.Descriptor, fields map[string]any, info map[string]string) {
	heading := fmt.Sprintf("%s (%s)", d.DisplayName, d.ID)
	fmt.Fprintln(c.out, c.titleStyle(colorInfo).Render(heading))
	fmt.Fprintln(c.out)

	var scalars strings.Builder
	for _, f := range d.Fields {
		v, ok := fields[f.Name]
		switch f.Kind {
		case catalog.KindTable:
			if !ok {
				continue
			}
			c.renderFieldTable(f, v)
		default:
			if !ok {
				v = nil
			}
			fmt.Fprintf(&scalars, "%s: %s\n", f.Header, FormatValue(v, f.Format))
		}
	}
	if scalars.Len() > 0 {
		c.panel("Summary", strings.TrimRight(scalars.String(), "\n"), colorSuccess)
	}
	c.renderInfo(info)
}

// renderFieldTable draws one table-shaped field using its column schema.
func (c *Console) renderFieldTable(f catalog.Field, v any) {
	items, ok := v.([]any)
	if !ok || len(items) == 0 {
		return
	}

	headers := make([]string, len(f.Columns))
	for i, col := range f.Columns {
		headers[i] = col.Header
	}

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		row := make([]string, len(f.Columns))
		for i, col := range f.Columns {
			row[i] = FormatValue(obj[col.Name], col.Format)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return
	}
	c.renderTable(f.Header, headers, rows)
}

// RenderJSON pretty-prints the raw payload, then draws generic panels and
// tables for whatever shape the data happens to have.
func (c *Console) RenderJSON(data map[string]any, raw string, info map[string]string) {
	pretty, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		pretty = []byte(raw)
	}
	c.panel("Raw JSON", string(pretty), colorInfo)

	if summary := firstString(data, "show_summary", "summary", "movie_summary", "game_summary"); summary != "" {
		c.panel("Summary", summary, colorSuccess)
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var scalars strings.Builder
	for _, k := range keys {
		v := data[k]
		if rows, headers, ok := genericTable(v); ok {
			c.renderTable(headerize(k), headers, rows)
			continue
		}
		if isSummaryKey(k) {
			continue
		}
		scalars.WriteString(headerize(k) + ": " + FormatValue(v, catalog.FormatNone) + "\n")
	}
	if scalars.Len() > 0 {
		c.panel("Details", strings.TrimRight(scalars.String(), "\n"), colorWarning)
	}
	c.renderInfo(info)
}

// RenderText prints a free-form description.
func (c *Console) RenderText(body string, info map[string]string) {
	c.panel("Result", strings.TrimSpace(body), colorSuccess)
	c.renderInfo(info)
}

// RenderInvalid prints raw backend text that failed JSON decoding.
func (c *Console) RenderInvalid(raw string) {
	c.panel("Raw response (not valid JSON)", raw, colorError)
}

// renderInfo draws the optional supplementary key/value bag.
func (c *Console) renderInfo(info map[string]string) {
	if len(info) == 0 {
		return
	}
	keys := make([]string, 0, len(info))
	for k := range info {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(headerize(k) + ": " + info[k] + "\n")
	}
	c.panel("Additional Info", strings.TrimRight(b.String(), "\n"), colorInfo)
}

// Step prints a progress message.
func (c *Console) Step(message string) {
	if c.styled {
		fmt.Fprintln(c.out, c.titleStyle(colorInfo).Render("> "+message))
		return
	}
	fmt.Fprintln(c.out, "> "+message)
}

func isSummaryKey(k string) bool {
	switch k {
	case "show_summary", "summary", "movie_summary", "game_summary":
		return true
	}
	return false
}

func firstString(data map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := data[k].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

// genericTable recognizes a list of flat objects and flattens it into
// rows over the union of keys, first object's key order preferred.
func genericTable(v any) (rows [][]string, headers []string, ok bool) {
	items, isList := v.([]any)
	if !isList || len(items) == 0 {
		return nil, nil, false
	}

	var keys []string
	seen := map[string]bool{}
	for _, item := range items {
		obj, isObj := item.(map[string]any)
		if !isObj {
			return nil, nil, false
		}
		objKeys := make([]string, 0, len(obj))
		for k := range obj {
			objKeys = append(objKeys, k)
		}
		sort.Strings(objKeys)
		for _, k := range objKeys {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}

	headers = make([]string, len(keys))
	for i, k := range keys {
		headers[i] = headerize(k)
	}
	for _, item := range items {
		obj := item.(map[string]any)
		row := make([]string, len(keys))
		for i, k := range keys {
			row[i] = FormatValue(obj[k], catalog.FormatNone)
		}
		rows = append(rows, row)
	}
	return rows, headers, true
}

// headerize turns snake_case keys into title-cased headers.
func headerize(key string) string {
	parts := strings.Split(key, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
