package render

import (
	"fmt"
	"strings"
)

// table accumulates one Markdown pipe table.
type table struct {
	b    *strings.Builder
	cols int
}

func newTable(b *strings.Builder, headers ...string) *table {
	b.WriteString("| " + strings.Join(headers, " | ") + " |\n")
	b.WriteString(strings.Repeat("|:---", len(headers)) + "|\n")
	return &table{b: b, cols: len(headers)}
}

func (t *table) row(cells ...string) {
	for i, c := range cells {
		cells[i] = cell(c)
	}
	for len(cells) < t.cols {
		cells = append(cells, "-")
	}
	t.b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
}

// cell escapes pipes and newlines so the value stays in one table cell.
func cell(s string) string {
	if s == "" {
		return "-"
	}
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\r\n", "<br>")
	return strings.ReplaceAll(s, "\n", "<br>")
}

func section(b *strings.Builder, title string) {
	fmt.Fprintf(b, "\n### %s\n\n", title)
}

func code(s string) string {
	if s == "" {
		return "-"
	}
	return "`" + s + "`"
}

func join(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
