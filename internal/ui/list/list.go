// Package list renders the selectable tables shared by every picker screen
// (regions, services, resources, blueprints, blueprint entries, settings).
package list

import (
	"fmt"
	"strings"

	"github.com/noelruault/emd/internal/ui/shared"
)

// Cursor is the selected row of a table plus its scroll window.
type Cursor struct {
	Index int
	VP    shared.Viewport
}

// Up moves the cursor one row up.
func (c *Cursor) Up() {
	if c.Index > 0 {
		c.Index--
	}
}

// Down moves the cursor one row down within n rows.
func (c *Cursor) Down(n int) {
	if c.Index < n-1 {
		c.Index++
	}
}

// Clamp keeps the cursor inside n rows.
func (c *Cursor) Clamp(n int) {
	if c.Index >= n {
		c.Index = n - 1
	}
	if c.Index < 0 {
		c.Index = 0
	}
}

// Reset moves the cursor back to the first row.
func (c *Cursor) Reset() {
	c.Index = 0
	c.VP.Offset = 0
}

// Column is one table column. Width 0 takes the remaining space unpadded.
type Column struct {
	Title string
	Width int
}

// Table is a k9s style list.
type Table struct {
	Title   string
	Columns []Column
	Rows    [][]string
	Empty   string
	// Marked rows get a leading marker, for instance the current region.
	Marked map[int]bool
}

// Render draws t with the cursor row highlighted. Only rows inside the
// cursor's viewport are drawn.
func Render(t Table, c Cursor) string {
	var b strings.Builder

	b.WriteString(shared.TitleStyle.Render(fmt.Sprintf("%s[%d]", t.Title, len(t.Rows))))
	b.WriteString("\n")

	if len(t.Rows) == 0 {
		if t.Empty != "" {
			b.WriteString(shared.HintStyle.Render(t.Empty))
		}
		return b.String()
	}

	var header []string
	for _, col := range t.Columns {
		header = append(header, cell(strings.ToUpper(col.Title), col.Width))
	}
	b.WriteString(shared.HeaderStyle.Render("  "+strings.Join(header, " ")) + "\n")

	vp := c.VP
	if vp.Height <= 0 {
		vp.Height = len(t.Rows)
	}
	shared.EnsureVisible(c.Index, len(t.Rows), &vp)
	start, end := shared.GetVisibleRange(len(t.Rows), vp)

	for i := start; i < end; i++ {
		var cells []string
		for j, col := range t.Columns {
			v := ""
			if j < len(t.Rows[i]) {
				v = t.Rows[i][j]
			}
			cells = append(cells, cell(v, col.Width))
		}
		marker := "  "
		if t.Marked[i] {
			marker = "* "
		}
		row := marker + strings.Join(cells, " ")
		if i == c.Index {
			b.WriteString(shared.SelectedStyle.Render(row) + "\n")
		} else {
			b.WriteString(shared.NormalStyle.Render(row) + "\n")
		}
	}

	if start > 0 || end < len(t.Rows) {
		b.WriteString(shared.HintStyle.Render(fmt.Sprintf("[%d-%d / %d]", start+1, end, len(t.Rows))))
	}
	return strings.TrimRight(b.String(), "\n")
}

func cell(s string, width int) string {
	if width <= 0 {
		return s
	}
	return shared.Pad(s, width)
}

// Window returns the viewport a cursor should scroll with for a screen of
// the given height, keeping room for header, footer and status lines.
func Window(height int) shared.Viewport {
	h := height - 14
	if h < 5 {
		h = 5
	}
	return shared.Viewport{Height: h}
}
