// Package document frames rendered resource sections into one Markdown
// document: title, optional table of contents, anchors and ordering.
package document

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/noelruault/emd/internal/catalog"
	"github.com/noelruault/emd/internal/errs"
	"github.com/noelruault/emd/internal/i18n"
)

// Renderer produces the per-kind parts of a section.
type Renderer interface {
	Title(d catalog.Detail) string
	Body(d catalog.Detail) string
}

// Document is an assembled Markdown document.
type Document struct {
	Title    string
	Content  string
	Filename string
	// Skipped lists blueprint entries left out because their detail failed.
	Skipped []catalog.Ref
}

// Assembler builds documents from fetched details.
type Assembler struct {
	r      Renderer
	labels i18n.Labeler
}

// NewAssembler returns an assembler using r for section content.
func NewAssembler(r Renderer, labels i18n.Labeler) Assembler {
	return Assembler{r: r, labels: labels}
}

// Single renders the current detail on its own.
func (a Assembler) Single(d catalog.Detail) (Document, error) {
	if d == nil {
		return Document{}, errs.ErrNotFound
	}
	title := a.r.Title(d)
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	b.WriteString(strings.TrimRight(a.r.Body(d), "\n"))
	b.WriteString("\n")

	id, name := d.Identity()
	base := name
	if base == "" {
		base = id
	}
	return Document{
		Title:    title,
		Content:  b.String(),
		Filename: Filename(d.Kind().String() + "_" + base),
	}, nil
}

// Blueprint renders one section per fetched entry in the given order.
// Entries whose fetch failed are skipped and listed in Skipped. The table of
// contents is emitted only when more than one section is rendered.
func (a Assembler) Blueprint(name string, entries []catalog.Fetched) Document {
	type rendered struct {
		anchor string
		title  string
		body   string
	}

	doc := Document{Title: name, Filename: Filename(name)}
	var sections []rendered
	for _, e := range entries {
		if !e.OK() {
			doc.Skipped = append(doc.Skipped, e.Ref)
			continue
		}
		n := len(sections) + 1
		sections = append(sections, rendered{
			anchor: fmt.Sprintf("resource-%d", n),
			title:  a.r.Title(e.Detail),
			body:   strings.TrimRight(a.r.Body(e.Detail), "\n"),
		})
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", name)

	if len(sections) > 1 {
		fmt.Fprintf(&b, "\n## %s\n\n", a.labels.Get(i18n.TableOfContent))
		for i, s := range sections {
			fmt.Fprintf(&b, "%d. [%s](#%s)\n", i+1, s.title, s.anchor)
		}
	}

	for i, s := range sections {
		if i > 0 || len(sections) > 1 {
			b.WriteString("\n---\n")
		}
		fmt.Fprintf(&b, "\n<a id=\"%s\"></a>\n\n## %s\n\n%s\n", s.anchor, s.title, s.body)
	}

	doc.Content = b.String()
	return doc
}

var unsafeName = regexp.MustCompile(`[^\p{L}\p{N}._-]+`)

// Filename derives a file name from a title: runs of characters outside
// letters, digits, dot, dash and underscore collapse to one underscore.
func Filename(title string) string {
	base := strings.Trim(unsafeName.ReplaceAllString(strings.TrimSpace(title), "_"), "_.")
	if base == "" {
		base = "document"
	}
	return base + ".md"
}
