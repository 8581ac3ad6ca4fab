package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
)

// Sentinel errors for page rendering.
var (
	ErrPageRender  = errors.New("page template rendering failed")
	ErrIndexRender = errors.New("index template rendering failed")
)

// TOCEntry is one table-of-contents link.
type TOCEntry struct {
	ID    string        // unpadded section number, used in the "p{ID}" anchor
	Label string        // two-digit section number
	Title template.HTML // inline-rendered title
}

// NavLinks chains a page to its neighbours and the index.
// Empty Prev or Next means the link is absent.
type NavLinks struct {
	Prev string
	Home string
	Next string
}

// PageData holds everything the page template needs.
type PageData struct {
	Title        string
	Subtitle     string
	SiteName     string
	Footer       string
	Stylesheet   string
	TOC          []TOCEntry
	Sections     []template.HTML
	Translations template.HTML
	Nav          NavLinks
}

// NewPageData builds the template data for a parsed document. Fragments are
// trusted: they come from RenderSection and RenderTranslations.
func NewPageData(doc *Document, sections []string, translations string) PageData {
	data := PageData{
		TOC:          make([]TOCEntry, 0, len(doc.Sections)),
		Sections:     make([]template.HTML, 0, len(sections)),
		Translations: template.HTML(translations), // #nosec G203 -- rendered from parsed source
	}
	for _, s := range doc.Sections {
		data.TOC = append(data.TOC, TOCEntry{
			ID:    s.Number,
			Label: PadNumber(s.Number),
			Title: template.HTML(s.Title), // #nosec G203 -- LaTeX-cleaned source, bold markers kept
		})
	}
	for _, fragment := range sections {
		data.Sections = append(data.Sections, template.HTML(fragment)) // #nosec G203 -- rendered from parsed source
	}
	return data
}

// PageAssembler defines the contract for wrapping fragments in a full page.
type PageAssembler interface {
	AssemblePage(ctx context.Context, data PageData) (string, error)
}

// PageAssembly renders the day page template.
type PageAssembly struct {
	tmpl *template.Template
}

// NewPageAssembly parses the page template.
func NewPageAssembly(tmplContent string) (*PageAssembly, error) {
	tmpl, err := template.New("page").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	return &PageAssembly{tmpl: tmpl}, nil
}

// AssemblePage executes the page template with data.
func (a *PageAssembly) AssemblePage(ctx context.Context, data PageData) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := a.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageRender, err)
	}
	return buf.String(), nil
}

// IndexEntry is one day listed on the index page.
type IndexEntry struct {
	Href     string
	Title    string
	Subtitle string
}

// IndexData holds everything the index template needs.
type IndexData struct {
	SiteName   string
	Footer     string
	Stylesheet string
	Intro      template.HTML
	Days       []IndexEntry
}

// IndexAssembler defines the contract for rendering the index page.
type IndexAssembler interface {
	AssembleIndex(ctx context.Context, data IndexData) (string, error)
}

// IndexAssembly renders the index page template.
type IndexAssembly struct {
	tmpl *template.Template
}

// NewIndexAssembly parses the index template.
func NewIndexAssembly(tmplContent string) (*IndexAssembly, error) {
	tmpl, err := template.New("index").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing index template: %w", err)
	}
	return &IndexAssembly{tmpl: tmpl}, nil
}

// AssembleIndex executes the index template with data.
func (a *IndexAssembly) AssembleIndex(ctx context.Context, data IndexData) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := a.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrIndexRender, err)
	}
	return buf.String(), nil
}
