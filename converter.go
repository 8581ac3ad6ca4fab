package guwen

import (
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/alnah/go-guwen/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.DocumentParser = (*pipeline.StudyParser)(nil)
	_ pipeline.BlockRenderer  = (*pipeline.StudyRenderer)(nil)
	_ pipeline.PageAssembler  = (*pipeline.PageAssembly)(nil)
	_ pipeline.IndexAssembler = (*pipeline.IndexAssembly)(nil)
	_ pipeline.HTMLConverter  = (*pipeline.GoldmarkConverter)(nil)
)

// Converter orchestrates the study-day to HTML pipeline.
// A Converter holds no per-conversion state and is safe for concurrent use.
type Converter struct {
	cfg               converterConfig
	assetLoader       AssetLoader
	publicAssetLoader AssetLoader // from WithAssetLoader
	parser            pipeline.DocumentParser
	renderer          pipeline.BlockRenderer
	pageAssembler     pipeline.PageAssembler
	indexAssembler    pipeline.IndexAssembler
	htmlConverter     pipeline.HTMLConverter
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithSiteName, WithAssetPath).
// Returns error if asset loading or template parsing fails.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:           defaultConverterConfig(),
		parser:        &pipeline.StudyParser{},
		renderer:      &pipeline.StudyRenderer{},
		htmlConverter: pipeline.NewGoldmarkConverter(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.publicAssetLoader != nil {
		c.assetLoader = c.publicAssetLoader
	} else {
		loader, err := NewAssetLoader(c.cfg.assetPath)
		if err != nil {
			return nil, err
		}
		c.assetLoader = loader
	}

	// Assemblers injected by tests are kept as is.
	if c.pageAssembler == nil {
		tmpl, err := c.assetLoader.LoadTemplate(PageTemplate)
		if err != nil {
			return nil, fmt.Errorf("loading page template: %w", err)
		}
		c.pageAssembler, err = pipeline.NewPageAssembly(tmpl)
		if err != nil {
			return nil, fmt.Errorf("initializing page assembler: %w", err)
		}
	}

	if c.indexAssembler == nil {
		tmpl, err := c.assetLoader.LoadTemplate(IndexTemplate)
		if err != nil {
			return nil, fmt.Errorf("loading index template: %w", err)
		}
		c.indexAssembler, err = pipeline.NewIndexAssembly(tmpl)
		if err != nil {
			return nil, fmt.Errorf("initializing index assembler: %w", err)
		}
	}

	return c, nil
}

// Convert renders one day page.
// Front matter title and subtitle, when present, override the Input values.
// The source text itself never causes an error; only front matter, template
// execution and cancellation do.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	meta, body, err := pipeline.SplitFrontMatter(input.Markdown)
	if err != nil {
		return nil, err
	}
	title := firstNonEmpty(meta.Title, input.Title)
	subtitle := firstNonEmpty(meta.Subtitle, input.Subtitle)

	doc, err := c.parser.ParseDocument(ctx, body)
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	sections := make([]string, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		fragment, err := c.renderer.RenderSection(ctx, s)
		if err != nil {
			return nil, fmt.Errorf("rendering section %s: %w", s.Number, err)
		}
		sections = append(sections, fragment)
	}

	translations, err := c.renderer.RenderTranslations(ctx, doc.Translations)
	if err != nil {
		return nil, fmt.Errorf("rendering translations: %w", err)
	}

	data := pipeline.NewPageData(doc, sections, translations)
	data.Title = title
	data.Subtitle = subtitle
	data.SiteName = c.cfg.siteName
	data.Footer = c.cfg.footer
	data.Stylesheet = c.cfg.stylesheet
	data.Nav = pipeline.NavLinks{
		Prev: input.Nav.Prev,
		Home: c.cfg.home,
		Next: input.Nav.Next,
	}

	page, err := c.pageAssembler.AssemblePage(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("assembling page: %w", err)
	}

	return &Result{
		HTML:         []byte(page),
		Title:        title,
		Subtitle:     subtitle,
		Sections:     len(doc.Sections),
		Translations: len(doc.Translations),
	}, nil
}

// ConvertIndex renders the home page listing the days in order.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) ConvertIndex(ctx context.Context, input IndexInput) (html []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	data := pipeline.IndexData{
		SiteName:   c.cfg.siteName,
		Footer:     c.cfg.footer,
		Stylesheet: c.cfg.stylesheet,
		Days:       make([]pipeline.IndexEntry, 0, len(input.Days)),
	}

	if strings.TrimSpace(input.Intro) != "" {
		intro, err := c.htmlConverter.ToHTML(ctx, input.Intro)
		if err != nil {
			return nil, fmt.Errorf("converting intro: %w", err)
		}
		intro, err = pipeline.RebaseLinks(intro, input.IntroBase)
		if err != nil {
			return nil, fmt.Errorf("rebasing intro links: %w", err)
		}
		data.Intro = template.HTML(intro) // #nosec G203 -- goldmark escapes raw HTML without WithUnsafe
	}

	for _, day := range input.Days {
		data.Days = append(data.Days, pipeline.IndexEntry(day))
	}

	page, err := c.indexAssembler.AssembleIndex(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("assembling index: %w", err)
	}
	return []byte(page), nil
}

// Style returns the resolved default stylesheet, custom directory first.
func (c *Converter) Style() (string, error) {
	css, err := c.assetLoader.LoadStyle(DefaultStyle)
	if err != nil {
		return "", fmt.Errorf("loading style %q: %w", DefaultStyle, err)
	}
	return css, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
