package pipeline

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Fixed headings emitted by the renderer.
const (
	WordDetailTitle   = "字词详解"
	TranslationsTitle = "译文"
	noteStarMarkup    = `<span class="note-star">★</span>`
)

// BlockRenderer defines the contract for turning parsed blocks into HTML fragments.
type BlockRenderer interface {
	RenderSection(ctx context.Context, s *Section) (string, error)
	RenderTranslations(ctx context.Context, items []Translation) (string, error)
}

// StudyRenderer renders sections and translations as fragments styled by
// the default stylesheet.
type StudyRenderer struct{}

// RenderSection renders s, returning ctx.Err() if ctx is already done.
func (r *StudyRenderer) RenderSection(ctx context.Context, s *Section) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return RenderSection(s), nil
}

// RenderTranslations renders items, returning ctx.Err() if ctx is already done.
func (r *StudyRenderer) RenderTranslations(ctx context.Context, items []Translation) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return RenderTranslations(items), nil
}

// PadNumber left-pads a section number with zeros to two characters.
func PadNumber(n string) string {
	width := utf8.RuneCountInString(n)
	if width >= 2 {
		return n
	}
	return strings.Repeat("0", 2-width) + n
}

// RenderSection emits the passage fragment for s. Empty blocks emit nothing.
func RenderSection(s *Section) string {
	out := []string{
		fmt.Sprintf(`<div class="passage" id="p%s">`, s.Number),
		fmt.Sprintf(`  <h2 class="passage-title"><span class="passage-num">%s</span> %s</h2>`,
			PadNumber(s.Number), RenderInline(s.Title)),
	}

	if s.OriginalText != "" || s.SourceRef != "" {
		out = append(out, `  <div class="original-text">`+s.OriginalText)
		if s.SourceRef != "" {
			out = append(out, `    <span class="source">`+RenderInline(s.SourceRef)+`</span>`)
		}
		out = append(out, `  </div>`)
	}

	if len(s.Notes) > 0 {
		out = append(out, `  <div class="notes">`)
		for _, note := range s.Notes {
			class, star := "", ""
			if note.IsKey {
				class, star = " note-key", noteStarMarkup
			}
			out = append(out, fmt.Sprintf(`    <div class="note%s">%s%s</div>`, class, star, note.Text))
		}
		out = append(out, `  </div>`)
	}

	for _, ks := range s.KeySentences {
		if strings.TrimSpace(ks) != "" {
			out = append(out, `  <div class="key-sentence">`+ks+`</div>`)
		}
	}

	if len(s.WordBlocks) > 0 {
		out = append(out, renderWordBlocks(s.WordBlocks)...)
	}

	out = append(out, `</div>`)
	return strings.Join(out, "\n")
}

func renderWordBlocks(blocks []*WordBlock) []string {
	out := []string{
		`  <div class="word-detail">`,
		`    <div class="word-detail-title">` + WordDetailTitle + `</div>`,
	}
	for _, wb := range blocks {
		out = append(out,
			`    <div class="word-meaning">`,
			`      <span class="word-pos">`+wb.Tag+`</span>`,
			`      <span class="word-def">`+wb.Definition+`</span>`,
		)
		for _, ex := range wb.Examples {
			if ex.Source == "" && ex.Translation == "" {
				continue
			}
			out = append(out,
				`      <div class="word-example">`,
				`        <span class="example-source">`+ex.Source+`</span>`,
			)
			if ex.Translation != "" {
				out = append(out, `        <span class="example-trans">`+ex.Translation+`</span>`)
			}
			out = append(out, `      </div>`)
		}
		out = append(out, `    </div>`)
	}
	return append(out, `  </div>`)
}

// RenderTranslations emits the appendix fragment, or "" when items is empty.
// Numbers are written exactly as captured.
func RenderTranslations(items []Translation) string {
	if len(items) == 0 {
		return ""
	}
	out := []string{
		`<div class="translations">`,
		`  <h2 class="translations-title">` + TranslationsTitle + `</h2>`,
	}
	for _, item := range items {
		out = append(out,
			`  <div class="trans-item">`,
			`    <span class="trans-num">`+item.Number+`</span>`,
			`    <span class="trans-text">`+item.Text+`</span>`,
			`  </div>`,
		)
	}
	out = append(out, `</div>`)
	return strings.Join(out, "\n")
}
