package pipeline

import (
	"regexp"
	"strings"
)

// Precompiled rewrite rules for LaTeX residue left by the OCR/export tooling
// that produced the source documents. Order matters: the catch-all dollar span
// must run after the two specific wrappers, otherwise it eats them first.
var (
	// $ ^{*} $ footnote asterisk marker
	starMarkerPattern = regexp.MustCompile(`\$` + space + `*\^\{\*\}` + space + `*\$`)

	// $\underset{\cdot}{X}$ dotted emphasis
	dottedEmphasisPattern = regexp.MustCompile(`\$` + space + `*\\underset\{\\cdot\}\{([^}]+)\}` + space + `*\$`)

	// any remaining $...$ span, content included
	inlineMathPattern = regexp.MustCompile(`\$[^$]*\$`)

	// $\underset{★}{⑩}$ starred footnote wrapper
	starredFootnotePattern = regexp.MustCompile(`\$` + space + `*\\underset\{[^}]*\}\{[^}]*\}` + space + `*\$`)

	// ^{...} superscript marker
	superscriptPattern = regexp.MustCompile(`\^\{[^}]*\}`)

	// **bold**
	boldPattern = regexp.MustCompile(`\*\*([^*]+)\*\*`)
)

// DottedEmphasisClass is the CSS class marking characters under an emphasis dot.
const DottedEmphasisClass = "em-dot"

// NormalizeMarkup removes LaTeX residue and converts dotted emphasis to a span.
// Unmatched input passes through unchanged; the result is trimmed.
func NormalizeMarkup(text string) string {
	text = starMarkerPattern.ReplaceAllString(text, "")
	text = dottedEmphasisPattern.ReplaceAllString(text, `<span class="`+DottedEmphasisClass+`">${1}</span>`)
	text = inlineMathPattern.ReplaceAllString(text, "")
	text = starredFootnotePattern.ReplaceAllString(text, "")
	text = superscriptPattern.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// RenderInline normalizes text and converts **bold** to <strong>.
// Content is not HTML-escaped: sources carry literal markup that must survive.
func RenderInline(text string) string {
	text = NormalizeMarkup(text)
	return boldPattern.ReplaceAllString(text, "<strong>${1}</strong>")
}

// stripCarriageReturns drops every \r, turning CRLF sources into LF ones.
func stripCarriageReturns(content string) string {
	return strings.ReplaceAll(content, "\r", "")
}
