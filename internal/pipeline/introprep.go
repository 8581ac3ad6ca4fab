package pipeline

import (
	"regexp"
	"strings"
)

// Highlight placeholders from the Private Use Area. Goldmark passes them
// through as text, so ==marks== survive without WithUnsafe.
const (
	markOpen  = "\uE000"
	markClose = "\uE001"
)

var (
	lineBreakPattern = regexp.MustCompile(`\r\n?`)
	blankRunPattern  = regexp.MustCompile(`\n{3,}`)

	// ==text== on a single line
	highlightPattern = regexp.MustCompile(`==([^=\n]+)==`)
)

// PrepareIntro readies free-form Markdown for goldmark: line endings become
// \n, runs of blank lines collapse to one, and ==text== turns into
// placeholders that RestoreHighlights later converts to <mark>.
func PrepareIntro(content string) string {
	content = lineBreakPattern.ReplaceAllString(content, "\n")
	content = highlightPattern.ReplaceAllString(content, markOpen+"${1}"+markClose)
	return blankRunPattern.ReplaceAllString(content, "\n\n")
}

// RestoreHighlights converts PrepareIntro placeholders in rendered HTML to <mark> tags.
func RestoreHighlights(html string) string {
	return strings.NewReplacer(markOpen, "<mark>", markClose, "</mark>").Replace(html)
}
