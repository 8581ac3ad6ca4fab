package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// space matches ASCII and Unicode spaces; sources mix in U+3000 freely.
const space = `[\s\p{Z}]`

// digit matches any decimal digit; full-width ０-９ show up next to ＜＞.
const digit = `\p{Nd}`

// Top-level line patterns.
var (
	// ## 01 标题 (two-digit form is tried first)
	sectionHeadingTwoDigits = regexp.MustCompile(`^#{1,4}` + space + `*(` + digit + `{2})` + space + `+(.+)`)
	sectionHeadingAnyDigits = regexp.MustCompile(`^#{1,4}` + space + `*(` + digit + `{1,2})` + space + `+(.+)`)

	// 【3】译文…
	translationItemPattern = regexp.MustCompile(`^【(` + digit + `+)】(.*)`)
)

// translationHeadingMarkers switch the parser into the appendix when they
// appear in a Markdown heading.
var translationHeadingMarkers = []string{"译文", "课文参考译文", "所有段落详文"}

// titleLineWindow is how many leading lines may hold the "第N天" title.
const titleLineWindow = 5

// DocumentParser defines the contract for turning a source day into a Document.
type DocumentParser interface {
	ParseDocument(ctx context.Context, content string) (*Document, error)
}

// StudyParser parses the study-day Markdown dialect.
type StudyParser struct{}

// ParseDocument parses content, returning ctx.Err() if ctx is already done.
// Malformed lines never fail the parse.
func (p *StudyParser) ParseDocument(ctx context.Context, content string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ParseDocument(content), nil
}

// ParseDocument splits a source day into sections and translations, then
// derives each section's blocks. It never fails: unrecognized lines are
// absorbed into the open block or dropped.
func ParseDocument(content string) *Document {
	lines := strings.Split(stripCarriageReturns(content), "\n")

	doc := &Document{}
	var current *Section
	inTranslation := false

	closeSection := func() {
		if current != nil {
			doc.Sections = append(doc.Sections, current)
			current = nil
		}
	}

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])

		if i < titleLineWindow && isDayTitle(line) {
			continue
		}

		if !inTranslation && isTranslationHeading(line) {
			inTranslation = true
			closeSection()
			continue
		}

		if inTranslation {
			m := translationItemPattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			text, next := collectTranslation(lines, i+1, m[2])
			doc.Translations = append(doc.Translations, Translation{
				Number: m[1],
				Text:   NormalizeMarkup(text),
			})
			i = next - 1
			continue
		}

		if number, title, ok := matchSectionHeading(line); ok {
			closeSection()
			current = &Section{Number: number, Title: NormalizeMarkup(title)}
			continue
		}

		if current != nil {
			current.Lines = append(current.Lines, lines[i])
		}
	}
	closeSection()

	for _, s := range doc.Sections {
		parseSectionBody(s)
	}
	return doc
}

// collectTranslation appends continuation lines to text until the next line
// opening with 【 or the end of input. Blank lines are skipped, not terminal.
// Returns the joined text and the index of the first unconsumed line.
func collectTranslation(lines []string, start int, text string) (string, int) {
	var b strings.Builder
	b.WriteString(text)
	i := start
	for ; i < len(lines); i++ {
		next := strings.TrimSpace(lines[i])
		if strings.HasPrefix(next, "【") {
			break
		}
		b.WriteString(next)
	}
	return b.String(), i
}

// isDayTitle reports whether line reads like "第一天 …".
func isDayTitle(line string) bool {
	return strings.HasPrefix(line, "第") && strings.Contains(line, "天")
}

// isTranslationHeading reports whether line is a heading opening the appendix.
func isTranslationHeading(line string) bool {
	if !strings.HasPrefix(line, "#") {
		return false
	}
	for _, marker := range translationHeadingMarkers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}

// matchSectionHeading extracts number and title from a passage heading.
// Headings starting with #### are structural and never open a section.
func matchSectionHeading(line string) (number, title string, ok bool) {
	if strings.HasPrefix(line, "####") {
		return "", "", false
	}
	m := sectionHeadingTwoDigits.FindStringSubmatch(line)
	if m == nil {
		m = sectionHeadingAnyDigits.FindStringSubmatch(line)
	}
	if m == nil {
		return "", "", false
	}
	return trimSectionNumber(m[1]), strings.TrimSpace(m[2]), true
}

// trimSectionNumber strips leading ASCII zeros, keeping "0" for an all-zero
// number. Full-width numbers are kept as written.
func trimSectionNumber(n string) string {
	n = strings.TrimLeft(n, "0")
	if n == "" {
		return "0"
	}
	return n
}
