package pipeline

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// sectionMode is the block the section pass is currently filling.
type sectionMode int

const (
	modeOriginal sectionMode = iota
	modeNotes
	modeKey
	modeWords
)

func (m sectionMode) String() string {
	switch m {
	case modeOriginal:
		return "original"
	case modeNotes:
		return "notes"
	case modeKey:
		return "key"
	case modeWords:
		return "words"
	}
	return "unknown"
}

// Section body patterns.
var (
	keyHeadingPattern = regexp.MustCompile(`^#{1,4}` + space + `*[*$]`)
	keyHeadingPrefix  = regexp.MustCompile(`^#{1,4}` + space + `*\*?` + space + `*`)
	bulletPrefix      = regexp.MustCompile(`^\*` + space + `*`)
	starMarkerPrefix  = regexp.MustCompile(`^\$` + space + `*\^\{\*\}` + space + `*\$` + space + `*`)

	// 1.<动>善良的  /  1.＜名＞…
	wordEntryPattern = regexp.MustCompile(`^(` + digit + `+)\.` + space + `*[<＜]([^>＞]+)[>＞]` + space + `*(.*)`)
	// <动>善良的 without a number
	wordTagPattern = regexp.MustCompile(`^[<＜]([^>＞]+)[>＞]` + space + `*(.*)`)

	numberedEntryPattern = regexp.MustCompile(`^` + digit + `+\.`)

	// pinyin guides such as "wú" or "zhòng"
	pronunciationPattern = regexp.MustCompile(`^[a-zA-Zāáǎàēéěèīíǐìōóǒòūúǔùǖǘǚǜ]+$`)

	notePattern     = regexp.MustCompile(`^(☑)?[★✦]?` + space + `*[①-⑳㉑-㉚]`)
	checkboxPrefix  = regexp.MustCompile(`^☑` + space + `*`)
	noteStarPrefix  = regexp.MustCompile(`^★` + space + `*`)
	exampleTransTag = regexp.MustCompile(`^译文[：:]?` + space + `*`)

	sourceRefPattern = regexp.MustCompile(`[（(]节选自《?(.+?)》?[）)]`)
)

// pronunciationMaxRunes bounds the length of a droppable pinyin line.
const pronunciationMaxRunes = 12

// keySentencePrefixes open a key sentence without a heading marker.
var keySentencePrefixes = []string{"* ", "$ ^{*} $", "$^{*}$"}

// sectionLine is one non-blank body line in both its trimmed and
// LaTeX-cleaned forms. Some rules look at the raw form, most at the cleaned.
type sectionLine struct {
	raw     string
	cleaned string
}

// sectionParser holds the per-section mode machine state.
type sectionParser struct {
	section  *Section
	mode     sectionMode
	original []string
	word     *WordBlock
}

// sectionRule tries to classify a line; it reports whether it consumed it.
type sectionRule struct {
	name  string
	apply func(p *sectionParser, l sectionLine) bool
}

// sectionRules is the dispatch table, in precedence order. The first rule
// that consumes a line wins.
var sectionRules = []sectionRule{
	{"key-heading", (*sectionParser).keyHeading},
	{"key-bullet", (*sectionParser).keyBullet},
	{"word-entry", (*sectionParser).wordEntry},
	{"word-tag", (*sectionParser).wordTag},
	{"pronunciation", (*sectionParser).pronunciation},
	{"note", (*sectionParser).note},
	{"word-example", (*sectionParser).wordExample},
	{"original", (*sectionParser).originalText},
	{"continuation", (*sectionParser).continuation},
}

// parseSectionBody derives the section's blocks from its raw lines.
func parseSectionBody(s *Section) {
	p := &sectionParser{section: s, mode: modeOriginal}
	for _, raw := range s.Lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		p.classify(sectionLine{raw: line, cleaned: NormalizeMarkup(line)})
	}
	p.finishOriginal()
}

// classify runs l through the dispatch table and returns the matching rule
// name, or "" when the line was dropped.
func (p *sectionParser) classify(l sectionLine) string {
	for _, rule := range sectionRules {
		if rule.apply(p, l) {
			return rule.name
		}
	}
	return ""
}

func (p *sectionParser) keyHeading(l sectionLine) bool {
	if !keyHeadingPattern.MatchString(l.raw) {
		return false
	}
	p.mode = modeKey
	p.addKeySentence(keyHeadingPrefix.ReplaceAllString(l.raw, ""))
	return true
}

func (p *sectionParser) keyBullet(l sectionLine) bool {
	if !hasAnyPrefix(l.raw, keySentencePrefixes) {
		return false
	}
	p.mode = modeKey
	text := bulletPrefix.ReplaceAllString(l.raw, "")
	text = starMarkerPrefix.ReplaceAllString(text, "")
	p.addKeySentence(text)
	return true
}

func (p *sectionParser) addKeySentence(text string) {
	text = RenderInline(NormalizeMarkup(text))
	if strings.TrimSpace(text) != "" {
		p.section.KeySentences = append(p.section.KeySentences, text)
	}
}

func (p *sectionParser) wordEntry(l sectionLine) bool {
	m := wordEntryPattern.FindStringSubmatch(l.cleaned)
	if m == nil {
		return false
	}
	p.openWordBlock(m[2], m[3])
	return true
}

// wordTag accepts an unnumbered <tag> entry only once the original text is
// behind us; in original mode such a line is prose.
func (p *sectionParser) wordTag(l sectionLine) bool {
	if p.mode == modeOriginal {
		return false
	}
	m := wordTagPattern.FindStringSubmatch(l.cleaned)
	if m == nil {
		return false
	}
	p.openWordBlock(m[1], m[2])
	return true
}

func (p *sectionParser) openWordBlock(tag, definition string) {
	p.mode = modeWords
	p.word = &WordBlock{Tag: tag, Definition: RenderInline(definition)}
	p.section.WordBlocks = append(p.section.WordBlocks, p.word)
}

func (p *sectionParser) pronunciation(l sectionLine) bool {
	return pronunciationPattern.MatchString(l.cleaned) &&
		utf8.RuneCountInString(l.cleaned) < pronunciationMaxRunes
}

func (p *sectionParser) note(l sectionLine) bool {
	if !notePattern.MatchString(l.cleaned) {
		return false
	}
	p.mode = modeNotes
	text := checkboxPrefix.ReplaceAllString(l.cleaned, "")
	text = noteStarPrefix.ReplaceAllString(text, "")
	p.section.Notes = append(p.section.Notes, Note{
		Text:  RenderInline(text),
		IsKey: strings.ContainsAny(l.raw, "★☑"),
	})
	return true
}

// wordExample handles citation lines under the current word block. A line
// it does not claim falls through to the later rules.
func (p *sectionParser) wordExample(l sectionLine) bool {
	if p.mode != modeWords || p.word == nil {
		return false
	}
	text := l.cleaned

	if isExampleSource(text) {
		p.word.Examples = append(p.word.Examples, &Example{Source: RenderInline(text)})
		return true
	}

	if strings.HasPrefix(text, "译文") {
		if last := p.word.lastExample(); last != nil {
			last.Translation = RenderInline(exampleTransTag.ReplaceAllString(text, ""))
		}
		return true
	}

	last := p.word.lastExample()
	if last == nil || strings.Contains(text, "《") || numberedEntryPattern.MatchString(text) {
		return false
	}
	if last.Translation == "" {
		last.Source += RenderInline(text)
	} else {
		last.Translation += RenderInline(text)
	}
	return true
}

func (p *sectionParser) originalText(l sectionLine) bool {
	if p.mode != modeOriginal {
		return false
	}
	if text := RenderInline(l.cleaned); text != "" {
		p.original = append(p.original, text)
	}
	return true
}

// continuation glues an unclassified line onto the last note or key sentence.
func (p *sectionParser) continuation(l sectionLine) bool {
	switch {
	case p.mode == modeNotes && len(p.section.Notes) > 0:
		last := &p.section.Notes[len(p.section.Notes)-1]
		last.Text += RenderInline(l.cleaned)
		return true
	case p.mode == modeKey && len(p.section.KeySentences) > 0:
		p.section.KeySentences[len(p.section.KeySentences)-1] += RenderInline(l.cleaned)
		return true
	}
	return false
}

// finishOriginal joins the original text fragments and lifts out the first
// "（节选自《…》）" citation.
func (p *sectionParser) finishOriginal() {
	text := strings.Join(p.original, "")
	if loc := sourceRefPattern.FindStringIndex(text); loc != nil {
		p.section.SourceRef = text[loc[0]:loc[1]]
		text = strings.TrimSpace(text[:loc[0]] + text[loc[1]:])
	}
	p.section.OriginalText = text
}

// isExampleSource reports whether text looks like "《书名》：引文".
func isExampleSource(text string) bool {
	return strings.Contains(text, "《") &&
		strings.Contains(text, "》") &&
		strings.Contains(text, "：")
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
