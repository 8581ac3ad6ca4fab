package pipeline

// Document is one parsed study day: its numbered passages and the
// translations appendix that closes the file.
type Document struct {
	Sections     []*Section
	Translations []Translation
}

// Section is one numbered passage.
type Section struct {
	Number string   // leading ASCII zeros stripped, "0" when nothing is left
	Title  string   // LaTeX-cleaned, not yet inline-rendered
	Lines  []string // raw body lines collected by the top-level pass

	// Derived from Lines by the section pass.
	OriginalText string // render-inlined, source reference removed
	SourceRef    string // "（节选自《…》）" as found, empty when absent
	Notes        []Note
	KeySentences []string
	WordBlocks   []*WordBlock
}

// Note is a circled-number annotation.
type Note struct {
	Text  string
	IsKey bool // marked with ★ or ☑ in the source
}

// WordBlock is a glossary entry: a part-of-speech or gloss tag, its
// definition, and usage examples.
type WordBlock struct {
	Tag        string
	Definition string
	Examples   []*Example
}

// lastExample returns the most recently appended example, or nil.
func (w *WordBlock) lastExample() *Example {
	if len(w.Examples) == 0 {
		return nil
	}
	return w.Examples[len(w.Examples)-1]
}

// Example is a citation illustrating a WordBlock.
type Example struct {
	Source      string
	Translation string
}

// Translation is one 【N】 item of the appendix.
// Number is kept exactly as written, zero padding included.
type Translation struct {
	Number string
	Text   string
}
