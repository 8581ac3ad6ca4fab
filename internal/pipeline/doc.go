// Package pipeline implements the study-day conversion pipeline.
//
// The stages, leaves first:
//   - Text normalization: LaTeX residue removal, dotted emphasis and bold spans
//   - Document parsing: a line-oriented classifier that splits a day into
//     numbered sections and a translations appendix, then derives each
//     section's original text, notes, key sentences and word blocks
//   - Block rendering: one HTML fragment per section plus the appendix
//   - Page assembly: fragments wrapped in the page template with TOC and navigation
//
// The parser has no grammar. Each body line goes through an ordered rule
// table and the first matching rule claims it, so the order of sectionRules
// decides how ambiguous lines are classified.
//
// Free-form Markdown (the optional index intro) goes through goldmark instead;
// study days never do, their dialect is not CommonMark.
package pipeline
