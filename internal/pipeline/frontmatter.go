package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

// ErrFrontMatter indicates a source document's front matter block is malformed.
var ErrFrontMatter = errors.New("invalid front matter")

// FrontMatter holds per-document overrides of the configured day metadata.
type FrontMatter struct {
	Title    string `yaml:"title" toml:"title" json:"title"`
	Subtitle string `yaml:"subtitle" toml:"subtitle" json:"subtitle"`
}

// frontMatterDelimiters are the opening lines adrg/frontmatter recognizes
// (YAML, TOML, JSON).
var frontMatterDelimiters = []string{"---", "+++", ";;;"}

// SplitFrontMatter separates an optional leading front matter block from the
// body. Content without front matter is returned unchanged with a zero FrontMatter.
// A block that does not decode as a mapping (a leading thematic break, say)
// is not front matter: the content passes through untouched. Only a mapping
// whose known keys have the wrong type is an error.
func SplitFrontMatter(content string) (FrontMatter, string, error) {
	if !hasAnyPrefix(content, frontMatterDelimiters) {
		return FrontMatter{}, content, nil
	}

	var fields map[string]any
	if _, err := frontmatter.Parse(strings.NewReader(content), &fields); err != nil {
		return FrontMatter{}, content, nil
	}

	var meta FrontMatter
	body, err := frontmatter.Parse(strings.NewReader(content), &meta)
	if err != nil {
		return FrontMatter{}, "", fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}
	return meta, string(body), nil
}
