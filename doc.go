// Package guwen turns classical Chinese study notes into static HTML pages.
//
// # Quick Start
//
// Create a converter and convert one day's Markdown:
//
//	conv, err := guwen.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, guwen.Input{
//	    Markdown: source,
//	    Title:    "第一天",
//	    Subtitle: "“他们”都曾是“别人家的孩子”",
//	    Nav:      guwen.Nav{Next: "day2.html"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("day1.html", result.HTML, 0644)
//
// # Source Format
//
// A study day is semi-structured Markdown, not CommonMark. Numbered headings
// ("## 01 标题") open passages; inside a passage, lines are classified as
// original text, circled-number notes (①…㉚), key sentences, or word-detail
// entries ("1.<动>…") with their quoted examples and 译文 translations. A
// heading containing 译文 switches to the appendix of 【n】 full translations.
// Lines that match no rule are absorbed into the open block or dropped; a
// conversion never fails because of the source text.
//
// A leading YAML front matter block may override the day's title and subtitle:
//
//	---
//	title: 第一天
//	subtitle: 新的副标题
//	---
//
// # Conversion Pipeline
//
//  1. Front matter split (adrg/frontmatter)
//  2. Line classification into passages and translations
//  3. Fragment rendering, with LaTeX residue cleaned from every text run
//  4. Page assembly through the page template (html/template)
//
// # Configuration
//
// Use functional options to customize the page chrome:
//
//	conv, err := guwen.NewConverter(
//	    guwen.WithSiteName("21天古文拆分"),
//	    guwen.WithStylesheet("style.css"),
//	    guwen.WithAssetPath("/path/to/custom/assets"),
//	)
//
// # Index Page
//
// ConvertIndex renders a home page listing the days, with an optional
// Markdown introduction rendered through goldmark:
//
//	result, err := conv.ConvertIndex(ctx, guwen.IndexInput{
//	    Intro: "二十一天读完古文。",
//	    Days:  []guwen.IndexDay{{Href: "day1.html", Title: "第一天"}},
//	})
//
// # Custom Assets
//
// Override the built-in templates and stylesheet with a directory:
//
//	assets/
//	├── styles/
//	│   └── default.css
//	└── templates/
//	    ├── page.html
//	    └── index.html
//
// Files missing from the directory fall back to the embedded defaults.
//
// # Error Handling
//
// Errors can be checked with errors.Is:
//
//	if errors.Is(err, guwen.ErrFrontMatter) {
//	    // malformed YAML block at the top of the source
//	}
package guwen
