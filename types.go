package guwen

// Page chrome defaults.
const (
	DefaultSiteName   = "21天古文拆分"
	DefaultFooter     = "21天古文拆分 · 前六天校对版"
	DefaultStylesheet = "style.css"
	DefaultHome       = "index.html"
)

// Input contains the parameters for one day page.
type Input struct {
	Markdown string // source day; may start with a front matter block
	Title    string // page title, overridden by front matter
	Subtitle string // page subtitle, overridden by front matter
	Nav      Nav
}

// Nav links a page to its neighbours. An empty href means no link.
type Nav struct {
	Prev string
	Next string
}

// Result holds a generated page.
type Result struct {
	HTML         []byte
	Title        string // effective title after front matter
	Subtitle     string // effective subtitle after front matter
	Sections     int
	Translations int
}

// IndexInput contains the parameters for the home page.
type IndexInput struct {
	Intro     string // optional Markdown rendered above the day list
	IntroBase string // slash path from the index page to the intro's directory
	Days      []IndexDay
}

// IndexDay is one link on the home page.
type IndexDay struct {
	Href     string
	Title    string
	Subtitle string
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds the page chrome shared by every conversion.
type converterConfig struct {
	assetPath  string
	siteName   string
	footer     string
	stylesheet string
	home       string
}

func defaultConverterConfig() converterConfig {
	return converterConfig{
		siteName:   DefaultSiteName,
		footer:     DefaultFooter,
		stylesheet: DefaultStylesheet,
		home:       DefaultHome,
	}
}

// WithAssetPath loads templates and styles from path, falling back to the
// embedded defaults for anything the directory lacks.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithAssetLoader sets a custom asset loader. Takes precedence over WithAssetPath.
func WithAssetLoader(loader AssetLoader) Option {
	return func(c *Converter) {
		c.publicAssetLoader = loader
	}
}

// WithSiteName sets the site name shown in page titles and on the index.
// An empty name keeps the default.
func WithSiteName(name string) Option {
	return func(c *Converter) {
		if name != "" {
			c.cfg.siteName = name
		}
	}
}

// WithFooter sets the footer text. An empty footer keeps the default.
func WithFooter(footer string) Option {
	return func(c *Converter) {
		if footer != "" {
			c.cfg.footer = footer
		}
	}
}

// WithStylesheet sets the stylesheet href. An empty href keeps the default.
func WithStylesheet(href string) Option {
	return func(c *Converter) {
		if href != "" {
			c.cfg.stylesheet = href
		}
	}
}

// WithHome sets the index page href used by the navigation bar.
// An empty href keeps the default.
func WithHome(href string) Option {
	return func(c *Converter) {
		if href != "" {
			c.cfg.home = href
		}
	}
}
