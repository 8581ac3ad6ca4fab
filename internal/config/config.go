package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/alnah/go-guwen/internal/fileutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrConfigTooLarge  = errors.New("config file too large")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidDay      = errors.New("invalid day entry")
	ErrInvalidSite     = errors.New("invalid site setting")
)

// MaxConfigSize caps the YAML input size.
const MaxConfigSize = 1 << 20

// Field length limits.
const (
	MaxTitleLength    = 100
	MaxSubtitleLength = 200
	MaxSiteNameLength = 100
	MaxFooterLength   = 500
	MaxPathLength     = 4096
)

// Defaults reproducing the original six-day site.
const (
	DefaultSourceDir  = ".."
	DefaultOutputDir  = "."
	DefaultSiteName   = "21天古文拆分"
	DefaultFooter     = "21天古文拆分 · 前六天校对版"
	DefaultStylesheet = "style.css"
	DefaultHome       = "index.html"
)

// Config holds everything a build needs.
type Config struct {
	Source SourceConfig `yaml:"source"`
	Output OutputConfig `yaml:"output"`
	Site   SiteConfig   `yaml:"site"`
	Assets AssetsConfig `yaml:"assets"`
	Index  IndexConfig  `yaml:"index"`
	Days   []DayConfig  `yaml:"days"`
}

// SourceConfig locates the Markdown sources.
type SourceConfig struct {
	Dir string `yaml:"dir"`
}

// OutputConfig locates the generated pages.
type OutputConfig struct {
	Dir        string `yaml:"dir"`
	WriteStyle bool   `yaml:"writeStyle"` // also write the resolved default style
}

// SiteConfig holds the page chrome shared by every day.
type SiteConfig struct {
	Name       string `yaml:"name"`
	Footer     string `yaml:"footer"`
	Stylesheet string `yaml:"stylesheet"` // href, also the file name for writeStyle
	Home       string `yaml:"home"`       // index page href
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // empty = embedded assets only
}

// IndexConfig controls the optional home page.
type IndexConfig struct {
	Enabled bool   `yaml:"enabled"`
	Intro   string `yaml:"intro"` // Markdown file, relative to source.dir
}

// DayConfig describes one study day. Order in Config.Days is the
// prev/next navigation order.
type DayConfig struct {
	File     string `yaml:"file"`
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Out      string `yaml:"out"`
}

// DefaultDays returns the six built-in days.
func DefaultDays() []DayConfig {
	return []DayConfig{
		{File: "01_第一天.md", Title: "第一天", Subtitle: "“他们”都曾是“别人家的孩子”", Out: "day1.html"},
		{File: "02_第二天.md", Title: "第二天", Subtitle: "“他们”都在用生命进谏", Out: "day2.html"},
		{File: "03_第三天.md", Title: "第三天", Subtitle: "“他们”都因正直而遭遇不公", Out: "day3.html"},
		{File: "04_第四天.md", Title: "第四天", Subtitle: "“他们”是真正的“父母官”", Out: "day4.html"},
		{File: "05_第五天.md", Title: "第五天", Subtitle: "“他们”都遭遇了“奸臣”当道", Out: "day5.html"},
		{File: "06_第六天.md", Title: "第六天", Subtitle: "“他们”都置于“以德服人”", Out: "day6.html"},
	}
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{Dir: DefaultSourceDir},
		Output: OutputConfig{Dir: DefaultOutputDir},
		Site: SiteConfig{
			Name:       DefaultSiteName,
			Footer:     DefaultFooter,
			Stylesheet: DefaultStylesheet,
			Home:       DefaultHome,
		},
		Days: DefaultDays(),
	}
}

// applyDefaults fills every unset field from DefaultConfig.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Source.Dir == "" {
		c.Source.Dir = def.Source.Dir
	}
	if c.Output.Dir == "" {
		c.Output.Dir = def.Output.Dir
	}
	if c.Site.Name == "" {
		c.Site.Name = def.Site.Name
	}
	if c.Site.Footer == "" {
		c.Site.Footer = def.Site.Footer
	}
	if c.Site.Stylesheet == "" {
		c.Site.Stylesheet = def.Site.Stylesheet
	}
	if c.Site.Home == "" {
		c.Site.Home = def.Site.Home
	}
	if len(c.Days) == 0 {
		c.Days = def.Days
	}
}

// Validate checks day entries and field lengths.
func (c *Config) Validate() error {
	if len(c.Days) == 0 {
		return fmt.Errorf("%w: no days configured", ErrInvalidDay)
	}

	seen := make(map[string]int, len(c.Days))
	for i, day := range c.Days {
		field := func(name string) string { return fmt.Sprintf("days[%d].%s", i, name) }

		if day.File == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidDay, field("file"))
		}
		if day.Out == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidDay, field("out"))
		}
		if day.Title == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidDay, field("title"))
		}
		if fileutil.IsFilePath(day.Out) {
			return fmt.Errorf("%w: %s must be a file name, got %q", ErrInvalidDay, field("out"), day.Out)
		}
		if prev, dup := seen[day.Out]; dup {
			return fmt.Errorf("%w: %s duplicates days[%d].out (%q)", ErrInvalidDay, field("out"), prev, day.Out)
		}
		seen[day.Out] = i

		if err := validateFieldLength(field("file"), day.File, MaxPathLength); err != nil {
			return err
		}
		if err := validateFieldLength(field("title"), day.Title, MaxTitleLength); err != nil {
			return err
		}
		if err := validateFieldLength(field("subtitle"), day.Subtitle, MaxSubtitleLength); err != nil {
			return err
		}
	}

	if err := validateFieldLength("site.name", c.Site.Name, MaxSiteNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("site.footer", c.Site.Footer, MaxFooterLength); err != nil {
		return err
	}
	if c.Output.WriteStyle && fileutil.IsFilePath(c.Site.Stylesheet) {
		return fmt.Errorf("%w: site.stylesheet must be a file name when output.writeStyle is set, got %q", ErrInvalidSite, c.Site.Stylesheet)
	}
	if c.Index.Enabled && fileutil.IsFilePath(c.Site.Home) {
		return fmt.Errorf("%w: site.home must be a file name when index.enabled is set, got %q", ErrInvalidSite, c.Site.Home)
	}
	for name, value := range map[string]string{
		"source.dir":      c.Source.Dir,
		"output.dir":      c.Output.Dir,
		"assets.basePath": c.Assets.BasePath,
		"index.intro":     c.Index.Intro,
	} {
		if err := validateFieldLength(name, value, MaxPathLength); err != nil {
			return err
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// A value containing a path separator is a path; anything else is a name
// searched in standard locations. Unset fields take their defaults; unknown
// keys are rejected.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML strictly, applies defaults and validates.
func Parse(data []byte) (*Config, error) {
	if len(data) > MaxConfigSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrConfigTooLarge, len(data), MaxConfigSize)
	}

	var cfg Config
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
		}
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SearchPaths lists where a config name is looked up, in order.
// Tries ./name.yaml, ./name.yml, then the user config directory.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-guwen", name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths(name).
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
