// Package hints turns common build failures into one actionable line.
// Every hint reads "\n  hint: <text>" so callers can append it to the error
// message as is; an empty string means nothing useful to add.
package hints

import (
	"path/filepath"
	"strings"
)

// userConfigDir is the directory under the user config root holding named configs.
const userConfigDir = "go-guwen"

// ForSourceNotFound points at where sources are looked up.
func ForSourceNotFound(sourceDir string) string {
	return format("sources are read from "+sourceDir, "set source.dir in the config or use --src")
}

// ForFrontMatter describes the accepted front matter block.
func ForFrontMatter() string {
	return format("front matter opens and closes with a --- line", "only title and subtitle are read")
}

// ForConfigNotFound suggests --config, and the user config location when it
// was among the searched paths.
func ForConfigNotFound(searchedPaths []string) string {
	marker := filepath.Join(".config", userConfigDir)
	for _, p := range searchedPaths {
		if strings.Contains(p, marker) {
			return format("use --config /path/to/file.yaml or create " + p)
		}
	}
	return format("use --config /path/to/file.yaml")
}

// ForOutputDirectory applies to any page write failure.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForTemplateNotFound lists the template names a custom directory may provide.
func ForTemplateNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForInvalidDay restates the day entry rules.
func ForInvalidDay() string {
	return format("every day needs file, title and out", "out must be a plain file name")
}

// format joins the non-empty parts into a single hint line.
func format(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return ""
	}
	return "\n  hint: " + strings.Join(kept, "; ")
}
