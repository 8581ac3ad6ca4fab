package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-guwen"
	"github.com/alnah/go-guwen/internal/config"
	"github.com/alnah/go-guwen/internal/fileutil"
)

// Sentinel errors for build operations.
var (
	ErrReadSource = errors.New("failed to read source file")
	ErrWritePage  = errors.New("failed to write page")
	ErrNoDays     = errors.New("no days to build")
)

// PageConverter is the subset of guwen.Converter the build needs.
type PageConverter interface {
	Convert(ctx context.Context, input guwen.Input) (*guwen.Result, error)
	ConvertIndex(ctx context.Context, input guwen.IndexInput) ([]byte, error)
	Style() (string, error)
}

// Compile-time interface implementation check.
var _ PageConverter = (*guwen.Converter)(nil)

// BuildResult holds the outcome of one generated file.
type BuildResult struct {
	Source   string // empty for files not built from a source
	Output   string // file name inside the output directory
	Title    string
	Subtitle string
	Sections int
	Page     bool // false for the stylesheet
	Duration time.Duration
}

// buildSite generates every day page concurrently, then the optional index
// and stylesheet. The first failure cancels the remaining days; nothing is
// reported for a failed batch. Results are in day order.
func buildSite(ctx context.Context, conv PageConverter, cfg *config.Config, workers int, now func() time.Time) ([]BuildResult, error) {
	if len(cfg.Days) == 0 {
		return nil, ErrNoDays
	}

	results := make([]BuildResult, len(cfg.Days))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range cfg.Days {
		g.Go(func() error {
			r, err := buildDay(gctx, conv, cfg, i, now)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if cfg.Index.Enabled {
		r, err := buildIndex(ctx, conv, cfg, results, now)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}

	if cfg.Output.WriteStyle {
		r, err := writeStyle(conv, cfg, now)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}

	return results, nil
}

// buildDay reads, converts and writes the i-th day.
func buildDay(ctx context.Context, conv PageConverter, cfg *config.Config, i int, now func() time.Time) (BuildResult, error) {
	if err := ctx.Err(); err != nil {
		return BuildResult{}, err
	}

	start := now()
	day := cfg.Days[i]
	srcPath := filepath.Join(cfg.Source.Dir, day.File)

	content, err := os.ReadFile(srcPath) // #nosec G304 -- configured source path
	if err != nil {
		return BuildResult{}, fmt.Errorf("%w: %v", ErrReadSource, err)
	}

	result, err := conv.Convert(ctx, guwen.Input{
		Markdown: string(content),
		Title:    day.Title,
		Subtitle: day.Subtitle,
		Nav:      navFor(cfg.Days, i),
	})
	if err != nil {
		if errors.Is(err, guwen.ErrFrontMatter) {
			return BuildResult{}, fmt.Errorf("%w: %s: %w", ErrReadSource, srcPath, err)
		}
		return BuildResult{}, fmt.Errorf("converting %s: %w", srcPath, err)
	}

	if err := writeOutput(cfg.Output.Dir, day.Out, result.HTML); err != nil {
		return BuildResult{}, err
	}

	return BuildResult{
		Source:   srcPath,
		Output:   day.Out,
		Title:    result.Title,
		Subtitle: result.Subtitle,
		Sections: result.Sections,
		Page:     true,
		Duration: now().Sub(start),
	}, nil
}

// navFor chains day i to its neighbours in configuration order.
func navFor(days []config.DayConfig, i int) guwen.Nav {
	var nav guwen.Nav
	if i > 0 {
		nav.Prev = days[i-1].Out
	}
	if i < len(days)-1 {
		nav.Next = days[i+1].Out
	}
	return nav
}

// buildIndex writes the home page. Day titles come from the built pages so
// front matter overrides show up on the index too.
func buildIndex(ctx context.Context, conv PageConverter, cfg *config.Config, days []BuildResult, now func() time.Time) (BuildResult, error) {
	start := now()
	input := guwen.IndexInput{Days: make([]guwen.IndexDay, 0, len(days))}

	var introPath string
	if cfg.Index.Intro != "" {
		introPath = filepath.Join(cfg.Source.Dir, cfg.Index.Intro)
		intro, err := os.ReadFile(introPath) // #nosec G304 -- configured intro path
		if err != nil {
			return BuildResult{}, fmt.Errorf("%w: %v", ErrReadSource, err)
		}
		input.Intro = string(intro)
		input.IntroBase = introBase(cfg.Output.Dir, filepath.Dir(introPath))
	}

	for _, d := range days {
		input.Days = append(input.Days, guwen.IndexDay{Href: d.Output, Title: d.Title, Subtitle: d.Subtitle})
	}

	html, err := conv.ConvertIndex(ctx, input)
	if err != nil {
		return BuildResult{}, fmt.Errorf("building index: %w", err)
	}
	if err := writeOutput(cfg.Output.Dir, cfg.Site.Home, html); err != nil {
		return BuildResult{}, err
	}

	return BuildResult{
		Source:   introPath,
		Output:   cfg.Site.Home,
		Title:    cfg.Site.Name,
		Page:     true,
		Duration: now().Sub(start),
	}, nil
}

// introBase returns the slash path from outDir to introDir, or "" when no
// relative path exists (e.g. different volumes).
func introBase(outDir, introDir string) string {
	absOut, err := filepath.Abs(outDir)
	if err != nil {
		return ""
	}
	absIntro, err := filepath.Abs(introDir)
	if err != nil {
		return ""
	}
	rel, err := filepath.Rel(absOut, absIntro)
	if err != nil {
		return ""
	}
	return filepath.ToSlash(rel)
}

// writeStyle writes the resolved default stylesheet next to the pages.
func writeStyle(conv PageConverter, cfg *config.Config, now func() time.Time) (BuildResult, error) {
	start := now()
	css, err := conv.Style()
	if err != nil {
		return BuildResult{}, err
	}
	if err := writeOutput(cfg.Output.Dir, cfg.Site.Stylesheet, []byte(css)); err != nil {
		return BuildResult{}, err
	}
	return BuildResult{Output: cfg.Site.Stylesheet, Duration: now().Sub(start)}, nil
}

func writeOutput(dir, name string, content []byte) error {
	if err := fileutil.WriteFileAtomic(filepath.Join(dir, name), content); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWritePage, name, err)
	}
	return nil
}

// printResults reports generated files in order, then the page count.
func printResults(env *Environment, results []BuildResult, quiet, verbose bool) {
	if quiet {
		return
	}

	pages := 0
	for _, r := range results {
		if r.Page {
			pages++
		}
		if verbose && r.Source != "" {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.Source, r.Output, r.Duration.Round(time.Millisecond))
			continue
		}
		fmt.Fprintf(env.Stdout, "Generated: %s\n", r.Output)
	}
	fmt.Fprintf(env.Stdout, "Done! All %d pages generated.\n", pages)
}
