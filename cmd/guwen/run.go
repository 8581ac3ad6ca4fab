package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/alnah/go-guwen"
	"github.com/alnah/go-guwen/internal/config"
	"github.com/alnah/go-guwen/internal/fileutil"
	"github.com/alnah/go-guwen/internal/hints"
)

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, env *Environment) int {
	flags, err := parseFlags(args)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		fmt.Fprintln(env.Stderr, "Run 'guwen --help' for usage.")
		return exitCodeFor(err)
	}
	if flags.help {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "guwen %s\n", Version)
		return ExitSuccess
	}

	logf := verboseLogger(env.Stderr, flags.verbose)
	env.SetMaxProcs(logf)

	cfg, err := loadConfig(flags)
	if err != nil {
		reportError(env.Stderr, err, flags, nil)
		return exitCodeFor(err)
	}

	conv, err := guwen.NewConverter(
		guwen.WithAssetPath(cfg.Assets.BasePath),
		guwen.WithSiteName(cfg.Site.Name),
		guwen.WithFooter(cfg.Site.Footer),
		guwen.WithStylesheet(cfg.Site.Stylesheet),
		guwen.WithHome(cfg.Site.Home),
	)
	if err != nil {
		err = fmt.Errorf("initializing converter: %w", err)
		reportError(env.Stderr, err, flags, cfg)
		return exitCodeFor(err)
	}

	workers := resolveWorkers(flags.workers, len(cfg.Days))
	logf("Workers: %d", workers)

	results, err := buildSite(ctx, conv, cfg, workers, env.Now)
	if err != nil {
		reportError(env.Stderr, err, flags, cfg)
		return exitCodeFor(err)
	}

	printResults(env, results, flags.quiet, flags.verbose)
	return ExitSuccess
}

// loadConfig returns the configured site with flag overrides applied.
// Without --config the built-in six-day site is used.
func loadConfig(flags *cliFlags) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if flags.config != "" {
		var err error
		cfg, err = config.LoadConfig(flags.config)
		if err != nil {
			return nil, err
		}
	}

	if flags.src != "" {
		cfg.Source.Dir = flags.src
	}
	if flags.out != "" {
		cfg.Output.Dir = flags.out
	}
	if flags.index {
		cfg.Index.Enabled = true
	}
	if flags.writeStyle {
		cfg.Output.WriteStyle = true
	}

	// Overrides can break rules the file alone satisfied.
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// reportError prints err followed by a hint when one applies.
// cfg is nil when the configuration could not be loaded.
func reportError(w io.Writer, err error, flags *cliFlags, cfg *config.Config) {
	fmt.Fprintf(w, "error: %v%s\n", err, hintFor(err, flags, cfg))
}

func hintFor(err error, flags *cliFlags, cfg *config.Config) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		var searched []string
		if !fileutil.IsFilePath(flags.config) {
			searched = config.SearchPaths(flags.config)
		}
		return hints.ForConfigNotFound(searched)
	case errors.Is(err, config.ErrInvalidDay):
		return hints.ForInvalidDay()
	case errors.Is(err, guwen.ErrTemplateNotFound):
		return hints.ForTemplateNotFound([]string{guwen.IndexTemplate, guwen.PageTemplate})
	case errors.Is(err, guwen.ErrFrontMatter):
		return hints.ForFrontMatter()
	case errors.Is(err, ErrReadSource) && cfg != nil:
		return hints.ForSourceNotFound(cfg.Source.Dir)
	case errors.Is(err, ErrWritePage):
		return hints.ForOutputDirectory()
	}
	return ""
}
