package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// Sentinel errors for flag parsing.
var (
	ErrUnexpectedArgs     = errors.New("unexpected arguments")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// cliFlags holds every command-line option. Zero values mean "keep config".
type cliFlags struct {
	config     string
	src        string
	out        string
	workers    int
	index      bool
	writeStyle bool
	quiet      bool
	verbose    bool
	version    bool
	help       bool
}

// parseFlags parses args (without the program name).
// The build takes no positional arguments.
func parseFlags(args []string) (*cliFlags, error) {
	f := &cliFlags{}
	fs := flag.NewFlagSet("guwen", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.src, "src", "s", "", "directory holding the day sources")
	fs.StringVarP(&f.out, "out", "o", "", "directory receiving the pages")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.index, "index", false, "also generate the index page")
	fs.BoolVar(&f.writeStyle, "write-style", false, "also write the stylesheet")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only print errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "print timings and worker count")
	fs.BoolVar(&f.version, "version", false, "print version and exit")
	fs.BoolVarP(&f.help, "help", "h", false, "print help and exit")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedArgs, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedArgs, strings.Join(fs.Args(), " "))
	}
	if f.workers < 0 {
		return nil, fmt.Errorf("%w: %d (must be >= 0)", ErrInvalidWorkerCount, f.workers)
	}
	if f.quiet && f.verbose {
		return nil, fmt.Errorf("%w: --quiet and --verbose are mutually exclusive", ErrUnexpectedArgs)
	}
	return f, nil
}
