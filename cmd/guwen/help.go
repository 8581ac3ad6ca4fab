package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: guwen [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate one HTML page per study day, plus the optional index page.")
	fmt.Fprintln(w, "Without flags, reads 01_第一天.md … 06_第六天.md from the parent directory")
	fmt.Fprintln(w, "and writes day1.html … day6.html to the current directory.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -s, --src <dir>           Directory holding the day sources")
	fmt.Fprintln(w, "  -o, --out <dir>           Directory receiving the pages")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Extras:")
	fmt.Fprintln(w, "      --index               Also generate the index page")
	fmt.Fprintln(w, "      --write-style         Also write the stylesheet")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -q, --quiet               Only print errors")
	fmt.Fprintln(w, "  -v, --verbose             Print timings and worker count")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "      --version             Print version and exit")
	fmt.Fprintln(w, "  -h, --help                Print this help and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Config lookup for a name: ./<name>.yaml, ./<name>.yml, then ~/.config/go-guwen/.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes: 0 success, 1 general error, 2 usage or config error, 3 I/O error.")
}
