// internal/cli/options.go
package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"fibbench/internal/sequence"
	"fibbench/internal/version"
)

// Options holds the ambient switches. None of them change what is computed.
type Options struct {
	Quiet   bool
	Version bool
}

// PrintUsage writes the help screen.
func PrintUsage(out io.Writer, name string) {
	_, _ = fmt.Fprintf(out, "%s – float64 two-term recurrence benchmark\n\n", name)
	_, _ = fmt.Fprintf(out, "Version: %s\n\n", version.Version)
	_, _ = fmt.Fprintln(out, "Usage:")
	_, _ = fmt.Fprintf(out, "  %s\n\n", name)
	_, _ = fmt.Fprintf(out, "Computes term %d of (a, b) → (b, a+b) from (0, 1) and prints the\n", sequence.DefaultTerms)
	_, _ = fmt.Fprintln(out, "elapsed wall-clock time in milliseconds on a single line.")

	_, _ = fmt.Fprintln(out, "\nMiscellaneous:")
	_, _ = fmt.Fprintln(out, "  -q, --quiet                 Suppress non-essential warnings [false]")
	_, _ = fmt.Fprintln(out, "  -v, --version               Print version and exit")
	_, _ = fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
}

// ParseArgs parses argv. It returns flag.ErrHelp for -h/--help and an error
// for any positional argument.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool

	fs.BoolVar(&o.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&o.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&o.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&o.Version, "v", false, "alias of --version")
	fs.BoolVar(&help, "help", false, "show this help [false]")
	fs.BoolVar(&help, "h", false, "alias of --help")

	if err := fs.Parse(argv); err != nil {
		return o, err
	}
	if help {
		return o, flag.ErrHelp
	}
	if rest := fs.Args(); len(rest) > 0 {
		return o, fmt.Errorf("unexpected argument(s): %s", strings.Join(rest, " "))
	}
	return o, nil
}
