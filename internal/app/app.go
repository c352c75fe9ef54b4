// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"fibbench/internal/cli"
	"fibbench/internal/cmdutil"
	"fibbench/internal/sequence"
	"fibbench/internal/timing"
	"fibbench/internal/version"
	"fibbench/internal/writers"
)

// Exit codes.
const (
	ExitOK        = 0
	ExitUsage     = 2
	ExitOutput    = 3
	ExitCancelled = 130
)

// bench is what gets timed. Tests swap in smaller inputs and fake clocks.
type bench struct {
	gen    sequence.Generator
	terms  int
	runner timing.Runner
}

var defaultBench = bench{gen: sequence.Term, terms: sequence.DefaultTerms}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	return run(parent, argv, stdout, stderr, defaultBench)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func run(ctx context.Context, argv []string, stdout, stderr io.Writer, b bench) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet("fibbench")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flush(outw, stderr, ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flush(outw, stderr, ExitUsage)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "fibbench version %s\n", version.Version)
		return flush(outw, stderr, ExitOK)
	}

	if ctx.Err() != nil {
		return ExitCancelled
	}
	s := b.runner.Measure(b.gen, b.terms)
	if ctx.Err() != nil {
		cmdutil.Warner{Out: stderr, Quiet: opts.Quiet}.Warnf("interrupted; discarding %v ms sample", s.Millis())
		return ExitCancelled
	}

	if err := writers.WriteMillis(outw, s.Millis()); err != nil {
		return outputResult(stderr, err, ExitOK)
	}
	return flush(outw, stderr, ExitOK)
}

// flush writes out anything buffered for stdout.
func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); err != nil {
		return outputResult(stderr, fmt.Errorf("flush stdout: %w", err), code)
	}
	return code
}

// outputResult maps a stdout error to an exit code. A closed pipe keeps code.
func outputResult(stderr io.Writer, err error, code int) int {
	if writers.IsBrokenPipe(err) {
		return code
	}
	_, _ = fmt.Fprintln(stderr, err)
	return ExitOutput
}
