package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// RunFunc is the signature of an app's RunContext.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main runs fn with the process arguments and exits with its code.
//
// SIGPIPE is ignored so a write to a closed stdout returns EPIPE to the app
// instead of killing the process. SIGINT/SIGTERM cancel ctx; fn decides when
// to look at it.
func Main(fn RunFunc) {
	signal.Ignore(syscall.SIGPIPE)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := exitCode(ctx, fn(ctx, os.Args[1:], os.Stdout, os.Stderr))
	stop()
	os.Exit(code)
}

// exitCode turns a clean finish after an interrupt into 130.
func exitCode(ctx context.Context, code int) int {
	if code == 0 && ctx.Err() != nil {
		return 130
	}
	return code
}
