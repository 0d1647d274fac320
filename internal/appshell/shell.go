// internal/appshell/shell.go

// Package appshell is the process-level wrapper around app.RunContext:
// signal handling, argv defaulting, and exit-code normalization live here
// so the app layer stays testable with plain writers.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Main runs the given entry point with a signal-cancelled context and
// exits the process with its return code. A trimming run interrupted by
// SIGINT or SIGTERM exits 130 so pipelines can tell a partial output file
// from a completed one.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	argv := os.Args[1:]
	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	code := run(ctx, argv, os.Stdout, os.Stderr)
	if ctx.Err() != nil && code == 0 {
		code = 130
	}

	stop()
	os.Exit(code)
}
